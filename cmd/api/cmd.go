package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/GregMSThompson/pfm-advisor/internal/bootstrap"
	"github.com/GregMSThompson/pfm-advisor/internal/chart"
	"github.com/GregMSThompson/pfm-advisor/internal/config"
	"github.com/GregMSThompson/pfm-advisor/internal/handlers"
	"github.com/GregMSThompson/pfm-advisor/internal/response"
	"github.com/GregMSThompson/pfm-advisor/internal/router"
	"github.com/GregMSThompson/pfm-advisor/internal/services"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)

	// services
	dserv := services.NewDashboardService(chart.NewRenderer())
	rserv := services.NewRecommendationService()
	sserv := services.NewSuggestionService()
	pserv := services.NewPredictService(bs.Matcher)

	// response handler
	rh := response.New(bs.Log)

	// dependencies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.DashboardSvc = dserv
	deps.RecommendationSvc = rserv
	deps.SuggestionSvc = sserv
	deps.PredictSvc = pserv

	// router
	r := router.NewRouter(deps, cfg.CORSOrigins)
	bs.Log.Info("server starting", "addr", cfg.Addr())
	err = http.ListenAndServe(cfg.Addr(), r)
	exitOnError("server start failed", err, bs.Log)
}
