package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/GregMSThompson/pfm-advisor/internal/handlers"
	"github.com/GregMSThompson/pfm-advisor/internal/middleware"
)

func NewRouter(deps *handlers.Deps, allowedOrigins []string) chi.Router {
	r := chi.NewRouter()

	lm := middleware.NewLoggerMiddleware(deps.Log)
	r.Use(middleware.RequestID)
	r.Use(lm.LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	dh := handlers.NewDashboardHandlers(deps)
	rh := handlers.NewRecommendationHandlers(deps)
	sh := handlers.NewSuggestionHandlers(deps)
	ph := handlers.NewPredictHandlers(deps)

	r.Get("/", ph.Home)
	r.Mount("/pfm-dashboard-image", dh.DashboardRoutes())
	r.Mount("/credit-card-recommendations", rh.RecommendationRoutes())
	r.Mount("/suggestions", sh.SuggestionRoutes())
	r.Mount("/predict", ph.PredictRoutes())
	return r
}
