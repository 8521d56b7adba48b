package handlers

import (
	"context"
	"log/slog"

	"github.com/GregMSThompson/pfm-advisor/internal/dto"
	"github.com/GregMSThompson/pfm-advisor/internal/models"
	"github.com/GregMSThompson/pfm-advisor/internal/response"
)

type DashboardService interface {
	DashboardImage(ctx context.Context, raw []models.RawTransaction) (dto.DashboardImageResponse, error)
}

type RecommendationService interface {
	Recommend(ctx context.Context, raw []models.RawTransaction) (dto.RecommendationResponse, error)
}

type SuggestionService interface {
	Suggest(ctx context.Context, balance float64) dto.SuggestionResponse
}

type PredictService interface {
	Predict(ctx context.Context, description string) (dto.PredictResponse, error)
	Home() dto.HomeResponse
}

type Deps struct {
	Log               *slog.Logger
	ResponseHandler   response.ResponseHandler
	DashboardSvc      DashboardService
	RecommendationSvc RecommendationService
	SuggestionSvc     SuggestionService
	PredictSvc        PredictService
}
