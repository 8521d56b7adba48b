package services

import (
	"context"

	"github.com/GregMSThompson/pfm-advisor/internal/dto"
	"github.com/GregMSThompson/pfm-advisor/internal/models"
	"github.com/GregMSThompson/pfm-advisor/pkg/logger"
)

type recommendationService struct{}

func NewRecommendationService() *recommendationService {
	return &recommendationService{}
}

// Recommend runs normalize, categorize and score over one batch. Absent
// amounts count as zero here, unlike the dashboard.
func (s *recommendationService) Recommend(ctx context.Context, raw []models.RawTransaction) (dto.RecommendationResponse, error) {
	var resp dto.RecommendationResponse
	err := guard("recommendations", func() error {
		totals := Categorize(Normalize(raw, ZeroMissing))
		resp = dto.RecommendationResponse{
			SpendingSummary: Summary(totals),
			Recommendations: Recommend(totals),
		}
		return nil
	})
	if err != nil {
		return dto.RecommendationResponse{}, err
	}

	logger.FromContext(ctx).Info("recommendations built",
		"transactions", len(raw),
		"total_spent", resp.SpendingSummary.TotalSpent,
		"cards", len(resp.Recommendations))
	return resp, nil
}
