package services

import (
	"context"
	"encoding/base64"

	"github.com/GregMSThompson/pfm-advisor/internal/dto"
	"github.com/GregMSThompson/pfm-advisor/internal/errs"
	"github.com/GregMSThompson/pfm-advisor/internal/models"
	"github.com/GregMSThompson/pfm-advisor/pkg/logger"
)

const errNoTransactions = "No transactions provided."

type chartRenderer interface {
	Render(report dto.InsightsReport) ([]byte, error)
}

type dashboardService struct {
	renderer chartRenderer
}

func NewDashboardService(renderer chartRenderer) *dashboardService {
	return &dashboardService{renderer: renderer}
}

// Insights normalizes the batch, keeping absent amounts as nil, and
// aggregates it.
func (s *dashboardService) Insights(ctx context.Context, raw []models.RawTransaction) (dto.InsightsReport, error) {
	var report dto.InsightsReport
	if len(raw) == 0 {
		return report, errs.NewValidationError(errNoTransactions)
	}

	err := guard("insights", func() error {
		report = BuildInsights(Normalize(raw, NullMissing))
		return nil
	})
	if err != nil {
		return dto.InsightsReport{}, err
	}

	log := logger.FromContext(ctx)
	log.Info("insights built",
		"total_spent", report.TotalSpent,
		"total_income", report.TotalIncome)
	if logger.IsDebugEnabled(ctx) {
		log.Debug("insights report", "report", report)
	}
	return report, nil
}

// DashboardImage renders the insights for a batch as a base64 PNG.
func (s *dashboardService) DashboardImage(ctx context.Context, raw []models.RawTransaction) (dto.DashboardImageResponse, error) {
	log, ctx := logger.With(ctx, "transactions", len(raw))
	report, err := s.Insights(ctx, raw)
	if err != nil {
		return dto.DashboardImageResponse{}, err
	}

	img, err := s.renderer.Render(report)
	if err != nil {
		return dto.DashboardImageResponse{}, errs.NewRenderError(err)
	}
	log.Debug("dashboard rendered", "png_bytes", len(img))

	return dto.DashboardImageResponse{
		ImageBase64: base64.StdEncoding.EncodeToString(img),
	}, nil
}
