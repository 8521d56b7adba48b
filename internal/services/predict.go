package services

import (
	"context"
	"strings"

	"github.com/GregMSThompson/pfm-advisor/internal/dto"
	"github.com/GregMSThompson/pfm-advisor/internal/errs"
	"github.com/GregMSThompson/pfm-advisor/internal/matcher"
	"github.com/GregMSThompson/pfm-advisor/pkg/logger"
)

// MatchThreshold is the lowest cosine score accepted as a match.
const MatchThreshold = 0.3

const (
	statusNotReady = "not_ready"
	fallbackLink   = "/"

	msgComingSoon = "This service is not yet integrated. We're working on bringing you more features soon!"
	msgNotReady   = "This service is not yet integrated. Please check back later or explore our available services like Accounts, Balances, Beneficiaries, and Transactions."
	msgRunning    = "Function name prediction API is running"
)

type endpointMatcher interface {
	Match(query string) (matcher.Entry, float64)
	Len() int
}

type predictService struct {
	matcher endpointMatcher
}

func NewPredictService(m endpointMatcher) *predictService {
	return &predictService{matcher: m}
}

func (s *predictService) Home() dto.HomeResponse {
	return dto.HomeResponse{Message: msgRunning}
}

// Predict maps a free-text description to a catalog route. Low scores and
// routes that are not ready fall back to the root deeplink.
func (s *predictService) Predict(ctx context.Context, description string) (dto.PredictResponse, error) {
	if strings.TrimSpace(description) == "" {
		return dto.PredictResponse{}, errs.NewValidationError("description is required")
	}
	if s.matcher == nil || s.matcher.Len() == 0 {
		return dto.PredictResponse{}, errs.NewCatalogError("service catalog unavailable", nil)
	}

	entry, score := s.matcher.Match(description)
	resp := dto.PredictResponse{
		InputDescription: description,
		SimilarityScore:  score,
		Deeplink:         fallbackLink,
		Status:           statusNotReady,
	}

	switch {
	case score < MatchThreshold:
		resp.MatchedDescription = "Service not available"
		resp.CTA = "Coming Soon"
		resp.Message = msgComingSoon
	case !entry.Ready():
		resp.MatchedDescription = entry.Description
		resp.CTA = "Service Not Integrated"
		resp.Message = msgNotReady
	default:
		resp.MatchedDescription = entry.Description
		resp.CTA = entry.CTA
		resp.Deeplink = entry.Route
		resp.Status = matcher.StatusReady
	}

	logger.FromContext(ctx).Info("prediction made",
		"score", score,
		"status", resp.Status,
		"deeplink", resp.Deeplink)
	return resp, nil
}
