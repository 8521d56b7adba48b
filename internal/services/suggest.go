package services

import (
	"context"

	"github.com/GregMSThompson/pfm-advisor/internal/dto"
)

type balanceBracket struct {
	Below       float64
	Suggestions []string
}

// balanceBrackets are checked in order; a balance falls in the first
// bracket whose upper bound it is below.
var balanceBrackets = []balanceBracket{
	{Below: 0, Suggestions: []string{
		"Your balance is negative. Consider reducing expenses or transferring funds.",
		"Review your recent transactions for any unexpected charges.",
		"Set up alerts for low balance to avoid overdraft fees.",
	}},
	{Below: 100, Suggestions: []string{
		"Your balance is critically low. Avoid any discretionary spending.",
		"Consider transferring funds from savings if available.",
		"Track upcoming bills to prevent missed payments.",
	}},
	{Below: 500, Suggestions: []string{
		"Your balance is low. Monitor your spending and avoid unnecessary purchases.",
		"Look for ways to cut down on recurring expenses.",
		"Plan a budget for the upcoming week.",
	}},
	{Below: 2000, Suggestions: []string{
		"Your balance is moderate. Consider saving a portion for emergencies.",
		"Review your monthly subscriptions for possible cancellations.",
		"Set a savings goal for the month.",
	}},
	{Below: 5000, Suggestions: []string{
		"Your balance is healthy. Consider saving or investing.",
		"Explore high-yield savings accounts.",
		"Review your investment portfolio for diversification.",
	}},
	{Below: 20000, Suggestions: []string{
		"Great balance! You may want to explore investment opportunities.",
		"Consult a financial advisor for long-term planning.",
		"Consider charitable donations or gifting.",
	}},
}

var topBracket = []string{
	"Excellent financial standing! Consider advanced investment strategies.",
	"Review estate planning and tax optimization.",
	"Support community projects or philanthropy.",
}

type suggestionService struct{}

func NewSuggestionService() *suggestionService {
	return &suggestionService{}
}

func (s *suggestionService) Suggest(_ context.Context, balance float64) dto.SuggestionResponse {
	return dto.SuggestionResponse{
		Balance:     balance,
		Suggestions: SuggestionsFor(balance),
	}
}

// SuggestionsFor returns a copy so callers cannot mutate the table.
func SuggestionsFor(balance float64) []string {
	for _, b := range balanceBrackets {
		if balance < b.Below {
			return append([]string(nil), b.Suggestions...)
		}
	}
	return append([]string(nil), topBracket...)
}
