package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GregMSThompson/pfm-advisor/pkg/helpers"
)

func TestSuggestionsForNegativeBalance(t *testing.T) {
	resp := NewSuggestionService().Suggest(helpers.TestCtx(), -50)

	assert.Equal(t, -50.0, resp.Balance)
	assert.Equal(t, []string{
		"Your balance is negative. Consider reducing expenses or transferring funds.",
		"Review your recent transactions for any unexpected charges.",
		"Set up alerts for low balance to avoid overdraft fees.",
	}, resp.Suggestions)
}

func TestSuggestionsForBrackets(t *testing.T) {
	tests := []struct {
		balance float64
		first   string
	}{
		{0, "Your balance is critically low. Avoid any discretionary spending."},
		{99.99, "Your balance is critically low. Avoid any discretionary spending."},
		{100, "Your balance is low. Monitor your spending and avoid unnecessary purchases."},
		{1999, "Your balance is moderate. Consider saving a portion for emergencies."},
		{2000, "Your balance is healthy. Consider saving or investing."},
		{19999, "Great balance! You may want to explore investment opportunities."},
		{20000, "Excellent financial standing! Consider advanced investment strategies."},
	}
	for _, tt := range tests {
		got := SuggestionsFor(tt.balance)
		assert.Len(t, got, 3)
		assert.Equal(t, tt.first, got[0], tt.balance)
	}
}

func TestSuggestionsForReturnsCopy(t *testing.T) {
	got := SuggestionsFor(-1)
	got[0] = "changed"
	assert.NotEqual(t, "changed", SuggestionsFor(-1)[0])
}
