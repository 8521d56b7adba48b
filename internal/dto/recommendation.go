package dto

import "github.com/GregMSThompson/pfm-advisor/internal/models"

// Spend categories. Uncategorized has no card of its own.
const (
	CategoryTravel        = "travel"
	CategoryDining        = "dining"
	CategoryGrocery       = "grocery"
	CategoryEntertainment = "entertainment"
	CategoryUncategorized = "uncategorized"
)

// Categories of the fixed-score cards.
const (
	CategoryCashback = "cashback"
	CategoryPremium  = "premium"
	CategoryBasic    = "basic"
	CategoryIslamic  = "islamic"
)

// CategoryTotals holds absolute debit spend per bucket. TotalSpent includes
// uncategorized spend.
type CategoryTotals struct {
	Travel        float64
	Dining        float64
	Grocery       float64
	Entertainment float64
	Uncategorized float64
	TotalSpent    float64
}

// Card is a recommendation as returned to the client.
type Card struct {
	Name             string   `json:"name"`
	Reason           string   `json:"reason"`
	Benefits         []string `json:"benefits"`
	ApplyURL         string   `json:"apply_url"`
	PotentialSavings string   `json:"potential_savings"`
}

// RecommendationCandidate is a scored card still carrying its category tag.
type RecommendationCandidate struct {
	Score    float64
	Category string
	Card     Card
}

type RecommendationRequest struct {
	Transactions []models.RawTransaction `json:"transactions"`
}

type SpendingSummary struct {
	TotalSpent         float64 `json:"total_spent"`
	TravelSpend        float64 `json:"travel_spend"`
	FoodSpend          float64 `json:"food_spend"`
	GrocerySpend       float64 `json:"grocery_spend"`
	EntertainmentSpend float64 `json:"entertainment_spend"`
}

type RecommendationResponse struct {
	SpendingSummary SpendingSummary `json:"spending_summary"`
	Recommendations []Card          `json:"recommendations"`
}

// RecommendationErrorResponse is sent with 200 when the pipeline fails.
type RecommendationErrorResponse struct {
	Error           string `json:"error"`
	Recommendations []Card `json:"recommendations"`
}
