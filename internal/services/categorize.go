package services

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/GregMSThompson/pfm-advisor/internal/dto"
	"github.com/GregMSThompson/pfm-advisor/internal/models"
	"github.com/GregMSThompson/pfm-advisor/pkg/helpers"
)

type keywordRule struct {
	Category string
	Keywords []string
}

// categoryRules are checked in order; the first rule with a keyword
// contained in the lower-cased merchant name wins.
var categoryRules = []keywordRule{
	{Category: dto.CategoryTravel, Keywords: []string{"airline", "hotel", "flight", "travel", "booking"}},
	{Category: dto.CategoryDining, Keywords: []string{"talabat", "restaurant", "cafe", "coffee", "food", "dining", "delivery"}},
	{Category: dto.CategoryGrocery, Keywords: []string{"lulu", "supermarket", "grocery", "carrefour"}},
	{Category: dto.CategoryEntertainment, Keywords: []string{"vox", "cinema", "movie", "entertainment"}},
}

// CategoryFor returns the spend category of a merchant name.
func CategoryFor(merchant string) string {
	name := strings.ToLower(merchant)
	for _, rule := range categoryRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(name, kw) {
				return rule.Category
			}
		}
	}
	return dto.CategoryUncategorized
}

// Categorize accumulates absolute debit spend per category. Credits and rows
// without an amount contribute nothing.
func Categorize(txs []models.Transaction) dto.CategoryTotals {
	buckets := map[string]decimal.Decimal{}
	total := decimal.Zero
	for _, tx := range txs {
		if tx.SignedAmount == nil || *tx.SignedAmount >= 0 {
			continue
		}
		spend := decimal.NewFromFloat(*tx.SignedAmount).Abs()
		category := CategoryFor(helpers.Value(tx.Merchant))
		buckets[category] = buckets[category].Add(spend)
		total = total.Add(spend)
	}

	return dto.CategoryTotals{
		Travel:        buckets[dto.CategoryTravel].InexactFloat64(),
		Dining:        buckets[dto.CategoryDining].InexactFloat64(),
		Grocery:       buckets[dto.CategoryGrocery].InexactFloat64(),
		Entertainment: buckets[dto.CategoryEntertainment].InexactFloat64(),
		Uncategorized: buckets[dto.CategoryUncategorized].InexactFloat64(),
		TotalSpent:    total.InexactFloat64(),
	}
}

// Summary rounds the totals for the response.
func Summary(t dto.CategoryTotals) dto.SpendingSummary {
	r := func(v float64) float64 { return round2(decimal.NewFromFloat(v)) }
	return dto.SpendingSummary{
		TotalSpent:         r(t.TotalSpent),
		TravelSpend:        r(t.Travel),
		FoodSpend:          r(t.Dining),
		GrocerySpend:       r(t.Grocery),
		EntertainmentSpend: r(t.Entertainment),
	}
}
