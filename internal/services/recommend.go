package services

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/GregMSThompson/pfm-advisor/internal/dto"
)

const (
	maxRecommendations = 4
	applyURL           = "https://www.adcb.com/en/personal/cards/"

	cashbackThreshold = 1000.0
	premiumThreshold  = 5000.0

	scoreCashback = 50
	scorePremium  = 60
	scoreBasic    = 80
	scoreIslamic  = 30
)

// categoryCard builds the card for one spend category given its spend and
// its share of total spend in percent.
type categoryCard struct {
	Category string
	Spend    func(dto.CategoryTotals) float64
	Build    func(spend, share float64) dto.Card
}

var categoryCards = []categoryCard{
	{
		Category: dto.CategoryTravel,
		Spend:    func(t dto.CategoryTotals) float64 { return t.Travel },
		Build: func(spend, share float64) dto.Card {
			return dto.Card{
				Name:             "Traveller Credit Card",
				Reason:           fmt.Sprintf("You spent AED %.2f (%.0f%% of total) on travel. Get 10%% cashback on flights and hotels.", spend, share),
				Benefits:         []string{"10% cashback on airline tickets", "10% cashback on hotel stays", "0 foreign currency fees", "Complimentary lounge access", "Travel insurance"},
				ApplyURL:         applyURL,
				PotentialSavings: fmt.Sprintf("Save up to AED %.2f per month", spend*0.10),
			}
		},
	},
	{
		Category: dto.CategoryDining,
		Spend:    func(t dto.CategoryTotals) float64 { return t.Dining },
		Build: func(spend, share float64) dto.Card {
			return dto.Card{
				Name:             "Talabat ADCB Credit Card",
				Reason:           fmt.Sprintf("You spent AED %.2f (%.0f%% of total) on dining. Get 35%% back on talabat orders.", spend, share),
				Benefits:         []string{"35% back on talabat orders", "Unlimited free delivery", "Up to AED 750 welcome bonus", "Lounge access"},
				ApplyURL:         applyURL,
				PotentialSavings: fmt.Sprintf("Save up to AED %.2f per month", spend*0.35),
			}
		},
	},
	{
		Category: dto.CategoryGrocery,
		Spend:    func(t dto.CategoryTotals) float64 { return t.Grocery },
		Build: func(spend, share float64) dto.Card {
			return dto.Card{
				Name:             "Lulu Platinum Credit Card",
				Reason:           fmt.Sprintf("You spent AED %.2f (%.0f%% of total) at groceries. Earn 8 LuLu Points per AED.", spend, share),
				Benefits:         []string{"Earn up to 8 LuLu Points per AED", "Complimentary airport lounge access", "Buy 1 Get 1 Free Movie tickets", "Free for life"},
				ApplyURL:         applyURL,
				PotentialSavings: fmt.Sprintf("Earn up to %.0f LuLu Points per month", spend*8),
			}
		},
	},
	{
		Category: dto.CategoryEntertainment,
		Spend:    func(t dto.CategoryTotals) float64 { return t.Entertainment },
		Build: func(spend, _ float64) dto.Card {
			return dto.Card{
				Name:             "Etihad Guest Credit Card",
				Reason:           fmt.Sprintf("You spent AED %.2f on entertainment. Earn miles on every purchase plus dining benefits.", spend),
				Benefits:         []string{"Earn Etihad Guest Miles", "Priority boarding", "Extra baggage allowance", "Lounge access"},
				ApplyURL:         applyURL,
				PotentialSavings: fmt.Sprintf("Earn up to %.0f miles per month", spend*2),
			}
		},
	},
}

// Candidates generates the scored pool in generation order.
func Candidates(t dto.CategoryTotals) []dto.RecommendationCandidate {
	var out []dto.RecommendationCandidate
	total := t.TotalSpent

	for _, cc := range categoryCards {
		spend := cc.Spend(t)
		if spend <= 0 {
			continue
		}
		share := spend / math.Max(total, 1) * 100
		out = append(out, dto.RecommendationCandidate{
			Score:    share,
			Category: cc.Category,
			Card:     cc.Build(spend, share),
		})
	}

	if total > cashbackThreshold {
		out = append(out, dto.RecommendationCandidate{
			Score:    scoreCashback,
			Category: dto.CategoryCashback,
			Card: dto.Card{
				Name:             "365 Cashback Credit Card",
				Reason:           fmt.Sprintf("With AED %.2f monthly spend, maximize rewards with up to 6%% cashback on everyday purchases.", total),
				Benefits:         []string{"Up to 6% cashback on everyday spends", "AED 365 welcome bonus", "Up to AED 1,000 monthly cashback", "Hotel discounts"},
				ApplyURL:         applyURL,
				PotentialSavings: fmt.Sprintf("Save up to AED %.2f per month", math.Min(total*0.06, 1000)),
			},
		})
	}

	if total > premiumThreshold {
		out = append(out, dto.RecommendationCandidate{
			Score:    scorePremium,
			Category: dto.CategoryPremium,
			Card: dto.Card{
				Name:             "Infinite Credit Card",
				Reason:           fmt.Sprintf("Your high spending of AED %.2f qualifies you for premium benefits and exclusive privileges.", total),
				Benefits:         []string{"Unlimited airport lounge access", "Golf privileges", "Personal concierge", "Travel insurance up to AED 5M"},
				ApplyURL:         applyURL,
				PotentialSavings: fmt.Sprintf("Premium benefits worth AED %.2f per month", total*0.08),
			},
		})
	}

	if total < cashbackThreshold {
		out = append(out, dto.RecommendationCandidate{
			Score:    scoreBasic,
			Category: dto.CategoryBasic,
			Card: dto.Card{
				Name:             "Essential Cashback Credit Card",
				Reason:           "Perfect starter card with no annual fees and guaranteed 1% cashback on all purchases.",
				Benefits:         []string{"1% cashback on all purchases", "Up to AED 1000 cashback monthly", "Free for life", "Dining & Shopping Discounts"},
				ApplyURL:         applyURL,
				PotentialSavings: fmt.Sprintf("Save up to AED %.2f per month", total*0.01),
			},
		})
	}

	out = append(out, dto.RecommendationCandidate{
		Score:    scoreIslamic,
		Category: dto.CategoryIslamic,
		Card: dto.Card{
			Name:             "Islamic Credit Card",
			Reason:           "Sharia-compliant card with no interest charges and ethical banking benefits.",
			Benefits:         []string{"Sharia-compliant", "No interest charges", "Cashback on purchases", "Travel benefits"},
			ApplyURL:         applyURL,
			PotentialSavings: "Ethical banking with rewards",
		},
	})
	return out
}

// Recommend ranks the candidate pool and picks at most four cards, one per
// category first, then any remaining candidate not already picked.
func Recommend(t dto.CategoryTotals) []dto.Card {
	candidates := Candidates(t)
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	picked := make([]dto.RecommendationCandidate, 0, maxRecommendations)
	seen := map[string]bool{}
	for _, c := range candidates {
		if len(picked) >= maxRecommendations {
			break
		}
		if !seen[c.Category] {
			picked = append(picked, c)
			seen[c.Category] = true
		}
	}

	// membership here is whole-candidate equality, not category
	for _, c := range candidates {
		if len(picked) >= maxRecommendations {
			break
		}
		if !slices.ContainsFunc(picked, func(p dto.RecommendationCandidate) bool { return sameCandidate(p, c) }) {
			picked = append(picked, c)
		}
	}

	cards := make([]dto.Card, 0, len(picked))
	for _, p := range picked {
		cards = append(cards, p.Card)
	}
	return cards
}

func sameCandidate(a, b dto.RecommendationCandidate) bool {
	return a.Category == b.Category &&
		a.Card.Name == b.Card.Name &&
		a.Card.Reason == b.Card.Reason &&
		a.Card.ApplyURL == b.Card.ApplyURL &&
		a.Card.PotentialSavings == b.Card.PotentialSavings &&
		slices.Equal(a.Card.Benefits, b.Card.Benefits)
}
