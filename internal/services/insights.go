package services

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/GregMSThompson/pfm-advisor/internal/dto"
	"github.com/GregMSThompson/pfm-advisor/internal/models"
)

const (
	monthLayout     = "2006-01"
	topMerchantsMax = 5
)

// BuildInsights aggregates a normalized batch. Rows whose signed amount is
// nil are skipped by every sum; they still count towards TotalTransactions.
func BuildInsights(txs []models.Transaction) dto.InsightsReport {
	var spent, income, net []float64
	var amounts []float64
	for _, tx := range txs {
		if tx.Amount != nil {
			amounts = append(amounts, *tx.Amount)
		}
		if tx.SignedAmount == nil {
			continue
		}
		v := *tx.SignedAmount
		net = append(net, v)
		switch {
		case v < 0:
			spent = append(spent, v)
		case v > 0:
			income = append(income, v)
		}
	}

	report := dto.InsightsReport{
		TotalTransactions:        len(txs),
		TotalSpent:               round2(sumOf(spent)),
		TotalIncome:              round2(sumOf(income)),
		NetBalanceChange:         round2(sumOf(net)),
		AverageTransactionAmount: average(amounts),
		MonthlySpendTrend:        monthlyTrend(txs),
	}

	if merchants, ok := groupSignedBy(txs, func(tx models.Transaction) *string { return tx.Merchant }); ok {
		report.TopMerchants = topMerchants(merchants, topMerchantsMax)
	}
	if modes, ok := groupSignedBy(txs, func(tx models.Transaction) *string { return tx.PaymentMode }); ok {
		report.SpendByPaymentMode = roundGroups(modes)
	}
	if types, ok := groupSignedBy(txs, func(tx models.Transaction) *string { return tx.Type }); ok {
		report.TransactionTypeBreakdown = roundGroups(types)
	}
	return report
}

// groupSignedBy sums signed amounts per key. Rows without a key are left out;
// a key whose rows all lack an amount sums to zero. ok is false when no row
// carried the key at all.
func groupSignedBy(txs []models.Transaction, key func(models.Transaction) *string) (map[string]decimal.Decimal, bool) {
	groups := map[string]decimal.Decimal{}
	for _, tx := range txs {
		k := key(tx)
		if k == nil {
			continue
		}
		total := groups[*k]
		if tx.SignedAmount != nil {
			total = total.Add(decimal.NewFromFloat(*tx.SignedAmount))
		}
		groups[*k] = total
	}
	return groups, len(groups) > 0
}

// topMerchants sorts ascending, so the biggest net spenders come first.
func topMerchants(groups map[string]decimal.Decimal, n int) []dto.MerchantTotal {
	names := sortedKeys(groups)
	sort.SliceStable(names, func(i, j int) bool {
		return groups[names[i]].LessThan(groups[names[j]])
	})
	if len(names) > n {
		names = names[:n]
	}
	out := make([]dto.MerchantTotal, 0, len(names))
	for _, name := range names {
		out = append(out, dto.MerchantTotal{Merchant: name, Total: round2(groups[name])})
	}
	return out
}

func monthlyTrend(txs []models.Transaction) []dto.MonthTotal {
	months := map[string]decimal.Decimal{}
	for _, tx := range txs {
		if tx.Time == nil {
			continue
		}
		label := tx.Time.Format(monthLayout)
		total := months[label]
		if tx.SignedAmount != nil {
			total = total.Add(decimal.NewFromFloat(*tx.SignedAmount))
		}
		months[label] = total
	}

	out := make([]dto.MonthTotal, 0, len(months))
	for _, label := range sortedKeys(months) {
		out = append(out, dto.MonthTotal{Month: label, Total: round2(months[label])})
	}
	return out
}

// average reports 0 for an empty set.
func average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return round2(sumOf(values).Div(decimal.NewFromInt(int64(len(values)))))
}

func roundGroups(groups map[string]decimal.Decimal) map[string]float64 {
	out := make(map[string]float64, len(groups))
	for k, v := range groups {
		out[k] = round2(v)
	}
	return out
}

func sortedKeys(groups map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
