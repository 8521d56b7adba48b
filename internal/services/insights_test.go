package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GregMSThompson/pfm-advisor/internal/dto"
)

const mixedBatch = `[
	{"Amount":{"Amount":"2500"},"CreditDebitIndicator":"Credit","MerchantDetails":{"MerchantName":"Payroll"},"PaymentModes":"Transfer","TransactionType":"Salary","TransactionDateTime":"2024-02-28T09:00:00Z"},
	{"Amount":{"Amount":"120.505"},"CreditDebitIndicator":"Debit","MerchantDetails":{"MerchantName":"Lulu Hypermarket"},"PaymentModes":"Card","TransactionType":"Purchase","TransactionDateTime":"2024-03-01T10:00:00Z"},
	{"Amount":{"Amount":"80"},"CreditDebitIndicator":"Debit","MerchantDetails":{"MerchantName":"Talabat"},"PaymentModes":"Card","TransactionType":"Purchase","TransactionDateTime":"2024-03-05T19:30:00Z"},
	{"Amount":{"Amount":"40"},"CreditDebitIndicator":"Debit","MerchantDetails":{"MerchantName":"Talabat"},"PaymentModes":"Wallet","TransactionType":"Purchase","TransactionDateTime":"2024-03-06T19:30:00Z"},
	{"Amount":{"Amount":"oops"},"CreditDebitIndicator":"Debit","MerchantDetails":{"MerchantName":"Mystery"},"TransactionDateTime":"not a date"}
]`

func TestBuildInsightsCreditOnly(t *testing.T) {
	raw := rawBatch(t, `[{"Amount":{"Amount":"100"},"CreditDebitIndicator":"Credit"}]`)

	r := BuildInsights(Normalize(raw, NullMissing))
	assert.Equal(t, 1, r.TotalTransactions)
	assert.Equal(t, 0.0, r.TotalSpent)
	assert.Equal(t, 100.0, r.TotalIncome)
	assert.Equal(t, 100.0, r.NetBalanceChange)
	assert.Equal(t, 100.0, r.AverageTransactionAmount)
	assert.Nil(t, r.TopMerchants)
	assert.Nil(t, r.SpendByPaymentMode)
	assert.Empty(t, r.MonthlySpendTrend)
}

func TestBuildInsightsMixed(t *testing.T) {
	r := BuildInsights(Normalize(rawBatch(t, mixedBatch), NullMissing))

	assert.Equal(t, 5, r.TotalTransactions)
	assert.Equal(t, -240.51, r.TotalSpent)
	assert.Equal(t, 2500.0, r.TotalIncome)
	assert.Equal(t, 2259.5, r.NetBalanceChange)
	assert.Equal(t, 685.13, r.AverageTransactionAmount)

	require.Len(t, r.TopMerchants, 4)
	assert.Equal(t, dto.MerchantTotal{Merchant: "Lulu Hypermarket", Total: -120.51}, r.TopMerchants[0])
	assert.Equal(t, dto.MerchantTotal{Merchant: "Talabat", Total: -120}, r.TopMerchants[1])
	assert.Equal(t, dto.MerchantTotal{Merchant: "Mystery", Total: 0}, r.TopMerchants[2])
	assert.Equal(t, "Payroll", r.TopMerchants[3].Merchant)

	assert.Equal(t, map[string]float64{"Card": -200.51, "Wallet": -40, "Transfer": 2500}, r.SpendByPaymentMode)
	assert.Equal(t, map[string]float64{"Purchase": -240.51, "Salary": 2500}, r.TransactionTypeBreakdown)
	assert.Equal(t, []dto.MonthTotal{
		{Month: "2024-02", Total: 2500},
		{Month: "2024-03", Total: -240.51},
	}, r.MonthlySpendTrend)
}

func TestBuildInsightsTopMerchantsCapped(t *testing.T) {
	raw := rawBatch(t, `[
		{"Amount":{"Amount":"1"},"MerchantDetails":{"MerchantName":"a"}},
		{"Amount":{"Amount":"2"},"MerchantDetails":{"MerchantName":"b"}},
		{"Amount":{"Amount":"3"},"MerchantDetails":{"MerchantName":"c"}},
		{"Amount":{"Amount":"4"},"MerchantDetails":{"MerchantName":"d"}},
		{"Amount":{"Amount":"5"},"MerchantDetails":{"MerchantName":"e"}},
		{"Amount":{"Amount":"6"},"MerchantDetails":{"MerchantName":"f"}}
	]`)

	r := BuildInsights(Normalize(raw, NullMissing))
	require.Len(t, r.TopMerchants, topMerchantsMax)
	assert.Equal(t, "f", r.TopMerchants[0].Merchant)
	assert.Equal(t, "b", r.TopMerchants[4].Merchant)
}

func TestBuildInsightsAllAmountsMissing(t *testing.T) {
	raw := rawBatch(t, `[{"CreditDebitIndicator":"Debit"},{"Amount":5}]`)

	r := BuildInsights(Normalize(raw, NullMissing))
	assert.Equal(t, 2, r.TotalTransactions)
	assert.Equal(t, 0.0, r.TotalSpent)
	assert.Equal(t, 0.0, r.NetBalanceChange)
	assert.Equal(t, 0.0, r.AverageTransactionAmount)
}

func TestBuildInsightsSignInvariants(t *testing.T) {
	batches := []string{mixedBatch, `[]`, `[{"Amount":{"Amount":"0.005"},"CreditDebitIndicator":"Debit"},{"Amount":{"Amount":"0.005"},"CreditDebitIndicator":"Credit"}]`}
	for _, b := range batches {
		r := BuildInsights(Normalize(rawBatch(t, b), NullMissing))
		assert.LessOrEqual(t, r.TotalSpent, 0.0)
		assert.GreaterOrEqual(t, r.TotalIncome, 0.0)
		assert.InDelta(t, r.TotalSpent+r.TotalIncome, r.NetBalanceChange, 0.011)
	}
}
