package dto

// MerchantTotal is one row of the top-merchants ranking.
type MerchantTotal struct {
	Merchant string  `json:"merchant"`
	Total    float64 `json:"total"`
}

// MonthTotal is the net signed amount for one calendar month ("2006-01").
type MonthTotal struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// InsightsReport summarises one batch of transactions. Spend totals are
// signed: TotalSpent is zero or negative.
type InsightsReport struct {
	TotalTransactions        int                `json:"totalTransactions"`
	TotalSpent               float64            `json:"totalSpent"`
	TotalIncome              float64            `json:"totalIncome"`
	NetBalanceChange         float64            `json:"netBalanceChange"`
	TopMerchants             []MerchantTotal    `json:"topMerchants,omitempty"`
	SpendByPaymentMode       map[string]float64 `json:"spendByPaymentMode,omitempty"`
	MonthlySpendTrend        []MonthTotal       `json:"monthlySpendTrend"`
	AverageTransactionAmount float64            `json:"averageTransactionAmount"`
	TransactionTypeBreakdown map[string]float64 `json:"transactionTypeBreakdown,omitempty"`
}

type DashboardImageResponse struct {
	ImageBase64 string `json:"image_base64"`
}
