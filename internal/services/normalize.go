package services

import (
	"strings"

	"github.com/GregMSThompson/pfm-advisor/internal/models"
	"github.com/GregMSThompson/pfm-advisor/pkg/helpers"
)

// AmountPolicy decides what an absent amount field becomes. A present but
// malformed amount is always nil, whatever the policy.
type AmountPolicy int

const (
	// NullMissing keeps an absent amount as nil. Used for insights, where
	// nil rows are skipped by every aggregation.
	NullMissing AmountPolicy = iota
	// ZeroMissing turns an absent amount into 0. Used for recommendations.
	ZeroMissing
)

const indicatorCredit = "credit"

// Normalize converts a raw batch into transactions with a signed amount.
func Normalize(raw []models.RawTransaction, policy AmountPolicy) []models.Transaction {
	out := make([]models.Transaction, 0, len(raw))
	for _, r := range raw {
		out = append(out, normalizeOne(r, policy))
	}
	return out
}

func normalizeOne(r models.RawTransaction, policy AmountPolicy) models.Transaction {
	amount := r.Amount()
	if amount == nil && policy == ZeroMissing && !r.HasAmountField() {
		amount = helpers.Ptr(0.0)
	}

	tx := models.Transaction{
		Amount:      amount,
		Indicator:   r.Indicator(),
		Merchant:    r.MerchantName(),
		PaymentMode: r.PaymentMode(),
		Type:        r.TransactionType(),
		Time:        r.DateTime(),
	}
	tx.SignedAmount = signedAmount(amount, tx.Indicator)
	return tx
}

// signedAmount is +amount for credits and -amount for anything else,
// including a missing indicator.
func signedAmount(amount *float64, indicator string) *float64 {
	if amount == nil {
		return nil
	}
	if strings.ToLower(indicator) == indicatorCredit {
		return helpers.Ptr(*amount)
	}
	return helpers.Ptr(-*amount)
}
