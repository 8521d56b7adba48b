package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GregMSThompson/pfm-advisor/internal/dto"
	"github.com/GregMSThompson/pfm-advisor/internal/errs"
	"github.com/GregMSThompson/pfm-advisor/pkg/helpers"
)

func TestRecommendationServiceGroceryDebit(t *testing.T) {
	svc := NewRecommendationService()
	raw := rawBatch(t, `[{"Amount":{"Amount":"50"},"CreditDebitIndicator":"Debit","MerchantDetails":{"MerchantName":"Carrefour Express"}}]`)

	resp, err := svc.Recommend(helpers.TestCtx(), raw)
	require.NoError(t, err)
	assert.Equal(t, dto.SpendingSummary{TotalSpent: 50, GrocerySpend: 50}, resp.SpendingSummary)
	require.NotEmpty(t, resp.Recommendations)
	assert.Equal(t, "Lulu Platinum Credit Card", resp.Recommendations[0].Name)
}

func TestRecommendationServiceEmptyBatch(t *testing.T) {
	resp, err := NewRecommendationService().Recommend(helpers.TestCtx(), nil)
	require.NoError(t, err)
	assert.Equal(t, dto.SpendingSummary{}, resp.SpendingSummary)
	assert.Len(t, resp.Recommendations, 2)
}

func TestGuardRecoversPanic(t *testing.T) {
	err := guard("scoring", func() error {
		var m map[string]int
		m["boom"]++
		return nil
	})

	var perr *errs.PipelineError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "scoring", perr.Stage)
	assert.NotEmpty(t, perr.Message)
}
