package chart

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GregMSThompson/pfm-advisor/internal/dto"
)

func TestPanelsOrderAndContent(t *testing.T) {
	report := dto.InsightsReport{
		MonthlySpendTrend: []dto.MonthTotal{{Month: "2024-01", Total: -20}, {Month: "2024-02", Total: 15}},
		SpendByPaymentMode: map[string]float64{
			"Online": -10,
			"Card":   -5,
		},
		TopMerchants: []dto.MerchantTotal{{Merchant: "Lulu", Total: -30}},
	}

	panels := Panels(report)
	require.Len(t, panels, 4)

	assert.Equal(t, "Monthly Spending Trend", panels[0].Title)
	assert.Equal(t, []string{"2024-01", "2024-02"}, panels[0].Labels)
	assert.Equal(t, []string{"Card", "Online"}, panels[1].Labels)
	assert.Equal(t, []float64{-5, -10}, panels[1].Values)
	assert.Empty(t, panels[2].Values)
	assert.Equal(t, "Top Spending Merchants", panels[3].Title)
	assert.Equal(t, []float64{-30}, panels[3].Values)
}

func TestRenderProducesPNG(t *testing.T) {
	report := dto.InsightsReport{
		MonthlySpendTrend:        []dto.MonthTotal{{Month: "2024-03", Total: -120.5}},
		TransactionTypeBreakdown: map[string]float64{"POS": -120.5},
	}
	r := &Renderer{Width: 400, Height: 300}

	out, err := r.Render(report)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Positive(t, img.Bounds().Dx())
}

func TestRenderEmptyReport(t *testing.T) {
	out, err := (&Renderer{Width: 400, Height: 300}).Render(dto.InsightsReport{})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
