package services

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GregMSThompson/pfm-advisor/internal/dto"
	"github.com/GregMSThompson/pfm-advisor/internal/errs"
	"github.com/GregMSThompson/pfm-advisor/pkg/helpers"
)

type stubRenderer struct {
	called bool
	report dto.InsightsReport
	img    []byte
	err    error
}

func (s *stubRenderer) Render(report dto.InsightsReport) ([]byte, error) {
	s.called = true
	s.report = report
	return s.img, s.err
}

func TestDashboardImageEmptyBatch(t *testing.T) {
	r := &stubRenderer{}
	svc := NewDashboardService(r)

	_, err := svc.DashboardImage(helpers.TestCtx(), nil)

	var verr *errs.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "No transactions provided.", verr.Message)
	assert.False(t, r.called, "nothing is rendered for an empty batch")
}

func TestDashboardImageEncodesPNG(t *testing.T) {
	r := &stubRenderer{img: []byte{0x89, 'P', 'N', 'G'}}
	svc := NewDashboardService(r)

	resp, err := svc.DashboardImage(helpers.TestCtx(), rawBatch(t, mixedBatch))
	require.NoError(t, err)

	decoded, err := base64.StdEncoding.DecodeString(resp.ImageBase64)
	require.NoError(t, err)
	assert.Equal(t, r.img, decoded)
	assert.Equal(t, 5, r.report.TotalTransactions)
	assert.Equal(t, -240.51, r.report.TotalSpent)
}

func TestDashboardImageRenderFailure(t *testing.T) {
	r := &stubRenderer{err: errors.New("canvas too small")}
	svc := NewDashboardService(r)

	_, err := svc.DashboardImage(helpers.TestCtx(), rawBatch(t, mixedBatch))

	var rerr *errs.RenderError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "canvas too small", rerr.Message)
}

func TestInsightsKeepsMissingAmountsNull(t *testing.T) {
	svc := NewDashboardService(&stubRenderer{})

	report, err := svc.Insights(helpers.TestCtx(), rawBatch(t, `[{"CreditDebitIndicator":"Debit"},{"Amount":{"Amount":"10"},"CreditDebitIndicator":"Credit"}]`))
	require.NoError(t, err)
	assert.Equal(t, 10.0, report.AverageTransactionAmount, "the row without an amount is not averaged as zero")
}
