package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GregMSThompson/pfm-advisor/internal/models"
)

func rawBatch(t *testing.T, body string) []models.RawTransaction {
	t.Helper()
	var raw []models.RawTransaction
	require.NoError(t, json.Unmarshal([]byte(body), &raw))
	return raw
}
