// internal/workers/viability/estimate-startup-cost/handler_test.go
package estimatestartupcost

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizstart-workers/internal/common/logger"
	"bizstart-workers/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	return NewHandler(LoadConfig(), nil, nil, logger.NewTestLogger(t))
}

// ==========================
// Execute
// ==========================

func TestHandler_Execute_Success(t *testing.T) {
	h := newTestHandler(t)

	result := h.Execute(context.Background(), &Input{BusinessType: "커피 전문점", Region: "서울 마포구"})

	require.True(t, result.Success)
	require.NotNil(t, result.Meta)
	assert.Equal(t, DataSource, result.Meta.Source)
	assert.NotEmpty(t, result.Meta.RequestID)
	assert.Contains(t, result.Meta.Note, "15평 기준")
	assert.Contains(t, result.Meta.Note, "10,200만원")

	estimate, ok := result.Data.(*models.StartupCostEstimate)
	require.True(t, ok)
	assert.Equal(t, "카페", estimate.BusinessType)
	assert.Equal(t, 10200, estimate.TotalCost.Estimated)
}

func TestHandler_Execute_Failures(t *testing.T) {
	tests := []struct {
		name     string
		input    *Input
		wantCode string
	}{
		{"missing business type", &Input{Region: "서울"}, "INVALID_INPUT"},
		{"invalid tier", &Input{BusinessType: "카페", Region: "서울", InteriorLevel: "luxury"}, "INVALID_INPUT"},
		{"oversized store", &Input{BusinessType: "카페", Region: "서울", Size: 5000}, "INVALID_INPUT"},
	}

	h := newTestHandler(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := h.Execute(context.Background(), tt.input)

			require.False(t, result.Success)
			assert.Equal(t, tt.wantCode, result.ErrorCode())
			assert.NotEmpty(t, result.Error.Suggestion)
			assert.Error(t, result.Err())
			assert.Nil(t, result.Data)
		})
	}
}

func TestHandler_Execute_EnvelopeShape(t *testing.T) {
	result := newTestHandler(t).Execute(context.Background(), &Input{BusinessType: "치킨", Region: "부산", InteriorLevel: TierBasic})
	require.True(t, result.Success)

	raw, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, true, decoded["success"])
	assert.NotContains(t, decoded, "error")

	data := decoded["data"].(map[string]interface{})
	assert.Equal(t, "basic", data["interiorLevel"])
	assert.Contains(t, data, "breakdown")
	assert.Contains(t, data["totalCost"], "estimated")
}
