package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "bizstart-workers/internal/common/errors"
	"bizstart-workers/pkg/registry"
)

func TestValidateActivityInput(t *testing.T) {
	tests := []struct {
		name     string
		taskType string
		input    map[string]interface{}
		wantErr  bool
	}{
		{
			name:     "viability minimal",
			taskType: "analyze-viability",
			input:    map[string]interface{}{"businessType": "카페", "region": "서울"},
		},
		{
			name:     "viability missing region",
			taskType: "analyze-viability",
			input:    map[string]interface{}{"businessType": "카페"},
			wantErr:  true,
		},
		{
			name:     "viability negative rent",
			taskType: "analyze-viability",
			input:    map[string]interface{}{"businessType": "카페", "region": "서울", "monthlyRent": -10},
			wantErr:  true,
		},
		{
			name:     "viability fractional price",
			taskType: "analyze-viability",
			input:    map[string]interface{}{"businessType": "카페", "region": "서울", "averagePrice": 5500.5},
			wantErr:  true,
		},
		{
			name:     "viability integral rent",
			taskType: "analyze-viability",
			input:    map[string]interface{}{"businessType": "카페", "region": "서울", "monthlyRent": 150.0, "averagePrice": 5500},
		},
		{
			name:     "funds valid stage",
			taskType: "match-policy-funds",
			input:    map[string]interface{}{"businessType": "카페", "stage": "예비창업", "region": "서울", "founderType": "청년"},
		},
		{
			name:     "funds unknown stage",
			taskType: "match-policy-funds",
			input:    map[string]interface{}{"businessType": "카페", "stage": "폐업", "region": "서울"},
			wantErr:  true,
		},
		{
			name:     "funds unknown founder",
			taskType: "match-policy-funds",
			input:    map[string]interface{}{"businessType": "카페", "stage": "운영중", "region": "서울", "founderType": "학생"},
			wantErr:  true,
		},
		{
			name:     "cost invalid tier",
			taskType: "estimate-startup-cost",
			input:    map[string]interface{}{"businessType": "카페", "region": "서울", "interiorLevel": "luxury"},
			wantErr:  true,
		},
		{
			name:     "location empty",
			taskType: "resolve-location",
			input:    map[string]interface{}{"location": ""},
			wantErr:  true,
		},
		{
			name:     "unregistered task type passes",
			taskType: "something-else",
			input:    map[string]interface{}{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateActivityInput(tt.taskType, tt.input)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var stdErr *apperrors.StandardError
			require.True(t, errors.As(err, &stdErr))
			assert.Equal(t, apperrors.ErrCodeInvalidInput, stdErr.Code)
			assert.NotEmpty(t, stdErr.Details)
		})
	}
}

func TestCheck_ReportsFields(t *testing.T) {
	v, err := Default()
	require.NoError(t, err)

	result, err := v.Check("match-policy-funds", map[string]interface{}{"stage": "예비창업"})
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.GreaterOrEqual(t, len(result.Errors), 2)
	for _, e := range result.Errors {
		assert.Equal(t, "required", e.Code)
	}
}

func TestNewValidator_BadSchema(t *testing.T) {
	reg := &registry.ActivityRegistry{Activities: []registry.Activity{{
		TaskType:    "broken",
		InputSchema: map[string]interface{}{"type": 42},
	}}}

	_, err := NewValidator(reg)
	assert.Error(t, err)
}
