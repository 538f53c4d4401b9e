package analyzeviability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "bizstart-workers/internal/common/errors"
	"bizstart-workers/internal/common/logger"
	"bizstart-workers/internal/common/textutil"
	"bizstart-workers/internal/models"
	"bizstart-workers/internal/refdata"
)

// ==========================
// Test Helper Functions
// ==========================

type stubEstimator struct {
	total int
	err   error
	calls []string
}

func (s *stubEstimator) EstimateStartupCost(ctx context.Context, businessType, region string, size int, tier string) (*models.StartupCostEstimate, error) {
	s.calls = append(s.calls, businessType+"|"+region+"|"+tier)
	if s.err != nil {
		return nil, s.err
	}
	return &models.StartupCostEstimate{TotalCost: models.CostRange{Estimated: s.total}}, nil
}

func intPtr(v int) *int { return &v }

func newCalculator(t *testing.T, tables *refdata.Tables, costs CostEstimator) *Calculator {
	t.Helper()
	return NewCalculator(tables, costs, "standard", logger.NewTestLogger(t))
}

// ==========================
// Core Functionality Tests
// ==========================

func TestAnalyze_CafeWithRentOverride(t *testing.T) {
	costs := &stubEstimator{total: 10080}
	result, err := newCalculator(t, nil, costs).Analyze(context.Background(), &Input{
		BusinessType: "카페",
		Region:       "서울",
		MonthlyRent:  intPtr(100),
		Size:         15,
	})
	require.NoError(t, err)

	assert.Equal(t, models.MonthlyCosts{
		Rent: 100, Labor: 460, Utilities: 40, Other: 30, TotalFixed: 630, VariableRatio: 0.35,
	}, result.MonthlyCosts)

	be := result.BreakEven
	assert.Equal(t, 969, be.MonthlyRevenue)
	assert.Equal(t, 32, be.DailyRevenue)
	assert.Equal(t, 58, be.DailyCustomers)
	assert.Equal(t, 5500, be.AveragePriceWon)
	assert.Equal(t, "moderate", be.AchievabilityCode)
	assert.Equal(t, "보통", be.Achievability)

	s := result.Scenarios
	assert.Equal(t, models.ScenarioProjection{Multiplier: 0.7, Revenue: 678, VariableCost: 237, Profit: -189}, s.Pessimistic)
	assert.Equal(t, models.ScenarioProjection{Multiplier: 1.2, Revenue: 1163, VariableCost: 407, Profit: 126}, s.Realistic)
	assert.Equal(t, models.ScenarioProjection{Multiplier: 1.8, Revenue: 1744, VariableCost: 610, Profit: 504}, s.Optimistic)

	assert.Equal(t, models.Payback{
		InvestmentAmount: 10080,
		InvestmentSource: models.InvestmentFromEstimate,
		Months:           80,
		Tier:             "poor",
		Note:             "3년 초과, 재검토 권장",
	}, result.Payback)

	assert.Equal(t, []string{"카페|서울|standard"}, costs.calls)
}

func TestAnalyze_InsightOrder(t *testing.T) {
	result, err := newCalculator(t, nil, &stubEstimator{total: 10080}).Analyze(context.Background(), &Input{
		BusinessType: "카페",
		Region:       "서울",
		MonthlyRent:  intPtr(100),
	})
	require.NoError(t, err)

	want := []string{insightLaborOverRent, insightLongPayback}
	want = append(want, refdata.Default().InsightsFor("카페")...)
	assert.Equal(t, want, result.Insights)
}

func TestAnalyze_HardFootfallInsightComesFirst(t *testing.T) {
	result, err := newCalculator(t, nil, &stubEstimator{total: 10}).Analyze(context.Background(), &Input{
		BusinessType: "카페",
		Region:       "서울 강남",
		MonthlyRent:  intPtr(3000),
		AveragePrice: intPtr(3000),
	})
	require.NoError(t, err)

	assert.Equal(t, "hard", result.BreakEven.AchievabilityCode)
	assert.Equal(t, 3000, result.BreakEven.AveragePriceWon)
	require.NotEmpty(t, result.Insights)
	assert.Equal(t, insightHardFootfall, result.Insights[0])
	assert.NotContains(t, result.Insights, insightLaborOverRent)
	assert.Equal(t, "excellent", result.Payback.Tier)
}

func TestAnalyze_InvestmentFallback(t *testing.T) {
	tests := []struct {
		name  string
		costs CostEstimator
	}{
		{"estimator error", &stubEstimator{err: errors.New("cost tables unavailable")}},
		{"no estimator", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := newCalculator(t, nil, tt.costs).Analyze(context.Background(), &Input{
				BusinessType: "카페",
				Region:       "서울",
				MonthlyRent:  intPtr(100),
			})
			require.NoError(t, err)

			assert.Equal(t, 7560, result.Payback.InvestmentAmount)
			assert.Equal(t, models.InvestmentFromFallback, result.Payback.InvestmentSource)
			assert.Equal(t, 60, result.Payback.Months)
			assert.Equal(t, "poor", result.Payback.Tier)
		})
	}
}

func TestAnalyze_NonPositiveOverridesAreIgnored(t *testing.T) {
	calc := newCalculator(t, nil, nil)

	withZero, err := calc.Analyze(context.Background(), &Input{
		BusinessType: "카페", Region: "서울", MonthlyRent: intPtr(0), AveragePrice: intPtr(-5), Size: -3,
	})
	require.NoError(t, err)
	plain, err := calc.Analyze(context.Background(), &Input{BusinessType: "카페", Region: "서울"})
	require.NoError(t, err)

	assert.Equal(t, plain.MonthlyCosts, withZero.MonthlyCosts)
	assert.Equal(t, plain.BreakEven, withZero.BreakEven)
	assert.Equal(t, 15, withZero.Size)
	assert.Equal(t, 158, plain.MonthlyCosts.Rent) // 15 × 15 × 0.7 = 157.5
}

func TestAnalyze_SizeScalesRentAndUtilities(t *testing.T) {
	result, err := newCalculator(t, nil, nil).Analyze(context.Background(), &Input{
		BusinessType: "카페",
		Region:       "강원도 원주",
		Size:         30,
	})
	require.NoError(t, err)

	assert.Equal(t, "지방", result.Region)
	assert.Equal(t, 135, result.MonthlyCosts.Rent) // 15 × 30 × 0.3
	assert.Equal(t, 80, result.MonthlyCosts.Utilities)
}

// ==========================
// Invariants
// ==========================

func TestAnalyze_InvariantsForEveryBenchmark(t *testing.T) {
	tables := refdata.Default()
	calc := newCalculator(t, tables, nil)

	for _, businessType := range tables.BusinessTypes() {
		for _, region := range []string{"서울 강남", "부산", "어딘가"} {
			t.Run(businessType+"/"+region, func(t *testing.T) {
				result, err := calc.Analyze(context.Background(), &Input{BusinessType: businessType, Region: region})
				require.NoError(t, err)

				costs := result.MonthlyCosts
				assert.Equal(t, businessType, result.BusinessType)
				assert.Less(t, costs.VariableRatio, 1.0)
				assert.GreaterOrEqual(t, costs.TotalFixed, 0)
				assert.Equal(t, textutil.Round(float64(costs.TotalFixed)/(1-costs.VariableRatio)), result.BreakEven.MonthlyRevenue)
				assert.Contains(t, []string{"easy", "moderate", "hard"}, result.BreakEven.AchievabilityCode)

				s := result.Scenarios
				assert.Greater(t, s.Optimistic.Profit, s.Realistic.Profit)
				assert.Greater(t, s.Realistic.Profit, s.Pessimistic.Profit)
			})
		}
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	calc := newCalculator(t, nil, &stubEstimator{total: 9000})
	input := &Input{BusinessType: "치킨집", Region: "대구 동성로", Size: 20}

	first, err := calc.Analyze(context.Background(), input)
	require.NoError(t, err)
	second, err := calc.Analyze(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// ==========================
// Failure Modes
// ==========================

func zeroCostTables(variableRatio float64) *refdata.Tables {
	return &refdata.Tables{
		Benchmarks: map[string]refdata.BusinessBenchmark{
			"카페": {AveragePrice: 5000, VariableRatio: variableRatio},
		},
		RentMultipliers: map[string]float64{},
		Insights:        map[string][]string{},
	}
}

func TestAnalyze_NoProfitYieldsSentinelPayback(t *testing.T) {
	result, err := newCalculator(t, zeroCostTables(0.3), &stubEstimator{total: 5000}).Analyze(context.Background(), &Input{
		BusinessType: "카페",
		Region:       "서울",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Scenarios.Realistic.Profit)
	assert.Equal(t, UnrecoverableMonths, result.Payback.Months)
	assert.Equal(t, TierUnrecoverable, result.Payback.Tier)
	assert.Equal(t, unrecoverableNote, result.Payback.Note)
	assert.Equal(t, 5000, result.Payback.InvestmentAmount)
	assert.Equal(t, []string{insightLongPayback}, result.Insights)
}

func TestAnalyze_Errors(t *testing.T) {
	tests := []struct {
		name     string
		tables   *refdata.Tables
		input    *Input
		wantCode apperrors.ErrorCode
	}{
		{
			name:     "variable ratio of one",
			tables:   zeroCostTables(1.0),
			input:    &Input{BusinessType: "카페", Region: "서울"},
			wantCode: apperrors.ErrCodeAnalysisFailed,
		},
		{
			name:     "no benchmark for normalized type",
			tables:   zeroCostTables(0.3),
			input:    &Input{BusinessType: "치킨", Region: "서울"},
			wantCode: apperrors.ErrCodeUnknownBusinessType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			costs := &stubEstimator{}
			_, err := newCalculator(t, tt.tables, costs).Analyze(context.Background(), tt.input)

			var stdErr *apperrors.StandardError
			require.True(t, errors.As(err, &stdErr))
			assert.Equal(t, tt.wantCode, stdErr.Code)
			assert.Empty(t, costs.calls, "no estimate before validation of the benchmark")
		})
	}
}

func TestAnalyze_UnknownTypeListsCategories(t *testing.T) {
	_, err := newCalculator(t, zeroCostTables(0.3), nil).Analyze(context.Background(), &Input{BusinessType: "네일", Region: "서울"})

	var stdErr *apperrors.StandardError
	require.True(t, errors.As(err, &stdErr))
	assert.Equal(t, "지원 업종: 카페", stdErr.Suggestion)
}
