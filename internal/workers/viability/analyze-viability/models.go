// internal/workers/viability/analyze-viability/models.go
package analyzeviability

import (
	"context"

	"bizstart-workers/internal/models"
)

// Input is the job / request payload. Overrides are optional; a non-positive override counts as
// not supplied. Size is in 평.
type Input struct {
	BusinessType string `json:"businessType"`
	Region       string `json:"region"`
	MonthlyRent  *int   `json:"monthlyRent,omitempty"`
	Size         int    `json:"size,omitempty"`
	AveragePrice *int   `json:"averagePrice,omitempty"`
}

// CostEstimator prices the startup investment used for the payback period.
type CostEstimator interface {
	EstimateStartupCost(ctx context.Context, businessType, region string, size int, tier string) (*models.StartupCostEstimate, error)
}

const (
	DataSource = "소상공인진흥공단 업종별 원가 분석 기반 추정"

	daysPerMonth = 30
	// fallbackInvestmentMonths of fixed cost stand in for the investment when no estimate exists.
	fallbackInvestmentMonths = 12
	// paybackReviewMonths is the payback length above which an insight is added.
	paybackReviewMonths = 36

	UnrecoverableMonths = 999
	TierUnrecoverable   = "unrecoverable"
	unrecoverableNote   = "현실적 시나리오에서 수익이 발생하지 않아 투자 회수가 어렵습니다. 비용 구조 재검토 필요."
)

const (
	insightHardFootfall  = "일 필요 고객수가 많습니다. 입지 선정 시 유동인구가 많은 곳을 우선 검토하세요."
	insightLaborOverRent = "인건비가 임대료보다 높습니다. 운영 효율화나 무인화를 검토해보세요."
	insightLongPayback   = "투자 회수 기간이 3년을 초과합니다. 초기 투자 비용 절감 방안을 검토하세요."
)
