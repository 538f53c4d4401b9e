// internal/workers/viability/estimate-startup-cost/models.go
package estimatestartupcost

// Input is the job / request payload. Size is in 평; zero means the 15평 reference size.
type Input struct {
	BusinessType  string `json:"businessType"`
	Region        string `json:"region"`
	Size          int    `json:"size,omitempty"`
	InteriorLevel string `json:"interiorLevel,omitempty"`
}

// Interior finish tiers.
const (
	TierBasic    = "basic"
	TierStandard = "standard"
	TierPremium  = "premium"
)

const (
	DataSource = "소상공인진흥공단, 프랜차이즈 정보공개서 기반 추정"

	// operatingReserveMonths is how many months of operating cost are set aside at launch.
	operatingReserveMonths = 3
)
