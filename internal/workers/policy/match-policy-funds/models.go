// internal/workers/policy/match-policy-funds/models.go
package matchpolicyfunds

import (
	"context"

	"bizstart-workers/internal/common/bizinfo"
	"bizstart-workers/internal/models"
)

type Input struct {
	BusinessType string `json:"businessType"`
	Stage        string `json:"stage"`
	Region       string `json:"region"`
	FounderType  string `json:"founderType,omitempty"`
	FounderAge   *int   `json:"founderAge,omitempty"`
}

// ListingSource fetches startup support listings. *bizinfo.Client satisfies it.
type ListingSource interface {
	SearchStartupFunds(ctx context.Context, q bizinfo.StartupQuery) ([]models.RawListingItem, error)
}

const (
	DataSource = "기업마당 공공데이터 API (bizinfo.go.kr)"

	AmountFallback      = "공고문 참조"
	RequirementFallback = "공고문 확인 필요"
	DeadlineTBA         = "추후 공지"

	descriptionRunes = 200
)

// Filter stage names, used as metric labels.
const (
	stageRegion         = "region"
	stageFounderExclude = "founder_exclusion"
)

// RegionKeywords are the metropolitan and provincial names recognized in listing titles.
var RegionKeywords = []string{
	"서울", "부산", "대구", "인천", "광주", "대전", "울산", "세종", "경기",
	"강원", "충북", "충남", "전북", "전남", "경북", "경남", "제주",
}
