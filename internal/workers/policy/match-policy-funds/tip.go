// internal/workers/policy/match-policy-funds/tip.go
package matchpolicyfunds

import (
	"fmt"

	"bizstart-workers/internal/models"
)

const (
	tipNoMatch   = "현재 조건에 맞는 지원사업이 없습니다. 조건을 변경하거나 기업마당(bizinfo.go.kr)에서 직접 검색해보세요."
	tipMentoring = "예비창업자는 멘토링이 포함된 프로그램을 추천드립니다. 창업 성공률을 높일 수 있습니다."
	tipGrantLoan = "보조금은 상환 의무가 없어 유리하지만 경쟁률이 높습니다. 융자와 보조금을 함께 준비하세요."
	tipYouth     = "청년 대상 지원사업이 많습니다. 여러 개를 동시에 신청하면 선정 확률이 높아집니다."
	tipCountFmt  = "%d개의 지원사업을 찾았습니다. 신청 기한을 확인하고 서류를 미리 준비하세요."
)

// GenerateTip picks the first matching guidance rule.
func GenerateTip(funds []models.PolicyFund, stage, founderType string) string {
	if len(funds) == 0 {
		return tipNoMatch
	}

	var hasMentoring, hasGrant, hasLoan bool
	for _, f := range funds {
		switch f.Type {
		case models.FundTypeMentoring, models.FundTypeMixed:
			hasMentoring = true
		case models.FundTypeGrant:
			hasGrant = true
		case models.FundTypeLoan:
			hasLoan = true
		}
	}

	switch {
	case stage == models.StagePreLaunch && hasMentoring:
		return tipMentoring
	case hasGrant && hasLoan:
		return tipGrantLoan
	case founderType == models.FounderYouth:
		return tipYouth
	default:
		return fmt.Sprintf(tipCountFmt, len(funds))
	}
}
