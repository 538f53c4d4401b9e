// internal/workers/policy/match-policy-funds/filters.go
package matchpolicyfunds

import (
	"sort"
	"strings"

	"bizstart-workers/internal/common/logger"
	"bizstart-workers/internal/common/metrics"
	"bizstart-workers/internal/common/textutil"
	"bizstart-workers/internal/models"
	"bizstart-workers/internal/refdata"
)

var (
	seniorTitleKeywords = []string{"중장년", "시니어", "신중년"}
	youthTitleKeywords  = []string{"청년"}
)

type stageFunc func(fund models.PolicyFund) bool

// applySoftStage keeps the funds accepted by keep. A stage that would leave nothing is
// discarded and the input returned as is.
func applySoftStage(funds []models.PolicyFund, stage string, keep stageFunc, log logger.Logger) []models.PolicyFund {
	if len(funds) == 0 {
		return funds
	}

	kept := make([]models.PolicyFund, 0, len(funds))
	for _, f := range funds {
		if keep(f) {
			kept = append(kept, f)
		}
	}
	if len(kept) == 0 {
		metrics.FilterStageReverts.WithLabelValues(stage).Inc()
		log.Debug("filter stage reverted", map[string]interface{}{"stage": stage, "candidates": len(funds)})
		return funds
	}
	return kept
}

// userRegionText is matched against listing region keywords. The normalized region is
// included so that district names such as 강남역 still resolve to 서울.
func userRegionText(region string) string {
	return region + " " + refdata.NormalizeRegion(region)
}

// regionConsistent passes funds that name no region or name the user's region.
func regionConsistent(userRegion string) stageFunc {
	return func(f models.PolicyFund) bool {
		named := RegionKeywordsIn(f.Name + " " + f.Organization)
		if len(named) == 0 {
			return true
		}
		for _, kw := range named {
			if strings.Contains(userRegion, kw) {
				return true
			}
		}
		return false
	}
}

// founderExclusion drops listings whose titles target the opposite age group. Categories
// other than youth and senior accept everything.
func founderExclusion(founderType string) stageFunc {
	var excluded []string
	switch founderType {
	case models.FounderYouth:
		excluded = seniorTitleKeywords
	case models.FounderSenior:
		excluded = youthTitleKeywords
	}
	return func(f models.PolicyFund) bool {
		return len(excluded) == 0 || !textutil.ContainsAny(f.Name, excluded...)
	}
}

// prioritizeWomen moves listings that mention 여성 to the front, keeping relative order.
func prioritizeWomen(funds []models.PolicyFund) {
	mentions := func(f models.PolicyFund) bool {
		if strings.Contains(f.Name, models.FounderWoman) {
			return true
		}
		for _, r := range f.Requirements {
			if r == models.FounderWoman {
				return true
			}
		}
		return false
	}
	sort.SliceStable(funds, func(i, j int) bool {
		return mentions(funds[i]) && !mentions(funds[j])
	})
}

// FilterFunds runs the region and founder stages in order and caps the result.
func FilterFunds(funds []models.PolicyFund, input *Input, max int, log logger.Logger) []models.PolicyFund {
	funds = applySoftStage(funds, stageRegion, regionConsistent(userRegionText(input.Region)), log)
	funds = applySoftStage(funds, stageFounderExclude, founderExclusion(input.FounderType), log)
	if input.FounderType == models.FounderWoman {
		prioritizeWomen(funds)
	}
	if max > 0 && len(funds) > max {
		funds = funds[:max]
	}
	return funds
}
