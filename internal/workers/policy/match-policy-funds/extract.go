// internal/workers/policy/match-policy-funds/extract.go
package matchpolicyfunds

import (
	"regexp"
	"strings"

	"bizstart-workers/internal/common/bizinfo"
	"bizstart-workers/internal/common/textutil"
	"bizstart-workers/internal/models"
)

var (
	amountPattern = regexp.MustCompile(`\d+[천백만억]+원|\d+,?\d*만원`)
	datePattern   = regexp.MustCompile(`^\d{8}$`)
)

var (
	loanKeywords      = []string{"융자", "대출"}
	grantKeywords     = []string{"보조금", "바우처", "지원금"}
	mentoringKeywords = []string{"멘토링", "교육", "컨설팅"}
)

// requirementTags maps recognized hashtags to requirement labels, in output order.
var requirementTags = []struct {
	tag   string
	label string
}{
	{"청년", "청년"},
	{"여성", "여성"},
	{"중소기업", "중소기업"},
	{"창업기업", "창업기업"},
	{"예비창업", "예비창업자"},
}

// ClassifyFundType picks the first keyword class found in the title or summary.
func ClassifyFundType(title, summary string) models.FundType {
	text := strings.ToLower(title + " " + summary)
	switch {
	case textutil.ContainsAny(text, loanKeywords...):
		return models.FundTypeLoan
	case textutil.ContainsAny(text, grantKeywords...):
		return models.FundTypeGrant
	case textutil.ContainsAny(text, mentoringKeywords...):
		return models.FundTypeMentoring
	default:
		return models.FundTypeMixed
	}
}

// ExtractAmount returns the first currency expression in the summary, verbatim.
func ExtractAmount(summary string) string {
	if m := amountPattern.FindString(summary); m != "" {
		return m
	}
	return AmountFallback
}

// ExtractRequirements never returns an empty slice.
func ExtractRequirements(hashtags, target string) []string {
	present := make(map[string]bool)
	for _, tag := range strings.Split(hashtags, ",") {
		present[strings.TrimSpace(tag)] = true
	}

	var reqs []string
	for _, rt := range requirementTags {
		if present[rt.tag] {
			reqs = append(reqs, rt.label)
		}
	}
	if t := strings.TrimSpace(target); t != "" {
		reqs = append(reqs, t)
	}
	if len(reqs) == 0 {
		return []string{RequirementFallback}
	}
	return reqs
}

// FormatDeadline turns "20240101 ~ 20240201" into "2024.01.01 ~ 2024.02.01". Empty input and
// the announce-later sentinel yield the sentinel; any other shape passes through unchanged.
func FormatDeadline(period string) string {
	trimmed := strings.TrimSpace(period)
	if trimmed == "" || trimmed == DeadlineTBA {
		return DeadlineTBA
	}

	parts := strings.Split(trimmed, "~")
	if len(parts) != 2 {
		return period
	}
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if !datePattern.MatchString(p) {
			return period
		}
		parts[i] = p[:4] + "." + p[4:6] + "." + p[6:]
	}
	return parts[0] + " ~ " + parts[1]
}

// Describe strips markup from the summary and truncates it.
func Describe(summary string) string {
	return textutil.TruncateWithEllipsis(textutil.StripHTML(summary), descriptionRunes)
}

// ApplyURL qualifies a portal-relative announcement path. Absolute URLs are kept.
func ApplyURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return bizinfo.PortalHost + path
}

// ToPolicyFund derives the display record from a raw listing. It never fails.
func ToPolicyFund(item models.RawListingItem) models.PolicyFund {
	org := item.JurisdictionOrg
	if org == "" {
		org = item.ExecutingOrg
	}
	fundType := ClassifyFundType(item.Title, item.Summary)

	return models.PolicyFund{
		ID:           item.ID,
		Name:         item.Title,
		Organization: org,
		Amount:       ExtractAmount(item.Summary),
		Type:         fundType,
		TypeLabel:    fundType.Label(),
		Deadline:     FormatDeadline(item.Period),
		Requirements: ExtractRequirements(item.Hashtags, item.Target),
		ApplyURL:     ApplyURL(item.URL),
		Description:  Describe(item.Summary),
	}
}

// RegionKeywordsIn returns the region keywords named in text, in RegionKeywords order.
func RegionKeywordsIn(text string) []string {
	var found []string
	for _, kw := range RegionKeywords {
		if strings.Contains(text, kw) {
			found = append(found, kw)
		}
	}
	return found
}
