package refdata

import "strings"

type keywordRule struct {
	key      string
	keywords []string
}

// Rules are tried in order; the first rule with a keyword contained in the input wins.
var businessTypeRules = []keywordRule{
	{"스터디카페", []string{"스터디카페"}},
	{"카페", []string{"커피", "카페"}},
	{"음식점", []string{"음식", "식당", "레스토랑"}},
	{"편의점", []string{"편의점", "마트"}},
	{"미용실", []string{"미용", "헤어", "살롱"}},
	{"치킨", []string{"치킨"}},
	{"호프", []string{"호프", "맥주", "술집"}},
	{"분식", []string{"분식", "떡볶이"}},
	{"베이커리", []string{"빵", "베이커리", "제과"}},
	{"무인매장", []string{"무인"}},
	{"스터디카페", []string{"스터디", "독서실"}},
	{"네일샵", []string{"네일", "손톱"}},
	{"반려동물", []string{"반려", "애견", "펫"}},
}

var regionRules = []keywordRule{
	{"서울 강남", []string{"강남"}},
	{"서울 홍대", []string{"홍대", "합정", "연남"}},
	{"서울 명동", []string{"명동", "을지로"}},
	{"서울", []string{"서울"}},
	{"경기", []string{"경기", "수원", "성남"}},
	{"인천", []string{"인천"}},
	{"부산", []string{"부산"}},
	{"대구", []string{"대구"}},
	{"대전", []string{"대전"}},
	{"광주", []string{"광주"}},
	{"울산", []string{"울산"}},
	{"세종", []string{"세종"}},
	{"제주", []string{"제주"}},
}

// NormalizeBusinessType maps free text onto a business-type key. Unmatched input yields
// DefaultBusinessType; it never fails.
func NormalizeBusinessType(input string) string {
	return matchRules(businessTypeRules, input, DefaultBusinessType)
}

// NormalizeRegion maps free text onto a region key. Unmatched input yields DefaultRegion.
func NormalizeRegion(input string) string {
	return matchRules(regionRules, input, DefaultRegion)
}

func matchRules(rules []keywordRule, input, fallback string) string {
	lower := strings.ToLower(input)
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.key
			}
		}
	}
	return fallback
}
