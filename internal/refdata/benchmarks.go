package refdata

// Source: 소상공인진흥공단 업종별 원가 분석, 프랜차이즈 정보공개서.

var businessTypeOrder = []string{
	"카페", "음식점", "편의점", "미용실", "치킨", "호프",
	"분식", "베이커리", "무인매장", "스터디카페", "네일샵", "반려동물",
}

var businessBenchmarks = map[string]BusinessBenchmark{
	"카페": {
		AveragePrice: 5500, VariableRatio: 0.35, RentPerArea: 15, LaborPerPerson: 230, MinStaff: 2,
		Utilities: 40, OtherFixed: 30, ConversionRate: 0.015, OperatingHours: 12,
		Note: "음료 원가율 낮음, 디저트 추가 시 객단가 상승",
	},
	"음식점": {
		AveragePrice: 12000, VariableRatio: 0.4, RentPerArea: 18, LaborPerPerson: 250, MinStaff: 3,
		Utilities: 60, OtherFixed: 40, ConversionRate: 0.02, OperatingHours: 10,
		Note: "식재료 원가 관리가 핵심, 배달 시 수수료 15-20% 추가",
	},
	"편의점": {
		AveragePrice: 8000, VariableRatio: 0.75, RentPerArea: 12, LaborPerPerson: 220, MinStaff: 2,
		Utilities: 50, OtherFixed: 25, ConversionRate: 0.05, OperatingHours: 24,
		Note: "마진율 낮지만 회전율 높음, 24시간 운영 시 인건비 증가",
	},
	"미용실": {
		AveragePrice: 35000, VariableRatio: 0.15, RentPerArea: 14, LaborPerPerson: 280, MinStaff: 2,
		Utilities: 30, OtherFixed: 30, ConversionRate: 0.01, OperatingHours: 10,
		Note: "인건비 비중 높음, 기술력에 따른 객단가 편차 큼",
	},
	"치킨": {
		AveragePrice: 22000, VariableRatio: 0.45, RentPerArea: 12, LaborPerPerson: 230, MinStaff: 2,
		Utilities: 50, OtherFixed: 35, ConversionRate: 0.025, OperatingHours: 10,
		Note: "배달 매출 비중 높음, 배달앱 수수료 고려 필요",
	},
	"호프": {
		AveragePrice: 30000, VariableRatio: 0.35, RentPerArea: 16, LaborPerPerson: 240, MinStaff: 2,
		Utilities: 45, OtherFixed: 35, ConversionRate: 0.02, OperatingHours: 8,
		Note: "주류 마진 높음, 야간 영업으로 인건비 할증",
	},
	"분식": {
		AveragePrice: 8000, VariableRatio: 0.4, RentPerArea: 10, LaborPerPerson: 220, MinStaff: 2,
		Utilities: 35, OtherFixed: 25, ConversionRate: 0.03, OperatingHours: 12,
		Note: "객단가 낮지만 회전율 높음, 학원가/역세권 유리",
	},
	"베이커리": {
		AveragePrice: 15000, VariableRatio: 0.35, RentPerArea: 18, LaborPerPerson: 260, MinStaff: 3,
		Utilities: 55, OtherFixed: 40, ConversionRate: 0.02, OperatingHours: 12,
		Note: "새벽 작업으로 인건비 증가, 폐기 손실 관리 중요",
	},
	"무인매장": {
		AveragePrice: 6000, VariableRatio: 0.6, RentPerArea: 8, LaborPerPerson: 0, MinStaff: 0,
		Utilities: 40, OtherFixed: 50, ConversionRate: 0.04, OperatingHours: 24,
		Note: "인건비 제로, 기타 고정비에 관리/유지보수 포함",
	},
	"스터디카페": {
		AveragePrice: 10000, VariableRatio: 0.1, RentPerArea: 10, LaborPerPerson: 220, MinStaff: 1,
		Utilities: 80, OtherFixed: 40, ConversionRate: 0.015, OperatingHours: 24,
		Note: "전기료 비중 높음, 좌석당 수익 계산 필요",
	},
	"네일샵": {
		AveragePrice: 50000, VariableRatio: 0.1, RentPerArea: 12, LaborPerPerson: 280, MinStaff: 1,
		Utilities: 25, OtherFixed: 25, ConversionRate: 0.008, OperatingHours: 10,
		Note: "인건비 비중 매우 높음, 예약제 운영으로 안정적",
	},
	"반려동물": {
		AveragePrice: 45000, VariableRatio: 0.25, RentPerArea: 14, LaborPerPerson: 250, MinStaff: 2,
		Utilities: 40, OtherFixed: 35, ConversionRate: 0.012, OperatingHours: 10,
		Note: "미용, 용품, 호텔 등 세부 업종에 따라 편차",
	},
}

// rentMultipliers scale RentPerArea; 서울 강남 is the 1.0 reference.
var rentMultipliers = map[string]float64{
	"서울 강남": 1.0,
	"서울 홍대": 0.9,
	"서울 명동": 0.95,
	"서울":    0.7,
	"경기":    0.5,
	"인천":    0.45,
	"부산":    0.4,
	"대구":    0.38,
	"대전":    0.35,
	"광주":    0.35,
	"울산":    0.38,
	"세종":    0.4,
	"제주":    0.5,
	"지방":    0.3,
}

var breakevenInsights = map[string][]string{
	CommonKey: {
		"손익분기점은 최소 목표이며, 실제 수익을 위해서는 20-30% 초과 매출 필요",
		"고정비 절감이 손익분기점 낮추는 가장 효과적인 방법",
		"창업 초기 6개월은 적자 감수 필요, 운영자금 확보 필수",
	},
	"카페": {
		"테이크아웃 비중 높이면 좌석 회전율 무관하게 매출 증대 가능",
		"원두/시럽 등 원재료 대량 구매로 원가율 3-5% 절감 가능",
		"디저트 메뉴 추가로 객단가 30-50% 상승 효과",
	},
	"음식점": {
		"점심 특선 메뉴로 회전율 높이고, 저녁에 객단가 높이는 전략",
		"배달앱 수수료(15-20%) 감안한 메뉴 가격 책정 필요",
		"식재료 로스율 관리로 원가율 5% 절감 가능",
	},
	"편의점": {
		"담배, 주류 등 필수품으로 기본 매출 확보",
		"PB상품 비중 높이면 마진율 개선",
		"24시간 운영 시 야간 인건비 할증(1.5배) 고려",
	},
	"미용실": {
		"단골 확보가 안정적 매출의 핵심",
		"시술 시간 단축으로 일 고객수 증대 가능",
		"제품 판매(헤어케어 등) 추가 수익원 확보",
	},
	"치킨": {
		"배달앱 순위 관리가 매출에 직접적 영향",
		"세트메뉴로 객단가 상승 유도",
		"자체 배달 시 수수료 절감 가능",
	},
	"무인매장": {
		"인건비 제로로 손익분기점 낮음",
		"CCTV, 키오스크 유지보수 비용 정기 발생",
		"도난/파손 손실 3-5% 감안 필요",
	},
}

// Scenario is a fixed revenue multiple of the break-even revenue.
type Scenario struct {
	Name       string
	Multiplier float64
}

// Scenarios are ordered by ascending multiplier.
var Scenarios = []Scenario{
	{Name: "pessimistic", Multiplier: 0.7},
	{Name: "realistic", Multiplier: 1.2},
	{Name: "optimistic", Multiplier: 1.8},
}

// Tier is an upper-bounded classification band. A band with MaxValue < 0 is unbounded.
type Tier struct {
	Code     string
	Label    string
	MaxValue int
	Note     string
}

// AchievabilityTiers classify the required daily customer count.
var AchievabilityTiers = []Tier{
	{Code: "easy", Label: "쉬움", MaxValue: 50, Note: "일 50명 미만, 충분히 달성 가능"},
	{Code: "moderate", Label: "보통", MaxValue: 100, Note: "일 50-100명, 적극적 마케팅 필요"},
	{Code: "hard", Label: "어려움", MaxValue: -1, Note: "일 100명 초과, 높은 유동인구 필수"},
}

// PaybackTiers classify the months needed to recoup the investment.
var PaybackTiers = []Tier{
	{Code: "excellent", Label: "매우 양호", MaxValue: 12, Note: "1년 이내 회수, 매우 양호"},
	{Code: "good", Label: "양호", MaxValue: 24, Note: "2년 이내 회수, 양호"},
	{Code: "average", Label: "보통", MaxValue: 36, Note: "3년 이내 회수, 보통"},
	{Code: "poor", Label: "재검토", MaxValue: -1, Note: "3년 초과, 재검토 권장"},
}

// Classify returns the first tier whose bound is not exceeded by v.
func Classify(tiers []Tier, v int) Tier {
	for _, t := range tiers {
		if t.MaxValue < 0 || v <= t.MaxValue {
			return t
		}
	}
	return tiers[len(tiers)-1]
}
