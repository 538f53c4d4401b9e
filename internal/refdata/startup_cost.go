package refdata

// Startup cost profiles on a 15평 basis. Interior is per 평.
var businessCostData = map[string]BusinessCost{
	"카페": {
		Deposit: Range{2000, 5000}, Interior: InteriorCost{80, 120, 180},
		Equipment: Range{1500, 3000}, Inventory: Range{200, 500}, MonthlyOperating: 300,
		Note: "에스프레소 머신이 비용의 핵심. 중고 장비로 초기 비용 절감 가능",
	},
	"음식점": {
		Deposit: Range{2000, 6000}, Interior: InteriorCost{100, 150, 220},
		Equipment: Range{2000, 5000}, Inventory: Range{300, 800}, MonthlyOperating: 400,
		Note: "주방 설비가 비용의 핵심. 업종에 따라 편차 큼",
	},
	"편의점": {
		Deposit: Range{3000, 5000}, Interior: InteriorCost{50, 70, 100},
		Equipment: Range{3000, 5000}, Inventory: Range{2000, 3000}, MonthlyOperating: 200,
		Note: "프랜차이즈 가입비 별도. 본사 지원으로 초기 비용 절감 가능",
	},
	"미용실": {
		Deposit: Range{1500, 4000}, Interior: InteriorCost{100, 150, 200},
		Equipment: Range{500, 1500}, Inventory: Range{200, 500}, MonthlyOperating: 250,
		Note: "기술력이 핵심. 인테리어보다 입지 선정이 중요",
	},
	"치킨": {
		Deposit: Range{2000, 4000}, Interior: InteriorCost{80, 120, 160},
		Equipment: Range{1500, 3000}, Inventory: Range{300, 600}, MonthlyOperating: 350,
		Note: "배달 중심이면 소형 매장 가능. 프랜차이즈 가입비 별도",
	},
	"호프": {
		Deposit: Range{2500, 5000}, Interior: InteriorCost{100, 150, 200},
		Equipment: Range{1000, 2000}, Inventory: Range{400, 800}, MonthlyOperating: 350,
		Note: "심야 영업으로 인건비 증가. 주류 마진율 높음",
	},
	"분식": {
		Deposit: Range{1500, 3000}, Interior: InteriorCost{60, 90, 130},
		Equipment: Range{800, 1500}, Inventory: Range{200, 400}, MonthlyOperating: 250,
		Note: "학교 앞, 역세권 위주. 회전율이 중요",
	},
	"베이커리": {
		Deposit: Range{2500, 5000}, Interior: InteriorCost{120, 170, 230},
		Equipment: Range{3000, 6000}, Inventory: Range{300, 600}, MonthlyOperating: 400,
		Note: "오븐, 발효기 등 전문 장비 필수. 기술 습득 필요",
	},
	"무인매장": {
		Deposit: Range{1000, 2500}, Interior: InteriorCost{40, 60, 80},
		Equipment: Range{2000, 4000}, Inventory: Range{500, 1500}, MonthlyOperating: 150,
		Note: "키오스크, CCTV 필수. 인건비 절감이 핵심",
	},
	"스터디카페": {
		Deposit: Range{3000, 6000}, Interior: InteriorCost{80, 120, 160},
		Equipment: Range{1500, 3000}, Inventory: Range{100, 300}, MonthlyOperating: 300,
		Note: "좌석당 수익 계산 필요. 24시간 운영 시 관리비 증가",
	},
	"네일샵": {
		Deposit: Range{1000, 2500}, Interior: InteriorCost{80, 120, 160},
		Equipment: Range{300, 800}, Inventory: Range{200, 400}, MonthlyOperating: 200,
		Note: "소자본 창업 가능. 기술력과 단골 확보가 핵심",
	},
	"반려동물": {
		Deposit: Range{2000, 4000}, Interior: InteriorCost{100, 140, 180},
		Equipment: Range{500, 1500}, Inventory: Range{500, 1000}, MonthlyOperating: 300,
		Note: "미용, 용품, 호텔 등 세부 업종에 따라 차이",
	},
}

var regionalCosts = map[string]RegionalCost{
	"서울 강남": {1.8, "전국 최고 임대료. 권리금 높음"},
	"서울 홍대": {1.6, "유동인구 많음. 권리금 높음"},
	"서울 명동": {1.7, "관광특구. 외국인 수요"},
	"서울":    {1.4, "강남/홍대 외 서울 평균"},
	"경기":    {1.1, "서울 근교. 지역 편차 큼"},
	"인천":    {1.0, "서울 대비 저렴"},
	"부산":    {0.95, "해운대/서면 제외 평균"},
	"대구":    {0.9, "동성로 제외 평균"},
	"대전":    {0.85, "둔산동 제외 평균"},
	"광주":    {0.85, "충장로 제외 평균"},
	"울산":    {0.9, "공단 지역 특수성"},
	"세종":    {0.95, "신도시 특수성"},
	"제주":    {1.1, "관광지 프리미엄"},
	"지방":    {0.75, "중소도시 평균"},
}

var costSavingTips = map[string][]string{
	CommonKey: {
		"중고 장비 활용으로 초기 투자 30-50% 절감 가능",
		"권리금 협상으로 500-2000만원 절감 가능",
		"정책자금(소상공인 융자) 활용 시 금리 2-3% 수준",
		"창업 초기 6개월 운영자금 필수 확보",
	},
	"카페": {
		"에스프레소 머신 리스로 초기 비용 절감",
		"테이크아웃 전문점은 면적 줄여 임대료 절감",
		"셀프 인테리어로 30% 절감 가능",
	},
	"음식점": {
		"주방 장비 렌탈/중고 적극 활용",
		"배달 전문점은 홀 면적 최소화",
		"식자재 공동구매로 원가 절감",
	},
	"편의점": {
		"본사 인테리어 지원 프로그램 활용",
		"신규 출점 지원금 협상",
		"폐점 매물 인수로 초기 비용 절감",
	},
	"미용실": {
		"샵인샵으로 초기 투자 최소화",
		"네이버/카카오 예약 활용으로 마케팅비 절감",
		"기존 미용실 인수 검토",
	},
	"무인매장": {
		"통신사 제휴 키오스크로 초기 비용 절감",
		"무인 아이스크림/세탁이 초기 비용 가장 저렴",
		"관리 대행 서비스로 인건비 제로 유지",
	},
}
