// internal/models/viability.go
package models

// All money amounts are in 만원 unless the field name says otherwise.

type ViabilityResult struct {
	BusinessType  string        `json:"businessType"`
	Region        string        `json:"region"`
	Size          int           `json:"size"`
	MonthlyCosts  MonthlyCosts  `json:"monthlyCosts"`
	BreakEven     BreakEven     `json:"breakEven"`
	Scenarios     ScenarioTable `json:"scenarios"`
	Payback       Payback       `json:"payback"`
	Insights      []string      `json:"insights"`
	BenchmarkNote string        `json:"benchmarkNote,omitempty"`
}

type MonthlyCosts struct {
	Rent          int     `json:"rent"`
	Labor         int     `json:"labor"`
	Utilities     int     `json:"utilities"`
	Other         int     `json:"other"`
	TotalFixed    int     `json:"totalFixed"`
	VariableRatio float64 `json:"variableRatio"`
}

type BreakEven struct {
	MonthlyRevenue    int    `json:"monthlyRevenue"`
	DailyRevenue      int    `json:"dailyRevenue"`
	DailyCustomers    int    `json:"dailyCustomers"`
	AveragePriceWon   int    `json:"averagePriceWon"`
	Achievability     string `json:"achievability"`
	AchievabilityCode string `json:"achievabilityCode"`
	AchievabilityNote string `json:"achievabilityNote"`
}

type ScenarioProjection struct {
	Multiplier   float64 `json:"multiplier"`
	Revenue      int     `json:"revenue"`
	VariableCost int     `json:"variableCost"`
	Profit       int     `json:"profit"`
}

type ScenarioTable struct {
	Pessimistic ScenarioProjection `json:"pessimistic"`
	Realistic   ScenarioProjection `json:"realistic"`
	Optimistic  ScenarioProjection `json:"optimistic"`
}

// InvestmentSource values.
const (
	InvestmentFromEstimate = "startup-cost-estimate"
	InvestmentFromFallback = "fixed-cost-x12"
)

type Payback struct {
	InvestmentAmount int    `json:"investmentAmount"`
	InvestmentSource string `json:"investmentSource"`
	Months           int    `json:"months"`
	Tier             string `json:"tier"`
	Note             string `json:"note"`
}
