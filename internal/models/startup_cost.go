// internal/models/startup_cost.go
package models

// CostRange is a {min, max, estimated} triple in 만원.
type CostRange struct {
	Min       int `json:"min"`
	Max       int `json:"max"`
	Estimated int `json:"estimated"`
}

func (c CostRange) Add(o CostRange) CostRange {
	return CostRange{Min: c.Min + o.Min, Max: c.Max + o.Max, Estimated: c.Estimated + o.Estimated}
}

type CostBreakdown struct {
	Deposit          CostRange `json:"deposit"`
	Interior         CostRange `json:"interior"`
	Equipment        CostRange `json:"equipment"`
	Inventory        CostRange `json:"inventory"`
	OperatingReserve CostRange `json:"operatingReserve"`
}

type StartupCostEstimate struct {
	BusinessType     string        `json:"businessType"`
	Region           string        `json:"region"`
	Size             int           `json:"size"`
	InteriorLevel    string        `json:"interiorLevel"`
	Breakdown        CostBreakdown `json:"breakdown"`
	TotalCost        CostRange     `json:"totalCost"`
	RegionMultiplier float64       `json:"regionMultiplier"`
	RegionNote       string        `json:"regionNote,omitempty"`
	BusinessNote     string        `json:"businessNote,omitempty"`
	Tips             []string      `json:"tips"`
}
