// Package refdata holds the immutable reference tables used by the viability and startup-cost
// calculations, together with the free-text normalizers that map user input onto table keys.
//
// Money is expressed in 만원 (10,000 KRW) everywhere except BusinessBenchmark.AveragePrice,
// which is in 원.
package refdata

import "sort"

const (
	// CommonKey indexes the templates that apply to every business type.
	CommonKey = "공통"

	DefaultBusinessType   = "카페"
	DefaultRegion         = "지방"
	DefaultRentMultiplier = 0.5
	DefaultCostMultiplier = 1.0

	// ReferenceAreaSize is the store size, in 평, the utilities baseline refers to.
	ReferenceAreaSize = 15.0
	// PriceUnitScale converts 만원 amounts into 원.
	PriceUnitScale = 10000.0
)

// BusinessBenchmark is the monthly cost structure of a typical store of one business type.
type BusinessBenchmark struct {
	AveragePrice   int     `json:"averagePrice"`
	VariableRatio  float64 `json:"variableRatio"`
	RentPerArea    int     `json:"rentPerArea"`
	LaborPerPerson int     `json:"laborPerPerson"`
	MinStaff       int     `json:"minStaff"`
	Utilities      int     `json:"utilities"`
	OtherFixed     int     `json:"otherFixed"`
	ConversionRate float64 `json:"conversionRate"`
	OperatingHours int     `json:"operatingHours"`
	Note           string  `json:"note"`
}

// Range is an inclusive min/max pair in 만원.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Midpoint returns the unrounded average of Min and Max.
func (r Range) Midpoint() float64 {
	return float64(r.Min+r.Max) / 2
}

// InteriorCost is the fit-out cost per 평 for each finish tier.
type InteriorCost struct {
	Basic    int `json:"basic"`
	Standard int `json:"standard"`
	Premium  int `json:"premium"`
}

// BusinessCost is the one-off startup cost profile of a business type (15평 basis).
type BusinessCost struct {
	Deposit          Range        `json:"deposit"`
	Interior         InteriorCost `json:"interior"`
	Equipment        Range        `json:"equipment"`
	Inventory        Range        `json:"inventory"`
	MonthlyOperating int          `json:"monthlyOperating"`
	Note             string       `json:"note"`
}

type RegionalCost struct {
	Multiplier float64 `json:"multiplier"`
	Note       string  `json:"note"`
}

// Tables bundles every lookup table. Values are shared between requests and must not be
// mutated after construction.
type Tables struct {
	Benchmarks      map[string]BusinessBenchmark
	RentMultipliers map[string]float64
	Insights        map[string][]string
	CostData        map[string]BusinessCost
	RegionalCosts   map[string]RegionalCost
	CostSavingTips  map[string][]string
}

var defaultTables = &Tables{
	Benchmarks:      businessBenchmarks,
	RentMultipliers: rentMultipliers,
	Insights:        breakevenInsights,
	CostData:        businessCostData,
	RegionalCosts:   regionalCosts,
	CostSavingTips:  costSavingTips,
}

// Default returns the built-in reference tables.
func Default() *Tables {
	return defaultTables
}

func (t *Tables) Benchmark(businessType string) (BusinessBenchmark, bool) {
	b, ok := t.Benchmarks[businessType]
	return b, ok
}

// RentMultiplier falls back to DefaultRentMultiplier for regions without an entry.
func (t *Tables) RentMultiplier(region string) float64 {
	if m, ok := t.RentMultipliers[region]; ok {
		return m
	}
	return DefaultRentMultiplier
}

func (t *Tables) Cost(businessType string) (BusinessCost, bool) {
	c, ok := t.CostData[businessType]
	return c, ok
}

// RegionalCost falls back to a neutral multiplier for regions without an entry.
func (t *Tables) RegionalCost(region string) RegionalCost {
	if rc, ok := t.RegionalCosts[region]; ok {
		return rc
	}
	return RegionalCost{Multiplier: DefaultCostMultiplier}
}

// InsightsFor returns the category templates followed by the common ones.
func (t *Tables) InsightsFor(businessType string) []string {
	return withCommon(t.Insights, businessType)
}

// TipsFor returns the category cost-saving tips followed by the common ones.
func (t *Tables) TipsFor(businessType string) []string {
	return withCommon(t.CostSavingTips, businessType)
}

func withCommon(src map[string][]string, key string) []string {
	out := make([]string, 0, len(src[key])+len(src[CommonKey]))
	out = append(out, src[key]...)
	out = append(out, src[CommonKey]...)
	return out
}

// BusinessTypes lists the categories that have a benchmark, in canonical order. Categories
// outside the canonical order are appended alphabetically.
func (t *Tables) BusinessTypes() []string {
	out := make([]string, 0, len(t.Benchmarks))
	seen := make(map[string]bool, len(t.Benchmarks))
	for _, bt := range businessTypeOrder {
		if _, ok := t.Benchmarks[bt]; ok {
			out = append(out, bt)
			seen[bt] = true
		}
	}
	var extra []string
	for bt := range t.Benchmarks {
		if !seen[bt] {
			extra = append(extra, bt)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}
