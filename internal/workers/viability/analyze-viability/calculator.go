// internal/workers/viability/analyze-viability/calculator.go
package analyzeviability

import (
	"context"
	"fmt"
	"math"

	apperrors "bizstart-workers/internal/common/errors"
	"bizstart-workers/internal/common/logger"
	"bizstart-workers/internal/common/metrics"
	"bizstart-workers/internal/common/textutil"
	"bizstart-workers/internal/models"
	"bizstart-workers/internal/refdata"
)

// Calculator runs the break-even simulation over the reference tables.
type Calculator struct {
	tables        *refdata.Tables
	costs         CostEstimator
	interiorLevel string
	logger        logger.Logger
}

// NewCalculator builds a calculator. A nil costs always uses the fixed-cost investment fallback.
func NewCalculator(tables *refdata.Tables, costs CostEstimator, interiorLevel string, log logger.Logger) *Calculator {
	if tables == nil {
		tables = refdata.Default()
	}
	return &Calculator{tables: tables, costs: costs, interiorLevel: interiorLevel, logger: log}
}

// Analyze computes the viability of input. Unknown business types are rejected before any
// computation.
func (c *Calculator) Analyze(ctx context.Context, input *Input) (*models.ViabilityResult, error) {
	businessType := refdata.NormalizeBusinessType(input.BusinessType)
	region := refdata.NormalizeRegion(input.Region)

	bm, ok := c.tables.Benchmark(businessType)
	if !ok {
		return nil, apperrors.NewUnknownBusinessTypeError(businessType, c.tables.BusinessTypes())
	}
	if bm.VariableRatio >= 1 || bm.VariableRatio < 0 {
		return nil, apperrors.NewAnalysisFailedError(fmt.Errorf("variable ratio %v for %s is outside [0, 1)", bm.VariableRatio, businessType))
	}

	size := input.Size
	if size <= 0 {
		size = int(refdata.ReferenceAreaSize)
	}

	price := bm.AveragePrice
	if input.AveragePrice != nil && *input.AveragePrice > 0 {
		price = *input.AveragePrice
	}
	if price <= 0 {
		return nil, apperrors.NewAnalysisFailedError(fmt.Errorf("average price for %s must be positive", businessType))
	}

	costs := c.monthlyCosts(bm, region, size, input.MonthlyRent)
	breakEven := breakEvenFor(costs, price)
	scenarios := scenarioTable(breakEven.MonthlyRevenue, costs)
	payback := c.payback(ctx, businessType, region, size, costs.TotalFixed, scenarios.Realistic.Profit)

	return &models.ViabilityResult{
		BusinessType:  businessType,
		Region:        region,
		Size:          size,
		MonthlyCosts:  costs,
		BreakEven:     breakEven,
		Scenarios:     scenarios,
		Payback:       payback,
		Insights:      c.insights(businessType, breakEven, costs, payback),
		BenchmarkNote: bm.Note,
	}, nil
}

func (c *Calculator) monthlyCosts(bm refdata.BusinessBenchmark, region string, size int, rentOverride *int) models.MonthlyCosts {
	var rent int
	if rentOverride != nil && *rentOverride > 0 {
		rent = *rentOverride
	} else {
		rent = textutil.Round(float64(bm.RentPerArea) * float64(size) * c.tables.RentMultiplier(region))
	}

	labor := bm.LaborPerPerson * bm.MinStaff
	utilities := textutil.Round(float64(bm.Utilities) * (float64(size) / refdata.ReferenceAreaSize))

	return models.MonthlyCosts{
		Rent:          rent,
		Labor:         labor,
		Utilities:     utilities,
		Other:         bm.OtherFixed,
		TotalFixed:    rent + labor + utilities + bm.OtherFixed,
		VariableRatio: bm.VariableRatio,
	}
}

func breakEvenFor(costs models.MonthlyCosts, price int) models.BreakEven {
	monthly := textutil.Round(float64(costs.TotalFixed) / (1 - costs.VariableRatio))
	daily := textutil.Round(float64(monthly) / daysPerMonth)
	customers := textutil.Round(float64(daily) / float64(price) * refdata.PriceUnitScale)

	tier := refdata.Classify(refdata.AchievabilityTiers, customers)
	return models.BreakEven{
		MonthlyRevenue:    monthly,
		DailyRevenue:      daily,
		DailyCustomers:    customers,
		AveragePriceWon:   price,
		Achievability:     tier.Label,
		AchievabilityCode: tier.Code,
		AchievabilityNote: tier.Note,
	}
}

func scenarioTable(breakEvenRevenue int, costs models.MonthlyCosts) models.ScenarioTable {
	var table models.ScenarioTable
	for _, s := range refdata.Scenarios {
		revenue := textutil.Round(float64(breakEvenRevenue) * s.Multiplier)
		variable := textutil.Round(float64(revenue) * costs.VariableRatio)
		projection := models.ScenarioProjection{
			Multiplier:   s.Multiplier,
			Revenue:      revenue,
			VariableCost: variable,
			Profit:       revenue - variable - costs.TotalFixed,
		}
		switch s.Name {
		case "pessimistic":
			table.Pessimistic = projection
		case "realistic":
			table.Realistic = projection
		case "optimistic":
			table.Optimistic = projection
		}
	}
	return table
}

func (c *Calculator) payback(ctx context.Context, businessType, region string, size, fixed, realisticProfit int) models.Payback {
	amount, source := c.investment(ctx, businessType, region, size, fixed)

	if realisticProfit <= 0 {
		return models.Payback{
			InvestmentAmount: amount,
			InvestmentSource: source,
			Months:           UnrecoverableMonths,
			Tier:             TierUnrecoverable,
			Note:             unrecoverableNote,
		}
	}

	months := int(math.Ceil(float64(amount) / float64(realisticProfit)))
	tier := refdata.Classify(refdata.PaybackTiers, months)
	return models.Payback{
		InvestmentAmount: amount,
		InvestmentSource: source,
		Months:           months,
		Tier:             tier.Code,
		Note:             tier.Note,
	}
}

// investment asks the cost estimator first; any failure falls back to a year of fixed cost.
func (c *Calculator) investment(ctx context.Context, businessType, region string, size, fixed int) (int, string) {
	if c.costs != nil {
		estimate, err := c.costs.EstimateStartupCost(ctx, businessType, region, size, c.interiorLevel)
		if err == nil && estimate != nil {
			return estimate.TotalCost.Estimated, models.InvestmentFromEstimate
		}
		if err != nil {
			c.logger.Warn("startup cost estimate unavailable, using fixed-cost fallback", map[string]interface{}{
				"businessType": businessType,
				"error":        err.Error(),
			})
		}
	}
	metrics.CostEstimateFallbacks.Inc()
	return fixed * fallbackInvestmentMonths, models.InvestmentFromFallback
}

// insights prepends the conditional insights, in trigger order, to the category and common
// templates.
func (c *Calculator) insights(businessType string, be models.BreakEven, costs models.MonthlyCosts, payback models.Payback) []string {
	var out []string
	if be.AchievabilityCode == "hard" {
		out = append(out, insightHardFootfall)
	}
	if costs.Labor > costs.Rent {
		out = append(out, insightLaborOverRent)
	}
	if payback.Months > paybackReviewMonths {
		out = append(out, insightLongPayback)
	}
	return append(out, c.tables.InsightsFor(businessType)...)
}
