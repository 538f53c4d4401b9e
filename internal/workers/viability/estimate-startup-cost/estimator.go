// internal/workers/viability/estimate-startup-cost/estimator.go
package estimatestartupcost

import (
	"context"
	"fmt"

	apperrors "bizstart-workers/internal/common/errors"
	"bizstart-workers/internal/common/textutil"
	"bizstart-workers/internal/models"
	"bizstart-workers/internal/refdata"
)

// Estimator computes startup investment from the reference cost tables. It holds no mutable
// state and is shared by the estimate-startup-cost and analyze-viability workers.
type Estimator struct {
	tables *refdata.Tables
}

func NewEstimator(tables *refdata.Tables) *Estimator {
	if tables == nil {
		tables = refdata.Default()
	}
	return &Estimator{tables: tables}
}

// EstimateStartupCost normalizes the business type and region, then prices every cost item.
// The regional multiplier applies to the deposit only.
func (e *Estimator) EstimateStartupCost(ctx context.Context, businessType, region string, size int, tier string) (*models.StartupCostEstimate, error) {
	if size <= 0 {
		size = int(refdata.ReferenceAreaSize)
	}
	if tier == "" {
		tier = TierStandard
	}

	normalizedType := refdata.NormalizeBusinessType(businessType)
	normalizedRegion := refdata.NormalizeRegion(region)

	cost, ok := e.tables.Cost(normalizedType)
	if !ok {
		return nil, apperrors.NewUnknownBusinessTypeError(normalizedType, e.tables.BusinessTypes())
	}

	var perArea int
	switch tier {
	case TierBasic:
		perArea = cost.Interior.Basic
	case TierStandard:
		perArea = cost.Interior.Standard
	case TierPremium:
		perArea = cost.Interior.Premium
	default:
		return nil, apperrors.NewInvalidInputError(fmt.Sprintf("interiorLevel: %q is not one of basic, standard, premium", tier))
	}

	rc := e.tables.RegionalCost(normalizedRegion)

	breakdown := models.CostBreakdown{
		Deposit: models.CostRange{
			Min:       textutil.Round(float64(cost.Deposit.Min) * rc.Multiplier),
			Max:       textutil.Round(float64(cost.Deposit.Max) * rc.Multiplier),
			Estimated: textutil.Round(cost.Deposit.Midpoint() * rc.Multiplier),
		},
		Interior: models.CostRange{
			Min:       cost.Interior.Basic * size,
			Max:       cost.Interior.Premium * size,
			Estimated: perArea * size,
		},
		Equipment:        midpointRange(cost.Equipment),
		Inventory:        midpointRange(cost.Inventory),
		OperatingReserve: fixedRange(cost.MonthlyOperating * operatingReserveMonths),
	}

	total := breakdown.Deposit.
		Add(breakdown.Interior).
		Add(breakdown.Equipment).
		Add(breakdown.Inventory).
		Add(breakdown.OperatingReserve)

	return &models.StartupCostEstimate{
		BusinessType:     normalizedType,
		Region:           normalizedRegion,
		Size:             size,
		InteriorLevel:    tier,
		Breakdown:        breakdown,
		TotalCost:        total,
		RegionMultiplier: rc.Multiplier,
		RegionNote:       rc.Note,
		BusinessNote:     cost.Note,
		Tips:             e.tables.TipsFor(normalizedType),
	}, nil
}

func midpointRange(r refdata.Range) models.CostRange {
	return models.CostRange{Min: r.Min, Max: r.Max, Estimated: textutil.Round(r.Midpoint())}
}

func fixedRange(v int) models.CostRange {
	return models.CostRange{Min: v, Max: v, Estimated: v}
}
