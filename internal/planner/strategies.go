package planner

import (
	"github.com/shopspring/decimal"

	"github.com/dmfuentes/smartcart-backend/pkg/db/models"
	"github.com/dmfuentes/smartcart-backend/pkg/enums"
)

const (
	// scoring weights for the balanced strategy
	balancedAvailWeight = 0.4
	balancedDealWeight  = 0.3
	balancedCostWeight  = 0.3

	// assumed single-store markup baselines for reported savings
	bestValueBaselinePct = 15
	balancedBaselinePct  = 12

	// rough trip heuristics in minutes
	minutesPerStore = 15
	minutesPerLine  = 2
)

// singleStorePlan picks the one retailer that maximizes
// availability + 0.1*deals - cost/10000 and keeps every item on the plan,
// flagging what that store cannot supply.
func singleStorePlan(items []PlanItem, retailers []models.Retailer, quotes quoteMatrix) Plan {
	bestIdx := 0
	bestScore := scoreSingleStore(items, quotes[0])
	for r := 1; r < len(retailers); r++ {
		if score := scoreSingleStore(items, quotes[r]); score > bestScore {
			bestIdx, bestScore = r, score
		}
	}

	allocation := buildAllocation(retailers[bestIdx], items, quotes[bestIdx])
	return Plan{
		Type:             enums.PlanTypeSingleStore,
		Stores:           []StoreAllocation{allocation},
		StoreCount:       1,
		TotalCostCents:   allocation.SubtotalCents,
		EstimatedMinutes: estimateMinutes(1, len(items)),
	}
}

func scoreSingleStore(items []PlanItem, quotes []Quote) float64 {
	available := 0
	deals := 0
	var cost int64
	for i, quote := range quotes {
		if !quote.Available {
			continue
		}
		available++
		if quote.IsDeal {
			deals++
		}
		cost += lineTotalCents(quote.PriceCents, items[i].Quantity)
	}
	availRate := float64(available) / float64(len(items))
	return availRate + 0.1*float64(deals) - float64(cost)/10000
}

// bestValuePlan assigns every item to the retailer quoting its lowest price,
// preferring retailers that actually stock it, and reports savings against
// an assumed 15%-pricier single-store baseline.
func bestValuePlan(items []PlanItem, retailers []models.Retailer, quotes quoteMatrix) Plan {
	type assignment struct {
		retailerIdx int
		quote       Quote
	}

	assignments := make([]assignment, len(items))
	for i := range items {
		chosen := -1
		chosenAvailable := false
		for r := range retailers {
			quote := quotes[r][i]
			if chosen == -1 {
				chosen, chosenAvailable = r, quote.Available
				continue
			}
			current := quotes[chosen][i]
			if quote.Available && !chosenAvailable {
				chosen, chosenAvailable = r, true
				continue
			}
			if quote.Available == chosenAvailable && quote.PriceCents < current.PriceCents {
				chosen = r
			}
		}
		assignments[i] = assignment{retailerIdx: chosen, quote: quotes[chosen][i]}
	}

	var stores []StoreAllocation
	storeIdxByRetailer := make(map[int]int)
	var total int64
	for i, assigned := range assignments {
		storeIdx, ok := storeIdxByRetailer[assigned.retailerIdx]
		if !ok {
			storeIdx = len(stores)
			storeIdxByRetailer[assigned.retailerIdx] = storeIdx
			retailer := retailers[assigned.retailerIdx]
			stores = append(stores, StoreAllocation{RetailerID: retailer.ID, RetailerName: retailer.Name})
		}
		line := buildLine(items[i], assigned.quote)
		stores[storeIdx].Lines = append(stores[storeIdx].Lines, line)
		if line.Available {
			stores[storeIdx].SubtotalCents += line.LineTotalCents
			total += line.LineTotalCents
			if line.IsDeal {
				stores[storeIdx].DealCount++
			}
		}
	}

	lineCount := 0
	for _, store := range stores {
		lineCount += len(store.Lines)
	}

	return Plan{
		Type:             enums.PlanTypeBestValue,
		Stores:           stores,
		StoreCount:       len(stores),
		TotalCostCents:   total,
		SavingsCents:     impliedSavings(total, bestValueBaselinePct),
		EstimatedMinutes: estimateMinutes(len(stores), lineCount),
	}
}

// balancedPlan picks one retailer weighing availability, deal density, and
// cost against the catalog reference, and reports savings against an assumed
// 12%-pricier baseline.
func balancedPlan(items []PlanItem, retailers []models.Retailer, quotes quoteMatrix, referenceCostCents int64) Plan {
	bestIdx := 0
	bestScore := scoreBalanced(items, quotes[0], referenceCostCents)
	for r := 1; r < len(retailers); r++ {
		if score := scoreBalanced(items, quotes[r], referenceCostCents); score > bestScore {
			bestIdx, bestScore = r, score
		}
	}

	allocation := buildAllocation(retailers[bestIdx], items, quotes[bestIdx])
	return Plan{
		Type:             enums.PlanTypeBalanced,
		Stores:           []StoreAllocation{allocation},
		StoreCount:       1,
		TotalCostCents:   allocation.SubtotalCents,
		SavingsCents:     impliedSavings(allocation.SubtotalCents, balancedBaselinePct),
		EstimatedMinutes: estimateMinutes(1, len(items)),
	}
}

func scoreBalanced(items []PlanItem, quotes []Quote, referenceCostCents int64) float64 {
	available := 0
	deals := 0
	var cost int64
	for i, quote := range quotes {
		if !quote.Available {
			continue
		}
		available++
		if quote.IsDeal {
			deals++
		}
		cost += lineTotalCents(quote.PriceCents, items[i].Quantity)
	}

	itemCount := float64(len(items))
	availRate := float64(available) / itemCount
	dealDensity := float64(deals) / itemCount
	costScore := 1 - float64(cost)/(itemCount*float64(referenceCostCents))
	return balancedAvailWeight*availRate + balancedDealWeight*dealDensity + balancedCostWeight*costScore
}

func buildAllocation(retailer models.Retailer, items []PlanItem, quotes []Quote) StoreAllocation {
	allocation := StoreAllocation{
		RetailerID:   retailer.ID,
		RetailerName: retailer.Name,
		Lines:        make([]PlanLine, 0, len(items)),
	}
	for i, item := range items {
		line := buildLine(item, quotes[i])
		allocation.Lines = append(allocation.Lines, line)
		if line.Available {
			allocation.SubtotalCents += line.LineTotalCents
			if line.IsDeal {
				allocation.DealCount++
			}
		}
	}
	return allocation
}

func buildLine(item PlanItem, quote Quote) PlanLine {
	line := PlanLine{
		ItemID:         item.ID,
		Name:           item.Name,
		Quantity:       item.Quantity,
		Unit:           item.Unit,
		UnitPriceCents: quote.PriceCents,
		IsDeal:         quote.IsDeal,
		Available:      quote.Available,
	}
	if quote.Available {
		line.LineTotalCents = lineTotalCents(quote.PriceCents, item.Quantity)
	}
	return line
}

// lineTotalCents multiplies a unit price by a possibly fractional quantity,
// rounding half up to whole cents.
func lineTotalCents(priceCents int64, qty float64) int64 {
	return decimal.NewFromInt(priceCents).
		Mul(decimal.NewFromFloat(qty)).
		Round(0).
		IntPart()
}

// impliedSavings is the delta against a baseline priced pct percent higher.
func impliedSavings(totalCents int64, pct int64) int64 {
	return decimal.NewFromInt(totalCents).
		Mul(decimal.NewFromInt(pct)).
		Div(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}

func estimateMinutes(storeCount, lineCount int) int {
	if lineCount == 0 {
		return 0
	}
	return storeCount*minutesPerStore + lineCount*minutesPerLine
}
