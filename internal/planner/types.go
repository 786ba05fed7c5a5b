package planner

import (
	"github.com/google/uuid"

	"github.com/dmfuentes/smartcart-backend/pkg/enums"
)

// PlanItem is the planner's view of one list entry.
type PlanItem struct {
	ID       uuid.UUID
	Name     string
	Quantity float64
	Unit     enums.Unit
}

// PlanLine is one item priced at one store.
type PlanLine struct {
	ItemID         uuid.UUID  `json:"item_id"`
	Name           string     `json:"name"`
	Quantity       float64    `json:"quantity"`
	Unit           enums.Unit `json:"unit"`
	UnitPriceCents int64      `json:"unit_price_cents"`
	LineTotalCents int64      `json:"line_total_cents"`
	IsDeal         bool       `json:"is_deal"`
	Available      bool       `json:"available"`
}

// StoreAllocation groups the lines a shopper buys at one retailer.
type StoreAllocation struct {
	RetailerID    uuid.UUID  `json:"retailer_id"`
	RetailerName  string     `json:"retailer_name"`
	Lines         []PlanLine `json:"lines"`
	SubtotalCents int64      `json:"subtotal_cents"`
	DealCount     int        `json:"deal_count"`
}

// Plan is one costed shopping plan variant.
type Plan struct {
	Type             enums.PlanType    `json:"type"`
	Stores           []StoreAllocation `json:"stores"`
	StoreCount       int               `json:"store_count"`
	TotalCostCents   int64             `json:"total_cost_cents"`
	SavingsCents     int64             `json:"savings_cents"`
	EstimatedMinutes int               `json:"estimated_minutes"`
}
