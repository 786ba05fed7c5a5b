package planner

import (
	"context"

	"github.com/dmfuentes/smartcart-backend/pkg/db/models"
)

// Quote is one retailer's answer for one item.
type Quote struct {
	PriceCents int64
	IsDeal     bool
	Available  bool
}

// PricingOracle answers per-item, per-retailer price questions. Plans ask it
// once per (item, retailer) pair and expect deterministic answers within a
// planning run.
type PricingOracle interface {
	Quote(ctx context.Context, retailer models.Retailer, itemName string) (Quote, error)
}
