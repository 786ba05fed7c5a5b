// Package quantity suggests realistic purchase quantities for list items,
// driven by the catalog's category assignment and per-category rule chains.
package quantity

import (
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dmfuentes/smartcart-backend/internal/catalog"
	"github.com/dmfuentes/smartcart-backend/pkg/enums"
)

// noOpDelta is the change threshold below which a same-unit suggestion is
// dropped in favor of the caller's original quantity.
const noOpDelta = 0.25

// Suggestion is the normalizer's advisory output. Changed is false when the
// input was already shopping-sane.
type Suggestion struct {
	Quantity float64    `json:"quantity"`
	Unit     enums.Unit `json:"unit"`
	Reason   string     `json:"reason"`
	Changed  bool       `json:"changed"`
}

type Categorizer interface {
	Categorize(raw string) catalog.Profile
}

type Service struct {
	catalog Categorizer
	log     zerolog.Logger
}

type ServiceParams struct {
	Catalog Categorizer
	Log     zerolog.Logger
}

func NewService(params ServiceParams) *Service {
	return &Service{catalog: params.Catalog, log: params.Log}
}

// Normalize suggests a purchase quantity and unit for an item. The result is
// advisory and total: every input yields a suggestion, and inputs that are
// already sane come back verbatim.
func (s *Service) Normalize(name string, qty float64, unit enums.Unit) Suggestion {
	if !unit.IsValid() {
		unit = enums.DefaultUnit
	}

	profile := s.catalog.Categorize(name)
	key := strings.ToLower(profile.CanonicalName)

	adjQty, adjUnit := qty, unit
	reason := ""
	matched := false
	if chain, ok := categoryRules[profile.Category]; ok {
		adjQty, adjUnit, reason, matched = chain.apply(key, qty, unit)
	}

	// generic count-to-weight conversion for items shelved by the pound
	if !matched && unit == enums.UnitCount && profile.SuggestedUnit == enums.UnitLB {
		adjQty = qty * unitWeightFor(key)
		adjUnit = enums.UnitLB
		reason = "converted count to pounds"
	}

	adjQty = roundFor(adjQty, adjUnit)

	if adjUnit == unit && math.Abs(adjQty-qty) < noOpDelta {
		return Suggestion{Quantity: qty, Unit: unit, Reason: "no conversion needed", Changed: false}
	}
	if reason == "" {
		reason = "adjusted to a typical purchase size"
	}
	return Suggestion{Quantity: adjQty, Unit: adjUnit, Reason: reason, Changed: true}
}

// roundFor snaps a quantity to the granularity its unit is actually sold in
// and enforces the minimum purchase floor.
func roundFor(qty float64, unit enums.Unit) float64 {
	switch unit {
	case enums.UnitLB:
		qty = math.Round(qty*4) / 4
		if qty < 0.5 {
			qty = 0.5
		}
	case enums.UnitDozen:
		qty = math.Round(qty*2) / 2
		if qty < 0.5 {
			qty = 0.5
		}
	default:
		qty = math.Round(qty)
		if qty < 1 {
			qty = 1
		}
	}
	return qty
}
