package quantity

import (
	"math"
	"strings"

	"github.com/dmfuentes/smartcart-backend/pkg/enums"
)

// adjustment rewrites a (quantity, unit) pair into a shopping-sane one and
// names the reason shown to the caller.
type adjustment func(name string, qty float64, unit enums.Unit) (float64, enums.Unit, string)

// rule pairs a keyword predicate with an adjustment. Empty keywords make the
// rule a category catch-all.
type rule struct {
	keywords []string
	apply    adjustment
}

func (r rule) matches(name string) bool {
	if len(r.keywords) == 0 {
		return true
	}
	for _, kw := range r.keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// CategoryRule is the ordered rule chain for one category. The first rule
// whose predicate matches wins; later rules are never consulted.
type CategoryRule struct {
	rules []rule
}

func (c CategoryRule) apply(name string, qty float64, unit enums.Unit) (float64, enums.Unit, string, bool) {
	for _, r := range c.rules {
		if !r.matches(name) {
			continue
		}
		adjQty, adjUnit, reason := r.apply(name, qty, unit)
		return adjQty, adjUnit, reason, true
	}
	return qty, unit, "", false
}

// unitWeightsLB approximates one item's weight in pounds for COUNT to LB
// conversion on weight-sold produce.
var unitWeightsLB = map[string]float64{
	"banana":  0.33,
	"apple":   0.35,
	"orange":  0.4,
	"tomato":  0.4,
	"potato":  0.5,
	"onion":   0.45,
	"carrot":  0.15,
	"avocado": 0.4,
	"lemon":   0.25,
	"lime":    0.15,
	"peach":   0.35,
	"pear":    0.4,
}

const defaultUnitWeightLB = 0.5

func unitWeightFor(name string) float64 {
	for token, weight := range unitWeightsLB {
		if strings.Contains(name, token) {
			return weight
		}
	}
	return defaultUnitWeightLB
}

var categoryRules = map[enums.Category]CategoryRule{
	enums.CategoryProduce: {rules: []rule{
		{
			keywords: []string{"banana", "apple"},
			apply: func(name string, qty float64, unit enums.Unit) (float64, enums.Unit, string) {
				if unit != enums.UnitCount {
					return qty, unit, ""
				}
				lbs := qty * unitWeightFor(name)
				// typical bunch at the low end, spoilage cap at the high end
				if lbs < 2 {
					return 2, enums.UnitLB, "rounded to a typical 2 lb bunch"
				}
				if lbs > 3 {
					return 3, enums.UnitLB, "capped at 3 lb to limit spoilage"
				}
				return lbs, enums.UnitLB, "converted count to pounds"
			},
		},
	}},
	enums.CategoryDairyEggs: {rules: []rule{
		{
			keywords: []string{"egg"},
			apply: func(name string, qty float64, unit enums.Unit) (float64, enums.Unit, string) {
				if unit == enums.UnitDozen {
					return qty, unit, ""
				}
				return dozensForCount(qty), enums.UnitDozen, "eggs are sold by the dozen"
			},
		},
		{
			keywords: []string{"milk"},
			apply: func(name string, qty float64, unit enums.Unit) (float64, enums.Unit, string) {
				if unit != enums.UnitGallon && unit != enums.UnitQuart {
					unit = enums.UnitGallon
				}
				if unit == enums.UnitGallon && qty > 2 {
					return 2, enums.UnitGallon, "capped at 2 gallons before it spoils"
				}
				return qty, unit, ""
			},
		},
		{
			keywords: []string{"yogurt"},
			apply: func(name string, qty float64, unit enums.Unit) (float64, enums.Unit, string) {
				if unit == enums.UnitOZ && qty >= 32 {
					return qty, unit, ""
				}
				if unit == enums.UnitCount && qty < 4 {
					return 4, enums.UnitCount, "yogurt is sold in 4-packs"
				}
				return qty, unit, ""
			},
		},
	}},
	enums.CategoryMeatSeafood: {rules: []rule{
		{
			keywords: []string{"chicken", "ground", "beef", "turkey"},
			apply: func(name string, qty float64, unit enums.Unit) (float64, enums.Unit, string) {
				lbs := qty
				if unit != enums.UnitLB {
					lbs = math.Max(1, qty)
				}
				if lbs < 2 {
					return 2, enums.UnitLB, "rounded up to a 2 lb family portion"
				}
				if lbs > 4 {
					return 4, enums.UnitLB, "capped at a 4 lb family portion"
				}
				return lbs, enums.UnitLB, "portioned in pounds"
			},
		},
		{
			apply: func(name string, qty float64, unit enums.Unit) (float64, enums.Unit, string) {
				if unit == enums.UnitCount {
					return math.Max(1, qty), enums.UnitLB, "meat is sold by the pound"
				}
				return qty, unit, ""
			},
		},
	}},
	enums.CategoryPantryCanned: {rules: []rule{
		{
			keywords: []string{"pasta", "rice", "canned", "bean", "soup", "sauce"},
			apply: func(name string, qty float64, unit enums.Unit) (float64, enums.Unit, string) {
				if unit != enums.UnitCount {
					return qty, unit, ""
				}
				if qty < 2 {
					return 2, unit, "nudged to a 2-unit purchase size"
				}
				if qty > 6 {
					return 6, unit, "capped at a 6-unit purchase size"
				}
				return qty, unit, ""
			},
		},
	}},
	enums.CategoryHousehold: {rules: []rule{
		{
			keywords: []string{"paper towel", "toilet paper", "napkin", "tissue"},
			apply: func(name string, qty float64, unit enums.Unit) (float64, enums.Unit, string) {
				if unit != enums.UnitCount && unit != enums.UnitPack {
					return qty, unit, ""
				}
				switch {
				case qty <= 6:
					return 6, enums.UnitPack, "paper goods come in 6-packs"
				case qty <= 12:
					return 12, enums.UnitPack, "paper goods come in 12-packs"
				default:
					return 24, enums.UnitPack, "paper goods come in 24-packs"
				}
			},
		},
	}},
}

// dozensForCount rounds an egg count up into retail carton sizes. Counts past
// the largest carton fall back to whole dozens.
func dozensForCount(count float64) float64 {
	switch {
	case count <= 12:
		return 1
	case count <= 18:
		return 1.5
	case count <= 24:
		return 2
	default:
		return math.Ceil(count / 12)
	}
}
