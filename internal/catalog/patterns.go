package catalog

import (
	"regexp"

	"github.com/dmfuentes/smartcart-backend/pkg/enums"
)

// patternSet groups keyword regexes for one category. Sets are evaluated in
// the order of patternSets and the first hit wins, so the more specific
// categories (frozen, household) sit above the broad ones.
type patternSet struct {
	category      enums.Category
	subcategory   string
	aisle         string
	section       string
	unit          enums.Unit
	confidence    float64
	refPriceCents int64
	patterns      []*regexp.Regexp
}

var patternSets = []patternSet{
	{
		category:      enums.CategoryFrozen,
		subcategory:   "Frozen",
		aisle:         "Aisle 16",
		section:       "Frozen Wall",
		unit:          enums.UnitCount,
		confidence:    0.8,
		refPriceCents: 449,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\bfrozen\b`),
			regexp.MustCompile(`\bice cream\b`),
			regexp.MustCompile(`\bpopsicle`),
		},
	},
	{
		category:      enums.CategoryHousehold,
		subcategory:   "Supplies",
		aisle:         "Aisle 11",
		section:       "Household",
		unit:          enums.UnitCount,
		confidence:    0.75,
		refPriceCents: 599,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(paper towel|toilet paper|napkin|tissue)`),
			regexp.MustCompile(`\b(detergent|bleach|cleaner|disinfect)`),
			regexp.MustCompile(`\b(trash|garbage) bag`),
			regexp.MustCompile(`\b(sponge|foil|plastic wrap|dish soap)`),
		},
	},
	{
		category:      enums.CategoryPersonalCare,
		subcategory:   "Hygiene",
		aisle:         "Aisle 10",
		section:       "Health & Beauty",
		unit:          enums.UnitCount,
		confidence:    0.75,
		refPriceCents: 449,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(shampoo|conditioner|body wash|lotion)`),
			regexp.MustCompile(`\b(toothpaste|toothbrush|floss|mouthwash)`),
			regexp.MustCompile(`\b(deodorant|razor|shaving)`),
		},
	},
	{
		category:      enums.CategoryMeatSeafood,
		subcategory:   "Meat",
		aisle:         "Aisle 14",
		section:       "Butcher Counter",
		unit:          enums.UnitLB,
		confidence:    0.8,
		refPriceCents: 649,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(chicken|beef|pork|turkey|lamb|ham)\b`),
			regexp.MustCompile(`\b(salmon|tuna|shrimp|tilapia|cod|fish)\b`),
			regexp.MustCompile(`\b(steak|sausage|bacon|ribs|brisket)\b`),
		},
	},
	{
		category:      enums.CategoryDairyEggs,
		subcategory:   "Dairy",
		aisle:         "Aisle 12",
		section:       "Dairy Wall",
		unit:          enums.UnitCount,
		confidence:    0.8,
		refPriceCents: 349,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(milk|cream|yogurt|kefir)\b`),
			regexp.MustCompile(`\b(cheese|butter|margarine)\b`),
			regexp.MustCompile(`\begg`),
		},
	},
	{
		category:      enums.CategoryBakery,
		subcategory:   "Bread",
		aisle:         "Aisle 8",
		section:       "Bakery",
		unit:          enums.UnitCount,
		confidence:    0.75,
		refPriceCents: 349,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(bread|bagel|bun|roll|baguette)`),
			regexp.MustCompile(`\b(muffin|croissant|donut|tortilla|pita)`),
			regexp.MustCompile(`\b(cake|pie|pastry)`),
		},
	},
	{
		category:      enums.CategoryProduce,
		subcategory:   "Fresh",
		aisle:         "Aisle 1",
		section:       "Fresh Produce",
		unit:          enums.UnitLB,
		confidence:    0.8,
		refPriceCents: 199,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(apple|banana|orange|grape|berry|berries|melon|peach|pear|plum|mango|kiwi|lemon|lime)`),
			regexp.MustCompile(`\b(lettuce|spinach|kale|tomato|potato|onion|carrot|celery|pepper|cucumber|broccoli|cauliflower|zucchini|squash|garlic|mushroom|avocado|corn)`),
			regexp.MustCompile(`\b(fruit|vegetable|salad|greens)\b`),
		},
	},
	{
		category:      enums.CategoryPantryCanned,
		subcategory:   "Dry Goods",
		aisle:         "Aisle 5",
		section:       "Dry Goods",
		unit:          enums.UnitCount,
		confidence:    0.7,
		refPriceCents: 299,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(rice|pasta|noodle|cereal|oat|flour|sugar|salt)`),
			regexp.MustCompile(`\b(canned|sauce|soup|broth|stock)\b`),
			regexp.MustCompile(`\b(oil|vinegar|spice|seasoning|bean|lentil)`),
			regexp.MustCompile(`\b(coffee|tea|snack|chip|cracker|cookie)`),
		},
	},
}
