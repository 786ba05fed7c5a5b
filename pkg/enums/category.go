package enums

import "fmt"

// Category represents the shelf categories the catalog recognizes.
type Category string

const (
	CategoryProduce      Category = "Produce"
	CategoryDairyEggs    Category = "Dairy & Eggs"
	CategoryMeatSeafood  Category = "Meat & Seafood"
	CategoryPantryCanned Category = "Pantry & Canned Goods"
	CategoryFrozen       Category = "Frozen Foods"
	CategoryBakery       Category = "Bakery & Bread"
	CategoryPersonalCare Category = "Personal Care"
	CategoryHousehold    Category = "Household Items"
)

// CategoryFallback is the shelf-stable catch-all applied when nothing matches.
const CategoryFallback = CategoryPantryCanned

var validCategories = []Category{
	CategoryProduce,
	CategoryDairyEggs,
	CategoryMeatSeafood,
	CategoryPantryCanned,
	CategoryFrozen,
	CategoryBakery,
	CategoryPersonalCare,
	CategoryHousehold,
}

// Categories returns the closed set of shelf categories.
func Categories() []Category {
	out := make([]Category, len(validCategories))
	copy(out, validCategories)
	return out
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}

// IsValid reports whether the value is a known Category.
func (c Category) IsValid() bool {
	for _, candidate := range validCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCategory converts raw input into a Category.
func ParseCategory(value string) (Category, error) {
	for _, candidate := range validCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid category %q", value)
}
