package enums

import "fmt"

// PlanType identifies the optimization objective of a shopping plan.
type PlanType string

const (
	PlanTypeSingleStore PlanType = "single_store"
	PlanTypeBestValue   PlanType = "best_value"
	PlanTypeBalanced    PlanType = "balanced"
)

var validPlanTypes = []PlanType{
	PlanTypeSingleStore,
	PlanTypeBestValue,
	PlanTypeBalanced,
}

// String implements fmt.Stringer.
func (p PlanType) String() string {
	return string(p)
}

// IsValid reports whether the value matches a known PlanType.
func (p PlanType) IsValid() bool {
	for _, candidate := range validPlanTypes {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePlanType converts raw input into a PlanType.
func ParsePlanType(value string) (PlanType, error) {
	for _, candidate := range validPlanTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid plan type %q", value)
}
