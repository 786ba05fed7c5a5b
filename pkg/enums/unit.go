package enums

import (
	"fmt"
	"strings"
)

// Unit defines the purchase units a list item can carry.
type Unit string

const (
	UnitCount  Unit = "COUNT"
	UnitLB     Unit = "LB"
	UnitOZ     Unit = "OZ"
	UnitGallon Unit = "GALLON"
	UnitQuart  Unit = "QUART"
	UnitDozen  Unit = "DOZEN"
	UnitPack   Unit = "PACK"
)

var validUnits = []Unit{
	UnitCount,
	UnitLB,
	UnitOZ,
	UnitGallon,
	UnitQuart,
	UnitDozen,
	UnitPack,
}

// DefaultUnit is assumed when a caller supplies no unit.
const DefaultUnit = UnitCount

// String implements fmt.Stringer.
func (u Unit) String() string {
	return string(u)
}

// IsValid reports whether the value matches a known Unit.
func (u Unit) IsValid() bool {
	for _, candidate := range validUnits {
		if candidate == u {
			return true
		}
	}
	return false
}

// ParseUnit converts raw input into a Unit, tolerating lowercase.
func ParseUnit(value string) (Unit, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	for _, candidate := range validUnits {
		if string(candidate) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid unit %q", value)
}
