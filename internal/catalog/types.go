package catalog

import "github.com/dmfuentes/smartcart-backend/pkg/enums"

// Profile is the shelf metadata attached to a product name. It is derived on
// demand and never persisted.
type Profile struct {
	Category      enums.Category `json:"category"`
	Subcategory   string         `json:"subcategory"`
	Aisle         string         `json:"aisle"`
	Section       string         `json:"section"`
	SuggestedUnit enums.Unit     `json:"suggested_unit"`
	Confidence    float64        `json:"confidence"`
	CanonicalName string         `json:"canonical_name"`
}
