package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmfuentes/smartcart-backend/pkg/enums"
)

// ShoppingListItem is one open entry on a list. Canonical name is the merge
// key: a list never holds two entries with the same canonical name.
type ShoppingListItem struct {
	ID                   uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ListID               uuid.UUID      `gorm:"column:list_id;type:uuid;not null;index:shopping_list_items_list_id_idx;uniqueIndex:shopping_list_items_list_canonical_key"`
	CanonicalName        string         `gorm:"column:canonical_name;not null;uniqueIndex:shopping_list_items_list_canonical_key"`
	RawName              string         `gorm:"column:raw_name;not null"`
	Quantity             float64        `gorm:"column:quantity;type:numeric(10,2);not null"`
	Unit                 enums.Unit     `gorm:"column:unit;not null"`
	Category             enums.Category `gorm:"column:category;not null"`
	IsCompleted          bool           `gorm:"column:is_completed;not null;default:false"`
	SuggestedRetailerID  *uuid.UUID     `gorm:"column:suggested_retailer_id;type:uuid"`
	SuggestedPriceCents  *int64         `gorm:"column:suggested_price_cents"`
	CreatedAt            time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt            time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
