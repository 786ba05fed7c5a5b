package list

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmfuentes/smartcart-backend/pkg/db/models"
	"github.com/dmfuentes/smartcart-backend/pkg/enums"
)

// CreateListInput names a new shopping list.
type CreateListInput struct {
	Name  string `json:"name" validate:"required,min=1,max=120"`
	Owner string `json:"owner" validate:"omitempty,max=120"`
}

// AddItemInput is the raw add-item request. Unit is optional; an empty unit
// lets the normalizer pick one.
type AddItemInput struct {
	Name     string  `json:"name" validate:"required,min=1,max=200"`
	Quantity float64 `json:"quantity" validate:"required"`
	Unit     string  `json:"unit" validate:"omitempty,max=10"`
}

// UpdateItemInput patches an existing entry. Nil fields are left untouched.
type UpdateItemInput struct {
	Quantity    *float64 `json:"quantity" validate:"omitempty"`
	Unit        *string  `json:"unit" validate:"omitempty,max=10"`
	IsCompleted *bool    `json:"is_completed"`
}

// ItemDTO is the wire form of a list entry.
type ItemDTO struct {
	ID                  uuid.UUID      `json:"id"`
	CanonicalName       string         `json:"canonical_name"`
	RawName             string         `json:"raw_name"`
	Quantity            float64        `json:"quantity"`
	Unit                enums.Unit     `json:"unit"`
	Category            enums.Category `json:"category"`
	IsCompleted         bool           `json:"is_completed"`
	SuggestedRetailerID *uuid.UUID     `json:"suggested_retailer_id,omitempty"`
	SuggestedPriceCents *int64         `json:"suggested_price_cents,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// ListDTO is the wire form of a shopping list with its open entries.
type ListDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Owner     string    `json:"owner,omitempty"`
	Items     []ItemDTO `json:"items"`
	CreatedAt time.Time `json:"created_at"`
}

// ItemSuggestion is the planner's pick of where to buy one entry and at
// what unit price.
type ItemSuggestion struct {
	ItemID     uuid.UUID
	RetailerID uuid.UUID
	PriceCents int64
}

// AddItemResult reports what the reconciler did with an add request.
type AddItemResult struct {
	Entry     ItemDTO `json:"entry"`
	Merged    bool    `json:"merged"`
	Corrected bool    `json:"corrected"`
}

func itemToDTO(item models.ShoppingListItem) ItemDTO {
	return ItemDTO{
		ID:                  item.ID,
		CanonicalName:       item.CanonicalName,
		RawName:             item.RawName,
		Quantity:            item.Quantity,
		Unit:                item.Unit,
		Category:            item.Category,
		IsCompleted:         item.IsCompleted,
		SuggestedRetailerID: item.SuggestedRetailerID,
		SuggestedPriceCents: item.SuggestedPriceCents,
		CreatedAt:           item.CreatedAt,
		UpdatedAt:           item.UpdatedAt,
	}
}

func listToDTO(list models.ShoppingList) ListDTO {
	items := make([]ItemDTO, 0, len(list.Items))
	for _, item := range list.Items {
		items = append(items, itemToDTO(item))
	}
	return ListDTO{
		ID:        list.ID,
		Name:      list.Name,
		Owner:     list.Owner,
		Items:     items,
		CreatedAt: list.CreatedAt,
	}
}
