package models

import (
	"time"

	"github.com/google/uuid"
)

// ShoppingList is the root aggregate a user shops against.
type ShoppingList struct {
	ID        uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string             `gorm:"column:name;not null"`
	Owner     string             `gorm:"column:owner;not null;default:''"`
	Items     []ShoppingListItem `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
