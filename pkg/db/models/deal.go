package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/dmfuentes/smartcart-backend/pkg/enums"
)

// Deal is a time-bounded, retailer-specific discounted price for a product.
type Deal struct {
	ID                uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	RetailerID        uuid.UUID      `gorm:"column:retailer_id;type:uuid;not null;index:deals_retailer_id_idx"`
	ProductName       string         `gorm:"column:product_name;not null;index:deals_product_name_idx"`
	Category          enums.Category `gorm:"column:category;not null"`
	RegularPriceCents int64          `gorm:"column:regular_price_cents;not null"`
	SalePriceCents    int64          `gorm:"column:sale_price_cents;not null"`
	StartsAt          time.Time      `gorm:"column:starts_at;not null"`
	EndsAt            time.Time      `gorm:"column:ends_at;not null"`
	Tags              pq.StringArray `gorm:"column:tags;type:text[]"`
	CreatedAt         time.Time      `gorm:"column:created_at;autoCreateTime"`
}

// ActiveAt reports whether the deal participates in pricing at the given time.
func (d Deal) ActiveAt(now time.Time) bool {
	return !now.Before(d.StartsAt) && now.Before(d.EndsAt)
}
