package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Retailer is immutable reference data for a planning run.
//
// PriceIndexPct scales the catalog reference price: 100 means list price,
// 92 means this retailer runs 8% cheap. AvailabilityOffsetPct shifts the
// 85% availability baseline in percentage points.
type Retailer struct {
	ID                    uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name                  string         `gorm:"column:name;not null;uniqueIndex:retailers_name_key"`
	PriceIndexPct         int            `gorm:"column:price_index_pct;not null;default:100"`
	AvailabilityOffsetPct int            `gorm:"column:availability_offset_pct;not null;default:0"`
	Categories            pq.StringArray `gorm:"column:categories;type:text[]"`
	CreatedAt             time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt             time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
