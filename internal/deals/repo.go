package deals

import (
	"context"
	stdErrors "errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dmfuentes/smartcart-backend/pkg/db/models"
	"github.com/dmfuentes/smartcart-backend/pkg/pagination"
)

// Repository encapsulates deal persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a deal repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new deal.
func (r *Repository) Create(ctx context.Context, deal models.Deal) (models.Deal, error) {
	if err := r.db.WithContext(ctx).Create(&deal).Error; err != nil {
		return models.Deal{}, err
	}
	return deal, nil
}

// ActiveForItem returns the active deal for a retailer and product name at
// the given instant, matched case-insensitively. When several deals overlap
// the cheapest sale price wins.
func (r *Repository) ActiveForItem(ctx context.Context, retailerID uuid.UUID, productName string, at time.Time) (models.Deal, bool, error) {
	var deal models.Deal
	err := r.db.WithContext(ctx).
		Where("retailer_id = ?", retailerID).
		Where("LOWER(product_name) = ?", strings.ToLower(strings.TrimSpace(productName))).
		Where("starts_at <= ? AND ends_at > ?", at, at).
		Order("sale_price_cents ASC").
		First(&deal).
		Error
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return models.Deal{}, false, nil
		}
		return models.Deal{}, false, err
	}
	return deal, true, nil
}

// ListActive returns a page of currently active deals, newest first, with a
// cursor for the next page. Zero-valued filter fields are ignored.
func (r *Repository) ListActive(ctx context.Context, at time.Time, filter ListFilter, params pagination.Params) ([]models.Deal, string, error) {
	normalizedLimit := pagination.NormalizeLimit(params.Limit)
	decodedCursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, "", err
	}

	query := r.db.WithContext(ctx).
		Model(&models.Deal{}).
		Where("starts_at <= ? AND ends_at > ?", at, at)

	if filter.RetailerID != uuid.Nil {
		query = query.Where("retailer_id = ?", filter.RetailerID)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	if decodedCursor != nil {
		query = query.Where("(created_at < ?) OR (created_at = ? AND id < ?)", decodedCursor.CreatedAt, decodedCursor.CreatedAt, decodedCursor.ID)
	}

	var rows []models.Deal
	err = query.
		Order("created_at DESC").Order("id DESC").
		Limit(pagination.LimitWithBuffer(params.Limit)).
		Find(&rows).
		Error
	if err != nil {
		return nil, "", err
	}

	nextCursor := ""
	if len(rows) > normalizedLimit {
		rows = rows[:normalizedLimit]
		last := rows[len(rows)-1]
		nextCursor = pagination.EncodeCursor(pagination.Cursor{
			CreatedAt: last.CreatedAt,
			ID:        last.ID,
		})
	}
	return rows, nextCursor, nil
}
