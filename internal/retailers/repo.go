package retailers

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dmfuentes/smartcart-backend/pkg/db/models"
)

// Repository encapsulates retailer persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a retailer repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns all retailers in insertion order. Planning depends on this
// ordering being stable between calls.
func (r *Repository) List(ctx context.Context) ([]models.Retailer, error) {
	var rows []models.Retailer
	err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID loads one retailer.
func (r *Repository) FindByID(ctx context.Context, retailerID uuid.UUID) (models.Retailer, error) {
	var row models.Retailer
	if err := r.db.WithContext(ctx).First(&row, "id = ?", retailerID).Error; err != nil {
		return models.Retailer{}, err
	}
	return row, nil
}
