// Package retailers serves the immutable retailer reference data plans are
// built against.
package retailers

import (
	"context"
	stdErrors "errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dmfuentes/smartcart-backend/pkg/db/models"
	"github.com/dmfuentes/smartcart-backend/pkg/enums"
	pkgerrors "github.com/dmfuentes/smartcart-backend/pkg/errors"
)

// RetailerDTO is the wire form of a retailer.
type RetailerDTO struct {
	ID                    uuid.UUID        `json:"id"`
	Name                  string           `json:"name"`
	PriceIndexPct         int              `json:"price_index_pct"`
	AvailabilityOffsetPct int              `json:"availability_offset_pct"`
	Categories            []enums.Category `json:"categories"`
	CreatedAt             time.Time        `json:"created_at"`
}

// Repo is the persistence surface the service depends on.
type Repo interface {
	List(ctx context.Context) ([]models.Retailer, error)
	FindByID(ctx context.Context, retailerID uuid.UUID) (models.Retailer, error)
}

type Service interface {
	List(ctx context.Context) ([]RetailerDTO, error)
	GetByID(ctx context.Context, retailerID uuid.UUID) (RetailerDTO, error)
	Models(ctx context.Context) ([]models.Retailer, error)
}

type service struct {
	repo Repo
}

// NewService builds a retailer service.
func NewService(repo Repo) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "retailer repo is required")
	}
	return &service{repo: repo}, nil
}

// List returns every retailer in the fixed planning order.
func (s *service) List(ctx context.Context) ([]RetailerDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load retailers")
	}
	dtos := make([]RetailerDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, toDTO(row))
	}
	return dtos, nil
}

// GetByID loads one retailer.
func (s *service) GetByID(ctx context.Context, retailerID uuid.UUID) (RetailerDTO, error) {
	if retailerID == uuid.Nil {
		return RetailerDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "retailer id is required")
	}
	row, err := s.repo.FindByID(ctx, retailerID)
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return RetailerDTO{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "retailer not found")
		}
		return RetailerDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load retailer")
	}
	return toDTO(row), nil
}

// Models returns raw retailer rows for the planner.
func (s *service) Models(ctx context.Context) ([]models.Retailer, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load retailers")
	}
	return rows, nil
}

func toDTO(row models.Retailer) RetailerDTO {
	categories := make([]enums.Category, 0, len(row.Categories))
	for _, raw := range row.Categories {
		if category, err := enums.ParseCategory(raw); err == nil {
			categories = append(categories, category)
		}
	}
	return RetailerDTO{
		ID:                    row.ID,
		Name:                  row.Name,
		PriceIndexPct:         row.PriceIndexPct,
		AvailabilityOffsetPct: row.AvailabilityOffsetPct,
		Categories:            categories,
		CreatedAt:             row.CreatedAt,
	}
}
