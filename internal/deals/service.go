// Package deals manages the time-bounded sale prices retailers advertise and
// feeds them into pricing.
package deals

import (
	"context"
	stdErrors "errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/dmfuentes/smartcart-backend/pkg/db/models"
	"github.com/dmfuentes/smartcart-backend/pkg/enums"
	pkgerrors "github.com/dmfuentes/smartcart-backend/pkg/errors"
	"github.com/dmfuentes/smartcart-backend/pkg/pagination"
	"github.com/dmfuentes/smartcart-backend/pkg/redis"
)

// CreateDealInput is the request body for publishing a deal.
type CreateDealInput struct {
	RetailerID        uuid.UUID `json:"retailer_id" validate:"required"`
	ProductName       string    `json:"product_name" validate:"required,min=1,max=200"`
	Category          string    `json:"category" validate:"required"`
	RegularPriceCents int64     `json:"regular_price_cents" validate:"required,gt=0"`
	SalePriceCents    int64     `json:"sale_price_cents" validate:"required,gt=0"`
	StartsAt          time.Time `json:"starts_at" validate:"required"`
	EndsAt            time.Time `json:"ends_at" validate:"required"`
	Tags              []string  `json:"tags" validate:"omitempty,dive,min=1,max=40"`
}

// DealDTO is the wire form of a deal.
type DealDTO struct {
	ID                uuid.UUID      `json:"id"`
	RetailerID        uuid.UUID      `json:"retailer_id"`
	ProductName       string         `json:"product_name"`
	Category          enums.Category `json:"category"`
	RegularPriceCents int64          `json:"regular_price_cents"`
	SalePriceCents    int64          `json:"sale_price_cents"`
	StartsAt          time.Time      `json:"starts_at"`
	EndsAt            time.Time      `json:"ends_at"`
	Tags              []string       `json:"tags"`
	CreatedAt         time.Time      `json:"created_at"`
}

// DealsPageDTO is one page of active deals.
type DealsPageDTO struct {
	Deals      []DealDTO `json:"deals"`
	NextCursor string    `json:"next_cursor,omitempty"`
}

// ListFilter narrows active-deal listings. Zero values mean no restriction.
type ListFilter struct {
	RetailerID uuid.UUID
	Category   enums.Category
}

// Repo is the persistence surface the service depends on.
type Repo interface {
	Create(ctx context.Context, deal models.Deal) (models.Deal, error)
	ActiveForItem(ctx context.Context, retailerID uuid.UUID, productName string, at time.Time) (models.Deal, bool, error)
	ListActive(ctx context.Context, at time.Time, filter ListFilter, params pagination.Params) ([]models.Deal, string, error)
}

// RetailerFinder confirms the retailer a deal points at exists.
type RetailerFinder interface {
	FindByID(ctx context.Context, retailerID uuid.UUID) (models.Retailer, error)
}

type Service interface {
	Create(ctx context.Context, input CreateDealInput) (DealDTO, error)
	ListActive(ctx context.Context, filter ListFilter, params pagination.Params) (DealsPageDTO, error)
	ActiveForItem(ctx context.Context, retailerID uuid.UUID, productName string, at time.Time) (models.Deal, bool, error)
}

// ServiceParams groups dependencies for the deal service.
type ServiceParams struct {
	Repo      Repo
	Retailers RetailerFinder
	Cache     redis.QuoteCache
	Clock     func() time.Time
	Log       zerolog.Logger
}

type service struct {
	repo      Repo
	retailers RetailerFinder
	cache     redis.QuoteCache
	clock     func() time.Time
	log       zerolog.Logger
}

// NewService builds a deal service. Cache is optional; without it quote
// invalidation is skipped.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "deal repo is required")
	}
	if params.Retailers == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "retailer finder is required")
	}
	clock := params.Clock
	if clock == nil {
		clock = time.Now
	}
	return &service{
		repo:      params.Repo,
		retailers: params.Retailers,
		cache:     params.Cache,
		clock:     clock,
		log:       params.Log,
	}, nil
}

// Create validates and publishes a deal, then drops any cached quote for the
// affected retailer/product pair so pricing picks it up immediately.
func (s *service) Create(ctx context.Context, input CreateDealInput) (DealDTO, error) {
	productName := strings.TrimSpace(input.ProductName)
	if productName == "" {
		return DealDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "product name is required")
	}
	category, err := enums.ParseCategory(input.Category)
	if err != nil {
		return DealDTO{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown category")
	}
	if input.SalePriceCents <= 0 || input.RegularPriceCents <= 0 {
		return DealDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "prices must be positive")
	}
	if input.SalePriceCents >= input.RegularPriceCents {
		return DealDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "sale price must undercut the regular price")
	}
	if !input.EndsAt.After(input.StartsAt) {
		return DealDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "deal window must end after it starts")
	}

	if _, err := s.retailers.FindByID(ctx, input.RetailerID); err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return DealDTO{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "retailer not found")
		}
		return DealDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load retailer")
	}

	created, err := s.repo.Create(ctx, models.Deal{
		RetailerID:        input.RetailerID,
		ProductName:       productName,
		Category:          category,
		RegularPriceCents: input.RegularPriceCents,
		SalePriceCents:    input.SalePriceCents,
		StartsAt:          input.StartsAt.UTC(),
		EndsAt:            input.EndsAt.UTC(),
		Tags:              input.Tags,
	})
	if err != nil {
		return DealDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create deal")
	}

	if s.cache != nil {
		key := s.cache.QuoteKey(created.RetailerID.String(), created.ProductName)
		if err := s.cache.Del(ctx, key); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("quote invalidation failed")
		}
	}

	return toDTO(created), nil
}

// ListActive returns the deals currently in their window.
func (s *service) ListActive(ctx context.Context, filter ListFilter, params pagination.Params) (DealsPageDTO, error) {
	rows, nextCursor, err := s.repo.ListActive(ctx, s.clock().UTC(), filter, params)
	if err != nil {
		return DealsPageDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load deals")
	}
	dtos := make([]DealDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, toDTO(row))
	}
	return DealsPageDTO{Deals: dtos, NextCursor: nextCursor}, nil
}

// ActiveForItem resolves the deal pricing should apply for one item at one
// retailer right now.
func (s *service) ActiveForItem(ctx context.Context, retailerID uuid.UUID, productName string, at time.Time) (models.Deal, bool, error) {
	return s.repo.ActiveForItem(ctx, retailerID, productName, at)
}

func toDTO(deal models.Deal) DealDTO {
	return DealDTO{
		ID:                deal.ID,
		RetailerID:        deal.RetailerID,
		ProductName:       deal.ProductName,
		Category:          deal.Category,
		RegularPriceCents: deal.RegularPriceCents,
		SalePriceCents:    deal.SalePriceCents,
		StartsAt:          deal.StartsAt,
		EndsAt:            deal.EndsAt,
		Tags:              deal.Tags,
		CreatedAt:         deal.CreatedAt,
	}
}
