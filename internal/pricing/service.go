// Package pricing is the retailer pricing oracle: deal-aware per-item quotes
// with deterministic availability and an optional Redis quote cache.
package pricing

import (
	"context"
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/dmfuentes/smartcart-backend/internal/planner"
	"github.com/dmfuentes/smartcart-backend/pkg/config"
	"github.com/dmfuentes/smartcart-backend/pkg/db/models"
	pkgerrors "github.com/dmfuentes/smartcart-backend/pkg/errors"
	"github.com/dmfuentes/smartcart-backend/pkg/redis"
)

// ReferencePricer supplies catalog baseline prices.
type ReferencePricer interface {
	ReferencePrice(name string) (int64, bool)
}

// DealSource resolves the active deal for an item at a retailer.
type DealSource interface {
	ActiveForItem(ctx context.Context, retailerID uuid.UUID, productName string, at time.Time) (models.Deal, bool, error)
}

// ServiceParams groups dependencies for the pricing oracle.
type ServiceParams struct {
	Catalog ReferencePricer
	Deals   DealSource
	Cache   redis.QuoteCache
	Config  config.PricingConfig
	Clock   func() time.Time
	Log     zerolog.Logger
}

// Service answers quote requests. It satisfies planner.PricingOracle.
type Service struct {
	catalog ReferencePricer
	deals   DealSource
	cache   redis.QuoteCache
	cfg     config.PricingConfig
	clock   func() time.Time
	log     zerolog.Logger
}

// NewService builds the pricing oracle. Cache is optional; without it every
// quote is computed fresh.
func NewService(params ServiceParams) (*Service, error) {
	if params.Catalog == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "reference pricer is required")
	}
	if params.Deals == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "deal source is required")
	}
	clock := params.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Service{
		catalog: params.Catalog,
		deals:   params.Deals,
		cache:   params.Cache,
		cfg:     params.Config,
		clock:   clock,
		log:     params.Log,
	}, nil
}

// Quote prices one item at one retailer. An active deal wins outright and
// forces the item available; otherwise the catalog reference price is scaled
// by the retailer's price index and availability is derived from a stable
// hash of the (retailer, item) pair.
func (s *Service) Quote(ctx context.Context, retailer models.Retailer, itemName string) (planner.Quote, error) {
	if s.cfg.QuoteTimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(s.cfg.QuoteTimeoutSeconds)*time.Second)
		defer cancel()
	}

	var cacheKey string
	if s.cache != nil {
		cacheKey = s.cache.QuoteKey(retailer.ID.String(), itemName)
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
			if quote, ok := decodeQuote(cached); ok {
				return quote, nil
			}
		}
	}

	quote, err := s.computeQuote(ctx, retailer, itemName)
	if err != nil {
		return planner.Quote{}, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, encodeQuote(quote), s.cfg.QuoteCacheTTL); err != nil {
			s.log.Warn().Err(err).Str("key", cacheKey).Msg("quote cache write failed")
		}
	}
	return quote, nil
}

func (s *Service) computeQuote(ctx context.Context, retailer models.Retailer, itemName string) (planner.Quote, error) {
	deal, found, err := s.deals.ActiveForItem(ctx, retailer.ID, itemName, s.clock().UTC())
	if err != nil {
		return planner.Quote{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "look up deal")
	}
	if found {
		return planner.Quote{PriceCents: deal.SalePriceCents, IsDeal: true, Available: true}, nil
	}

	reference, ok := s.catalog.ReferencePrice(itemName)
	if !ok {
		reference = int64(s.cfg.DefaultPriceCents)
	}
	price := decimal.NewFromInt(reference).
		Mul(decimal.NewFromInt(int64(retailer.PriceIndexPct))).
		Div(decimal.NewFromInt(100)).
		Round(0).
		IntPart()

	return planner.Quote{
		PriceCents: price,
		Available:  s.available(retailer, itemName),
	}, nil
}

// available is a deterministic stand-in for live stock checks: the same
// (retailer, item) pair always answers the same way, with the hit rate set
// by the baseline and the retailer's offset.
func (s *Service) available(retailer models.Retailer, itemName string) bool {
	threshold := s.cfg.BaselineAvailPct + retailer.AvailabilityOffsetPct
	if threshold >= 100 {
		return true
	}
	if threshold <= 0 {
		return false
	}

	h := fnv.New32a()
	h.Write([]byte(retailer.ID.String()))
	h.Write([]byte("|"))
	h.Write([]byte(strings.ToLower(strings.TrimSpace(itemName))))
	return int(h.Sum32()%100) < threshold
}

func encodeQuote(quote planner.Quote) string {
	return fmt.Sprintf("%d|%t|%t", quote.PriceCents, quote.IsDeal, quote.Available)
}

func decodeQuote(raw string) (planner.Quote, bool) {
	parts := strings.Split(raw, "|")
	if len(parts) != 3 {
		return planner.Quote{}, false
	}
	price, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return planner.Quote{}, false
	}
	isDeal, err := strconv.ParseBool(parts[1])
	if err != nil {
		return planner.Quote{}, false
	}
	available, err := strconv.ParseBool(parts[2])
	if err != nil {
		return planner.Quote{}, false
	}
	return planner.Quote{PriceCents: price, IsDeal: isDeal, Available: available}, true
}
