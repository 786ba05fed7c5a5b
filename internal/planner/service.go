// Package planner turns a shopping list, the retailer roster, and the
// pricing oracle into costed shopping plans.
package planner

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dmfuentes/smartcart-backend/internal/list"
	"github.com/dmfuentes/smartcart-backend/pkg/config"
	"github.com/dmfuentes/smartcart-backend/pkg/db/models"
	"github.com/dmfuentes/smartcart-backend/pkg/enums"
	pkgerrors "github.com/dmfuentes/smartcart-backend/pkg/errors"
	"github.com/dmfuentes/smartcart-backend/pkg/metrics"
)

// ItemSource loads the entries to plan for.
type ItemSource interface {
	Items(ctx context.Context, listID uuid.UUID) ([]list.ItemDTO, error)
}

// RetailerSource loads the retailer roster in its fixed planning order.
type RetailerSource interface {
	Models(ctx context.Context) ([]models.Retailer, error)
}

// SuggestionSink records per-item retailer picks back onto the list.
type SuggestionSink interface {
	ApplySuggestions(ctx context.Context, listID uuid.UUID, suggestions []list.ItemSuggestion) error
}

type Service interface {
	GeneratePlan(ctx context.Context, listID uuid.UUID, planType enums.PlanType) (Plan, error)
}

// ServiceParams groups dependencies for the planner. Suggestions is
// optional; without it plans stay advisory-only.
type ServiceParams struct {
	Lists       ItemSource
	Retailers   RetailerSource
	Oracle      PricingOracle
	Suggestions SuggestionSink
	Metrics     *metrics.PlannerMetrics
	Pricing     config.PricingConfig
	Planner     config.PlannerConfig
	Log         zerolog.Logger
}

type service struct {
	lists       ItemSource
	retailers   RetailerSource
	oracle      PricingOracle
	suggestions SuggestionSink
	metrics     *metrics.PlannerMetrics
	pricing     config.PricingConfig
	planner     config.PlannerConfig
	log         zerolog.Logger
}

// NewService builds the plan generator.
func NewService(params ServiceParams) (Service, error) {
	if params.Lists == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item source is required")
	}
	if params.Retailers == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "retailer source is required")
	}
	if params.Oracle == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "pricing oracle is required")
	}
	return &service{
		lists:       params.Lists,
		retailers:   params.Retailers,
		oracle:      params.Oracle,
		suggestions: params.Suggestions,
		metrics:     params.Metrics,
		pricing:     params.Pricing,
		planner:     params.Planner,
		log:         params.Log,
	}, nil
}

// GeneratePlan prices the list's open entries across all retailers and
// builds the requested plan variant. An empty list yields a zero-cost plan;
// an empty retailer roster is an error.
func (s *service) GeneratePlan(ctx context.Context, listID uuid.UUID, planType enums.PlanType) (Plan, error) {
	if !planType.IsValid() {
		s.metrics.IncFailure(planType.String())
		return Plan{}, pkgerrors.New(pkgerrors.CodeValidation, "unknown plan type")
	}
	started := time.Now()

	plan, err := s.generate(ctx, listID, planType)
	s.metrics.ObserveDuration(planType.String(), time.Since(started))
	if err != nil {
		s.metrics.IncFailure(planType.String())
		return Plan{}, err
	}
	s.metrics.IncSuccess(planType.String())

	if planType == enums.PlanTypeBestValue {
		s.recordSuggestions(ctx, listID, plan)
	}

	s.log.Info().
		Str("list_id", listID.String()).
		Str("plan_type", planType.String()).
		Int("store_count", plan.StoreCount).
		Int64("total_cost_cents", plan.TotalCostCents).
		Msg("plan generated")
	return plan, nil
}

// recordSuggestions writes the best-value picks back onto the list entries.
// Only the per-item-cheapest variant yields a pick per item. A sink failure
// is logged, never surfaced to the caller.
func (s *service) recordSuggestions(ctx context.Context, listID uuid.UUID, plan Plan) {
	if s.suggestions == nil {
		return
	}

	var picks []list.ItemSuggestion
	for _, store := range plan.Stores {
		for _, line := range store.Lines {
			if !line.Available {
				continue
			}
			picks = append(picks, list.ItemSuggestion{
				ItemID:     line.ItemID,
				RetailerID: store.RetailerID,
				PriceCents: line.UnitPriceCents,
			})
		}
	}
	if len(picks) == 0 {
		return
	}

	if err := s.suggestions.ApplySuggestions(ctx, listID, picks); err != nil {
		s.log.Warn().
			Err(err).
			Str("list_id", listID.String()).
			Msg("storing item suggestions failed")
	}
}

func (s *service) generate(ctx context.Context, listID uuid.UUID, planType enums.PlanType) (Plan, error) {
	entries, err := s.lists.Items(ctx, listID)
	if err != nil {
		return Plan{}, err
	}

	items := make([]PlanItem, 0, len(entries))
	for _, entry := range entries {
		if entry.IsCompleted {
			continue
		}
		items = append(items, PlanItem{
			ID:       entry.ID,
			Name:     entry.CanonicalName,
			Quantity: entry.Quantity,
			Unit:     entry.Unit,
		})
	}
	if len(items) == 0 {
		return Plan{Type: planType, Stores: []StoreAllocation{}}, nil
	}

	retailers, err := s.retailers.Models(ctx)
	if err != nil {
		return Plan{}, err
	}
	if len(retailers) == 0 {
		return Plan{}, pkgerrors.New(pkgerrors.CodeNoRetailers, "no retailers to plan against")
	}

	quotes, err := collectQuotes(ctx, s.oracle, retailers, items, s.planner.MaxParallelQuotes)
	if err != nil {
		return Plan{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "collect quotes")
	}

	switch planType {
	case enums.PlanTypeSingleStore:
		return singleStorePlan(items, retailers, quotes), nil
	case enums.PlanTypeBestValue:
		return bestValuePlan(items, retailers, quotes), nil
	default:
		return balancedPlan(items, retailers, quotes, int64(s.pricing.ReferenceCostCents)), nil
	}
}
