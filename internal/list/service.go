// Package list reconciles raw add-item requests into deduplicated shopping
// list entries and owns list and entry lifecycle.
package list

import (
	"context"
	stdErrors "errors"
	"math"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/dmfuentes/smartcart-backend/internal/catalog"
	"github.com/dmfuentes/smartcart-backend/internal/quantity"
	"github.com/dmfuentes/smartcart-backend/pkg/db"
	"github.com/dmfuentes/smartcart-backend/pkg/db/models"
	"github.com/dmfuentes/smartcart-backend/pkg/enums"
	pkgerrors "github.com/dmfuentes/smartcart-backend/pkg/errors"
)

// Repo is the persistence surface the service depends on.
type Repo interface {
	CreateList(ctx context.Context, list models.ShoppingList) (models.ShoppingList, error)
	FindList(ctx context.Context, listID uuid.UUID) (models.ShoppingList, error)
	DeleteList(ctx context.Context, listID uuid.UUID) error
	ItemsForList(ctx context.Context, listID uuid.UUID) ([]models.ShoppingListItem, error)
	FindItem(ctx context.Context, listID, itemID uuid.UUID) (models.ShoppingListItem, error)
	CreateItem(ctx context.Context, item models.ShoppingListItem) (models.ShoppingListItem, error)
	SaveItem(ctx context.Context, item models.ShoppingListItem) (models.ShoppingListItem, error)
	DeleteItem(ctx context.Context, listID, itemID uuid.UUID) error
}

// Categorizer resolves names to shelf profiles.
type Categorizer interface {
	Categorize(raw string) catalog.Profile
}

// Normalizer suggests purchase quantities.
type Normalizer interface {
	Normalize(name string, qty float64, unit enums.Unit) quantity.Suggestion
}

// Service exposes list management and the add-item reconciler.
type Service interface {
	CreateList(ctx context.Context, input CreateListInput) (ListDTO, error)
	GetList(ctx context.Context, listID uuid.UUID) (ListDTO, error)
	DeleteList(ctx context.Context, listID uuid.UUID) error
	Items(ctx context.Context, listID uuid.UUID) ([]ItemDTO, error)
	AddItem(ctx context.Context, listID uuid.UUID, input AddItemInput) (AddItemResult, error)
	UpdateItem(ctx context.Context, listID, itemID uuid.UUID, input UpdateItemInput) (ItemDTO, error)
	DeleteItem(ctx context.Context, listID, itemID uuid.UUID) error
	ApplySuggestions(ctx context.Context, listID uuid.UUID, suggestions []ItemSuggestion) error
}

// ServiceParams groups dependencies for the list service.
type ServiceParams struct {
	Repo       Repo
	Catalog    Categorizer
	Normalizer Normalizer
	Log        zerolog.Logger
}

type service struct {
	repo       Repo
	catalog    Categorizer
	normalizer Normalizer
	log        zerolog.Logger

	mu        sync.Mutex
	listLocks map[uuid.UUID]*sync.Mutex
}

// NewService builds a list service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "list repo is required")
	}
	if params.Catalog == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "categorizer is required")
	}
	if params.Normalizer == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity normalizer is required")
	}
	return &service{
		repo:       params.Repo,
		catalog:    params.Catalog,
		normalizer: params.Normalizer,
		log:        params.Log,
		listLocks:  make(map[uuid.UUID]*sync.Mutex),
	}, nil
}

// CreateList inserts an empty named list.
func (s *service) CreateList(ctx context.Context, input CreateListInput) (ListDTO, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return ListDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "list name is required")
	}
	created, err := s.repo.CreateList(ctx, models.ShoppingList{
		Name:  name,
		Owner: strings.TrimSpace(input.Owner),
	})
	if err != nil {
		return ListDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create list")
	}
	return listToDTO(created), nil
}

// GetList returns a list with its entries.
func (s *service) GetList(ctx context.Context, listID uuid.UUID) (ListDTO, error) {
	list, err := s.loadList(ctx, listID)
	if err != nil {
		return ListDTO{}, err
	}
	return listToDTO(list), nil
}

// DeleteList removes a list and everything on it.
func (s *service) DeleteList(ctx context.Context, listID uuid.UUID) error {
	if listID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "list id is required")
	}
	if err := s.repo.DeleteList(ctx, listID); err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNoShoppingList, err, "list not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete list")
	}
	return nil
}

// Items returns the entries on a list.
func (s *service) Items(ctx context.Context, listID uuid.UUID) ([]ItemDTO, error) {
	if _, err := s.loadList(ctx, listID); err != nil {
		return nil, err
	}
	items, err := s.repo.ItemsForList(ctx, listID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load items")
	}
	dtos := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, itemToDTO(item))
	}
	return dtos, nil
}

// AddItem reconciles a raw request against the current list: merge into a
// matching entry when one exists, otherwise categorize, normalize, and
// create. The whole match-then-mutate sequence holds the list's lock so
// concurrent adds of the same item cannot both decide to create.
func (s *service) AddItem(ctx context.Context, listID uuid.UUID, input AddItemInput) (AddItemResult, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return AddItemResult{}, pkgerrors.New(pkgerrors.CodeValidation, "item name is required")
	}
	if !positiveQuantity(input.Quantity) {
		return AddItemResult{}, pkgerrors.New(pkgerrors.CodeInvalidQuantity, "quantity must be positive")
	}

	unit := enums.DefaultUnit
	unitPinned := false
	if trimmed := strings.TrimSpace(input.Unit); trimmed != "" {
		parsed, err := enums.ParseUnit(trimmed)
		if err != nil {
			return AddItemResult{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown unit")
		}
		unit = parsed
		unitPinned = parsed != enums.DefaultUnit
	}

	lock := s.lockFor(listID)
	lock.Lock()
	defer lock.Unlock()

	if _, err := s.loadList(ctx, listID); err != nil {
		return AddItemResult{}, err
	}
	items, err := s.repo.ItemsForList(ctx, listID)
	if err != nil {
		return AddItemResult{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load items")
	}

	canonical := catalog.CanonicalName(name)
	existing := make([]string, len(items))
	for i, item := range items {
		existing[i] = item.CanonicalName
	}

	outcome := findMatch(canonical, existing)
	if outcome.matched {
		return s.mergeEntry(ctx, items[outcome.index], input.Quantity, unit, unitPinned, outcome.corrected != "")
	}
	if outcome.corrected != "" {
		canonical = catalog.CanonicalName(outcome.corrected)
	}
	return s.createEntry(ctx, listID, name, canonical, input.Quantity, unit, unitPinned, outcome.corrected != "")
}

// UpdateItem patches quantity, unit, or completion state.
func (s *service) UpdateItem(ctx context.Context, listID, itemID uuid.UUID, input UpdateItemInput) (ItemDTO, error) {
	item, err := s.repo.FindItem(ctx, listID, itemID)
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return ItemDTO{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "item not found")
		}
		return ItemDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load item")
	}

	if input.Quantity != nil {
		if !positiveQuantity(*input.Quantity) {
			return ItemDTO{}, pkgerrors.New(pkgerrors.CodeInvalidQuantity, "quantity must be positive")
		}
		item.Quantity = *input.Quantity
	}
	if input.Unit != nil {
		parsed, err := enums.ParseUnit(*input.Unit)
		if err != nil {
			return ItemDTO{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown unit")
		}
		item.Unit = parsed
	}
	if input.IsCompleted != nil {
		item.IsCompleted = *input.IsCompleted
	}

	saved, err := s.repo.SaveItem(ctx, item)
	if err != nil {
		return ItemDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save item")
	}
	return itemToDTO(saved), nil
}

// DeleteItem removes one entry from a list.
func (s *service) DeleteItem(ctx context.Context, listID, itemID uuid.UUID) error {
	if err := s.repo.DeleteItem(ctx, listID, itemID); err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "item not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete item")
	}
	return nil
}

// ApplySuggestions stores planner picks on the entries they refer to.
// Entries deleted since the plan was generated are skipped.
func (s *service) ApplySuggestions(ctx context.Context, listID uuid.UUID, suggestions []ItemSuggestion) error {
	for _, suggestion := range suggestions {
		item, err := s.repo.FindItem(ctx, listID, suggestion.ItemID)
		if err != nil {
			if stdErrors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load item for suggestion")
		}

		retailerID := suggestion.RetailerID
		priceCents := suggestion.PriceCents
		item.SuggestedRetailerID = &retailerID
		item.SuggestedPriceCents = &priceCents
		if _, err := s.repo.SaveItem(ctx, item); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save suggestion")
		}
	}
	return nil
}

func (s *service) mergeEntry(ctx context.Context, item models.ShoppingListItem, qty float64, unit enums.Unit, unitPinned, corrected bool) (AddItemResult, error) {
	item.Quantity += qty
	if unitPinned && unit != item.Unit {
		item.Unit = unit
	}
	saved, err := s.repo.SaveItem(ctx, item)
	if err != nil {
		return AddItemResult{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "merge item")
	}
	return AddItemResult{Entry: itemToDTO(saved), Merged: true, Corrected: corrected}, nil
}

func (s *service) createEntry(ctx context.Context, listID uuid.UUID, rawName, canonical string, qty float64, unit enums.Unit, unitPinned, corrected bool) (AddItemResult, error) {
	profile := s.catalog.Categorize(canonical)

	finalQty, finalUnit := qty, unit
	if !unitPinned {
		suggestion := s.normalizer.Normalize(canonical, qty, unit)
		finalQty, finalUnit = suggestion.Quantity, suggestion.Unit
	}

	created, err := s.repo.CreateItem(ctx, models.ShoppingListItem{
		ListID:        listID,
		CanonicalName: profile.CanonicalName,
		RawName:       rawName,
		Quantity:      finalQty,
		Unit:          finalUnit,
		Category:      profile.Category,
	})
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return AddItemResult{}, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "item already exists on list")
		}
		return AddItemResult{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create item")
	}

	s.log.Debug().
		Str("list_id", listID.String()).
		Str("canonical_name", created.CanonicalName).
		Bool("corrected", corrected).
		Msg("list entry created")

	return AddItemResult{Entry: itemToDTO(created), Merged: false, Corrected: corrected}, nil
}

func (s *service) loadList(ctx context.Context, listID uuid.UUID) (models.ShoppingList, error) {
	if listID == uuid.Nil {
		return models.ShoppingList{}, pkgerrors.New(pkgerrors.CodeValidation, "list id is required")
	}
	list, err := s.repo.FindList(ctx, listID)
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return models.ShoppingList{}, pkgerrors.Wrap(pkgerrors.CodeNoShoppingList, err, "list not found")
		}
		return models.ShoppingList{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load list")
	}
	return list, nil
}

// positiveQuantity rejects non-finite values as well as zero and negatives;
// strconv.ParseFloat happily yields NaN and Inf from query strings.
func positiveQuantity(qty float64) bool {
	return qty > 0 && !math.IsNaN(qty) && !math.IsInf(qty, 0)
}

func (s *service) lockFor(listID uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.listLocks[listID]
	if !ok {
		lock = &sync.Mutex{}
		s.listLocks[listID] = lock
	}
	return lock
}
