package list

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/dmfuentes/smartcart-backend/internal/catalog"
	"github.com/dmfuentes/smartcart-backend/internal/quantity"
	"github.com/dmfuentes/smartcart-backend/pkg/db/models"
	"github.com/dmfuentes/smartcart-backend/pkg/enums"
	pkgerrors "github.com/dmfuentes/smartcart-backend/pkg/errors"
)

type stubRepo struct {
	lists map[uuid.UUID]models.ShoppingList
	items map[uuid.UUID]models.ShoppingListItem

	createItemErr error
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		lists: make(map[uuid.UUID]models.ShoppingList),
		items: make(map[uuid.UUID]models.ShoppingListItem),
	}
}

func (r *stubRepo) CreateList(_ context.Context, list models.ShoppingList) (models.ShoppingList, error) {
	list.ID = uuid.New()
	r.lists[list.ID] = list
	return list, nil
}

func (r *stubRepo) FindList(_ context.Context, listID uuid.UUID) (models.ShoppingList, error) {
	list, ok := r.lists[listID]
	if !ok {
		return models.ShoppingList{}, gorm.ErrRecordNotFound
	}
	return list, nil
}

func (r *stubRepo) DeleteList(_ context.Context, listID uuid.UUID) error {
	if _, ok := r.lists[listID]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.lists, listID)
	for id, item := range r.items {
		if item.ListID == listID {
			delete(r.items, id)
		}
	}
	return nil
}

func (r *stubRepo) ItemsForList(_ context.Context, listID uuid.UUID) ([]models.ShoppingListItem, error) {
	var items []models.ShoppingListItem
	for _, item := range r.items {
		if item.ListID == listID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *stubRepo) FindItem(_ context.Context, listID, itemID uuid.UUID) (models.ShoppingListItem, error) {
	item, ok := r.items[itemID]
	if !ok || item.ListID != listID {
		return models.ShoppingListItem{}, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (r *stubRepo) CreateItem(_ context.Context, item models.ShoppingListItem) (models.ShoppingListItem, error) {
	if r.createItemErr != nil {
		return models.ShoppingListItem{}, r.createItemErr
	}
	item.ID = uuid.New()
	r.items[item.ID] = item
	return item, nil
}

func (r *stubRepo) SaveItem(_ context.Context, item models.ShoppingListItem) (models.ShoppingListItem, error) {
	r.items[item.ID] = item
	return item, nil
}

func (r *stubRepo) DeleteItem(_ context.Context, listID, itemID uuid.UUID) error {
	item, ok := r.items[itemID]
	if !ok || item.ListID != listID {
		return gorm.ErrRecordNotFound
	}
	delete(r.items, itemID)
	return nil
}

func newTestService(t *testing.T) (Service, *stubRepo) {
	t.Helper()
	repo := newStubRepo()
	catalogSvc := catalog.NewService(catalog.ServiceParams{Log: zerolog.Nop()})
	normalizer := quantity.NewService(quantity.ServiceParams{Catalog: catalogSvc, Log: zerolog.Nop()})
	svc, err := NewService(ServiceParams{
		Repo:       repo,
		Catalog:    catalogSvc,
		Normalizer: normalizer,
		Log:        zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, repo
}

func mustCreateList(t *testing.T, svc Service) ListDTO {
	t.Helper()
	list, err := svc.CreateList(context.Background(), CreateListInput{Name: "Weekly Groceries"})
	if err != nil {
		t.Fatalf("create list: %v", err)
	}
	return list
}

func TestNewServiceRequiresRepo(t *testing.T) {
	catalogSvc := catalog.NewService(catalog.ServiceParams{Log: zerolog.Nop()})
	normalizer := quantity.NewService(quantity.ServiceParams{Catalog: catalogSvc, Log: zerolog.Nop()})
	if _, err := NewService(ServiceParams{Catalog: catalogSvc, Normalizer: normalizer}); err == nil {
		t.Fatal("expected error creating service without repo")
	}
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	svc, _ := newTestService(t)
	list := mustCreateList(t, svc)

	_, err := svc.AddItem(context.Background(), list.ID, AddItemInput{Name: "Milk", Quantity: 0})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeInvalidQuantity {
		t.Fatalf("expected invalid quantity code, got %v", err)
	}

	_, err = svc.AddItem(context.Background(), list.ID, AddItemInput{Name: "Milk", Quantity: -2})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeInvalidQuantity {
		t.Fatalf("expected invalid quantity code, got %v", err)
	}
}

func TestAddItemRejectsNonFiniteQuantity(t *testing.T) {
	svc, _ := newTestService(t)
	list := mustCreateList(t, svc)

	for _, qty := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := svc.AddItem(context.Background(), list.ID, AddItemInput{Name: "Milk", Quantity: qty})
		if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeInvalidQuantity {
			t.Fatalf("quantity %f: expected invalid quantity code, got %v", qty, err)
		}
	}
}

func TestUpdateItemRejectsNonFiniteQuantity(t *testing.T) {
	svc, _ := newTestService(t)
	list := mustCreateList(t, svc)

	added, err := svc.AddItem(context.Background(), list.ID, AddItemInput{Name: "Milk", Quantity: 1, Unit: "GALLON"})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}

	nan := math.NaN()
	_, err = svc.UpdateItem(context.Background(), list.ID, added.Entry.ID, UpdateItemInput{Quantity: &nan})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeInvalidQuantity {
		t.Fatalf("expected invalid quantity code, got %v", err)
	}
}

func TestAddItemDuplicateRowMapsToConflict(t *testing.T) {
	svc, repo := newTestService(t)
	list := mustCreateList(t, svc)

	repo.createItemErr = errors.New(`duplicate key value violates unique constraint "shopping_list_items_list_canonical_key"`)

	_, err := svc.AddItem(context.Background(), list.ID, AddItemInput{Name: "Milk", Quantity: 1})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict code, got %v", err)
	}
}

func TestAddItemUnknownListFails(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AddItem(context.Background(), uuid.New(), AddItemInput{Name: "Milk", Quantity: 1})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNoShoppingList {
		t.Fatalf("expected no shopping list code, got %v", err)
	}
}

func TestAddItemCreatesCategorizedEntry(t *testing.T) {
	svc, _ := newTestService(t)
	list := mustCreateList(t, svc)

	result, err := svc.AddItem(context.Background(), list.ID, AddItemInput{Name: "eggs", Quantity: 12, Unit: "COUNT"})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if result.Merged || result.Corrected {
		t.Fatalf("expected plain create, got %+v", result)
	}
	if result.Entry.Category != enums.CategoryDairyEggs {
		t.Fatalf("expected Dairy & Eggs, got %s", result.Entry.Category)
	}
	if result.Entry.Unit != enums.UnitDozen || result.Entry.Quantity != 1 {
		t.Fatalf("expected normalization to 1 DOZEN, got %f %s", result.Entry.Quantity, result.Entry.Unit)
	}
}

func TestAddItemMergesPluralVariant(t *testing.T) {
	svc, _ := newTestService(t)
	list := mustCreateList(t, svc)

	first, err := svc.AddItem(context.Background(), list.ID, AddItemInput{Name: "Banana", Quantity: 2, Unit: "LB"})
	if err != nil {
		t.Fatalf("first add: %v", err)
	}
	second, err := svc.AddItem(context.Background(), list.ID, AddItemInput{Name: "bananas", Quantity: 1, Unit: "LB"})
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if !second.Merged {
		t.Fatalf("expected merge, got %+v", second)
	}
	if second.Entry.ID != first.Entry.ID {
		t.Fatal("merge must reuse the existing entry")
	}
	if second.Entry.Quantity != first.Entry.Quantity+1 {
		t.Fatalf("expected summed quantity %f, got %f", first.Entry.Quantity+1, second.Entry.Quantity)
	}

	items, err := svc.Items(context.Background(), list.ID)
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected a single entry after merge, got %d", len(items))
	}
}

func TestAddItemMergesMisspellingWithCorrection(t *testing.T) {
	svc, _ := newTestService(t)
	list := mustCreateList(t, svc)

	if _, err := svc.AddItem(context.Background(), list.ID, AddItemInput{Name: "Tomato", Quantity: 1, Unit: "LB"}); err != nil {
		t.Fatalf("first add: %v", err)
	}
	result, err := svc.AddItem(context.Background(), list.ID, AddItemInput{Name: "Tomatoe", Quantity: 2, Unit: "LB"})
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if !result.Merged || !result.Corrected {
		t.Fatalf("expected corrected merge, got %+v", result)
	}
}

func TestAddItemDoesNotMergeTomatoSoup(t *testing.T) {
	svc, _ := newTestService(t)
	list := mustCreateList(t, svc)

	if _, err := svc.AddItem(context.Background(), list.ID, AddItemInput{Name: "Tomato", Quantity: 1, Unit: "LB"}); err != nil {
		t.Fatalf("first add: %v", err)
	}
	result, err := svc.AddItem(context.Background(), list.ID, AddItemInput{Name: "Tomato Soup", Quantity: 2, Unit: "COUNT"})
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if result.Merged {
		t.Fatalf("Tomato Soup must stay a separate entry, got %+v", result)
	}

	items, err := svc.Items(context.Background(), list.ID)
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected two entries, got %d", len(items))
	}
}

func TestAddItemCreatesWithCorrectedName(t *testing.T) {
	svc, _ := newTestService(t)
	list := mustCreateList(t, svc)

	result, err := svc.AddItem(context.Background(), list.ID, AddItemInput{Name: "bananna", Quantity: 2, Unit: "LB"})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if result.Merged {
		t.Fatalf("expected create on empty list, got %+v", result)
	}
	if !result.Corrected {
		t.Fatalf("expected corrected flag, got %+v", result)
	}
	if result.Entry.CanonicalName != "Banana" {
		t.Fatalf("expected canonical Banana, got %q", result.Entry.CanonicalName)
	}
}

func TestAddItemPinnedUnitSkipsNormalization(t *testing.T) {
	svc, _ := newTestService(t)
	list := mustCreateList(t, svc)

	result, err := svc.AddItem(context.Background(), list.ID, AddItemInput{Name: "eggs", Quantity: 3, Unit: "PACK"})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if result.Entry.Unit != enums.UnitPack || result.Entry.Quantity != 3 {
		t.Fatalf("explicit unit must be kept verbatim, got %f %s", result.Entry.Quantity, result.Entry.Unit)
	}
}

func TestUpdateItemTogglesCompletion(t *testing.T) {
	svc, _ := newTestService(t)
	list := mustCreateList(t, svc)

	added, err := svc.AddItem(context.Background(), list.ID, AddItemInput{Name: "Milk", Quantity: 1, Unit: "GALLON"})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}

	completed := true
	updated, err := svc.UpdateItem(context.Background(), list.ID, added.Entry.ID, UpdateItemInput{IsCompleted: &completed})
	if err != nil {
		t.Fatalf("update item: %v", err)
	}
	if !updated.IsCompleted {
		t.Fatal("expected item to be completed")
	}

	active := false
	updated, err = svc.UpdateItem(context.Background(), list.ID, added.Entry.ID, UpdateItemInput{IsCompleted: &active})
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if updated.IsCompleted {
		t.Fatal("expected item to be active again")
	}
}

func TestUpdateItemRejectsNonPositiveQuantity(t *testing.T) {
	svc, _ := newTestService(t)
	list := mustCreateList(t, svc)

	added, err := svc.AddItem(context.Background(), list.ID, AddItemInput{Name: "Milk", Quantity: 1, Unit: "GALLON"})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}

	zero := 0.0
	_, err = svc.UpdateItem(context.Background(), list.ID, added.Entry.ID, UpdateItemInput{Quantity: &zero})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeInvalidQuantity {
		t.Fatalf("expected invalid quantity code, got %v", err)
	}
}

func TestUpdateItemNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	list := mustCreateList(t, svc)

	completed := true
	_, err := svc.UpdateItem(context.Background(), list.ID, uuid.New(), UpdateItemInput{IsCompleted: &completed})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found code, got %v", err)
	}
}

func TestDeleteItemNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	list := mustCreateList(t, svc)

	err := svc.DeleteItem(context.Background(), list.ID, uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found code, got %v", err)
	}
}

func TestApplySuggestionsStoresPlannerPick(t *testing.T) {
	svc, _ := newTestService(t)
	list := mustCreateList(t, svc)

	added, err := svc.AddItem(context.Background(), list.ID, AddItemInput{Name: "Milk", Quantity: 1, Unit: "GALLON"})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}

	retailerID := uuid.New()
	err = svc.ApplySuggestions(context.Background(), list.ID, []ItemSuggestion{
		{ItemID: added.Entry.ID, RetailerID: retailerID, PriceCents: 350},
	})
	if err != nil {
		t.Fatalf("apply suggestions: %v", err)
	}

	items, err := svc.Items(context.Background(), list.ID)
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one entry, got %d", len(items))
	}
	entry := items[0]
	if entry.SuggestedRetailerID == nil || *entry.SuggestedRetailerID != retailerID {
		t.Fatalf("expected suggested retailer %s, got %v", retailerID, entry.SuggestedRetailerID)
	}
	if entry.SuggestedPriceCents == nil || *entry.SuggestedPriceCents != 350 {
		t.Fatalf("expected suggested price 350, got %v", entry.SuggestedPriceCents)
	}
}

func TestApplySuggestionsSkipsDeletedItems(t *testing.T) {
	svc, repo := newTestService(t)
	list := mustCreateList(t, svc)

	err := svc.ApplySuggestions(context.Background(), list.ID, []ItemSuggestion{
		{ItemID: uuid.New(), RetailerID: uuid.New(), PriceCents: 100},
	})
	if err != nil {
		t.Fatalf("expected missing items to be skipped, got %v", err)
	}
	if len(repo.items) != 0 {
		t.Fatalf("expected no entries, got %d", len(repo.items))
	}
}

func TestDeleteListCascades(t *testing.T) {
	svc, repo := newTestService(t)
	list := mustCreateList(t, svc)

	if _, err := svc.AddItem(context.Background(), list.ID, AddItemInput{Name: "Milk", Quantity: 1, Unit: "GALLON"}); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if err := svc.DeleteList(context.Background(), list.ID); err != nil {
		t.Fatalf("delete list: %v", err)
	}
	if len(repo.items) != 0 {
		t.Fatalf("expected cascade delete, %d items remain", len(repo.items))
	}
}
