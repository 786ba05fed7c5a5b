package deals

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/dmfuentes/smartcart-backend/pkg/db/models"
	"github.com/dmfuentes/smartcart-backend/pkg/enums"
	pkgerrors "github.com/dmfuentes/smartcart-backend/pkg/errors"
	"github.com/dmfuentes/smartcart-backend/pkg/pagination"
)

type stubDealRepo struct {
	deals   []models.Deal
	created []models.Deal
}

func (r *stubDealRepo) Create(_ context.Context, deal models.Deal) (models.Deal, error) {
	deal.ID = uuid.New()
	deal.CreatedAt = time.Now()
	r.created = append(r.created, deal)
	r.deals = append(r.deals, deal)
	return deal, nil
}

func (r *stubDealRepo) ActiveForItem(_ context.Context, retailerID uuid.UUID, productName string, at time.Time) (models.Deal, bool, error) {
	for _, deal := range r.deals {
		if deal.RetailerID == retailerID && deal.ProductName == productName && deal.ActiveAt(at) {
			return deal, true, nil
		}
	}
	return models.Deal{}, false, nil
}

func (r *stubDealRepo) ListActive(_ context.Context, at time.Time, filter ListFilter, _ pagination.Params) ([]models.Deal, string, error) {
	var active []models.Deal
	for _, deal := range r.deals {
		if !deal.ActiveAt(at) {
			continue
		}
		if filter.RetailerID != uuid.Nil && deal.RetailerID != filter.RetailerID {
			continue
		}
		if filter.Category != "" && deal.Category != filter.Category {
			continue
		}
		active = append(active, deal)
	}
	return active, "", nil
}

type stubRetailerFinder struct {
	known map[uuid.UUID]bool
}

func (f stubRetailerFinder) FindByID(_ context.Context, retailerID uuid.UUID) (models.Retailer, error) {
	if !f.known[retailerID] {
		return models.Retailer{}, gorm.ErrRecordNotFound
	}
	return models.Retailer{ID: retailerID, Name: "FreshMart"}, nil
}

type fakeQuoteCache struct {
	deleted []string
}

func (c *fakeQuoteCache) Get(context.Context, string) (string, error) { return "", nil }
func (c *fakeQuoteCache) Set(context.Context, string, string, time.Duration) error {
	return nil
}
func (c *fakeQuoteCache) Del(_ context.Context, keys ...string) error {
	c.deleted = append(c.deleted, keys...)
	return nil
}
func (c *fakeQuoteCache) QuoteKey(retailerID, itemName string) string {
	return "sc:quote:" + retailerID + ":" + itemName
}

func validInput(retailerID uuid.UUID) CreateDealInput {
	now := time.Now()
	return CreateDealInput{
		RetailerID:        retailerID,
		ProductName:       "Milk",
		Category:          "Dairy & Eggs",
		RegularPriceCents: 389,
		SalePriceCents:    350,
		StartsAt:          now.Add(-time.Hour),
		EndsAt:            now.Add(24 * time.Hour),
		Tags:              []string{"weekly"},
	}
}

func newTestService(t *testing.T, repo *stubDealRepo, retailerID uuid.UUID, cache *fakeQuoteCache) Service {
	t.Helper()
	params := ServiceParams{
		Repo:      repo,
		Retailers: stubRetailerFinder{known: map[uuid.UUID]bool{retailerID: true}},
		Log:       zerolog.Nop(),
	}
	if cache != nil {
		params.Cache = cache
	}
	svc, err := NewService(params)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestCreateDealSuccess(t *testing.T) {
	retailerID := uuid.New()
	repo := &stubDealRepo{}
	svc := newTestService(t, repo, retailerID, nil)

	dto, err := svc.Create(context.Background(), validInput(retailerID))
	if err != nil {
		t.Fatalf("create deal: %v", err)
	}
	if dto.SalePriceCents != 350 {
		t.Fatalf("expected sale price 350, got %d", dto.SalePriceCents)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one persisted deal, got %d", len(repo.created))
	}
}

func TestCreateDealInvalidatesQuoteCache(t *testing.T) {
	retailerID := uuid.New()
	cache := &fakeQuoteCache{}
	svc := newTestService(t, &stubDealRepo{}, retailerID, cache)

	if _, err := svc.Create(context.Background(), validInput(retailerID)); err != nil {
		t.Fatalf("create deal: %v", err)
	}
	if len(cache.deleted) != 1 {
		t.Fatalf("expected one invalidated key, got %v", cache.deleted)
	}
}

func TestCreateDealRejectsSaleAboveRegular(t *testing.T) {
	retailerID := uuid.New()
	svc := newTestService(t, &stubDealRepo{}, retailerID, nil)

	input := validInput(retailerID)
	input.SalePriceCents = 400
	_, err := svc.Create(context.Background(), input)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code, got %v", err)
	}
}

func TestCreateDealRejectsInvertedWindow(t *testing.T) {
	retailerID := uuid.New()
	svc := newTestService(t, &stubDealRepo{}, retailerID, nil)

	input := validInput(retailerID)
	input.EndsAt = input.StartsAt
	_, err := svc.Create(context.Background(), input)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code, got %v", err)
	}
}

func TestCreateDealUnknownRetailer(t *testing.T) {
	svc := newTestService(t, &stubDealRepo{}, uuid.New(), nil)

	_, err := svc.Create(context.Background(), validInput(uuid.New()))
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found code, got %v", err)
	}
}

func TestListActiveFiltersExpired(t *testing.T) {
	retailerID := uuid.New()
	repo := &stubDealRepo{}
	svc := newTestService(t, repo, retailerID, nil)

	if _, err := svc.Create(context.Background(), validInput(retailerID)); err != nil {
		t.Fatalf("create active deal: %v", err)
	}
	expired := validInput(retailerID)
	expired.StartsAt = time.Now().Add(-48 * time.Hour)
	expired.EndsAt = time.Now().Add(-24 * time.Hour)
	expired.ProductName = "Bread"
	if _, err := svc.Create(context.Background(), expired); err != nil {
		t.Fatalf("create expired deal: %v", err)
	}

	page, err := svc.ListActive(context.Background(), ListFilter{}, pagination.Params{})
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(page.Deals) != 1 {
		t.Fatalf("expected one active deal, got %d", len(page.Deals))
	}
	if page.Deals[0].ProductName != "Milk" {
		t.Fatalf("expected the Milk deal, got %s", page.Deals[0].ProductName)
	}
}

func TestListActiveAppliesCategoryFilter(t *testing.T) {
	retailerID := uuid.New()
	repo := &stubDealRepo{}
	svc := newTestService(t, repo, retailerID, nil)

	if _, err := svc.Create(context.Background(), validInput(retailerID)); err != nil {
		t.Fatalf("create dairy deal: %v", err)
	}
	produce := validInput(retailerID)
	produce.ProductName = "Banana"
	produce.Category = string(enums.CategoryProduce)
	if _, err := svc.Create(context.Background(), produce); err != nil {
		t.Fatalf("create produce deal: %v", err)
	}

	page, err := svc.ListActive(context.Background(), ListFilter{Category: enums.CategoryProduce}, pagination.Params{})
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(page.Deals) != 1 || page.Deals[0].ProductName != "Banana" {
		t.Fatalf("expected only the Banana deal, got %+v", page.Deals)
	}
}
