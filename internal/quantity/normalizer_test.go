package quantity

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/dmfuentes/smartcart-backend/internal/catalog"
	"github.com/dmfuentes/smartcart-backend/pkg/enums"
)

func newTestService() *Service {
	return NewService(ServiceParams{
		Catalog: catalog.NewService(catalog.ServiceParams{Log: zerolog.Nop()}),
		Log:     zerolog.Nop(),
	})
}

func TestNormalizeEggsToDozen(t *testing.T) {
	svc := newTestService()

	got := svc.Normalize("Eggs", 12, enums.UnitCount)
	if got.Unit != enums.UnitDozen || got.Quantity != 1 {
		t.Fatalf("expected 1 DOZEN, got %f %s", got.Quantity, got.Unit)
	}
	if !got.Changed {
		t.Fatal("expected a changed suggestion")
	}
}

func TestNormalizeEggCartonSizes(t *testing.T) {
	svc := newTestService()

	cases := []struct {
		count float64
		want  float64
	}{
		{6, 1},
		{12, 1},
		{15, 1.5},
		{18, 1.5},
		{24, 2},
		{30, 3},
	}
	for _, tc := range cases {
		got := svc.Normalize("eggs", tc.count, enums.UnitCount)
		if got.Unit != enums.UnitDozen || got.Quantity != tc.want {
			t.Fatalf("count %f: expected %f DOZEN, got %f %s", tc.count, tc.want, got.Quantity, got.Unit)
		}
	}
}

func TestNormalizeMilkCappedAtTwoGallons(t *testing.T) {
	svc := newTestService()

	got := svc.Normalize("milk", 5, enums.UnitGallon)
	if got.Unit != enums.UnitGallon || got.Quantity != 2 {
		t.Fatalf("expected 2 GALLON, got %f %s", got.Quantity, got.Unit)
	}
}

func TestNormalizeSaneMilkIsNoOp(t *testing.T) {
	svc := newTestService()

	got := svc.Normalize("milk", 1, enums.UnitGallon)
	if got.Changed {
		t.Fatalf("expected no-op, got %+v", got)
	}
	if got.Quantity != 1 || got.Unit != enums.UnitGallon {
		t.Fatalf("no-op must echo the input, got %f %s", got.Quantity, got.Unit)
	}
}

func TestNormalizeBananaBunch(t *testing.T) {
	svc := newTestService()

	got := svc.Normalize("bananas", 5, enums.UnitCount)
	if got.Unit != enums.UnitLB || got.Quantity != 2 {
		t.Fatalf("expected a 2 LB bunch, got %f %s", got.Quantity, got.Unit)
	}
}

func TestNormalizeProduceCountToPounds(t *testing.T) {
	svc := newTestService()

	got := svc.Normalize("tomatoes", 4, enums.UnitCount)
	if got.Unit != enums.UnitLB {
		t.Fatalf("expected LB, got %s", got.Unit)
	}
	if got.Quantity != 1.5 {
		t.Fatalf("expected 1.5 LB (quarter-pound rounding), got %f", got.Quantity)
	}
}

func TestNormalizeMeatFamilyPortions(t *testing.T) {
	svc := newTestService()

	low := svc.Normalize("ground beef", 1, enums.UnitLB)
	if low.Quantity != 2 || low.Unit != enums.UnitLB {
		t.Fatalf("expected 2 LB floor, got %f %s", low.Quantity, low.Unit)
	}

	high := svc.Normalize("chicken", 8, enums.UnitLB)
	if high.Quantity != 4 || high.Unit != enums.UnitLB {
		t.Fatalf("expected 4 LB cap, got %f %s", high.Quantity, high.Unit)
	}
}

func TestNormalizePantryPurchaseSizes(t *testing.T) {
	svc := newTestService()

	low := svc.Normalize("pasta", 1, enums.UnitCount)
	if low.Quantity != 2 {
		t.Fatalf("expected nudge to 2 units, got %f", low.Quantity)
	}

	high := svc.Normalize("canned beans", 10, enums.UnitCount)
	if high.Quantity != 6 {
		t.Fatalf("expected cap at 6 units, got %f", high.Quantity)
	}
}

func TestNormalizeHouseholdPackSizes(t *testing.T) {
	svc := newTestService()

	got := svc.Normalize("paper towels", 2, enums.UnitCount)
	if got.Unit != enums.UnitPack || got.Quantity != 6 {
		t.Fatalf("expected 6 PACK, got %f %s", got.Quantity, got.Unit)
	}

	bulk := svc.Normalize("toilet paper", 20, enums.UnitCount)
	if bulk.Unit != enums.UnitPack || bulk.Quantity != 24 {
		t.Fatalf("expected 24 PACK, got %f %s", bulk.Quantity, bulk.Unit)
	}
}

func TestNormalizeAlwaysPositive(t *testing.T) {
	svc := newTestService()

	names := []string{"milk", "eggs", "bananas", "chicken", "pasta", "paper towels", "mystery item"}
	units := []enums.Unit{enums.UnitCount, enums.UnitLB, enums.UnitOZ, enums.UnitGallon, enums.UnitDozen, enums.UnitPack}
	quantities := []float64{0.1, 0.5, 1, 3, 7, 50}

	for _, name := range names {
		for _, unit := range units {
			for _, qty := range quantities {
				got := svc.Normalize(name, qty, unit)
				if got.Quantity <= 0 {
					t.Fatalf("non-positive suggestion for %q %f %s: %+v", name, qty, unit, got)
				}
				if !got.Unit.IsValid() {
					t.Fatalf("invalid unit suggested for %q: %s", name, got.Unit)
				}
			}
		}
	}
}
