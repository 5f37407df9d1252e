package totals

import (
	"testing"

	"github.com/ncc-portal/order-review/internal/ledger"
	"github.com/ncc-portal/order-review/internal/order"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCompute_Scenario(t *testing.T) {
	items := []order.Item{{ID: "A", UnitPrice: dec("1000"), RequestedQuantity: 5}}
	q := ledger.SeedQuantities(items)

	if got := Compute(items, q); !got.Equal(dec("5000")) {
		t.Errorf("Compute = %s, want 5000", got)
	}

	q, err := q.Set("A", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := Compute(items, q); !got.IsZero() {
		t.Errorf("Compute after Set(A, 0) = %s, want 0", got)
	}
}

func TestCompute_KeepsFullPrecision(t *testing.T) {
	items := []order.Item{
		{ID: "A", UnitPrice: dec("0.1"), RequestedQuantity: 3},
		{ID: "B", UnitPrice: dec("1234.555"), RequestedQuantity: 2},
	}
	got := Compute(items, ledger.SeedQuantities(items))
	if !got.Equal(dec("2469.41")) {
		t.Errorf("Compute = %s, want 2469.41", got)
	}
}

func TestCompute_Linear(t *testing.T) {
	items := []order.Item{
		{ID: "A", UnitPrice: dec("1000"), RequestedQuantity: 5},
		{ID: "B", UnitPrice: dec("25000"), RequestedQuantity: 2},
		{ID: "C", UnitPrice: dec("18500.50"), RequestedQuantity: 7},
		{ID: "D", UnitPrice: dec("0"), RequestedQuantity: 100},
	}
	base := ledger.SeedQuantities(items)
	baseTotal := Compute(items, base)

	for k := int32(0); k <= 10; k++ {
		scaled := base
		for _, item := range items {
			qty, _ := base.Get(item.ID)
			var err error
			scaled, err = scaled.Set(item.ID, qty*k)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		want := baseTotal.Mul(decimal.NewFromInt32(k))
		if got := Compute(items, scaled); !got.Equal(want) {
			t.Errorf("k=%d: Compute = %s, want %s", k, got, want)
		}
	}
}

func TestCompute_Empty(t *testing.T) {
	if got := Compute(nil, ledger.SeedQuantities(nil)); !got.IsZero() {
		t.Errorf("Compute(nil) = %s, want 0", got)
	}
}

func TestLineAndRequested(t *testing.T) {
	items := []order.Item{
		{ID: "A", UnitPrice: dec("1500"), RequestedQuantity: 4},
		{ID: "B", UnitPrice: dec("200"), RequestedQuantity: 1},
	}
	if got := Line(items[0], 3); !got.Equal(dec("4500")) {
		t.Errorf("Line = %s, want 4500", got)
	}
	if got := Requested(items); !got.Equal(dec("6200")) {
		t.Errorf("Requested = %s, want 6200", got)
	}
}
