package assembler

import (
	"errors"
	"testing"
	"time"

	"github.com/ncc-portal/order-review/internal/ledger"
	"github.com/ncc-portal/order-review/internal/order"
	"github.com/shopspring/decimal"
)

var ict = time.FixedZone("ICT", 7*60*60)

func items() []order.Item {
	return []order.Item{
		{ID: "d-1", UnitPrice: decimal.NewFromInt(1000), RequestedQuantity: 5, DeliveryDate: "2024-03-06T18:30:00Z"},
		{ID: "d-2", UnitPrice: decimal.NewFromInt(2000), RequestedQuantity: 3, DeliveryDate: "2024-03-08"},
	}
}

func TestBuildConfirm(t *testing.T) {
	its := items()
	q := ledger.SeedQuantities(its)
	d := ledger.SeedDates(its, "", ict)

	q, _ = q.MarkOutOfStock("d-2")
	d, _, _ = d.SetDisplay("d-1", "9/3/2024")

	p, err := BuildConfirm([]string{"d-1", "d-2"}, its, q, d, "giao buổi sáng")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(p.OrderIDs) != 2 || p.OrderIDs[0] != "d-1" || p.OrderIDs[1] != "d-2" {
		t.Errorf("OrderIDs = %v", p.OrderIDs)
	}
	if p.Notes != "giao buổi sáng" {
		t.Errorf("Notes = %q", p.Notes)
	}
	want := []ItemUpdate{
		{ID: "d-1", Quantity: 5, DeliveryDateISO: "2024-03-09"},
		{ID: "d-2", Quantity: 0, DeliveryDateISO: "2024-03-08"},
	}
	if len(p.Updates) != len(want) {
		t.Fatalf("len(Updates) = %d, want %d", len(p.Updates), len(want))
	}
	for i := range want {
		if p.Updates[i] != want[i] {
			t.Errorf("Updates[%d] = %+v, want %+v", i, p.Updates[i], want[i])
		}
	}
}

func TestBuildConfirm_StaleISOAfterBadEdit(t *testing.T) {
	its := items()
	q := ledger.SeedQuantities(its)
	d := ledger.SeedDates(its, "", ict)
	d, _, _ = d.SetDisplay("d-2", "08/03/")

	p, err := BuildConfirm([]string{"d-1", "d-2"}, its, q, d, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Updates[1].DeliveryDateISO != "2024-03-08" {
		t.Errorf("DeliveryDateISO = %q, want stale 2024-03-08", p.Updates[1].DeliveryDateISO)
	}
}

func TestBuildConfirm_EmptyGroup(t *testing.T) {
	_, err := BuildConfirm(nil, nil, ledger.SeedQuantities(nil), ledger.SeedDates(nil, "", ict), "notes")
	if !errors.Is(err, ErrEmptyOrderGroup) {
		t.Fatalf("expected ErrEmptyOrderGroup, got %v", err)
	}

	its := items()
	_, err = BuildConfirm(nil, its, ledger.SeedQuantities(its), ledger.SeedDates(its, "", ict), "")
	if !errors.Is(err, ErrEmptyOrderGroup) {
		t.Fatalf("no order ids: expected ErrEmptyOrderGroup, got %v", err)
	}
}

func TestBuildConfirm_LedgerMissingItem(t *testing.T) {
	its := items()
	q := ledger.SeedQuantities(its[:1])
	_, err := BuildConfirm([]string{"o-1"}, its, q, ledger.SeedDates(its, "", ict), "")
	if !errors.Is(err, ledger.ErrUnknownItem) {
		t.Fatalf("expected ErrUnknownItem, got %v", err)
	}
}

func TestBuildReject(t *testing.T) {
	tests := []struct {
		name    string
		items   []order.Item
		reason  string
		wantErr error
	}{
		{"valid reason", items(), "Hết hàng tháng này", nil},
		{"reason with padding kept", items(), "  giá thay đổi ", nil},
		{"empty reason", items(), "", ErrMissingRejectReason},
		{"whitespace reason", items(), " \t\n ", ErrMissingRejectReason},
		{"empty group", nil, "Hết hàng", ErrEmptyOrderGroup},
		{"empty group and reason", nil, "", ErrEmptyOrderGroup},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := BuildReject([]string{"o-1"}, tt.items, tt.reason)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Reason != tt.reason {
				t.Errorf("Reason = %q, want %q", p.Reason, tt.reason)
			}
			if len(p.OrderIDs) != 1 || p.OrderIDs[0] != "o-1" {
				t.Errorf("OrderIDs = %v", p.OrderIDs)
			}
		})
	}
}

func TestPayloadsDoNotAliasInput(t *testing.T) {
	ids := []string{"o-1"}
	p, err := BuildReject(ids, items(), "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ids[0] = "changed"
	if p.OrderIDs[0] != "o-1" {
		t.Error("payload shares backing array with caller's ids")
	}
}
