package order

import (
	"errors"
	"testing"

	"github.com/ncc-portal/order-review/internal/enum"
	"github.com/shopspring/decimal"
)

func TestValidate(t *testing.T) {
	item := func(id string, price int64, qty int32) Item {
		return Item{ID: id, UnitPrice: decimal.NewFromInt(price), RequestedQuantity: qty}
	}

	tests := []struct {
		name  string
		order Order
		want  error
	}{
		{name: "valid pending", order: Order{Status: enum.OrderStatusPending, Items: []Item{item("a", 1, 1), item("b", 0, 0)}}},
		{name: "valid confirmed no items", order: Order{Status: enum.OrderStatusConfirmed}},
		{name: "unknown status", order: Order{Status: "shipped"}, want: ErrInvalidStatus},
		{name: "blank id", order: Order{Status: enum.OrderStatusPending, Items: []Item{item(" ", 1, 1)}}, want: ErrBlankItemID},
		{name: "duplicate id", order: Order{Status: enum.OrderStatusPending, Items: []Item{item("a", 1, 1), item("a", 2, 2)}}, want: ErrDuplicateItemID},
		{name: "negative price", order: Order{Status: enum.OrderStatusPending, Items: []Item{item("a", -1, 1)}}, want: ErrNegativePrice},
		{name: "negative quantity", order: Order{Status: enum.OrderStatusPending, Items: []Item{item("a", 1, -1)}}, want: ErrNegativeQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.order.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestIsPending(t *testing.T) {
	if !(Order{Status: enum.OrderStatusPending}).IsPending() {
		t.Error("pending order should be pending")
	}
	if (Order{Status: enum.OrderStatusRejected}).IsPending() {
		t.Error("rejected order should not be pending")
	}
}

func TestDraftGroup(t *testing.T) {
	g := DraftGroup{
		{ID: "d-1", ProductName: "Gạo", Unit: "kg", Price: decimal.NewFromInt(1000), Quantity: 5, ExpectedDelivery: "2024-03-06T18:30:00Z", Buyer: "B"},
		{ID: "d-2", Price: decimal.NewFromInt(2000), Quantity: 1, Buyer: "B"},
	}

	ids := g.IDs()
	if len(ids) != 2 || ids[0] != "d-1" || ids[1] != "d-2" {
		t.Errorf("IDs() = %v", ids)
	}

	items := g.Items()
	if items[0].UnitPrice.IntPart() != 1000 || items[0].RequestedQuantity != 5 || items[0].DeliveryDate != "2024-03-06T18:30:00Z" {
		t.Errorf("Items()[0] = %+v", items[0])
	}

	first, ok := g.First()
	if !ok || first.ID != "d-1" {
		t.Errorf("First() = %+v, %v", first, ok)
	}
	if _, ok := (DraftGroup{}).First(); ok {
		t.Error("empty group should have no first line")
	}
}
