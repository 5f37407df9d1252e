package order

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ncc-portal/order-review/internal/enum"
	"github.com/shopspring/decimal"
)

// Errors returned by Validate.
var (
	ErrBlankItemID      = errors.New("item id is required")
	ErrDuplicateItemID  = errors.New("duplicate item id")
	ErrNegativePrice    = errors.New("unit price must be >= 0")
	ErrNegativeQuantity = errors.New("quantity must be >= 0")
	ErrInvalidStatus    = errors.New("invalid order status")
)

// Item is a single reviewable line. DeliveryDate is kept raw: it may be a
// display date (DD/MM/YYYY), an ISO date, a timestamp, or empty.
type Item struct {
	ID                string
	ProductName       string
	Unit              string
	UnitPrice         decimal.Decimal
	RequestedQuantity int32
	DeliveryDate      string
}

// Order is a purchase order sent to a supplier for confirmation.
type Order struct {
	ID                    string
	Number                string
	CustomerName          string // purchasing employee
	CustomerPhone         string
	CustomerAddress       string
	OrderDate             string
	RequestedDeliveryDate string
	Status                string
	TotalAmount           decimal.Decimal
	SupplierNotes         string
	Items                 []Item
}

// IsPending reports whether the supplier may still edit and act on the order.
func (o Order) IsPending() bool {
	return o.Status == enum.OrderStatusPending
}

// Validate checks the order header and its items.
func (o Order) Validate() error {
	switch o.Status {
	case enum.OrderStatusPending, enum.OrderStatusConfirmed, enum.OrderStatusRejected:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStatus, o.Status)
	}
	return ValidateItems(o.Items)
}

// DraftLine is one line of a draft delivery plan. Lines that share a buyer
// are reviewed together as a DraftGroup.
type DraftLine struct {
	ID               string
	ProductName      string
	Unit             string
	Price            decimal.Decimal
	Quantity         int32
	ExpectedDelivery string // timestamp, usually RFC 3339 in UTC
	Buyer            string
	CreatedOn        string
}

// DraftGroup is an ordered set of draft lines reviewed on one screen.
type DraftGroup []DraftLine

// IDs returns the line identifiers in group order.
func (g DraftGroup) IDs() []string {
	ids := make([]string, len(g))
	for i, l := range g {
		ids[i] = l.ID
	}
	return ids
}

// Items maps draft lines to reviewable items.
func (g DraftGroup) Items() []Item {
	items := make([]Item, len(g))
	for i, l := range g {
		items[i] = Item{
			ID:                l.ID,
			ProductName:       l.ProductName,
			Unit:              l.Unit,
			UnitPrice:         l.Price,
			RequestedQuantity: l.Quantity,
			DeliveryDate:      l.ExpectedDelivery,
		}
	}
	return items
}

// First returns the line whose buyer and creation time head the screen.
func (g DraftGroup) First() (DraftLine, bool) {
	if len(g) == 0 {
		return DraftLine{}, false
	}
	return g[0], true
}

// ValidateItems checks identifier uniqueness and non-negative amounts.
func ValidateItems(items []Item) error {
	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		if strings.TrimSpace(item.ID) == "" {
			return fmt.Errorf("item[%d]: %w", i, ErrBlankItemID)
		}
		if _, dup := seen[item.ID]; dup {
			return fmt.Errorf("item[%d]: %w: %s", i, ErrDuplicateItemID, item.ID)
		}
		seen[item.ID] = struct{}{}
		if item.UnitPrice.IsNegative() {
			return fmt.Errorf("item[%d]: %w", i, ErrNegativePrice)
		}
		if item.RequestedQuantity < 0 {
			return fmt.Errorf("item[%d]: %w", i, ErrNegativeQuantity)
		}
	}
	return nil
}
