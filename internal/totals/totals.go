// Package totals derives monetary amounts from items and edited quantities.
// Amounts are computed on demand at full precision; rounding is left to
// the formatter at display time.
package totals

import (
	"github.com/ncc-portal/order-review/internal/ledger"
	"github.com/ncc-portal/order-review/internal/order"
	"github.com/shopspring/decimal"
)

// Line returns unit_price * qty.
func Line(item order.Item, qty int32) decimal.Decimal {
	return item.UnitPrice.Mul(decimal.NewFromInt32(qty))
}

// Compute sums Line over every item using the quantities in q.
// Items missing from q count as zero.
func Compute(items []order.Item, q ledger.Quantities) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		qty, _ := q.Get(item.ID)
		total = total.Add(Line(item, qty))
	}
	return total
}

// Requested sums Line over every item at its requested quantity.
func Requested(items []order.Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(Line(item, item.RequestedQuantity))
	}
	return total
}
