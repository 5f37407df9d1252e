// Package ledger holds the per-item values a supplier edits while reviewing
// an order: confirmed quantities and delivery dates.
//
// Ledgers are snapshots. Every mutation returns a new ledger and leaves the
// receiver untouched, so a caller can keep the previous snapshot around.
// The key set is fixed when the ledger is seeded.
package ledger

import (
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/ncc-portal/order-review/internal/datecodec"
	"github.com/ncc-portal/order-review/internal/order"
)

// Errors returned by ledger mutations.
var (
	ErrUnknownItem    = errors.New("item not in ledger")
	ErrInvalidISODate = errors.New("invalid iso date")
)

// Quantities maps item IDs to edited quantities. Values are never negative.
type Quantities struct {
	ids    []string
	values map[string]int32
}

// SeedQuantities creates one entry per item at its requested quantity.
func SeedQuantities(items []order.Item) Quantities {
	q := Quantities{
		ids:    make([]string, 0, len(items)),
		values: make(map[string]int32, len(items)),
	}
	for _, item := range items {
		if _, ok := q.values[item.ID]; !ok {
			q.ids = append(q.ids, item.ID)
		}
		q.values[item.ID] = floor(item.RequestedQuantity)
	}
	return q
}

// Get returns the quantity for id.
func (q Quantities) Get(id string) (int32, bool) {
	v, ok := q.values[id]
	return v, ok
}

// Len returns the number of entries.
func (q Quantities) Len() int { return len(q.ids) }

// IDs returns the item IDs in seed order.
func (q Quantities) IDs() []string {
	return append([]string(nil), q.ids...)
}

// OutOfStock reports whether id is currently at zero.
func (q Quantities) OutOfStock(id string) bool {
	v, ok := q.values[id]
	return ok && v == 0
}

// Set replaces the entry for id with max(0, v).
func (q Quantities) Set(id string, v int32) (Quantities, error) {
	if _, ok := q.values[id]; !ok {
		return q, fmt.Errorf("set quantity %q: %w", id, ErrUnknownItem)
	}
	next := q.clone()
	next.values[id] = floor(v)
	return next, nil
}

// MarkOutOfStock is Set(id, 0).
func (q Quantities) MarkOutOfStock(id string) (Quantities, error) {
	return q.Set(id, 0)
}

// Equal reports whether both ledgers hold the same entries.
func (q Quantities) Equal(other Quantities) bool {
	if len(q.values) != len(other.values) {
		return false
	}
	for id, v := range q.values {
		if ov, ok := other.values[id]; !ok || ov != v {
			return false
		}
	}
	return true
}

func (q Quantities) clone() Quantities {
	// ids never change after seeding, so the slice is shared.
	return Quantities{ids: q.ids, values: maps.Clone(q.values)}
}

func floor(v int32) int32 {
	if v < 0 {
		return 0
	}
	return v
}

// DeliveryDate keeps the text shown in the date field and the ISO value
// that will be submitted. ISO is empty when no parseable date was ever seen.
type DeliveryDate struct {
	Display string
	ISO     string
}

// Dates maps item IDs to delivery dates.
type Dates struct {
	ids    []string
	values map[string]DeliveryDate
}

// SeedDates creates one entry per item from the item's raw delivery date,
// or from fallback when the item has none.
func SeedDates(items []order.Item, fallback string, loc *time.Location) Dates {
	d := Dates{
		ids:    make([]string, 0, len(items)),
		values: make(map[string]DeliveryDate, len(items)),
	}
	for _, item := range items {
		raw := item.DeliveryDate
		if raw == "" {
			raw = fallback
		}
		display, iso := datecodec.Seed(raw, loc)
		if _, ok := d.values[item.ID]; !ok {
			d.ids = append(d.ids, item.ID)
		}
		d.values[item.ID] = DeliveryDate{Display: display, ISO: iso}
	}
	return d
}

// Get returns the delivery date for id.
func (d Dates) Get(id string) (DeliveryDate, bool) {
	v, ok := d.values[id]
	return v, ok
}

// Len returns the number of entries.
func (d Dates) Len() int { return len(d.ids) }

// SetDisplay records what the user typed. The ISO side is re-derived when
// the text parses; otherwise the previous ISO value is kept so partially
// typed dates do not wipe it. updated reports whether ISO was re-derived.
func (d Dates) SetDisplay(id, display string) (next Dates, updated bool, err error) {
	prev, ok := d.values[id]
	if !ok {
		return d, false, fmt.Errorf("set date %q: %w", id, ErrUnknownItem)
	}
	entry := DeliveryDate{Display: display, ISO: prev.ISO}
	if iso, ok := datecodec.FromDisplay(display); ok {
		entry.ISO = iso
		updated = true
	}
	next = d.clone()
	next.values[id] = entry
	return next, updated, nil
}

// SetISO records a date picked from a native YYYY-MM-DD picker. An empty
// value is ignored, matching a cleared picker.
func (d Dates) SetISO(id, iso string) (Dates, error) {
	if _, ok := d.values[id]; !ok {
		return d, fmt.Errorf("pick date %q: %w", id, ErrUnknownItem)
	}
	if iso == "" {
		return d, nil
	}
	if !datecodec.IsISODate(iso) {
		return d, fmt.Errorf("pick date %q: %w: %q", id, ErrInvalidISODate, iso)
	}
	next := d.clone()
	next.values[id] = DeliveryDate{Display: datecodec.ToDisplay(iso), ISO: iso}
	return next, nil
}

func (d Dates) clone() Dates {
	return Dates{ids: d.ids, values: maps.Clone(d.values)}
}
