// Package review models the order review screens as immutable state
// snapshots. User input arrives as events; Apply turns the current snapshot
// and one event into the next snapshot. Render derives what the screen
// shows from a snapshot.
package review

import (
	"time"

	"github.com/ncc-portal/order-review/internal/enum"
	"github.com/ncc-portal/order-review/internal/ledger"
	"github.com/ncc-portal/order-review/internal/order"
)

// Header is the order information shown above the item list.
type Header struct {
	Number                string
	Buyer                 string // purchasing employee
	BuyerPhone            string
	OrderDate             string
	SentAt                string
	RequestedDeliveryDate string
	Status                string
}

// State is one snapshot of a review screen.
type State struct {
	Kind           string
	Header         Header
	OrderIDs       []string
	Items          []order.Item
	Quantities     ledger.Quantities
	Dates          ledger.Dates
	Notes          string
	RejectReason   string
	RejectFormOpen bool
}

// NewOrderReview seeds a single-order review. Confirmed quantities start at
// the requested quantities; items without a delivery date take the order's
// requested delivery date.
func NewOrderReview(o order.Order, loc *time.Location) State {
	items := append([]order.Item(nil), o.Items...)
	return State{
		Kind: enum.ReviewKindOrder,
		Header: Header{
			Number:                o.Number,
			Buyer:                 o.CustomerName,
			BuyerPhone:            o.CustomerPhone,
			OrderDate:             o.OrderDate,
			RequestedDeliveryDate: o.RequestedDeliveryDate,
			Status:                o.Status,
		},
		OrderIDs:   []string{o.ID},
		Items:      items,
		Quantities: ledger.SeedQuantities(items),
		Dates:      ledger.SeedDates(items, o.RequestedDeliveryDate, loc),
		Notes:      o.SupplierNotes,
	}
}

// NewDraftReview seeds a review over a group of draft delivery plan lines.
// Expected delivery timestamps are normalized to loc's calendar day.
func NewDraftReview(g order.DraftGroup, loc *time.Location) State {
	items := g.Items()
	s := State{
		Kind:       enum.ReviewKindDraft,
		OrderIDs:   g.IDs(),
		Items:      items,
		Quantities: ledger.SeedQuantities(items),
		Dates:      ledger.SeedDates(items, "", loc),
	}
	if first, ok := g.First(); ok {
		s.Header = Header{
			Buyer:  first.Buyer,
			SentAt: first.CreatedOn,
			Status: enum.OrderStatusPending,
		}
	}
	return s
}

// Editable reports whether inputs accept changes. Draft groups are always
// editable; a single order only while pending.
func (s State) Editable() bool {
	if s.Kind == enum.ReviewKindDraft {
		return true
	}
	return s.Header.Status == enum.OrderStatusPending
}

// Empty reports whether there is nothing to review.
func (s State) Empty() bool {
	return len(s.Items) == 0
}
