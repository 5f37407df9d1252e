package review

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrReadOnly is returned when an edit targets an order that is no longer
// pending.
var ErrReadOnly = errors.New("order is not editable")

// Event is a single user action on a review screen.
type Event interface {
	event()
}

// QuantityChanged sets an item's confirmed quantity. Negative values are
// stored as zero.
type QuantityChanged struct {
	ItemID   string
	Quantity int32
}

// OutOfStockMarked zeroes an item's quantity.
type OutOfStockMarked struct {
	ItemID string
}

// DisplayDateChanged carries the text typed into a DD/MM/YYYY date field.
type DisplayDateChanged struct {
	ItemID  string
	Display string
}

// ISODateChanged carries a value from a native YYYY-MM-DD date picker.
type ISODateChanged struct {
	ItemID string
	ISO    string
}

// NotesChanged replaces the supplier notes.
type NotesChanged struct {
	Text string
}

// RejectReasonChanged replaces the reject reason draft.
type RejectReasonChanged struct {
	Text string
}

// RejectFormToggled opens or closes the reject form. Closing discards the
// reason draft.
type RejectFormToggled struct {
	Open bool
}

func (QuantityChanged) event()     {}
func (OutOfStockMarked) event()    {}
func (DisplayDateChanged) event()  {}
func (ISODateChanged) event()      {}
func (NotesChanged) event()        {}
func (RejectReasonChanged) event() {}
func (RejectFormToggled) event()   {}

// Apply returns the snapshot that results from e. On error the returned
// snapshot is s unchanged. A display date that does not parse is not an
// error: the text is kept and the ISO value stays as it was.
func Apply(s State, e Event) (State, error) {
	switch e := e.(type) {
	case QuantityChanged:
		if !s.Editable() {
			return s, ErrReadOnly
		}
		q, err := s.Quantities.Set(e.ItemID, e.Quantity)
		if err != nil {
			return s, err
		}
		s.Quantities = q

	case OutOfStockMarked:
		if !s.Editable() {
			return s, ErrReadOnly
		}
		q, err := s.Quantities.MarkOutOfStock(e.ItemID)
		if err != nil {
			return s, err
		}
		s.Quantities = q

	case DisplayDateChanged:
		if !s.Editable() {
			return s, ErrReadOnly
		}
		d, _, err := s.Dates.SetDisplay(e.ItemID, e.Display)
		if err != nil {
			return s, err
		}
		s.Dates = d

	case ISODateChanged:
		if !s.Editable() {
			return s, ErrReadOnly
		}
		d, err := s.Dates.SetISO(e.ItemID, e.ISO)
		if err != nil {
			return s, err
		}
		s.Dates = d

	case NotesChanged:
		if !s.Editable() {
			return s, ErrReadOnly
		}
		s.Notes = e.Text

	case RejectReasonChanged:
		if !s.Editable() {
			return s, ErrReadOnly
		}
		s.RejectReason = e.Text

	case RejectFormToggled:
		if !s.Editable() {
			return s, ErrReadOnly
		}
		s.RejectFormOpen = e.Open
		if !e.Open {
			s.RejectReason = ""
		}

	default:
		return s, fmt.Errorf("unsupported event %T", e)
	}
	return s, nil
}

// ParseQuantityInput reads the text of a quantity field. ok is false when
// the text is not a whole number; callers should then drop the edit.
func ParseQuantityInput(text string) (int32, bool) {
	v, err := strconv.ParseInt(strings.TrimSpace(text), 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(v), true
}
