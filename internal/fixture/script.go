package fixture

import (
	"errors"
	"fmt"
	"os"

	"github.com/ncc-portal/order-review/internal/enum"
	"github.com/ncc-portal/order-review/internal/review"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownAction   = errors.New("unknown action")
	ErrInvalidQuantity = errors.New("quantity is not a whole number")
	ErrMissingItem     = errors.New("action needs an item")
)

// Script is a recorded sequence of user actions on one review screen.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Step is one user action. Value holds the raw text the user entered, so a
// quantity is kept as typed.
type Step struct {
	Action string `yaml:"action"`
	Item   string `yaml:"item,omitempty"`
	Value  string `yaml:"value,omitempty"`
}

// LoadScript reads an action script.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script %s: %w", path, err)
	}
	return &s, nil
}

// Terminal reports whether the step commits or leaves the screen.
func (s Step) Terminal() bool {
	switch s.Action {
	case enum.ActionConfirm, enum.ActionReject, enum.ActionBack:
		return true
	}
	return false
}

// Event converts an editing step to a review event. Quantity text that is
// not a whole number yields ErrInvalidQuantity; callers drop such steps.
func (s Step) Event() (review.Event, error) {
	switch s.Action {
	case enum.ActionSetQuantity, enum.ActionOutOfStock, enum.ActionSetDate, enum.ActionPickDate:
		if s.Item == "" {
			return nil, fmt.Errorf("%s: %w", s.Action, ErrMissingItem)
		}
	}

	switch s.Action {
	case enum.ActionSetQuantity:
		q, ok := review.ParseQuantityInput(s.Value)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidQuantity, s.Value)
		}
		return review.QuantityChanged{ItemID: s.Item, Quantity: q}, nil
	case enum.ActionOutOfStock:
		return review.OutOfStockMarked{ItemID: s.Item}, nil
	case enum.ActionSetDate:
		return review.DisplayDateChanged{ItemID: s.Item, Display: s.Value}, nil
	case enum.ActionPickDate:
		return review.ISODateChanged{ItemID: s.Item, ISO: s.Value}, nil
	case enum.ActionSetNotes:
		return review.NotesChanged{Text: s.Value}, nil
	case enum.ActionRejectReason:
		return review.RejectReasonChanged{Text: s.Value}, nil
	case enum.ActionOpenReject:
		return review.RejectFormToggled{Open: true}, nil
	case enum.ActionCloseReject:
		return review.RejectFormToggled{Open: false}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, s.Action)
	}
}
