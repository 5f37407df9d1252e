// Package assembler packages reviewed ledger state into the payloads handed
// to the confirm and reject callbacks. It performs no I/O.
package assembler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ncc-portal/order-review/internal/ledger"
	"github.com/ncc-portal/order-review/internal/order"
)

// Errors returned when a payload cannot be built. Both mean "do not invoke
// the callback"; neither is fatal.
var (
	ErrEmptyOrderGroup     = errors.New("no items in order group")
	ErrMissingRejectReason = errors.New("reject reason is required")
)

// ItemUpdate is the reviewed state of a single item.
type ItemUpdate struct {
	ID              string `json:"id" yaml:"id"`
	Quantity        int32  `json:"quantity" yaml:"quantity"`
	DeliveryDateISO string `json:"delivery_date" yaml:"delivery_date"`
}

// ConfirmPayload is passed to the confirm callback.
type ConfirmPayload struct {
	OrderIDs []string     `json:"order_ids" yaml:"order_ids"`
	Updates  []ItemUpdate `json:"updates" yaml:"updates"`
	Notes    string       `json:"notes" yaml:"notes"`
}

// RejectPayload is passed to the reject callback.
type RejectPayload struct {
	OrderIDs []string `json:"order_ids" yaml:"order_ids"`
	Reason   string   `json:"reason" yaml:"reason"`
}

// BuildConfirm gathers one update per item, in item order.
func BuildConfirm(orderIDs []string, items []order.Item, q ledger.Quantities, d ledger.Dates, notes string) (ConfirmPayload, error) {
	if len(items) == 0 || len(orderIDs) == 0 {
		return ConfirmPayload{}, ErrEmptyOrderGroup
	}

	updates := make([]ItemUpdate, len(items))
	for i, item := range items {
		qty, ok := q.Get(item.ID)
		if !ok {
			return ConfirmPayload{}, fmt.Errorf("item[%d] %q: %w", i, item.ID, ledger.ErrUnknownItem)
		}
		date, _ := d.Get(item.ID)
		updates[i] = ItemUpdate{
			ID:              item.ID,
			Quantity:        qty,
			DeliveryDateISO: date.ISO,
		}
	}

	return ConfirmPayload{
		OrderIDs: append([]string(nil), orderIDs...),
		Updates:  updates,
		Notes:    notes,
	}, nil
}

// BuildReject requires a reason with at least one non-space character. The
// reason is forwarded as typed.
func BuildReject(orderIDs []string, items []order.Item, reason string) (RejectPayload, error) {
	if len(items) == 0 || len(orderIDs) == 0 {
		return RejectPayload{}, ErrEmptyOrderGroup
	}
	if strings.TrimSpace(reason) == "" {
		return RejectPayload{}, ErrMissingRejectReason
	}
	return RejectPayload{
		OrderIDs: append([]string(nil), orderIDs...),
		Reason:   reason,
	}, nil
}
