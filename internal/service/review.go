package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/ncc-portal/order-review/internal/assembler"
	"github.com/ncc-portal/order-review/internal/datecodec"
	"github.com/ncc-portal/order-review/internal/review"
	"go.uber.org/zap"
)

// Errors returned by the review service. All of them mean the action was
// blocked and no callback ran.
var (
	ErrEmptyOrderGroup     = assembler.ErrEmptyOrderGroup
	ErrMissingRejectReason = assembler.ErrMissingRejectReason
	ErrNotPending          = errors.New("order is no longer pending")
)

// Handler receives the outcome of a review. It is supplied by the caller;
// the review service itself performs no I/O.
type Handler interface {
	OnConfirm(ctx context.Context, p assembler.ConfirmPayload) error
	OnReject(ctx context.Context, p assembler.RejectPayload) error
	OnBack(ctx context.Context) error
}

// HandlerFuncs adapts plain functions to Handler. Nil fields are no-ops.
type HandlerFuncs struct {
	Confirm func(ctx context.Context, p assembler.ConfirmPayload) error
	Reject  func(ctx context.Context, p assembler.RejectPayload) error
	Back    func(ctx context.Context) error
}

func (h HandlerFuncs) OnConfirm(ctx context.Context, p assembler.ConfirmPayload) error {
	if h.Confirm == nil {
		return nil
	}
	return h.Confirm(ctx, p)
}

func (h HandlerFuncs) OnReject(ctx context.Context, p assembler.RejectPayload) error {
	if h.Reject == nil {
		return nil
	}
	return h.Reject(ctx, p)
}

func (h HandlerFuncs) OnBack(ctx context.Context) error {
	if h.Back == nil {
		return nil
	}
	return h.Back(ctx)
}

// ReviewService turns committed review actions into handler calls.
type ReviewService struct {
	handler Handler
	log     *zap.Logger
}

// NewReviewService creates a new ReviewService. A nil logger disables logging.
func NewReviewService(handler Handler, log *zap.Logger) *ReviewService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ReviewService{handler: handler, log: log}
}

// Confirm assembles the confirm payload from s and passes it to the handler.
func (svc *ReviewService) Confirm(ctx context.Context, s review.State) (*assembler.ConfirmPayload, error) {
	if !s.Editable() {
		svc.blocked("confirm", s, ErrNotPending)
		return nil, ErrNotPending
	}

	payload, err := assembler.BuildConfirm(s.OrderIDs, s.Items, s.Quantities, s.Dates, s.Notes)
	if err != nil {
		svc.blocked("confirm", s, err)
		return nil, err
	}

	if err := svc.handler.OnConfirm(ctx, payload); err != nil {
		return nil, fmt.Errorf("confirm handler: %w", err)
	}

	svc.log.Info("review confirmed",
		zap.Strings("order_ids", payload.OrderIDs),
		zap.Int("items", len(payload.Updates)),
	)
	return &payload, nil
}

// Reject assembles the reject payload from s and passes it to the handler.
// A blank reason blocks the action.
func (svc *ReviewService) Reject(ctx context.Context, s review.State) (*assembler.RejectPayload, error) {
	if !s.Editable() {
		svc.blocked("reject", s, ErrNotPending)
		return nil, ErrNotPending
	}

	payload, err := assembler.BuildReject(s.OrderIDs, s.Items, s.RejectReason)
	if err != nil {
		svc.blocked("reject", s, err)
		return nil, err
	}

	if err := svc.handler.OnReject(ctx, payload); err != nil {
		return nil, fmt.Errorf("reject handler: %w", err)
	}

	svc.log.Info("review rejected", zap.Strings("order_ids", payload.OrderIDs))
	return &payload, nil
}

// Back notifies the handler that the user left the screen.
func (svc *ReviewService) Back(ctx context.Context) error {
	if err := svc.handler.OnBack(ctx); err != nil {
		return fmt.Errorf("back handler: %w", err)
	}
	return nil
}

func (svc *ReviewService) blocked(action string, s review.State, err error) {
	svc.log.Warn("review action blocked",
		zap.String("action", action),
		zap.Strings("order_ids", s.OrderIDs),
		zap.Error(err),
	)
}

// IsBlocked reports whether err means an action was refused rather than
// failed.
func IsBlocked(err error) bool {
	return errors.Is(err, ErrEmptyOrderGroup) ||
		errors.Is(err, ErrMissingRejectReason) ||
		errors.Is(err, ErrNotPending)
}

// Session tracks the current snapshot of one review screen. It is not safe
// for concurrent use; a screen has a single editor.
type Session struct {
	ID    uuid.UUID
	svc   *ReviewService
	state review.State
	steps int
	log   *zap.Logger
}

// NewSession starts a session at the seeded snapshot s.
func (svc *ReviewService) NewSession(s review.State) *Session {
	id := uuid.New()
	return &Session{
		ID:    id,
		svc:   svc,
		state: s,
		log:   svc.log.With(zap.String("session_id", id.String()), zap.String("kind", s.Kind)),
	}
}

// State returns the current snapshot.
func (ss *Session) State() review.State { return ss.state }

// Steps returns how many events have been applied.
func (ss *Session) Steps() int { return ss.steps }

// Dispatch applies e. On error the current snapshot is kept.
func (ss *Session) Dispatch(e review.Event) error {
	next, err := review.Apply(ss.state, e)
	if err != nil {
		ss.log.Warn("event rejected", zap.String("event", fmt.Sprintf("%T", e)), zap.Error(err))
		return err
	}
	if d, ok := e.(review.DisplayDateChanged); ok {
		if _, parsed := datecodec.FromDisplay(d.Display); !parsed {
			cur, _ := next.Dates.Get(d.ItemID)
			ss.log.Debug("display date kept previous iso",
				zap.String("item_id", d.ItemID),
				zap.String("display", d.Display),
				zap.String("iso", cur.ISO),
			)
		}
	}
	ss.state = next
	ss.steps++
	return nil
}

// Confirm commits the current snapshot.
func (ss *Session) Confirm(ctx context.Context) (*assembler.ConfirmPayload, error) {
	return ss.svc.Confirm(ctx, ss.state)
}

// Reject commits the current snapshot's reject reason.
func (ss *Session) Reject(ctx context.Context) (*assembler.RejectPayload, error) {
	return ss.svc.Reject(ctx, ss.state)
}

// Back leaves the screen.
func (ss *Session) Back(ctx context.Context) error {
	return ss.svc.Back(ctx)
}
