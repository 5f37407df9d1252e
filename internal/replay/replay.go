// Package replay drives a review session from a recorded action script.
package replay

import (
	"context"
	"errors"
	"fmt"

	"github.com/ncc-portal/order-review/internal/enum"
	"github.com/ncc-portal/order-review/internal/fixture"
	"github.com/ncc-portal/order-review/internal/ledger"
	"github.com/ncc-portal/order-review/internal/review"
	"github.com/ncc-portal/order-review/internal/service"
	"go.uber.org/zap"
)

// Result summarizes one replay.
type Result struct {
	Outcome  string // confirm, reject, back, or empty when the script never left the screen
	Applied  int
	Dropped  int
	Blocked  []error
	Final    review.State
	Leftover int // steps after the one that left the screen
}

// Run applies steps to ss in order and stops at the first step that
// commits or leaves the screen. Steps the screen would ignore (bad quantity
// text, edits to unknown items, edits on a read-only order) are dropped and
// counted. A blocked commit is recorded and the replay continues, as a user
// would stay on the screen. Handler failures end the replay.
func Run(ctx context.Context, ss *service.Session, steps []fixture.Step, log *zap.Logger) (Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	var res Result

	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		if step.Terminal() {
			err := commit(ctx, ss, step.Action)
			if service.IsBlocked(err) {
				res.Blocked = append(res.Blocked, fmt.Errorf("step %d %s: %w", i+1, step.Action, err))
				continue
			}
			if err != nil {
				res.Final = ss.State()
				return res, fmt.Errorf("step %d %s: %w", i+1, step.Action, err)
			}
			res.Outcome = step.Action
			res.Leftover = len(steps) - i - 1
			if res.Leftover > 0 {
				log.Info("ignoring steps after screen was left", zap.Int("count", res.Leftover))
			}
			break
		}

		ev, err := step.Event()
		if err != nil {
			if errors.Is(err, fixture.ErrInvalidQuantity) {
				log.Debug("dropping step", zap.Int("step", i+1), zap.Error(err))
				res.Dropped++
				continue
			}
			return res, fmt.Errorf("step %d: %w", i+1, err)
		}

		if err := ss.Dispatch(ev); err != nil {
			if dropped(err) {
				res.Dropped++
				continue
			}
			return res, fmt.Errorf("step %d %s: %w", i+1, step.Action, err)
		}
		res.Applied++
	}

	res.Final = ss.State()
	return res, nil
}

func commit(ctx context.Context, ss *service.Session, action string) error {
	switch action {
	case enum.ActionConfirm:
		_, err := ss.Confirm(ctx)
		return err
	case enum.ActionReject:
		_, err := ss.Reject(ctx)
		return err
	default:
		return ss.Back(ctx)
	}
}

func dropped(err error) bool {
	return errors.Is(err, review.ErrReadOnly) ||
		errors.Is(err, ledger.ErrUnknownItem) ||
		errors.Is(err, ledger.ErrInvalidISODate)
}
