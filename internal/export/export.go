// Package export provides service.Handler implementations that write review
// outcomes to files: a JSON envelope per submission or an XLSX sheet.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/ncc-portal/order-review/internal/assembler"
	"github.com/ncc-portal/order-review/internal/enum"
	"github.com/ncc-portal/order-review/internal/service"
	"go.uber.org/zap"
)

// Outcome names used in envelopes and file names.
const (
	OutcomeConfirm = "confirm"
	OutcomeReject  = "reject"
)

// Envelope wraps one payload with a submission identifier.
type Envelope struct {
	SubmissionID string                    `json:"submission_id"`
	Outcome      string                    `json:"outcome"`
	SubmittedAt  time.Time                 `json:"submitted_at"`
	Confirm      *assembler.ConfirmPayload `json:"confirm,omitempty"`
	Reject       *assembler.RejectPayload  `json:"reject,omitempty"`
}

// base carries what both sinks share.
type base struct {
	dir   string
	log   *zap.Logger
	now   func() time.Time
	newID func() uuid.UUID

	written []string
}

func newBase(dir string, log *zap.Logger) base {
	if log == nil {
		log = zap.NewNop()
	}
	return base{dir: dir, log: log, now: time.Now, newID: uuid.New}
}

// Written returns the files produced so far, oldest first.
func (b *base) Written() []string {
	return append([]string(nil), b.written...)
}

func (b *base) path(outcome, id, ext string) (string, error) {
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	return filepath.Join(b.dir, fmt.Sprintf("%s-%s.%s", outcome, id, ext)), nil
}

func (b *base) OnBack(ctx context.Context) error {
	b.log.Info("review left without submitting")
	return nil
}

// JSONSink writes each submission as an indented JSON envelope.
type JSONSink struct {
	base
}

var _ service.Handler = (*JSONSink)(nil)

// NewJSONSink creates a sink writing into dir.
func NewJSONSink(dir string, log *zap.Logger) *JSONSink {
	return &JSONSink{base: newBase(dir, log)}
}

func (s *JSONSink) OnConfirm(ctx context.Context, p assembler.ConfirmPayload) error {
	return s.write(Envelope{Outcome: OutcomeConfirm, Confirm: &p})
}

func (s *JSONSink) OnReject(ctx context.Context, p assembler.RejectPayload) error {
	return s.write(Envelope{Outcome: OutcomeReject, Reject: &p})
}

func (s *JSONSink) write(env Envelope) error {
	env.SubmissionID = s.newID().String()
	env.SubmittedAt = s.now().UTC()

	path, err := s.path(env.Outcome, env.SubmissionID, enum.ExportJSON)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s envelope: %w", env.Outcome, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	s.written = append(s.written, path)
	s.log.Info("submission written",
		zap.String("submission_id", env.SubmissionID),
		zap.String("outcome", env.Outcome),
		zap.String("path", path),
	)
	return nil
}

// NewSink returns the sink for format: "json" or "xlsx".
func NewSink(format, dir string, items ItemLookup, log *zap.Logger) (service.Handler, error) {
	switch format {
	case enum.ExportJSON:
		return NewJSONSink(dir, log), nil
	case enum.ExportXLSX:
		return NewXLSXSink(dir, items, log), nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}
