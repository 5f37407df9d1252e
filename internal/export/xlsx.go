package export

import (
	"context"
	"fmt"
	"strings"

	"github.com/ncc-portal/order-review/internal/assembler"
	"github.com/ncc-portal/order-review/internal/datecodec"
	"github.com/ncc-portal/order-review/internal/enum"
	"github.com/ncc-portal/order-review/internal/order"
	"github.com/ncc-portal/order-review/internal/service"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Sheet names and headers. Suppliers read these files, so they are in
// Vietnamese.
const (
	ConfirmSheet = "Xác nhận"
	RejectSheet  = "Từ chối"
)

var (
	confirmHeaders = []string{"Mã hàng", "Tên hàng", "Đơn vị", "Số lượng", "Ngày giao"}
	rejectHeaders  = []string{"Mã đơn", "Lý do"}
)

// ItemLookup resolves item details for the sheet. It may be nil.
type ItemLookup func(id string) (order.Item, bool)

// LookupItems builds an ItemLookup over items.
func LookupItems(items []order.Item) ItemLookup {
	byID := make(map[string]order.Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	return func(id string) (order.Item, bool) {
		it, ok := byID[id]
		return it, ok
	}
}

// XLSXSink writes each submission to its own workbook.
type XLSXSink struct {
	base
	items ItemLookup
}

var _ service.Handler = (*XLSXSink)(nil)

// NewXLSXSink creates a sink writing into dir.
func NewXLSXSink(dir string, items ItemLookup, log *zap.Logger) *XLSXSink {
	return &XLSXSink{base: newBase(dir, log), items: items}
}

func (s *XLSXSink) OnConfirm(ctx context.Context, p assembler.ConfirmPayload) error {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", ConfirmSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := writeHeader(f, ConfirmSheet, confirmHeaders); err != nil {
		return err
	}
	for i, u := range p.Updates {
		var name, unit string
		if s.items != nil {
			if it, ok := s.items(u.ID); ok {
				name, unit = it.ProductName, it.Unit
			}
		}
		row := []any{u.ID, name, unit, u.Quantity, datecodec.ToDisplay(u.DeliveryDateISO)}
		if err := writeRow(f, ConfirmSheet, i+2, row); err != nil {
			return err
		}
	}

	notesRow := len(p.Updates) + 3
	if err := writeRow(f, ConfirmSheet, notesRow, []any{"Ghi chú", p.Notes}); err != nil {
		return err
	}
	if err := writeRow(f, ConfirmSheet, notesRow+1, []any{"Mã đơn", strings.Join(p.OrderIDs, ", ")}); err != nil {
		return err
	}
	return s.save(f, OutcomeConfirm)
}

func (s *XLSXSink) OnReject(ctx context.Context, p assembler.RejectPayload) error {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", RejectSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := writeHeader(f, RejectSheet, rejectHeaders); err != nil {
		return err
	}
	for i, id := range p.OrderIDs {
		if err := writeRow(f, RejectSheet, i+2, []any{id, p.Reason}); err != nil {
			return err
		}
	}
	return s.save(f, OutcomeReject)
}

func (s *XLSXSink) save(f *excelize.File, outcome string) error {
	id := s.newID().String()
	path, err := s.path(outcome, id, enum.ExportXLSX)
	if err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	s.written = append(s.written, path)
	s.log.Info("workbook written",
		zap.String("submission_id", id),
		zap.String("outcome", outcome),
		zap.String("path", path),
	)
	return nil
}

func writeHeader(f *excelize.File, sheet string, headers []string) error {
	row := make([]any, len(headers))
	for i, h := range headers {
		row[i] = h
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, col, col, 18); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}
	if err := writeRow(f, sheet, 1, row); err != nil {
		return err
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	return f.SetRowStyle(sheet, 1, 1, style)
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("set %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}
