package export

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ncc-portal/order-review/internal/assembler"
	"github.com/ncc-portal/order-review/internal/enum"
	"github.com/ncc-portal/order-review/internal/order"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

var (
	fixedID  = uuid.MustParse("6f1c2a3b-4d5e-4f60-8a7b-9c0d1e2f3a4b")
	fixedNow = time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC)
)

func pin(b *base) {
	b.now = func() time.Time { return fixedNow }
	b.newID = func() uuid.UUID { return fixedID }
}

func confirmPayload() assembler.ConfirmPayload {
	return assembler.ConfirmPayload{
		OrderIDs: []string{"A", "B"},
		Updates: []assembler.ItemUpdate{
			{ID: "A", Quantity: 3, DeliveryDateISO: "2024-03-09"},
			{ID: "B", Quantity: 0, DeliveryDateISO: ""},
		},
		Notes: "giao trước 9h",
	}
}

// =====================
// JSON
// =====================

func TestJSONSink_Confirm(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	sink := NewJSONSink(dir, nil)
	pin(&sink.base)

	if err := sink.OnConfirm(context.Background(), confirmPayload()); err != nil {
		t.Fatalf("OnConfirm: %v", err)
	}

	written := sink.Written()
	if len(written) != 1 {
		t.Fatalf("written = %v", written)
	}
	want := filepath.Join(dir, "confirm-"+fixedID.String()+".json")
	if written[0] != want {
		t.Errorf("path = %s, want %s", written[0], want)
	}

	data, err := os.ReadFile(written[0])
	if err != nil {
		t.Fatal(err)
	}
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.SubmissionID != fixedID.String() || env.Outcome != OutcomeConfirm || !env.SubmittedAt.Equal(fixedNow) {
		t.Errorf("envelope header = %+v", env)
	}
	if env.Reject != nil || env.Confirm == nil {
		t.Fatalf("expected confirm payload only")
	}
	if len(env.Confirm.Updates) != 2 || env.Confirm.Updates[0].DeliveryDateISO != "2024-03-09" {
		t.Errorf("updates = %+v", env.Confirm.Updates)
	}
	if !strings.Contains(string(data), `"delivery_date": "2024-03-09"`) {
		t.Errorf("expected delivery_date field in %s", data)
	}
}

func TestJSONSink_Reject(t *testing.T) {
	sink := NewJSONSink(t.TempDir(), nil)
	pin(&sink.base)

	p := assembler.RejectPayload{OrderIDs: []string{"ord-1"}, Reason: "Hết mùa"}
	if err := sink.OnReject(context.Background(), p); err != nil {
		t.Fatalf("OnReject: %v", err)
	}
	data, err := os.ReadFile(sink.Written()[0])
	if err != nil {
		t.Fatal(err)
	}
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		t.Fatal(err)
	}
	if env.Outcome != OutcomeReject || env.Reject == nil || env.Reject.Reason != "Hết mùa" {
		t.Errorf("envelope = %+v", env)
	}
}

func TestJSONSink_BackWritesNothing(t *testing.T) {
	dir := t.TempDir()
	sink := NewJSONSink(dir, nil)
	if err := sink.OnBack(context.Background()); err != nil {
		t.Fatal(err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 || len(sink.Written()) != 0 {
		t.Error("back should not write files")
	}
}

// =====================
// XLSX
// =====================

func TestXLSXSink_Confirm(t *testing.T) {
	items := []order.Item{
		{ID: "A", ProductName: "Gạo", Unit: "kg", UnitPrice: decimal.NewFromInt(1000)},
	}
	sink := NewXLSXSink(t.TempDir(), LookupItems(items), nil)
	pin(&sink.base)

	if err := sink.OnConfirm(context.Background(), confirmPayload()); err != nil {
		t.Fatalf("OnConfirm: %v", err)
	}

	f, err := excelize.OpenFile(sink.Written()[0])
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()

	if sheets := f.GetSheetList(); len(sheets) != 1 || sheets[0] != ConfirmSheet {
		t.Errorf("sheets = %v, want [%s]", sheets, ConfirmSheet)
	}
	rows, err := f.GetRows(ConfirmSheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) < 3 {
		t.Fatalf("got %d rows", len(rows))
	}
	if strings.Join(rows[0], "|") != strings.Join(confirmHeaders, "|") {
		t.Errorf("header = %v", rows[0])
	}
	if got := strings.Join(rows[1], "|"); got != "A|Gạo|kg|3|09/03/2024" {
		t.Errorf("row A = %q", got)
	}
	if rows[2][0] != "B" || rows[2][3] != "0" {
		t.Errorf("row B = %v", rows[2])
	}

	notes, _ := f.GetCellValue(ConfirmSheet, "B5")
	if notes != "giao trước 9h" {
		t.Errorf("notes cell = %q", notes)
	}
	ids, _ := f.GetCellValue(ConfirmSheet, "B6")
	if ids != "A, B" {
		t.Errorf("order ids cell = %q", ids)
	}
}

func TestXLSXSink_Reject(t *testing.T) {
	sink := NewXLSXSink(t.TempDir(), nil, nil)
	pin(&sink.base)

	p := assembler.RejectPayload{OrderIDs: []string{"A", "B"}, Reason: "Hết hàng"}
	if err := sink.OnReject(context.Background(), p); err != nil {
		t.Fatalf("OnReject: %v", err)
	}
	if !strings.HasSuffix(sink.Written()[0], "reject-"+fixedID.String()+".xlsx") {
		t.Errorf("path = %s", sink.Written()[0])
	}

	f, err := excelize.OpenFile(sink.Written()[0])
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if sheets := f.GetSheetList(); len(sheets) != 1 || sheets[0] != RejectSheet {
		t.Errorf("sheets = %v, want [%s]", sheets, RejectSheet)
	}
	rows, err := f.GetRows(RejectSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 || rows[1][1] != "Hết hàng" || rows[2][0] != "B" {
		t.Errorf("rows = %v", rows)
	}
}

func TestNewSink(t *testing.T) {
	if _, ok := mustSink(t, enum.ExportJSON).(*JSONSink); !ok {
		t.Error("json format should give JSONSink")
	}
	if _, ok := mustSink(t, enum.ExportXLSX).(*XLSXSink); !ok {
		t.Error("xlsx format should give XLSXSink")
	}
	if _, err := NewSink("csv", t.TempDir(), nil, nil); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func mustSink(t *testing.T, format string) any {
	t.Helper()
	h, err := NewSink(format, t.TempDir(), nil, nil)
	if err != nil {
		t.Fatalf("NewSink(%s): %v", format, err)
	}
	return h
}
