package review

import (
	"fmt"
	"strings"
	"time"

	"github.com/ncc-portal/order-review/internal/datecodec"
	"github.com/ncc-portal/order-review/internal/enum"
	"github.com/ncc-portal/order-review/internal/money"
	"github.com/ncc-portal/order-review/internal/totals"
)

// Screen text. The app ships a single Vietnamese locale.
const (
	EmptyMessage      = "Không tìm thấy thông tin đơn hàng."
	OutOfStockLabel   = "Hết hàng"
	NotConfirmedLabel = "Chưa xác nhận"
	NoNotesLabel      = "Không có ghi chú"
	NoDateLabel       = "Chưa có"
	UnknownTimeLabel  = "N/A"
)

// SentAtLayout is the local date and time shown for when a draft was sent.
const SentAtLayout = "02/01/2006 15:04"

// View is what a review screen shows for one snapshot.
type View struct {
	Title    string
	Subtitle string

	Empty        bool
	EmptyMessage string

	Header Header
	Items  []ItemView
	Total  string
	Notes  string

	Editable   bool
	CanConfirm bool
	CanReject  bool

	RejectFormOpen bool
	RejectReason   string
}

// ItemView is one item row.
type ItemView struct {
	ID                string
	ProductName       string
	Unit              string
	UnitPrice         string
	RequestedQuantity int32
	Quantity          int32
	OutOfStock        bool
	QuantityEditable  bool
	DeliveryDisplay   string
	DeliveryISO       string
	LineTotal         string
}

// Render derives the screen contents from s. Amounts are formatted with f.
func Render(s State, f money.Formatter) View {
	v := View{
		Header:         s.Header,
		Editable:       s.Editable(),
		RejectFormOpen: s.RejectFormOpen,
		RejectReason:   s.RejectReason,
	}
	v.Title, v.Subtitle = titles(s)

	if s.Empty() {
		v.Empty = true
		v.EmptyMessage = EmptyMessage
		return v
	}

	v.Items = make([]ItemView, len(s.Items))
	for i, item := range s.Items {
		qty, _ := s.Quantities.Get(item.ID)
		date, _ := s.Dates.Get(item.ID)
		v.Items[i] = ItemView{
			ID:                item.ID,
			ProductName:       item.ProductName,
			Unit:              item.Unit,
			UnitPrice:         f.Format(item.UnitPrice),
			RequestedQuantity: item.RequestedQuantity,
			Quantity:          qty,
			OutOfStock:        qty == 0,
			QuantityEditable:  v.Editable && qty != 0,
			DeliveryDisplay:   date.Display,
			DeliveryISO:       date.ISO,
			LineTotal:         f.Format(totals.Line(item, qty)),
		}
	}
	v.Total = f.Format(totals.Compute(s.Items, s.Quantities))

	v.Notes = s.Notes
	if !v.Editable && strings.TrimSpace(v.Notes) == "" {
		v.Notes = NoNotesLabel
	}

	v.CanConfirm = v.Editable
	v.CanReject = v.Editable && strings.TrimSpace(s.RejectReason) != ""
	return v
}

func titles(s State) (string, string) {
	if s.Kind == enum.ReviewKindDraft {
		return "", fmt.Sprintf("Đơn hàng của %s", s.Header.Buyer)
	}
	return fmt.Sprintf("Đơn hàng #%s", s.Header.Number), "Chi tiết đơn hàng"
}

// ConfirmedOn is the confirmation date shown in the header: today in loc
// once the order is confirmed, NotConfirmedLabel before that.
func ConfirmedOn(h Header, now time.Time, loc *time.Location) string {
	if h.Status != enum.OrderStatusConfirmed {
		return NotConfirmedLabel
	}
	return datecodec.ToDisplay(datecodec.LocalISODate(now, loc))
}

// OrNoDate returns v, or NoDateLabel when v is blank.
func OrNoDate(v string) string {
	if strings.TrimSpace(v) == "" {
		return NoDateLabel
	}
	return v
}

// SentAtDisplay shows a source timestamp as local date and time in loc, or
// UnknownTimeLabel when it cannot be read.
func SentAtDisplay(raw string, loc *time.Location) string {
	t, ok := datecodec.ParseTimestamp(raw)
	if !ok {
		return UnknownTimeLabel
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(SentAtLayout)
}
