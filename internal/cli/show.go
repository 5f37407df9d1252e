package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ncc-portal/order-review/internal/enum"
	"github.com/ncc-portal/order-review/internal/fixture"
	"github.com/ncc-portal/order-review/internal/review"
	"github.com/spf13/cobra"
)

func newShowCmd(a *app) *cobra.Command {
	var fixturePath string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render the review screen for a fixture",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadState(fixturePath)
			if err != nil {
				return err
			}
			a.printView(cmd.OutOrStdout(), s)
			return nil
		},
	}
	cmd.Flags().StringVar(&fixturePath, "fixture", "", "Order or draft fixture (YAML)")
	_ = cmd.MarkFlagRequired("fixture")
	return cmd
}

func (a *app) loadState(path string) (review.State, error) {
	f, err := fixture.Load(path)
	if err != nil {
		return review.State{}, err
	}
	return f.State(a.loc)
}

func (a *app) printView(w io.Writer, s review.State) {
	v := review.Render(s, a.formatter)

	if v.Title != "" {
		fmt.Fprintln(w, v.Title)
	}
	fmt.Fprintln(w, v.Subtitle)
	fmt.Fprintln(w, strings.Repeat("-", 40))

	if v.Empty {
		fmt.Fprintln(w, v.EmptyMessage)
		return
	}

	h := v.Header
	if s.Kind == enum.ReviewKindOrder {
		fmt.Fprintf(w, "Nhân viên mua hàng: %s\n", h.Buyer)
		fmt.Fprintf(w, "SĐT liên hệ: %s\n", h.BuyerPhone)
		fmt.Fprintf(w, "Ngày đặt hàng: %s\n", h.OrderDate)
		fmt.Fprintf(w, "Ngày xác nhận: %s\n", review.ConfirmedOn(h, a.now(), a.loc))
		fmt.Fprintf(w, "Ngày giao dự kiến: %s\n", review.OrNoDate(h.RequestedDeliveryDate))
		fmt.Fprintf(w, "Trạng thái: %s\n", h.Status)
	} else {
		fmt.Fprintf(w, "Ngày gửi: %s\n", review.SentAtDisplay(h.SentAt, a.loc))
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Mã\tSản phẩm\tĐơn giá\tYêu cầu\tXác nhận\tNgày giao\tThành tiền")
	for _, it := range v.Items {
		qty := fmt.Sprintf("%d %s", it.Quantity, it.Unit)
		if it.OutOfStock {
			qty = review.OutOfStockLabel
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d %s\t%s\t%s\t%s\n",
			it.ID, it.ProductName, it.UnitPrice,
			it.RequestedQuantity, it.Unit, qty,
			review.OrNoDate(it.DeliveryDisplay), it.LineTotal)
	}
	tw.Flush()

	fmt.Fprintf(w, "\nTổng tiền: %s\n", v.Total)
	fmt.Fprintf(w, "Ghi chú: %s\n", v.Notes)

	if v.RejectFormOpen {
		fmt.Fprintf(w, "Lý do từ chối: %s\n", v.RejectReason)
	}
	fmt.Fprintf(w, "Xác nhận: %s  Từ chối: %s\n", yesNo(v.CanConfirm), yesNo(v.CanReject))
}

func yesNo(b bool) string {
	if b {
		return "có"
	}
	return "không"
}
