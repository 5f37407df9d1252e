package fixture

import (
	"fmt"

	"github.com/ncc-portal/order-review/internal/enum"
)

// Sample returns a ready-to-review fixture of the given kind.
func Sample(kind string) (*Fixture, error) {
	switch kind {
	case enum.ReviewKindOrder:
		return &Fixture{
			Kind: enum.ReviewKindOrder,
			Order: &OrderDoc{
				ID:                    "ord-0042",
				Number:                "PO-0042",
				CustomerName:          "Nguyễn Văn A",
				CustomerPhone:         "0901234567",
				CustomerAddress:       "12 Lê Lợi, Quận 1, TP.HCM",
				OrderDate:             "05/03/2024",
				RequestedDeliveryDate: "10/03/2024",
				Status:                enum.OrderStatusPending,
				TotalAmount:           "1250000",
				Items: []ItemDoc{
					{ID: "item-rice", ProductName: "Gạo ST25", Unit: "kg", UnitPrice: "25000", RequestedQuantity: 40},
					{ID: "item-oil", ProductName: "Dầu ăn", Unit: "chai", UnitPrice: "50000", RequestedQuantity: 5, DeliveryDate: "08/03/2024"},
				},
			},
		}, nil

	case enum.ReviewKindDraft:
		return &Fixture{
			Kind: enum.ReviewKindDraft,
			Draft: []DraftLine{
				{ID: "draft-1", ProductName: "Cà phê rang", Unit: "kg", Price: "200000", Quantity: 3, ExpectedDelivery: "2024-03-06T18:30:00Z", Buyer: "Trần Thị B", CreatedOn: "2024-03-01T02:00:00Z"},
				{ID: "draft-2", ProductName: "Sữa tươi", Unit: "hộp", Price: "15000", Quantity: 10, ExpectedDelivery: "2024-03-07T05:00:00Z", Buyer: "Trần Thị B", CreatedOn: "2024-03-01T02:00:00Z"},
			},
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
