// Package fixture reads and writes the YAML files reviewctl works from: an
// order or draft group to review, and a script of user actions to replay
// against it.
package fixture

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ncc-portal/order-review/internal/enum"
	"github.com/ncc-portal/order-review/internal/order"
	"github.com/ncc-portal/order-review/internal/review"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownKind   = errors.New("unknown review kind")
	ErrMissingOrder  = errors.New("fixture has no order")
	ErrInvalidAmount = errors.New("invalid amount")
)

// Fixture is the on-disk form of one review screen's input. Amounts are
// strings so they keep full precision.
type Fixture struct {
	Kind  string      `yaml:"kind"`
	Order *OrderDoc   `yaml:"order,omitempty"`
	Draft []DraftLine `yaml:"draft,omitempty"`
}

type OrderDoc struct {
	ID                    string    `yaml:"id"`
	Number                string    `yaml:"number"`
	CustomerName          string    `yaml:"customer_name"`
	CustomerPhone         string    `yaml:"customer_phone,omitempty"`
	CustomerAddress       string    `yaml:"customer_address,omitempty"`
	OrderDate             string    `yaml:"order_date,omitempty"`
	RequestedDeliveryDate string    `yaml:"requested_delivery_date,omitempty"`
	Status                string    `yaml:"status"`
	TotalAmount           string    `yaml:"total_amount,omitempty"`
	SupplierNotes         string    `yaml:"supplier_notes,omitempty"`
	Items                 []ItemDoc `yaml:"items"`
}

type ItemDoc struct {
	ID                string `yaml:"id"`
	ProductName       string `yaml:"product_name"`
	Unit              string `yaml:"unit"`
	UnitPrice         string `yaml:"unit_price"`
	RequestedQuantity int32  `yaml:"requested_quantity"`
	DeliveryDate      string `yaml:"delivery_date,omitempty"`
}

type DraftLine struct {
	ID               string `yaml:"id"`
	ProductName      string `yaml:"product_name"`
	Unit             string `yaml:"unit"`
	Price            string `yaml:"price"`
	Quantity         int32  `yaml:"quantity"`
	ExpectedDelivery string `yaml:"expected_delivery,omitempty"`
	Buyer            string `yaml:"buyer"`
	CreatedOn        string `yaml:"created_on,omitempty"`
}

// Load reads a fixture file.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// Save writes f to path as YAML.
func Save(path string, f *Fixture) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode fixture: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write fixture: %w", err)
	}
	return nil
}

// State validates the fixture and seeds the matching review snapshot.
func (f *Fixture) State(loc *time.Location) (review.State, error) {
	switch f.Kind {
	case enum.ReviewKindOrder:
		o, err := f.ToOrder()
		if err != nil {
			return review.State{}, err
		}
		return review.NewOrderReview(o, loc), nil

	case enum.ReviewKindDraft:
		g, err := f.ToDraftGroup()
		if err != nil {
			return review.State{}, err
		}
		return review.NewDraftReview(g, loc), nil

	default:
		return review.State{}, fmt.Errorf("%w: %q", ErrUnknownKind, f.Kind)
	}
}

// ToOrder converts the order section and validates it.
func (f *Fixture) ToOrder() (order.Order, error) {
	if f.Order == nil {
		return order.Order{}, ErrMissingOrder
	}
	doc := f.Order

	total, err := parseAmount("total_amount", doc.TotalAmount)
	if err != nil {
		return order.Order{}, err
	}

	items := make([]order.Item, len(doc.Items))
	for i, it := range doc.Items {
		price, err := parseAmount(fmt.Sprintf("items[%d].unit_price", i), it.UnitPrice)
		if err != nil {
			return order.Order{}, err
		}
		items[i] = order.Item{
			ID:                it.ID,
			ProductName:       it.ProductName,
			Unit:              it.Unit,
			UnitPrice:         price,
			RequestedQuantity: it.RequestedQuantity,
			DeliveryDate:      it.DeliveryDate,
		}
	}

	o := order.Order{
		ID:                    doc.ID,
		Number:                doc.Number,
		CustomerName:          doc.CustomerName,
		CustomerPhone:         doc.CustomerPhone,
		CustomerAddress:       doc.CustomerAddress,
		OrderDate:             doc.OrderDate,
		RequestedDeliveryDate: doc.RequestedDeliveryDate,
		Status:                doc.Status,
		TotalAmount:           total,
		SupplierNotes:         doc.SupplierNotes,
		Items:                 items,
	}
	if err := o.Validate(); err != nil {
		return order.Order{}, fmt.Errorf("order %s: %w", doc.ID, err)
	}
	return o, nil
}

// ToDraftGroup converts the draft section and validates it. An empty
// section yields an empty group, which the review screen reports as such.
func (f *Fixture) ToDraftGroup() (order.DraftGroup, error) {
	g := make(order.DraftGroup, len(f.Draft))
	for i, l := range f.Draft {
		price, err := parseAmount(fmt.Sprintf("draft[%d].price", i), l.Price)
		if err != nil {
			return nil, err
		}
		g[i] = order.DraftLine{
			ID:               l.ID,
			ProductName:      l.ProductName,
			Unit:             l.Unit,
			Price:            price,
			Quantity:         l.Quantity,
			ExpectedDelivery: l.ExpectedDelivery,
			Buyer:            l.Buyer,
			CreatedOn:        l.CreatedOn,
		}
	}
	if err := order.ValidateItems(g.Items()); err != nil {
		return nil, fmt.Errorf("draft: %w", err)
	}
	return g, nil
}

func parseAmount(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w: %q", field, ErrInvalidAmount, s)
	}
	return d, nil
}
