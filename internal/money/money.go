// Package money formats amounts for display.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders an amount as display text.
type Formatter interface {
	Format(amount decimal.Decimal) string
}

// VND formats whole đồng with locale digit grouping, e.g. "1.250.000 VNĐ".
type VND struct {
	printer *message.Printer
}

// NewVND creates a VND formatter for the given BCP 47 locale. An unknown or
// empty locale falls back to Vietnamese.
func NewVND(locale string) *VND {
	tag, err := language.Parse(locale)
	if err != nil || locale == "" {
		tag = language.Vietnamese
	}
	return &VND{printer: message.NewPrinter(tag)}
}

// Format rounds to whole đồng and appends the currency label.
func (f *VND) Format(amount decimal.Decimal) string {
	whole := amount.Round(0).IntPart()
	return f.printer.Sprint(number.Decimal(whole)) + " VNĐ"
}
