package entity

import "github.com/shopspring/decimal"

// DefaultManualDescription is used when a manual row was confirmed with an
// empty description.
const DefaultManualDescription = "CUSTOM ITEM"

// LineItem is one validated row of a quotation. It is derived fresh from the
// submitted rows on every generate/save and never mutated afterwards.
// Manual items carry a zero base price; their price is driven by the markup.
type LineItem struct {
	Description string
	BasePrice   decimal.Decimal
	Markup      decimal.Decimal // may be negative
	Quantity    int             // positive, defaults to 1
	Manual      bool
}

// Includable reports whether the item qualifies for the quotation:
// a non-empty description and at least one of base price or markup above zero.
// An all-zero manual row is silently dropped.
func (li LineItem) Includable() bool {
	return li.Description != "" && (li.BasePrice.IsPositive() || li.Markup.IsPositive())
}
