// Package pricing turns validated line items into the monetary figures printed
// on the quotation. The catalog's CMP is tax-inclusive, so the 18% GST is
// backed out of the final unit price rather than added on top:
//
//	finalUnitPrice = basePrice + markup
//	basicRate      = finalUnitPrice / 1.18
//	amount         = basicRate * quantity
//	gst            = amount * 0.18
//	total          = amount + gst
//
// All figures are kept unrounded through accumulation; rounding happens only
// at display time (line cells to 2 decimals, grand total to whole rupees).
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/belgaumtyres/quotation-api/internal/domain/entity"
)

var (
	taxInclusiveDivisor = decimal.New(118, -2) // 1.18
	gstRate             = decimal.New(18, -2)  // 0.18
)

// PricedLine is the immutable priced form of one line item. Total decomposes
// the tax out of finalUnitPrice*quantity; it is not an independent price.
type PricedLine struct {
	Description    string
	FinalUnitPrice decimal.Decimal
	BasicRate      decimal.Decimal
	Quantity       int
	Amount         decimal.Decimal
	GST            decimal.Decimal
	Total          decimal.Decimal
}

// Price converts a single line item into its priced form. Pure; no rounding.
func Price(item entity.LineItem) PricedLine {
	final := item.BasePrice.Add(item.Markup)
	basic := final.Div(taxInclusiveDivisor)
	qty := decimal.NewFromInt(int64(item.Quantity))
	amount := basic.Mul(qty)
	gst := amount.Mul(gstRate)

	return PricedLine{
		Description:    item.Description,
		FinalUnitPrice: final,
		BasicRate:      basic,
		Quantity:       item.Quantity,
		Amount:         amount,
		GST:            gst,
		Total:          amount.Add(gst),
	}
}

// PriceAll prices every item in order and accumulates the unrounded grand total.
func PriceAll(items []entity.LineItem) ([]PricedLine, decimal.Decimal) {
	lines := make([]PricedLine, 0, len(items))
	grand := decimal.Zero
	for _, item := range items {
		line := Price(item)
		lines = append(lines, line)
		grand = grand.Add(line.Total)
	}
	return lines, grand
}

// RoundGrandTotal applies the footer rounding policy: the grand total is
// rounded to the nearest whole unit at display time only. The table's line
// totals are rounded to 2 decimals independently, so the footer may differ
// from the re-summed cells by a few paise. That discrepancy matches the
// documents already issued and is intentional; do not round earlier.
func RoundGrandTotal(sum decimal.Decimal) decimal.Decimal {
	return sum.Round(0)
}
