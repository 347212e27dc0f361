package quoting

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/belgaumtyres/quotation-api/internal/application/dto"
	"github.com/belgaumtyres/quotation-api/internal/domain/entity"
)

// BuildLineItems reads the submitted rows into validated line items, in order.
// Manual rows take the typed custom text (trimmed, upper-cased, defaulting to
// the fixed placeholder) and their base price is forced to zero. Quantities
// below 1 default to 1. Rows failing the includability invariant are silently
// dropped; callers decide what an empty result means.
func BuildLineItems(rows []dto.RowInput) []entity.LineItem {
	items := make([]entity.LineItem, 0, len(rows))
	for _, row := range rows {
		manual := row.Manual || row.Description == entity.ManualEntryLabel

		desc := row.Description
		base := decimal.NewFromFloat(row.BasePrice)
		if manual {
			desc = strings.ToUpper(strings.TrimSpace(row.CustomDescription))
			if desc == "" {
				desc = entity.DefaultManualDescription
			}
			base = decimal.Zero
		}

		qty := int(row.Quantity)
		if qty < 1 {
			qty = 1
		}

		item := entity.LineItem{
			Description: desc,
			BasePrice:   base,
			Markup:      decimal.NewFromFloat(row.Markup),
			Quantity:    qty,
			Manual:      manual,
		}
		if item.Includable() {
			items = append(items, item)
		}
	}
	return items
}

// toStoredItems converts line items to the store wire form, numbering rows
// from 1 in quotation order.
func toStoredItems(items []entity.LineItem) []entity.StoredItem {
	stored := make([]entity.StoredItem, 0, len(items))
	for i, item := range items {
		stored = append(stored, entity.StoredItem{
			ID:          i + 1,
			Description: item.Description,
			BasePrice:   item.BasePrice.InexactFloat64(),
			Markup:      item.Markup.InexactFloat64(),
			Quantity:    float64(item.Quantity),
		})
	}
	return stored
}
