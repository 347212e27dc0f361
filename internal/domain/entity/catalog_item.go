package entity

import "github.com/shopspring/decimal"

// CustomCode is the reserved product code of the manual-entry sentinel.
const CustomCode = "CUSTOM"

// ManualEntryLabel is the description shown for the manual-entry suggestion.
const ManualEntryLabel = "MANUAL ENTRY"

// CatalogItem is one entry of the read-only tyre catalog, keyed by product code.
// BasePrice is the company master price (CMP), tax-inclusive. NBP is a free-text
// net-billing-price reference shown on the suggestion info line.
type CatalogItem struct {
	Code        string
	Description string
	Category    string
	BasePrice   decimal.Decimal
	NBP         string
}

// ManualEntry returns the synthetic catalog entry that switches a row into
// free-text mode. It carries a zero base price.
func ManualEntry() CatalogItem {
	return CatalogItem{
		Code:        CustomCode,
		Description: ManualEntryLabel,
		Category:    "Custom Item",
		BasePrice:   decimal.Zero,
		NBP:         "N/A",
	}
}

// IsManual reports whether this is the manual-entry sentinel.
func (i CatalogItem) IsManual() bool {
	return i.Code == CustomCode
}

// InfoLine renders the descriptive helper line shown when a real catalog entry
// is selected.
func (i CatalogItem) InfoLine() string {
	nbp := i.NBP
	if nbp == "" {
		nbp = "N/A"
	}
	return i.Category + " | Code: " + i.Code + " | NBP: " + nbp + " | Base CMP: " + i.BasePrice.String()
}
