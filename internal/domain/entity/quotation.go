package entity

import "strings"

// Payment and transport term selectors. Anything other than the first value of
// each pair selects the alternative wording on the printed document.
const (
	PaymentAdvance = "advance"
	PaymentCredit  = "credit"
	TransportEXW   = "exw" // ex-works: transportation costs extra
	TransportFree  = "free"
)

// RefPrefix is the fixed reference-number prefix; the store mints the 4-digit
// suffix on first save.
const RefPrefix = "BTK/25-26/"

// PlaceholderRef is used when the save round-trip failed and the document is
// generated offline.
const PlaceholderRef = "BTK/25-26/XXXX"

// FullRefNumber normalizes user input (usually just the 4-character suffix)
// into the full reference number.
func FullRefNumber(in string) string {
	in = strings.TrimSpace(in)
	if strings.HasPrefix(in, RefPrefix) {
		return in
	}
	return RefPrefix + in
}

// RefSuffix strips the fixed prefix from a full reference number.
func RefSuffix(ref string) string {
	return strings.TrimPrefix(ref, RefPrefix)
}

// StoredItem is the wire form of a line item inside the store's itemsJSON
// column. The field names must stay byte-compatible with the rows already in
// the spreadsheet, so they keep the original short keys.
type StoredItem struct {
	ID          int     `json:"id"`
	Description string  `json:"desc"`
	BasePrice   float64 `json:"basePrice"`
	Markup      float64 `json:"markup"`
	Quantity    float64 `json:"qty"`
}

// QuotationRecord is the unit persisted in and loaded whole from the remote
// store. Reloading always replaces the entire working set; there is no partial
// update.
type QuotationRecord struct {
	RefNumber      string
	Phone          string
	Items          []StoredItem
	PaymentTerms   string
	Transportation string
}
