package dto

// RowInput is one row of the quotation form as submitted by the client.
// Numeric fields arrive as JSON numbers; missing fields decode to zero and the
// builder applies the defaults (quantity never below 1). A row is manual when
// the client flags it or when the description still carries the manual-entry
// label.
type RowInput struct {
	Description       string  `json:"desc"`
	CustomDescription string  `json:"customDesc,omitempty"`
	BasePrice         float64 `json:"basePrice"`
	Markup            float64 `json:"markup"`
	Quantity          float64 `json:"qty"`
	Manual            bool    `json:"manual,omitempty"`
}

// GenerateQuotationRequest body for POST /api/quotations.
type GenerateQuotationRequest struct {
	Phone          string     `json:"phone"`
	Rows           []RowInput `json:"rows"`
	PaymentTerms   string     `json:"paymentTerms"`
	Transportation string     `json:"transportation"`
}

// GeneratedQuotation is the outcome of the generate pipeline. RefNumber is the
// store-minted reference, or the placeholder when the save round-trip failed.
type GeneratedQuotation struct {
	PDF       []byte
	RefNumber string
	Filename  string
}

// SuggestionResponse one catalog suggestion for GET /api/catalog/search.
type SuggestionResponse struct {
	Description string  `json:"desc"`
	Code        string  `json:"code"`
	Category    string  `json:"category"`
	BasePrice   float64 `json:"basePrice"`
	NBP         string  `json:"nbp"`
	Display     string  `json:"display"`
	InfoLine    string  `json:"infoLine,omitempty"`
	Manual      bool    `json:"manual,omitempty"`
}

// CustomerSuggestion one customer suggestion for GET /api/customers/search.
type CustomerSuggestion struct {
	Display string `json:"display"`
	Phone   string `json:"phone"`
}

// SaveCustomerRequest body for POST /api/customers. Field names match the
// store payload.
type SaveCustomerRequest struct {
	Phone    string `json:"phone"`
	Name     string `json:"name"`
	Gender   string `json:"gender"`
	Org      string `json:"org"`
	State    string `json:"state"`
	District string `json:"district"`
	Taluk    string `json:"taluk"`
	Pincode  string `json:"pincode"`
}

// SaveCustomerResponse confirmation with the stored phone key.
type SaveCustomerResponse struct {
	Phone   string `json:"phone"`
	Display string `json:"display"`
}

// LastMarkupResponse advisory result of the markup history lookup. Always a
// success shape; Display is ready for the row helper text. LookupID echoes the
// caller's row token (or a generated one) so stale responses can be discarded
// client-side.
type LastMarkupResponse struct {
	LookupID string `json:"lookupId"`
	Found    bool   `json:"found"`
	Markup   string `json:"markup,omitempty"`
	Display  string `json:"display"`
}

// SnapshotRow is one reconstructed form row of a loaded quotation. Manual
// items come back in free-text mode with the typed description restored.
type SnapshotRow struct {
	Description       string  `json:"desc"`
	CustomDescription string  `json:"customDesc,omitempty"`
	ProductCode       string  `json:"productCode,omitempty"`
	InfoLine          string  `json:"infoLine,omitempty"`
	BasePrice         float64 `json:"basePrice"`
	Markup            float64 `json:"markup"`
	Quantity          float64 `json:"qty"`
	Manual            bool    `json:"manual,omitempty"`
}

// QuotationSnapshot is the full working set returned by GET /api/quotations.
// Loading always replaces the caller's current state wholesale.
type QuotationSnapshot struct {
	RefNumber       string        `json:"refNumber"`
	Phone           string        `json:"phone"`
	CustomerDisplay string        `json:"customerDisplay,omitempty"`
	PaymentTerms    string        `json:"paymentTerms"`
	Transportation  string        `json:"transportation"`
	Rows            []SnapshotRow `json:"rows"`
}
