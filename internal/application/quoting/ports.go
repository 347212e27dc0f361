package quoting

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/belgaumtyres/quotation-api/internal/domain/document"
	"github.com/belgaumtyres/quotation-api/internal/domain/entity"
)

// QuotationStore is the port to the remote spreadsheet-backed persistence API.
// All persistence is delegated to it; there is no local quotation storage.
// SaveQuotation returns the store-minted reference number. LastMarkup returns
// found=false for an explicit not-found; transport failures are returned as
// errors and degraded by the caller.
type QuotationStore interface {
	SaveCustomer(ctx context.Context, c entity.Customer) (phone string, err error)
	SaveQuotation(ctx context.Context, phone string, items []entity.StoredItem, paymentTerms, transportation string) (refNumber string, err error)
	LoadQuotation(ctx context.Context, refNumber string) (*entity.QuotationRecord, error)
	LastMarkup(ctx context.Context, phone, desc string) (markup decimal.Decimal, found bool, err error)
}

// DocumentRenderer turns an assembled document into printable bytes.
type DocumentRenderer interface {
	Render(doc document.Document, assets document.Assets) ([]byte, error)
}
