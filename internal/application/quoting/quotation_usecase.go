package quoting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/belgaumtyres/quotation-api/internal/application/dto"
	"github.com/belgaumtyres/quotation-api/internal/domain"
	"github.com/belgaumtyres/quotation-api/internal/domain/document"
	"github.com/belgaumtyres/quotation-api/internal/domain/entity"
	"github.com/belgaumtyres/quotation-api/internal/domain/pricing"
	"github.com/belgaumtyres/quotation-api/pkg/logger"
)

// QuotationUseCase drives the full pipeline: rows -> line items -> priced
// lines -> store sync -> assembled document -> rendered bytes. It also serves
// catalog suggestions, quotation reload and the advisory markup lookup.
type QuotationUseCase struct {
	store     QuotationStore
	catalog   *Catalog
	directory *CustomerDirectory
	renderer  DocumentRenderer
	firm      entity.FirmProfile
	assets    document.Assets
	log       *logger.Logger
	now       func() time.Time
}

// NewQuotationUseCase builds the use case.
func NewQuotationUseCase(
	store QuotationStore,
	catalog *Catalog,
	directory *CustomerDirectory,
	renderer DocumentRenderer,
	firm entity.FirmProfile,
	assets document.Assets,
	log *logger.Logger,
) *QuotationUseCase {
	return &QuotationUseCase{
		store:     store,
		catalog:   catalog,
		directory: directory,
		renderer:  renderer,
		firm:      firm,
		assets:    assets,
		log:       log,
		now:       time.Now,
	}
}

// Generate validates the draft, prices it, syncs it to the store (best
// effort) and renders the printable document.
//
// Validation failures abort before any pricing happens and no document is
// produced. A failed save does NOT abort: the document is generated with the
// placeholder reference number so the staff can still hand the customer a
// quotation while offline.
func (uc *QuotationUseCase) Generate(ctx context.Context, in dto.GenerateQuotationRequest) (*dto.GeneratedQuotation, error) {
	phone := strings.TrimSpace(in.Phone)
	if phone == "" {
		return nil, fmt.Errorf("%w: search and select a customer first", domain.ErrNoCustomer)
	}
	customer, ok := uc.directory.Get(phone)
	if !ok {
		return nil, fmt.Errorf("%w: customer phone %q not found", domain.ErrNoCustomer, phone)
	}

	items := BuildLineItems(in.Rows)
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: add at least one valid item", domain.ErrNoLineItems)
	}

	draftID := uuid.NewString()
	lines, grandTotal := pricing.PriceAll(items)

	refNumber := entity.PlaceholderRef
	if ref, err := uc.store.SaveQuotation(ctx, phone, toStoredItems(items), in.PaymentTerms, in.Transportation); err != nil {
		// Offline mode: the reference number won't sync; keep the placeholder.
		uc.log.Warn().Err(err).Str("draft_id", draftID).Msg("quotation sync failed, using placeholder reference")
	} else {
		refNumber = ref
	}

	doc := document.Assemble(document.Input{
		Firm:           uc.firm,
		Customer:       customer,
		Lines:          lines,
		GrandTotal:     grandTotal,
		RefNumber:      refNumber,
		Date:           uc.now(),
		PaymentTerms:   in.PaymentTerms,
		Transportation: in.Transportation,
		Assets:         uc.assets,
	})

	pdf, err := uc.renderer.Render(doc, uc.assets)
	if err != nil {
		return nil, fmt.Errorf("render quotation: %w", err)
	}

	filename := "quotation_" + entity.RefSuffix(refNumber) + ".pdf"
	if refNumber == entity.PlaceholderRef {
		filename = "quotation_draft_" + draftID[:8] + ".pdf"
	}

	uc.log.Info().
		Str("draft_id", draftID).
		Str("ref", refNumber).
		Str("phone", phone).
		Int("items", len(items)).
		Msg("quotation generated")

	return &dto.GeneratedQuotation{PDF: pdf, RefNumber: refNumber, Filename: filename}, nil
}

// Load fetches a quotation by reference number (the 4-character suffix is
// accepted and normalized) and reconstructs the form rows. Store failures are
// fatal to the load; nothing is returned partially. Stored descriptions that
// exactly match a catalog entry come back as catalog rows, everything else is
// rebuilt as a manual row in free-text mode.
func (uc *QuotationUseCase) Load(ctx context.Context, ref string) (*dto.QuotationSnapshot, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("%w: reference number is required", domain.ErrInvalidInput)
	}

	record, err := uc.store.LoadQuotation(ctx, entity.FullRefNumber(ref))
	if err != nil {
		return nil, err
	}

	rows := make([]dto.SnapshotRow, 0, len(record.Items))
	for _, item := range record.Items {
		row := dto.SnapshotRow{
			Markup:   item.Markup,
			Quantity: item.Quantity,
		}
		if cat, ok := uc.catalog.FindByDescription(item.Description); ok {
			row.Description = item.Description
			row.ProductCode = cat.Code
			row.InfoLine = cat.InfoLine()
			row.BasePrice = item.BasePrice
		} else {
			row.Description = entity.ManualEntryLabel
			row.CustomDescription = item.Description
			row.Manual = true
		}
		rows = append(rows, row)
	}

	snapshot := &dto.QuotationSnapshot{
		RefNumber:      record.RefNumber,
		Phone:          record.Phone,
		PaymentTerms:   record.PaymentTerms,
		Transportation: record.Transportation,
		Rows:           rows,
	}
	if customer, ok := uc.directory.Get(record.Phone); ok {
		snapshot.CustomerDisplay = customer.DisplayName()
	}
	return snapshot, nil
}

// Suggest serves catalog suggestions for a row's search box.
func (uc *QuotationUseCase) Suggest(query string) []dto.SuggestionResponse {
	items := uc.catalog.Search(query)
	out := make([]dto.SuggestionResponse, 0, len(items))
	for _, it := range items {
		s := dto.SuggestionResponse{
			Description: it.Description,
			Code:        it.Code,
			Category:    it.Category,
			BasePrice:   it.BasePrice.InexactFloat64(),
			NBP:         it.NBP,
			Manual:      it.IsManual(),
		}
		if it.IsManual() {
			s.Display = "+ " + it.Description
		} else {
			s.Display = it.Description + " (Code: " + it.Code + ")"
			s.InfoLine = it.InfoLine()
		}
		out = append(out, s)
	}
	return out
}

// LastMarkup asks the store for the markup this customer was last charged for
// the exact description. Purely advisory: lookups never block row editing and
// every failure degrades to the N/A display. Overlapping lookups are
// fire-and-forget; the echoed lookup id lets the client drop stale responses.
func (uc *QuotationUseCase) LastMarkup(ctx context.Context, lookupID, phone, desc string) dto.LastMarkupResponse {
	if lookupID == "" {
		lookupID = uuid.NewString()
	}
	resp := dto.LastMarkupResponse{LookupID: lookupID, Display: "Last Markup: N/A"}

	phone = strings.TrimSpace(phone)
	if phone == "" {
		resp.Display = "Last Markup: N/A (Select Customer First)"
		return resp
	}

	markup, found, err := uc.store.LastMarkup(ctx, phone, desc)
	if err != nil {
		uc.log.Debug().Err(err).Str("phone", phone).Msg("last markup lookup failed")
		return resp
	}
	if !found {
		return resp
	}

	resp.Found = true
	resp.Markup = markup.String()
	resp.Display = "Last Markup: " + markup.String()
	return resp
}
