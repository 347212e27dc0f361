package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/belgaumtyres/quotation-api/internal/application/dto"
	"github.com/belgaumtyres/quotation-api/internal/application/quoting"
)

// QuotationHandler handles quotation generation, reload and the advisory
// markup lookup.
type QuotationHandler struct {
	uc *quoting.QuotationUseCase
}

// NewQuotationHandler builds the handler.
func NewQuotationHandler(uc *quoting.QuotationUseCase) *QuotationHandler {
	return &QuotationHandler{uc: uc}
}

// Generate creates the quotation and streams the PDF back.
// POST /api/quotations
// The reference number also travels in the X-Ref-Number header so clients can
// show it without parsing the PDF.
func (h *QuotationHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateQuotationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Generate(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+out.Filename+`"`)
	c.Set("X-Ref-Number", out.RefNumber)
	return c.Send(out.PDF)
}

// Load GET /api/quotations?ref=0042
// Accepts the 4-character suffix or the full reference number.
func (h *QuotationHandler) Load(c *fiber.Ctx) error {
	snapshot, err := h.uc.Load(c.Context(), c.Query("ref"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(snapshot)
}

// LastMarkup GET /api/markup/last?phone=9876543210&desc=...&lookupId=row-1
// Always 200: the lookup is advisory and every failure degrades to the N/A
// display text.
func (h *QuotationHandler) LastMarkup(c *fiber.Ctx) error {
	resp := h.uc.LastMarkup(c.Context(), c.Query("lookupId"), c.Query("phone"), c.Query("desc"))
	return c.JSON(resp)
}
