package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/belgaumtyres/quotation-api/internal/application/quoting"
)

// CatalogHandler serves catalog suggestions for the item search boxes.
type CatalogHandler struct {
	uc *quoting.QuotationUseCase
}

// NewCatalogHandler builds the handler.
func NewCatalogHandler(uc *quoting.QuotationUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Search GET /api/catalog/search?q=mrf
// Queries shorter than two characters return an empty list; the manual-entry
// sentinel is always the last suggestion otherwise.
func (h *CatalogHandler) Search(c *fiber.Ctx) error {
	suggestions := h.uc.Suggest(c.Query("q"))
	if suggestions == nil {
		return c.JSON(fiber.Map{"suggestions": []any{}})
	}
	return c.JSON(fiber.Map{"suggestions": suggestions})
}
