package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/belgaumtyres/quotation-api/internal/application/dto"
	"github.com/belgaumtyres/quotation-api/internal/application/quoting"
)

// CustomerHandler handles customer registration and search.
type CustomerHandler struct {
	uc *quoting.CustomerUseCase
}

// NewCustomerHandler builds the handler.
func NewCustomerHandler(uc *quoting.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	saved, err := h.uc.Save(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(saved)
}

// Search GET /api/customers/search?q=kulkarni
func (h *CustomerHandler) Search(c *fiber.Ctx) error {
	suggestions := h.uc.Search(c.Query("q"))
	if suggestions == nil {
		return c.JSON(fiber.Map{"suggestions": []any{}})
	}
	return c.JSON(fiber.Map{"suggestions": suggestions})
}
