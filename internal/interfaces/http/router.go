package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/belgaumtyres/quotation-api/internal/application/quoting"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	QuotationUC *quoting.QuotationUseCase
	CustomerUC  *quoting.CustomerUseCase
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	catalog := api.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.QuotationUC)
	catalog.Get("/search", catalogHandler.Search)

	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/search", customerHandler.Search)
	customers.Post("/", customerHandler.Create)

	quotationHandler := NewQuotationHandler(deps.QuotationUC)
	api.Get("/markup/last", quotationHandler.LastMarkup)

	quotations := api.Group("/quotations")
	quotations.Post("/", quotationHandler.Generate)
	quotations.Get("/", quotationHandler.Load)
}
