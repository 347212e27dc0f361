package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/belgaumtyres/quotation-api/internal/application/quoting"
	"github.com/belgaumtyres/quotation-api/internal/domain/document"
	"github.com/belgaumtyres/quotation-api/internal/domain/entity"
	"github.com/belgaumtyres/quotation-api/internal/infrastructure/catalogfile"
	infrapdf "github.com/belgaumtyres/quotation-api/internal/infrastructure/pdf"
	"github.com/belgaumtyres/quotation-api/internal/infrastructure/postgres"
	"github.com/belgaumtyres/quotation-api/internal/infrastructure/sheets"
	httpRouter "github.com/belgaumtyres/quotation-api/internal/interfaces/http"
	"github.com/belgaumtyres/quotation-api/pkg/config"
	"github.com/belgaumtyres/quotation-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("firm", cfg.Firm.Profile).
		Msg("starting application")

	firm, err := entity.ProfileByName(cfg.Firm.Profile)
	if err != nil {
		log.Fatal().Err(err).Msg("firm profile")
	}

	// Document assets are optional: a missing or tiny file renders as a
	// placeholder instead of failing startup.
	assets := document.Assets{
		Logo:      readAsset(cfg.Firm.LogoPath),
		Watermark: readAsset(cfg.Firm.WatermarkPath),
	}

	ctx := context.Background()

	// Catalog source: database when configured, JSON file otherwise.
	var items []entity.CatalogItem
	if cfg.DB.DatabaseURL != "" {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("PostgreSQL connection")
		}
		defer pool.Close()
		items, err = postgres.NewCatalogRepository(pool).LoadAll(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("load catalog from database")
		}
	} else {
		items, err = catalogfile.LoadCatalog(cfg.Firm.CatalogPath)
		if err != nil {
			log.Fatal().Err(err).Msg("load catalog file")
		}
	}
	catalog := quoting.NewCatalog(items)
	log.Info().Int("items", catalog.Len()).Msg("catalog loaded")

	var seed []entity.Customer
	if cfg.Firm.CustomersPath != "" {
		seed, err = catalogfile.LoadCustomers(cfg.Firm.CustomersPath)
		if err != nil {
			log.Fatal().Err(err).Msg("load customers file")
		}
	}
	directory := quoting.NewCustomerDirectory(seed)
	log.Info().Int("customers", directory.Len()).Msg("customer directory seeded")

	store := sheets.NewClient(cfg.Store.URL, time.Duration(cfg.Store.TimeoutSeconds)*time.Second, log)
	renderer := infrapdf.NewMarotoRenderer(cfg.Firm.WatermarkPath)

	quotationUC := quoting.NewQuotationUseCase(store, catalog, directory, renderer, firm, assets, log)
	customerUC := quoting.NewCustomerUseCase(store, directory, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // PDF generation runs inside the handler
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Tyre Quotation API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "firm": firm.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		QuotationUC: quotationUC,
		CustomerUC:  customerUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}

// readAsset returns the file bytes or nil when the path is empty or unreadable.
func readAsset(path string) []byte {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return data
}
