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
	"github.com/zyncfranc/compras-api/internal/application/payments"
	"github.com/zyncfranc/compras-api/internal/application/purchasing"
	"github.com/zyncfranc/compras-api/internal/application/suppliers"
	infrapdf "github.com/zyncfranc/compras-api/internal/infrastructure/pdf"
	"github.com/zyncfranc/compras-api/internal/infrastructure/postgres"
	httpRouter "github.com/zyncfranc/compras-api/internal/interfaces/http"
	"github.com/zyncfranc/compras-api/pkg/config"
	"github.com/zyncfranc/compras-api/pkg/logger"
	"github.com/zyncfranc/compras-api/pkg/numbering"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	purchaseRepo := postgres.NewPurchaseRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	sessionUC := purchasing.NewSessionUseCase(numbering.NewSequence())
	submitUC := purchasing.NewSubmitPurchaseUseCase(sessionUC, txRunner)
	purchaseQueryUC := purchasing.NewPurchaseQueryUseCase(purchaseRepo)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	purchasePDFUC := purchasing.NewPDFUseCase(purchaseRepo, pdfGenerator)
	paymentUC := payments.NewPaymentUseCase(paymentRepo)
	supplierUC := suppliers.NewSupplierUseCase(supplierRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Compras API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SessionUC:     sessionUC,
		SubmitUC:      submitUC,
		PurchaseQuery: purchaseQueryUC,
		PurchasePDF:   purchasePDFUC,
		PaymentUC:     paymentUC,
		SupplierUC:    supplierUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
