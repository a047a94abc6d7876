package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zyncfranc/compras-api/internal/application/payments"
	"github.com/zyncfranc/compras-api/internal/application/purchasing"
	"github.com/zyncfranc/compras-api/internal/application/suppliers"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SessionUC     *purchasing.SessionUseCase
	SubmitUC      *purchasing.SubmitPurchaseUseCase
	PurchaseQuery *purchasing.PurchaseQueryUseCase
	PurchasePDF   *purchasing.PDFUseCase
	PaymentUC     *payments.PaymentUseCase
	SupplierUC    *suppliers.SupplierUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Sesiones de captura de compra
	sessions := api.Group("/purchase-sessions")
	sessionHandler := NewSessionHandler(deps.SessionUC, deps.SubmitUC)
	sessions.Post("/", sessionHandler.Open)
	sessions.Get("/:id", sessionHandler.Get)
	sessions.Patch("/:id", sessionHandler.Update)
	sessions.Post("/:id/items", sessionHandler.AddItem)
	sessions.Patch("/:id/items/:itemId", sessionHandler.UpdateItem)
	sessions.Delete("/:id/items/:itemId", sessionHandler.RemoveItem)
	sessions.Post("/:id/submit", sessionHandler.Submit)
	sessions.Delete("/:id", sessionHandler.Cancel)

	// Compras confirmadas (solo lectura)
	purchases := api.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseQuery, deps.PurchasePDF)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.GetByID)
	purchases.Get("/:id/pdf", purchaseHandler.GetPDF)

	// Pagos a proveedores
	paymentsGroup := api.Group("/payments-out")
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	paymentsGroup.Post("/", paymentHandler.Create)
	paymentsGroup.Get("/", paymentHandler.List)
	paymentsGroup.Get("/:id", paymentHandler.GetByID)
	paymentsGroup.Put("/:id", paymentHandler.Update)
	paymentsGroup.Delete("/:id", paymentHandler.Delete)

	// Proveedores
	suppliersGroup := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliersGroup.Post("/", supplierHandler.Create)
	suppliersGroup.Get("/", supplierHandler.List)
	suppliersGroup.Get("/:id", supplierHandler.GetByID)
	suppliersGroup.Put("/:id", supplierHandler.Update)
	suppliersGroup.Delete("/:id", supplierHandler.Delete)
}
