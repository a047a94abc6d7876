package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/zyncfranc/compras-api/internal/application/dto"
	"github.com/zyncfranc/compras-api/internal/application/purchasing"
	"github.com/zyncfranc/compras-api/internal/domain"
)

// PurchaseHandler maneja las consultas de compras confirmadas.
type PurchaseHandler struct {
	query *purchasing.PurchaseQueryUseCase
	pdf   *purchasing.PDFUseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(query *purchasing.PurchaseQueryUseCase, pdf *purchasing.PDFUseCase) *PurchaseHandler {
	return &PurchaseHandler{query: query, pdf: pdf}
}

// List GET /api/purchases?limit=20&offset=0
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.query.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByID GET /api/purchases/:id
func (h *PurchaseHandler) GetByID(c *fiber.Ctx) error {
	purchase, err := h.query.GetByID(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "compra no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(purchase)
}

// GetPDF GET /api/purchases/:id/pdf — descarga la representación imprimible.
func (h *PurchaseHandler) GetPDF(c *fiber.Ctx) error {
	doc, err := h.pdf.GeneratePDF(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "compra no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="purchase-`+c.Params("id")+`.pdf"`)
	return c.Send(doc)
}
