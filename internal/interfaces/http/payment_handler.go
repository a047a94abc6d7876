package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/zyncfranc/compras-api/internal/application/dto"
	"github.com/zyncfranc/compras-api/internal/application/payments"
	"github.com/zyncfranc/compras-api/internal/domain"
)

// PaymentHandler maneja las peticiones HTTP de pagos a proveedores.
type PaymentHandler struct {
	uc *payments.PaymentUseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *payments.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Create POST /api/payments-out
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	payment, err := h.uc.Create(in)
	if err != nil {
		return paymentError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(payment)
}

// List GET /api/payments-out?limit=20&offset=0
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByID GET /api/payments-out/:id
func (h *PaymentHandler) GetByID(c *fiber.Ctx) error {
	payment, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return paymentError(c, err)
	}
	return c.JSON(payment)
}

// Update PUT /api/payments-out/:id
func (h *PaymentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	payment, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return paymentError(c, err)
	}
	return c.JSON(payment)
}

// Delete DELETE /api/payments-out/:id
func (h *PaymentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return paymentError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func paymentError(c *fiber.Ctx, err error) error {
	if err == domain.ErrInvalidInput {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos del pago inválidos"})
	}
	if err == domain.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pago no encontrado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
