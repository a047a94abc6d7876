package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zyncfranc/compras-api/internal/application/dto"
	"github.com/zyncfranc/compras-api/internal/application/purchasing"
	"github.com/zyncfranc/compras-api/internal/domain"
)

// SessionHandler maneja las peticiones HTTP de sesiones de captura de compra.
type SessionHandler struct {
	sessions *purchasing.SessionUseCase
	submit   *purchasing.SubmitPurchaseUseCase
}

// NewSessionHandler construye el handler.
func NewSessionHandler(sessions *purchasing.SessionUseCase, submit *purchasing.SubmitPurchaseUseCase) *SessionHandler {
	return &SessionHandler{sessions: sessions, submit: submit}
}

// Open abre una sesión nueva con las líneas de ejemplo del formulario.
// POST /api/purchase-sessions
func (h *SessionHandler) Open(c *fiber.Ctx) error {
	return c.Status(fiber.StatusCreated).JSON(h.sessions.Open())
}

// Get devuelve el estado actual de la sesión.
// GET /api/purchase-sessions/:id
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	session, err := h.sessions.Get(c.Params("id"))
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(session)
}

// Update aplica campos escalares (proveedor, dirección, fecha).
// PATCH /api/purchase-sessions/:id
func (h *SessionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSessionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	session, err := h.sessions.UpdateScalars(c.Params("id"), in)
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(session)
}

// AddItem agrega una línea con valores por defecto.
// POST /api/purchase-sessions/:id/items
func (h *SessionHandler) AddItem(c *fiber.Ctx) error {
	session, err := h.sessions.AddItem(c.Params("id"))
	if err != nil {
		return sessionError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

// UpdateItem edita una línea; los valores numéricos viajan como texto crudo.
// PATCH /api/purchase-sessions/:id/items/:itemId
func (h *SessionHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateLineItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	session, err := h.sessions.UpdateItem(c.Params("id"), c.Params("itemId"), in)
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(session)
}

// RemoveItem elimina una línea (la última nunca se elimina).
// DELETE /api/purchase-sessions/:id/items/:itemId
func (h *SessionHandler) RemoveItem(c *fiber.Ctx) error {
	session, err := h.sessions.RemoveItem(c.Params("id"), c.Params("itemId"))
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(session)
}

// Submit confirma la compra: valida, persiste y descarta la sesión.
// POST /api/purchase-sessions/:id/submit
func (h *SessionHandler) Submit(c *fiber.Ctx) error {
	purchase, err := h.submit.Submit(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "supplier_name y billing_date son requeridos"})
		}
		return sessionError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(purchase)
}

// Cancel descarta la sesión sin persistir nada.
// DELETE /api/purchase-sessions/:id
func (h *SessionHandler) Cancel(c *fiber.Ctx) error {
	if err := h.sessions.Cancel(c.Params("id")); err != nil {
		return sessionError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func sessionError(c *fiber.Ctx, err error) error {
	if err == domain.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sesión no encontrada"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
