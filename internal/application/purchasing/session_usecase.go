package purchasing

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/zyncfranc/compras-api/internal/application/dto"
	"github.com/zyncfranc/compras-api/internal/domain"
	"github.com/zyncfranc/compras-api/internal/domain/entity"
	"github.com/zyncfranc/compras-api/internal/domain/ledger"
	"github.com/zyncfranc/compras-api/pkg/numbering"
)

const dateLayout = "2006-01-02"

// SessionUseCase administra las sesiones de captura de compra vivas.
// Cada sesión posee en exclusiva un PurchaseLedger; el mutex serializa las
// mutaciones para que cada edición se aplique completa (campo + derivados +
// totales) antes de procesar la siguiente.
type SessionUseCase struct {
	mu       sync.Mutex
	sessions map[string]*ledger.PurchaseLedger
	numbers  numbering.InvoiceNumberGenerator
}

// NewSessionUseCase construye el caso de uso.
func NewSessionUseCase(numbers numbering.InvoiceNumberGenerator) *SessionUseCase {
	return &SessionUseCase{
		sessions: make(map[string]*ledger.PurchaseLedger),
		numbers:  numbers,
	}
}

// Open abre una sesión nueva con su ledger (número de factura generado y las
// dos líneas de ejemplo del formulario).
func (uc *SessionUseCase) Open() *dto.SessionResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	sessionID := uuid.New().String()
	l := ledger.New(uc.numbers.Next())
	uc.sessions[sessionID] = l
	return toSessionResponse(sessionID, l)
}

// Get devuelve el estado actual de la sesión.
func (uc *SessionUseCase) Get(sessionID string) (*dto.SessionResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	l, ok := uc.sessions[sessionID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return toSessionResponse(sessionID, l), nil
}

// UpdateScalars aplica los campos escalares presentes en el request.
// Sin validación en captura: vacíos se aceptan y se verifican al confirmar.
// Una fecha ausente o mal formada conserva la fecha anterior.
func (uc *SessionUseCase) UpdateScalars(sessionID string, in dto.UpdateSessionRequest) (*dto.SessionResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	l, ok := uc.sessions[sessionID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if in.SupplierName != nil {
		l.SetSupplierName(*in.SupplierName)
	}
	if in.BillingAddress != nil {
		l.SetBillingAddress(*in.BillingAddress)
	}
	if in.BillingDate != nil {
		if d, err := time.Parse(dateLayout, *in.BillingDate); err == nil {
			l.SetBillingDate(d)
		}
	}
	return toSessionResponse(sessionID, l), nil
}

// AddItem agrega una línea con valores por defecto.
func (uc *SessionUseCase) AddItem(sessionID string) (*dto.SessionResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	l, ok := uc.sessions[sessionID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	l.AddLineItem()
	return toSessionResponse(sessionID, l), nil
}

// RemoveItem elimina la línea indicada. El ledger ignora ids desconocidos y
// nunca elimina la última línea, así que la operación siempre responde el
// estado vigente.
func (uc *SessionUseCase) RemoveItem(sessionID, itemID string) (*dto.SessionResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	l, ok := uc.sessions[sessionID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	l.RemoveLineItem(itemID)
	return toSessionResponse(sessionID, l), nil
}

// UpdateItem aplica los campos presentes sobre la línea. Los valores numéricos
// llegan como texto crudo y pasan por la política parseo-con-cero del ledger.
func (uc *SessionUseCase) UpdateItem(sessionID, itemID string, in dto.UpdateLineItemRequest) (*dto.SessionResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	l, ok := uc.sessions[sessionID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		l.SetLineItemName(itemID, *in.Name)
	}
	if in.Unit != nil {
		l.SetLineItemUnit(itemID, *in.Unit)
	}
	if in.Quantity != nil {
		l.SetLineItemQuantity(itemID, *in.Quantity)
	}
	if in.PricePerUnit != nil {
		l.SetLineItemPricePerUnit(itemID, *in.PricePerUnit)
	}
	if in.GSTRate != nil {
		l.SetLineItemGSTRate(itemID, *in.GSTRate)
	}
	return toSessionResponse(sessionID, l), nil
}

// Cancel descarta la sesión y su ledger sin efectos parciales.
func (uc *SessionUseCase) Cancel(sessionID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, ok := uc.sessions[sessionID]; !ok {
		return domain.ErrNotFound
	}
	delete(uc.sessions, sessionID)
	return nil
}

// snapshot toma la copia inmutable de la factura de la sesión (para confirmar).
func (uc *SessionUseCase) snapshot(sessionID string) (entity.PurchaseInvoice, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	l, ok := uc.sessions[sessionID]
	if !ok {
		return entity.PurchaseInvoice{}, domain.ErrNotFound
	}
	return l.Snapshot(), nil
}

// discard elimina la sesión tras una confirmación exitosa.
func (uc *SessionUseCase) discard(sessionID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.sessions, sessionID)
}

// ── mapeo ─────────────────────────────────────────────────────────────────────

func toSessionResponse(sessionID string, l *ledger.PurchaseLedger) *dto.SessionResponse {
	inv := l.Snapshot()
	return &dto.SessionResponse{
		SessionID:      sessionID,
		InvoiceNumber:  inv.InvoiceNumber,
		SupplierName:   inv.SupplierName,
		BillingAddress: inv.BillingAddress,
		BillingDate:    inv.BillingDate.Format(dateLayout),
		LineItems:      toLineItemResponses(inv.LineItems),
		Totals:         dto.TotalsResponse{Quantity: inv.Totals.Quantity, Amount: inv.Totals.Amount},
	}
}

func toLineItemResponses(items []entity.LineItem) []dto.LineItemResponse {
	out := make([]dto.LineItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, dto.LineItemResponse{
			ID:           item.ID,
			Name:         item.Name,
			Quantity:     item.Quantity,
			Unit:         item.Unit,
			PricePerUnit: item.PricePerUnit,
			GSTRate:      item.GSTRate,
			PriceWithTax: item.PriceWithTax,
			Amount:       item.Amount,
		})
	}
	return out
}
