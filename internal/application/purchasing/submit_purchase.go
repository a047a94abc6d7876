package purchasing

import (
	"context"
	"strings"
	"time"

	"github.com/zyncfranc/compras-api/internal/application/dto"
	"github.com/zyncfranc/compras-api/internal/domain"
	"github.com/zyncfranc/compras-api/internal/domain/repository"
)

// SubmitPurchaseUseCase confirma una sesión de captura: valida los campos
// obligatorios (diferidos durante la captura), persiste el snapshot en una
// transacción y descarta la sesión. La entrega es atómica: no hay reintentos
// ni aplicación parcial.
type SubmitPurchaseUseCase struct {
	sessions *SessionUseCase
	txRunner PurchasingTxRunner
}

// NewSubmitPurchaseUseCase construye el caso de uso.
func NewSubmitPurchaseUseCase(sessions *SessionUseCase, txRunner PurchasingTxRunner) *SubmitPurchaseUseCase {
	return &SubmitPurchaseUseCase{sessions: sessions, txRunner: txRunner}
}

// Submit valida y persiste la compra de la sesión.
// Aquí sí se exige proveedor y fecha: la captura los permite vacíos, la
// confirmación no. Si falla la persistencia la sesión queda abierta.
func (uc *SubmitPurchaseUseCase) Submit(ctx context.Context, sessionID string) (*dto.PurchaseResponse, error) {
	snap, err := uc.sessions.snapshot(sessionID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(snap.SupplierName) == "" || snap.BillingDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	snap.UpdatedAt = now

	err = uc.txRunner.RunPurchasing(ctx, func(
		purchaseRepo repository.PurchaseRepository,
		supplierRepo repository.SupplierRepository,
	) error {
		// 1) Cabecera y líneas en orden de captura.
		if err := purchaseRepo.Create(&snap); err != nil {
			return err
		}
		for i := range snap.LineItems {
			if err := purchaseRepo.CreateLineItem(snap.ID, &snap.LineItems[i]); err != nil {
				return err
			}
		}

		// 2) Si el proveedor existe, el total de la compra aumenta su saldo
		// pendiente. Un proveedor aún no registrado no bloquea la compra.
		supplier, err := supplierRepo.GetByName(snap.SupplierName)
		if err != nil {
			return err
		}
		if supplier != nil {
			if err := supplierRepo.AddToAmountPayable(supplier.ID, snap.Totals.Amount); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.sessions.discard(sessionID)
	return toPurchaseResponse(&snap, snap.LineItems), nil
}
