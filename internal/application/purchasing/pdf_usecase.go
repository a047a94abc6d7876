package purchasing

import (
	"context"

	"github.com/zyncfranc/compras-api/internal/domain"
	"github.com/zyncfranc/compras-api/internal/domain/repository"
)

// PDFUseCase genera la representación imprimible de una compra confirmada
// (botón "Print" del formulario de compra).
type PDFUseCase struct {
	repo      repository.PurchaseRepository
	generator PurchasePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(repo repository.PurchaseRepository, generator PurchasePDFGenerator) *PDFUseCase {
	return &PDFUseCase{repo: repo, generator: generator}
}

// GeneratePDF carga la compra completa y devuelve los bytes del PDF.
func (uc *PDFUseCase) GeneratePDF(ctx context.Context, purchaseID string) ([]byte, error) {
	purchase, err := uc.repo.GetByID(purchaseID)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.repo.GetLineItemsByPurchaseID(purchaseID)
	if err != nil {
		return nil, err
	}
	purchase.LineItems = items
	return uc.generator.GeneratePurchasePDF(ctx, purchase)
}
