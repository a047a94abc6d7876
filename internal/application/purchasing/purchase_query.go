package purchasing

import (
	"github.com/zyncfranc/compras-api/internal/application/dto"
	"github.com/zyncfranc/compras-api/internal/domain"
	"github.com/zyncfranc/compras-api/internal/domain/entity"
	"github.com/zyncfranc/compras-api/internal/domain/repository"
)

// PurchaseQueryUseCase consultas de lectura sobre compras confirmadas.
type PurchaseQueryUseCase struct {
	repo repository.PurchaseRepository
}

// NewPurchaseQueryUseCase construye el caso de uso.
func NewPurchaseQueryUseCase(repo repository.PurchaseRepository) *PurchaseQueryUseCase {
	return &PurchaseQueryUseCase{repo: repo}
}

// GetByID obtiene una compra con sus líneas.
func (uc *PurchaseQueryUseCase) GetByID(id string) (*dto.PurchaseResponse, error) {
	purchase, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.repo.GetLineItemsByPurchaseID(id)
	if err != nil {
		return nil, err
	}
	return toPurchaseResponse(purchase, items), nil
}

// List lista compras (solo cabeceras) con paginación.
func (uc *PurchaseQueryUseCase) List(limit, offset int) (*dto.PurchaseListResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.PurchaseListResponse{
		Items: make([]dto.PurchaseResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, p := range list {
		out.Items = append(out.Items, *toPurchaseResponse(p, nil))
	}
	return out, nil
}

func toPurchaseResponse(p *entity.PurchaseInvoice, items []entity.LineItem) *dto.PurchaseResponse {
	resp := &dto.PurchaseResponse{
		ID:             p.ID,
		InvoiceNumber:  p.InvoiceNumber,
		SupplierName:   p.SupplierName,
		BillingAddress: p.BillingAddress,
		BillingDate:    p.BillingDate.Format(dateLayout),
		Totals:         dto.TotalsResponse{Quantity: p.Totals.Quantity, Amount: p.Totals.Amount},
	}
	if len(items) > 0 {
		resp.LineItems = toLineItemResponses(items)
	}
	return resp
}
