package repository

import "github.com/zyncfranc/compras-api/internal/domain/entity"

// PurchaseRepository define el puerto de persistencia para facturas de compra.
// La cabecera y las líneas se guardan por separado (mismo patrón que el resto
// de repositorios); la confirmación de una compra las persiste en una sola
// transacción vía TxRunner.
type PurchaseRepository interface {
	Create(purchase *entity.PurchaseInvoice) error
	CreateLineItem(purchaseID string, item *entity.LineItem) error
	GetByID(id string) (*entity.PurchaseInvoice, error)
	GetLineItemsByPurchaseID(purchaseID string) ([]entity.LineItem, error)
	List(limit, offset int) ([]*entity.PurchaseInvoice, error)
}
