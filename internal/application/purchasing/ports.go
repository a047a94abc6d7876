package purchasing

import (
	"context"

	"github.com/zyncfranc/compras-api/internal/domain/entity"
	"github.com/zyncfranc/compras-api/internal/domain/repository"
)

// PurchasingTxRunner ejecuta una función con los repos de compras y proveedores
// atados a la misma transacción. La confirmación de una compra es atómica:
// cabecera, líneas y saldo del proveedor se persisten juntos o no se persiste nada.
type PurchasingTxRunner interface {
	RunPurchasing(ctx context.Context, fn func(
		purchaseRepo repository.PurchaseRepository,
		supplierRepo repository.SupplierRepository,
	) error) error
}

// PurchasePDFGenerator genera la representación imprimible de una compra confirmada.
type PurchasePDFGenerator interface {
	GeneratePurchasePDF(ctx context.Context, purchase *entity.PurchaseInvoice) ([]byte, error)
}
