package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zyncfranc/compras-api/internal/application/purchasing"
	"github.com/zyncfranc/compras-api/internal/domain/repository"
)

var _ purchasing.PurchasingTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunPurchasing inicia una transacción con los repos de compras y proveedores
// atados a la tx, ejecuta fn y hace Commit o Rollback. La confirmación de una
// compra (cabecera, líneas y saldo del proveedor) es todo-o-nada.
func (r *TxRunner) RunPurchasing(ctx context.Context, fn func(
	purchaseRepo repository.PurchaseRepository,
	supplierRepo repository.SupplierRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	purchaseRepo := NewPurchaseRepository(tx)
	supplierRepo := NewSupplierRepository(tx)

	if err := fn(purchaseRepo, supplierRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
