package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/zyncfranc/compras-api/internal/domain"
	"github.com/zyncfranc/compras-api/internal/domain/entity"
	"github.com/zyncfranc/compras-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación de PurchaseRepository (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste la cabecera de la factura de compra.
func (r *PurchaseRepo) Create(purchase *entity.PurchaseInvoice) error {
	if purchase.ID == "" {
		purchase.ID = uuid.New().String()
	}
	query := `
		INSERT INTO purchases (id, invoice_number, supplier_name, billing_address, billing_date, total_quantity, total_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		purchase.ID, purchase.InvoiceNumber, purchase.SupplierName, purchase.BillingAddress,
		purchase.BillingDate, purchase.Totals.Quantity, purchase.Totals.Amount,
		purchase.CreatedAt, purchase.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// CreateLineItem persiste una línea de la compra. position preserva el orden
// de captura en las lecturas posteriores.
func (r *PurchaseRepo) CreateLineItem(purchaseID string, item *entity.LineItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := `
		INSERT INTO purchase_line_items (id, purchase_id, name, quantity, unit, price_per_unit, gst_rate, price_with_tax, amount, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9,
			(SELECT COALESCE(MAX(position), 0) + 1 FROM purchase_line_items WHERE purchase_id = $2))`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, purchaseID, item.Name, item.Quantity, item.Unit,
		item.PricePerUnit, item.GSTRate, item.PriceWithTax, item.Amount,
	)
	if err != nil {
		return fmt.Errorf("insert purchase line item: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una compra por ID.
func (r *PurchaseRepo) GetByID(id string) (*entity.PurchaseInvoice, error) {
	query := `
		SELECT id, invoice_number, supplier_name, billing_address, billing_date, total_quantity, total_amount, created_at, updated_at
		FROM purchases WHERE id = $1`
	var p entity.PurchaseInvoice
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.InvoiceNumber, &p.SupplierName, &p.BillingAddress, &p.BillingDate,
		&p.Totals.Quantity, &p.Totals.Amount, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	return &p, nil
}

// GetLineItemsByPurchaseID obtiene las líneas de una compra en orden de captura.
func (r *PurchaseRepo) GetLineItemsByPurchaseID(purchaseID string) ([]entity.LineItem, error) {
	query := `
		SELECT id, name, quantity, unit, price_per_unit, gst_rate, price_with_tax, amount
		FROM purchase_line_items WHERE purchase_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("list purchase line items: %w", err)
	}
	defer rows.Close()
	var list []entity.LineItem
	for rows.Next() {
		var it entity.LineItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Quantity, &it.Unit,
			&it.PricePerUnit, &it.GSTRate, &it.PriceWithTax, &it.Amount); err != nil {
			return nil, fmt.Errorf("scan line item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// List lista compras (solo cabeceras), más recientes primero.
func (r *PurchaseRepo) List(limit, offset int) ([]*entity.PurchaseInvoice, error) {
	query := `
		SELECT id, invoice_number, supplier_name, billing_address, billing_date, total_quantity, total_amount, created_at, updated_at
		FROM purchases ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseInvoice
	for rows.Next() {
		var p entity.PurchaseInvoice
		if err := rows.Scan(&p.ID, &p.InvoiceNumber, &p.SupplierName, &p.BillingAddress, &p.BillingDate,
			&p.Totals.Quantity, &p.Totals.Amount, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
