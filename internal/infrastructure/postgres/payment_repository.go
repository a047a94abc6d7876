package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/zyncfranc/compras-api/internal/domain/entity"
	"github.com/zyncfranc/compras-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository (usable con pool o tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste un nuevo pago a proveedor.
func (r *PaymentRepo) Create(payment *entity.PaymentOut) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	query := `
		INSERT INTO payments_out (id, invoice_number, supplier_name, billing_address, payment_date, amount_paid, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.InvoiceNumber, payment.SupplierName, payment.BillingAddress,
		payment.PaymentDate, payment.AmountPaid, payment.CreatedAt, payment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID obtiene un pago por ID.
func (r *PaymentRepo) GetByID(id string) (*entity.PaymentOut, error) {
	query := `
		SELECT id, invoice_number, supplier_name, billing_address, payment_date, amount_paid, created_at, updated_at
		FROM payments_out WHERE id = $1`
	var p entity.PaymentOut
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.InvoiceNumber, &p.SupplierName, &p.BillingAddress,
		&p.PaymentDate, &p.AmountPaid, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

// List lista pagos, más recientes primero.
func (r *PaymentRepo) List(limit, offset int) ([]*entity.PaymentOut, error) {
	query := `
		SELECT id, invoice_number, supplier_name, billing_address, payment_date, amount_paid, created_at, updated_at
		FROM payments_out ORDER BY payment_date DESC, created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.PaymentOut
	for rows.Next() {
		var p entity.PaymentOut
		if err := rows.Scan(&p.ID, &p.InvoiceNumber, &p.SupplierName, &p.BillingAddress,
			&p.PaymentDate, &p.AmountPaid, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un pago.
func (r *PaymentRepo) Update(payment *entity.PaymentOut) error {
	query := `
		UPDATE payments_out
		SET invoice_number = $2, supplier_name = $3, billing_address = $4, payment_date = $5, amount_paid = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.InvoiceNumber, payment.SupplierName, payment.BillingAddress,
		payment.PaymentDate, payment.AmountPaid, payment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	return nil
}

// Delete elimina un pago por ID.
func (r *PaymentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM payments_out WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	return nil
}
