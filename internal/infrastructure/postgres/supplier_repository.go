package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/zyncfranc/compras-api/internal/domain"
	"github.com/zyncfranc/compras-api/internal/domain/entity"
	"github.com/zyncfranc/compras-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, name, phone, email, address, gstin, amount_payable, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.Phone, supplier.Email, supplier.Address,
		nullIfEmpty(supplier.GSTIN), supplier.AmountPayable, supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.getBy(`WHERE id = $1`, id)
}

// GetByName obtiene un proveedor por nombre exacto.
func (r *SupplierRepo) GetByName(name string) (*entity.Supplier, error) {
	return r.getBy(`WHERE name = $1`, name)
}

// GetByGSTIN obtiene un proveedor por GSTIN.
func (r *SupplierRepo) GetByGSTIN(gstin string) (*entity.Supplier, error) {
	return r.getBy(`WHERE gstin = $1`, gstin)
}

func (r *SupplierRepo) getBy(where string, arg any) (*entity.Supplier, error) {
	query := `
		SELECT id, name, phone, email, address, COALESCE(gstin, ''), amount_payable, created_at, updated_at
		FROM suppliers ` + where
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&s.ID, &s.Name, &s.Phone, &s.Email, &s.Address, &s.GSTIN,
		&s.AmountPayable, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// List lista proveedores con filtro opcional por nombre (ILIKE) y paginación.
func (r *SupplierRepo) List(search string, limit, offset int) ([]*entity.Supplier, error) {
	query := `
		SELECT id, name, phone, email, address, COALESCE(gstin, ''), amount_payable, created_at, updated_at
		FROM suppliers
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Phone, &s.Email, &s.Address, &s.GSTIN,
			&s.AmountPayable, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza un proveedor.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers SET name = $2, phone = $3, email = $4, address = $5, gstin = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.Phone, supplier.Email, supplier.Address,
		nullIfEmpty(supplier.GSTIN), supplier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// Delete elimina un proveedor por ID.
func (r *SupplierRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}

// AddToAmountPayable incrementa el saldo pendiente del proveedor de forma
// atómica (sin leer-modificar-escribir).
func (r *SupplierRepo) AddToAmountPayable(id string, amount decimal.Decimal) error {
	query := `
		UPDATE suppliers SET amount_payable = amount_payable + $2, updated_at = NOW()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, amount)
	if err != nil {
		return fmt.Errorf("add to amount payable: %w", err)
	}
	return nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
