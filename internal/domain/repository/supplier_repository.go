package repository

import (
	"github.com/shopspring/decimal"
	"github.com/zyncfranc/compras-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para proveedores.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	GetByName(name string) (*entity.Supplier, error)
	GetByGSTIN(gstin string) (*entity.Supplier, error)
	// List filtra por nombre (search vacío = sin filtro) con paginación.
	List(search string, limit, offset int) ([]*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Delete(id string) error
	// AddToAmountPayable incrementa el saldo pendiente del proveedor.
	AddToAmountPayable(id string, amount decimal.Decimal) error
}
