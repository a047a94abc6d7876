package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier representa un proveedor del negocio.
// AmountPayable acumula el saldo pendiente con el proveedor; se incrementa al
// confirmar una compra a su nombre.
type Supplier struct {
	ID            string
	Name          string
	Phone         string
	Email         string
	Address       string
	GSTIN         string // identificación fiscal GST del proveedor
	AmountPayable decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
