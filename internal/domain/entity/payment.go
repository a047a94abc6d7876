package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentOut representa un pago registrado contra una factura de compra.
type PaymentOut struct {
	ID             string
	InvoiceNumber  string // referencia a la compra
	SupplierName   string
	BillingAddress string
	PaymentDate    time.Time
	AmountPaid     decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
