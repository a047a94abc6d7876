package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem representa una línea de producto dentro de una factura de compra.
// PriceWithTax y Amount son campos derivados: los recalcula el ledger en cada
// mutación y nunca se asignan directamente desde fuera.
type LineItem struct {
	ID           string
	Name         string
	Quantity     int64           // entero no negativo
	Unit         string          // símbolo del catálogo: Kg, g, L, ml, Pcs
	PricePerUnit decimal.Decimal // precio unitario antes de impuesto
	GSTRate      decimal.Decimal // porcentaje GST: 0, 5, 12, 18, 28
	PriceWithTax decimal.Decimal // derivado: PricePerUnit * (1 + GSTRate/100)
	Amount       decimal.Decimal // derivado: Quantity * PriceWithTax
}

// InvoiceTotals agregados a nivel de factura.
// Amount es la suma de los importes de línea redondeada al rupee entero.
type InvoiceTotals struct {
	Quantity int64
	Amount   decimal.Decimal
}

// PurchaseInvoice es la raíz del agregado de captura de compras.
// InvoiceNumber se genera una sola vez al crearla y es inmutable.
// LineItems mantiene el orden de inserción y nunca queda vacío.
type PurchaseInvoice struct {
	ID             string
	InvoiceNumber  string
	SupplierName   string
	BillingAddress string
	BillingDate    time.Time
	LineItems      []LineItem
	Totals         InvoiceTotals
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
