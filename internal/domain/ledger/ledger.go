// Package ledger implementa el núcleo de precios de la captura de compras:
// una factura en memoria cuyas líneas recalculan sus campos derivados de forma
// síncrona en cada mutación.
//
// Reglas de precio por línea:
//
//	PriceWithTax = PricePerUnit + PricePerUnit * GSTRate / 100
//	Amount       = Quantity * PriceWithTax
//
// Totales de factura: suma de cantidades (sin redondeo) y suma de importes
// redondeada al rupee entero. Regla de redondeo: mitad lejos de cero
// (decimal.Round); se redondea la suma, no cada línea.
//
// Política de captura: la entrada numérica inválida se sustituye por cero en
// silencio, nunca se bloquea la digitación. Un id desconocido es no-op.
package ledger

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zyncfranc/compras-api/internal/domain/entity"
	"github.com/zyncfranc/compras-api/pkg/catalog"
)

var oneHundred = decimal.NewFromInt(100)

// PurchaseLedger mantiene una PurchaseInvoice durante una sesión de captura.
// Es de uso exclusivo de una sesión: una mutación se aplica completa (campo +
// derivados + totales) antes de procesar la siguiente. No es seguro compartirlo
// entre goroutines.
type PurchaseLedger struct {
	invoice entity.PurchaseInvoice
	newID   func() string
}

// New crea el ledger con el número de factura ya generado y las dos líneas de
// ejemplo con las que abre el formulario de compra.
func New(invoiceNumber string) *PurchaseLedger {
	return NewWithIDGenerator(invoiceNumber, func() string { return uuid.New().String() })
}

// NewWithIDGenerator permite inyectar el generador de ids de línea (tests).
func NewWithIDGenerator(invoiceNumber string, newID func() string) *PurchaseLedger {
	now := time.Now()
	l := &PurchaseLedger{
		invoice: entity.PurchaseInvoice{
			ID:            uuid.New().String(),
			InvoiceNumber: invoiceNumber,
			BillingDate:   now,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		newID: newID,
	}

	// Dos líneas de ejemplo (conveniencia de captura, no regla de negocio).
	price := decimal.NewFromInt(22)
	gst := catalog.DefaultGSTRate
	for _, qty := range []int64{1, 5} {
		item := entity.LineItem{
			ID:           l.newID(),
			Name:         "Rice",
			Quantity:     qty,
			Unit:         catalog.DefaultUnit,
			PricePerUnit: price,
			GSTRate:      gst,
		}
		recompute(&item)
		l.invoice.LineItems = append(l.invoice.LineItems, item)
	}
	l.invoice.Totals = l.ComputeTotals()
	return l
}

// SetSupplierName reemplaza el nombre del proveedor. No se valida aquí: los
// campos obligatorios se verifican al confirmar la compra.
func (l *PurchaseLedger) SetSupplierName(value string) {
	l.invoice.SupplierName = value
	l.touch()
}

// SetBillingAddress reemplaza la dirección de facturación.
func (l *PurchaseLedger) SetBillingAddress(value string) {
	l.invoice.BillingAddress = value
	l.touch()
}

// SetBillingDate reemplaza la fecha de facturación. El valor cero es no-op
// (se conserva la fecha anterior).
func (l *PurchaseLedger) SetBillingDate(date time.Time) {
	if date.IsZero() {
		return
	}
	l.invoice.BillingDate = date
	l.touch()
}

// AddLineItem agrega una línea nueva con valores por defecto (cantidad 1,
// unidad por defecto del catálogo, precio 0, GST 5%) y recalcula totales.
// Siempre tiene éxito; devuelve una copia de la línea creada.
func (l *PurchaseLedger) AddLineItem() entity.LineItem {
	item := entity.LineItem{
		ID:           l.newID(),
		Quantity:     1,
		Unit:         catalog.DefaultUnit,
		PricePerUnit: decimal.Zero,
		GSTRate:      catalog.DefaultGSTRate,
	}
	recompute(&item)
	l.invoice.LineItems = append(l.invoice.LineItems, item)
	l.refreshTotals()
	return item
}

// RemoveLineItem elimina la línea indicada solo si queda más de una; la
// factura nunca se queda sin líneas. Id desconocido o última línea: no-op.
func (l *PurchaseLedger) RemoveLineItem(id string) {
	if len(l.invoice.LineItems) <= 1 {
		return
	}
	for i := range l.invoice.LineItems {
		if l.invoice.LineItems[i].ID == id {
			l.invoice.LineItems = append(l.invoice.LineItems[:i], l.invoice.LineItems[i+1:]...)
			l.refreshTotals()
			return
		}
	}
}

// SetLineItemName reemplaza el nombre de la línea. El nombre no afecta el
// precio, así que no hay recálculo.
func (l *PurchaseLedger) SetLineItemName(id, value string) {
	if item := l.find(id); item != nil {
		item.Name = value
		l.touch()
	}
}

// SetLineItemUnit reemplaza la unidad. Debe ser un símbolo del catálogo;
// un símbolo desconocido se ignora. La unidad no afecta el precio.
func (l *PurchaseLedger) SetLineItemUnit(id, value string) {
	if !catalog.ValidUnits[value] {
		return
	}
	if item := l.find(id); item != nil {
		item.Unit = value
		l.touch()
	}
}

// SetLineItemQuantity interpreta rawValue como entero (fallo de parseo = 0),
// actualiza la cantidad y recalcula Amount y los totales de la factura.
// PriceWithTax no depende de la cantidad y queda intacto.
func (l *PurchaseLedger) SetLineItemQuantity(id, rawValue string) {
	if item := l.find(id); item != nil {
		item.Quantity = parseQuantity(rawValue)
		item.Amount = lineAmount(item.Quantity, item.PriceWithTax)
		l.refreshTotals()
	}
}

// SetLineItemPricePerUnit interpreta rawValue como decimal (fallo de parseo = 0),
// actualiza el precio unitario y recalcula PriceWithTax, Amount y totales.
func (l *PurchaseLedger) SetLineItemPricePerUnit(id, rawValue string) {
	if item := l.find(id); item != nil {
		item.PricePerUnit = parseDecimal(rawValue)
		recompute(item)
		l.refreshTotals()
	}
}

// SetLineItemGSTRate interpreta rawValue como decimal (fallo de parseo = 0),
// actualiza la tarifa GST y recalcula PriceWithTax, Amount y totales.
func (l *PurchaseLedger) SetLineItemGSTRate(id, rawValue string) {
	if item := l.find(id); item != nil {
		item.GSTRate = parseDecimal(rawValue)
		recompute(item)
		l.refreshTotals()
	}
}

// ComputeTotals es una función pura sobre las líneas actuales: suma cantidades
// e importes y redondea la suma de importes al entero más cercano (mitad lejos
// de cero). No muta el estado; los llamadores aplican el resultado.
func (l *PurchaseLedger) ComputeTotals() entity.InvoiceTotals {
	var quantity int64
	amount := decimal.Zero
	for i := range l.invoice.LineItems {
		quantity += l.invoice.LineItems[i].Quantity
		amount = amount.Add(l.invoice.LineItems[i].Amount)
	}
	return entity.InvoiceTotals{Quantity: quantity, Amount: amount.Round(0)}
}

// Snapshot devuelve una copia inmutable de la factura actual para entregarla
// al colaborador de persistencia. No limpia ni reinicia el ledger.
func (l *PurchaseLedger) Snapshot() entity.PurchaseInvoice {
	inv := l.invoice
	inv.LineItems = make([]entity.LineItem, len(l.invoice.LineItems))
	copy(inv.LineItems, l.invoice.LineItems)
	return inv
}

// ── internos ──────────────────────────────────────────────────────────────────

func (l *PurchaseLedger) find(id string) *entity.LineItem {
	for i := range l.invoice.LineItems {
		if l.invoice.LineItems[i].ID == id {
			return &l.invoice.LineItems[i]
		}
	}
	return nil
}

func (l *PurchaseLedger) refreshTotals() {
	l.invoice.Totals = l.ComputeTotals()
	l.touch()
}

func (l *PurchaseLedger) touch() {
	l.invoice.UpdatedAt = time.Now()
}

// recompute recalcula los dos campos derivados de la línea a partir de sus
// tres entradas independientes (cantidad, precio unitario, tarifa GST).
func recompute(item *entity.LineItem) {
	item.PriceWithTax = priceWithTax(item.PricePerUnit, item.GSTRate)
	item.Amount = lineAmount(item.Quantity, item.PriceWithTax)
}

func priceWithTax(price, gstRate decimal.Decimal) decimal.Decimal {
	return price.Add(price.Mul(gstRate).Div(oneHundred))
}

func lineAmount(quantity int64, priceWithTax decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(quantity).Mul(priceWithTax)
}

// parseQuantity interpreta la cantidad digitada. Fallo de parseo o valor
// negativo se sustituyen por 0: la captura nunca se bloquea.
func parseQuantity(raw string) int64 {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// parseDecimal interpreta un decimal digitado con la misma política.
func parseDecimal(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}
