package ledger_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zyncfranc/compras-api/internal/domain/entity"
	"github.com/zyncfranc/compras-api/internal/domain/ledger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// newTestLedger crea un ledger con generador de ids determinista (item-1, item-2, ...).
func newTestLedger(t *testing.T) *ledger.PurchaseLedger {
	t.Helper()
	n := 0
	return ledger.NewWithIDGenerator("INV-1001", func() string {
		n++
		return fmt.Sprintf("item-%d", n)
	})
}

// newSingleItemLedger deja el ledger con una sola línea (la primera de ejemplo:
// cantidad 1, Kg, precio 22, GST 5%).
func newSingleItemLedger(t *testing.T) *ledger.PurchaseLedger {
	t.Helper()
	l := newTestLedger(t)
	l.RemoveLineItem("item-2")
	require.Len(t, l.Snapshot().LineItems, 1, "debe quedar una sola línea de partida")
	return l
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// assertDecEqual compara decimales por valor (no por representación).
func assertDecEqual(t *testing.T, expected string, actual decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, dec(expected).Equal(actual),
		"se esperaba %s y se obtuvo %s — %v", expected, actual, msgAndArgs)
}

// assertItemInvariants verifica las dos invariantes derivadas de una línea:
// PriceWithTax = PricePerUnit * (1 + GSTRate/100) y Amount = Quantity * PriceWithTax.
func assertItemInvariants(t *testing.T, item entity.LineItem) {
	t.Helper()
	expectedPWT := item.PricePerUnit.Add(item.PricePerUnit.Mul(item.GSTRate).Div(decimal.NewFromInt(100)))
	assert.True(t, expectedPWT.Equal(item.PriceWithTax),
		"PriceWithTax de %s debe ser %s, fue %s", item.ID, expectedPWT, item.PriceWithTax)
	expectedAmount := decimal.NewFromInt(item.Quantity).Mul(item.PriceWithTax)
	assert.True(t, expectedAmount.Equal(item.Amount),
		"Amount de %s debe ser %s, fue %s", item.ID, expectedAmount, item.Amount)
}

// assertLedgerInvariants verifica las invariantes de todas las líneas y de los
// totales de la factura tras asentarse una mutación.
func assertLedgerInvariants(t *testing.T, l *ledger.PurchaseLedger) {
	t.Helper()
	inv := l.Snapshot()
	require.GreaterOrEqual(t, len(inv.LineItems), 1, "la factura nunca queda sin líneas")

	var quantity int64
	amount := decimal.Zero
	for _, item := range inv.LineItems {
		assertItemInvariants(t, item)
		quantity += item.Quantity
		amount = amount.Add(item.Amount)
	}
	assert.Equal(t, quantity, inv.Totals.Quantity, "Totals.Quantity debe ser la suma de cantidades")
	assert.True(t, amount.Round(0).Equal(inv.Totals.Amount),
		"Totals.Amount debe ser la suma de importes redondeada, fue %s", inv.Totals.Amount)
}

// ──────────────────────────────────────────────────────────────────────────────
// Estado inicial
// ──────────────────────────────────────────────────────────────────────────────

func TestNew_DosLineasDeEjemplo(t *testing.T) {
	l := newTestLedger(t)
	inv := l.Snapshot()

	require.Len(t, inv.LineItems, 2, "el ledger abre con dos líneas de ejemplo")
	assert.Equal(t, "INV-1001", inv.InvoiceNumber)
	assert.False(t, inv.BillingDate.IsZero(), "la fecha de facturación inicia en la fecha de creación")

	primera := inv.LineItems[0]
	assert.Equal(t, int64(1), primera.Quantity)
	assert.Equal(t, "Kg", primera.Unit)
	assertDecEqual(t, "22", primera.PricePerUnit)
	assertDecEqual(t, "23.1", primera.PriceWithTax, "22 + 5% GST")
	assertDecEqual(t, "23.1", primera.Amount)

	segunda := inv.LineItems[1]
	assert.Equal(t, int64(5), segunda.Quantity)
	assertDecEqual(t, "115.5", segunda.Amount, "5 * 23.1")

	assert.Equal(t, int64(6), inv.Totals.Quantity)
	assertDecEqual(t, "139", inv.Totals.Amount, "138.6 redondeado mitad lejos de cero")
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario de la hoja de cálculo: línea 22 @ 5% y segunda línea de 5 unidades
// ──────────────────────────────────────────────────────────────────────────────

func TestEscenario_PrecioConImpuestoYTotales(t *testing.T) {
	l := newSingleItemLedger(t)

	inv := l.Snapshot()
	assertDecEqual(t, "23.1", inv.LineItems[0].PriceWithTax)
	assertDecEqual(t, "23.1", inv.LineItems[0].Amount)

	// Segunda línea: cantidad 5, precio 22, GST 5 → amount 115.5.
	nueva := l.AddLineItem()
	l.SetLineItemQuantity(nueva.ID, "5")
	l.SetLineItemPricePerUnit(nueva.ID, "22")
	l.SetLineItemGSTRate(nueva.ID, "5")

	inv = l.Snapshot()
	require.Len(t, inv.LineItems, 2)
	assertDecEqual(t, "115.5", inv.LineItems[1].Amount)
	assert.Equal(t, int64(6), inv.Totals.Quantity)
	assertDecEqual(t, "139", inv.Totals.Amount, "115.5 + 23.1 = 138.6 → 139")
	assertLedgerInvariants(t, l)
}

func TestEscenario_PrecioCeroAnulaDerivados(t *testing.T) {
	l := newSingleItemLedger(t)
	l.SetLineItemGSTRate("item-1", "28")
	l.SetLineItemQuantity("item-1", "7")

	l.SetLineItemPricePerUnit("item-1", "0")

	item := l.Snapshot().LineItems[0]
	assertDecEqual(t, "0", item.PriceWithTax, "precio 0 anula PriceWithTax sin importar GST")
	assertDecEqual(t, "0", item.Amount, "precio 0 anula Amount sin importar cantidad")
	assertLedgerInvariants(t, l)
}

// ──────────────────────────────────────────────────────────────────────────────
// Secuencias de ediciones: las invariantes se cumplen tras cada mutación
// ──────────────────────────────────────────────────────────────────────────────

func TestSecuenciaDeEdiciones_InvariantesSiempreValidas(t *testing.T) {
	l := newTestLedger(t)

	ediciones := []func(){
		func() { l.SetLineItemQuantity("item-1", "3") },
		func() { l.SetLineItemPricePerUnit("item-2", "10.50") },
		func() { l.SetLineItemGSTRate("item-1", "18") },
		func() { l.SetLineItemPricePerUnit("item-1", "99.99") },
		func() { l.SetLineItemQuantity("item-2", "0") },
		func() { l.SetLineItemGSTRate("item-2", "0") },
		func() { _ = l.AddLineItem() },
		func() { l.SetLineItemQuantity("item-3", "12") },
		func() { l.SetLineItemPricePerUnit("item-3", "7.25") },
		func() { l.RemoveLineItem("item-2") },
		func() { l.SetLineItemGSTRate("item-3", "12") },
	}
	for _, edit := range ediciones {
		edit()
		assertLedgerInvariants(t, l)
	}
}

func TestRecalculo_EsIndependienteDelOrden(t *testing.T) {
	// Mismos tres valores aplicados en órdenes distintos deben converger al
	// mismo estado derivado.
	aplicar := func(orden []string) entity.LineItem {
		l := newSingleItemLedger(t)
		for _, campo := range orden {
			switch campo {
			case "qty":
				l.SetLineItemQuantity("item-1", "4")
			case "price":
				l.SetLineItemPricePerUnit("item-1", "50")
			case "gst":
				l.SetLineItemGSTRate("item-1", "12")
			}
		}
		return l.Snapshot().LineItems[0]
	}

	a := aplicar([]string{"qty", "price", "gst"})
	b := aplicar([]string{"gst", "qty", "price"})
	c := aplicar([]string{"price", "gst", "qty"})

	assertDecEqual(t, "56", a.PriceWithTax, "50 * 1.12")
	assertDecEqual(t, "224", a.Amount, "4 * 56")
	assert.True(t, a.PriceWithTax.Equal(b.PriceWithTax) && b.PriceWithTax.Equal(c.PriceWithTax))
	assert.True(t, a.Amount.Equal(b.Amount) && b.Amount.Equal(c.Amount))
}

// ──────────────────────────────────────────────────────────────────────────────
// Política parseo-con-cero: la captura nunca se bloquea
// ──────────────────────────────────────────────────────────────────────────────

func TestParseoInvalido_SustituyeCeroYPropaga(t *testing.T) {
	l := newSingleItemLedger(t)

	l.SetLineItemQuantity("item-1", "abc")
	item := l.Snapshot().LineItems[0]
	assert.Equal(t, int64(0), item.Quantity, "cantidad no numérica se captura como 0")
	assertDecEqual(t, "0", item.Amount, "cantidad 0 propaga Amount 0")
	assertDecEqual(t, "23.1", item.PriceWithTax, "PriceWithTax no depende de la cantidad")

	l.SetLineItemPricePerUnit("item-1", "abc")
	item = l.Snapshot().LineItems[0]
	assertDecEqual(t, "0", item.PricePerUnit)
	assertDecEqual(t, "0", item.PriceWithTax)
	assertDecEqual(t, "0", item.Amount)

	l.SetLineItemPricePerUnit("item-1", "22")
	l.SetLineItemGSTRate("item-1", "abc")
	item = l.Snapshot().LineItems[0]
	assertDecEqual(t, "0", item.GSTRate, "GST no numérico se captura como 0")
	assertDecEqual(t, "22", item.PriceWithTax, "GST 0 deja el precio sin impuesto")
	assertLedgerInvariants(t, l)
}

func TestParseoNegativo_SeCaptureComoCero(t *testing.T) {
	l := newSingleItemLedger(t)

	l.SetLineItemQuantity("item-1", "-3")
	assert.Equal(t, int64(0), l.Snapshot().LineItems[0].Quantity,
		"las cantidades son no negativas; un negativo se captura como 0")

	l.SetLineItemPricePerUnit("item-1", "-10")
	assertDecEqual(t, "0", l.Snapshot().LineItems[0].PricePerUnit)
	assertLedgerInvariants(t, l)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de vida de líneas
// ──────────────────────────────────────────────────────────────────────────────

func TestAddLineItem_ValoresPorDefecto(t *testing.T) {
	l := newTestLedger(t)
	item := l.AddLineItem()

	assert.Equal(t, "item-3", item.ID)
	assert.Empty(t, item.Name)
	assert.Equal(t, int64(1), item.Quantity)
	assert.Equal(t, "Kg", item.Unit, "la unidad por defecto es la primera del catálogo")
	assertDecEqual(t, "5", item.GSTRate, "tramo GST por defecto")
	assertDecEqual(t, "0", item.PricePerUnit)
	assertDecEqual(t, "0", item.PriceWithTax)
	assertDecEqual(t, "0", item.Amount)
	assertLedgerInvariants(t, l)
}

func TestAddYRemove_RestauranTotalesExactos(t *testing.T) {
	l := newTestLedger(t)
	antes := l.Snapshot().Totals

	item := l.AddLineItem()
	l.SetLineItemQuantity(item.ID, "9")
	l.SetLineItemPricePerUnit(item.ID, "33.33")
	l.RemoveLineItem(item.ID)

	despues := l.Snapshot().Totals
	assert.Equal(t, antes.Quantity, despues.Quantity, "los totales vuelven exactamente al estado previo")
	assert.True(t, antes.Amount.Equal(despues.Amount),
		"Totals.Amount debe restaurarse exacto: antes %s, después %s", antes.Amount, despues.Amount)
}

func TestRemoveLineItem_NuncaDejaLaFacturaVacia(t *testing.T) {
	l := newSingleItemLedger(t)
	antes := l.Snapshot()

	// Intentos repetidos contra la única línea: siempre no-op.
	for i := 0; i < 3; i++ {
		l.RemoveLineItem("item-1")
	}

	despues := l.Snapshot()
	require.Len(t, despues.LineItems, 1, "la última línea nunca se elimina")
	assert.Equal(t, antes.LineItems[0], despues.LineItems[0], "la línea queda intacta")
	assert.Equal(t, antes.Totals.Quantity, despues.Totals.Quantity)
	assert.True(t, antes.Totals.Amount.Equal(despues.Totals.Amount), "los totales no cambian")
}

func TestRemoveLineItem_IdDesconocidoEsNoOp(t *testing.T) {
	l := newTestLedger(t)
	antes := l.Snapshot()

	l.RemoveLineItem("no-existe")

	assert.Len(t, l.Snapshot().LineItems, len(antes.LineItems))
}

func TestOperacionesPorLinea_IdDesconocidoEsNoOp(t *testing.T) {
	l := newTestLedger(t)
	antes := l.Snapshot()

	l.SetLineItemName("fantasma", "Wheat")
	l.SetLineItemUnit("fantasma", "L")
	l.SetLineItemQuantity("fantasma", "99")
	l.SetLineItemPricePerUnit("fantasma", "99")
	l.SetLineItemGSTRate("fantasma", "28")

	despues := l.Snapshot()
	assert.Equal(t, antes.LineItems, despues.LineItems, "una referencia obsoleta no muta nada")
	assert.True(t, antes.Totals.Amount.Equal(despues.Totals.Amount))
}

func TestSetLineItemUnit_SoloSimbolosDelCatalogo(t *testing.T) {
	l := newTestLedger(t)

	l.SetLineItemUnit("item-1", "Pcs")
	assert.Equal(t, "Pcs", l.Snapshot().LineItems[0].Unit)

	l.SetLineItemUnit("item-1", "Ton")
	assert.Equal(t, "Pcs", l.Snapshot().LineItems[0].Unit, "un símbolo fuera del catálogo se ignora")
}

func TestSetLineItemName_NoRecalculaDerivados(t *testing.T) {
	l := newTestLedger(t)
	antes := l.Snapshot().LineItems[0]

	l.SetLineItemName("item-1", "Basmati Rice")

	despues := l.Snapshot().LineItems[0]
	assert.Equal(t, "Basmati Rice", despues.Name)
	assert.True(t, antes.PriceWithTax.Equal(despues.PriceWithTax))
	assert.True(t, antes.Amount.Equal(despues.Amount))
}

// ──────────────────────────────────────────────────────────────────────────────
// Campos escalares de la factura
// ──────────────────────────────────────────────────────────────────────────────

func TestCamposEscalares_SinValidacionEnCaptura(t *testing.T) {
	l := newTestLedger(t)

	// Vacíos permitidos durante la captura; se validan al confirmar.
	l.SetSupplierName("")
	l.SetBillingAddress("")
	inv := l.Snapshot()
	assert.Empty(t, inv.SupplierName)
	assert.Empty(t, inv.BillingAddress)

	l.SetSupplierName("XYZ Agro Ltd.")
	l.SetBillingAddress("MG Road 45, Bangalore")
	inv = l.Snapshot()
	assert.Equal(t, "XYZ Agro Ltd.", inv.SupplierName)
	assert.Equal(t, "MG Road 45, Bangalore", inv.BillingAddress)
}

func TestSetBillingDate_ValorCeroConservaFechaAnterior(t *testing.T) {
	l := newTestLedger(t)
	fecha := time.Date(2025, 12, 12, 0, 0, 0, 0, time.UTC)

	l.SetBillingDate(fecha)
	assert.Equal(t, fecha, l.Snapshot().BillingDate)

	l.SetBillingDate(time.Time{})
	assert.Equal(t, fecha, l.Snapshot().BillingDate, "sin fecha nueva se conserva la anterior")
}

// ──────────────────────────────────────────────────────────────────────────────
// Snapshot
// ──────────────────────────────────────────────────────────────────────────────

func TestSnapshot_EsCopiaIndependiente(t *testing.T) {
	l := newTestLedger(t)
	copia := l.Snapshot()

	// Mutar el ledger después del snapshot no debe tocar la copia.
	l.SetLineItemPricePerUnit("item-1", "999")
	l.SetSupplierName("Otro Proveedor")

	assertDecEqual(t, "22", copia.LineItems[0].PricePerUnit, "el snapshot no refleja mutaciones posteriores")
	assert.Empty(t, copia.SupplierName)

	// Y mutar la copia no debe tocar el ledger.
	copia.LineItems[0].Quantity = 1000
	assert.Equal(t, int64(1), l.Snapshot().LineItems[0].Quantity)
}

func TestSnapshot_NoReiniciaElLedger(t *testing.T) {
	l := newTestLedger(t)
	_ = l.Snapshot()
	_ = l.Snapshot()

	inv := l.Snapshot()
	require.Len(t, inv.LineItems, 2, "tomar snapshots no limpia el estado")
	assert.Equal(t, int64(6), inv.Totals.Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Redondeo de totales: mitad lejos de cero, sobre la suma y no por línea
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeTotals_RedondeaLaSumaNoCadaLinea(t *testing.T) {
	l := newSingleItemLedger(t)

	// item-1: 1 * 10.30 con GST 0 → 10.30
	l.SetLineItemGSTRate("item-1", "0")
	l.SetLineItemPricePerUnit("item-1", "10.30")

	// línea nueva: 1 * 10.30 con GST 0 → 10.30; suma 20.60 → 21.
	// Redondeadas por línea (10 + 10) el total sería 20: detectaría el error.
	nueva := l.AddLineItem()
	l.SetLineItemGSTRate(nueva.ID, "0")
	l.SetLineItemPricePerUnit(nueva.ID, "10.30")

	assertDecEqual(t, "21", l.Snapshot().Totals.Amount, "se redondea la suma, no cada importe")
}

func TestComputeTotals_MitadLejosDeCero(t *testing.T) {
	l := newSingleItemLedger(t)
	l.SetLineItemGSTRate("item-1", "0")
	l.SetLineItemPricePerUnit("item-1", "10.5")

	// 10.5 queda exactamente en la mitad: la regla elegida redondea a 11
	// (con redondeo bancario sería 10).
	assertDecEqual(t, "11", l.Snapshot().Totals.Amount)
}

func TestComputeTotals_NoMutaElEstado(t *testing.T) {
	l := newTestLedger(t)
	antes := l.Snapshot()

	totales := l.ComputeTotals()

	assert.Equal(t, int64(6), totales.Quantity)
	assert.Equal(t, antes, l.Snapshot(), "ComputeTotals es de solo lectura")
}
