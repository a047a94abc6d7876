package purchasing_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zyncfranc/compras-api/internal/application/dto"
	"github.com/zyncfranc/compras-api/internal/application/purchasing"
	"github.com/zyncfranc/compras-api/internal/domain"
	"github.com/zyncfranc/compras-api/pkg/numbering"
)

func newSessionUC() *purchasing.SessionUseCase {
	return purchasing.NewSessionUseCase(numbering.NewSequence())
}

func TestOpen_SesionConLineasDeEjemplo(t *testing.T) {
	uc := newSessionUC()
	session := uc.Open()

	assert.NotEmpty(t, session.SessionID)
	assert.True(t, strings.HasPrefix(session.InvoiceNumber, "INV-"),
		"el número de factura debe llevar el prefijo INV-")
	assert.Empty(t, session.SupplierName, "el proveedor inicia vacío")
	require.Len(t, session.LineItems, 2, "el formulario abre con dos líneas de ejemplo")
	assert.Equal(t, int64(6), session.Totals.Quantity)
}

func TestOpen_NumerosDeFacturaConsecutivos(t *testing.T) {
	uc := newSessionUC()
	first := uc.Open()
	second := uc.Open()
	assert.NotEqual(t, first.InvoiceNumber, second.InvoiceNumber,
		"cada sesión debe recibir su propio número")
	assert.NotEqual(t, first.SessionID, second.SessionID)
}

func TestGet_SesionDesconocida_RetornaNotFound(t *testing.T) {
	uc := newSessionUC()
	_, err := uc.Get("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateScalars_FechaMalFormadaConservaLaAnterior(t *testing.T) {
	uc := newSessionUC()
	session := uc.Open()

	updated, err := uc.UpdateScalars(session.SessionID, dto.UpdateSessionRequest{
		BillingDate: strPtr("2026-08-15"),
	})
	require.NoError(t, err)
	require.Equal(t, "2026-08-15", updated.BillingDate)

	// Texto no parseable: la fecha previa se conserva.
	updated, err = uc.UpdateScalars(session.SessionID, dto.UpdateSessionRequest{
		BillingDate: strPtr("15/08/2026"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-08-15", updated.BillingDate,
		"una fecha mal formada no debe tocar la fecha vigente")
}

func TestUpdateItem_TextoCrudoPasaPorParseoConCero(t *testing.T) {
	uc := newSessionUC()
	session := uc.Open()
	itemID := session.LineItems[0].ID

	updated, err := uc.UpdateItem(session.SessionID, itemID, dto.UpdateLineItemRequest{
		Quantity: strPtr("abc"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated.LineItems[0].Quantity,
		"cantidad no parseable se captura como cero")
	assert.True(t, updated.LineItems[0].Amount.IsZero())
}

func TestAddYRemoveItem_ViaSesion(t *testing.T) {
	uc := newSessionUC()
	session := uc.Open()

	withNew, err := uc.AddItem(session.SessionID)
	require.NoError(t, err)
	require.Len(t, withNew.LineItems, 3)
	added := withNew.LineItems[2]
	assert.Equal(t, int64(1), added.Quantity)
	assert.Equal(t, "Kg", added.Unit)

	afterRemove, err := uc.RemoveItem(session.SessionID, added.ID)
	require.NoError(t, err)
	assert.Len(t, afterRemove.LineItems, 2)
}

func TestCancel_DescartaLaSesion(t *testing.T) {
	uc := newSessionUC()
	session := uc.Open()

	require.NoError(t, uc.Cancel(session.SessionID))
	_, err := uc.Get(session.SessionID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, uc.Cancel(session.SessionID), domain.ErrNotFound,
		"cancelar dos veces debe reportar que ya no existe")
}
