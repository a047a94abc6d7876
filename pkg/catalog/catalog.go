// Package catalog contiene los catálogos de referencia del módulo de compras:
// unidades de medida y tarifas GST (India). El núcleo de precios los consume
// pero no los posee; cualquier capa puede validarlos contra estas tablas.
package catalog

import "github.com/shopspring/decimal"

// =============================================================================
// Unidades de medida usadas en las líneas de compra (símbolos de la UI original).
// =============================================================================

const (
	UnitKilogram   = "Kg"
	UnitGram       = "g"
	UnitLitre      = "L"
	UnitMillilitre = "ml"
	UnitPieces     = "Pcs"
)

// DefaultUnit unidad asignada a una línea nueva.
const DefaultUnit = UnitKilogram

// Units lista ordenada de unidades válidas (orden de presentación).
var Units = []string{UnitKilogram, UnitGram, UnitLitre, UnitMillilitre, UnitPieces}

// ValidUnits búsqueda O(1) de unidades válidas.
var ValidUnits = map[string]bool{
	UnitKilogram: true, UnitGram: true, UnitLitre: true,
	UnitMillilitre: true, UnitPieces: true,
}

// =============================================================================
// Tarifas GST — porcentajes vigentes para bienes de consumo: 0, 5, 12, 18, 28.
// =============================================================================

// GSTRates tarifas válidas en porcentaje.
var GSTRates = []int64{0, 5, 12, 18, 28}

// DefaultGSTRate tarifa asignada a una línea nueva (5%).
var DefaultGSTRate = decimal.NewFromInt(5)

// ValidGSTRate indica si la tarifa corresponde a un tramo GST vigente.
func ValidGSTRate(rate decimal.Decimal) bool {
	for _, r := range GSTRates {
		if rate.Equal(decimal.NewFromInt(r)) {
			return true
		}
	}
	return false
}
