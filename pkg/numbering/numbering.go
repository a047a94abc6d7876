// Package numbering genera números de factura de compra.
//
// El esquema es un consecutivo monotónico por proceso con prefijo "INV-",
// sembrado desde el reloj al arrancar. La unicidad solo se garantiza dentro
// de la vida del proceso; un consecutivo global pertenece a la capa de
// persistencia y queda fuera de este módulo.
package numbering

import (
	"fmt"
	"sync/atomic"
	"time"
)

// InvoiceNumberGenerator produce números de factura consecutivos.
type InvoiceNumberGenerator interface {
	Next() string
}

// Sequence genera "INV-<n>" con n monotónico (atómico, seguro entre goroutines).
type Sequence struct {
	counter atomic.Int64
}

// NewSequence crea la secuencia sembrada desde el reloj (minutos desde epoch)
// para que reinicios del proceso no repitan los primeros consecutivos.
func NewSequence() *Sequence {
	s := &Sequence{}
	s.counter.Store(time.Now().Unix() / 60)
	return s
}

// Next devuelve el siguiente número de factura.
func (s *Sequence) Next() string {
	return fmt.Sprintf("INV-%d", s.counter.Add(1))
}
