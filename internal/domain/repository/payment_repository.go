package repository

import "github.com/zyncfranc/compras-api/internal/domain/entity"

// PaymentRepository define el puerto de persistencia para pagos a proveedores.
type PaymentRepository interface {
	Create(payment *entity.PaymentOut) error
	GetByID(id string) (*entity.PaymentOut, error)
	List(limit, offset int) ([]*entity.PaymentOut, error)
	Update(payment *entity.PaymentOut) error
	Delete(id string) error
}
