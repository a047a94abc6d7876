package payments

import (
	"time"

	"github.com/google/uuid"
	"github.com/zyncfranc/compras-api/internal/application/dto"
	"github.com/zyncfranc/compras-api/internal/domain"
	"github.com/zyncfranc/compras-api/internal/domain/entity"
	"github.com/zyncfranc/compras-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// PaymentUseCase casos de uso para pagos a proveedores (payment out).
type PaymentUseCase struct {
	repo repository.PaymentRepository
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(repo repository.PaymentRepository) *PaymentUseCase {
	return &PaymentUseCase{repo: repo}
}

// Create registra un pago. Todos los campos son obligatorios y el monto debe
// ser positivo.
func (uc *PaymentUseCase) Create(in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if in.InvoiceNumber == "" || in.SupplierName == "" || in.BillingAddress == "" {
		return nil, domain.ErrInvalidInput
	}
	paymentDate, err := time.Parse(dateLayout, in.PaymentDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if !in.AmountPaid.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	payment := &entity.PaymentOut{
		ID:             uuid.New().String(),
		InvoiceNumber:  in.InvoiceNumber,
		SupplierName:   in.SupplierName,
		BillingAddress: in.BillingAddress,
		PaymentDate:    paymentDate,
		AmountPaid:     in.AmountPaid,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(payment); err != nil {
		return nil, err
	}
	return toResponse(payment), nil
}

// GetByID obtiene un pago.
func (uc *PaymentUseCase) GetByID(id string) (*dto.PaymentResponse, error) {
	payment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrNotFound
	}
	return toResponse(payment), nil
}

// List lista pagos con paginación.
func (uc *PaymentUseCase) List(limit, offset int) (*dto.PaymentListResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.PaymentListResponse{
		Items: make([]dto.PaymentResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, p := range list {
		out.Items = append(out.Items, *toResponse(p))
	}
	return out, nil
}

// Update aplica los campos presentes sobre el pago.
func (uc *PaymentUseCase) Update(id string, in dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	payment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrNotFound
	}
	if in.InvoiceNumber != nil {
		if *in.InvoiceNumber == "" {
			return nil, domain.ErrInvalidInput
		}
		payment.InvoiceNumber = *in.InvoiceNumber
	}
	if in.SupplierName != nil {
		if *in.SupplierName == "" {
			return nil, domain.ErrInvalidInput
		}
		payment.SupplierName = *in.SupplierName
	}
	if in.BillingAddress != nil {
		if *in.BillingAddress == "" {
			return nil, domain.ErrInvalidInput
		}
		payment.BillingAddress = *in.BillingAddress
	}
	if in.PaymentDate != nil {
		d, err := time.Parse(dateLayout, *in.PaymentDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		payment.PaymentDate = d
	}
	if in.AmountPaid != nil {
		if !in.AmountPaid.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		payment.AmountPaid = *in.AmountPaid
	}
	payment.UpdatedAt = time.Now()
	if err := uc.repo.Update(payment); err != nil {
		return nil, err
	}
	return toResponse(payment), nil
}

// Delete elimina un pago.
func (uc *PaymentUseCase) Delete(id string) error {
	payment, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if payment == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toResponse(p *entity.PaymentOut) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:             p.ID,
		InvoiceNumber:  p.InvoiceNumber,
		SupplierName:   p.SupplierName,
		BillingAddress: p.BillingAddress,
		PaymentDate:    p.PaymentDate.Format(dateLayout),
		AmountPaid:     p.AmountPaid,
	}
}
