package dto

import "github.com/shopspring/decimal"

// CreatePaymentRequest body para POST /api/payments-out.
// Todos los campos son obligatorios; PaymentDate va como "2006-01-02".
type CreatePaymentRequest struct {
	InvoiceNumber  string          `json:"invoice_number"`
	SupplierName   string          `json:"supplier_name"`
	BillingAddress string          `json:"billing_address"`
	PaymentDate    string          `json:"payment_date"`
	AmountPaid     decimal.Decimal `json:"amount_paid"`
}

// UpdatePaymentRequest body para PUT /api/payments-out/:id.
// Solo se aplican los campos presentes.
type UpdatePaymentRequest struct {
	InvoiceNumber  *string          `json:"invoice_number,omitempty"`
	SupplierName   *string          `json:"supplier_name,omitempty"`
	BillingAddress *string          `json:"billing_address,omitempty"`
	PaymentDate    *string          `json:"payment_date,omitempty"`
	AmountPaid     *decimal.Decimal `json:"amount_paid,omitempty"`
}

// PaymentResponse pago en respuestas.
type PaymentResponse struct {
	ID             string          `json:"id"`
	InvoiceNumber  string          `json:"invoice_number"`
	SupplierName   string          `json:"supplier_name"`
	BillingAddress string          `json:"billing_address"`
	PaymentDate    string          `json:"payment_date"`
	AmountPaid     decimal.Decimal `json:"amount_paid"`
}

// PaymentListResponse listado paginado de pagos.
type PaymentListResponse struct {
	Items []PaymentResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
