package dto

import "github.com/shopspring/decimal"

// CreateSupplierRequest body para POST /api/suppliers.
type CreateSupplierRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	GSTIN   string `json:"gstin,omitempty"`
}

// UpdateSupplierRequest body para PUT /api/suppliers/:id.
// Solo se aplican los campos presentes.
type UpdateSupplierRequest struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	Address *string `json:"address,omitempty"`
	GSTIN   *string `json:"gstin,omitempty"`
}

// SupplierResponse proveedor en respuestas.
type SupplierResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email,omitempty"`
	Address       string          `json:"address,omitempty"`
	GSTIN         string          `json:"gstin,omitempty"`
	AmountPayable decimal.Decimal `json:"amount_payable"`
}

// SupplierListResponse listado paginado de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
