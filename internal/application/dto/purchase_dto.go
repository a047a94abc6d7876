package dto

import "github.com/shopspring/decimal"

// UpdateSessionRequest body para PATCH /api/purchase-sessions/:id.
// Solo se aplican los campos presentes. La fecha va como "2006-01-02";
// vacía u omitida conserva la fecha anterior.
type UpdateSessionRequest struct {
	SupplierName   *string `json:"supplier_name,omitempty"`
	BillingAddress *string `json:"billing_address,omitempty"`
	BillingDate    *string `json:"billing_date,omitempty"`
}

// UpdateLineItemRequest body para PATCH /api/purchase-sessions/:id/items/:itemId.
// Los campos numéricos viajan como texto crudo de captura: el ledger aplica la
// política parseo-con-cero, por eso aquí no se valida el formato.
type UpdateLineItemRequest struct {
	Name         *string `json:"name,omitempty"`
	Unit         *string `json:"unit,omitempty"`
	Quantity     *string `json:"quantity,omitempty"`
	PricePerUnit *string `json:"price_per_unit,omitempty"`
	GSTRate      *string `json:"gst_rate,omitempty"`
}

// LineItemResponse línea de compra en respuestas de sesión y de compra.
type LineItemResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Quantity     int64           `json:"quantity"`
	Unit         string          `json:"unit"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	GSTRate      decimal.Decimal `json:"gst_rate"`
	PriceWithTax decimal.Decimal `json:"price_with_tax"`
	Amount       decimal.Decimal `json:"amount"`
}

// TotalsResponse agregados de la factura.
type TotalsResponse struct {
	Quantity int64           `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"`
}

// SessionResponse estado completo de una sesión de captura.
type SessionResponse struct {
	SessionID      string             `json:"session_id"`
	InvoiceNumber  string             `json:"invoice_number"`
	SupplierName   string             `json:"supplier_name"`
	BillingAddress string             `json:"billing_address"`
	BillingDate    string             `json:"billing_date"`
	LineItems      []LineItemResponse `json:"line_items"`
	Totals         TotalsResponse     `json:"totals"`
}

// PurchaseResponse compra persistida para GET /api/purchases/:id.
type PurchaseResponse struct {
	ID             string             `json:"id"`
	InvoiceNumber  string             `json:"invoice_number"`
	SupplierName   string             `json:"supplier_name"`
	BillingAddress string             `json:"billing_address"`
	BillingDate    string             `json:"billing_date"`
	LineItems      []LineItemResponse `json:"line_items,omitempty"`
	Totals         TotalsResponse     `json:"totals"`
}

// PurchaseListResponse listado paginado de compras (sin líneas).
type PurchaseListResponse struct {
	Items []PurchaseResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
