package dto

import "github.com/shopspring/decimal"

// AddPaymentRequest records a partial payment against a due or a purchase.
// The two ledgers share the identical shape.
type AddPaymentRequest struct {
	Amount        decimal.Decimal `json:"amount"        validate:"required"`
	PaymentDate   string          `json:"paymentDate"   validate:"required,datetime=2006-01-02"`
	PaymentMethod string          `json:"paymentMethod"` // defaults to "cash"
	Reference     *string         `json:"reference"`
	Notes         *string         `json:"notes"`
}

type PaymentResponse struct {
	ID            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   string          `json:"paymentDate"`
	PaymentMethod string          `json:"paymentMethod"`
	Reference     *string         `json:"reference"`
	Notes         *string         `json:"notes"`
}

// ─── Due ─────────────────────────────────────────────────────────────────────

type CreateDueRequest struct {
	SaleID      string          `json:"saleId"      validate:"required,uuid"`
	TotalAmount decimal.Decimal `json:"totalAmount" validate:"required"`
	Notes       *string         `json:"notes"`
}

type UpdateDueRequest struct {
	TotalAmount *decimal.Decimal `json:"totalAmount"`
	Notes       *string          `json:"notes"`
}

type DueFilter struct {
	Status     string `form:"status"     validate:"omitempty,oneof=pending partial paid"`
	CustomerID string `form:"customerId" validate:"omitempty,uuid"`
}

type DueResponse struct {
	ID            string            `json:"id"`
	SaleID        string            `json:"saleId"`
	Customer      *SaleCustomerResponse `json:"customer,omitempty"`
	TotalAmount   decimal.Decimal   `json:"totalAmount"`
	PaidAmount    decimal.Decimal   `json:"paidAmount"`
	PendingAmount decimal.Decimal   `json:"pendingAmount"`
	Status        string            `json:"status"`
	Notes         *string           `json:"notes"`
	Payments      []PaymentResponse `json:"payments"`
	CreatedAt     string            `json:"createdAt"`
}

// AddDuePaymentResponse mirrors the historical API shape: the new payment,
// the refreshed due, and a human message.
type AddDuePaymentResponse struct {
	Payment PaymentResponse `json:"payment"`
	Due     DueResponse     `json:"due"`
	Message string          `json:"message"`
}

// ─── Purchase ────────────────────────────────────────────────────────────────

type CreatePurchaseRequest struct {
	SupplierID    string          `json:"supplierId"    validate:"required,uuid"`
	TotalAmount   decimal.Decimal `json:"totalAmount"   validate:"required"`
	PurchaseDate  string          `json:"purchaseDate"  validate:"omitempty,datetime=2006-01-02"`
	InvoiceNumber *string         `json:"invoiceNumber"`
	Notes         *string         `json:"notes"`
}

type PurchaseResponse struct {
	ID            string            `json:"id"`
	SupplierID    string            `json:"supplierId"`
	Supplier      string            `json:"supplier"`
	TotalAmount   decimal.Decimal   `json:"totalAmount"`
	PaidAmount    decimal.Decimal   `json:"paidAmount"`
	PendingAmount decimal.Decimal   `json:"pendingAmount"`
	Status        string            `json:"status"`
	InvoiceNumber *string           `json:"invoiceNumber"`
	Notes         *string           `json:"notes"`
	PurchaseDate  string            `json:"purchaseDate"`
	Payments      []PaymentResponse `json:"payments"`
	CreatedAt     string            `json:"createdAt"`
}

type AddPurchasePaymentResponse struct {
	Payment  PaymentResponse  `json:"payment"`
	Purchase PurchaseResponse `json:"purchase"`
	Message  string           `json:"message"`
}
