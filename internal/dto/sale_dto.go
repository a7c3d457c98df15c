package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type SaleItemRequest struct {
	ProductID string          `json:"productId" validate:"required,uuid"`
	Quantity  int             `json:"quantity"  validate:"required,min=1"`
	Price     decimal.Decimal `json:"price"     validate:"min=0"`
}

// CustomerRequest is the optional walk-in customer block on a sale.
// Phone is required whenever the block is present at all.
type CustomerRequest struct {
	Phone   string  `json:"phone" validate:"required"`
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

type CreateSaleRequest struct {
	Items    []SaleItemRequest `json:"items"    validate:"required,min=1,dive"`
	Total    decimal.Decimal   `json:"total"    validate:"required"`
	Discount decimal.Decimal   `json:"discount" validate:"min=0"`
	Customer *CustomerRequest  `json:"customer"`
}

// SaleFilter is bound from the query string of GET /v1/sales.
type SaleFilter struct {
	Date  string `form:"date"` // YYYY-MM-DD; empty = all
	Page  int    `form:"page,default=1"   validate:"min=1"`
	Limit int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SaleItemResponse struct {
	ProductID string          `json:"productId"`
	Product   string          `json:"product"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type SaleCustomerResponse struct {
	ID      string  `json:"id"`
	Name    *string `json:"name"`
	Phone   string  `json:"phone"`
	Address *string `json:"address"`
}

type SaleResponse struct {
	ID        string                `json:"id"`
	UserID    string                `json:"userId"`
	Cashier   string                `json:"cashier"`
	Customer  *SaleCustomerResponse `json:"customer,omitempty"`
	Items     []SaleItemResponse    `json:"items"`
	Total     decimal.Decimal       `json:"total"`
	Discount  decimal.Decimal       `json:"discount"`
	CreatedAt string                `json:"createdAt"`
}

type SaleListResponse struct {
	Data  []SaleResponse `json:"data"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}
