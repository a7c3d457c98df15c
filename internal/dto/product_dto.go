package dto

import "github.com/shopspring/decimal"

type CreateProductRequest struct {
	Name          string          `json:"name"          validate:"required"`
	Description   *string         `json:"description"`
	Barcode       *string         `json:"barcode"`
	CategoryID    *string         `json:"categoryId"    validate:"omitempty,uuid"`
	PurchasePrice decimal.Decimal `json:"purchasePrice" validate:"min=0"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"  validate:"required"`
	Stock         int             `json:"stock"         validate:"min=0"`
	MinStock      *int            `json:"minStock"      validate:"omitempty,min=0"`
}

type UpdateProductRequest struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Barcode       *string          `json:"barcode"`
	CategoryID    *string          `json:"categoryId"    validate:"omitempty,uuid"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice"`
	SellingPrice  *decimal.Decimal `json:"sellingPrice"`
	Stock         *int             `json:"stock"         validate:"omitempty,min=0"`
	MinStock      *int             `json:"minStock"      validate:"omitempty,min=0"`
}

type ProductFilter struct {
	Name       string `form:"name"`
	CategoryID string `form:"categoryId" validate:"omitempty,uuid"`
	Active     string `form:"active"` // "false" = inactive, "all" = everything, default active
	Page       int    `form:"page,default=1"   validate:"min=1"`
	Limit      int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   *string         `json:"description"`
	Barcode       *string         `json:"barcode"`
	CategoryID    *string         `json:"categoryId"`
	Category      *string         `json:"category"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	InitialStock  int             `json:"initialStock"`
	Stock         int             `json:"stock"`
	MinStock      int             `json:"minStock"`
	Active        bool            `json:"active"`
}

type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

// PriceLookupResponse is served by the public barcode price check.
type PriceLookupResponse struct {
	Name         string          `json:"name"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	Stock        int             `json:"stock"`
	Category     *string         `json:"category"`
}
