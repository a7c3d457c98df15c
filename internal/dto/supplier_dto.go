package dto

import "github.com/shopspring/decimal"

type CreateSupplierRequest struct {
	Name          string  `json:"name" validate:"required"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	ContactPerson *string `json:"contactPerson"`
}

type UpdateSupplierRequest struct {
	Name          *string `json:"name"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	ContactPerson *string `json:"contactPerson"`
}

// SupplierResponse aggregates the supplier's purchase ledger totals, matching
// the supplier list view of the dashboard.
type SupplierResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          *string         `json:"email"`
	Phone          *string         `json:"phone"`
	Address        *string         `json:"address"`
	ContactPerson  *string         `json:"contactPerson"`
	PurchaseCount  int64           `json:"purchaseCount"`
	TotalPurchased decimal.Decimal `json:"totalPurchased"`
	TotalPaid      decimal.Decimal `json:"totalPaid"`
	TotalPending   decimal.Decimal `json:"totalPending"`
}
