package dto

import "github.com/shopspring/decimal"

type CreateExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount"   validate:"required"`
	Category    string          `json:"category" validate:"required"`
	Description *string         `json:"description"`
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
}

type UpdateExpenseRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
	Date        *string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type ExpenseResponse struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description *string         `json:"description"`
	Date        string          `json:"date"`
	UserID      string          `json:"userId"`
	RecordedBy  string          `json:"recordedBy"`
}
