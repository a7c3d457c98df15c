package dto

import "github.com/shopspring/decimal"

type CreateEmployeeRequest struct {
	Name     string           `json:"name"     validate:"required"`
	Email    string           `json:"email"    validate:"required,email"`
	Position string           `json:"position" validate:"required"`
	Salary   *decimal.Decimal `json:"salary"`
	HireDate string           `json:"hireDate" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateEmployeeRequest struct {
	Name     *string          `json:"name"`
	Email    *string          `json:"email" validate:"omitempty,email"`
	Position *string          `json:"position"`
	Salary   *decimal.Decimal `json:"salary"`
	HireDate *string          `json:"hireDate" validate:"omitempty,datetime=2006-01-02"`
}

type EmployeeResponse struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Email    string           `json:"email"`
	Position string           `json:"position"`
	Salary   *decimal.Decimal `json:"salary"`
	HireDate string           `json:"hireDate"`
}
