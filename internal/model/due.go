package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ledger status values shared by Due and Purchase.
// Status is always derived from the paid/pending amounts, never set directly.
const (
	StatusPending = "pending"
	StatusPartial = "partial"
	StatusPaid    = "paid"
)

// Due is an outstanding customer balance tied to exactly one sale.
// Invariant: PaidAmount + PendingAmount == TotalAmount.
type Due struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SaleID        uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	CustomerID    *uuid.UUID      `gorm:"type:uuid;index"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaidAmount    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	PendingAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status        string          `gorm:"type:varchar(10);not null;default:'pending';index"`
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Sale     *Sale        `gorm:"foreignKey:SaleID"`
	Customer *Customer    `gorm:"foreignKey:CustomerID"`
	Payments []DuePayment `gorm:"foreignKey:DueID"`
}

// DuePayment is an append-only record of a partial payment against a due.
// The sum of a due's payments always equals its PaidAmount.
type DuePayment struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DueID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaymentDate   time.Time       `gorm:"not null"`
	PaymentMethod string          `gorm:"not null;default:'cash'"`
	Reference     *string
	Notes         *string
	CreatedAt     time.Time
}
