package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Purchase is a supplier invoice, reduced by recorded payments.
// Structurally mirrors Due: same amounts invariant, same three-state status.
type Purchase struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SupplierID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaidAmount    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	PendingAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status        string          `gorm:"type:varchar(10);not null;default:'pending';index"`
	InvoiceNumber *string
	Notes         *string
	PurchaseDate  time.Time `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Supplier *Supplier         `gorm:"foreignKey:SupplierID"`
	Payments []PurchasePayment `gorm:"foreignKey:PurchaseID"`
}

// PurchasePayment mirrors DuePayment for the supplier side of the ledger.
type PurchasePayment struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PurchaseID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaymentDate   time.Time       `gorm:"not null"`
	PaymentMethod string          `gorm:"not null;default:'cash'"`
	Reference     *string
	Notes         *string
	CreatedAt     time.Time
}
