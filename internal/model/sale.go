package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is a completed checkout. It owns its line items; creating a sale and
// decrementing product stock happen in the same transaction, and deleting a
// sale restores stock symmetrically.
type Sale struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerID *uuid.UUID
	Total      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Discount   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt  time.Time       `gorm:"index"`

	User     *User      `gorm:"foreignKey:UserID"`
	Customer *Customer  `gorm:"foreignKey:CustomerID"`
	Items    []SaleItem `gorm:"foreignKey:SaleID"`
	Due      *Due       `gorm:"foreignKey:SaleID"`
}

// SaleItem is one line of a sale. Price is a snapshot of the unit price at
// sale time, never the live product price.
type SaleItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SaleID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Product *Product `gorm:"foreignKey:ProductID"`
}
