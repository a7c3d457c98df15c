package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is a business outgoing recorded by any authenticated user.
type Expense struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Category    string          `gorm:"not null;index"`
	Description *string
	Date        time.Time `gorm:"not null"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time

	User *User `gorm:"foreignKey:UserID"`
}
