package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Employee is an administrative HR record with no workflow coupling.
type Employee struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"not null"`
	Email     string    `gorm:"uniqueIndex;not null"`
	Position  string    `gorm:"not null"`
	Salary    *decimal.Decimal `gorm:"type:decimal(12,2)"`
	HireDate  time.Time        `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
