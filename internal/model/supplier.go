package model

import (
	"time"

	"github.com/google/uuid"
)

// Supplier owns purchases. Contact fields are all optional except the name.
type Supplier struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string    `gorm:"not null;index"`
	Email         *string
	Phone         *string
	Address       *string
	ContactPerson *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Purchases []Purchase `gorm:"foreignKey:SupplierID"`
}
