package model

import (
	"time"

	"github.com/google/uuid"
)

// Customer is created per sale when customer details are supplied at checkout.
// Phone is the only required field.
type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      *string
	Phone     string `gorm:"not null;index"`
	Address   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
