package model

import (
	"time"

	"github.com/google/uuid"
)

// User roles and statuses. Admin gates every mutating operation except
// sale and expense creation, which any authenticated role may perform.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"

	UserActive   = "active"
	UserInactive = "inactive"
)

// User is a system account with role-based access.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"type:varchar(10);not null;default:'user'"`
	Status       string    `gorm:"type:varchar(10);not null;default:'active'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
