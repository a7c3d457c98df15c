package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a sellable inventory item. Stock is decremented by sales and
// restored when a sale is deleted. Barcode is optional but unique when set.
type Product struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string    `gorm:"uniqueIndex;not null"`
	Description   *string
	Barcode       *string         `gorm:"uniqueIndex"`
	CategoryID    *uuid.UUID      `gorm:"type:uuid;index"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	SellingPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	InitialStock  int             `gorm:"not null;default:0"`
	Stock         int             `gorm:"not null;default:0"`
	// MinStock is the reorder threshold — the low-stock cron alerts at or below it.
	MinStock  int  `gorm:"not null;default:5"`
	Active    bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Category *Category `gorm:"foreignKey:CategoryID"`
}
