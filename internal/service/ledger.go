package service

import (
	"context"

	"dokan/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// deriveStatus is the single source of truth for the three-state ledger
// status shared by dues and purchases:
//
//	pending == 0            → paid
//	pending  > 0, paid > 0  → partial
//	otherwise               → pending
//
// Every mutation path recomputes status through this function so the derived
// field can never drift from the amounts.
func deriveStatus(paid, pending decimal.Decimal) string {
	if pending.IsZero() {
		return model.StatusPaid
	}
	if paid.GreaterThan(decimal.Zero) {
		return model.StatusPartial
	}
	return model.StatusPending
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}
