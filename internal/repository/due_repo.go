package repository

import (
	"context"

	"dokan/internal/dto"
	"dokan/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DueRepository interface {
	Create(ctx context.Context, d *model.Due) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Due, error)
	FindBySaleID(ctx context.Context, saleID uuid.UUID) (*model.Due, error)
	List(ctx context.Context, filter dto.DueFilter) ([]model.Due, error)
	Update(ctx context.Context, d *model.Due) error
	Delete(ctx context.Context, id uuid.UUID) error
	SumPayments(ctx context.Context, id uuid.UUID) (decimal.Decimal, error)

	// Transactional pair: append the payment row and persist the recomputed
	// ledger amounts within the caller's transaction.
	CreatePaymentTx(tx *gorm.DB, p *model.DuePayment) error
	UpdateTx(tx *gorm.DB, d *model.Due) error

	DB() *gorm.DB
}

type dueRepo struct{ db *gorm.DB }

func NewDueRepository(db *gorm.DB) DueRepository { return &dueRepo{db: db} }

func (r *dueRepo) DB() *gorm.DB { return r.db }

func (r *dueRepo) Create(ctx context.Context, d *model.Due) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *dueRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Due, error) {
	var d model.Due
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Payments", func(q *gorm.DB) *gorm.DB { return q.Order("payment_date DESC") }).
		First(&d, id).Error
	return &d, err
}

func (r *dueRepo) FindBySaleID(ctx context.Context, saleID uuid.UUID) (*model.Due, error) {
	var d model.Due
	err := r.db.WithContext(ctx).Where("sale_id = ?", saleID).First(&d).Error
	return &d, err
}

func (r *dueRepo) List(ctx context.Context, filter dto.DueFilter) ([]model.Due, error) {
	var dues []model.Due
	q := r.db.WithContext(ctx).Model(&model.Due{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.CustomerID != "" {
		q = q.Where("customer_id = ?", filter.CustomerID)
	}
	err := q.Preload("Customer").
		Preload("Payments", func(q *gorm.DB) *gorm.DB { return q.Order("payment_date DESC") }).
		Order("created_at DESC").
		Find(&dues).Error
	return dues, err
}

func (r *dueRepo) Update(ctx context.Context, d *model.Due) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *dueRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Where("due_id = ?", id).Delete(&model.DuePayment{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&model.Due{}, id).Error
}

func (r *dueRepo) SumPayments(ctx context.Context, id uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.DuePayment{}).
		Where("due_id = ?", id).
		Select("COALESCE(SUM(amount), 0)").Scan(&sum).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}

func (r *dueRepo) CreatePaymentTx(tx *gorm.DB, p *model.DuePayment) error {
	return tx.Create(p).Error
}

func (r *dueRepo) UpdateTx(tx *gorm.DB, d *model.Due) error {
	return tx.Save(d).Error
}
