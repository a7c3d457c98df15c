package repository

import (
	"context"

	"dokan/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PurchaseRepository interface {
	Create(ctx context.Context, p *model.Purchase) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Purchase, error)
	List(ctx context.Context) ([]model.Purchase, error)
	ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]model.Purchase, error)
	Delete(ctx context.Context, id uuid.UUID) error

	CreatePaymentTx(tx *gorm.DB, p *model.PurchasePayment) error
	UpdateTx(tx *gorm.DB, p *model.Purchase) error

	DB() *gorm.DB
}

type purchaseRepo struct{ db *gorm.DB }

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository { return &purchaseRepo{db: db} }

func (r *purchaseRepo) DB() *gorm.DB { return r.db }

func (r *purchaseRepo) Create(ctx context.Context, p *model.Purchase) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *purchaseRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Purchase, error) {
	var p model.Purchase
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Preload("Payments", func(q *gorm.DB) *gorm.DB { return q.Order("payment_date DESC") }).
		First(&p, id).Error
	return &p, err
}

func (r *purchaseRepo) List(ctx context.Context) ([]model.Purchase, error) {
	var purchases []model.Purchase
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Preload("Payments", func(q *gorm.DB) *gorm.DB { return q.Order("payment_date DESC") }).
		Order("created_at DESC").
		Find(&purchases).Error
	return purchases, err
}

func (r *purchaseRepo) ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]model.Purchase, error) {
	var purchases []model.Purchase
	err := r.db.WithContext(ctx).Where("supplier_id = ?", supplierID).Find(&purchases).Error
	return purchases, err
}

func (r *purchaseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Where("purchase_id = ?", id).Delete(&model.PurchasePayment{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&model.Purchase{}, id).Error
}

func (r *purchaseRepo) CreatePaymentTx(tx *gorm.DB, p *model.PurchasePayment) error {
	return tx.Create(p).Error
}

func (r *purchaseRepo) UpdateTx(tx *gorm.DB, p *model.Purchase) error {
	return tx.Save(p).Error
}
