package repository

import (
	"context"
	"time"

	"dokan/internal/dto"
	"dokan/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SaleRepository interface {
	Create(ctx context.Context, tx *gorm.DB, s *model.Sale) error
	CreateCustomerTx(tx *gorm.DB, c *model.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error)
	List(ctx context.Context, filter dto.SaleFilter) ([]model.Sale, int64, error)
	// ListByYear loads the full item→product→category graph for analytics.
	ListByYear(ctx context.Context, from, to time.Time) ([]model.Sale, error)
	DeleteTx(tx *gorm.DB, id uuid.UUID) error
	CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error)
	DB() *gorm.DB
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) DB() *gorm.DB { return r.db }

func (r *saleRepo) Create(ctx context.Context, tx *gorm.DB, s *model.Sale) error {
	return tx.WithContext(ctx).Create(s).Error
}

func (r *saleRepo) CreateCustomerTx(tx *gorm.DB, c *model.Customer) error {
	return tx.Create(c).Error
}

func (r *saleRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).
		Preload("Items.Product").Preload("Customer").Preload("User").Preload("Due").
		First(&s, id).Error
	return &s, err
}

func (r *saleRepo) List(ctx context.Context, filter dto.SaleFilter) ([]model.Sale, int64, error) {
	var sales []model.Sale
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.Sale{})
	if filter.Date != "" {
		q = q.Where("DATE(created_at) = ?", filter.Date)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Items.Product").Preload("Customer").Preload("User").
		Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&sales).Error
	return sales, total, err
}

func (r *saleRepo) ListByYear(ctx context.Context, from, to time.Time) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at < ?", from, to).
		Preload("Items.Product.Category").Preload("Customer").Preload("User").
		Order("created_at DESC").
		Find(&sales).Error
	return sales, err
}

// DeleteTx removes the sale's items before the sale itself (FK order).
func (r *saleRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	if err := tx.Where("sale_id = ?", id).Delete(&model.SaleItem{}).Error; err != nil {
		return err
	}
	return tx.Delete(&model.Sale{}, id).Error
}

func (r *saleRepo) CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SaleItem{}).
		Where("product_id = ?", productID).Count(&count).Error
	return count, err
}
