package repository

import (
	"context"
	"time"

	"dokan/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExpenseRepository interface {
	Create(ctx context.Context, e *model.Expense) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Expense, error)
	List(ctx context.Context) ([]model.Expense, error)
	ListByYear(ctx context.Context, from, to time.Time) ([]model.Expense, error)
	Update(ctx context.Context, e *model.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type expenseRepo struct{ db *gorm.DB }

func NewExpenseRepository(db *gorm.DB) ExpenseRepository { return &expenseRepo{db: db} }

func (r *expenseRepo) Create(ctx context.Context, e *model.Expense) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *expenseRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Expense, error) {
	var e model.Expense
	err := r.db.WithContext(ctx).Preload("User").First(&e, id).Error
	return &e, err
}

func (r *expenseRepo) List(ctx context.Context) ([]model.Expense, error) {
	var expenses []model.Expense
	err := r.db.WithContext(ctx).Preload("User").Order("date DESC").Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepo) ListByYear(ctx context.Context, from, to time.Time) ([]model.Expense, error) {
	var expenses []model.Expense
	err := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at DESC").Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepo) Update(ctx context.Context, e *model.Expense) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *expenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Expense{}, id).Error
}
