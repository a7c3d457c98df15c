package service

import (
	"context"
	"errors"
	"time"

	"dokan/internal/dto"
	"dokan/internal/model"
	"dokan/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrExpenseNotFound = errors.New("expense not found")

type ExpenseService interface {
	Create(ctx context.Context, userID uuid.UUID, req dto.CreateExpenseRequest) (*dto.ExpenseResponse, error)
	List(ctx context.Context) ([]dto.ExpenseResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type expenseService struct {
	repo repository.ExpenseRepository
}

func NewExpenseService(repo repository.ExpenseRepository) ExpenseService {
	return &expenseService{repo: repo}
}

func (s *expenseService) Create(ctx context.Context, userID uuid.UUID, req dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if !req.Amount.GreaterThan(decimal.Zero) {
		return nil, errors.New("amount must be greater than 0")
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, errors.New("invalid date")
	}
	e := &model.Expense{
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        date,
		UserID:      userID,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return expenseToResponse(e), nil
}

func (s *expenseService) List(ctx context.Context) ([]dto.ExpenseResponse, error) {
	expenses, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		resp = append(resp, *expenseToResponse(&expenses[i]))
	}
	return resp, nil
}

func (s *expenseService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrExpenseNotFound
	}
	if req.Amount != nil {
		if !req.Amount.GreaterThan(decimal.Zero) {
			return nil, errors.New("amount must be greater than 0")
		}
		e.Amount = *req.Amount
	}
	if req.Category != nil {
		e.Category = *req.Category
	}
	if req.Description != nil {
		e.Description = req.Description
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, errors.New("invalid date")
		}
		e.Date = date
	}
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return expenseToResponse(e), nil
}

func (s *expenseService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrExpenseNotFound
	}
	return s.repo.Delete(ctx, id)
}

func expenseToResponse(e *model.Expense) *dto.ExpenseResponse {
	recordedBy := ""
	if e.User != nil {
		recordedBy = e.User.Name
	}
	return &dto.ExpenseResponse{
		ID:          e.ID.String(),
		Amount:      e.Amount,
		Category:    e.Category,
		Description: e.Description,
		Date:        e.Date.Format("2006-01-02"),
		UserID:      e.UserID.String(),
		RecordedBy:  recordedBy,
	}
}
