package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dokan/internal/dto"
	"dokan/internal/model"
	"dokan/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrDueNotFound = errors.New("due not found")

type DueService interface {
	CreateDue(ctx context.Context, req dto.CreateDueRequest) (*dto.DueResponse, error)
	GetDue(ctx context.Context, id uuid.UUID) (*dto.DueResponse, error)
	ListDues(ctx context.Context, filter dto.DueFilter) ([]dto.DueResponse, error)
	UpdateDue(ctx context.Context, id uuid.UUID, req dto.UpdateDueRequest) (*dto.DueResponse, error)
	DeleteDue(ctx context.Context, id uuid.UUID) error
	AddPayment(ctx context.Context, id uuid.UUID, req dto.AddPaymentRequest) (*dto.AddDuePaymentResponse, error)
}

type dueService struct {
	repo     repository.DueRepository
	saleRepo repository.SaleRepository
}

func NewDueService(repo repository.DueRepository, saleRepo repository.SaleRepository) DueService {
	return &dueService{repo: repo, saleRepo: saleRepo}
}

// CreateDue opens a ledger entry for a sale: one due per sale, pending starts
// at the full amount and the first payment moves status off pending.
func (s *dueService) CreateDue(ctx context.Context, req dto.CreateDueRequest) (*dto.DueResponse, error) {
	saleID, err := uuid.Parse(req.SaleID)
	if err != nil {
		return nil, fmt.Errorf("invalid saleId: %w", err)
	}
	if !req.TotalAmount.GreaterThan(decimal.Zero) {
		return nil, errors.New("total amount must be greater than 0")
	}

	sale, err := s.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, ErrSaleNotFound
	}
	if _, err := s.repo.FindBySaleID(ctx, saleID); err == nil {
		return nil, errors.New("a due already exists for this sale")
	}

	due := &model.Due{
		SaleID:        saleID,
		CustomerID:    sale.CustomerID,
		TotalAmount:   req.TotalAmount,
		PaidAmount:    decimal.Zero,
		PendingAmount: req.TotalAmount,
		Status:        deriveStatus(decimal.Zero, req.TotalAmount),
		Notes:         req.Notes,
	}
	if err := s.repo.Create(ctx, due); err != nil {
		return nil, err
	}
	return dueToResponse(due), nil
}

func (s *dueService) GetDue(ctx context.Context, id uuid.UUID) (*dto.DueResponse, error) {
	due, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrDueNotFound
	}
	return dueToResponse(due), nil
}

func (s *dueService) ListDues(ctx context.Context, filter dto.DueFilter) ([]dto.DueResponse, error) {
	dues, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.DueResponse, 0, len(dues))
	for i := range dues {
		resp = append(resp, *dueToResponse(&dues[i]))
	}
	return resp, nil
}

// UpdateDue changes the total owed. Pending is recomputed against the sum of
// payments already recorded, clamped at zero, and status is rederived.
func (s *dueService) UpdateDue(ctx context.Context, id uuid.UUID, req dto.UpdateDueRequest) (*dto.DueResponse, error) {
	due, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrDueNotFound
	}

	if req.TotalAmount != nil {
		if !req.TotalAmount.GreaterThan(decimal.Zero) {
			return nil, errors.New("total amount must be greater than 0")
		}
		paid, err := s.repo.SumPayments(ctx, id)
		if err != nil {
			return nil, err
		}
		pending := req.TotalAmount.Sub(paid)
		if pending.LessThan(decimal.Zero) {
			pending = decimal.Zero
		}
		due.TotalAmount = *req.TotalAmount
		due.PaidAmount = paid
		due.PendingAmount = pending
		due.Status = deriveStatus(paid, pending)
	}
	if req.Notes != nil {
		due.Notes = req.Notes
	}

	if err := s.repo.Update(ctx, due); err != nil {
		return nil, err
	}
	return dueToResponse(due), nil
}

func (s *dueService) DeleteDue(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrDueNotFound
	}
	return s.repo.Delete(ctx, id)
}

// AddPayment appends a payment row and folds it into the ledger amounts in
// one transaction. A payment larger than the pending balance is rejected
// outright, naming the maximum allowed.
func (s *dueService) AddPayment(ctx context.Context, id uuid.UUID, req dto.AddPaymentRequest) (*dto.AddDuePaymentResponse, error) {
	due, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrDueNotFound
	}
	if !req.Amount.GreaterThan(decimal.Zero) {
		return nil, errors.New("payment amount must be greater than 0")
	}
	if req.Amount.GreaterThan(due.PendingAmount) {
		return nil, fmt.Errorf("payment amount cannot exceed pending balance of %s", due.PendingAmount.StringFixed(2))
	}
	paymentDate, err := time.Parse("2006-01-02", req.PaymentDate)
	if err != nil {
		return nil, errors.New("invalid payment date")
	}
	method := req.PaymentMethod
	if method == "" {
		method = "cash"
	}

	payment := &model.DuePayment{
		DueID:         id,
		Amount:        req.Amount,
		PaymentDate:   paymentDate,
		PaymentMethod: method,
		Reference:     req.Reference,
		Notes:         req.Notes,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreatePaymentTx(tx, payment); err != nil {
			return err
		}
		due.PaidAmount = due.PaidAmount.Add(req.Amount)
		due.PendingAmount = due.TotalAmount.Sub(due.PaidAmount)
		if due.PendingAmount.LessThan(decimal.Zero) {
			due.PendingAmount = decimal.Zero
		}
		due.Status = deriveStatus(due.PaidAmount, due.PendingAmount)
		return s.repo.UpdateTx(tx, due)
	})
	if txErr != nil {
		return nil, txErr
	}

	due.Payments = append([]model.DuePayment{*payment}, due.Payments...)
	return &dto.AddDuePaymentResponse{
		Payment: paymentToResponse(payment),
		Due:     *dueToResponse(due),
		Message: "Payment added successfully",
	}, nil
}

func dueToResponse(d *model.Due) *dto.DueResponse {
	payments := make([]dto.PaymentResponse, 0, len(d.Payments))
	for i := range d.Payments {
		payments = append(payments, paymentToResponse(&d.Payments[i]))
	}
	var customer *dto.SaleCustomerResponse
	if d.Customer != nil {
		customer = &dto.SaleCustomerResponse{
			ID:      d.Customer.ID.String(),
			Name:    d.Customer.Name,
			Phone:   d.Customer.Phone,
			Address: d.Customer.Address,
		}
	}
	return &dto.DueResponse{
		ID:            d.ID.String(),
		SaleID:        d.SaleID.String(),
		Customer:      customer,
		TotalAmount:   d.TotalAmount,
		PaidAmount:    d.PaidAmount,
		PendingAmount: d.PendingAmount,
		Status:        d.Status,
		Notes:         d.Notes,
		Payments:      payments,
		CreatedAt:     d.CreatedAt.Format(time.RFC3339),
	}
}

func paymentToResponse(p *model.DuePayment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:            p.ID.String(),
		Amount:        p.Amount,
		PaymentDate:   p.PaymentDate.Format("2006-01-02"),
		PaymentMethod: p.PaymentMethod,
		Reference:     p.Reference,
		Notes:         p.Notes,
	}
}
