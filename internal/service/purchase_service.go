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

var ErrPurchaseNotFound = errors.New("purchase not found")

type PurchaseService interface {
	CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error)
	GetPurchase(ctx context.Context, id uuid.UUID) (*dto.PurchaseResponse, error)
	ListPurchases(ctx context.Context) ([]dto.PurchaseResponse, error)
	DeletePurchase(ctx context.Context, id uuid.UUID) error
	AddPayment(ctx context.Context, id uuid.UUID, req dto.AddPaymentRequest) (*dto.AddPurchasePaymentResponse, error)
}

type purchaseService struct {
	repo         repository.PurchaseRepository
	supplierRepo repository.SupplierRepository
}

func NewPurchaseService(repo repository.PurchaseRepository, supplierRepo repository.SupplierRepository) PurchaseService {
	return &purchaseService{repo: repo, supplierRepo: supplierRepo}
}

func (s *purchaseService) CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	supplierID, err := uuid.Parse(req.SupplierID)
	if err != nil {
		return nil, fmt.Errorf("invalid supplierId: %w", err)
	}
	if !req.TotalAmount.GreaterThan(decimal.Zero) {
		return nil, errors.New("total amount must be greater than 0")
	}
	if _, err := s.supplierRepo.FindByID(ctx, supplierID); err != nil {
		return nil, errors.New("supplier not found")
	}

	purchaseDate := time.Now()
	if req.PurchaseDate != "" {
		purchaseDate, err = time.Parse("2006-01-02", req.PurchaseDate)
		if err != nil {
			return nil, errors.New("invalid purchase date")
		}
	}

	purchase := &model.Purchase{
		SupplierID:    supplierID,
		TotalAmount:   req.TotalAmount,
		PaidAmount:    decimal.Zero,
		PendingAmount: req.TotalAmount,
		Status:        deriveStatus(decimal.Zero, req.TotalAmount),
		InvoiceNumber: req.InvoiceNumber,
		Notes:         req.Notes,
		PurchaseDate:  purchaseDate,
	}
	if err := s.repo.Create(ctx, purchase); err != nil {
		return nil, err
	}
	return purchaseToResponse(purchase), nil
}

func (s *purchaseService) GetPurchase(ctx context.Context, id uuid.UUID) (*dto.PurchaseResponse, error) {
	purchase, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrPurchaseNotFound
	}
	return purchaseToResponse(purchase), nil
}

func (s *purchaseService) ListPurchases(ctx context.Context) ([]dto.PurchaseResponse, error) {
	purchases, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PurchaseResponse, 0, len(purchases))
	for i := range purchases {
		resp = append(resp, *purchaseToResponse(&purchases[i]))
	}
	return resp, nil
}

func (s *purchaseService) DeletePurchase(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrPurchaseNotFound
	}
	return s.repo.Delete(ctx, id)
}

// AddPayment mirrors the due-side ledger exactly: same overpay guard, same
// transactional append-and-recompute, same derived status rule.
func (s *purchaseService) AddPayment(ctx context.Context, id uuid.UUID, req dto.AddPaymentRequest) (*dto.AddPurchasePaymentResponse, error) {
	purchase, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrPurchaseNotFound
	}
	if !req.Amount.GreaterThan(decimal.Zero) {
		return nil, errors.New("payment amount must be greater than 0")
	}
	if req.Amount.GreaterThan(purchase.PendingAmount) {
		return nil, fmt.Errorf("payment amount cannot exceed pending balance of %s", purchase.PendingAmount.StringFixed(2))
	}
	paymentDate, err := time.Parse("2006-01-02", req.PaymentDate)
	if err != nil {
		return nil, errors.New("invalid payment date")
	}
	method := req.PaymentMethod
	if method == "" {
		method = "cash"
	}

	payment := &model.PurchasePayment{
		PurchaseID:    id,
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
		purchase.PaidAmount = purchase.PaidAmount.Add(req.Amount)
		purchase.PendingAmount = purchase.TotalAmount.Sub(purchase.PaidAmount)
		if purchase.PendingAmount.LessThan(decimal.Zero) {
			purchase.PendingAmount = decimal.Zero
		}
		purchase.Status = deriveStatus(purchase.PaidAmount, purchase.PendingAmount)
		return s.repo.UpdateTx(tx, purchase)
	})
	if txErr != nil {
		return nil, txErr
	}

	purchase.Payments = append([]model.PurchasePayment{*payment}, purchase.Payments...)
	return &dto.AddPurchasePaymentResponse{
		Payment:  purchasePaymentToResponse(payment),
		Purchase: *purchaseToResponse(purchase),
		Message:  "Payment added successfully",
	}, nil
}

func purchaseToResponse(p *model.Purchase) *dto.PurchaseResponse {
	payments := make([]dto.PaymentResponse, 0, len(p.Payments))
	for i := range p.Payments {
		payments = append(payments, purchasePaymentToResponse(&p.Payments[i]))
	}
	supplier := ""
	if p.Supplier != nil {
		supplier = p.Supplier.Name
	}
	return &dto.PurchaseResponse{
		ID:            p.ID.String(),
		SupplierID:    p.SupplierID.String(),
		Supplier:      supplier,
		TotalAmount:   p.TotalAmount,
		PaidAmount:    p.PaidAmount,
		PendingAmount: p.PendingAmount,
		Status:        p.Status,
		InvoiceNumber: p.InvoiceNumber,
		Notes:         p.Notes,
		PurchaseDate:  p.PurchaseDate.Format("2006-01-02"),
		Payments:      payments,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
}

func purchasePaymentToResponse(p *model.PurchasePayment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:            p.ID.String(),
		Amount:        p.Amount,
		PaymentDate:   p.PaymentDate.Format("2006-01-02"),
		PaymentMethod: p.PaymentMethod,
		Reference:     p.Reference,
		Notes:         p.Notes,
	}
}
