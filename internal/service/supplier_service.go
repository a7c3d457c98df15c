package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dokan/internal/dto"
	"dokan/internal/model"
	"dokan/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrSupplierNotFound = errors.New("supplier not found")

type SupplierService interface {
	Create(ctx context.Context, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.SupplierResponse, error)
	List(ctx context.Context) ([]dto.SupplierResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateSupplierRequest) (*dto.SupplierResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type supplierService struct {
	repo repository.SupplierRepository
}

func NewSupplierService(repo repository.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

func (s *supplierService) Create(ctx context.Context, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.New("supplier name is required")
	}
	supplier := &model.Supplier{
		Name:          name,
		Email:         trimPtr(req.Email),
		Phone:         trimPtr(req.Phone),
		Address:       trimPtr(req.Address),
		ContactPerson: trimPtr(req.ContactPerson),
	}
	if err := s.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplierToResponse(supplier), nil
}

func (s *supplierService) Get(ctx context.Context, id uuid.UUID) (*dto.SupplierResponse, error) {
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrSupplierNotFound
	}
	return supplierToResponse(supplier), nil
}

func (s *supplierService) List(ctx context.Context) ([]dto.SupplierResponse, error) {
	suppliers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		resp = append(resp, *supplierToResponse(&suppliers[i]))
	}
	return resp, nil
}

func (s *supplierService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrSupplierNotFound
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, errors.New("supplier name is required")
		}
		supplier.Name = name
	}
	if req.Email != nil {
		supplier.Email = trimPtr(req.Email)
	}
	if req.Phone != nil {
		supplier.Phone = trimPtr(req.Phone)
	}
	if req.Address != nil {
		supplier.Address = trimPtr(req.Address)
	}
	if req.ContactPerson != nil {
		supplier.ContactPerson = trimPtr(req.ContactPerson)
	}
	if err := s.repo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplierToResponse(supplier), nil
}

// Delete refuses while purchases still reference the supplier so the payment
// ledger keeps its history.
func (s *supplierService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrSupplierNotFound
	}
	count, err := s.repo.CountPurchases(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("this supplier has %d purchase(s); delete those first", count)
	}
	return s.repo.Delete(ctx, id)
}

func supplierToResponse(s *model.Supplier) *dto.SupplierResponse {
	purchased, paid, pending := decimal.Zero, decimal.Zero, decimal.Zero
	for _, p := range s.Purchases {
		purchased = purchased.Add(p.TotalAmount)
		paid = paid.Add(p.PaidAmount)
		pending = pending.Add(p.PendingAmount)
	}
	return &dto.SupplierResponse{
		ID:             s.ID.String(),
		Name:           s.Name,
		Email:          s.Email,
		Phone:          s.Phone,
		Address:        s.Address,
		ContactPerson:  s.ContactPerson,
		PurchaseCount:  int64(len(s.Purchases)),
		TotalPurchased: purchased,
		TotalPaid:      paid,
		TotalPending:   pending,
	}
}
