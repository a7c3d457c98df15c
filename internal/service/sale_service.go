package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dokan/internal/dto"
	"dokan/internal/model"
	"dokan/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrSaleNotFound lets handlers map a missing sale to a 404 instead of a
// generic 400.
var ErrSaleNotFound = errors.New("sale not found")

type SaleService interface {
	CreateSale(ctx context.Context, userID uuid.UUID, req dto.CreateSaleRequest) (*dto.SaleResponse, error)
	DeleteSale(ctx context.Context, id uuid.UUID) error
	GetSale(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error)
	ListSales(ctx context.Context, filter dto.SaleFilter) (*dto.SaleListResponse, error)
}

type saleService struct {
	repo        repository.SaleRepository
	productRepo repository.ProductRepository
	dueRepo     repository.DueRepository
}

func NewSaleService(
	repo repository.SaleRepository,
	productRepo repository.ProductRepository,
	dueRepo repository.DueRepository,
) SaleService {
	return &saleService{repo: repo, productRepo: productRepo, dueRepo: dueRepo}
}

// ── CreateSale ───────────────────────────────────────────────────────────────
// One ACID transaction:
//  1. Pre-flight: items non-empty (binding), total positive, every product
//     exists and has enough stock — no mutation happens on any failure.
//  2. BEGIN TX: create customer (when supplied), sale, line items; decrement
//     stock per item with a conditional update re-checked inside the tx.
//  3. COMMIT — or roll back everything on the first error.

func (s *saleService) CreateSale(ctx context.Context, userID uuid.UUID, req dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if !req.Total.GreaterThan(decimal.Zero) {
		return nil, errors.New("invalid total amount")
	}
	if req.Discount.LessThan(decimal.Zero) {
		return nil, errors.New("discount cannot be negative")
	}
	if req.Customer != nil && strings.TrimSpace(req.Customer.Phone) == "" {
		return nil, errors.New("customer phone is required")
	}

	// Resolve products and verify stock before touching the database.
	type resolvedItem struct {
		productID uuid.UUID
		name      string
		quantity  int
		price     decimal.Decimal
	}
	resolved := make([]resolvedItem, 0, len(req.Items))
	for _, item := range req.Items {
		pid, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("invalid productId: %w", err)
		}
		p, err := s.productRepo.FindByID(ctx, pid)
		if err != nil {
			return nil, fmt.Errorf("product not found: %s", item.ProductID)
		}
		if p.Stock < item.Quantity {
			return nil, fmt.Errorf("insufficient stock for %s", p.Name)
		}
		resolved = append(resolved, resolvedItem{
			productID: pid,
			name:      p.Name,
			quantity:  item.Quantity,
			price:     item.Price,
		})
	}

	var sale model.Sale
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		var customerID *uuid.UUID
		if req.Customer != nil {
			customer := &model.Customer{
				Phone:   strings.TrimSpace(req.Customer.Phone),
				Name:    trimPtr(req.Customer.Name),
				Address: trimPtr(req.Customer.Address),
			}
			if err := s.repo.CreateCustomerTx(tx, customer); err != nil {
				return err
			}
			customerID = &customer.ID
		}

		sale = model.Sale{
			UserID:     userID,
			CustomerID: customerID,
			Total:      req.Total,
			Discount:   req.Discount,
		}
		for _, r := range resolved {
			sale.Items = append(sale.Items, model.SaleItem{
				ProductID: r.productID,
				Quantity:  r.quantity,
				Price:     r.price,
			})
		}
		if err := s.repo.Create(ctx, tx, &sale); err != nil {
			return err
		}

		// The conditional decrement re-validates stock inside the tx, so a
		// concurrent sale of the same product aborts here instead of driving
		// stock negative.
		for _, r := range resolved {
			if err := s.productRepo.DecrementStockTx(tx, r.productID, r.quantity); err != nil {
				if errors.Is(err, repository.ErrStockConflict) {
					return fmt.Errorf("insufficient stock for %s", r.name)
				}
				return fmt.Errorf("updating stock for %s: %w", r.name, err)
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := saleToResponse(&sale)
	for i, r := range resolved {
		resp.Items[i].Product = r.name
	}
	return resp, nil
}

// ── DeleteSale ───────────────────────────────────────────────────────────────
// Inverse of CreateSale, in one transaction: restore each product's stock by
// its item quantity, delete the items, delete the sale. A sale that still has
// a due attached cannot be deleted — settle or remove the due first.

func (s *saleService) DeleteSale(ctx context.Context, id uuid.UUID) error {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ErrSaleNotFound
	}
	if _, err := s.dueRepo.FindBySaleID(ctx, id); err == nil {
		return errors.New("sale has an outstanding due; settle or delete the due first")
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for _, item := range sale.Items {
			if err := s.productRepo.IncrementStockTx(tx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		return s.repo.DeleteTx(tx, id)
	})
}

func (s *saleService) GetSale(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrSaleNotFound
	}
	return saleToResponse(sale), nil
}

func (s *saleService) ListSales(ctx context.Context, filter dto.SaleFilter) (*dto.SaleListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	sales, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		items = append(items, *saleToResponse(&sales[i]))
	}
	return &dto.SaleListResponse{Data: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func saleToResponse(s *model.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, item := range s.Items {
		name := ""
		if item.Product != nil {
			name = item.Product.Name
		}
		items = append(items, dto.SaleItemResponse{
			ProductID: item.ProductID.String(),
			Product:   name,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Subtotal:  item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
	}
	cashier := ""
	if s.User != nil {
		cashier = s.User.Name
	}
	var customer *dto.SaleCustomerResponse
	if s.Customer != nil {
		customer = &dto.SaleCustomerResponse{
			ID:      s.Customer.ID.String(),
			Name:    s.Customer.Name,
			Phone:   s.Customer.Phone,
			Address: s.Customer.Address,
		}
	}
	return &dto.SaleResponse{
		ID:        s.ID.String(),
		UserID:    s.UserID.String(),
		Cashier:   cashier,
		Customer:  customer,
		Items:     items,
		Total:     s.Total,
		Discount:  s.Discount,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
