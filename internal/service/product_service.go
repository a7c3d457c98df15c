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
	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	Reactivate(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo     repository.ProductRepository
	saleRepo repository.SaleRepository
}

func NewProductService(repo repository.ProductRepository, saleRepo repository.SaleRepository) ProductService {
	return &productService{repo: repo, saleRepo: saleRepo}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.New("product name is required")
	}
	if _, err := s.repo.FindByName(ctx, name); err == nil {
		return nil, errors.New("a product with this name already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	barcode := trimPtr(req.Barcode)
	if barcode != nil {
		if _, err := s.repo.FindByBarcode(ctx, *barcode); err == nil {
			return nil, errors.New("a product with this barcode already exists")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	var categoryID *uuid.UUID
	if req.CategoryID != nil && *req.CategoryID != "" {
		cid, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid categoryId: %w", err)
		}
		categoryID = &cid
	}

	minStock := 5
	if req.MinStock != nil {
		minStock = *req.MinStock
	}

	p := &model.Product{
		Name:          name,
		Description:   trimPtr(req.Description),
		Barcode:       barcode,
		CategoryID:    categoryID,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		InitialStock:  req.Stock,
		Stock:         req.Stock,
		MinStock:      minStock,
		Active:        true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrProductNotFound
	}
	return productToResponse(p), nil
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, *productToResponse(&products[i]))
	}
	return &dto.ProductListResponse{Data: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name != p.Name {
			if existing, err := s.repo.FindByName(ctx, name); err == nil && existing.ID != id {
				return nil, errors.New("a product with this name already exists")
			}
			p.Name = name
		}
	}
	if req.Barcode != nil {
		barcode := trimPtr(req.Barcode)
		if barcode != nil && (p.Barcode == nil || *barcode != *p.Barcode) {
			if existing, err := s.repo.FindByBarcode(ctx, *barcode); err == nil && existing.ID != id {
				return nil, errors.New("a product with this barcode already exists")
			}
		}
		p.Barcode = barcode
	}
	if req.Description != nil {
		p.Description = trimPtr(req.Description)
	}
	if req.CategoryID != nil {
		if *req.CategoryID == "" {
			p.CategoryID = nil
		} else {
			cid, err := uuid.Parse(*req.CategoryID)
			if err != nil {
				return nil, fmt.Errorf("invalid categoryId: %w", err)
			}
			p.CategoryID = &cid
		}
		p.Category = nil
	}
	if req.PurchasePrice != nil {
		p.PurchasePrice = *req.PurchasePrice
	}
	if req.SellingPrice != nil {
		p.SellingPrice = *req.SellingPrice
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.MinStock != nil {
		p.MinStock = *req.MinStock
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

// Delete removes a product permanently. Products already referenced by sale
// items cannot be deleted — deactivate them instead so sale history stays
// intact.
func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrProductNotFound
	}
	count, err := s.saleRepo.CountByProduct(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.New("this product is associated with existing sales and cannot be deleted; consider deactivating it instead")
	}
	return s.repo.Delete(ctx, id)
}

func (s *productService) Deactivate(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrProductNotFound
	}
	return s.repo.SetActive(ctx, id, false)
}

func (s *productService) Reactivate(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrProductNotFound
	}
	return s.repo.SetActive(ctx, id, true)
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	var categoryID, category *string
	if p.CategoryID != nil {
		cid := p.CategoryID.String()
		categoryID = &cid
	}
	if p.Category != nil {
		category = &p.Category.Name
	}
	return &dto.ProductResponse{
		ID:            p.ID.String(),
		Name:          p.Name,
		Description:   p.Description,
		Barcode:       p.Barcode,
		CategoryID:    categoryID,
		Category:      category,
		PurchasePrice: p.PurchasePrice,
		SellingPrice:  p.SellingPrice,
		InitialStock:  p.InitialStock,
		Stock:         p.Stock,
		MinStock:      p.MinStock,
		Active:        p.Active,
	}
}
