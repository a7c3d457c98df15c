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

var ErrCategoryNotFound = errors.New("category not found")

type CategoryService interface {
	Create(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	List(ctx context.Context) ([]dto.CategoryResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.New("category name is required")
	}
	if _, err := s.repo.FindByName(ctx, name); err == nil {
		return nil, errors.New("a category with this name already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	c := &model.Category{Name: name, Description: req.Description}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description}, nil
}

func (s *categoryService) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		count, err := s.repo.CountProducts(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		resp = append(resp, dto.CategoryResponse{
			ID: c.ID, Name: c.Name, Description: c.Description, ProductCount: count,
		})
	}
	return resp, nil
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrCategoryNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, errors.New("category name is required")
		}
		if name != c.Name {
			if existing, err := s.repo.FindByName(ctx, name); err == nil && existing.ID != id {
				return nil, errors.New("a category with this name already exists")
			}
			c.Name = name
		}
	}
	if req.Description != nil {
		c.Description = req.Description
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	count, _ := s.repo.CountProducts(ctx, id)
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description, ProductCount: count}, nil
}

// Delete refuses while any product still references the category, naming the
// count so the client can tell the user what to reassign.
func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrCategoryNotFound
	}
	count, err := s.repo.CountProducts(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("this category has %d product(s); reassign or delete the products first", count)
	}
	return s.repo.Delete(ctx, id)
}
