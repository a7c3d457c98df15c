package service

import (
	"context"
	"errors"
	"time"

	"dokan/internal/dto"
	"dokan/internal/model"
	"dokan/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrEmployeeNotFound = errors.New("employee not found")

type EmployeeService interface {
	Create(ctx context.Context, req dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error)
	List(ctx context.Context) ([]dto.EmployeeResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type employeeService struct {
	repo repository.EmployeeRepository
}

func NewEmployeeService(repo repository.EmployeeRepository) EmployeeService {
	return &employeeService{repo: repo}
}

func (s *employeeService) Create(ctx context.Context, req dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, errors.New("an employee with this email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hireDate := time.Now()
	if req.HireDate != "" {
		var err error
		hireDate, err = time.Parse("2006-01-02", req.HireDate)
		if err != nil {
			return nil, errors.New("invalid hire date")
		}
	}

	e := &model.Employee{
		Name:     req.Name,
		Email:    req.Email,
		Position: req.Position,
		Salary:   req.Salary,
		HireDate: hireDate,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return employeeToResponse(e), nil
}

func (s *employeeService) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	employees, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		resp = append(resp, *employeeToResponse(&employees[i]))
	}
	return resp, nil
}

func (s *employeeService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrEmployeeNotFound
	}
	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Email != nil && *req.Email != e.Email {
		if existing, err := s.repo.FindByEmail(ctx, *req.Email); err == nil && existing.ID != id {
			return nil, errors.New("an employee with this email already exists")
		}
		e.Email = *req.Email
	}
	if req.Position != nil {
		e.Position = *req.Position
	}
	if req.Salary != nil {
		e.Salary = req.Salary
	}
	if req.HireDate != nil {
		hireDate, err := time.Parse("2006-01-02", *req.HireDate)
		if err != nil {
			return nil, errors.New("invalid hire date")
		}
		e.HireDate = hireDate
	}
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return employeeToResponse(e), nil
}

func (s *employeeService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrEmployeeNotFound
	}
	return s.repo.Delete(ctx, id)
}

func employeeToResponse(e *model.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:       e.ID.String(),
		Name:     e.Name,
		Email:    e.Email,
		Position: e.Position,
		Salary:   e.Salary,
		HireDate: e.HireDate.Format("2006-01-02"),
	}
}
