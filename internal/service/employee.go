package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"company-directory/internal/database/models"
	apperrors "company-directory/internal/errors"
	"company-directory/internal/repository"
	"company-directory/internal/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeService handles business logic for employees
type EmployeeService struct {
	repo        repository.EmployeeRepositoryInterface
	companyRepo repository.CompanyRepositoryInterface
	validator   *validation.Validator
	invalidator CacheInvalidator
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(repo repository.EmployeeRepositoryInterface, companyRepo repository.CompanyRepositoryInterface, validator *validation.Validator) *EmployeeService {
	return &EmployeeService{
		repo:        repo,
		companyRepo: companyRepo,
		validator:   validator,
	}
}

// WithInvalidator makes every successful write forget cached aggregates
func (s *EmployeeService) WithInvalidator(invalidator CacheInvalidator) *EmployeeService {
	s.invalidator = invalidator
	return s
}

// CreateEmployeeRequest represents the add-employee form
type CreateEmployeeRequest struct {
	CompanyID string `json:"company_id" form:"company_id" validate:"required" example:"5b3f2c52-3c1b-4b7e-9a55-2f4d1f0f3a10"`
	FirstName string `json:"first_name" form:"first_name" validate:"required,max=255" example:"Jane"`
	LastName  string `json:"last_name" form:"last_name" validate:"required,max=255" example:"Citizen"`
	Email     string `json:"email" form:"email" validate:"required,email,max=255" example:"jane@acme.example.com"`
	Address   string `json:"address" form:"address" validate:"required,max=255" example:"2 Pitt St, Sydney NSW 2000"`
}

// Normalize trims surrounding whitespace from every field
func (r *CreateEmployeeRequest) Normalize() {
	r.CompanyID = strings.TrimSpace(r.CompanyID)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)
	r.Address = strings.TrimSpace(r.Address)
}

// Old returns the submitted values for re-populating the form
func (r *CreateEmployeeRequest) Old() map[string]string {
	return map[string]string{
		"company_id": r.CompanyID,
		"first_name": r.FirstName,
		"last_name":  r.LastName,
		"email":      r.Email,
		"address":    r.Address,
	}
}

// EmployeeResponse represents the response for employee operations
type EmployeeResponse struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"company_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// Create validates and stores a new employee of an existing company
func (s *EmployeeService) Create(req *CreateEmployeeRequest) (*EmployeeResponse, error) {
	req.Normalize()

	verrs := s.validator.Struct(req)

	var companyID uuid.UUID
	if !verrs.Has("company_id") {
		id, err := uuid.Parse(req.CompanyID)
		if err != nil {
			verrs.Add("company_id", validation.ExistsMessage("company_id"))
		} else {
			exists, err := s.companyRepo.Exists(id)
			if err != nil {
				return nil, fmt.Errorf("failed to check company: %w", err)
			}
			if !exists {
				verrs.Add("company_id", validation.ExistsMessage("company_id"))
			}
			companyID = id
		}
	}
	if len(verrs) > 0 {
		return nil, verrs
	}

	employee := &models.Employee{
		CompanyID: companyID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Address:   req.Address,
	}

	if err := s.repo.Create(employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	s.invalidate()

	return toEmployeeResponse(employee), nil
}

// Delete hard-deletes an employee
func (s *EmployeeService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	s.invalidate()

	return nil
}

func (s *EmployeeService) invalidate() {
	if s.invalidator != nil {
		s.invalidator.Invalidate()
	}
}

func toEmployeeResponse(employee *models.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:        employee.ID,
		CompanyID: employee.CompanyID,
		FirstName: employee.FirstName,
		LastName:  employee.LastName,
		Email:     employee.Email,
		Address:   employee.Address,
		CreatedAt: employee.CreatedAt.Format(time.RFC3339),
		UpdatedAt: employee.UpdatedAt.Format(time.RFC3339),
	}
}
