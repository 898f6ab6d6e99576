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

// CompanyService handles business logic for companies
type CompanyService struct {
	repo        repository.CompanyRepositoryInterface
	validator   *validation.Validator
	invalidator CacheInvalidator
}

// NewCompanyService creates a new company service
func NewCompanyService(repo repository.CompanyRepositoryInterface, validator *validation.Validator) *CompanyService {
	return &CompanyService{
		repo:      repo,
		validator: validator,
	}
}

// WithInvalidator makes every successful write forget cached aggregates
func (s *CompanyService) WithInvalidator(invalidator CacheInvalidator) *CompanyService {
	s.invalidator = invalidator
	return s
}

// CompanyRequest represents the company create and update form
type CompanyRequest struct {
	Name    string `json:"name" form:"name" validate:"required,max=255" example:"Acme Pty Ltd"`
	ABN     string `json:"abn" form:"abn" validate:"required,len=11,number" example:"12345678901"`
	Email   string `json:"email" form:"email" validate:"required,email,max=255" example:"info@acme.example.com"`
	Address string `json:"address" form:"address" validate:"required,max=255" example:"1 George St, Sydney NSW 2000"`
}

// Normalize trims surrounding whitespace from every field
func (r *CompanyRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.ABN = strings.TrimSpace(r.ABN)
	r.Email = strings.TrimSpace(r.Email)
	r.Address = strings.TrimSpace(r.Address)
}

// Old returns the submitted values for re-populating the form
func (r *CompanyRequest) Old() map[string]string {
	return map[string]string{
		"name":    r.Name,
		"abn":     r.ABN,
		"email":   r.Email,
		"address": r.Address,
	}
}

// CompanyResponse represents the response for company operations
type CompanyResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	ABN       string    `json:"abn"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// CompanyListItem is one row of the companies index
type CompanyListItem struct {
	CompanyResponse
	EmployeesCount int64 `json:"employees_count"`
}

// CompanyDetailResponse is a company with its employees for the edit page
type CompanyDetailResponse struct {
	CompanyResponse
	Employees []EmployeeResponse `json:"employees"`
}

// List returns all companies with their employee counts
func (s *CompanyService) List() ([]CompanyListItem, error) {
	summaries, err := s.repo.ListWithEmployeeCount()
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	items := make([]CompanyListItem, len(summaries))
	for i, summary := range summaries {
		items[i] = CompanyListItem{
			CompanyResponse: CompanyResponse{
				ID:        summary.ID,
				Name:      summary.Name,
				ABN:       summary.ABN,
				Email:     summary.Email,
				Address:   summary.Address,
				CreatedAt: summary.CreatedAt.Format(time.RFC3339),
				UpdatedAt: summary.UpdatedAt.Format(time.RFC3339),
			},
			EmployeesCount: summary.EmployeesCount,
		}
	}
	return items, nil
}

// Create validates and stores a new company
func (s *CompanyService) Create(req *CompanyRequest) (*CompanyResponse, error) {
	req.Normalize()

	verrs := s.validator.Struct(req)
	if err := s.checkUnique(req, uuid.Nil, &verrs); err != nil {
		return nil, err
	}
	if len(verrs) > 0 {
		return nil, verrs
	}

	company := &models.Company{
		Name:    req.Name,
		ABN:     req.ABN,
		Email:   req.Email,
		Address: req.Address,
	}

	if err := s.repo.Create(company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	s.invalidate()

	return toCompanyResponse(company), nil
}

// GetWithEmployees retrieves a company and its employees
func (s *CompanyService) GetWithEmployees(id uuid.UUID) (*CompanyDetailResponse, error) {
	company, err := s.repo.GetWithEmployees(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	employees := make([]EmployeeResponse, len(company.Employees))
	for i := range company.Employees {
		employees[i] = *toEmployeeResponse(&company.Employees[i])
	}

	return &CompanyDetailResponse{
		CompanyResponse: *toCompanyResponse(company),
		Employees:       employees,
	}, nil
}

// Update validates and applies changes to an existing company.
// Uniqueness checks ignore the company itself.
func (s *CompanyService) Update(id uuid.UUID, req *CompanyRequest) (*CompanyResponse, error) {
	company, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	req.Normalize()

	verrs := s.validator.Struct(req)
	if err := s.checkUnique(req, company.ID, &verrs); err != nil {
		return nil, err
	}
	if len(verrs) > 0 {
		return nil, verrs
	}

	company.Name = req.Name
	company.ABN = req.ABN
	company.Email = req.Email
	company.Address = req.Address

	if err := s.repo.Update(company); err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	s.invalidate()

	return toCompanyResponse(company), nil
}

// checkUnique adds a uniqueness error for every field that passed its format
// rules but is already used by a company other than ignoreID
func (s *CompanyService) checkUnique(req *CompanyRequest, ignoreID uuid.UUID, verrs *apperrors.ValidationErrors) error {
	checks := []struct {
		field string
		value string
		find  func(string) (*models.Company, error)
	}{
		{"name", req.Name, s.repo.GetByName},
		{"abn", req.ABN, s.repo.GetByABN},
		{"email", req.Email, s.repo.GetByEmail},
	}

	for _, check := range checks {
		if verrs.Has(check.field) {
			continue
		}
		existing, err := check.find(check.value)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check existing company by %s: %w", check.field, err)
		}
		if existing != nil && existing.ID != ignoreID {
			verrs.Add(check.field, validation.UniqueMessage(check.field))
		}
	}
	return nil
}

func (s *CompanyService) invalidate() {
	if s.invalidator != nil {
		s.invalidator.Invalidate()
	}
}

func toCompanyResponse(company *models.Company) *CompanyResponse {
	return &CompanyResponse{
		ID:        company.ID,
		Name:      company.Name,
		ABN:       company.ABN,
		Email:     company.Email,
		Address:   company.Address,
		CreatedAt: company.CreatedAt.Format(time.RFC3339),
		UpdatedAt: company.UpdatedAt.Format(time.RFC3339),
	}
}
