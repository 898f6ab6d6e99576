package repository

import (
	"company-directory/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyRepository handles database operations for companies
type CompanyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Create creates a new company
func (r *CompanyRepository) Create(company *models.Company) error {
	return r.db.Create(company).Error
}

// GetByID retrieves a company by ID
func (r *CompanyRepository) GetByID(id uuid.UUID) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// GetByName retrieves a company by exact name
func (r *CompanyRepository) GetByName(name string) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// GetByABN retrieves a company by ABN
func (r *CompanyRepository) GetByABN(abn string) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, "abn = ?", abn).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// GetByEmail retrieves a company by exact email
func (r *CompanyRepository) GetByEmail(email string) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// ListWithEmployeeCount returns every company with its employee count in one query
func (r *CompanyRepository) ListWithEmployeeCount() ([]models.CompanySummary, error) {
	summaries := []models.CompanySummary{}
	err := r.db.Model(&models.Company{}).
		Select("companies.id, companies.name, companies.abn, companies.email, companies.address, " +
			"companies.created_at, companies.updated_at, COUNT(employees.id) AS employees_count").
		Joins("LEFT JOIN employees ON employees.company_id = companies.id").
		Group("companies.id, companies.name, companies.abn, companies.email, companies.address, companies.created_at, companies.updated_at").
		Order("companies.created_at ASC, companies.name ASC").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// GetWithEmployees retrieves a company with its employees loaded
func (r *CompanyRepository) GetWithEmployees(id uuid.UUID) (*models.Company, error) {
	var company models.Company
	err := r.db.
		Preload("Employees", func(db *gorm.DB) *gorm.DB {
			return db.Order("employees.created_at ASC")
		}).
		First(&company, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// Update updates a company
func (r *CompanyRepository) Update(company *models.Company) error {
	return r.db.Omit("Employees").Save(company).Error
}

// Delete deletes a company
func (r *CompanyRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Company{}, "id = ?", id).Error
}

// Exists reports whether a company with the given ID exists
func (r *CompanyRepository) Exists(id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Company{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count returns the total number of companies
func (r *CompanyRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Company{}).Count(&count).Error
	return count, err
}
