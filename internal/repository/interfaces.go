package repository

import (
	"company-directory/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CompanyRepositoryInterface defines the interface for company repository operations
type CompanyRepositoryInterface interface {
	Create(company *models.Company) error
	GetByID(id uuid.UUID) (*models.Company, error)
	GetByName(name string) (*models.Company, error)
	GetByABN(abn string) (*models.Company, error)
	GetByEmail(email string) (*models.Company, error)
	ListWithEmployeeCount() ([]models.CompanySummary, error)
	GetWithEmployees(id uuid.UUID) (*models.Company, error)
	Update(company *models.Company) error
	Delete(id uuid.UUID) error
	Exists(id uuid.UUID) (bool, error)
	Count() (int64, error)
}

// EmployeeRepositoryInterface defines the interface for employee repository operations
type EmployeeRepositoryInterface interface {
	Create(employee *models.Employee) error
	GetByID(id uuid.UUID) (*models.Employee, error)
	Delete(id uuid.UUID) error
	Count() (int64, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}
