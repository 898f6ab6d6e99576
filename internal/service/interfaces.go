package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CompanyServiceInterface defines the interface for company service
type CompanyServiceInterface interface {
	List() ([]CompanyListItem, error)
	Create(req *CompanyRequest) (*CompanyResponse, error)
	GetWithEmployees(id uuid.UUID) (*CompanyDetailResponse, error)
	Update(id uuid.UUID, req *CompanyRequest) (*CompanyResponse, error)
}

// EmployeeServiceInterface defines the interface for employee service
type EmployeeServiceInterface interface {
	Create(req *CreateEmployeeRequest) (*EmployeeResponse, error)
	Delete(id uuid.UUID) error
}

// DashboardServiceInterface defines the interface for dashboard service
type DashboardServiceInterface interface {
	GetStats() (*DashboardStats, error)
	Invalidate()
}

// CacheInvalidator forgets cached aggregates after a write
type CacheInvalidator interface {
	Invalidate()
}
