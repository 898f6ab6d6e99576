package service

import (
	"fmt"
	"time"

	"company-directory/internal/cache"
	"company-directory/internal/repository"
)

// Cache keys for the dashboard aggregates
const (
	TotalCompaniesKey = "dashboard.total_companies"
	TotalEmployeesKey = "dashboard.total_employees"
)

// DashboardService serves the dashboard counts through the cache
type DashboardService struct {
	companyRepo  repository.CompanyRepositoryInterface
	employeeRepo repository.EmployeeRepositoryInterface
	store        cache.Store
	ttl          time.Duration
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(companyRepo repository.CompanyRepositoryInterface, employeeRepo repository.EmployeeRepositoryInterface, store cache.Store, ttl time.Duration) *DashboardService {
	return &DashboardService{
		companyRepo:  companyRepo,
		employeeRepo: employeeRepo,
		store:        store,
		ttl:          ttl,
	}
}

// DashboardStats holds the dashboard counts. They may lag writes by up to the cache TTL.
type DashboardStats struct {
	TotalCompanies int64 `json:"totalCompanies"`
	TotalEmployees int64 `json:"totalEmployees"`
}

// GetStats returns the cached company and employee counts
func (s *DashboardService) GetStats() (*DashboardStats, error) {
	companies, err := cache.Remember(s.store, TotalCompaniesKey, s.ttl, s.companyRepo.Count)
	if err != nil {
		return nil, fmt.Errorf("failed to count companies: %w", err)
	}

	employees, err := cache.Remember(s.store, TotalEmployeesKey, s.ttl, s.employeeRepo.Count)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}

	return &DashboardStats{
		TotalCompanies: companies,
		TotalEmployees: employees,
	}, nil
}

// Invalidate forgets both cached counts
func (s *DashboardService) Invalidate() {
	s.store.Forget(TotalCompaniesKey, TotalEmployeesKey)
}
