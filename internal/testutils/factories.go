package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"company-directory/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is the plain-text password every factory user signs in with
const DefaultPassword = "password"

var sequence atomic.Int64

func next() int64 {
	return sequence.Add(1)
}

// CompanyFactory provides methods to create test Company data
type CompanyFactory struct{}

// NewCompanyFactory creates a new CompanyFactory
func NewCompanyFactory() *CompanyFactory {
	return &CompanyFactory{}
}

// Create returns an unsaved Company whose unique columns do not collide with earlier calls
func (f *CompanyFactory) Create() *models.Company {
	n := next()
	return &models.Company{
		Name:    fmt.Sprintf("Company %d", n),
		ABN:     fmt.Sprintf("%011d", n),
		Email:   fmt.Sprintf("company%d@example.com", n),
		Address: fmt.Sprintf("%d Test St", n),
	}
}

// WithID returns a company carrying a fixed ID and timestamps, as if loaded from the database
func (f *CompanyFactory) WithID(id uuid.UUID) *models.Company {
	company := f.Create()
	company.ID = id
	company.CreatedAt = time.Now()
	company.UpdatedAt = time.Now()
	return company
}

// WithName sets a custom name for the company
func (f *CompanyFactory) WithName(name string) *models.Company {
	company := f.Create()
	company.Name = name
	return company
}

// WithABN sets a custom ABN for the company
func (f *CompanyFactory) WithABN(abn string) *models.Company {
	company := f.Create()
	company.ABN = abn
	return company
}

// WithEmail sets a custom email for the company
func (f *CompanyFactory) WithEmail(email string) *models.Company {
	company := f.Create()
	company.Email = email
	return company
}

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new EmployeeFactory
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// Create returns an unsaved Employee without a company
func (f *EmployeeFactory) Create() *models.Employee {
	n := next()
	return &models.Employee{
		FirstName: "John",
		LastName:  fmt.Sprintf("Doe%d", n),
		Email:     fmt.Sprintf("employee%d@example.com", n),
		Address:   fmt.Sprintf("%d Main St", n),
	}
}

// WithCompany returns an employee belonging to the given company
func (f *EmployeeFactory) WithCompany(companyID uuid.UUID) *models.Employee {
	employee := f.Create()
	employee.CompanyID = companyID
	return employee
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create returns an unsaved, verified user whose password is DefaultPassword
func (f *UserFactory) Create() *models.User {
	n := next()
	verifiedAt := time.Now()
	return &models.User{
		Name:            fmt.Sprintf("Test User %d", n),
		Email:           fmt.Sprintf("user%d@example.com", n),
		PasswordHash:    mustHash(DefaultPassword),
		EmailVerifiedAt: &verifiedAt,
	}
}

// Unverified returns a user that has not verified their email address
func (f *UserFactory) Unverified() *models.User {
	user := f.Create()
	user.EmailVerifiedAt = nil
	return user
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}

// FactorySet provides access to all factories
type FactorySet struct {
	Company  *CompanyFactory
	Employee *EmployeeFactory
	User     *UserFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Company:  NewCompanyFactory(),
		Employee: NewEmployeeFactory(),
		User:     NewUserFactory(),
	}
}

// CompanyWithEmployees builds a company and n employees pointing at it.
// The company gets an ID up front so the employees can reference it before anything is saved.
func (fs *FactorySet) CompanyWithEmployees(n int) (*models.Company, []*models.Employee) {
	company := fs.Company.Create()
	company.ID = uuid.New()

	employees := make([]*models.Employee, n)
	for i := range employees {
		employees[i] = fs.Employee.WithCompany(company.ID)
	}
	return company, employees
}
