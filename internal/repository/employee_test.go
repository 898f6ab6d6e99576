package repository

import (
	"testing"

	"company-directory/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// EmployeeRepositoryTestSuite tests the EmployeeRepository
type EmployeeRepositoryTestSuite struct {
	suite.Suite
	openDB    func(t *testing.T) *gorm.DB
	repo      *EmployeeRepository
	companies *CompanyRepository
	factories *testutils.FactorySet
	companyID uuid.UUID
}

// SetupTest runs before each test
func (suite *EmployeeRepositoryTestSuite) SetupTest() {
	db := suite.openDB(suite.T())
	suite.repo = NewEmployeeRepository(db)
	suite.companies = NewCompanyRepository(db)
	suite.factories = testutils.NewFactorySet()

	company := suite.factories.Company.Create()
	suite.Require().NoError(suite.companies.Create(company))
	suite.companyID = company.ID
}

func (suite *EmployeeRepositoryTestSuite) TestCreateAndGet() {
	employee := suite.factories.Employee.WithCompany(suite.companyID)

	suite.Require().NoError(suite.repo.Create(employee))
	suite.NotEqual(uuid.Nil, employee.ID)

	loaded, err := suite.repo.GetByID(employee.ID)
	suite.NoError(err)
	suite.Equal(employee.Email, loaded.Email)
	suite.Equal(suite.companyID, loaded.CompanyID)
}

func (suite *EmployeeRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *EmployeeRepositoryTestSuite) TestDeleteAndCount() {
	kept := suite.factories.Employee.WithCompany(suite.companyID)
	removed := suite.factories.Employee.WithCompany(suite.companyID)
	suite.Require().NoError(suite.repo.Create(kept))
	suite.Require().NoError(suite.repo.Create(removed))

	suite.NoError(suite.repo.Delete(removed.ID))

	_, err := suite.repo.GetByID(removed.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	count, err := suite.repo.Count()
	suite.NoError(err)
	suite.Equal(int64(1), count)
}
