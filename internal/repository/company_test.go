package repository

import (
	"testing"

	"company-directory/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CompanyRepositoryTestSuite tests the CompanyRepository
type CompanyRepositoryTestSuite struct {
	suite.Suite
	openDB    func(t *testing.T) *gorm.DB
	db        *gorm.DB
	repo      *CompanyRepository
	employees *EmployeeRepository
	factories *testutils.FactorySet
}

// SetupTest runs before each test
func (suite *CompanyRepositoryTestSuite) SetupTest() {
	suite.db = suite.openDB(suite.T())
	suite.repo = NewCompanyRepository(suite.db)
	suite.employees = NewEmployeeRepository(suite.db)
	suite.factories = testutils.NewFactorySet()
}

func (suite *CompanyRepositoryTestSuite) TestCreate() {
	company := suite.factories.Company.Create()

	err := suite.repo.Create(company)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, company.ID)
	suite.NotZero(company.CreatedAt)
	suite.NotZero(company.UpdatedAt)
}

func (suite *CompanyRepositoryTestSuite) TestCreateDuplicateUniqueColumns() {
	existing := suite.factories.Company.Create()
	suite.Require().NoError(suite.repo.Create(existing))

	suite.Error(suite.repo.Create(suite.factories.Company.WithName(existing.Name)))
	suite.Error(suite.repo.Create(suite.factories.Company.WithABN(existing.ABN)))
	suite.Error(suite.repo.Create(suite.factories.Company.WithEmail(existing.Email)))
}

func (suite *CompanyRepositoryTestSuite) TestGetByUniqueColumns() {
	company := suite.factories.Company.Create()
	suite.Require().NoError(suite.repo.Create(company))

	byID, err := suite.repo.GetByID(company.ID)
	suite.NoError(err)
	suite.Equal(company.Name, byID.Name)

	byName, err := suite.repo.GetByName(company.Name)
	suite.NoError(err)
	suite.Equal(company.ID, byName.ID)

	byABN, err := suite.repo.GetByABN(company.ABN)
	suite.NoError(err)
	suite.Equal(company.ID, byABN.ID)

	byEmail, err := suite.repo.GetByEmail(company.Email)
	suite.NoError(err)
	suite.Equal(company.ID, byEmail.ID)
}

func (suite *CompanyRepositoryTestSuite) TestGetNotFound() {
	_, err := suite.repo.GetByID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	_, err = suite.repo.GetByName("nobody")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	_, err = suite.repo.GetByABN("00000000000")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	_, err = suite.repo.GetByEmail("nobody@example.com")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *CompanyRepositoryTestSuite) TestListWithEmployeeCount() {
	busy := suite.factories.Company.Create()
	idle := suite.factories.Company.Create()
	suite.Require().NoError(suite.repo.Create(busy))
	suite.Require().NoError(suite.repo.Create(idle))
	for i := 0; i < 2; i++ {
		suite.Require().NoError(suite.employees.Create(suite.factories.Employee.WithCompany(busy.ID)))
	}

	summaries, err := suite.repo.ListWithEmployeeCount()

	suite.NoError(err)
	suite.Len(summaries, 2)
	counts := map[uuid.UUID]int64{}
	for _, s := range summaries {
		counts[s.ID] = s.EmployeesCount
	}
	suite.Equal(int64(2), counts[busy.ID])
	suite.Equal(int64(0), counts[idle.ID])
}

func (suite *CompanyRepositoryTestSuite) TestListEmpty() {
	summaries, err := suite.repo.ListWithEmployeeCount()

	suite.NoError(err)
	suite.NotNil(summaries)
	suite.Empty(summaries)
}

func (suite *CompanyRepositoryTestSuite) TestGetWithEmployees() {
	company := suite.factories.Company.Create()
	other := suite.factories.Company.Create()
	suite.Require().NoError(suite.repo.Create(company))
	suite.Require().NoError(suite.repo.Create(other))
	suite.Require().NoError(suite.employees.Create(suite.factories.Employee.WithCompany(company.ID)))
	suite.Require().NoError(suite.employees.Create(suite.factories.Employee.WithCompany(other.ID)))

	loaded, err := suite.repo.GetWithEmployees(company.ID)

	suite.NoError(err)
	suite.Len(loaded.Employees, 1)
	suite.Equal(company.ID, loaded.Employees[0].CompanyID)
}

func (suite *CompanyRepositoryTestSuite) TestUpdate() {
	company := suite.factories.Company.Create()
	suite.Require().NoError(suite.repo.Create(company))

	company.Address = "1 New St"
	suite.NoError(suite.repo.Update(company))

	reloaded, err := suite.repo.GetByID(company.ID)
	suite.NoError(err)
	suite.Equal("1 New St", reloaded.Address)
}

func (suite *CompanyRepositoryTestSuite) TestExistsAndCount() {
	company := suite.factories.Company.Create()
	suite.Require().NoError(suite.repo.Create(company))

	exists, err := suite.repo.Exists(company.ID)
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.Exists(uuid.New())
	suite.NoError(err)
	suite.False(exists)

	count, err := suite.repo.Count()
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

func (suite *CompanyRepositoryTestSuite) TestDelete() {
	company := suite.factories.Company.Create()
	suite.Require().NoError(suite.repo.Create(company))

	suite.NoError(suite.repo.Delete(company.ID))

	_, err := suite.repo.GetByID(company.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}
