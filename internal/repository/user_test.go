package repository

import (
	"testing"

	"company-directory/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	openDB    func(t *testing.T) *gorm.DB
	repo      *UserRepository
	factories *testutils.FactorySet
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.repo = NewUserRepository(suite.openDB(suite.T()))
	suite.factories = testutils.NewFactorySet()
}

func (suite *UserRepositoryTestSuite) TestCreateAndLookup() {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(user))

	byID, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.Equal(user.Email, byID.Email)
	suite.True(byID.IsVerified())

	byEmail, err := suite.repo.GetByEmail(user.Email)
	suite.NoError(err)
	suite.Equal(user.ID, byEmail.ID)
}

func (suite *UserRepositoryTestSuite) TestUnverified() {
	user := suite.factories.User.Unverified()
	suite.Require().NoError(suite.repo.Create(user))

	loaded, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.False(loaded.IsVerified())
}

func (suite *UserRepositoryTestSuite) TestDuplicateEmail() {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(user))

	duplicate := suite.factories.User.Create()
	duplicate.Email = user.Email
	suite.Error(suite.repo.Create(duplicate))
}

func (suite *UserRepositoryTestSuite) TestNotFound() {
	_, err := suite.repo.GetByID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	_, err = suite.repo.GetByEmail("nobody@example.com")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}
