//go:build integration
// +build integration

package repository_test

import (
	"testing"

	"teamup-backend/internal/repository"
	"teamup-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *repository.UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = repository.NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGet tests creating users and reading them back with their tags
func (suite *UserRepositoryTestSuite) TestCreateAndGet() {
	user := suite.factories.User.WithTags("go", "redis")
	suite.Require().NoError(suite.repo.Create(user))

	byID, err := suite.repo.GetByID(user.ID)
	suite.Require().NoError(err)
	suite.Equal([]string{"go", "redis"}, []string(byID.Tags))

	byAccount, err := suite.repo.GetByAccount(user.Account)
	suite.Require().NoError(err)
	suite.Equal(user.ID, byAccount.ID)

	_, err = suite.repo.GetByID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestCreateDuplicateAccount tests the unique account constraint
func (suite *UserRepositoryTestSuite) TestCreateDuplicateAccount() {
	suite.Require().NoError(suite.repo.Create(suite.factories.User.WithAccount("alice")))

	err := suite.repo.Create(suite.factories.User.WithAccount("alice"))

	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestSearchByTags tests that every requested tag must be present
func (suite *UserRepositoryTestSuite) TestSearchByTags() {
	both := suite.factories.User.WithTags("go", "java", "python")
	onlyGo := suite.factories.User.WithTags("go")
	none := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(both))
	suite.Require().NoError(suite.repo.Create(onlyGo))
	suite.Require().NoError(suite.repo.Create(none))

	users, err := suite.repo.SearchByTags([]string{"go", "java"})
	suite.Require().NoError(err)
	suite.Require().Len(users, 1)
	suite.Equal(both.ID, users[0].ID)

	users, err = suite.repo.SearchByTags([]string{"go"})
	suite.Require().NoError(err)
	suite.Len(users, 2)
}

// TestListTaggedAndGetByIDs tests the candidate scan used for matching
func (suite *UserRepositoryTestSuite) TestListTaggedAndGetByIDs() {
	tagged := suite.factories.User.WithTags("go")
	untagged := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(tagged))
	suite.Require().NoError(suite.repo.Create(untagged))

	users, err := suite.repo.ListTagged()
	suite.Require().NoError(err)
	suite.Require().Len(users, 1)
	suite.Equal(tagged.ID, users[0].ID)
	suite.Equal([]string{"go"}, []string(users[0].Tags))

	byIDs, err := suite.repo.GetByIDs([]uuid.UUID{tagged.ID, untagged.ID, uuid.New()})
	suite.NoError(err)
	suite.Len(byIDs, 2)

	empty, err := suite.repo.GetByIDs(nil)
	suite.NoError(err)
	suite.Empty(empty)
}

// TestGetAll tests pagination
func (suite *UserRepositoryTestSuite) TestGetAll() {
	for i := 0; i < 5; i++ {
		suite.Require().NoError(suite.repo.Create(suite.factories.User.Create()))
	}

	users, total, err := suite.repo.GetAll(2, 2)

	suite.NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(users, 2)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
