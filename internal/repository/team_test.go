//go:build integration
// +build integration

package repository_test

import (
	"testing"
	"time"

	"teamup-backend/internal/database/models"
	"teamup-backend/internal/repository"
	"teamup-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *repository.TeamRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = repository.NewTeamRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new team
func (suite *TeamRepositoryTestSuite) TestCreate() {
	team := suite.factories.Team.Secret(uuid.New(), "pw")

	err := suite.repo.Create(team)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, team.ID)
	suite.NotZero(team.CreatedAt)

	stored, err := suite.repo.GetByID(team.ID)
	suite.Require().NoError(err)
	suite.Equal(models.TeamStatusSecret, stored.Status)
	suite.Equal("pw", stored.Password)
}

// TestGetByIDNotFound tests retrieving a missing team
func (suite *TeamRepositoryTestSuite) TestGetByIDNotFound() {
	team, err := suite.repo.GetByID(uuid.New())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(team)
}

// TestGetByIDForUpdate tests the row-locking read inside a transaction
func (suite *TeamRepositoryTestSuite) TestGetByIDForUpdate() {
	team := suite.factories.Team.Create()
	suite.Require().NoError(suite.repo.Create(team))

	err := suite.baseTestSuite.DB.Transaction(func(tx *gorm.DB) error {
		locked, err := repository.NewTeamRepository(tx).GetByIDForUpdate(team.ID)
		if err != nil {
			return err
		}
		suite.Equal(team.ID, locked.ID)
		return nil
	})

	suite.NoError(err)
}

// TestList tests filtering teams
func (suite *TeamRepositoryTestSuite) TestList() {
	owner := uuid.New()
	now := time.Now()

	alpha := suite.factories.Team.WithOwner(owner)
	alpha.Name = "Alpha Hackers"
	alpha.Description = "weekend hackathon"
	alpha.MaxNum = 3

	beta := suite.factories.Team.WithName("Beta")
	beta.Description = "study group for hackers"
	beta.Status = models.TeamStatusPrivate

	expired := suite.factories.Team.Expired(owner)
	expired.Name = "Old Hackers"

	for _, team := range []*models.Team{alpha, beta, expired} {
		suite.Require().NoError(suite.repo.Create(team))
	}

	suite.T().Run("Search text matches name or description", func(t *testing.T) {
		teams, err := suite.repo.List(repository.TeamFilter{SearchText: "hackers"})
		suite.NoError(err)
		suite.Len(teams, 3)
	})

	suite.T().Run("Active teams only", func(t *testing.T) {
		teams, err := suite.repo.List(repository.TeamFilter{SearchText: "hackers", ActiveAt: &now})
		suite.NoError(err)
		suite.Len(teams, 2)
	})

	suite.T().Run("Status filter", func(t *testing.T) {
		teams, err := suite.repo.List(repository.TeamFilter{
			Statuses: []models.TeamStatus{models.TeamStatusPublic, models.TeamStatusSecret},
			ActiveAt: &now,
		})
		suite.NoError(err)
		suite.Len(teams, 1)
		suite.Equal(alpha.ID, teams[0].ID)
	})

	suite.T().Run("Owner and capacity", func(t *testing.T) {
		maxNum := 3
		teams, err := suite.repo.List(repository.TeamFilter{OwnerID: &owner, MaxNum: &maxNum})
		suite.NoError(err)
		suite.Len(teams, 1)
		suite.Equal(alpha.ID, teams[0].ID)
	})

	suite.T().Run("IDs and pagination", func(t *testing.T) {
		teams, err := suite.repo.List(repository.TeamFilter{IDs: []uuid.UUID{alpha.ID, beta.ID}, Limit: 1})
		suite.NoError(err)
		suite.Len(teams, 1)
	})
}

// TestCountByOwner tests counting owned teams
func (suite *TeamRepositoryTestSuite) TestCountByOwner() {
	owner := uuid.New()
	for i := 0; i < 3; i++ {
		suite.Require().NoError(suite.repo.Create(suite.factories.Team.WithOwner(owner)))
	}
	suite.Require().NoError(suite.repo.Create(suite.factories.Team.Create()))

	count, err := suite.repo.CountByOwner(owner)

	suite.NoError(err)
	suite.Equal(int64(3), count)
}

// TestUpdateOwner tests leadership reassignment
func (suite *TeamRepositoryTestSuite) TestUpdateOwner() {
	team := suite.factories.Team.Create()
	suite.Require().NoError(suite.repo.Create(team))
	successor := uuid.New()

	suite.NoError(suite.repo.UpdateOwner(team.ID, successor))

	stored, err := suite.repo.GetByID(team.ID)
	suite.Require().NoError(err)
	suite.Equal(successor, stored.OwnerID)

	suite.ErrorIs(suite.repo.UpdateOwner(uuid.New(), successor), gorm.ErrRecordNotFound)
}

// TestUpdateAndDelete tests column-scoped updates and deleting a team
func (suite *TeamRepositoryTestSuite) TestUpdateAndDelete() {
	team := suite.factories.Team.Create()
	suite.Require().NoError(suite.repo.Create(team))
	successor := uuid.New()
	suite.Require().NoError(suite.repo.UpdateOwner(team.ID, successor))

	// the owner column is not part of the update and keeps its newer value
	suite.NoError(suite.repo.Update(team.ID, map[string]interface{}{"name": "Renamed"}))

	stored, err := suite.repo.GetByID(team.ID)
	suite.Require().NoError(err)
	suite.Equal("Renamed", stored.Name)
	suite.Equal(successor, stored.OwnerID)
	suite.Equal(team.Description, stored.Description)

	suite.NoError(suite.repo.Delete(team.ID))
	_, err = suite.repo.GetByID(team.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	// updating a deleted team does not bring it back
	suite.ErrorIs(suite.repo.Update(team.ID, map[string]interface{}{"name": "Again"}), gorm.ErrRecordNotFound)
	_, err = suite.repo.GetByID(team.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestTeamRepositoryTestSuite runs the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
