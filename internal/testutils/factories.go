package testutils

import (
	"fmt"
	"time"

	"teamup-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserFactory provides methods to create test User data
type UserFactory struct {
	seq int
}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values and a unique account
func (f *UserFactory) Create() *models.User {
	f.seq++
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username: fmt.Sprintf("Test User %d", f.seq),
		Account:  fmt.Sprintf("testuser%d-%s", f.seq, uuid.NewString()[:8]),
		Email:    fmt.Sprintf("testuser%d@example.com", f.seq),
		Profile:  "A test user",
		Role:     models.UserRoleUser,
		Tags:     datatypes.JSONSlice[string]{},
	}
}

// WithTags sets the user's tags
func (f *UserFactory) WithTags(tags ...string) *models.User {
	user := f.Create()
	user.Tags = datatypes.JSONSlice[string](tags)
	return user
}

// WithAccount sets a custom account
func (f *UserFactory) WithAccount(account string) *models.User {
	user := f.Create()
	user.Account = account
	return user
}

// Admin creates a user with the admin role
func (f *UserFactory) Admin() *models.User {
	user := f.Create()
	user.Role = models.UserRoleAdmin
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a public, non-expiring test Team
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Test Team",
		Description: "A test team for testing purposes",
		MaxNum:      5,
		Status:      models.TeamStatusPublic,
		OwnerID:     uuid.New(),
	}
}

// WithOwner sets the owner of the team
func (f *TeamFactory) WithOwner(ownerID uuid.UUID) *models.Team {
	team := f.Create()
	team.OwnerID = ownerID
	return team
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// Secret creates a secret team guarded by password
func (f *TeamFactory) Secret(ownerID uuid.UUID, password string) *models.Team {
	team := f.WithOwner(ownerID)
	team.Status = models.TeamStatusSecret
	team.Password = password
	return team
}

// Expired creates a team whose expire time has already passed
func (f *TeamFactory) Expired(ownerID uuid.UUID) *models.Team {
	team := f.WithOwner(ownerID)
	expired := time.Now().Add(-time.Hour)
	team.ExpireTime = &expired
	return team
}

// MembershipFactory provides methods to create test Membership data
type MembershipFactory struct{}

// NewMembershipFactory creates a new MembershipFactory
func NewMembershipFactory() *MembershipFactory {
	return &MembershipFactory{}
}

// Create creates a membership joined now
func (f *MembershipFactory) Create(userID, teamID uuid.UUID) *models.Membership {
	return f.JoinedAt(userID, teamID, time.Now())
}

// JoinedAt creates a membership with an explicit join time
func (f *MembershipFactory) JoinedAt(userID, teamID uuid.UUID, joined time.Time) *models.Membership {
	return &models.Membership{
		UserID:   userID,
		TeamID:   teamID,
		JoinTime: joined,
	}
}

// FactorySet provides all factories in one place
type FactorySet struct {
	User       *UserFactory
	Team       *TeamFactory
	Membership *MembershipFactory
}

// NewFactorySet creates a new FactorySet with all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:       NewUserFactory(),
		Team:       NewTeamFactory(),
		Membership: NewMembershipFactory(),
	}
}
