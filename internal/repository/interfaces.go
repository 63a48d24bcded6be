package repository

import (
	"context"

	"teamup-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByIDForUpdate(id uuid.UUID) (*models.Team, error)
	List(filter TeamFilter) ([]models.Team, error)
	CountByOwner(ownerID uuid.UUID) (int64, error)
	Update(id uuid.UUID, changes map[string]interface{}) error
	UpdateOwner(id, ownerID uuid.UUID) error
	Delete(id uuid.UUID) error
}

// MembershipRepositoryInterface defines the interface for membership repository operations
type MembershipRepositoryInterface interface {
	Create(membership *models.Membership) error
	Exists(userID, teamID uuid.UUID) (bool, error)
	CountByUser(userID uuid.UUID) (int64, error)
	CountByTeam(teamID uuid.UUID) (int64, error)
	CountByTeams(teamIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	ListByTeam(teamID uuid.UUID) ([]models.Membership, error)
	ListTeamIDsByUser(userID uuid.UUID) ([]uuid.UUID, error)
	Delete(userID, teamID uuid.UUID) error
	DeleteByTeam(teamID uuid.UUID) (int64, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByAccount(account string) (*models.User, error)
	GetByIDs(ids []uuid.UUID) ([]models.User, error)
	ListTagged() ([]models.User, error)
	SearchByTags(tags []string) ([]models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
}

// Store exposes the repositories and a transactional boundary over them
type Store interface {
	Teams() TeamRepositoryInterface
	Memberships() MembershipRepositoryInterface
	Users() UserRepositoryInterface
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

var (
	_ TeamRepositoryInterface       = (*TeamRepository)(nil)
	_ MembershipRepositoryInterface = (*MembershipRepository)(nil)
	_ UserRepositoryInterface       = (*UserRepository)(nil)
	_ Store                         = (*GormStore)(nil)
)
