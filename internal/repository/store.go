package repository

import (
	"context"

	"gorm.io/gorm"
)

// GormStore groups the repositories over one gorm handle
type GormStore struct {
	db          *gorm.DB
	teams       *TeamRepository
	memberships *MembershipRepository
	users       *UserRepository
}

// NewGormStore creates a store over db
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db:          db,
		teams:       NewTeamRepository(db),
		memberships: NewMembershipRepository(db),
		users:       NewUserRepository(db),
	}
}

func (s *GormStore) Teams() TeamRepositoryInterface {
	return s.teams
}

func (s *GormStore) Memberships() MembershipRepositoryInterface {
	return s.memberships
}

func (s *GormStore) Users() UserRepositoryInterface {
	return s.users
}

// Transaction runs fn against a store bound to a single database transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
func (s *GormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGormStore(tx))
	})
}
