package service

import (
	"context"
	"time"

	"teamup-backend/internal/lock"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// LockAcquirer takes named locks with a bounded wait
type LockAcquirer interface {
	TryAcquire(ctx context.Context, key string, wait, lease time.Duration) (lock.Lease, bool, error)
}

// Cache stores JSON-serializable values under string keys
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(ctx context.Context, req *CreateTeamRequest, requester Requester) (*TeamResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*TeamResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateTeamRequest, requester Requester) (*TeamResponse, error)
	Delete(ctx context.Context, id uuid.UUID, requester Requester) error
	List(ctx context.Context, filter *TeamListFilter, requester Requester) ([]TeamView, error)
	ListMyCreated(ctx context.Context, filter *TeamListFilter, requester Requester) ([]TeamView, error)
	ListMyJoined(ctx context.Context, filter *TeamListFilter, requester Requester) ([]TeamView, error)
}

// MembershipServiceInterface defines the interface for membership service
type MembershipServiceInterface interface {
	Join(ctx context.Context, teamID uuid.UUID, req *JoinTeamRequest, requester Requester) error
	Quit(ctx context.Context, teamID uuid.UUID, requester Requester) (*QuitResult, error)
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	GetCurrent(ctx context.Context, requester Requester) (*UserView, error)
	SearchByTags(ctx context.Context, tags []string) ([]UserView, error)
	Match(ctx context.Context, requester Requester, num int) ([]UserView, error)
	Recommend(ctx context.Context, requester Requester, page, pageSize int) (*UserPage, error)
	WarmRecommendations(ctx context.Context, userID uuid.UUID, page, pageSize int) error
}
