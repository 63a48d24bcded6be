package service

import (
	"context"
	"fmt"
	"time"

	"teamup-backend/internal/database/models"
	apperrors "teamup-backend/internal/errors"
	"teamup-backend/internal/logger"
	"teamup-backend/internal/metrics"
	"teamup-backend/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const (
	maxMatchNum         = 20
	maxRecommendPerPage = 100
)

// UserService serves user lookups, tag search, similarity matches and cached recommendations
type UserService struct {
	users    repository.UserRepositoryInterface
	cache    Cache
	cacheTTL time.Duration
	group    singleflight.Group
}

// NewUserService creates a new user service. cache may be nil, in which case
// recommendations are always read from the database.
func NewUserService(users repository.UserRepositoryInterface, cache Cache, cacheTTL time.Duration) *UserService {
	return &UserService{
		users:    users,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

var _ UserServiceInterface = (*UserService)(nil)

// UserView is the safety-masked form of a user; it never carries credentials
type UserView struct {
	ID        uuid.UUID       `json:"id"`
	Username  string          `json:"username"`
	Account   string          `json:"account"`
	AvatarURL string          `json:"avatar_url"`
	Gender    int             `json:"gender"`
	Phone     string          `json:"phone"`
	Email     string          `json:"email"`
	Profile   string          `json:"profile"`
	Role      models.UserRole `json:"role"`
	Tags      []string        `json:"tags"`
	CreatedAt time.Time       `json:"created_at"`
}

// UserPage represents a paginated list of users
type UserPage struct {
	Users    []UserView `json:"users"`
	Total    int64      `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
}

// RecommendCacheKey is the cache key of one recommendation page for a user
func RecommendCacheKey(userID uuid.UUID, page, pageSize int) string {
	return fmt.Sprintf("teamup:user:recommend:%s:%d:%d", userID, page, pageSize)
}

// GetCurrent returns the requester's own record
func (s *UserService) GetCurrent(ctx context.Context, requester Requester) (*UserView, error) {
	user, err := s.users.GetByID(requester.UserID)
	if err != nil {
		return nil, storageErr(err, apperrors.ErrUserNotFound)
	}
	return toUserView(user), nil
}

// SearchByTags returns users holding every one of tags
func (s *UserService) SearchByTags(ctx context.Context, tags []string) ([]UserView, error) {
	tags = NormalizeTags(tags)
	if len(tags) == 0 {
		return nil, apperrors.NewValidationError("tags", "at least one tag is required")
	}

	users, err := s.users.SearchByTags(tags)
	if err != nil {
		return nil, storageErr(err, nil)
	}
	views := make([]UserView, 0, len(users))
	for i := range users {
		views = append(views, *toUserView(&users[i]))
	}
	return views, nil
}

// Match ranks every tagged user against the requester's tags and returns the num closest,
// closest first.
func (s *UserService) Match(ctx context.Context, requester Requester, num int) ([]UserView, error) {
	if num < 1 || num > maxMatchNum {
		return nil, apperrors.NewValidationError("num", fmt.Sprintf("must be between 1 and %d", maxMatchNum))
	}

	me, err := s.users.GetByID(requester.UserID)
	if err != nil {
		return nil, storageErr(err, apperrors.ErrUserNotFound)
	}
	if len(NormalizeTags(me.Tags)) == 0 {
		return []UserView{}, nil
	}

	tagged, err := s.users.ListTagged()
	if err != nil {
		return nil, storageErr(err, nil)
	}
	pool := make([]Candidate, 0, len(tagged))
	for _, u := range tagged {
		pool = append(pool, Candidate{UserID: u.ID, Tags: u.Tags})
	}
	ids := RankBySimilarity(me.Tags, requester.UserID, pool, num)

	return s.loadInOrder(ids)
}

// loadInOrder fetches full records for ids and returns them masked, preserving the order of ids
func (s *UserService) loadInOrder(ids []uuid.UUID) ([]UserView, error) {
	views := make([]UserView, 0, len(ids))
	if len(ids) == 0 {
		return views, nil
	}
	users, err := s.users.GetByIDs(ids)
	if err != nil {
		return nil, storageErr(err, nil)
	}
	byID := make(map[uuid.UUID]*models.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}
	for _, id := range ids {
		if u, ok := byID[id]; ok {
			views = append(views, *toUserView(u))
		}
	}
	return views, nil
}

// Recommend returns one page of users, read through the recommendation cache
func (s *UserService) Recommend(ctx context.Context, requester Requester, page, pageSize int) (*UserPage, error) {
	if page < 1 || pageSize < 1 || pageSize > maxRecommendPerPage {
		return nil, apperrors.ErrInvalidPaginationParams
	}
	key := RecommendCacheKey(requester.UserID, page, pageSize)
	log := logger.WithContext(ctx).WithField("cache_key", key)

	if s.cache != nil {
		var cached UserPage
		hit, err := s.cache.Get(ctx, key, &cached)
		switch {
		case err != nil:
			metrics.CacheLookupsTotal.WithLabelValues("error").Inc()
			log.Warnf("recommend cache read failed: %v", err)
		case hit:
			metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
			return &cached, nil
		default:
			metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
		}
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		result, err := s.loadPage(page, pageSize)
		if err != nil {
			return nil, err
		}
		s.storePage(ctx, key, result)
		return result, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*UserPage), nil
}

// WarmRecommendations recomputes a recommendation page and overwrites its cache entry
func (s *UserService) WarmRecommendations(ctx context.Context, userID uuid.UUID, page, pageSize int) error {
	if s.cache == nil {
		return nil
	}
	result, err := s.loadPage(page, pageSize)
	if err != nil {
		return err
	}
	if err := s.cache.Set(ctx, RecommendCacheKey(userID, page, pageSize), result, s.cacheTTL); err != nil {
		return fmt.Errorf("failed to write recommend cache: %w", err)
	}
	return nil
}

func (s *UserService) loadPage(page, pageSize int) (*UserPage, error) {
	users, total, err := s.users.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, storageErr(err, nil)
	}
	views := make([]UserView, 0, len(users))
	for i := range users {
		views = append(views, *toUserView(&users[i]))
	}
	return &UserPage{Users: views, Total: total, Page: page, PageSize: pageSize}, nil
}

func (s *UserService) storePage(ctx context.Context, key string, page *UserPage) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, page, s.cacheTTL); err != nil {
		logger.WithContext(ctx).WithField("cache_key", key).Warnf("recommend cache write failed: %v", err)
	}
}

func toUserView(user *models.User) *UserView {
	tags := NormalizeTags(user.Tags)
	return &UserView{
		ID:        user.ID,
		Username:  user.Username,
		Account:   user.Account,
		AvatarURL: user.AvatarURL,
		Gender:    user.Gender,
		Phone:     user.Phone,
		Email:     user.Email,
		Profile:   user.Profile,
		Role:      user.Role,
		Tags:      tags,
		CreatedAt: user.CreatedAt,
	}
}
