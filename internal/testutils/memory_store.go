package testutils

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"teamup-backend/internal/database/models"
	"teamup-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemoryStore is an in-memory repository.Store. Every call is atomic on its own, but
// Transaction gives no isolation and no rollback, so callers see the same races they
// would without their own locking.
type MemoryStore struct {
	mu          sync.Mutex
	teams       map[uuid.UUID]models.Team
	memberships []models.Membership
	users       map[uuid.UUID]models.User
	nextID      int64
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		teams: make(map[uuid.UUID]models.Team),
		users: make(map[uuid.UUID]models.User),
	}
}

func (s *MemoryStore) Teams() repository.TeamRepositoryInterface {
	return &memoryTeams{s}
}

func (s *MemoryStore) Memberships() repository.MembershipRepositoryInterface {
	return &memoryMemberships{s}
}

func (s *MemoryStore) Users() repository.UserRepositoryInterface {
	return &memoryUsers{s}
}

func (s *MemoryStore) Transaction(ctx context.Context, fn func(tx repository.Store) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(s)
}

// SeedTeam stores team as-is, without an owner membership
func (s *MemoryStore) SeedTeam(team models.Team) models.Team {
	s.mu.Lock()
	defer s.mu.Unlock()
	if team.ID == uuid.Nil {
		team.ID = uuid.New()
	}
	if team.CreatedAt.IsZero() {
		team.CreatedAt = time.Now()
	}
	s.teams[team.ID] = team
	return team
}

// SeedMembership stores a membership with an explicit join time
func (s *MemoryStore) SeedMembership(userID, teamID uuid.UUID, joinTime time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.memberships = append(s.memberships, models.Membership{ID: s.nextID, UserID: userID, TeamID: teamID, JoinTime: joinTime})
}

// SeedUser stores user as-is
func (s *MemoryStore) SeedUser(user models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	s.users[user.ID] = user
	return user
}

// MemberCount returns the number of memberships of a team
func (s *MemoryStore) MemberCount(teamID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, m := range s.memberships {
		if m.TeamID == teamID {
			n++
		}
	}
	return n
}

// HasTeam reports whether the team row exists
func (s *MemoryStore) HasTeam(teamID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.teams[teamID]
	return ok
}

type memoryTeams struct{ s *MemoryStore }

func (r *memoryTeams) Create(team *models.Team) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if team.ID == uuid.Nil {
		team.ID = uuid.New()
	}
	now := time.Now()
	team.CreatedAt, team.UpdatedAt = now, now
	r.s.teams[team.ID] = *team
	return nil
}

func (r *memoryTeams) GetByID(id uuid.UUID) (*models.Team, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	team, ok := r.s.teams[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &team, nil
}

func (r *memoryTeams) GetByIDForUpdate(id uuid.UUID) (*models.Team, error) {
	return r.GetByID(id)
}

func (r *memoryTeams) List(filter repository.TeamFilter) ([]models.Team, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ids := make(map[uuid.UUID]bool, len(filter.IDs))
	for _, id := range filter.IDs {
		ids[id] = true
	}
	statuses := make(map[models.TeamStatus]bool, len(filter.Statuses))
	for _, st := range filter.Statuses {
		statuses[st] = true
	}

	var out []models.Team
	for _, t := range r.s.teams {
		switch {
		case len(ids) > 0 && !ids[t.ID]:
			continue
		case filter.SearchText != "" && !strings.Contains(t.Name, filter.SearchText) && !strings.Contains(t.Description, filter.SearchText):
			continue
		case filter.Name != "" && !strings.Contains(t.Name, filter.Name):
			continue
		case filter.Description != "" && !strings.Contains(t.Description, filter.Description):
			continue
		case filter.OwnerID != nil && t.OwnerID != *filter.OwnerID:
			continue
		case filter.MaxNum != nil && t.MaxNum != *filter.MaxNum:
			continue
		case len(statuses) > 0 && !statuses[t.Status]:
			continue
		case filter.ActiveAt != nil && t.ExpireTime != nil && !t.ExpireTime.After(*filter.ActiveAt):
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	if filter.Limit > 0 {
		if filter.Offset >= len(out) {
			return []models.Team{}, nil
		}
		end := filter.Offset + filter.Limit
		if end > len(out) {
			end = len(out)
		}
		out = out[filter.Offset:end]
	}
	return out, nil
}

func (r *memoryTeams) CountByOwner(ownerID uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, t := range r.s.teams {
		if t.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

func (r *memoryTeams) Update(id uuid.UUID, changes map[string]interface{}) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if len(changes) == 0 {
		return nil
	}
	team, ok := r.s.teams[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for column, value := range changes {
		switch column {
		case "name":
			team.Name = value.(string)
		case "description":
			team.Description = value.(string)
		case "status":
			team.Status = value.(models.TeamStatus)
		case "password":
			team.Password = value.(string)
		case "expire_time":
			team.ExpireTime = value.(*time.Time)
		default:
			return fmt.Errorf("memory store: unsupported team column %q", column)
		}
	}
	team.UpdatedAt = time.Now()
	r.s.teams[id] = team
	return nil
}

func (r *memoryTeams) UpdateOwner(id, ownerID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	team, ok := r.s.teams[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	team.OwnerID = ownerID
	r.s.teams[id] = team
	return nil
}

func (r *memoryTeams) Delete(id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.teams, id)
	return nil
}

type memoryMemberships struct{ s *MemoryStore }

func (r *memoryMemberships) Create(membership *models.Membership) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.memberships {
		if m.UserID == membership.UserID && m.TeamID == membership.TeamID {
			return gorm.ErrDuplicatedKey
		}
	}
	r.s.nextID++
	membership.ID = r.s.nextID
	r.s.memberships = append(r.s.memberships, *membership)
	return nil
}

func (r *memoryMemberships) Exists(userID, teamID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.memberships {
		if m.UserID == userID && m.TeamID == teamID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryMemberships) CountByUser(userID uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, m := range r.s.memberships {
		if m.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *memoryMemberships) CountByTeam(teamID uuid.UUID) (int64, error) {
	return int64(r.s.MemberCount(teamID)), nil
}

func (r *memoryMemberships) CountByTeams(teamIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	wanted := make(map[uuid.UUID]bool, len(teamIDs))
	for _, id := range teamIDs {
		wanted[id] = true
	}
	counts := make(map[uuid.UUID]int64)
	for _, m := range r.s.memberships {
		if wanted[m.TeamID] {
			counts[m.TeamID]++
		}
	}
	return counts, nil
}

func (r *memoryMemberships) ListByTeam(teamID uuid.UUID) ([]models.Membership, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.Membership
	for _, m := range r.s.memberships {
		if m.TeamID == teamID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].JoinTime.Equal(out[j].JoinTime) {
			return out[i].JoinTime.Before(out[j].JoinTime)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *memoryMemberships) ListTeamIDsByUser(userID uuid.UUID) ([]uuid.UUID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var ids []uuid.UUID
	for _, m := range r.s.memberships {
		if m.UserID == userID {
			ids = append(ids, m.TeamID)
		}
	}
	return ids, nil
}

func (r *memoryMemberships) Delete(userID, teamID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, m := range r.s.memberships {
		if m.UserID == userID && m.TeamID == teamID {
			r.s.memberships = append(r.s.memberships[:i], r.s.memberships[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memoryMemberships) DeleteByTeam(teamID uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.memberships[:0]
	var removed int64
	for _, m := range r.s.memberships {
		if m.TeamID == teamID {
			removed++
			continue
		}
		kept = append(kept, m)
	}
	r.s.memberships = kept
	return removed, nil
}

type memoryUsers struct{ s *MemoryStore }

func (r *memoryUsers) Create(user *models.User) error {
	r.s.SeedUser(*user)
	return nil
}

func (r *memoryUsers) GetByID(id uuid.UUID) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user, ok := r.s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (r *memoryUsers) GetByAccount(account string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Account == account {
			user := u
			return &user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryUsers) GetByIDs(ids []uuid.UUID) ([]models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.User
	for _, id := range ids {
		if u, ok := r.s.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *memoryUsers) ListTagged() ([]models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.User
	for _, u := range r.s.users {
		if len(u.Tags) > 0 {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *memoryUsers) SearchByTags(tags []string) ([]models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.User
	for _, u := range r.s.users {
		have := make(map[string]bool, len(u.Tags))
		for _, t := range u.Tags {
			have[t] = true
		}
		all := true
		for _, t := range tags {
			if !have[t] {
				all = false
				break
			}
		}
		if all {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *memoryUsers) GetAll(limit, offset int) ([]models.User, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	all := make([]models.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID.String() < all[j].ID.String() })
	total := int64(len(all))
	if offset >= len(all) {
		return []models.User{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *memoryUsers) Update(user *models.User) error {
	r.s.SeedUser(*user)
	return nil
}

var _ repository.Store = (*MemoryStore)(nil)
