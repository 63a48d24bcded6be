package service

import (
	"context"
	"strings"
	"time"

	"teamup-backend/internal/database/models"
	apperrors "teamup-backend/internal/errors"
	"teamup-backend/internal/logger"
	"teamup-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const maxTeamPasswordLen = 32

// TeamService validates and persists teams and serves team listings
type TeamService struct {
	store     repository.Store
	locks     LockAcquirer
	validator *validator.Validate
	limits    Limits
	lockCfg   LockSettings
	now       func() time.Time
}

// NewTeamService creates a new team service
func NewTeamService(store repository.Store, locks LockAcquirer, validator *validator.Validate, limits Limits, lockCfg LockSettings) *TeamService {
	return &TeamService{
		store:     store,
		locks:     locks,
		validator: validator,
		limits:    limits,
		lockCfg:   lockCfg,
		now:       time.Now,
	}
}

var _ TeamServiceInterface = (*TeamService)(nil)

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name        string     `json:"name" validate:"required,max=256"`
	Description string     `json:"description" validate:"max=512"`
	MaxNum      int        `json:"max_num" validate:"min=1,max=20"`
	Status      string     `json:"status"`
	Password    string     `json:"password" validate:"max=32"`
	ExpireTime  *time.Time `json:"expire_time,omitempty"`
}

// UpdateTeamRequest is a partial update; nil fields are left unchanged
type UpdateTeamRequest struct {
	Name        *string    `json:"name,omitempty" validate:"omitempty,max=256"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=512"`
	Status      *string    `json:"status,omitempty"`
	Password    *string    `json:"password,omitempty" validate:"omitempty,max=32"`
	ExpireTime  *time.Time `json:"expire_time,omitempty"`
}

// TeamListFilter represents the query parameters of a team listing
type TeamListFilter struct {
	IDs         []uuid.UUID
	SearchText  string
	Name        string
	Description string
	OwnerID     *uuid.UUID
	MaxNum      *int
	Status      string
	Page        int
	PageSize    int
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	MaxNum      int               `json:"max_num"`
	Status      models.TeamStatus `json:"status"`
	ExpireTime  *time.Time        `json:"expire_time,omitempty"`
	OwnerID     uuid.UUID         `json:"owner_id"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// TeamView is a listed team annotated for the requester
type TeamView struct {
	TeamResponse
	Owner       *UserView `json:"owner,omitempty"`
	HasJoined   bool      `json:"has_joined"`
	MemberCount int64     `json:"member_count"`
}

// Create validates req, then persists the team and the owner's membership in one transaction.
// The owner quota is checked under the owner's join lock so concurrent creates cannot exceed it.
func (s *TeamService) Create(ctx context.Context, req *CreateTeamRequest, requester Requester) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationErr(err)
	}

	now := s.now()
	team := &models.Team{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		MaxNum:      req.MaxNum,
		Status:      models.TeamStatusPublic,
		Password:    req.Password,
		ExpireTime:  req.ExpireTime,
		OwnerID:     requester.UserID,
	}
	if req.Status != "" {
		team.Status, _ = models.ParseTeamStatus(req.Status)
	}
	if team.Status != models.TeamStatusSecret {
		team.Password = ""
	}
	if team.ExpireTime != nil && !team.ExpireTime.After(now) {
		return nil, apperrors.NewValidationError("expire_time", "must be in the future")
	}
	if err := validateTeam(team); err != nil {
		return nil, err
	}

	lease, err := acquire(ctx, s.locks, userLockKey(requester.UserID), s.lockCfg)
	if err != nil {
		return nil, err
	}
	defer releaseLease(ctx, lease)

	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		owned, err := tx.Teams().CountByOwner(requester.UserID)
		if err != nil {
			return storageErr(err, nil)
		}
		if owned >= int64(s.limits.MaxTeamsPerOwner) {
			return apperrors.NewQuotaExceededError(apperrors.ErrOwnedTeamsQuota.Quota, s.limits.MaxTeamsPerOwner)
		}
		if err := tx.Teams().Create(team); err != nil {
			return storageErr(err, nil)
		}
		membership := &models.Membership{UserID: requester.UserID, TeamID: team.ID, JoinTime: now}
		if err := tx.Memberships().Create(membership); err != nil {
			return storageErr(err, nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id": team.ID,
		"status":  team.Status,
	}).Info("team created")
	return toTeamResponse(team), nil
}

// GetByID retrieves a team by ID
func (s *TeamService) GetByID(ctx context.Context, id uuid.UUID) (*TeamResponse, error) {
	team, err := s.store.Teams().GetByID(id)
	if err != nil {
		return nil, storageErr(err, apperrors.ErrTeamNotFound)
	}
	return toTeamResponse(team), nil
}

// Update applies req to the team. Only the owner or an administrator may update, and the
// merged result is validated as a whole. Leaving SECRET clears the stored password.
// The team row is locked for the duration and only edited columns are written, so a
// concurrent quit or delete is never undone.
func (s *TeamService) Update(ctx context.Context, id uuid.UUID, req *UpdateTeamRequest, requester Requester) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationErr(err)
	}
	if req.ExpireTime != nil && !req.ExpireTime.After(s.now()) {
		return nil, apperrors.NewValidationError("expire_time", "must be in the future")
	}

	var updated *models.Team
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		team, err := tx.Teams().GetByIDForUpdate(id)
		if err != nil {
			return storageErr(err, apperrors.ErrTeamNotFound)
		}
		if team.OwnerID != requester.UserID && !requester.Admin {
			return apperrors.ErrNotOwnerOrAdmin
		}

		merged := *team
		if req.Name != nil {
			merged.Name = strings.TrimSpace(*req.Name)
		}
		if req.Description != nil {
			merged.Description = *req.Description
		}
		if req.Status != nil {
			merged.Status, _ = models.ParseTeamStatus(*req.Status)
		}
		if req.Password != nil {
			merged.Password = *req.Password
		}
		if req.ExpireTime != nil {
			merged.ExpireTime = req.ExpireTime
		}
		if merged.Status != models.TeamStatusSecret {
			merged.Password = ""
		}
		if err := validateTeam(&merged); err != nil {
			return err
		}

		if err := tx.Teams().Update(id, teamChanges(team, &merged)); err != nil {
			return storageErr(err, apperrors.ErrTeamNotFound)
		}
		updated = &merged
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toTeamResponse(updated), nil
}

// teamChanges lists the editable columns that differ between before and after
func teamChanges(before, after *models.Team) map[string]interface{} {
	changes := make(map[string]interface{})
	if after.Name != before.Name {
		changes["name"] = after.Name
	}
	if after.Description != before.Description {
		changes["description"] = after.Description
	}
	if after.Status != before.Status {
		changes["status"] = after.Status
	}
	if after.Password != before.Password {
		changes["password"] = after.Password
	}
	if !sameTime(after.ExpireTime, before.ExpireTime) {
		changes["expire_time"] = after.ExpireTime
	}
	return changes
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// Delete removes the team and all of its memberships atomically. Only the owner may delete.
func (s *TeamService) Delete(ctx context.Context, id uuid.UUID, requester Requester) error {
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		team, err := tx.Teams().GetByIDForUpdate(id)
		if err != nil {
			return storageErr(err, apperrors.ErrTeamNotFound)
		}
		if team.OwnerID != requester.UserID {
			return apperrors.ErrNotTeamOwner
		}
		if _, err := tx.Memberships().DeleteByTeam(id); err != nil {
			return storageErr(err, nil)
		}
		if err := tx.Teams().Delete(id); err != nil {
			return storageErr(err, nil)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.WithContext(ctx).WithField("team_id", id).Info("team deleted")
	return nil
}

// List returns the non-expired teams matching filter. Without privilege, PRIVATE teams are
// hidden and asking for them explicitly is forbidden.
func (s *TeamService) List(ctx context.Context, filter *TeamListFilter, requester Requester) ([]TeamView, error) {
	return s.list(ctx, filter, requester.Admin, requester)
}

// ListMyCreated returns the teams owned by the requester, including PRIVATE ones
func (s *TeamService) ListMyCreated(ctx context.Context, filter *TeamListFilter, requester Requester) ([]TeamView, error) {
	scoped := *filter
	scoped.OwnerID = &requester.UserID
	return s.list(ctx, &scoped, true, requester)
}

// ListMyJoined returns the teams the requester belongs to, including PRIVATE ones
func (s *TeamService) ListMyJoined(ctx context.Context, filter *TeamListFilter, requester Requester) ([]TeamView, error) {
	ids, err := s.store.Memberships().ListTeamIDsByUser(requester.UserID)
	if err != nil {
		return nil, storageErr(err, nil)
	}
	if len(ids) == 0 {
		return []TeamView{}, nil
	}
	scoped := *filter
	scoped.IDs = ids
	return s.list(ctx, &scoped, true, requester)
}

func (s *TeamService) list(ctx context.Context, filter *TeamListFilter, privileged bool, requester Requester) ([]TeamView, error) {
	now := s.now()
	query := repository.TeamFilter{
		IDs:         filter.IDs,
		SearchText:  strings.TrimSpace(filter.SearchText),
		Name:        strings.TrimSpace(filter.Name),
		Description: strings.TrimSpace(filter.Description),
		OwnerID:     filter.OwnerID,
		MaxNum:      filter.MaxNum,
		ActiveAt:    &now,
	}

	if filter.Status != "" {
		status, ok := models.ParseTeamStatus(filter.Status)
		if !ok {
			return nil, apperrors.NewValidationError("status", "must be one of [public private secret]")
		}
		if status == models.TeamStatusPrivate && !privileged {
			return nil, apperrors.ErrPrivateListing
		}
		query.Statuses = []models.TeamStatus{status}
	} else if !privileged {
		query.Statuses = []models.TeamStatus{models.TeamStatusPublic, models.TeamStatusSecret}
	}

	if filter.Page != 0 || filter.PageSize != 0 {
		if filter.Page < 1 || filter.PageSize < 1 || filter.PageSize > 100 {
			return nil, apperrors.ErrInvalidPaginationParams
		}
		query.Limit = filter.PageSize
		query.Offset = (filter.Page - 1) * filter.PageSize
	}

	teams, err := s.store.Teams().List(query)
	if err != nil {
		return nil, storageErr(err, nil)
	}
	return s.annotate(teams, requester)
}

// annotate attaches the owner, live member count and the requester's membership to each team
func (s *TeamService) annotate(teams []models.Team, requester Requester) ([]TeamView, error) {
	views := make([]TeamView, 0, len(teams))
	if len(teams) == 0 {
		return views, nil
	}

	teamIDs := make([]uuid.UUID, 0, len(teams))
	ownerIDs := make([]uuid.UUID, 0, len(teams))
	for _, t := range teams {
		teamIDs = append(teamIDs, t.ID)
		ownerIDs = append(ownerIDs, t.OwnerID)
	}

	counts, err := s.store.Memberships().CountByTeams(teamIDs)
	if err != nil {
		return nil, storageErr(err, nil)
	}
	owners, err := s.store.Users().GetByIDs(ownerIDs)
	if err != nil {
		return nil, storageErr(err, nil)
	}
	ownerByID := make(map[uuid.UUID]*UserView, len(owners))
	for i := range owners {
		ownerByID[owners[i].ID] = toUserView(&owners[i])
	}

	joined := make(map[uuid.UUID]bool)
	if requester.UserID != uuid.Nil {
		ids, err := s.store.Memberships().ListTeamIDsByUser(requester.UserID)
		if err != nil {
			return nil, storageErr(err, nil)
		}
		for _, id := range ids {
			joined[id] = true
		}
	}

	for i := range teams {
		t := &teams[i]
		views = append(views, TeamView{
			TeamResponse: *toTeamResponse(t),
			Owner:        ownerByID[t.OwnerID],
			HasJoined:    joined[t.ID],
			MemberCount:  counts[t.ID],
		})
	}
	return views, nil
}

// validateTeam enforces the invariants shared by create and update
func validateTeam(team *models.Team) error {
	if strings.TrimSpace(team.Name) == "" {
		return apperrors.NewValidationError("name", "must not be blank")
	}
	if len([]rune(team.Name)) > 256 {
		return apperrors.NewValidationError("name", "must be at most 256")
	}
	if len([]rune(team.Description)) > 512 {
		return apperrors.NewValidationError("description", "must be at most 512")
	}
	if team.MaxNum < 1 || team.MaxNum > 20 {
		return apperrors.NewValidationError("max_num", "must be between 1 and 20")
	}
	if !team.Status.IsValid() {
		return apperrors.NewValidationError("status", "must be one of [public private secret]")
	}
	if team.Status == models.TeamStatusSecret {
		if strings.TrimSpace(team.Password) == "" {
			return apperrors.NewValidationError("password", "is required for secret teams")
		}
		if len([]rune(team.Password)) > maxTeamPasswordLen {
			return apperrors.NewValidationError("password", "must be at most 32")
		}
	}
	return nil
}

func toTeamResponse(team *models.Team) *TeamResponse {
	return &TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
		MaxNum:      team.MaxNum,
		Status:      team.Status,
		ExpireTime:  team.ExpireTime,
		OwnerID:     team.OwnerID,
		CreatedAt:   team.CreatedAt,
		UpdatedAt:   team.UpdatedAt,
	}
}
