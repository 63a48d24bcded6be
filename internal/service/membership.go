package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"teamup-backend/internal/database/models"
	apperrors "teamup-backend/internal/errors"
	"teamup-backend/internal/logger"
	"teamup-backend/internal/metrics"
	"teamup-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipService owns the join and quit protocols
type MembershipService struct {
	store   repository.Store
	locks   LockAcquirer
	limits  Limits
	lockCfg LockSettings
	now     func() time.Time
}

// NewMembershipService creates a new membership service
func NewMembershipService(store repository.Store, locks LockAcquirer, limits Limits, lockCfg LockSettings) *MembershipService {
	return &MembershipService{
		store:   store,
		locks:   locks,
		limits:  limits,
		lockCfg: lockCfg,
		now:     time.Now,
	}
}

var _ MembershipServiceInterface = (*MembershipService)(nil)

// JoinTeamRequest represents the request to join a team
type JoinTeamRequest struct {
	Password string `json:"password"`
}

// QuitResult describes what a quit did to the team
type QuitResult struct {
	TeamDissolved bool       `json:"team_dissolved"`
	NewOwnerID    *uuid.UUID `json:"new_owner_id,omitempty"`
}

// Join adds the requester to the team.
//
// Visibility, expiry and password are checked first without locking. The quota, duplicate
// and capacity checks and the insert then run under two locks taken in a fixed order
// (requester, then team) and inside one transaction holding the team row.
func (s *MembershipService) Join(ctx context.Context, teamID uuid.UUID, req *JoinTeamRequest, requester Requester) (err error) {
	defer func() { metrics.TeamJoinsTotal.WithLabelValues(outcome(err)).Inc() }()

	team, err := s.store.Teams().GetByID(teamID)
	if err != nil {
		return storageErr(err, apperrors.ErrTeamNotFound)
	}
	if err := s.checkJoinable(team, req); err != nil {
		return err
	}

	userLease, err := acquire(ctx, s.locks, userLockKey(requester.UserID), s.lockCfg)
	if err != nil {
		return err
	}
	defer releaseLease(ctx, userLease)

	teamLease, err := acquire(ctx, s.locks, teamLockKey(teamID), s.lockCfg)
	if err != nil {
		return err
	}
	defer releaseLease(ctx, teamLease)

	return s.store.Transaction(ctx, func(tx repository.Store) error {
		team, err := tx.Teams().GetByIDForUpdate(teamID)
		if err != nil {
			return storageErr(err, apperrors.ErrTeamNotFound)
		}

		joined, err := tx.Memberships().CountByUser(requester.UserID)
		if err != nil {
			return storageErr(err, nil)
		}
		if joined >= int64(s.limits.MaxJoinedTeams) {
			return apperrors.NewQuotaExceededError(apperrors.ErrJoinedTeamsQuota.Quota, s.limits.MaxJoinedTeams)
		}

		exists, err := tx.Memberships().Exists(requester.UserID, teamID)
		if err != nil {
			return storageErr(err, nil)
		}
		if exists {
			return apperrors.ErrAlreadyMember
		}

		members, err := tx.Memberships().CountByTeam(teamID)
		if err != nil {
			return storageErr(err, nil)
		}
		if members >= int64(team.MaxNum) {
			return apperrors.ErrTeamFull
		}

		membership := &models.Membership{UserID: requester.UserID, TeamID: teamID, JoinTime: s.now()}
		if err := tx.Memberships().Create(membership); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrAlreadyMember
			}
			return storageErr(err, nil)
		}
		return nil
	})
}

func (s *MembershipService) checkJoinable(team *models.Team, req *JoinTeamRequest) error {
	if team.IsExpired(s.now()) {
		return apperrors.ErrTeamExpired
	}
	switch team.Status {
	case models.TeamStatusPrivate:
		return apperrors.ErrPrivateTeam
	case models.TeamStatusSecret:
		var password string
		if req != nil {
			password = req.Password
		}
		if password == "" || subtle.ConstantTimeCompare([]byte(password), []byte(team.Password)) != 1 {
			return apperrors.ErrWrongPassword
		}
	}
	return nil
}

// Quit removes the requester from the team. The last member leaving dissolves the team;
// an owner leaving hands the team to the most senior remaining member. Every branch runs
// in a single transaction holding the team row.
func (s *MembershipService) Quit(ctx context.Context, teamID uuid.UUID, requester Requester) (*QuitResult, error) {
	result := &QuitResult{}
	effect := "left"

	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		team, err := tx.Teams().GetByIDForUpdate(teamID)
		if err != nil {
			return storageErr(err, apperrors.ErrTeamNotFound)
		}

		isMember, err := tx.Memberships().Exists(requester.UserID, teamID)
		if err != nil {
			return storageErr(err, nil)
		}
		if !isMember {
			return apperrors.ErrNotMember
		}

		memberships, err := tx.Memberships().ListByTeam(teamID)
		if err != nil {
			return storageErr(err, nil)
		}

		if len(memberships) <= 1 {
			if _, err := tx.Memberships().DeleteByTeam(teamID); err != nil {
				return storageErr(err, nil)
			}
			if err := tx.Teams().Delete(teamID); err != nil {
				return storageErr(err, nil)
			}
			result.TeamDissolved = true
			effect = "dissolved"
			return nil
		}

		if team.OwnerID == requester.UserID {
			successor, err := NextOwner(memberships, requester.UserID)
			if err != nil {
				return err
			}
			if err := tx.Teams().UpdateOwner(teamID, successor); err != nil {
				return storageErr(err, nil)
			}
			result.NewOwnerID = &successor
			effect = "transferred"
		}

		if err := tx.Memberships().Delete(requester.UserID, teamID); err != nil {
			return storageErr(err, apperrors.ErrNotMember)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.TeamQuitsTotal.WithLabelValues(effect).Inc()
	log := logger.WithContext(ctx).WithField("team_id", teamID)
	switch {
	case result.TeamDissolved:
		log.Info("last member left, team dissolved")
	case result.NewOwnerID != nil:
		log.WithField("new_owner_id", *result.NewOwnerID).Info("team leadership transferred")
	}
	return result, nil
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	return string(apperrors.KindOf(err))
}
