package service_test

import (
	"testing"
	"time"

	"teamup-backend/internal/database/models"
	apperrors "teamup-backend/internal/errors"
	"teamup-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextOwner(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	owner, a, b := uuid.New(), uuid.New(), uuid.New()

	t.Run("earliest remaining member by join time", func(t *testing.T) {
		memberships := []models.Membership{
			{ID: 3, UserID: b, JoinTime: t0.Add(2 * time.Second)},
			{ID: 1, UserID: owner, JoinTime: t0},
			{ID: 2, UserID: a, JoinTime: t0.Add(time.Second)},
		}

		next, err := service.NextOwner(memberships, owner)
		require.NoError(t, err)
		assert.Equal(t, a, next)
	})

	t.Run("equal join times fall back to insertion order", func(t *testing.T) {
		memberships := []models.Membership{
			{ID: 1, UserID: owner, JoinTime: t0},
			{ID: 7, UserID: b, JoinTime: t0.Add(time.Second)},
			{ID: 5, UserID: a, JoinTime: t0.Add(time.Second)},
		}

		next, err := service.NextOwner(memberships, owner)
		require.NoError(t, err)
		assert.Equal(t, a, next)
	})

	t.Run("does not mutate the input order", func(t *testing.T) {
		memberships := []models.Membership{
			{ID: 2, UserID: b, JoinTime: t0.Add(time.Second)},
			{ID: 1, UserID: a, JoinTime: t0},
		}

		_, err := service.NextOwner(memberships, owner)
		require.NoError(t, err)
		assert.Equal(t, b, memberships[0].UserID)
	})

	t.Run("no remaining member is a system error", func(t *testing.T) {
		memberships := []models.Membership{{ID: 1, UserID: owner, JoinTime: t0}}

		_, err := service.NextOwner(memberships, owner)
		assert.ErrorIs(t, err, apperrors.ErrNoSuccessor)
		assert.Equal(t, apperrors.KindSystem, apperrors.KindOf(err))
	})
}
