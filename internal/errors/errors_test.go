package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "team"}
		assert.Equal(t, "team not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "team"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrTeamNotFound, ErrUserNotFound))
	})

	t.Run("IsNotFound helper through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("loading team: %w", ErrTeamNotFound)
		assert.True(t, IsNotFound(wrapped))
		assert.False(t, IsNotFound(ErrTeamFull))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "max_num", Message: "must be between 1 and 20"}
		assert.Equal(t, "validation error: max_num - must be between 1 and 20", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("name", "required")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrTeamNotFound))
	})
}

func TestConflictAndQuotaErrors(t *testing.T) {
	t.Run("Conflict sentinels compare by message", func(t *testing.T) {
		assert.True(t, errors.Is(NewConflictError("team is full"), ErrTeamFull))
		assert.False(t, errors.Is(ErrTeamFull, ErrAlreadyMember))
	})

	t.Run("Quota compares by quota name, not limit", func(t *testing.T) {
		err := NewQuotaExceededError("joined teams", 7)
		assert.True(t, errors.Is(err, ErrJoinedTeamsQuota))
		assert.False(t, errors.Is(err, ErrOwnedTeamsQuota))
		assert.Equal(t, "quota exceeded: joined teams (limit 7)", err.Error())
	})
}

func TestUnavailableError(t *testing.T) {
	cause := errors.New("connection refused")

	t.Run("Unwrap exposes the cause", func(t *testing.T) {
		err := NewStorageError(cause)
		assert.ErrorIs(t, err, cause)
		assert.ErrorIs(t, err, ErrStorageUnavailable)
		assert.NotErrorIs(t, err, ErrLockUnavailable)
		assert.Equal(t, "storage unavailable: connection refused", err.Error())
	})

	t.Run("IsUnavailable filters by resource", func(t *testing.T) {
		err := NewLockError(cause)
		assert.True(t, IsUnavailable(err, ResourceLock))
		assert.True(t, IsUnavailable(err, ""))
		assert.False(t, IsUnavailable(err, ResourceStorage))
	})
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, ""},
		{"validation", NewValidationError("max_num", "out of range"), KindInvalidArgument},
		{"pagination", fmt.Errorf("list: %w", ErrInvalidPaginationParams), KindInvalidArgument},
		{"not found", ErrTeamNotFound, KindNotFound},
		{"forbidden", ErrNotTeamOwner, KindForbidden},
		{"unauthenticated", ErrMissingRequester, KindUnauthenticated},
		{"conflict", fmt.Errorf("join: %w", ErrTeamFull), KindConflict},
		{"quota", ErrOwnedTeamsQuota, KindQuotaExceeded},
		{"system", ErrNoSuccessor, KindSystem},
		{"lock", NewLockError(errors.New("timeout")), KindLockUnavailable},
		{"storage", NewStorageError(errors.New("eof")), KindStorageUnavailable},
		{"configuration", NewConfigurationError("missing"), KindConfiguration},
		{"unknown", errors.New("boom"), KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}
