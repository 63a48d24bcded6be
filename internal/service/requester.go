package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "teamup-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Requester identifies the caller of a service operation. The HTTP layer resolves it
// from the bearer token; services never read session state themselves.
type Requester struct {
	UserID uuid.UUID
	Admin  bool
}

// Limits are the per-user caps enforced by the team services
type Limits struct {
	MaxTeamsPerOwner int
	MaxJoinedTeams   int
}

// DefaultLimits returns the production caps (5 owned, 5 joined)
func DefaultLimits() Limits {
	return Limits{MaxTeamsPerOwner: 5, MaxJoinedTeams: 5}
}

// LockSettings configures join serialization. Wait < 0 uses the acquirer's default
// budget; Lease <= 0 holds the lock until released.
type LockSettings struct {
	Wait  time.Duration
	Lease time.Duration
}

func userLockKey(userID uuid.UUID) string {
	return "join:user:" + userID.String()
}

func teamLockKey(teamID uuid.UUID) string {
	return "join:team:" + teamID.String()
}

// storageErr maps a repository error: record-not-found becomes notFound, anything else
// is a storage failure.
func storageErr(err error, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) && notFound != nil {
		return notFound
	}
	return apperrors.NewStorageError(err)
}

// validationErr converts validator output into a ValidationError on the first failing field
func validationErr(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return apperrors.NewValidationError(toSnake(fe.Field()), describeTag(fe))
	}
	return apperrors.NewValidationError("", err.Error())
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
