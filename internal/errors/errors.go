package errors

import (
	"errors"
	"fmt"
)

// Kind is the stable, programmatic classification carried by every domain error
type Kind string

const (
	KindInvalidArgument    Kind = "invalid_argument"
	KindNotFound           Kind = "not_found"
	KindForbidden          Kind = "forbidden"
	KindUnauthenticated    Kind = "unauthenticated"
	KindConflict           Kind = "conflict"
	KindQuotaExceeded      Kind = "quota_exceeded"
	KindSystem             Kind = "system_error"
	KindStorageUnavailable Kind = "storage_unavailable"
	KindLockUnavailable    Kind = "lock_unavailable"
	KindConfiguration      Kind = "configuration"
	KindUnknown            Kind = "unknown"
)

// Resources reported by UnavailableError
const (
	ResourceStorage = "storage"
	ResourceLock    = "lock"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConflictError is returned when the current state of a team rejects the operation
// (full team, duplicate membership, wrong password, not a member).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// QuotaExceededError is returned when a per-user cap is reached
type QuotaExceededError struct {
	Quota string
	Limit int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("quota exceeded: %s (limit %d)", e.Quota, e.Limit)
}

// Is enables errors.Is() comparison for QuotaExceededError
func (e *QuotaExceededError) Is(target error) bool {
	t, ok := target.(*QuotaExceededError)
	if !ok {
		return false
	}
	return e.Quota == t.Quota
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// SystemError marks a broken internal invariant
type SystemError struct {
	Message string
}

func (e *SystemError) Error() string {
	return fmt.Sprintf("system error: %s", e.Message)
}

// UnavailableError wraps a collaborator failure (storage or lock)
type UnavailableError struct {
	Resource string
	Err      error
}

func (e *UnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s unavailable: %v", e.Resource, e.Err)
	}
	return fmt.Sprintf("%s unavailable", e.Resource)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// Is enables errors.Is() comparison for UnavailableError
func (e *UnavailableError) Is(target error) bool {
	t, ok := target.(*UnavailableError)
	if !ok {
		return false
	}
	return e.Resource == t.Resource
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrTeamNotFound       = &NotFoundError{Entity: "team"}
	ErrUserNotFound       = &NotFoundError{Entity: "user"}
	ErrMembershipNotFound = &NotFoundError{Entity: "membership"}
)

// Team state conflicts
var (
	ErrTeamFull      = &ConflictError{Message: "team is full"}
	ErrAlreadyMember = &ConflictError{Message: "user has already joined this team"}
	ErrNotMember     = &ConflictError{Message: "user is not a member of this team"}
	ErrWrongPassword = &ConflictError{Message: "team password does not match"}
	ErrTeamExpired   = &ConflictError{Message: "team has expired"}
)

// Quota Errors
var (
	ErrOwnedTeamsQuota  = &QuotaExceededError{Quota: "owned teams", Limit: 5}
	ErrJoinedTeamsQuota = &QuotaExceededError{Quota: "joined teams", Limit: 5}
)

// Authorization Errors
var (
	ErrNotTeamOwner       = &AuthorizationError{Message: "only the team owner can perform this action"}
	ErrNotOwnerOrAdmin    = &AuthorizationError{Message: "only the team owner or an administrator can perform this action"}
	ErrPrivateTeam        = &AuthorizationError{Message: "private teams cannot be joined"}
	ErrPrivateListing     = &AuthorizationError{Message: "private teams are only listed for administrators"}
	ErrMissingRequester   = &AuthenticationError{Message: "requester identity not found in context"}
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid token"}
)

// Collaborator Errors
var (
	ErrStorageUnavailable = &UnavailableError{Resource: ResourceStorage}
	ErrLockUnavailable    = &UnavailableError{Resource: ResourceLock}
	ErrNoSuccessor        = &SystemError{Message: "no successor available for leadership transfer"}
)

// Business Logic Errors
var (
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsQuotaExceeded checks if an error is a QuotaExceededError
func IsQuotaExceeded(err error) bool {
	var quotaErr *QuotaExceededError
	return errors.As(err, &quotaErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsSystem checks if an error is a SystemError
func IsSystem(err error) bool {
	var sysErr *SystemError
	return errors.As(err, &sysErr)
}

// IsUnavailable checks if an error is an UnavailableError for the given resource.
// An empty resource matches any collaborator.
func IsUnavailable(err error, resource string) bool {
	var unavailableErr *UnavailableError
	if !errors.As(err, &unavailableErr) {
		return false
	}
	return resource == "" || unavailableErr.Resource == resource
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// KindOf classifies err. Wrapped errors are unwrapped.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case IsValidation(err), errors.Is(err, ErrInvalidPaginationParams):
		return KindInvalidArgument
	case IsNotFound(err):
		return KindNotFound
	case IsAuthorization(err):
		return KindForbidden
	case IsAuthentication(err):
		return KindUnauthenticated
	case IsConflict(err):
		return KindConflict
	case IsQuotaExceeded(err):
		return KindQuotaExceeded
	case IsSystem(err):
		return KindSystem
	case IsUnavailable(err, ResourceLock):
		return KindLockUnavailable
	case IsUnavailable(err, ResourceStorage):
		return KindStorageUnavailable
	case IsConfiguration(err):
		return KindConfiguration
	default:
		return KindUnknown
	}
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConflictError creates a new ConflictError
func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

// NewQuotaExceededError creates a new QuotaExceededError
func NewQuotaExceededError(quota string, limit int) error {
	return &QuotaExceededError{Quota: quota, Limit: limit}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewSystemError creates a new SystemError
func NewSystemError(message string) error {
	return &SystemError{Message: message}
}

// NewStorageError wraps a persistence failure
func NewStorageError(err error) error {
	return &UnavailableError{Resource: ResourceStorage, Err: err}
}

// NewLockError wraps a lock service failure
func NewLockError(err error) error {
	return &UnavailableError{Resource: ResourceLock, Err: err}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
