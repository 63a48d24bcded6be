package models

import "strings"

// TeamStatus is the visibility level of a team
type TeamStatus string

const (
	TeamStatusPublic  TeamStatus = "public"
	TeamStatusPrivate TeamStatus = "private"
	TeamStatusSecret  TeamStatus = "secret"
)

// IsValid checks if the TeamStatus is valid
func (s TeamStatus) IsValid() bool {
	switch s {
	case TeamStatusPublic, TeamStatusPrivate, TeamStatusSecret:
		return true
	}
	return false
}

// ParseTeamStatus accepts the status case-insensitively ("SECRET", "secret")
func ParseTeamStatus(s string) (TeamStatus, bool) {
	status := TeamStatus(strings.ToLower(strings.TrimSpace(s)))
	return status, status.IsValid()
}

// UserRole is the privilege level of a user
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}
