package models

import (
	"time"

	"github.com/google/uuid"
)

// Membership records that a user belongs to a team. The auto-increment ID breaks
// JoinTime ties by insertion order.
type Membership struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_memberships_user_team;index"`
	TeamID    uuid.UUID `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_memberships_user_team;index"`
	JoinTime  time.Time `json:"join_time" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table name for Membership
func (Membership) TableName() string {
	return "memberships"
}
