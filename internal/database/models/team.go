package models

import (
	"time"

	"github.com/google/uuid"
)

// Team is a capacity-bounded group of users
type Team struct {
	BaseModel
	Name        string     `json:"name" gorm:"not null;size:256" validate:"required,max=256"`
	Description string     `json:"description" gorm:"size:512" validate:"max=512"`
	MaxNum      int        `json:"max_num" gorm:"not null" validate:"min=1,max=20"`
	Status      TeamStatus `json:"status" gorm:"type:varchar(16);not null;default:'public';index"`
	Password    string     `json:"-" gorm:"size:32"`
	ExpireTime  *time.Time `json:"expire_time,omitempty" gorm:"index"`
	OwnerID     uuid.UUID  `json:"owner_id" gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// IsExpired reports whether the team's expire time has been reached. A team expiring
// exactly at now is expired, matching the "expire_time > now" listing filter.
func (t *Team) IsExpired(now time.Time) bool {
	return t.ExpireTime != nil && !t.ExpireTime.After(now)
}
