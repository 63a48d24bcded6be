package models

import (
	"gorm.io/datatypes"
)

// User is a platform account. Tags are stored as a JSON array and decoded on read.
type User struct {
	BaseModel
	Username     string                      `json:"username" gorm:"size:256"`
	Account      string                      `json:"account" gorm:"uniqueIndex;not null;size:256" validate:"required,min=4,max=256"`
	AvatarURL    string                      `json:"avatar_url" gorm:"size:1024"`
	Gender       int                         `json:"gender"`
	PasswordHash string                      `json:"-" gorm:"size:512"`
	Phone        string                      `json:"phone" gorm:"size:128"`
	Email        string                      `json:"email" gorm:"size:512"`
	Profile      string                      `json:"profile" gorm:"size:512"`
	Role         UserRole                    `json:"role" gorm:"type:varchar(16);not null;default:'user'"`
	Tags         datatypes.JSONSlice[string] `json:"tags" gorm:"type:jsonb"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user has elevated privileges
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
