package models

import "time"

// User is an account allowed to sign in to the management pages
type User struct {
	BaseModel
	Name            string     `json:"name" gorm:"not null;size:255"`
	Email           string     `json:"email" gorm:"uniqueIndex;not null;size:255"`
	PasswordHash    string     `json:"-" gorm:"not null;size:255"`
	EmailVerifiedAt *time.Time `json:"email_verified_at"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// IsVerified reports whether the user's email address has been verified
func (u *User) IsVerified() bool {
	return u.EmailVerifiedAt != nil
}
