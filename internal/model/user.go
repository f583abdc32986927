package model

import "time"

// User represents an authenticated account. A user owns at most one
// Farmer profile and at most one Employee profile, both linked by
// UserID. Username and Email are unique across all users; the unique
// indexes are the authoritative guard, application-level checks are
// advisory only.
type User struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Username     string     `json:"username" gorm:"uniqueIndex;size:100;not null"`
	Email        string     `json:"email" gorm:"uniqueIndex;size:150;not null"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	PasswordSalt string     `json:"-" gorm:"size:64;not null"`
	FirstName    string     `json:"first_name,omitempty" gorm:"size:100"`
	LastName     string     `json:"last_name,omitempty" gorm:"size:100"`
	PhoneNumber  string     `json:"phone_number,omitempty" gorm:"size:20"`
	RoleID       uint       `json:"role_id" gorm:"not null;index"`
	Active       bool       `json:"active" gorm:"default:true;index"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`

	// Relations
	Role Role `json:"role,omitempty" gorm:"foreignKey:RoleID"`
}
