package model

import "time"

// Role is a lookup row backing the closed role set used for
// authorization. The set is seeded at deployment time; the application
// never creates roles at runtime.
type Role struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;size:50;not null"`
	Description string    `json:"description,omitempty" gorm:"size:200"`
	Active      bool      `json:"active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
}
