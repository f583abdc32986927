package model

import "time"

// SeedVersion records which bootstrap datasets have been applied so
// re-running the seeder is safe.
type SeedVersion struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Version   int       `json:"version" gorm:"uniqueIndex;not null"`
	AppliedAt time.Time `json:"applied_at"`
}
