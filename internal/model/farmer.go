package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Farmer is the farm profile extending a User with the Farmer role.
// At most one profile exists per user (unique index on UserID).
// Verified is settable by employees only.
type Farmer struct {
	ID                      uint             `json:"id" gorm:"primaryKey"`
	UserID                  uint             `json:"user_id" gorm:"uniqueIndex;not null"`
	FarmName                string           `json:"farm_name" gorm:"size:150;not null"`
	RegistrationNumber      string           `json:"registration_number,omitempty" gorm:"size:50"`
	EstablishedDate         *time.Time       `json:"established_date,omitempty"`
	Address                 string           `json:"address,omitempty" gorm:"size:200"`
	City                    string           `json:"city,omitempty" gorm:"size:100"`
	Province                string           `json:"province,omitempty" gorm:"size:100"`
	PostalCode              string           `json:"postal_code,omitempty" gorm:"size:20"`
	FarmSize                *decimal.Decimal `json:"farm_size,omitempty" gorm:"type:decimal(12,2)"`
	FarmSizeUnit            string           `json:"farm_size_unit,omitempty" gorm:"size:20"`
	FarmingType             string           `json:"farming_type,omitempty" gorm:"size:100"`
	MainCrops               string           `json:"main_crops,omitempty" gorm:"size:200"`
	MainLivestock           string           `json:"main_livestock,omitempty" gorm:"size:200"`
	SustainabilityPractices string           `json:"sustainability_practices,omitempty" gorm:"type:text"`
	ProfileDescription      string           `json:"profile_description,omitempty" gorm:"type:text"`
	EnergyNeeds             string           `json:"energy_needs,omitempty" gorm:"type:text"`
	Verified                bool             `json:"verified" gorm:"default:false;index"`
	CreatedAt               time.Time        `json:"created_at"`
	UpdatedAt               *time.Time       `json:"updated_at,omitempty"`

	// Relations
	User     User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Products []Product `json:"products,omitempty" gorm:"foreignKey:FarmerID"`
}
