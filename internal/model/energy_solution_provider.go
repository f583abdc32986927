package model

import "time"

// EnergySolutionProvider is the company profile behind energy
// solutions. Verified is employee-settable; Active hides the provider
// and its listings from public queries.
type EnergySolutionProvider struct {
	ID                 uint       `json:"id" gorm:"primaryKey"`
	CompanyName        string     `json:"company_name" gorm:"size:150;not null;index"`
	ContactPerson      string     `json:"contact_person,omitempty" gorm:"size:100"`
	Email              string     `json:"email" gorm:"size:150;not null"`
	PhoneNumber        string     `json:"phone_number,omitempty" gorm:"size:20"`
	Website            string     `json:"website,omitempty" gorm:"size:200"`
	Address            string     `json:"address,omitempty" gorm:"size:200"`
	City               string     `json:"city,omitempty" gorm:"size:100"`
	Province           string     `json:"province,omitempty" gorm:"size:100"`
	PostalCode         string     `json:"postal_code,omitempty" gorm:"size:20"`
	RegistrationNumber string     `json:"registration_number,omitempty" gorm:"size:50"`
	YearEstablished    *int       `json:"year_established,omitempty"`
	Description        string     `json:"description,omitempty" gorm:"type:text"`
	Verified           bool       `json:"verified" gorm:"default:false"`
	Active             bool       `json:"active" gorm:"default:true;index"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`

	// Relations
	Solutions []EnergySolution `json:"solutions,omitempty" gorm:"foreignKey:ProviderID"`
}
