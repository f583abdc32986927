package model

import "time"

// Employee is the staff profile extending a User with the Employee or
// Administrator role. SupervisorID is kept as a plain identifier, not
// an embedded object graph; the repository resolves it on demand.
type Employee struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	UserID         uint       `json:"user_id" gorm:"uniqueIndex;not null"`
	EmployeeNumber string     `json:"employee_number,omitempty" gorm:"size:50"`
	Department     string     `json:"department,omitempty" gorm:"size:100;index"`
	Position       string     `json:"position,omitempty" gorm:"size:100"`
	HireDate       *time.Time `json:"hire_date,omitempty"`
	SupervisorID   *uint      `json:"supervisor_id,omitempty"`
	OfficeLocation string     `json:"office_location,omitempty" gorm:"size:100"`
	Active         bool       `json:"active" gorm:"default:true"`

	// Relations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
