package model

// EnergySolutionCategory names a grouping of energy solutions
// (solar, wind, biogas, ...). Flat, unlike product categories.
type EnergySolutionCategory struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"uniqueIndex;size:100;not null"`
	Description string `json:"description,omitempty" gorm:"size:500"`
	Active      bool   `json:"active" gorm:"default:true"`
}
