package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// EnergySolution is a green-energy offering listed by a provider.
// PriceRangeMin/PriceRangeMax bound the expected installation cost;
// ordering of the two is tolerated as given, matching how providers
// enter the data.
type EnergySolution struct {
	ID                       uint             `json:"id" gorm:"primaryKey"`
	ProviderID               uint             `json:"provider_id" gorm:"not null;index"`
	CategoryID               uint             `json:"category_id" gorm:"not null;index"`
	Name                     string           `json:"name" gorm:"size:150;not null"`
	Description              string           `json:"description,omitempty" gorm:"type:text"`
	Specifications           string           `json:"specifications,omitempty" gorm:"type:text"`
	InstallationRequirements string           `json:"installation_requirements,omitempty" gorm:"type:text"`
	MaintenanceInfo          string           `json:"maintenance_info,omitempty" gorm:"type:text"`
	CostEstimate             string           `json:"cost_estimate,omitempty" gorm:"size:100"`
	PriceRangeMin            *decimal.Decimal `json:"price_range_min,omitempty" gorm:"type:decimal(20,2)"`
	PriceRangeMax            *decimal.Decimal `json:"price_range_max,omitempty" gorm:"type:decimal(20,2)"`
	Currency                 string           `json:"currency" gorm:"size:3;default:'ZAR'"`
	ROIEstimate              string           `json:"roi_estimate,omitempty" gorm:"size:100"`
	ApplicationAreas         string           `json:"application_areas,omitempty" gorm:"type:text"`
	Available                bool             `json:"available" gorm:"default:true;index"`
	CreatedAt                time.Time        `json:"created_at"`
	UpdatedAt                *time.Time       `json:"updated_at,omitempty"`

	// Relations
	Provider EnergySolutionProvider `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	Category EnergySolutionCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}
