package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a farm product listed by a Farmer. Products are
// hard-deleted; availability is a soft toggle used by listings.
type Product struct {
	ID                     uint             `json:"id" gorm:"primaryKey"`
	FarmerID               uint             `json:"farmer_id" gorm:"not null;index"`
	CategoryID             uint             `json:"category_id" gorm:"not null;index"`
	Name                   string           `json:"name" gorm:"size:150;not null"`
	Description            string           `json:"description,omitempty" gorm:"type:text"`
	ProductionDate         time.Time        `json:"production_date" gorm:"not null;index"`
	Quantity               *decimal.Decimal `json:"quantity,omitempty" gorm:"type:decimal(12,2)"`
	Unit                   string           `json:"unit,omitempty" gorm:"size:30"`
	Price                  *decimal.Decimal `json:"price,omitempty" gorm:"type:decimal(20,2)"`
	Currency               string           `json:"currency" gorm:"size:3;default:'ZAR'"`
	SustainabilityFeatures string           `json:"sustainability_features,omitempty" gorm:"type:text"`
	Organic                bool             `json:"organic" gorm:"default:false"`
	Available              bool             `json:"available" gorm:"default:true;index"`
	CreatedAt              time.Time        `json:"created_at"`
	UpdatedAt              *time.Time       `json:"updated_at,omitempty"`

	// Relations
	Farmer   Farmer          `json:"-" gorm:"foreignKey:FarmerID"`
	Category ProductCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}
