package model

// ProductCategory names a product grouping. Categories form a tree via
// ParentID; parent/child links are plain identifiers resolved by the
// repository, never an embedded object graph. A category with products
// or subcategories cannot be deleted.
type ProductCategory struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"uniqueIndex;size:100;not null"`
	Description string `json:"description,omitempty" gorm:"size:500"`
	ParentID    *uint  `json:"parent_id,omitempty" gorm:"index"`
	Active      bool   `json:"active" gorm:"default:true"`
}
