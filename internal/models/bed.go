package models

import "time"

// Bed represents a physical, chargeable bed belonging to exactly one BedType
type Bed struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	BedTypeID   uint      `gorm:"not null;index" json:"bed_type_id"`
	Charge      float64   `gorm:"type:decimal(10,2);not null" json:"charge"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	BedType BedType `gorm:"foreignKey:BedTypeID" json:"bed_type,omitempty"`
}

// TableName specifies the table name for Bed model
func (Bed) TableName() string {
	return "beds"
}

// BedAvailability pairs a bed with its computed availability flag for the
// bed-type detail view
type BedAvailability struct {
	Bed
	Available bool `json:"available"`
}
