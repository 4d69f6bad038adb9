package models

import "time"

// BedType represents a category of beds (e.g., ICU, general ward)
type BedType struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for BedType model
func (BedType) TableName() string {
	return "bed_types"
}
