package models

import "time"

// BedAssign records which patient occupies which bed and for what period.
// The (patient_id, bed_id) pair carries a composite unique index so two
// concurrent creates for the same pair cannot both commit.
type BedAssign struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PatientID     uint      `gorm:"not null;uniqueIndex:uniq_patient_bed" json:"patient_id"`
	IPDNo         string    `gorm:"size:50;not null" json:"ipd_no"`
	BedID         uint      `gorm:"not null;index;uniqueIndex:uniq_patient_bed" json:"bed_id"`
	AssignDate    Date      `gorm:"not null" json:"assign_date"`
	DischargeDate *Date     `json:"discharge_date,omitempty"`
	Description   string    `gorm:"type:text" json:"description,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Bed     Bed     `gorm:"foreignKey:BedID" json:"bed,omitempty"`
}

// TableName specifies the table name for BedAssign model
func (BedAssign) TableName() string {
	return "bed_assigns"
}
