package models

import "time"

// Patient represents an entry in the patient directory. IPDNo holds the
// in-patient admission number while an admission is open; it is empty once
// the patient is discharged.
type Patient struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	IPDNo     string    `gorm:"size:50" json:"ipd_no,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for Patient model
func (Patient) TableName() string {
	return "patients"
}
