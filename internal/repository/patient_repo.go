package repository

import (
	"errors"

	"hospital-bed-backend/internal/apperrors"
	"hospital-bed-backend/internal/models"

	"gorm.io/gorm"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepo(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// GetAllPatients retrieves all patients sorted by name
func (r *PatientRepository) GetAllPatients() ([]models.Patient, error) {
	var patients []models.Patient
	err := r.db.Order("name ASC").Find(&patients).Error
	return patients, err
}

// GetPatientByID retrieves a patient by ID
func (r *PatientRepository) GetPatientByID(id uint) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.First(&patient, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("patient")
		}
		return nil, err
	}
	return &patient, nil
}

// CreatePatient creates a new patient
func (r *PatientRepository) CreatePatient(patient *models.Patient) error {
	return r.db.Create(patient).Error
}

// UpdatePatient updates an existing patient
func (r *PatientRepository) UpdatePatient(patient *models.Patient) error {
	return r.db.Save(patient).Error
}
