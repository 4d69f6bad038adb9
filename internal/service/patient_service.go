package service

import (
	"fmt"
	"strings"

	"hospital-bed-backend/internal/apperrors"
	"hospital-bed-backend/internal/models"
	"hospital-bed-backend/internal/repository"
)

// PatientService exposes the patient directory consumed by the assignment
// screens.
type PatientService struct {
	patientRepo *repository.PatientRepository
	auditRepo   *repository.AuditRepository
}

func NewPatientService(
	patientRepo *repository.PatientRepository,
	auditRepo *repository.AuditRepository,
) *PatientService {
	return &PatientService{
		patientRepo: patientRepo,
		auditRepo:   auditRepo,
	}
}

// PatientInput carries the caller-supplied fields for a patient
type PatientInput struct {
	Name  string `json:"name"`
	IPDNo string `json:"ipd_no"`
}

// ListPatients retrieves all patients
func (s *PatientService) ListPatients() ([]models.Patient, error) {
	return s.patientRepo.GetAllPatients()
}

// GetPatient retrieves a patient by ID
func (s *PatientService) GetPatient(id uint) (*models.Patient, error) {
	return s.patientRepo.GetPatientByID(id)
}

// CreatePatient creates a new patient
func (s *PatientService) CreatePatient(input PatientInput, userID uint) (*models.Patient, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.Required("name")
	}

	patient := &models.Patient{
		Name:  strings.TrimSpace(input.Name),
		IPDNo: input.IPDNo,
	}
	if err := s.patientRepo.CreatePatient(patient); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "patient_create", fmt.Sprintf("Created patient: %s", patient.Name))

	return patient, nil
}
