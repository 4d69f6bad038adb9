package service

import (
	"errors"
	"fmt"

	"hospital-bed-backend/internal/apperrors"
	"hospital-bed-backend/internal/models"
	"hospital-bed-backend/internal/repository"

	"gorm.io/gorm"
)

// BedAssignService records which patient occupies which bed and for what
// period. It enforces the at-most-one-assignment-per-(patient, bed)
// invariant.
type BedAssignService struct {
	assignRepo  *repository.BedAssignRepository
	bedRepo     *repository.BedRepository
	patientRepo *repository.PatientRepository
	auditRepo   *repository.AuditRepository
}

func NewBedAssignService(
	assignRepo *repository.BedAssignRepository,
	bedRepo *repository.BedRepository,
	patientRepo *repository.PatientRepository,
	auditRepo *repository.AuditRepository,
) *BedAssignService {
	return &BedAssignService{
		assignRepo:  assignRepo,
		bedRepo:     bedRepo,
		patientRepo: patientRepo,
		auditRepo:   auditRepo,
	}
}

// BedAssignInput carries the caller-supplied fields for creating or updating
// an assignment. IsActive defaults to true when omitted.
type BedAssignInput struct {
	PatientID     uint         `json:"patient_id"`
	IPDNo         string       `json:"ipd_no"`
	BedID         uint         `json:"bed_id"`
	AssignDate    models.Date  `json:"assign_date"`
	DischargeDate *models.Date `json:"discharge_date"`
	Description   string       `json:"description"`
	IsActive      *bool        `json:"is_active"`
}

// ListAssignments retrieves assignments, optionally restricted to active or
// inactive ones, most recent first.
func (s *BedAssignService) ListAssignments(isActive *bool) ([]models.BedAssign, error) {
	return s.assignRepo.GetAllAssignments(isActive)
}

// GetAssignment retrieves a single assignment by ID
func (s *BedAssignService) GetAssignment(id uint) (*models.BedAssign, error) {
	return s.assignRepo.GetAssignmentByID(id)
}

// GetAdmissionNumber returns the patient's current IPD number, used to
// auto-populate the assignment form when a patient is selected.
func (s *BedAssignService) GetAdmissionNumber(patientID uint) (string, error) {
	patient, err := s.patientRepo.GetPatientByID(patientID)
	if err != nil {
		return "", err
	}
	if patient.IPDNo == "" {
		return "", fmt.Errorf("patient has no open admission: %w", apperrors.ErrNotFound)
	}
	return patient.IPDNo, nil
}

// CreateAssignment validates and persists a new assignment
func (s *BedAssignService) CreateAssignment(input BedAssignInput, userID uint) (*models.BedAssign, error) {
	if err := s.validateInput(input, 0); err != nil {
		return nil, err
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	assign := &models.BedAssign{
		PatientID:     input.PatientID,
		IPDNo:         input.IPDNo,
		BedID:         input.BedID,
		AssignDate:    input.AssignDate,
		DischargeDate: input.DischargeDate,
		Description:   input.Description,
		IsActive:      active,
	}
	if err := s.assignRepo.CreateAssignment(assign); err != nil {
		// The composite unique index catches the pair a concurrent request
		// slipped in after our pre-check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &apperrors.DuplicateAssignmentError{PatientID: input.PatientID, BedID: input.BedID}
		}
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	userIDPtr := &userID
	details := fmt.Sprintf("Assigned patient %d to bed %d (IPD: %s)", assign.PatientID, assign.BedID, assign.IPDNo)
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "bed_assign_create", details)

	return assign, nil
}

// UpdateAssignment validates and updates an existing assignment.
// The duplicate-pair check excludes the record being edited.
func (s *BedAssignService) UpdateAssignment(id uint, input BedAssignInput, userID uint) (*models.BedAssign, error) {
	assign, err := s.assignRepo.GetAssignmentByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.validateInput(input, id); err != nil {
		return nil, err
	}

	assign.PatientID = input.PatientID
	assign.IPDNo = input.IPDNo
	assign.BedID = input.BedID
	assign.AssignDate = input.AssignDate
	assign.DischargeDate = input.DischargeDate
	assign.Description = input.Description
	if input.IsActive != nil {
		assign.IsActive = *input.IsActive
	}
	assign.Patient = models.Patient{}
	assign.Bed = models.Bed{}

	if err := s.assignRepo.UpdateAssignment(assign); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &apperrors.DuplicateAssignmentError{PatientID: input.PatientID, BedID: input.BedID}
		}
		return nil, fmt.Errorf("failed to update assignment: %w", err)
	}

	userIDPtr := &userID
	details := fmt.Sprintf("Updated assignment ID %d (patient %d, bed %d)", assign.ID, assign.PatientID, assign.BedID)
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "bed_assign_update", details)

	return assign, nil
}

// SetActive toggles the active flag of an assignment without revalidating
// the other fields. Applying the same value twice is a no-op.
func (s *BedAssignService) SetActive(id uint, active bool, userID uint) (*models.BedAssign, error) {
	if _, err := s.assignRepo.GetAssignmentByID(id); err != nil {
		return nil, err
	}

	if err := s.assignRepo.SetActive(id, active); err != nil {
		return nil, fmt.Errorf("failed to update assignment status: %w", err)
	}

	userIDPtr := &userID
	details := fmt.Sprintf("Set assignment ID %d active=%t", id, active)
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "bed_assign_status", details)

	return s.assignRepo.GetAssignmentByID(id)
}

// DeleteAssignment removes an assignment unconditionally
func (s *BedAssignService) DeleteAssignment(id uint, userID uint) error {
	assign, err := s.assignRepo.GetAssignmentByID(id)
	if err != nil {
		return err
	}

	if err := s.assignRepo.DeleteAssignment(id); err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}

	userIDPtr := &userID
	details := fmt.Sprintf("Deleted assignment ID %d (patient %d, bed %d)", id, assign.PatientID, assign.BedID)
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "bed_assign_delete", details)

	return nil
}

// validateInput applies the create/update checks in order: required fields,
// bed presence, referenced entities, then the duplicate-pair rule.
func (s *BedAssignService) validateInput(input BedAssignInput, excludeID uint) error {
	if input.PatientID == 0 {
		return apperrors.Required("patient")
	}
	if input.IPDNo == "" {
		return apperrors.Required("admission number")
	}
	if input.AssignDate.IsZero() {
		return apperrors.Required("assign date")
	}
	if input.BedID == 0 {
		return apperrors.Required("bed")
	}

	if _, err := s.patientRepo.GetPatientByID(input.PatientID); err != nil {
		return err
	}
	if _, err := s.bedRepo.GetBedByID(input.BedID); err != nil {
		return err
	}

	existing, err := s.assignRepo.FindByPatientAndBed(input.PatientID, input.BedID, excludeID)
	if err != nil {
		return err
	}
	if existing != nil {
		return &apperrors.DuplicateAssignmentError{PatientID: input.PatientID, BedID: input.BedID}
	}
	return nil
}
