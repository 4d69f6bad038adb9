package service

import (
	"fmt"
	"strings"

	"hospital-bed-backend/internal/apperrors"
	"hospital-bed-backend/internal/models"
	"hospital-bed-backend/internal/repository"
)

// BedService is the source of truth for which beds exist, their type and
// their charge rate.
type BedService struct {
	bedRepo     *repository.BedRepository
	bedTypeRepo *repository.BedTypeRepository
	assignRepo  *repository.BedAssignRepository
	auditRepo   *repository.AuditRepository
}

func NewBedService(
	bedRepo *repository.BedRepository,
	bedTypeRepo *repository.BedTypeRepository,
	assignRepo *repository.BedAssignRepository,
	auditRepo *repository.AuditRepository,
) *BedService {
	return &BedService{
		bedRepo:     bedRepo,
		bedTypeRepo: bedTypeRepo,
		assignRepo:  assignRepo,
		auditRepo:   auditRepo,
	}
}

// BedInput carries the caller-supplied fields for creating or updating a bed
type BedInput struct {
	Name        string  `json:"name"`
	BedTypeID   uint    `json:"bed_type_id"`
	Charge      float64 `json:"charge"`
	Description string  `json:"description"`
}

// ListBeds retrieves all beds, optionally filtered by bed type
func (s *BedService) ListBeds(bedTypeID *uint) ([]models.Bed, error) {
	if bedTypeID != nil {
		return s.bedRepo.GetBedsByTypeID(*bedTypeID)
	}
	return s.bedRepo.GetAllBeds()
}

// GetBed retrieves a single bed by ID
func (s *BedService) GetBed(id uint) (*models.Bed, error) {
	return s.bedRepo.GetBedByID(id)
}

// CreateBed validates and persists a new bed
func (s *BedService) CreateBed(input BedInput, userID uint) (*models.Bed, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}
	if err := s.checkDuplicateName(input.Name, 0); err != nil {
		return nil, err
	}

	bed := &models.Bed{
		Name:        strings.TrimSpace(input.Name),
		BedTypeID:   input.BedTypeID,
		Charge:      input.Charge,
		Description: input.Description,
	}
	if err := s.bedRepo.CreateBed(bed); err != nil {
		return nil, fmt.Errorf("failed to create bed: %w", err)
	}

	userIDPtr := &userID
	details := fmt.Sprintf("Created bed: %s (type_id: %d, charge: %.2f)", bed.Name, bed.BedTypeID, bed.Charge)
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "bed_create", details)

	return bed, nil
}

// UpdateBed validates and updates an existing bed.
// The duplicate-name check excludes the bed being edited.
func (s *BedService) UpdateBed(id uint, input BedInput, userID uint) (*models.Bed, error) {
	bed, err := s.bedRepo.GetBedByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.validateInput(input); err != nil {
		return nil, err
	}
	if err := s.checkDuplicateName(input.Name, id); err != nil {
		return nil, err
	}

	bed.Name = strings.TrimSpace(input.Name)
	bed.BedTypeID = input.BedTypeID
	bed.Charge = input.Charge
	bed.Description = input.Description
	bed.BedType = models.BedType{}

	if err := s.bedRepo.UpdateBed(bed); err != nil {
		return nil, fmt.Errorf("failed to update bed: %w", err)
	}

	userIDPtr := &userID
	details := fmt.Sprintf("Updated bed: %s (ID: %d)", bed.Name, bed.ID)
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "bed_update", details)

	return bed, nil
}

// DeleteBed removes a bed. Deletion is refused while any assignment still
// references the bed.
func (s *BedService) DeleteBed(id uint, userID uint) error {
	bed, err := s.bedRepo.GetBedByID(id)
	if err != nil {
		return err
	}

	count, err := s.assignRepo.CountByBedID(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.ErrBedInUse
	}

	if err := s.bedRepo.DeleteBed(id); err != nil {
		return fmt.Errorf("failed to delete bed: %w", err)
	}

	userIDPtr := &userID
	details := fmt.Sprintf("Deleted bed: %s (ID: %d)", bed.Name, id)
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "bed_delete", details)

	return nil
}

func (s *BedService) validateInput(input BedInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return apperrors.Required("name")
	}
	if input.BedTypeID == 0 {
		return apperrors.Required("bed type")
	}
	if _, err := s.bedTypeRepo.GetBedTypeByID(input.BedTypeID); err != nil {
		return err
	}
	if input.Charge <= 0 {
		return apperrors.Invalid("charge", "must be greater than zero")
	}
	return nil
}

func (s *BedService) checkDuplicateName(name string, excludeID uint) error {
	existing, err := s.bedRepo.FindBedByName(strings.TrimSpace(name))
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != excludeID {
		return &apperrors.DuplicateNameError{Name: strings.TrimSpace(name)}
	}
	return nil
}
