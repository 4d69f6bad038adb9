package service

import (
	"fmt"
	"strings"

	"hospital-bed-backend/internal/apperrors"
	"hospital-bed-backend/internal/models"
	"hospital-bed-backend/internal/repository"
)

type BedTypeService struct {
	bedTypeRepo *repository.BedTypeRepository
	bedRepo     *repository.BedRepository
	auditRepo   *repository.AuditRepository
}

func NewBedTypeService(
	bedTypeRepo *repository.BedTypeRepository,
	bedRepo *repository.BedRepository,
	auditRepo *repository.AuditRepository,
) *BedTypeService {
	return &BedTypeService{
		bedTypeRepo: bedTypeRepo,
		bedRepo:     bedRepo,
		auditRepo:   auditRepo,
	}
}

// BedTypeInput carries the caller-supplied fields for a bed type
type BedTypeInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ListBedTypes retrieves all bed types
func (s *BedTypeService) ListBedTypes() ([]models.BedType, error) {
	return s.bedTypeRepo.GetAllBedTypes()
}

// GetBedType retrieves a bed type by ID
func (s *BedTypeService) GetBedType(id uint) (*models.BedType, error) {
	return s.bedTypeRepo.GetBedTypeByID(id)
}

// CreateBedType creates a new bed type
func (s *BedTypeService) CreateBedType(input BedTypeInput, userID uint) (*models.BedType, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.Required("name")
	}

	bedType := &models.BedType{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
	}
	if err := s.bedTypeRepo.CreateBedType(bedType); err != nil {
		return nil, fmt.Errorf("failed to create bed type: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "bed_type_create", fmt.Sprintf("Created bed type: %s", bedType.Name))

	return bedType, nil
}

// UpdateBedType updates an existing bed type
func (s *BedTypeService) UpdateBedType(id uint, input BedTypeInput, userID uint) (*models.BedType, error) {
	bedType, err := s.bedTypeRepo.GetBedTypeByID(id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.Required("name")
	}

	bedType.Name = strings.TrimSpace(input.Name)
	bedType.Description = input.Description

	if err := s.bedTypeRepo.UpdateBedType(bedType); err != nil {
		return nil, fmt.Errorf("failed to update bed type: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "bed_type_update", fmt.Sprintf("Updated bed type: %s (ID: %d)", bedType.Name, id))

	return bedType, nil
}

// DeleteBedType removes a bed type. Deletion is refused while beds of this
// type still exist.
func (s *BedTypeService) DeleteBedType(id uint, userID uint) error {
	bedType, err := s.bedTypeRepo.GetBedTypeByID(id)
	if err != nil {
		return err
	}

	beds, err := s.bedRepo.GetBedsByTypeID(id)
	if err != nil {
		return err
	}
	if len(beds) > 0 {
		return apperrors.Invalid("bed type", "still has beds and cannot be deleted")
	}

	if err := s.bedTypeRepo.DeleteBedType(id); err != nil {
		return fmt.Errorf("failed to delete bed type: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "bed_type_delete", fmt.Sprintf("Deleted bed type: %s (ID: %d)", bedType.Name, id))

	return nil
}
