package repository

import (
	"errors"

	"hospital-bed-backend/internal/apperrors"
	"hospital-bed-backend/internal/models"

	"gorm.io/gorm"
)

type BedAssignRepository struct {
	db *gorm.DB
}

func NewBedAssignRepo(db *gorm.DB) *BedAssignRepository {
	return &BedAssignRepository{db: db}
}

// GetAllAssignments retrieves assignments, optionally filtered by active
// status, most recently created first.
func (r *BedAssignRepository) GetAllAssignments(isActive *bool) ([]models.BedAssign, error) {
	var assigns []models.BedAssign
	query := r.db.Preload("Patient").Preload("Bed")
	if isActive != nil {
		query = query.Where("is_active = ?", *isActive)
	}
	err := query.Order("created_at DESC, id DESC").Find(&assigns).Error
	return assigns, err
}

// GetAssignmentByID retrieves an assignment by ID
func (r *BedAssignRepository) GetAssignmentByID(id uint) (*models.BedAssign, error) {
	var assign models.BedAssign
	err := r.db.Preload("Patient").Preload("Bed").First(&assign, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("assignment")
		}
		return nil, err
	}
	return &assign, nil
}

// FindByPatientAndBed looks up an assignment for a (patient, bed) pair,
// excluding the record with excludeID when non-zero.
// Returns (nil, nil) when the pair has no assignment.
func (r *BedAssignRepository) FindByPatientAndBed(patientID, bedID, excludeID uint) (*models.BedAssign, error) {
	var assigns []models.BedAssign
	query := r.db.Where("patient_id = ? AND bed_id = ?", patientID, bedID)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Limit(1).Find(&assigns).Error
	if err != nil {
		return nil, err
	}
	if len(assigns) == 0 {
		return nil, nil
	}
	return &assigns[0], nil
}

// CountByBedID counts assignments referencing a bed
func (r *BedAssignRepository) CountByBedID(bedID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.BedAssign{}).
		Where("bed_id = ?", bedID).
		Count(&count).Error
	return count, err
}

// CreateAssignment creates a new assignment. A composite unique index on
// (patient_id, bed_id) makes the insert the atomic duplicate check; a
// violation surfaces as gorm.ErrDuplicatedKey.
func (r *BedAssignRepository) CreateAssignment(assign *models.BedAssign) error {
	return r.db.Create(assign).Error
}

// UpdateAssignment updates an existing assignment
func (r *BedAssignRepository) UpdateAssignment(assign *models.BedAssign) error {
	return r.db.Save(assign).Error
}

// SetActive updates only the active flag of an assignment. Existence is
// checked by the caller; re-applying the same value is a no-op.
func (r *BedAssignRepository) SetActive(id uint, active bool) error {
	return r.db.Model(&models.BedAssign{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

// DeleteAssignment removes an assignment permanently
func (r *BedAssignRepository) DeleteAssignment(id uint) error {
	return r.db.Delete(&models.BedAssign{}, id).Error
}
