package repository

import (
	"errors"

	"hospital-bed-backend/internal/apperrors"
	"hospital-bed-backend/internal/models"

	"gorm.io/gorm"
)

type BedTypeRepository struct {
	db *gorm.DB
}

func NewBedTypeRepo(db *gorm.DB) *BedTypeRepository {
	return &BedTypeRepository{db: db}
}

// GetAllBedTypes retrieves all bed types sorted by name
func (r *BedTypeRepository) GetAllBedTypes() ([]models.BedType, error) {
	var bedTypes []models.BedType
	err := r.db.Order("name ASC").Find(&bedTypes).Error
	return bedTypes, err
}

// GetBedTypeByID retrieves a bed type by ID
func (r *BedTypeRepository) GetBedTypeByID(id uint) (*models.BedType, error) {
	var bedType models.BedType
	err := r.db.First(&bedType, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("bed type")
		}
		return nil, err
	}
	return &bedType, nil
}

// CreateBedType creates a new bed type
func (r *BedTypeRepository) CreateBedType(bedType *models.BedType) error {
	return r.db.Create(bedType).Error
}

// UpdateBedType updates an existing bed type
func (r *BedTypeRepository) UpdateBedType(bedType *models.BedType) error {
	return r.db.Save(bedType).Error
}

// DeleteBedType removes a bed type permanently
func (r *BedTypeRepository) DeleteBedType(id uint) error {
	return r.db.Delete(&models.BedType{}, id).Error
}
