package repository

import (
	"errors"

	"hospital-bed-backend/internal/apperrors"
	"hospital-bed-backend/internal/models"

	"gorm.io/gorm"
)

type BedRepository struct {
	db *gorm.DB
}

func NewBedRepo(db *gorm.DB) *BedRepository {
	return &BedRepository{db: db}
}

// GetAllBeds retrieves all beds in stable id order.
// The auto-select algorithm depends on this ordering staying deterministic.
func (r *BedRepository) GetAllBeds() ([]models.Bed, error) {
	var beds []models.Bed
	err := r.db.Preload("BedType").
		Order("id ASC").
		Find(&beds).Error
	return beds, err
}

// GetBedsByTypeID retrieves all beds of a given bed type in stable id order
func (r *BedRepository) GetBedsByTypeID(bedTypeID uint) ([]models.Bed, error) {
	var beds []models.Bed
	err := r.db.Where("bed_type_id = ?", bedTypeID).
		Preload("BedType").
		Order("id ASC").
		Find(&beds).Error
	return beds, err
}

// GetBedByID retrieves a bed by ID
func (r *BedRepository) GetBedByID(id uint) (*models.Bed, error) {
	var bed models.Bed
	err := r.db.Preload("BedType").First(&bed, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("bed")
		}
		return nil, err
	}
	return &bed, nil
}

// FindBedByName looks up a bed by name, case-insensitively.
// Returns (nil, nil) when no bed carries the name.
func (r *BedRepository) FindBedByName(name string) (*models.Bed, error) {
	var beds []models.Bed
	err := r.db.Where("LOWER(name) = LOWER(?)", name).
		Limit(1).
		Find(&beds).Error
	if err != nil {
		return nil, err
	}
	if len(beds) == 0 {
		return nil, nil
	}
	return &beds[0], nil
}

// CreateBed creates a new bed
func (r *BedRepository) CreateBed(bed *models.Bed) error {
	return r.db.Create(bed).Error
}

// UpdateBed updates an existing bed
func (r *BedRepository) UpdateBed(bed *models.Bed) error {
	return r.db.Save(bed).Error
}

// DeleteBed removes a bed permanently
func (r *BedRepository) DeleteBed(id uint) error {
	return r.db.Delete(&models.Bed{}, id).Error
}
