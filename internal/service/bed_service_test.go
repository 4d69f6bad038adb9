package service

import (
	"testing"

	"hospital-bed-backend/internal/apperrors"
	"hospital-bed-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newBedService(db *gorm.DB) *BedService {
	return NewBedService(
		repository.NewBedRepo(db),
		repository.NewBedTypeRepo(db),
		repository.NewBedAssignRepo(db),
		repository.NewAuditRepo(db),
	)
}

func TestCreateBed(t *testing.T) {
	db := newTestDB(t)
	bedType := seedBedType(t, db, "General")
	svc := newBedService(db)

	bed, err := svc.CreateBed(BedInput{Name: "ICU-1", BedTypeID: bedType.ID, Charge: 250}, 1)
	require.NoError(t, err)
	assert.NotZero(t, bed.ID)
	assert.Equal(t, "ICU-1", bed.Name)
}

func TestCreateBed_Validation(t *testing.T) {
	db := newTestDB(t)
	bedType := seedBedType(t, db, "General")
	svc := newBedService(db)

	var validationErr *apperrors.ValidationError

	_, err := svc.CreateBed(BedInput{Name: "  ", BedTypeID: bedType.ID, Charge: 100}, 1)
	require.ErrorAs(t, err, &validationErr)

	_, err = svc.CreateBed(BedInput{Name: "B1", Charge: 100}, 1)
	require.ErrorAs(t, err, &validationErr)

	_, err = svc.CreateBed(BedInput{Name: "B1", BedTypeID: bedType.ID, Charge: 0}, 1)
	require.ErrorAs(t, err, &validationErr)

	_, err = svc.CreateBed(BedInput{Name: "B1", BedTypeID: bedType.ID, Charge: -5}, 1)
	require.ErrorAs(t, err, &validationErr)

	// Referencing a bed type that does not exist.
	_, err = svc.CreateBed(BedInput{Name: "B1", BedTypeID: 999, Charge: 100}, 1)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateBed_DuplicateNameCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	bedType := seedBedType(t, db, "General")
	svc := newBedService(db)

	_, err := svc.CreateBed(BedInput{Name: "ICU-1", BedTypeID: bedType.ID, Charge: 250}, 1)
	require.NoError(t, err)

	_, err = svc.CreateBed(BedInput{Name: "icu-1", BedTypeID: bedType.ID, Charge: 250}, 1)
	var dupErr *apperrors.DuplicateNameError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "icu-1", dupErr.Name)
}

func TestUpdateBed_DuplicateCheckExcludesSelf(t *testing.T) {
	db := newTestDB(t)
	bedType := seedBedType(t, db, "General")
	svc := newBedService(db)

	b1, err := svc.CreateBed(BedInput{Name: "B1", BedTypeID: bedType.ID, Charge: 100}, 1)
	require.NoError(t, err)
	_, err = svc.CreateBed(BedInput{Name: "B2", BedTypeID: bedType.ID, Charge: 100}, 1)
	require.NoError(t, err)

	// Keeping its own name is not a collision.
	updated, err := svc.UpdateBed(b1.ID, BedInput{Name: "B1", BedTypeID: bedType.ID, Charge: 150}, 1)
	require.NoError(t, err)
	assert.Equal(t, 150.0, updated.Charge)

	// Renaming onto another bed is.
	_, err = svc.UpdateBed(b1.ID, BedInput{Name: "b2", BedTypeID: bedType.ID, Charge: 150}, 1)
	var dupErr *apperrors.DuplicateNameError
	require.ErrorAs(t, err, &dupErr)
}

func TestDeleteBed_BlockedWhileReferenced(t *testing.T) {
	db := newTestDB(t)
	bedType := seedBedType(t, db, "General")
	bed := seedBed(t, db, "B1", bedType.ID)
	patient := seedPatient(t, db, "Alice", "IPD-001")
	seedAssignment(t, db, patient.ID, bed.ID, true, nil)

	svc := newBedService(db)
	err := svc.DeleteBed(bed.ID, 1)
	require.ErrorIs(t, err, apperrors.ErrBedInUse)

	// Still there.
	_, err = svc.GetBed(bed.ID)
	require.NoError(t, err)
}

func TestDeleteBed(t *testing.T) {
	db := newTestDB(t)
	bedType := seedBedType(t, db, "General")
	bed := seedBed(t, db, "B1", bedType.ID)

	svc := newBedService(db)
	require.NoError(t, svc.DeleteBed(bed.ID, 1))

	_, err := svc.GetBed(bed.ID)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListBeds_FilterByType(t *testing.T) {
	db := newTestDB(t)
	icu := seedBedType(t, db, "ICU")
	general := seedBedType(t, db, "General")
	seedBed(t, db, "ICU-1", icu.ID)
	seedBed(t, db, "G-1", general.ID)
	seedBed(t, db, "G-2", general.ID)

	svc := newBedService(db)

	all, err := svc.ListBeds(nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	generalOnly, err := svc.ListBeds(&general.ID)
	require.NoError(t, err)
	assert.Len(t, generalOnly, 2)
	for _, bed := range generalOnly {
		assert.Equal(t, general.ID, bed.BedTypeID)
	}
}
