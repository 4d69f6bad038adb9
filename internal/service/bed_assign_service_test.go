package service

import (
	"testing"
	"time"

	"hospital-bed-backend/internal/apperrors"
	"hospital-bed-backend/internal/models"
	"hospital-bed-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAssignService(db *gorm.DB) *BedAssignService {
	return NewBedAssignService(
		repository.NewBedAssignRepo(db),
		repository.NewBedRepo(db),
		repository.NewPatientRepo(db),
		repository.NewAuditRepo(db),
	)
}

func assignInput(patientID, bedID uint) BedAssignInput {
	return BedAssignInput{
		PatientID:  patientID,
		IPDNo:      "IPD-001",
		BedID:      bedID,
		AssignDate: models.NewDate(2024, time.March, 1),
	}
}

func TestCreateAssignment(t *testing.T) {
	db := newTestDB(t)
	bedType := seedBedType(t, db, "General")
	bed := seedBed(t, db, "B1", bedType.ID)
	patient := seedPatient(t, db, "Alice", "IPD-001")

	svc := newAssignService(db)
	assign, err := svc.CreateAssignment(assignInput(patient.ID, bed.ID), 1)
	require.NoError(t, err)
	assert.NotZero(t, assign.ID)
	assert.True(t, assign.IsActive, "active flag defaults to true")
	assert.Equal(t, "2024-03-01", assign.AssignDate.String())
}

func TestCreateAssignment_ExplicitInactive(t *testing.T) {
	db := newTestDB(t)
	bedType := seedBedType(t, db, "General")
	bed := seedBed(t, db, "B1", bedType.ID)
	patient := seedPatient(t, db, "Alice", "IPD-001")

	inactive := false
	input := assignInput(patient.ID, bed.ID)
	input.IsActive = &inactive

	svc := newAssignService(db)
	assign, err := svc.CreateAssignment(input, 1)
	require.NoError(t, err)
	assert.False(t, assign.IsActive)
}

func TestCreateAssignment_ValidationOrder(t *testing.T) {
	db := newTestDB(t)
	bedType := seedBedType(t, db, "General")
	bed := seedBed(t, db, "B1", bedType.ID)
	patient := seedPatient(t, db, "Alice", "IPD-001")

	svc := newAssignService(db)

	cases := []struct {
		name    string
		mutate  func(*BedAssignInput)
		message string
	}{
		{"missing patient", func(in *BedAssignInput) { in.PatientID = 0 }, "patient is required"},
		{"missing admission number", func(in *BedAssignInput) { in.IPDNo = "" }, "admission number is required"},
		{"missing assign date", func(in *BedAssignInput) { in.AssignDate = models.Date{} }, "assign date is required"},
		{"missing bed", func(in *BedAssignInput) { in.BedID = 0 }, "bed is required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := assignInput(patient.ID, bed.ID)
			tc.mutate(&input)

			_, err := svc.CreateAssignment(input, 1)
			var validationErr *apperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.message, err.Error())
		})
	}
}

func TestCreateAssignment_UnknownReferences(t *testing.T) {
	db := newTestDB(t)
	bedType := seedBedType(t, db, "General")
	bed := seedBed(t, db, "B1", bedType.ID)
	patient := seedPatient(t, db, "Alice", "IPD-001")

	svc := newAssignService(db)

	_, err := svc.CreateAssignment(assignInput(999, bed.ID), 1)
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.CreateAssignment(assignInput(patient.ID, 999), 1)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateAssignment_DuplicatePair(t *testing.T) {
	db := newTestDB(t)
	bedType := seedBedType(t, db, "General")
	b1 := seedBed(t, db, "B1", bedType.ID)
	b2 := seedBed(t, db, "B2", bedType.ID)
	patient := seedPatient(t, db, "Alice", "IPD-001")

	svc := newAssignService(db)

	_, err := svc.CreateAssignment(assignInput(patient.ID, b1.ID), 1)
	require.NoError(t, err)

	_, err = svc.CreateAssignment(assignInput(patient.ID, b1.ID), 1)
	var dupErr *apperrors.DuplicateAssignmentError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, patient.ID, dupErr.PatientID)
	assert.Equal(t, b1.ID, dupErr.BedID)

	// A different bed for the same patient is fine.
	_, err = svc.CreateAssignment(assignInput(patient.ID, b2.ID), 1)
	require.NoError(t, err)
}

func TestCreateAssignment_UniqueIndexBackstop(t *testing.T) {
	db := newTestDB(t)
	bedType := seedBedType(t, db, "General")
	bed := seedBed(t, db, "B1", bedType.ID)
	patient := seedPatient(t, db, "Alice", "IPD-001")

	// Writing through the repository skips the service pre-check; the
	// composite unique index still rejects the second insert, which is what
	// closes the concurrent-create race.
	repo := repository.NewBedAssignRepo(db)
	first := &models.BedAssign{PatientID: patient.ID, IPDNo: "IPD-001", BedID: bed.ID, AssignDate: models.NewDate(2024, time.March, 1), IsActive: true}
	require.NoError(t, repo.CreateAssignment(first))

	second := &models.BedAssign{PatientID: patient.ID, IPDNo: "IPD-001", BedID: bed.ID, AssignDate: models.NewDate(2024, time.March, 2), IsActive: true}
	err := repo.CreateAssignment(second)
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestUpdateAssignment_DuplicateCheckExcludesSelf(t *testing.T) {
	db := newTestDB(t)
	bedType := seedBedType(t, db, "General")
	b1 := seedBed(t, db, "B1", bedType.ID)
	b2 := seedBed(t, db, "B2", bedType.ID)
	p1 := seedPatient(t, db, "Alice", "IPD-001")
	p2 := seedPatient(t, db, "Bob", "IPD-002")

	svc := newAssignService(db)

	a1, err := svc.CreateAssignment(assignInput(p1.ID, b1.ID), 1)
	require.NoError(t, err)
	_, err = svc.CreateAssignment(assignInput(p2.ID, b2.ID), 1)
	require.NoError(t, err)

	// Re-saving with its own pair succeeds.
	input := assignInput(p1.ID, b1.ID)
	input.Description = "moved closer to the window"
	updated, err := svc.UpdateAssignment(a1.ID, input, 1)
	require.NoError(t, err)
	assert.Equal(t, "moved closer to the window", updated.Description)

	// Taking over another record's pair fails.
	_, err = svc.UpdateAssignment(a1.ID, assignInput(p2.ID, b2.ID), 1)
	var dupErr *apperrors.DuplicateAssignmentError
	require.ErrorAs(t, err, &dupErr)
}

func TestSetActive_Idempotent(t *testing.T) {
	db := newTestDB(t)
	bedType := seedBedType(t, db, "General")
	bed := seedBed(t, db, "B1", bedType.ID)
	patient := seedPatient(t, db, "Alice", "IPD-001")

	svc := newAssignService(db)
	assign, err := svc.CreateAssignment(assignInput(patient.ID, bed.ID), 1)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		updated, err := svc.SetActive(assign.ID, true, 1)
		require.NoError(t, err)
		assert.True(t, updated.IsActive)
	}

	var count int64
	require.NoError(t, db.Model(&models.BedAssign{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "toggling must not create records")

	updated, err := svc.SetActive(assign.ID, false, 1)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
}

func TestSetActive_UnknownAssignment(t *testing.T) {
	db := newTestDB(t)
	svc := newAssignService(db)

	_, err := svc.SetActive(42, true, 1)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListAssignments_FilterAndOrder(t *testing.T) {
	db := newTestDB(t)
	bedType := seedBedType(t, db, "General")
	b1 := seedBed(t, db, "B1", bedType.ID)
	b2 := seedBed(t, db, "B2", bedType.ID)
	p1 := seedPatient(t, db, "Alice", "IPD-001")
	p2 := seedPatient(t, db, "Bob", "IPD-002")

	svc := newAssignService(db)

	first, err := svc.CreateAssignment(assignInput(p1.ID, b1.ID), 1)
	require.NoError(t, err)

	inactive := false
	input := assignInput(p2.ID, b2.ID)
	input.IsActive = &inactive
	second, err := svc.CreateAssignment(input, 1)
	require.NoError(t, err)

	all, err := svc.ListAssignments(nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID, "most recent first")
	assert.Equal(t, first.ID, all[1].ID)

	active := true
	activeOnly, err := svc.ListAssignments(&active)
	require.NoError(t, err)
	require.Len(t, activeOnly, 1)
	assert.Equal(t, first.ID, activeOnly[0].ID)

	inactiveOnly, err := svc.ListAssignments(&inactive)
	require.NoError(t, err)
	require.Len(t, inactiveOnly, 1)
	assert.Equal(t, second.ID, inactiveOnly[0].ID)
}

func TestGetAdmissionNumber(t *testing.T) {
	db := newTestDB(t)
	admitted := seedPatient(t, db, "Alice", "IPD-001")
	discharged := seedPatient(t, db, "Bob", "")

	svc := newAssignService(db)

	ipdNo, err := svc.GetAdmissionNumber(admitted.ID)
	require.NoError(t, err)
	assert.Equal(t, "IPD-001", ipdNo)

	_, err = svc.GetAdmissionNumber(discharged.ID)
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.GetAdmissionNumber(999)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteAssignment(t *testing.T) {
	db := newTestDB(t)
	bedType := seedBedType(t, db, "General")
	bed := seedBed(t, db, "B1", bedType.ID)
	patient := seedPatient(t, db, "Alice", "IPD-001")

	svc := newAssignService(db)
	assign, err := svc.CreateAssignment(assignInput(patient.ID, bed.ID), 1)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAssignment(assign.ID, 1))

	_, err = svc.GetAssignment(assign.ID)
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	err = svc.DeleteAssignment(assign.ID, 1)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}
