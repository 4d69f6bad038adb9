package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates a referenced patient, bed, bed type or
	// assignment id does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrBedInUse blocks deletion of a bed that assignments still reference.
	ErrBedInUse = errors.New("bed is referenced by existing assignments")
)

// NotFound wraps ErrNotFound with the entity name for the caller.
func NotFound(entity string) error {
	return fmt.Errorf("%s: %w", entity, ErrNotFound)
}

// ValidationError reports a required field that is missing or out of range.
// It is raised before any persistence attempt and is never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s is required", e.Field)
}

// Required builds a ValidationError for a missing field.
func Required(field string) *ValidationError {
	return &ValidationError{Field: field}
}

// Invalid builds a ValidationError for an out-of-range field.
func Invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// DuplicateNameError reports a bed name that collides case-insensitively
// with an existing bed.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("a bed named %q already exists", e.Name)
}

// DuplicateAssignmentError reports that the same patient/bed pair already
// has an assignment record.
type DuplicateAssignmentError struct {
	PatientID uint
	BedID     uint
}

func (e *DuplicateAssignmentError) Error() string {
	return fmt.Sprintf("patient %d already has an assignment for bed %d", e.PatientID, e.BedID)
}
