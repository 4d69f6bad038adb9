package service

import (
	"time"

	"hospital-bed-backend/internal/models"
	"hospital-bed-backend/internal/repository"
)

// OccupancyRule decides which beds count as occupied at a given moment.
//
// Two rules exist because the two consuming screens genuinely differ: the
// assignment screen goes by the active flag, while the bed-type detail view
// goes by discharge date. They are kept as separate named strategies and are
// never unified; a bed can be occupied under one rule and free under the
// other.
type OccupancyRule interface {
	OccupiedBedIDs(assigns []models.BedAssign, now time.Time) map[uint]bool
}

// ActiveFlagOccupancy marks a bed occupied if any assignment referencing it
// has the active flag set. Used by the assignment-screen auto-select.
type ActiveFlagOccupancy struct{}

func (ActiveFlagOccupancy) OccupiedBedIDs(assigns []models.BedAssign, _ time.Time) map[uint]bool {
	occupied := make(map[uint]bool)
	for _, a := range assigns {
		if a.IsActive {
			occupied[a.BedID] = true
		}
	}
	return occupied
}

// DischargeDateOccupancy marks a bed occupied if any assignment referencing
// it has no discharge date, or a discharge date strictly after now. Used by
// the bed-type detail view.
type DischargeDateOccupancy struct{}

func (DischargeDateOccupancy) OccupiedBedIDs(assigns []models.BedAssign, now time.Time) map[uint]bool {
	occupied := make(map[uint]bool)
	for _, a := range assigns {
		if a.DischargeDate == nil || a.DischargeDate.After(now) {
			occupied[a.BedID] = true
		}
	}
	return occupied
}

// AvailabilityService derives which beds are currently free from the bed
// registry and the assignment ledger. It is read-only and stateless between
// invocations: every call re-reads both snapshots, nothing is cached.
type AvailabilityService struct {
	bedRepo    *repository.BedRepository
	assignRepo *repository.BedAssignRepository
	now        func() time.Time
}

func NewAvailabilityService(
	bedRepo *repository.BedRepository,
	assignRepo *repository.BedAssignRepository,
) *AvailabilityService {
	return &AvailabilityService{
		bedRepo:    bedRepo,
		assignRepo: assignRepo,
		now:        time.Now,
	}
}

// AutoSelectBed returns the first free bed in list order, first-fit with no
// ranking beyond list position. Candidates are all beds, or all beds of one
// type when bedTypeID is non-nil. Occupancy follows the active-flag rule.
//
// A nil bed with a nil error means no bed is free; callers treat that as an
// advisory outcome, not a failure.
func (s *AvailabilityService) AutoSelectBed(bedTypeID *uint) (*models.Bed, error) {
	beds, err := s.candidateBeds(bedTypeID)
	if err != nil {
		return nil, err
	}

	assigns, err := s.assignRepo.GetAllAssignments(nil)
	if err != nil {
		return nil, err
	}

	occupied := ActiveFlagOccupancy{}.OccupiedBedIDs(assigns, s.now())
	for i := range beds {
		if !occupied[beds[i].ID] {
			return &beds[i], nil
		}
	}
	return nil, nil
}

// BedAvailability evaluates the discharge-date rule independently for every
// bed of the given type, producing a per-bed available flag. Recomputed on
// every call.
func (s *AvailabilityService) BedAvailability(bedTypeID uint) ([]models.BedAvailability, error) {
	beds, err := s.bedRepo.GetBedsByTypeID(bedTypeID)
	if err != nil {
		return nil, err
	}

	assigns, err := s.assignRepo.GetAllAssignments(nil)
	if err != nil {
		return nil, err
	}

	occupied := DischargeDateOccupancy{}.OccupiedBedIDs(assigns, s.now())
	result := make([]models.BedAvailability, 0, len(beds))
	for _, bed := range beds {
		result = append(result, models.BedAvailability{
			Bed:       bed,
			Available: !occupied[bed.ID],
		})
	}
	return result, nil
}

func (s *AvailabilityService) candidateBeds(bedTypeID *uint) ([]models.Bed, error) {
	if bedTypeID != nil {
		return s.bedRepo.GetBedsByTypeID(*bedTypeID)
	}
	return s.bedRepo.GetAllBeds()
}
