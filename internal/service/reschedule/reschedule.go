package reschedule

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MahlumInnovationsLLC/MasterScheduler-sub001/internal/scheduling"
	"github.com/MahlumInnovationsLLC/MasterScheduler-sub001/internal/storage"
)

// Default spans, in days, for an assignment dropped onto the schedule. The
// grid the user was looking at decides how much runway the project gets.
const (
	DayGridDurationDays   = 7
	WeekGridDurationDays  = 14
	MonthGridDurationDays = 30
)

type ScheduleStorage interface {
	GetSchedule(ctx context.Context, id int64) (*storage.ScheduleAssignment, error)
	GetSchedules(ctx context.Context, bayID int64) ([]storage.ScheduleAssignment, error)
	CreateSchedule(ctx context.Context, a storage.ScheduleAssignment) (int64, error)
	UpdateSchedule(ctx context.Context, a storage.ScheduleAssignment) error
	DeleteSchedule(ctx context.Context, id int64) error
}

// ErrInvalidStatus rejects a transition to a status the schedule does not know.
var ErrInvalidStatus = errors.New("unknown schedule status")

// ConflictError reports the assignment already occupying the requested slot.
type ConflictError struct {
	Conflicting storage.ScheduleAssignment
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("bay %d already occupied by assignment %d (%s..%s)",
		e.Conflicting.BayID, e.Conflicting.ID, e.Conflicting.StartDate, e.Conflicting.EndDate)
}

// ScheduleService commits moves and drops against the schedule store. The
// conflict check and the commit run inside a per-bay critical section so two
// concurrent requests for the same bay cannot both pass the check; requests
// for different bays proceed independently.
type ScheduleService struct {
	storage ScheduleStorage

	mu       sync.Mutex
	bayLocks map[int64]*sync.Mutex
}

func NewScheduleService(storage ScheduleStorage) *ScheduleService {
	return &ScheduleService{
		storage:  storage,
		bayLocks: make(map[int64]*sync.Mutex),
	}
}

func (s *ScheduleService) bayLock(bayID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.bayLocks[bayID]
	if !ok {
		lock = &sync.Mutex{}
		s.bayLocks[bayID] = lock
	}
	return lock
}

// DurationDays maps the grid context at drop time to the new assignment's
// span in days.
func DurationDays(grid string) int {
	switch grid {
	case "day":
		return DayGridDurationDays
	case "month":
		return MonthGridDurationDays
	default:
		return WeekGridDurationDays
	}
}

// Move reassigns an existing schedule to a new bay and/or start date. The
// original span is preserved: the new end is the new start plus the old
// end-minus-start. On collision it returns a *ConflictError and commits
// nothing.
func (s *ScheduleService) Move(ctx context.Context, assignmentID, newBayID int64, newStart storage.Date) (*storage.ScheduleAssignment, error) {
	const op = "service.reschedule.Move"

	if newBayID == 0 || newStart.IsZero() {
		return nil, fmt.Errorf("%s: bay and start date are required", op)
	}

	a, err := s.storage.GetSchedule(ctx, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	span := scheduling.DaysBetween(a.StartDate, a.EndDate)
	newEnd := newStart.AddDays(span)

	lock := s.bayLock(newBayID)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.storage.GetSchedules(ctx, newBayID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if hit, ok := scheduling.FindConflict(newBayID, newStart, newEnd, a.ID, existing); ok {
		return nil, &ConflictError{Conflicting: hit}
	}

	moved := *a
	moved.BayID = newBayID
	moved.StartDate = newStart
	moved.EndDate = newEnd

	if err := s.storage.UpdateSchedule(ctx, moved); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &moved, nil
}

// Create schedules a project into a bay starting on the given date, spanning
// the grid's default duration. On collision it returns a *ConflictError and
// commits nothing.
func (s *ScheduleService) Create(ctx context.Context, req storage.CreateSchedule) (*storage.ScheduleAssignment, error) {
	const op = "service.reschedule.Create"

	if req.ProjectID == 0 || req.BayID == 0 || req.StartDate.IsZero() {
		return nil, fmt.Errorf("%s: project, bay and start date are required", op)
	}

	end := req.StartDate.AddDays(DurationDays(req.Grid))

	lock := s.bayLock(req.BayID)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.storage.GetSchedules(ctx, req.BayID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if hit, ok := scheduling.FindConflict(req.BayID, req.StartDate, end, 0, existing); ok {
		return nil, &ConflictError{Conflicting: hit}
	}

	a := storage.ScheduleAssignment{
		ProjectID: req.ProjectID,
		BayID:     req.BayID,
		StartDate: req.StartDate,
		EndDate:   end,
		Status:    storage.ScheduleStatusScheduled,
	}

	id, err := s.storage.CreateSchedule(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	a.ID = id

	return &a, nil
}

// UpdateStatus transitions an assignment between scheduled, in_progress,
// complete and maintenance.
func (s *ScheduleService) UpdateStatus(ctx context.Context, assignmentID int64, status string) (*storage.ScheduleAssignment, error) {
	const op = "service.reschedule.UpdateStatus"

	switch status {
	case storage.ScheduleStatusScheduled,
		storage.ScheduleStatusInProgress,
		storage.ScheduleStatusComplete,
		storage.ScheduleStatusMaintenance:
	default:
		return nil, fmt.Errorf("%s: %w: %q", op, ErrInvalidStatus, status)
	}

	a, err := s.storage.GetSchedule(ctx, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updated := *a
	updated.Status = status
	if err := s.storage.UpdateSchedule(ctx, updated); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &updated, nil
}

// Unschedule removes a project's assignment from its bay.
func (s *ScheduleService) Unschedule(ctx context.Context, assignmentID int64) error {
	const op = "service.reschedule.Unschedule"

	if err := s.storage.DeleteSchedule(ctx, assignmentID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
