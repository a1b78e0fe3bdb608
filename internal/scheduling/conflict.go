package scheduling

import (
	"github.com/MahlumInnovationsLLC/MasterScheduler-sub001/internal/storage"
)

// HasConflict reports whether the candidate interval [start, end] collides
// with any existing non-complete assignment in the bay. Boundaries are
// inclusive on both sides: an assignment ending the day a new one starts is
// still a collision, the floor crew needs the bay clear before a new project
// rolls in.
//
// excludeID skips one assignment, used when checking a move against itself;
// pass 0 to check everything. Degenerate input never errors, it just reports
// no conflict and leaves the decision with the caller.
func HasConflict(bayID int64, start, end storage.Date, excludeID int64, assignments []storage.ScheduleAssignment) bool {
	if bayID == 0 || start.IsZero() || end.IsZero() {
		return false
	}

	for _, a := range assignments {
		if a.BayID != bayID {
			continue
		}
		if excludeID != 0 && a.ID == excludeID {
			continue
		}
		if a.Status == storage.ScheduleStatusComplete {
			continue
		}
		if a.StartDate.IsZero() || a.EndDate.IsZero() {
			continue
		}
		if !start.After(a.EndDate.Time) && !end.Before(a.StartDate.Time) {
			return true
		}
	}

	return false
}

// FindConflict is HasConflict but returns the first colliding assignment so
// the caller can show the user what is in the way.
func FindConflict(bayID int64, start, end storage.Date, excludeID int64, assignments []storage.ScheduleAssignment) (storage.ScheduleAssignment, bool) {
	if bayID == 0 || start.IsZero() || end.IsZero() {
		return storage.ScheduleAssignment{}, false
	}

	for _, a := range assignments {
		if a.BayID != bayID {
			continue
		}
		if excludeID != 0 && a.ID == excludeID {
			continue
		}
		if a.Status == storage.ScheduleStatusComplete {
			continue
		}
		if a.StartDate.IsZero() || a.EndDate.IsZero() {
			continue
		}
		if !start.After(a.EndDate.Time) && !end.Before(a.StartDate.Time) {
			return a, true
		}
	}

	return storage.ScheduleAssignment{}, false
}
