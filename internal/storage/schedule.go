package storage

// Assignment statuses.
const (
	ScheduleStatusScheduled   = "scheduled"
	ScheduleStatusInProgress  = "in_progress"
	ScheduleStatusComplete    = "complete"
	ScheduleStatusMaintenance = "maintenance"
)

// ScheduleAssignment is a time-bounded occupancy of a bay by a project.
// StartDate and EndDate are both inclusive.
type ScheduleAssignment struct {
	ID        int64  `json:"id"`
	ProjectID int64  `json:"project_id"`
	BayID     int64  `json:"bay_id"`
	StartDate Date   `json:"start_date"`
	EndDate   Date   `json:"end_date"`
	Status    string `json:"status"`
}

type CreateSchedule struct {
	ProjectID int64  `json:"project_id"`
	BayID     int64  `json:"bay_id"`
	StartDate Date   `json:"start_date"`
	Grid      string `json:"grid"`
}

type MoveSchedule struct {
	BayID     int64 `json:"bay_id"`
	StartDate Date  `json:"start_date"`
}

type UpdateScheduleStatus struct {
	Status string `json:"status"`
}
