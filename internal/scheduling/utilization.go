package scheduling

import (
	"time"

	"github.com/MahlumInnovationsLLC/MasterScheduler-sub001/internal/storage"
)

// Model selects which capacity model Utilization runs. The simple occupancy
// model is the system-of-record number shown on the dashboard; the weighted
// peak-load model is an auxiliary metric for staffing planning. They answer
// different questions and are never merged.
type Model string

const (
	ModelSimple Model = "simple"
	ModelPeak   Model = "peak"
)

const (
	peakLoadWeeks     = 16
	decayPerWeek      = 0.05
	decayFloor        = 0.25
	fullOccupancyPct = 100.0
	halfOccupancyPct = 50.0
)

type BayUtilization struct {
	BayID   int64   `json:"bay_id"`
	BayName string  `json:"bay_name"`
	Percent float64 `json:"percent"`
}

type FleetUtilization struct {
	Model Model            `json:"model"`
	Bays  []BayUtilization `json:"bays"`
	Fleet float64          `json:"fleet"`
}

// Utilization dispatches to the selected model; anything other than
// ModelPeak falls back to the system-of-record simple model.
func Utilization(model Model, bays []storage.Bay, projects []storage.Project, assignments []storage.ScheduleAssignment, now time.Time) FleetUtilization {
	if model == ModelPeak {
		return PeakLoadUtilization(bays, projects, assignments, now)
	}
	return SimpleUtilization(bays, assignments, now)
}

// SimpleUtilization is the occupancy-count model: per active bay, zero
// current assignments is 0%, one is 50%, two or more is 100%, regardless of
// hours or duration. Fleet is the mean across active bays.
func SimpleUtilization(bays []storage.Bay, assignments []storage.ScheduleAssignment, now time.Time) FleetUtilization {
	today := storage.DateOf(now)
	result := FleetUtilization{Model: ModelSimple}

	var sum float64
	for _, bay := range bays {
		if !bay.IsActive {
			continue
		}
		count := 0
		for _, a := range assignments {
			if a.BayID != bay.ID || a.Status == storage.ScheduleStatusComplete {
				continue
			}
			if a.EndDate.Before(today.Time) {
				continue
			}
			count++
		}
		percent := 0.0
		switch {
		case count >= 2:
			percent = fullOccupancyPct
		case count == 1:
			percent = halfOccupancyPct
		}
		result.Bays = append(result.Bays, BayUtilization{BayID: bay.ID, BayName: bay.Name, Percent: percent})
		sum += percent
	}

	if len(result.Bays) > 0 {
		result.Fleet = sum / float64(len(result.Bays))
	}
	return result
}

// PeakLoadUtilization is the weighted peak-load model. Each active schedule
// spreads its project's hours evenly over its days; those hours land in the
// next 16 calendar weeks with a decay that discounts far-out weeks down to a
// 0.25 floor. A bay's utilization is its single worst week against weekly
// capacity (staff * hours per person), capped at 100. Only active bays with
// staff assigned participate; fleet is the mean across them.
func PeakLoadUtilization(bays []storage.Bay, projects []storage.Project, assignments []storage.ScheduleAssignment, now time.Time) FleetUtilization {
	today := storage.DateOf(now)
	weekStart := startOfWeek(today)
	result := FleetUtilization{Model: ModelPeak}

	hoursByProject := make(map[int64]float64, len(projects))
	for _, p := range projects {
		if p.TotalHours != nil {
			hoursByProject[p.ID] = *p.TotalHours
		}
	}

	var sum float64
	for _, bay := range bays {
		if !bay.IsActive || bay.StaffCount <= 0 {
			continue
		}

		var weekLoad [peakLoadWeeks]float64
		for _, a := range assignments {
			if a.BayID != bay.ID || a.Status == storage.ScheduleStatusComplete {
				continue
			}
			if a.EndDate.Before(today.Time) {
				continue
			}
			total, ok := hoursByProject[a.ProjectID]
			if !ok || total <= 0 {
				continue
			}
			durationDays := DaysBetween(a.StartDate, a.EndDate) + 1
			if durationDays <= 0 {
				continue
			}
			hoursPerDay := total / float64(durationDays)

			for w := 0; w < peakLoadWeeks; w++ {
				ws := weekStart.AddDays(w * 7)
				we := ws.AddDays(6)
				overlapStart := maxDate(a.StartDate, ws)
				overlapEnd := minDate(a.EndDate, we)
				overlap := DaysBetween(overlapStart, overlapEnd) + 1
				if overlap <= 0 {
					continue
				}
				decay := 1 - float64(w)*decayPerWeek
				if decay < decayFloor {
					decay = decayFloor
				}
				weekLoad[w] += hoursPerDay * float64(overlap) * decay
			}
		}

		peak := 0.0
		for _, load := range weekLoad {
			if load > peak {
				peak = load
			}
		}

		percent := 0.0
		if capacity := bay.WeeklyCapacity(); capacity > 0 {
			percent = peak / capacity * 100
			if percent > 100 {
				percent = 100
			}
		}

		result.Bays = append(result.Bays, BayUtilization{BayID: bay.ID, BayName: bay.Name, Percent: percent})
		sum += percent
	}

	if len(result.Bays) > 0 {
		result.Fleet = sum / float64(len(result.Bays))
	}
	return result
}

// startOfWeek backs up to the Sunday of the week containing d.
func startOfWeek(d storage.Date) storage.Date {
	return d.AddDays(-int(d.Weekday()))
}
