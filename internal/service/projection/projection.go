package projection

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MahlumInnovationsLLC/MasterScheduler-sub001/internal/scheduling"
	"github.com/MahlumInnovationsLLC/MasterScheduler-sub001/internal/storage"
)

type ProjectionStorage interface {
	GetBays(ctx context.Context) ([]storage.Bay, error)
	GetProjects(ctx context.Context, status string) ([]storage.Project, error)
	GetSchedules(ctx context.Context, bayID int64) ([]storage.ScheduleAssignment, error)
}

type ProjectionService struct {
	storage ProjectionStorage
}

func NewProjectionService(storage ProjectionStorage) *ProjectionService {
	return &ProjectionService{storage: storage}
}

// PeriodHours is one reporting bucket with the fleet's projected labor hours
// broken down by manufacturing phase.
type PeriodHours struct {
	Period scheduling.Period  `json:"period"`
	Phases map[string]float64 `json:"phases"`
	Total  float64            `json:"total"`
}

// HourSeries projects every project's phase hours into the requested year's
// periods. Projects without hours or boundary dates contribute zero, they are
// simply not in those phases yet.
func (s *ProjectionService) HourSeries(ctx context.Context, year int, granularity scheduling.Granularity, timeframe scheduling.Timeframe, status string, now time.Time) ([]PeriodHours, error) {
	const op = "service.projection.HourSeries"

	projects, err := s.storage.GetProjects(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	periods := scheduling.GeneratePeriods(year, granularity, timeframe, now)

	series := make([]PeriodHours, 0, len(periods))
	for _, period := range periods {
		bucket := PeriodHours{
			Period: period,
			Phases: make(map[string]float64, len(scheduling.Phases)),
		}
		for _, phase := range scheduling.Phases {
			var hours float64
			for _, p := range projects {
				hours += scheduling.PhaseHours(p, phase, period.Start, period.End)
			}
			bucket.Phases[string(phase)] = hours
			bucket.Total += hours
		}
		series = append(series, bucket)
	}

	return series, nil
}

// Utilization computes the fleet utilization snapshot under the requested
// model from a fresh store snapshot. Bays, projects and schedules are
// independent reads, so they are fetched concurrently.
func (s *ProjectionService) Utilization(ctx context.Context, model scheduling.Model, now time.Time) (scheduling.FleetUtilization, error) {
	const op = "service.projection.Utilization"

	var (
		bays        []storage.Bay
		projects    []storage.Project
		assignments []storage.ScheduleAssignment
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bays, err = s.storage.GetBays(gCtx)
		if err != nil {
			return fmt.Errorf("bays: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		projects, err = s.storage.GetProjects(gCtx, "")
		if err != nil {
			return fmt.Errorf("projects: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		assignments, err = s.storage.GetSchedules(gCtx, 0)
		if err != nil {
			return fmt.Errorf("schedules: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return scheduling.FleetUtilization{}, fmt.Errorf("%s: %w", op, err)
	}

	return scheduling.Utilization(model, bays, projects, assignments, now), nil
}
