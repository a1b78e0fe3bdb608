package save

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/MahlumInnovationsLLC/MasterScheduler-sub001/internal/service/reschedule"
	"github.com/MahlumInnovationsLLC/MasterScheduler-sub001/internal/storage"
)

type ScheduleCreator interface {
	Create(ctx context.Context, req storage.CreateSchedule) (*storage.ScheduleAssignment, error)
}

// CreateSchedule handles a drop: a project lands on a bay at a start date and
// gets the grid's default span. A 409 carries the assignment that is in the
// way.
func CreateSchedule(log *slog.Logger, result ScheduleCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedule.save.CreateSchedule"

		var req storage.CreateSchedule
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if req.ProjectID == 0 || req.BayID == 0 || req.StartDate.IsZero() {
			http.Error(w, "project_id, bay_id and start_date are required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		created, err := result.Create(ctx, req)
		if err != nil {
			var conflict *reschedule.ConflictError
			if errors.As(err, &conflict) {
				log.Info("schedule rejected: bay occupied",
					slog.String("op", op),
					slog.Int64("bay_id", req.BayID),
					slog.Int64("conflicting_id", conflict.Conflicting.ID),
				)
				w.WriteHeader(http.StatusConflict)
				render.JSON(w, r, map[string]interface{}{
					"error":    "schedule_conflict",
					"conflict": conflict.Conflicting,
				})
				return
			}
			log.Error("failed to create schedule", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("schedule created",
			slog.Int64("id", created.ID),
			slog.Int64("project_id", created.ProjectID),
			slog.Int64("bay_id", created.BayID),
		)

		render.JSON(w, r, created)
	}
}
