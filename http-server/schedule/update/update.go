package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/MahlumInnovationsLLC/MasterScheduler-sub001/internal/service/reschedule"
	"github.com/MahlumInnovationsLLC/MasterScheduler-sub001/internal/storage"
)

type ScheduleUpdater interface {
	Move(ctx context.Context, assignmentID, newBayID int64, newStart storage.Date) (*storage.ScheduleAssignment, error)
	UpdateStatus(ctx context.Context, assignmentID int64, status string) (*storage.ScheduleAssignment, error)
}

// MoveSchedule relocates an assignment to a new bay and/or start date,
// keeping its span.
func MoveSchedule(log *slog.Logger, result ScheduleUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedule.update.MoveSchedule"

		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		var req storage.MoveSchedule
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if req.BayID == 0 || req.StartDate.IsZero() {
			http.Error(w, "bay_id and start_date are required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		moved, err := result.Move(ctx, id, req.BayID, req.StartDate)
		if err != nil {
			var conflict *reschedule.ConflictError
			switch {
			case errors.As(err, &conflict):
				log.Info("move rejected: bay occupied",
					slog.String("op", op),
					slog.Int64("id", id),
					slog.Int64("conflicting_id", conflict.Conflicting.ID),
				)
				w.WriteHeader(http.StatusConflict)
				render.JSON(w, r, map[string]interface{}{
					"error":    "schedule_conflict",
					"conflict": conflict.Conflicting,
				})
			case errors.Is(err, storage.ErrScheduleNotFound):
				http.Error(w, "Schedule not found", http.StatusNotFound)
			default:
				log.Error("failed to move schedule", slog.String("op", op), slog.String("error", err.Error()))
				http.Error(w, "Internal server error", http.StatusInternalServerError)
			}
			return
		}

		log.Info("schedule moved", slog.Int64("id", id), slog.Int64("bay_id", moved.BayID))

		render.JSON(w, r, moved)
	}
}

// UpdateScheduleStatus transitions an assignment's status.
func UpdateScheduleStatus(log *slog.Logger, result ScheduleUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedule.update.UpdateScheduleStatus"

		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		var req storage.UpdateScheduleStatus
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		updated, err := result.UpdateStatus(ctx, id, req.Status)
		if err != nil {
			switch {
			case errors.Is(err, reschedule.ErrInvalidStatus):
				http.Error(w, "Unknown status", http.StatusBadRequest)
			case errors.Is(err, storage.ErrScheduleNotFound):
				http.Error(w, "Schedule not found", http.StatusNotFound)
			default:
				log.Error("failed to update status", slog.String("op", op), slog.String("error", err.Error()))
				http.Error(w, "Internal server error", http.StatusInternalServerError)
			}
			return
		}

		render.JSON(w, r, updated)
	}
}
