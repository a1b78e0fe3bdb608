package delete

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/MahlumInnovationsLLC/MasterScheduler-sub001/internal/storage"
)

type ScheduleRemover interface {
	Unschedule(ctx context.Context, assignmentID int64) error
}

// DeleteSchedule takes a project back off the bay schedule.
func DeleteSchedule(log *slog.Logger, result ScheduleRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedule.delete.DeleteSchedule"

		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := result.Unschedule(ctx, id); err != nil {
			if errors.Is(err, storage.ErrScheduleNotFound) {
				http.Error(w, "Schedule not found", http.StatusNotFound)
				return
			}
			log.Error("failed to delete schedule", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("schedule removed", slog.Int64("id", id))

		render.JSON(w, r, map[string]interface{}{
			"status": "deleted",
			"id":     id,
		})
	}
}
