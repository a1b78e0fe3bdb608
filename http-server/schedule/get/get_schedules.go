package get

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"

	"github.com/MahlumInnovationsLLC/MasterScheduler-sub001/internal/storage"
)

type ScheduleGetter interface {
	GetSchedules(ctx context.Context, bayID int64) ([]storage.ScheduleAssignment, error)
}

func GetSchedules(log *slog.Logger, result ScheduleGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedule.get.GetSchedules"

		// bay_id is optional: absent means the whole fleet
		var bayID int64
		if raw := r.URL.Query().Get("bay_id"); raw != "" {
			parsed, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				http.Error(w, "Invalid bay_id", http.StatusBadRequest)
				return
			}
			bayID = parsed
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		schedules, err := result.GetSchedules(ctx, bayID)
		if err != nil {
			log.Error("failed to load schedules", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, schedules)
	}
}
