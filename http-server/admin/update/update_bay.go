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

	"github.com/MahlumInnovationsLLC/MasterScheduler-sub001/internal/storage"
)

type BayAdminUpdater interface {
	UpdateBay(ctx context.Context, id int64, update storage.UpdateBay) error
}

// UpdateBayAdmin edits a bay's staffing and active flag. These feed straight
// into the peak-load capacity model.
func UpdateBayAdmin(log *slog.Logger, result BayAdminUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.update.UpdateBayAdmin"

		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		var req storage.UpdateBay
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if req.StaffCount != nil && *req.StaffCount < 0 {
			http.Error(w, "staff_count cannot be negative", http.StatusBadRequest)
			return
		}
		if req.HoursPerPersonPerWeek != nil && *req.HoursPerPersonPerWeek < 0 {
			http.Error(w, "hours_per_person_per_week cannot be negative", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := result.UpdateBay(ctx, id, req); err != nil {
			if errors.Is(err, storage.ErrBayNotFound) {
				http.Error(w, "Bay not found", http.StatusNotFound)
				return
			}
			log.Error("failed to update bay", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("bay updated", slog.Int64("id", id))

		render.JSON(w, r, map[string]interface{}{
			"status": "ok",
			"bay_id": id,
		})
	}
}
