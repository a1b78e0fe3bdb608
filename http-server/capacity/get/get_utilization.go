package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/MahlumInnovationsLLC/MasterScheduler-sub001/internal/scheduling"
)

type UtilizationProvider interface {
	Utilization(ctx context.Context, model scheduling.Model, now time.Time) (scheduling.FleetUtilization, error)
}

// GetUtilization serves the bay-fleet utilization snapshot. The default
// "simple" model is the system-of-record number; "peak" is the auxiliary
// weighted peak-load metric. The response names the model it ran.
func GetUtilization(log *slog.Logger, result UtilizationProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.capacity.get.GetUtilization"

		model := scheduling.ModelSimple
		switch r.URL.Query().Get("model") {
		case "", string(scheduling.ModelSimple):
		case string(scheduling.ModelPeak):
			model = scheduling.ModelPeak
		default:
			http.Error(w, "Unknown model: use simple or peak", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		utilization, err := result.Utilization(ctx, model, time.Now())
		if err != nil {
			log.Error("failed to compute utilization", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, utilization)
	}
}
