package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/MahlumInnovationsLLC/MasterScheduler-sub001/internal/storage"
)

type BayAdminGetter interface {
	GetBays(ctx context.Context) ([]storage.Bay, error)
}

// GetBaysAdmin lists every bay including inactive ones, for the staffing
// panel.
func GetBaysAdmin(log *slog.Logger, result BayAdminGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.get.GetBaysAdmin"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		bays, err := result.GetBays(ctx)
		if err != nil {
			log.Error("failed to load bays", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, bays)
	}
}
