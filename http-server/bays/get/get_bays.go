package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/MahlumInnovationsLLC/MasterScheduler-sub001/internal/storage"
)

type BayGetter interface {
	GetBays(ctx context.Context) ([]storage.Bay, error)
}

func GetBays(log *slog.Logger, result BayGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.bays.get.GetBays"

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
