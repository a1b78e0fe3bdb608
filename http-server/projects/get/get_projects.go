package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/MahlumInnovationsLLC/MasterScheduler-sub001/internal/storage"
)

type ProjectGetter interface {
	GetProjects(ctx context.Context, status string) ([]storage.Project, error)
}

func GetProjects(log *slog.Logger, result ProjectGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.projects.get.GetProjects"

		status := r.URL.Query().Get("status")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		projects, err := result.GetProjects(ctx, status)
		if err != nil {
			log.Error("failed to load projects", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, projects)
	}
}
