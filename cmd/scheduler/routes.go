package main

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	getbaysadmin "github.com/MahlumInnovationsLLC/MasterScheduler-sub001/http-server/admin/get"
	upbaysadmin "github.com/MahlumInnovationsLLC/MasterScheduler-sub001/http-server/admin/update"
	getbays "github.com/MahlumInnovationsLLC/MasterScheduler-sub001/http-server/bays/get"
	getutilization "github.com/MahlumInnovationsLLC/MasterScheduler-sub001/http-server/capacity/get"
	gethours "github.com/MahlumInnovationsLLC/MasterScheduler-sub001/http-server/projection/get"
	getprojects "github.com/MahlumInnovationsLLC/MasterScheduler-sub001/http-server/projects/get"
	delschedule "github.com/MahlumInnovationsLLC/MasterScheduler-sub001/http-server/schedule/delete"
	getschedule "github.com/MahlumInnovationsLLC/MasterScheduler-sub001/http-server/schedule/get"
	saveschedule "github.com/MahlumInnovationsLLC/MasterScheduler-sub001/http-server/schedule/save"
	upschedule "github.com/MahlumInnovationsLLC/MasterScheduler-sub001/http-server/schedule/update"
	"github.com/MahlumInnovationsLLC/MasterScheduler-sub001/internal/authz"
	"github.com/MahlumInnovationsLLC/MasterScheduler-sub001/internal/config"
	"github.com/MahlumInnovationsLLC/MasterScheduler-sub001/internal/middleware/access"
	"github.com/MahlumInnovationsLLC/MasterScheduler-sub001/internal/middleware/auth"
	"github.com/MahlumInnovationsLLC/MasterScheduler-sub001/internal/service/projection"
	"github.com/MahlumInnovationsLLC/MasterScheduler-sub001/internal/service/reschedule"
	"github.com/MahlumInnovationsLLC/MasterScheduler-sub001/internal/storage/mysql"
)

func routes(cfg config.Config, log *slog.Logger, storage *mysql.Storage, scheduleService *reschedule.ScheduleService, projectionService *projection.ProjectionService) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", access.RoleHeader},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/api/bays", getbays.GetBays(log, storage))
	router.Get("/api/projects", getprojects.GetProjects(log, storage))
	router.Get("/api/schedules", getschedule.GetSchedules(log, storage))

	// reporting series and capacity snapshots
	router.Get("/api/capacity/utilization", getutilization.GetUtilization(log, projectionService))
	router.Get("/api/projection/hours", gethours.GetHourSeries(log, projectionService))

	// mutating routes pass the capability gate; viewers get read-only access
	router.Group(func(r chi.Router) {
		r.Use(access.RequireCapability(log, authz.CapEditSchedule))

		r.Post("/api/schedules", saveschedule.CreateSchedule(log, scheduleService))
		r.Put("/api/schedules/{id}/move", upschedule.MoveSchedule(log, scheduleService))
		r.Put("/api/schedules/{id}/status", upschedule.UpdateScheduleStatus(log, scheduleService))
		r.Delete("/api/schedules/{id}", delschedule.DeleteSchedule(log, scheduleService))
	})

	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

	adminRouter.Get("/bays", getbaysadmin.GetBaysAdmin(log, storage))
	adminRouter.Put("/bays/{id}", upbaysadmin.UpdateBayAdmin(log, storage))

	router.Mount("/api/admin", adminRouter)

	return router
}
