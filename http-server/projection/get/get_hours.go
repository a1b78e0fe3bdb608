package get

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"

	"github.com/MahlumInnovationsLLC/MasterScheduler-sub001/internal/scheduling"
	"github.com/MahlumInnovationsLLC/MasterScheduler-sub001/internal/service/projection"
)

type HourSeriesProvider interface {
	HourSeries(ctx context.Context, year int, granularity scheduling.Granularity, timeframe scheduling.Timeframe, status string, now time.Time) ([]projection.PeriodHours, error)
}

// GetHourSeries serves the per-period projected labor hours for a year, with
// the phase breakdown the reporting pages chart.
func GetHourSeries(log *slog.Logger, result HourSeriesProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.projection.get.GetHourSeries"

		year, err := strconv.Atoi(r.URL.Query().Get("year"))
		if err != nil || year < 1 {
			http.Error(w, "Invalid year", http.StatusBadRequest)
			return
		}

		granularity := scheduling.Granularity(r.URL.Query().Get("granularity"))
		switch granularity {
		case "":
			granularity = scheduling.GranularityMonth
		case scheduling.GranularityWeek, scheduling.GranularityMonth, scheduling.GranularityQuarter, scheduling.GranularityYear:
		default:
			http.Error(w, "Unknown granularity: use week, month, quarter or year", http.StatusBadRequest)
			return
		}

		timeframe := scheduling.Timeframe(r.URL.Query().Get("timeframe"))
		switch timeframe {
		case "":
			timeframe = scheduling.TimeframeHistorical
		case scheduling.TimeframeHistorical, scheduling.TimeframeFuture:
		default:
			http.Error(w, "Unknown timeframe: use historical or future", http.StatusBadRequest)
			return
		}

		status := r.URL.Query().Get("status")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		series, err := result.HourSeries(ctx, year, granularity, timeframe, status, time.Now())
		if err != nil {
			log.Error("failed to build hour series", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, series)
	}
}
