package scheduling

import (
	"strconv"
	"time"

	"github.com/MahlumInnovationsLLC/MasterScheduler-sub001/internal/storage"
)

type Granularity string

const (
	GranularityWeek    Granularity = "week"
	GranularityMonth   Granularity = "month"
	GranularityQuarter Granularity = "quarter"
	GranularityYear    Granularity = "year"
)

type Timeframe string

const (
	TimeframeHistorical Timeframe = "historical"
	TimeframeFuture     Timeframe = "future"
)

// Period is one reporting bucket. Start and End are both inclusive days;
// consecutive periods from GeneratePeriods share no days and leave no gaps.
type Period struct {
	Start storage.Date `json:"start"`
	End   storage.Date `json:"end"`
	Label string       `json:"label"`
}

// GeneratePeriods splits the requested year into ordered buckets of the given
// granularity, clamped by timeframe: historical buckets stop at now and
// buckets starting after now are dropped, future buckets start no earlier
// than now. Invalid input yields an empty sequence.
//
// Week buckets are 7-day slices anchored at Jan 1 rather than ISO weeks; the
// dashboard only needs a gapless cover of the year.
func GeneratePeriods(year int, granularity Granularity, timeframe Timeframe, now time.Time) []Period {
	if year < 1 {
		return nil
	}
	if timeframe != TimeframeHistorical && timeframe != TimeframeFuture {
		return nil
	}

	yearStart := storage.NewDate(year, time.January, 1)
	yearEnd := storage.NewDate(year, time.December, 31)
	today := storage.DateOf(now)

	var buckets []Period
	switch granularity {
	case GranularityWeek:
		for s := yearStart; !s.After(yearEnd.Time); s = s.AddDays(7) {
			buckets = append(buckets, Period{Start: s, End: minDate(s.AddDays(6), yearEnd)})
		}
	case GranularityMonth:
		for m := time.January; m <= time.December; m++ {
			s := storage.NewDate(year, m, 1)
			e := storage.DateOf(s.AddDate(0, 1, -1))
			buckets = append(buckets, Period{Start: s, End: e})
		}
	case GranularityQuarter:
		for q := 0; q < 4; q++ {
			s := storage.NewDate(year, time.Month(q*3+1), 1)
			e := storage.DateOf(s.AddDate(0, 3, -1))
			buckets = append(buckets, Period{Start: s, End: e})
		}
	case GranularityYear:
		buckets = append(buckets, Period{Start: yearStart, End: yearEnd})
	default:
		return nil
	}

	periods := make([]Period, 0, len(buckets))
	for _, b := range buckets {
		start, end := b.Start, b.End
		switch timeframe {
		case TimeframeHistorical:
			if start.After(today.Time) {
				continue
			}
			end = minDate(end, today)
		case TimeframeFuture:
			if end.Before(today.Time) {
				continue
			}
			start = maxDate(start, today)
		}
		if end.Before(start.Time) {
			continue
		}
		periods = append(periods, Period{Start: start, End: end, Label: periodLabel(start, granularity)})
	}

	return periods
}

func periodLabel(start storage.Date, granularity Granularity) string {
	switch granularity {
	case GranularityWeek:
		return start.Format("Jan 2")
	case GranularityMonth:
		return start.Format("Jan")
	case GranularityQuarter:
		return "Q" + strconv.Itoa((int(start.Month())-1)/3+1)
	case GranularityYear:
		return strconv.Itoa(start.Year())
	}
	return ""
}
