package scheduling

import (
	"github.com/MahlumInnovationsLLC/MasterScheduler-sub001/internal/storage"
)

// DaysBetween counts whole days from a to b. Negative when b precedes a.
// Both dates are UTC midnights so the division is exact.
func DaysBetween(a, b storage.Date) int {
	return int(b.Sub(a.Time).Hours() / 24)
}

func minDate(a, b storage.Date) storage.Date {
	if b.Before(a.Time) {
		return b
	}
	return a
}

func maxDate(a, b storage.Date) storage.Date {
	if b.After(a.Time) {
		return b
	}
	return a
}
