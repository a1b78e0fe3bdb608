package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MahlumInnovationsLLC/MasterScheduler-sub001/internal/storage"
)

func dp(year int, month time.Month, day int) *storage.Date {
	v := storage.NewDate(year, month, day)
	return &v
}

func fptr(v float64) *float64 { return &v }

func fabProject() storage.Project {
	return storage.Project{
		ID:               1,
		ProjectNumber:    "804501",
		TotalHours:       fptr(1000),
		FabPercentage:    27,
		FabricationStart: dp(2025, 1, 1),
		PaintStart:       dp(2025, 1, 11),
	}
}

func TestPhaseHours_TenDayFabFiveDayOverlap(t *testing.T) {
	p := fabProject()

	// paint starts Jan 11, so fab runs Jan 1..Jan 10: 270 hours over 10 days
	got := PhaseHours(p, PhaseFab, d(2025, 1, 1), d(2025, 1, 5))

	assert.InDelta(t, 135.0, got, 1e-9)
}

func TestPhaseHours_FullPhaseReturnsAllHours(t *testing.T) {
	p := fabProject()

	got := PhaseHours(p, PhaseFab, d(2025, 1, 1), d(2025, 12, 31))

	assert.InDelta(t, 270.0, got, 1e-9)
}

func TestPhaseHours_NoOverlapIsZero(t *testing.T) {
	p := fabProject()

	assert.Zero(t, PhaseHours(p, PhaseFab, d(2025, 1, 11), d(2025, 1, 31)))
	assert.Zero(t, PhaseHours(p, PhaseFab, d(2024, 12, 1), d(2024, 12, 31)))
}

func TestPhaseHours_MissingDataIsZero(t *testing.T) {
	p := fabProject()
	p.TotalHours = nil
	assert.Zero(t, PhaseHours(p, PhaseFab, d(2025, 1, 1), d(2025, 1, 5)))

	p = fabProject()
	p.FabricationStart = nil
	assert.Zero(t, PhaseHours(p, PhaseFab, d(2025, 1, 1), d(2025, 1, 5)))

	// no boundary after fab at all
	p = fabProject()
	p.PaintStart = nil
	assert.Zero(t, PhaseHours(p, PhaseFab, d(2025, 1, 1), d(2025, 1, 5)))
}

func TestPhaseBounds_FallbackChain(t *testing.T) {
	// paint date never entered: fab ends where production begins
	p := fabProject()
	p.PaintStart = nil
	p.ProductionStart = dp(2025, 2, 1)

	start, last, ok := PhaseBounds(p, PhaseFab)
	assert.True(t, ok)
	assert.Equal(t, d(2025, 1, 1), start)
	assert.Equal(t, d(2025, 1, 31), last)

	// qc falls through ship to delivery
	p = storage.Project{
		QCStartDate:  dp(2025, 5, 1),
		DeliveryDate: dp(2025, 5, 15),
	}
	start, last, ok = PhaseBounds(p, PhaseQC)
	assert.True(t, ok)
	assert.Equal(t, d(2025, 5, 1), start)
	assert.Equal(t, d(2025, 5, 14), last)
}

func TestPhaseBounds_InvertedBoundariesRejected(t *testing.T) {
	p := fabProject()
	p.PaintStart = dp(2024, 12, 1) // before fab start

	_, _, ok := PhaseBounds(p, PhaseFab)
	assert.False(t, ok)
}

// Summing a phase over every period of a covering set must reproduce the
// phase's full hour budget.
func TestPhaseHours_ConservationAcrossPeriods(t *testing.T) {
	p := storage.Project{
		TotalHours:           fptr(2000),
		ProductionPercentage: 60,
		ProductionStart:      dp(2025, 2, 10),
		ITStart:              dp(2025, 6, 24),
	}

	now := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	for _, g := range []Granularity{GranularityWeek, GranularityMonth, GranularityQuarter} {
		periods := GeneratePeriods(2025, g, TimeframeHistorical, now)

		var sum float64
		for _, per := range periods {
			sum += PhaseHours(p, PhaseProduction, per.Start, per.End)
		}
		assert.InDelta(t, 1200.0, sum, 1e-6, "granularity %s", g)
	}
}

func TestPhasePercent_DefaultsWhenUnset(t *testing.T) {
	p := storage.Project{}

	assert.Equal(t, 27.0, PhasePercent(p, PhaseFab))
	assert.Equal(t, 7.0, PhasePercent(p, PhasePaint))
	assert.Equal(t, 60.0, PhasePercent(p, PhaseProduction))
	assert.Equal(t, 7.0, PhasePercent(p, PhaseIT))
	assert.Equal(t, 7.0, PhasePercent(p, PhaseNTC))
	assert.Equal(t, 7.0, PhasePercent(p, PhaseQC))

	p.FabPercentage = 35
	assert.Equal(t, 35.0, PhasePercent(p, PhaseFab))
}
