package scheduling

import (
	"github.com/MahlumInnovationsLLC/MasterScheduler-sub001/internal/storage"
)

// Phase is one of the six manufacturing stages a project moves through, in
// floor order.
type Phase string

const (
	PhaseFab        Phase = "fab"
	PhasePaint      Phase = "paint"
	PhaseProduction Phase = "production"
	PhaseIT         Phase = "it"
	PhaseNTC        Phase = "ntc"
	PhaseQC         Phase = "qc"
)

// Phases lists every phase in manufacturing order.
var Phases = []Phase{PhaseFab, PhasePaint, PhaseProduction, PhaseIT, PhaseNTC, PhaseQC}

// PhasePercent returns the share of the project's total hours budgeted to the
// phase, falling back to the stock defaults when the project carries none.
func PhasePercent(p storage.Project, phase Phase) float64 {
	pick := func(v, def float64) float64 {
		if v > 0 {
			return v
		}
		return def
	}
	switch phase {
	case PhaseFab:
		return pick(p.FabPercentage, storage.DefaultFabPercentage)
	case PhasePaint:
		return pick(p.PaintPercentage, storage.DefaultPaintPercentage)
	case PhaseProduction:
		return pick(p.ProductionPercentage, storage.DefaultProductionPercentage)
	case PhaseIT:
		return pick(p.ITPercentage, storage.DefaultITPercentage)
	case PhaseNTC:
		return pick(p.NTCPercentage, storage.DefaultNTCPercentage)
	case PhaseQC:
		return pick(p.QCPercentage, storage.DefaultQCPercentage)
	}
	return 0
}

// boundaries returns the project's phase boundary dates in floor order. Index
// i is the first day of phase i; the next present boundary after i is the
// first day of whatever comes next, so phase i ends the day before it.
func boundaries(p storage.Project) []*storage.Date {
	return []*storage.Date{
		p.FabricationStart,
		p.PaintStart,
		p.ProductionStart,
		p.ITStart,
		p.NTCTestingDate,
		p.QCStartDate,
		p.ShipDate,
		p.DeliveryDate,
	}
}

// PhaseBounds resolves the inclusive [start, lastDay] interval of a phase
// from the project's boundary dates. ok is false when the start or every
// candidate end boundary is missing, or the interval is empty.
func PhaseBounds(p storage.Project, phase Phase) (start, lastDay storage.Date, ok bool) {
	bounds := boundaries(p)

	idx := -1
	for i, ph := range Phases {
		if ph == phase {
			idx = i
			break
		}
	}
	if idx < 0 || bounds[idx] == nil {
		return storage.Date{}, storage.Date{}, false
	}
	start = *bounds[idx]

	for _, next := range bounds[idx+1:] {
		if next == nil {
			continue
		}
		lastDay = next.AddDays(-1)
		if lastDay.Before(start.Time) {
			return storage.Date{}, storage.Date{}, false
		}
		return start, lastDay, true
	}

	return storage.Date{}, storage.Date{}, false
}

// PhaseHours returns the slice of the project's labor hours that the given
// phase contributes to the period [periodStart, periodEnd], both inclusive.
// The distribution is a linear area-weighted approximation: the phase's hours
// spread evenly over its days, and the period receives its share of those
// days. Summed over a set of periods covering the whole phase it reproduces
// the phase's full hours.
//
// Missing total hours or boundary dates mean the project simply is not in
// that phase yet and contribute zero.
func PhaseHours(p storage.Project, phase Phase, periodStart, periodEnd storage.Date) float64 {
	if p.TotalHours == nil || *p.TotalHours <= 0 {
		return 0
	}
	if periodStart.IsZero() || periodEnd.IsZero() || periodEnd.Before(periodStart.Time) {
		return 0
	}

	start, lastDay, ok := PhaseBounds(p, phase)
	if !ok {
		return 0
	}

	duration := DaysBetween(start, lastDay) + 1
	if duration <= 0 {
		return 0
	}

	overlapStart := maxDate(start, periodStart)
	overlapEnd := minDate(lastDay, periodEnd)
	overlap := DaysBetween(overlapStart, overlapEnd) + 1
	if overlap <= 0 {
		return 0
	}

	phaseHours := *p.TotalHours * PhasePercent(p, phase) / 100
	return phaseHours * float64(overlap) / float64(duration)
}
