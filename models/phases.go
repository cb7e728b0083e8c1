package models

import "github.com/terraincognita07/cyclecalc/datetime"

const (
	PhaseMenstrual  = "menstrual"
	PhaseFollicular = "follicular"
	PhaseOvulation  = "ovulation"
	PhaseLuteal     = "luteal"
	PhaseUnknown    = "unknown"
)

func betweenInclusive(day, start, end datetime.Date) bool {
	if day.IsZero() || start.IsZero() || end.IsZero() {
		return false
	}
	return !day.Before(start.Date) && !day.After(end.Date)
}

func (window *FertileWindow) Contains(day datetime.Date) bool {
	return window != nil && betweenInclusive(day, window.StartDate, window.EndDate)
}

func (phase *PmsPhase) Contains(day datetime.Date) bool {
	return phase != nil && betweenInclusive(day, phase.StartDate, phase.EndDate)
}

func (window *CyclePhaseWindow) Contains(day datetime.Date) bool {
	return window != nil && betweenInclusive(day, window.Start, window.End)
}

// PhaseOn looks up which of the returned phase windows covers day. Ovulation wins
// over the window it sits in; days outside every window are PhaseUnknown.
func (phases *CyclePhases) PhaseOn(day datetime.Date) string {
	if phases == nil || day.IsZero() {
		return PhaseUnknown
	}
	if phases.Ovulation != nil && !phases.Ovulation.Date.IsZero() && phases.Ovulation.Date == day {
		return PhaseOvulation
	}
	switch {
	case phases.Menstrual.Contains(day):
		return PhaseMenstrual
	case phases.Follicular.Contains(day):
		return PhaseFollicular
	case phases.Luteal.Contains(day):
		return PhaseLuteal
	default:
		return PhaseUnknown
	}
}

// CycleOn returns the cycle whose phase windows cover day.
func (cycles Cycles) CycleOn(day datetime.Date) (*Cycle, bool) {
	for index := range cycles {
		if cycles[index].CyclePhases.PhaseOn(day) != PhaseUnknown {
			return &cycles[index], true
		}
	}
	return nil, false
}
