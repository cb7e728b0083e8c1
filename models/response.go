package models

import "github.com/terraincognita07/cyclecalc/datetime"

// CycleCalculatorResponse is the data payload of a menstrual cycle calculator call.
type CycleCalculatorResponse struct {
	LastPeriodDate   datetime.Date
	CycleLength      int
	PeriodLength     int
	CyclesCalculated int
	Cycles           Cycles
	CurrentStatus    *CurrentStatus
	Averages         *Averages
	Disclaimer       string
}

func (response *CycleCalculatorResponse) fields() []field {
	return []field{
		dateField("last_period_date", &response.LastPeriodDate),
		intField("cycle_length", &response.CycleLength),
		intField("period_length", &response.PeriodLength),
		intField("cycles_calculated", &response.CyclesCalculated),
		cyclesField("cycles", &response.Cycles),
		objectField("current_status", &response.CurrentStatus),
		objectField("averages", &response.Averages),
		stringField("disclaimer", &response.Disclaimer),
	}
}

type Averages struct {
	CycleLength        int
	PeriodDuration     int
	DaysBetweenPeriods int
}

func (averages *Averages) fields() []field {
	return []field{
		intField("cycle_length", &averages.CycleLength),
		intField("period_duration", &averages.PeriodDuration),
		intField("days_between_periods", &averages.DaysBetweenPeriods),
	}
}

type CurrentStatus struct {
	Phase               string
	Description         string
	NextPeriod          LooseValue
	DaysUntilNextPeriod LooseValue
}

func (status *CurrentStatus) fields() []field {
	return []field{
		stringField("phase", &status.Phase),
		stringField("description", &status.Description),
		looseField("next_period", &status.NextPeriod),
		looseField("days_until_next_period", &status.DaysUntilNextPeriod),
	}
}

// Cycle is one calculated cycle. DaysAgo is negative for cycles that start in the future.
type Cycle struct {
	CycleNumber   int
	Period        *FertileWindow
	Ovulation     *CycleOvulation
	FertileWindow *FertileWindow
	PmsPhase      *PmsPhase
	CyclePhases   *CyclePhases
	Status        string
	DaysUntil     LooseValue
	DaysAgo       int
}

func (cycle *Cycle) fields() []field {
	return []field{
		intField("cycle_number", &cycle.CycleNumber),
		objectField("period", &cycle.Period),
		objectField("ovulation", &cycle.Ovulation),
		objectField("fertile_window", &cycle.FertileWindow),
		objectField("pms_phase", &cycle.PmsPhase),
		objectField("cycle_phases", &cycle.CyclePhases),
		stringField("status", &cycle.Status),
		looseField("days_until", &cycle.DaysUntil),
		intField("days_ago", &cycle.DaysAgo),
	}
}

type CycleOvulation struct {
	Date       datetime.Date
	DayOfCycle int
}

func (ovulation *CycleOvulation) fields() []field {
	return []field{
		dateField("date", &ovulation.Date),
		intField("day_of_cycle", &ovulation.DayOfCycle),
	}
}

// FertileWindow is a dated range with a length; the API uses the same shape for the period itself.
type FertileWindow struct {
	StartDate    datetime.Date
	EndDate      datetime.Date
	DurationDays int
}

func (window *FertileWindow) fields() []field {
	return []field{
		dateField("start_date", &window.StartDate),
		dateField("end_date", &window.EndDate),
		intField("duration_days", &window.DurationDays),
	}
}

type PmsPhase struct {
	StartDate datetime.Date
	EndDate   datetime.Date
}

func (phase *PmsPhase) fields() []field {
	return []field{
		dateField("start_date", &phase.StartDate),
		dateField("end_date", &phase.EndDate),
	}
}

// CyclePhaseWindow describes the menstrual, follicular and luteal phases.
type CyclePhaseWindow struct {
	Start       datetime.Date
	End         datetime.Date
	Description string
}

func (window *CyclePhaseWindow) fields() []field {
	return []field{
		dateField("start", &window.Start),
		dateField("end", &window.End),
		stringField("description", &window.Description),
	}
}

type OvulationPhaseWindow struct {
	Date        datetime.Date
	Description string
}

func (window *OvulationPhaseWindow) fields() []field {
	return []field{
		dateField("date", &window.Date),
		stringField("description", &window.Description),
	}
}

type CyclePhases struct {
	Menstrual  *CyclePhaseWindow
	Follicular *CyclePhaseWindow
	Ovulation  *OvulationPhaseWindow
	Luteal     *CyclePhaseWindow
}

func (phases *CyclePhases) fields() []field {
	return []field{
		objectField("menstrual", &phases.Menstrual),
		objectField("follicular", &phases.Follicular),
		objectField("ovulation", &phases.Ovulation),
		objectField("luteal", &phases.Luteal),
	}
}
