package domain

// Cadence selects how a booking recurs. In the current design the cadence
// controls only the horizon length of the generated series: every cadence
// still produces one shift per matching day-of-week per week.
type Cadence string

const (
	CadenceOnce     Cadence = "once"
	CadenceWeekly   Cadence = "weekly"
	CadenceBiweekly Cadence = "biweekly"
	CadenceMonthly  Cadence = "monthly"
)

// Horizon lengths in months per cadence, counted from the start date
const (
	HorizonMonthsWeekly   = 3
	HorizonMonthsBiweekly = 6
	HorizonMonthsMonthly  = 12
)

// IsValid returns true if the cadence is one of the known values
func (c Cadence) IsValid() bool {
	switch c {
	case CadenceOnce, CadenceWeekly, CadenceBiweekly, CadenceMonthly:
		return true
	}
	return false
}

// HorizonMonths returns the series horizon in months for the cadence.
// A one-time booking has a zero-length horizon.
func (c Cadence) HorizonMonths() int {
	switch c {
	case CadenceWeekly:
		return HorizonMonthsWeekly
	case CadenceBiweekly:
		return HorizonMonthsBiweekly
	case CadenceMonthly:
		return HorizonMonthsMonthly
	default:
		return 0
	}
}
