package domain

import "github.com/Munkh976/caremuch-sub000/pkg/types"

// AvailabilityWindow is a caregiver's declared open interval for one
// day-of-week (0 = Sunday .. 6 = Saturday)
type AvailabilityWindow struct {
	CaregiverID int64
	DayOfWeek   int
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsAvailable bool
}

// Matches returns true if the window is declared available for the given day
func (w *AvailabilityWindow) Matches(dayOfWeek int) bool {
	return w.DayOfWeek == dayOfWeek && w.IsAvailable
}

// Caregiver is a member of the agency's caregiver pool together with the
// data the matcher needs: served zip codes, weekly availability and rating
type Caregiver struct {
	ID                int64
	FullName          string
	ServiceZipcodes   []string
	Availability      []AvailabilityWindow
	PerformanceRating float64
	HourlyRate        float64
}

// ServesZip returns true if the caregiver serves the given zip code
func (c *Caregiver) ServesZip(zip string) bool {
	for _, z := range c.ServiceZipcodes {
		if z == zip {
			return true
		}
	}
	return false
}
