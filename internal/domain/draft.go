package domain

import (
	"time"

	"github.com/Munkh976/caremuch-sub000/pkg/types"
)

// BookingDraft is the caller-held state of one booking interaction: the
// choices made so far, threaded explicitly through each scheduling step.
// It is discarded on cancel or on successful materialization and is never
// persisted.
type BookingDraft struct {
	ClientID              int64
	PrimaryServiceCode    string
	AdditionalServiceCode *string

	// Derived by the service composer from the chosen services
	DurationHours int
	HourlyRate    float64

	DayOfWeek   int // 0 = Sunday .. 6 = Saturday
	Cadence     Cadence
	CaregiverID int64
	StartTime   types.TimeString // chosen slot, normalized to 24-hour clock
	StartDate   time.Time
}

// MissingFields lists the required choices that have not been made yet.
// An empty result means the draft is ready for materialization.
func (d *BookingDraft) MissingFields() []string {
	var missing []string
	if d.ClientID <= 0 {
		missing = append(missing, "client")
	}
	if d.PrimaryServiceCode == "" {
		missing = append(missing, "service")
	}
	if d.CaregiverID <= 0 {
		missing = append(missing, "caregiver")
	}
	if d.StartTime.IsZero() {
		missing = append(missing, "time")
	}
	if d.DayOfWeek < MinDayOfWeek || d.DayOfWeek > MaxDayOfWeek {
		missing = append(missing, "day")
	}
	if !d.Cadence.IsValid() {
		missing = append(missing, "cadence")
	}
	if d.StartDate.IsZero() {
		missing = append(missing, "start date")
	}
	return missing
}

// IsComplete returns true if every required choice has been made
func (d *BookingDraft) IsComplete() bool {
	return len(d.MissingFields()) == 0
}
