package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Day-of-week bounds (0 = Sunday .. 6 = Saturday)
const (
	MinDayOfWeek = 0
	MaxDayOfWeek = 6
)

// Business validation constants
const (
	MinServiceDurationHours = 1
	MaxServiceDurationHours = 12 // a single visit never spans more than half a day
	MaxNoteLength           = 500
)
