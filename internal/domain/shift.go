package domain

import (
	"time"

	"github.com/Munkh976/caremuch-sub000/pkg/types"
)

// ShiftStatus represents the status of a single scheduled visit
type ShiftStatus string

const (
	ShiftStatusOpen      ShiftStatus = "open"
	ShiftStatusAssigned  ShiftStatus = "assigned"
	ShiftStatusCompleted ShiftStatus = "completed"
	ShiftStatusCancelled ShiftStatus = "cancelled"
)

// IsValid reports whether the status is one of the known shift statuses
func (s ShiftStatus) IsValid() bool {
	switch s {
	case ShiftStatusOpen, ShiftStatusAssigned, ShiftStatusCompleted, ShiftStatusCancelled:
		return true
	}
	return false
}

// CareShift is one concrete dated visit. Order-generated shifts always carry
// the order reference; OrderID is nullable only for ad-hoc shifts created by
// the agency outside the scheduling engine. Shifts are never mutated by this
// service after creation.
type CareShift struct {
	ID          int64
	OrderID     *int64
	ClientID    int64
	CaregiverID int64
	Date        time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString

	DurationHours int
	ServiceCode   string
	Status        ShiftStatus
	Note          *string // names the combined additional service, if any

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOpen returns true if the shift has not been worked or cancelled yet
func (s *CareShift) IsOpen() bool {
	return s.Status == ShiftStatusOpen
}
