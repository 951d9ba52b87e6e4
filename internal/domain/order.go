package domain

import "time"

// OrderStatus represents the lifecycle status of a care order
type OrderStatus string

const (
	OrderStatusSubmitted OrderStatus = "submitted"
	OrderStatusActive    OrderStatus = "active"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// CareOrder is the booking record spanning a date range. It owns the set of
// CareShift rows generated from it. The scheduling engine only ever creates
// orders in the submitted status; later transitions belong to the agency
// workflow outside this service.
type CareOrder struct {
	ID          int64
	OrderNumber string
	ClientID    int64
	AgencyID    int64
	CaregiverID int64
	StartDate   time.Time
	EndDate     time.Time
	Cadence     Cadence
	Status      OrderStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsSubmitted returns true if the order has not yet entered the agency workflow
func (o *CareOrder) IsSubmitted() bool {
	return o.Status == OrderStatusSubmitted
}

// IsCancelled returns true if the order has been cancelled
func (o *CareOrder) IsCancelled() bool {
	return o.Status == OrderStatusCancelled
}
