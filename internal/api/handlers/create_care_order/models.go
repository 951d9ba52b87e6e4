package create_care_order

import (
	"time"

	"github.com/Munkh976/caremuch-sub000/internal/domain"
	"github.com/Munkh976/caremuch-sub000/internal/scheduling"
	createCareOrder "github.com/Munkh976/caremuch-sub000/internal/usecase/create_care_order"
)

// CreateCareOrderRequest HTTP request model
type CreateCareOrderRequest struct {
	ClientID              int64   `json:"clientId"`
	CaregiverID           int64   `json:"caregiverId"`
	ServiceCode           string  `json:"serviceCode"`
	AdditionalServiceCode *string `json:"additionalServiceCode,omitempty"`
	DayOfWeek             int     `json:"dayOfWeek"`  // 0 = воскресенье .. 6 = суббота
	Cadence               string  `json:"cadence"`    // once / weekly / biweekly / monthly
	SlotTime              string  `json:"slotTime"`   // "9:00"
	SlotPeriod            string  `json:"slotPeriod"` // "AM" / "PM"
	StartDate             string  `json:"startDate"`  // "2026-09-02"
}

// ShiftView смена в HTTP-ответе
type ShiftView struct {
	ID            int64  `json:"id,omitempty"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	DurationHours int    `json:"durationHours"`
	Status        string `json:"status"`
}

// CareOrderResponse HTTP response model
type CareOrderResponse struct {
	OrderID       int64       `json:"orderId"`
	OrderNumber   string      `json:"orderNumber"`
	ClientID      int64       `json:"clientId"`
	AgencyID      int64       `json:"agencyId"`
	CaregiverID   int64       `json:"caregiverId"`
	StartDate     string      `json:"startDate"`
	EndDate       string      `json:"endDate"`
	Cadence       string      `json:"cadence"`
	Status        string      `json:"status"`
	DurationHours int         `json:"durationHours"`
	HourlyRate    float64     `json:"hourlyRate"`
	VisitCost     float64     `json:"visitCost"`
	Shifts        []ShiftView `json:"shifts"`
	CreatedAt     string      `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateCareOrderRequest) ToUseCaseRequest() (*createCareOrder.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	return &createCareOrder.Request{
		ClientID:              r.ClientID,
		CaregiverID:           r.CaregiverID,
		PrimaryServiceCode:    r.ServiceCode,
		AdditionalServiceCode: r.AdditionalServiceCode,
		DayOfWeek:             r.DayOfWeek,
		Cadence:               domain.Cadence(r.Cadence),
		SlotTime:              r.SlotTime,
		SlotPeriod:            scheduling.Period(r.SlotPeriod),
		StartDate:             startDate,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createCareOrder.Response) *CareOrderResponse {
	shifts := make([]ShiftView, 0, len(resp.Shifts))
	for _, s := range resp.Shifts {
		shifts = append(shifts, ShiftView{
			ID:            s.ID,
			Date:          s.Date.Format(domain.DateFormat),
			StartTime:     s.StartTime.String(),
			EndTime:       s.EndTime.String(),
			DurationHours: s.DurationHours,
			Status:        s.Status,
		})
	}

	return &CareOrderResponse{
		OrderID:       resp.OrderID,
		OrderNumber:   resp.OrderNumber,
		ClientID:      resp.ClientID,
		AgencyID:      resp.AgencyID,
		CaregiverID:   resp.CaregiverID,
		StartDate:     resp.StartDate.Format(domain.DateFormat),
		EndDate:       resp.EndDate.Format(domain.DateFormat),
		Cadence:       string(resp.Cadence),
		Status:        resp.Status,
		DurationHours: resp.DurationHours,
		HourlyRate:    resp.HourlyRate,
		VisitCost:     resp.VisitCost,
		Shifts:        shifts,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
