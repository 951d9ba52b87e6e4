package get_order_shifts

import (
	"github.com/Munkh976/caremuch-sub000/internal/domain"
	"github.com/Munkh976/caremuch-sub000/internal/service/orders/models"
)

// ShiftView смена в списке
type ShiftView struct {
	ID            int64   `json:"id"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	DurationHours int     `json:"durationHours"`
	ServiceCode   string  `json:"serviceCode"`
	CaregiverID   int64   `json:"caregiverId"`
	Status        string  `json:"status"`
	Note          *string `json:"note,omitempty"`
}

// OrderShiftsResponse список смен заказа
type OrderShiftsResponse struct {
	OrderID int64       `json:"orderId"`
	Shifts  []ShiftView `json:"shifts"`
	Total   int         `json:"total"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(orderID int64, resp *models.ShiftListResponse) *OrderShiftsResponse {
	return &OrderShiftsResponse{
		OrderID: orderID,
		Shifts:  ToShiftViews(resp.Shifts),
		Total:   resp.Total,
	}
}

// ToShiftViews конвертирует список смен сервиса в представление для HTTP
func ToShiftViews(shifts []models.ShiftResponse) []ShiftView {
	views := make([]ShiftView, 0, len(shifts))
	for _, s := range shifts {
		views = append(views, ShiftView{
			ID:            s.ID,
			Date:          s.Date.Format(domain.DateFormat),
			StartTime:     s.StartTime,
			EndTime:       s.EndTime,
			DurationHours: s.DurationHours,
			ServiceCode:   s.ServiceCode,
			CaregiverID:   s.CaregiverID,
			Status:        s.Status,
			Note:          s.Note,
		})
	}

	return views
}
