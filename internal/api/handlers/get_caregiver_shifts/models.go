package get_caregiver_shifts

import (
	"github.com/Munkh976/caremuch-sub000/internal/domain"
	"github.com/Munkh976/caremuch-sub000/internal/service/orders/models"
)

// ShiftView смена в графике сиделки
type ShiftView struct {
	ID            int64   `json:"id"`
	OrderID       *int64  `json:"orderId,omitempty"`
	ClientID      int64   `json:"clientId"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	DurationHours int     `json:"durationHours"`
	ServiceCode   string  `json:"serviceCode"`
	Status        string  `json:"status"`
	Note          *string `json:"note,omitempty"`
}

// CaregiverShiftsResponse график смен сиделки за период
type CaregiverShiftsResponse struct {
	CaregiverID int64       `json:"caregiverId"`
	Shifts      []ShiftView `json:"shifts"`
	Total       int         `json:"total"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(caregiverID int64, resp *models.ShiftListResponse) *CaregiverShiftsResponse {
	views := make([]ShiftView, 0, len(resp.Shifts))
	for _, s := range resp.Shifts {
		views = append(views, ShiftView{
			ID:            s.ID,
			OrderID:       s.OrderID,
			ClientID:      s.ClientID,
			Date:          s.Date.Format(domain.DateFormat),
			StartTime:     s.StartTime,
			EndTime:       s.EndTime,
			DurationHours: s.DurationHours,
			ServiceCode:   s.ServiceCode,
			Status:        s.Status,
			Note:          s.Note,
		})
	}

	return &CaregiverShiftsResponse{
		CaregiverID: caregiverID,
		Shifts:      views,
		Total:       resp.Total,
	}
}
