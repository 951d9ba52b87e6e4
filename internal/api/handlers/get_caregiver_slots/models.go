package get_caregiver_slots

import (
	getCaregiverSlots "github.com/Munkh976/caremuch-sub000/internal/usecase/get_caregiver_slots"
)

// SlotView слот каталога в HTTP-ответе
type SlotView struct {
	Time   string `json:"time"`
	Period string `json:"period"`
}

// CaregiverSlotsResponse выполнимые слоты сиделки по частям дня.
// Пустые списки по всем сегментам сопровождаются советом.
type CaregiverSlotsResponse struct {
	CaregiverID   int64   `json:"caregiverId"`
	DayOfWeek     int     `json:"dayOfWeek"`
	DurationHours int     `json:"durationHours"`
	HourlyRate    float64 `json:"hourlyRate"`

	Morning   []SlotView `json:"morning"`
	Afternoon []SlotView `json:"afternoon"`
	Evening   []SlotView `json:"evening"`

	Advisory *string `json:"advisory,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCaregiverSlots.Response, advisory *string) *CaregiverSlotsResponse {
	return &CaregiverSlotsResponse{
		CaregiverID:   resp.CaregiverID,
		DayOfWeek:     resp.DayOfWeek,
		DurationHours: resp.DurationHours,
		HourlyRate:    resp.HourlyRate,
		Morning:       toSlotViews(resp.Morning),
		Afternoon:     toSlotViews(resp.Afternoon),
		Evening:       toSlotViews(resp.Evening),
		Advisory:      advisory,
	}
}

func toSlotViews(slots []getCaregiverSlots.SlotView) []SlotView {
	views := make([]SlotView, 0, len(slots))
	for _, s := range slots {
		views = append(views, SlotView{
			Time:   s.Time,
			Period: string(s.Period),
		})
	}

	return views
}
