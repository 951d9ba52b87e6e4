package get_caregiver_slots

import "github.com/Munkh976/caremuch-sub000/internal/scheduling"

// Request модель запроса на получение выполнимых слотов сиделки
type Request struct {
	ClientID              int64
	CaregiverID           int64
	DayOfWeek             int // 0 = воскресенье .. 6 = суббота
	PrimaryServiceCode    string
	AdditionalServiceCode *string // опционально: вторая услуга визита
}

// SlotView слот каталога в ответе
type SlotView struct {
	Time   string
	Period scheduling.Period
}

// Response выполнимые слоты по частям дня с учётом длительности визита.
// Пустые списки по всем сегментам - валидный ответ: окно сиделки не вмещает
// визит такой длительности, вызывающая сторона предлагает более короткую
// услугу или другую сиделку.
type Response struct {
	CaregiverID   int64
	DayOfWeek     int
	DurationHours int
	HourlyRate    float64

	Morning   []SlotView
	Afternoon []SlotView
	Evening   []SlotView
}

// HasSlots возвращает true, если хотя бы один слот выполним
func (r *Response) HasSlots() bool {
	return len(r.Morning)+len(r.Afternoon)+len(r.Evening) > 0
}
