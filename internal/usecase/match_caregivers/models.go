package match_caregivers

import "github.com/Munkh976/caremuch-sub000/pkg/types"

// Request модель запроса на подбор сиделок для клиента на день недели
type Request struct {
	ClientID  int64
	DayOfWeek int // 0 = воскресенье .. 6 = суббота
}

// CaregiverMatch подходящая сиделка с её окном доступности на выбранный день
type CaregiverMatch struct {
	ID                int64
	FullName          string
	PerformanceRating float64
	HourlyRate        float64
	WindowStart       types.TimeString
	WindowEnd         types.TimeString
}

// Response ранжированный список подходящих сиделок.
// Пустой список - валидный ответ: "на этот день никого нет",
// вызывающая сторона предлагает выбрать другой день.
type Response struct {
	ClientID  int64
	DayOfWeek int
	Matches   []CaregiverMatch
}

// HasMatches возвращает true, если нашлась хотя бы одна подходящая сиделка
func (r *Response) HasMatches() bool {
	return len(r.Matches) > 0
}
