package scheduling

import (
	"fmt"

	"github.com/Munkh976/caremuch-sub000/internal/domain"
	"github.com/Munkh976/caremuch-sub000/pkg/types"
)

// FeasibleSlots подмножество каталога, помещающееся в окно доступности,
// с сохранением группировки и порядка каталога
type FeasibleSlots struct {
	Morning   []CandidateSlot
	Afternoon []CandidateSlot
	Evening   []CandidateSlot
}

// IsEmpty возвращает true, если ни один слот не прошёл фильтр
func (f FeasibleSlots) IsEmpty() bool {
	return len(f.Morning) == 0 && len(f.Afternoon) == 0 && len(f.Evening) == 0
}

// Count возвращает общее количество прошедших слотов
func (f FeasibleSlots) Count() int {
	return len(f.Morning) + len(f.Afternoon) + len(f.Evening)
}

// FilterFeasible фильтрует каталог слотов по окну доступности и длительности
// визита. Слот проходит, только если интервал [start, start+duration) целиком
// помещается в окно: slot_start >= window_start И slot_end <= window_end.
// Слот, пересекающий границу окна, не проходит.
func FilterFeasible(window domain.AvailabilityWindow, durationHours int) (FeasibleSlots, error) {
	windowStart, err := window.StartTime.Minutes()
	if err != nil {
		return FeasibleSlots{}, fmt.Errorf("invalid window start time: %v", err)
	}
	windowEnd, err := window.EndTime.Minutes()
	if err != nil {
		return FeasibleSlots{}, fmt.Errorf("invalid window end time: %v", err)
	}

	durationMinutes := durationHours * 60
	catalog := Catalog()

	result := FeasibleSlots{}
	if result.Morning, err = filterSegment(catalog.Morning, windowStart, windowEnd, durationMinutes); err != nil {
		return FeasibleSlots{}, err
	}
	if result.Afternoon, err = filterSegment(catalog.Afternoon, windowStart, windowEnd, durationMinutes); err != nil {
		return FeasibleSlots{}, err
	}
	if result.Evening, err = filterSegment(catalog.Evening, windowStart, windowEnd, durationMinutes); err != nil {
		return FeasibleSlots{}, err
	}

	return result, nil
}

// FeasibleForDay объединяет резолвер окна и фильтр: находит окно сиделки на
// день недели и фильтрует каталог. Отсутствие окна даёт пустой результат по
// всем сегментам, а не ошибку.
func FeasibleForDay(windows []domain.AvailabilityWindow, dayOfWeek int, durationHours int) (FeasibleSlots, error) {
	window, ok := ResolveWindow(windows, dayOfWeek)
	if !ok {
		return FeasibleSlots{}, nil
	}
	return FilterFeasible(window, durationHours)
}

// FitsWindow проверяет, что интервал [start, start+duration) целиком
// помещается в окно доступности. Используется материализатором для повторной
// проверки выбранного слота перед созданием заказа.
func FitsWindow(window domain.AvailabilityWindow, start types.TimeString, durationHours int) (bool, error) {
	windowStart, err := window.StartTime.Minutes()
	if err != nil {
		return false, fmt.Errorf("invalid window start time: %v", err)
	}
	windowEnd, err := window.EndTime.Minutes()
	if err != nil {
		return false, fmt.Errorf("invalid window end time: %v", err)
	}
	slotStart, err := start.Minutes()
	if err != nil {
		return false, fmt.Errorf("invalid slot start time: %v", err)
	}

	slotEnd := slotStart + durationHours*60
	return slotStart >= windowStart && slotEnd <= windowEnd, nil
}

func filterSegment(slots []CandidateSlot, windowStart, windowEnd, durationMinutes int) ([]CandidateSlot, error) {
	feasible := make([]CandidateSlot, 0, len(slots))

	for _, slot := range slots {
		slotStart, err := slotMinutes(slot)
		if err != nil {
			return nil, err
		}
		slotEnd := slotStart + durationMinutes

		if slotStart >= windowStart && slotEnd <= windowEnd {
			feasible = append(feasible, slot)
		}
	}

	return feasible, nil
}
