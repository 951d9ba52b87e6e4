package domain

import "time"

// ShiftRangeFilter фильтр для выборки смен за период
type ShiftRangeFilter struct {
	StartDate *time.Time   // Начало периода (опционально, если nil - без ограничения)
	EndDate   *time.Time   // Конец периода (опционально, если nil - без ограничения)
	Status    *ShiftStatus // Фильтр по статусу (опционально)
}
