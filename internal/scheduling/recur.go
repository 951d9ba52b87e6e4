package scheduling

import (
	"time"

	"github.com/Munkh976/caremuch-sub000/internal/domain"
)

// HorizonEnd вычисляет дату окончания серии для каденции.
// once - серия из одной даты, конец совпадает с началом; weekly/biweekly/monthly
// добавляют 3/6/12 месяцев соответственно. Каденция влияет ТОЛЬКО на длину
// горизонта: шаг между визитами всегда одна неделя.
func HorizonEnd(startDate time.Time, cadence domain.Cadence) time.Time {
	months := cadence.HorizonMonths()
	if months == 0 {
		return dateOnly(startDate)
	}
	return dateOnly(startDate).AddDate(0, months, 0)
}

// ExpandDates перечисляет все календарные даты в [startDate, HorizonEnd]
// включительно, попадающие на запрошенный день недели, по возрастанию.
// Для once список содержит startDate, только если её день недели совпадает с
// запрошенным; иначе список пуст.
func ExpandDates(startDate time.Time, dayOfWeek int, cadence domain.Cadence) []time.Time {
	start := dateOnly(startDate)
	end := HorizonEnd(startDate, cadence)

	// Первая дата с нужным днём недели, не раньше начала серии
	offset := (dayOfWeek - int(start.Weekday()) + 7) % 7
	current := start.AddDate(0, 0, offset)

	dates := make([]time.Time, 0)
	for !current.After(end) {
		dates = append(dates, current)
		current = current.AddDate(0, 0, 7)
	}

	return dates
}

// dateOnly обнуляет компонент времени, сохраняя локацию
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
