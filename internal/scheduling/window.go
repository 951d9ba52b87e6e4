package scheduling

import "github.com/Munkh976/caremuch-sub000/internal/domain"

// ResolveWindow возвращает окно доступности сиделки на указанный день недели.
// Если на один день объявлено несколько окон, побеждает первое доступное.
// Отсутствие окна не является ошибкой: второй результат false означает
// "в этот день недоступна".
func ResolveWindow(windows []domain.AvailabilityWindow, dayOfWeek int) (domain.AvailabilityWindow, bool) {
	for _, w := range windows {
		if w.Matches(dayOfWeek) {
			return w, true
		}
	}
	return domain.AvailabilityWindow{}, false
}
