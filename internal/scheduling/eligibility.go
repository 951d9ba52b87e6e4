package scheduling

import (
	"sort"

	"github.com/Munkh976/caremuch-sub000/internal/domain"
)

// IsEligible проверяет, подходит ли сиделка клиенту на указанный день недели:
// обслуживает его zip-код И имеет доступное окно на этот день
func IsEligible(caregiver *domain.Caregiver, clientZip string, dayOfWeek int) bool {
	if !caregiver.ServesZip(clientZip) {
		return false
	}
	_, ok := ResolveWindow(caregiver.Availability, dayOfWeek)
	return ok
}

// EligibleCaregivers фильтрует пул сиделок агентства до подходящих клиенту на
// указанный день и ранжирует их по рейтингу по убыванию. Сортировка стабильная:
// при равном рейтинге сохраняется исходный порядок пула.
// Пустой результат - валидный ответ ("на этот день никого нет"), не ошибка.
func EligibleCaregivers(pool []domain.Caregiver, clientZip string, dayOfWeek int) []domain.Caregiver {
	eligible := make([]domain.Caregiver, 0, len(pool))
	for _, c := range pool {
		if IsEligible(&c, clientZip, dayOfWeek) {
			eligible = append(eligible, c)
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].PerformanceRating > eligible[j].PerformanceRating
	})

	return eligible
}
