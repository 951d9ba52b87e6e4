package scheduling

import "github.com/Munkh976/caremuch-sub000/internal/domain"

// Composition эффективные длительность и ставка визита после объединения услуг
type Composition struct {
	DurationHours int
	HourlyRate    float64
}

// VisitCost возвращает стоимость одного визита
func (c Composition) VisitCost() float64 {
	return float64(c.DurationHours) * c.HourlyRate
}

// Compose вычисляет эффективные длительность и ставку визита.
// Без дополнительной услуги - длительность и цена основной услуги как есть.
// С дополнительной - длительности суммируются, а ставка берётся как среднее
// двух цен (не сумма): итоговая стоимость визита = длительность * ставка.
// Повторный вызов без дополнительной услуги возвращает ровно исходные значения.
func Compose(primary domain.CareService, additional *domain.CareService) Composition {
	if additional == nil {
		return Composition{
			DurationHours: primary.DurationHours,
			HourlyRate:    primary.Price,
		}
	}

	return Composition{
		DurationHours: primary.DurationHours + additional.DurationHours,
		HourlyRate:    (primary.Price + additional.Price) / 2,
	}
}
