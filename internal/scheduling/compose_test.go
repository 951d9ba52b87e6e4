package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Munkh976/caremuch-sub000/internal/domain"
)

func TestCompose_PrimaryOnly(t *testing.T) {
	primary := domain.CareService{Code: "PC04", Name: "Personal Care", DurationHours: 4, Price: 30}

	got := Compose(primary, nil)

	assert.Equal(t, 4, got.DurationHours)
	assert.Equal(t, 30.0, got.HourlyRate)
	assert.Equal(t, 120.0, got.VisitCost())
}

func TestCompose_WithAdditional(t *testing.T) {
	primary := domain.CareService{Code: "PC04", Name: "Personal Care", DurationHours: 4, Price: 30}
	additional := domain.CareService{Code: "SN04", Name: "Skilled Nursing", DurationHours: 4, Price: 40}

	got := Compose(primary, &additional)

	// Длительности складываются, ставка - среднее двух цен
	assert.Equal(t, 8, got.DurationHours)
	assert.Equal(t, 35.0, got.HourlyRate)
	assert.Equal(t, 280.0, got.VisitCost())
}

func TestCompose_ToggleReturnsOriginal(t *testing.T) {
	primary := domain.CareService{Code: "PC04", DurationHours: 4, Price: 30}
	additional := domain.CareService{Code: "SN04", DurationHours: 4, Price: 40}

	// Добавление и снятие дополнительной услуги возвращает исходные значения
	withAdditional := Compose(primary, &additional)
	assert.NotEqual(t, Compose(primary, nil), withAdditional)
	assert.Equal(t, Compose(primary, nil), Composition{DurationHours: 4, HourlyRate: 30})
}
