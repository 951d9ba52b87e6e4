package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Munkh976/caremuch-sub000/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestHorizonEnd(t *testing.T) {
	start := date(2026, time.September, 1)

	tests := []struct {
		name    string
		cadence domain.Cadence
		want    time.Time
	}{
		{name: "once ends same day", cadence: domain.CadenceOnce, want: date(2026, time.September, 1)},
		{name: "weekly three months", cadence: domain.CadenceWeekly, want: date(2026, time.December, 1)},
		{name: "biweekly six months", cadence: domain.CadenceBiweekly, want: date(2027, time.March, 1)},
		{name: "monthly twelve months", cadence: domain.CadenceMonthly, want: date(2027, time.September, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HorizonEnd(start, tt.cadence))
		})
	}
}

func TestExpandDates_Weekly(t *testing.T) {
	// 2026-09-01 - вторник
	start := date(2026, time.September, 1)

	dates := ExpandDates(start, 2, domain.CadenceWeekly)

	require.Len(t, dates, 14)
	assert.Equal(t, date(2026, time.September, 1), dates[0])
	assert.Equal(t, date(2026, time.December, 1), dates[13])

	// Все даты - вторники с недельным шагом
	for i, d := range dates {
		assert.Equal(t, time.Tuesday, d.Weekday())
		if i > 0 {
			assert.Equal(t, dates[i-1].AddDate(0, 0, 7), d)
		}
	}
}

func TestExpandDates_StartNotOnRequestedDay(t *testing.T) {
	// Начало во вторник, визиты по пятницам: первая дата - ближайшая пятница
	start := date(2026, time.September, 1)

	dates := ExpandDates(start, 5, domain.CadenceWeekly)

	require.NotEmpty(t, dates)
	assert.Equal(t, date(2026, time.September, 4), dates[0])
	assert.Equal(t, time.Friday, dates[0].Weekday())
}

func TestExpandDates_Once(t *testing.T) {
	// 2026-09-01 - вторник
	start := date(2026, time.September, 1)

	// День недели совпадает - одна дата
	dates := ExpandDates(start, 2, domain.CadenceOnce)
	require.Len(t, dates, 1)
	assert.Equal(t, start, dates[0])

	// День недели не совпадает - пустой список
	dates = ExpandDates(start, 5, domain.CadenceOnce)
	assert.Empty(t, dates)
}

func TestExpandDates_CadenceControlsHorizonOnly(t *testing.T) {
	start := date(2026, time.September, 1)

	weekly := ExpandDates(start, 2, domain.CadenceWeekly)
	biweekly := ExpandDates(start, 2, domain.CadenceBiweekly)

	// Шаг между визитами всегда неделя: более длинный горизонт
	// даёт строго больше дат с тем же началом
	require.True(t, len(biweekly) > len(weekly))
	assert.Equal(t, weekly, biweekly[:len(weekly)])
}

func TestExpandDates_StripsTimeComponent(t *testing.T) {
	start := time.Date(2026, time.September, 1, 15, 30, 45, 0, time.UTC)

	dates := ExpandDates(start, 2, domain.CadenceOnce)

	require.Len(t, dates, 1)
	assert.Equal(t, date(2026, time.September, 1), dates[0])
}
