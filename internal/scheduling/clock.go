package scheduling

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Munkh976/caremuch-sub000/pkg/types"
)

// To24Hour нормализует слот каталога в 24-часовое время ("HH:MM").
// Правила: блок PM добавляет 12 часов, кроме самого 12 PM; 12 AM отображается в 0.
func To24Hour(slot CandidateSlot) (types.TimeString, error) {
	minutes, err := slotMinutes(slot)
	if err != nil {
		return "", err
	}
	return types.NewTimeStringFromMinutes(minutes), nil
}

// slotMinutes переводит слот каталога в минуты от полуночи
func slotMinutes(slot CandidateSlot) (int, error) {
	parts := strings.SplitN(slot.Time, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid slot time %q", slot.Time)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid slot hour %q: %v", slot.Time, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid slot minute %q: %v", slot.Time, err)
	}
	if hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("slot time %q out of range", slot.Time)
	}

	// Нормализация 12-часового формата в 24-часовой
	switch slot.Period {
	case PeriodPM:
		if hour != 12 {
			hour += 12
		}
	case PeriodAM:
		if hour == 12 {
			hour = 0
		}
	default:
		return 0, fmt.Errorf("invalid slot period %q", slot.Period)
	}

	return hour*60 + minute, nil
}
