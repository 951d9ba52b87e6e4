package get_caregiver_slots

import (
	"context"

	getCaregiverSlots "github.com/Munkh976/caremuch-sub000/internal/usecase/get_caregiver_slots"
)

type GetCaregiverSlotsUseCase interface {
	Execute(ctx context.Context, req *getCaregiverSlots.Request) (*getCaregiverSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
