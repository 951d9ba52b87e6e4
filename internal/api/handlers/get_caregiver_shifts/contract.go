package get_caregiver_shifts

import (
	"context"

	"github.com/Munkh976/caremuch-sub000/internal/domain"
	"github.com/Munkh976/caremuch-sub000/internal/service/orders/models"
)

type OrdersService interface {
	GetCaregiverShifts(ctx context.Context, caregiverID int64, filter domain.ShiftRangeFilter) (*models.ShiftListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
