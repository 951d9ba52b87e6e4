package get_order_shifts

import (
	"context"

	"github.com/Munkh976/caremuch-sub000/internal/service/orders/models"
)

type OrdersService interface {
	GetOrderShifts(ctx context.Context, orderID int64) (*models.ShiftListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
