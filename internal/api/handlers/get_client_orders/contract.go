package get_client_orders

import (
	"context"

	"github.com/Munkh976/caremuch-sub000/internal/service/orders/models"
)

type OrdersService interface {
	GetClientOrders(ctx context.Context, clientID int64) (*models.OrderListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
