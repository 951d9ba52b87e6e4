package orders

import (
	"context"

	"github.com/Munkh976/caremuch-sub000/internal/domain"
)

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.CareOrder, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (*domain.CareOrder, error)
	GetByClientID(ctx context.Context, clientID int64) ([]*domain.CareOrder, error)
	Delete(ctx context.Context, id int64) error
}

// ShiftRepository интерфейс репозитория смен
type ShiftRepository interface {
	GetByOrderID(ctx context.Context, orderID int64) ([]*domain.CareShift, error)
	GetByCaregiverAndDateRange(ctx context.Context, caregiverID int64, filter domain.ShiftRangeFilter) ([]*domain.CareShift, error)
	DeleteByOrderID(ctx context.Context, orderID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
