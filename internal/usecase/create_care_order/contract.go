package create_care_order

import (
	"context"

	"github.com/Munkh976/caremuch-sub000/internal/domain"
	"github.com/Munkh976/caremuch-sub000/internal/integrations/directory"
)

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	Create(ctx context.Context, order *domain.CareOrder) (*domain.CareOrder, error)
}

// ShiftRepository интерфейс репозитория смен
type ShiftRepository interface {
	BatchCreate(ctx context.Context, shifts []*domain.CareShift) error
}

// DirectoryClient интерфейс клиента справочного сервиса агентства
type DirectoryClient interface {
	GetClient(ctx context.Context, clientID int64) (*directory.ClientProfile, error)
	GetCaregiver(ctx context.Context, caregiverID int64) (*directory.Caregiver, error)
	GetActiveCareServices(ctx context.Context, agencyID int64) ([]directory.CareService, error)
}

// OrderNumberGenerator интерфейс генерации уникальных номеров заказов
type OrderNumberGenerator interface {
	Generate() string
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
