package get_caregiver_slots

import (
	"context"

	"github.com/Munkh976/caremuch-sub000/internal/integrations/directory"
)

// DirectoryClient интерфейс клиента справочного сервиса агентства
type DirectoryClient interface {
	GetClient(ctx context.Context, clientID int64) (*directory.ClientProfile, error)
	GetCaregiver(ctx context.Context, caregiverID int64) (*directory.Caregiver, error)
	GetActiveCareServices(ctx context.Context, agencyID int64) ([]directory.CareService, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
