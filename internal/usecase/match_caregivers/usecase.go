package match_caregivers

import (
	"context"
	"errors"
	"fmt"

	"github.com/Munkh976/caremuch-sub000/internal/domain"
	directoryClient "github.com/Munkh976/caremuch-sub000/internal/integrations/directory"
	"github.com/Munkh976/caremuch-sub000/internal/scheduling"
)

// UseCase use case подбора сиделок: фильтрует пул агентства до обслуживающих
// zip-код клиента и доступных в выбранный день, ранжирует по рейтингу
type UseCase struct {
	directory DirectoryClient
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(directory DirectoryClient, logger Logger) *UseCase {
	return &UseCase{
		directory: directory,
		logger:    logger,
	}
}

// Execute выполняет подбор сиделок
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("MatchCaregivers: client=%d, day=%d", req.ClientID, req.DayOfWeek)

	// 1. Валидация входных данных
	if req.ClientID <= 0 {
		return nil, fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}
	if req.DayOfWeek < domain.MinDayOfWeek || req.DayOfWeek > domain.MaxDayOfWeek {
		return nil, fmt.Errorf("%w: dayOfWeek must be within 0..6", ErrInvalidInput)
	}

	// 2. Получаем клиента (нужны его агентство и zip-код)
	client, err := uc.directory.GetClient(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, directoryClient.ErrClientNotFound) {
			uc.logger.Warn("MatchCaregivers: client id=%d not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("MatchCaregivers: failed to get client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	// 3. Получаем активный пул сиделок агентства
	pool, err := uc.directory.GetActiveCaregivers(ctx, client.AgencyID)
	if err != nil {
		uc.logger.Error("MatchCaregivers: failed to get caregivers for agency=%d: %v", client.AgencyID, err)
		return nil, fmt.Errorf("%w: failed to get caregivers: %v", ErrInternal, err)
	}

	caregivers := make([]domain.Caregiver, 0, len(pool))
	for i := range pool {
		caregivers = append(caregivers, pool[i].ToDomain())
	}

	// 4. Фильтруем и ранжируем
	eligible := scheduling.EligibleCaregivers(caregivers, client.ZipCode, req.DayOfWeek)

	matches := make([]CaregiverMatch, 0, len(eligible))
	for i := range eligible {
		window, _ := scheduling.ResolveWindow(eligible[i].Availability, req.DayOfWeek)
		matches = append(matches, CaregiverMatch{
			ID:                eligible[i].ID,
			FullName:          eligible[i].FullName,
			PerformanceRating: eligible[i].PerformanceRating,
			HourlyRate:        eligible[i].HourlyRate,
			WindowStart:       window.StartTime,
			WindowEnd:         window.EndTime,
		})
	}

	uc.logger.Info("MatchCaregivers: %d of %d caregivers eligible for client=%d (zip=%s) on day=%d",
		len(matches), len(pool), req.ClientID, client.ZipCode, req.DayOfWeek)

	return &Response{
		ClientID:  req.ClientID,
		DayOfWeek: req.DayOfWeek,
		Matches:   matches,
	}, nil
}
