package get_caregiver_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/Munkh976/caremuch-sub000/internal/domain"
	directoryClient "github.com/Munkh976/caremuch-sub000/internal/integrations/directory"
	"github.com/Munkh976/caremuch-sub000/internal/scheduling"
)

// UseCase use case получения выполнимых слотов: из фиксированного каталога
// оставляет времена начала, при которых визит выбранной длительности целиком
// помещается в окно доступности сиделки
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

// Execute выполняет подбор слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCaregiverSlots: client=%d, caregiver=%d, day=%d, service=%s",
		req.ClientID, req.CaregiverID, req.DayOfWeek, req.PrimaryServiceCode)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCaregiverSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем клиента (нужно его агентство для каталога услуг)
	client, err := uc.directory.GetClient(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, directoryClient.ErrClientNotFound) {
			uc.logger.Warn("GetCaregiverSlots: client id=%d not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("GetCaregiverSlots: failed to get client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	// 3. Получаем каталог услуг и вычисляем эффективную длительность визита
	services, err := uc.directory.GetActiveCareServices(ctx, client.AgencyID)
	if err != nil {
		uc.logger.Error("GetCaregiverSlots: failed to get care services for agency=%d: %v", client.AgencyID, err)
		return nil, fmt.Errorf("%w: failed to get care services: %v", ErrInternal, err)
	}

	primary, ok := findService(services, req.PrimaryServiceCode)
	if !ok {
		uc.logger.Warn("GetCaregiverSlots: service code=%s not found in agency=%d catalog",
			req.PrimaryServiceCode, client.AgencyID)
		return nil, ErrServiceNotFound
	}

	var additionalDomain *domain.CareService
	if req.AdditionalServiceCode != nil {
		additional, ok := findService(services, *req.AdditionalServiceCode)
		if !ok {
			uc.logger.Warn("GetCaregiverSlots: additional service code=%s not found in agency=%d catalog",
				*req.AdditionalServiceCode, client.AgencyID)
			return nil, ErrServiceNotFound
		}
		ad := additional.ToDomain()
		additionalDomain = &ad
	}

	composition := scheduling.Compose(primary.ToDomain(), additionalDomain)

	// 4. Получаем сиделку и фильтруем каталог слотов по её окну.
	// Отсутствие окна на этот день даёт пустой результат, не ошибку.
	caregiver, err := uc.directory.GetCaregiver(ctx, req.CaregiverID)
	if err != nil {
		if errors.Is(err, directoryClient.ErrCaregiverNotFound) {
			uc.logger.Warn("GetCaregiverSlots: caregiver id=%d not found", req.CaregiverID)
			return nil, ErrCaregiverNotFound
		}
		uc.logger.Error("GetCaregiverSlots: failed to get caregiver id=%d: %v", req.CaregiverID, err)
		return nil, fmt.Errorf("%w: failed to get caregiver: %v", ErrInternal, err)
	}

	caregiverDomain := caregiver.ToDomain()
	feasible, err := scheduling.FeasibleForDay(caregiverDomain.Availability, req.DayOfWeek, composition.DurationHours)
	if err != nil {
		uc.logger.Error("GetCaregiverSlots: failed to filter slots: %v", err)
		return nil, fmt.Errorf("%w: failed to filter slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetCaregiverSlots: %d feasible slots for caregiver=%d, day=%d, duration=%dh",
		feasible.Count(), req.CaregiverID, req.DayOfWeek, composition.DurationHours)

	return &Response{
		CaregiverID:   req.CaregiverID,
		DayOfWeek:     req.DayOfWeek,
		DurationHours: composition.DurationHours,
		HourlyRate:    composition.HourlyRate,
		Morning:       toSlotViews(feasible.Morning),
		Afternoon:     toSlotViews(feasible.Afternoon),
		Evening:       toSlotViews(feasible.Evening),
	}, nil
}

func toSlotViews(slots []scheduling.CandidateSlot) []SlotView {
	views := make([]SlotView, 0, len(slots))
	for _, s := range slots {
		views = append(views, SlotView{Time: s.Time, Period: s.Period})
	}
	return views
}
