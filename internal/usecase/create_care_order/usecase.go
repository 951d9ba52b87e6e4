package create_care_order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Munkh976/caremuch-sub000/internal/domain"
	shiftRepo "github.com/Munkh976/caremuch-sub000/internal/infra/storage/shift"
	directoryClient "github.com/Munkh976/caremuch-sub000/internal/integrations/directory"
	"github.com/Munkh976/caremuch-sub000/internal/scheduling"
)

// UseCase use case материализации заказа: превращает завершённый черновик
// бронирования в один заказ и серию конкретных датированных смен
type UseCase struct {
	orderRepo OrderRepository
	shiftRepo ShiftRepository
	directory DirectoryClient
	orderNum  OrderNumberGenerator
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	orderRepo OrderRepository,
	shiftRepo ShiftRepository,
	directory DirectoryClient,
	orderNum OrderNumberGenerator,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		orderRepo: orderRepo,
		shiftRepo: shiftRepo,
		directory: directory,
		orderNum:  orderNum,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute выполняет материализацию заказа.
// Создание заказа и пакетная вставка смен выполняются в одной транзакции:
// для вызывающей стороны шаг "всё или ничего". Если вставка смен всё же
// упала после создания заказа, наружу уходит ErrPartialBooking с ID заказа.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateCareOrder: client=%d, caregiver=%d, service=%s, day=%d, cadence=%s, date=%s",
		req.ClientID, req.CaregiverID, req.PrimaryServiceCode, req.DayOfWeek, req.Cadence,
		req.StartDate.Format(domain.DateFormat))

	// 1. Валидация значений запроса
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateCareOrder: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализуем выбранный слот каталога в 24-часовое время
	draft := domain.BookingDraft{
		ClientID:              req.ClientID,
		PrimaryServiceCode:    req.PrimaryServiceCode,
		AdditionalServiceCode: req.AdditionalServiceCode,
		DayOfWeek:             req.DayOfWeek,
		Cadence:               req.Cadence,
		CaregiverID:           req.CaregiverID,
		StartDate:             req.StartDate,
	}

	if req.SlotTime != "" {
		startTime, err := scheduling.To24Hour(scheduling.CandidateSlot{
			Time:   req.SlotTime,
			Period: req.SlotPeriod,
		})
		if err != nil {
			uc.logger.Warn("CreateCareOrder: invalid slot %s %s: %v", req.SlotTime, req.SlotPeriod, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidSlot, err)
		}
		draft.StartTime = startTime
	}

	// 3. Проверяем полноту черновика: все обязательные выборы сделаны
	if err := checkDraftComplete(&draft); err != nil {
		uc.logger.Warn("CreateCareOrder: %v", err)
		return nil, err
	}

	// 4. Получаем клиента
	client, err := uc.directory.GetClient(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, directoryClient.ErrClientNotFound) {
			uc.logger.Warn("CreateCareOrder: client id=%d not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("CreateCareOrder: failed to get client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	// 5. Получаем каталог услуг агентства и находим выбранные услуги
	services, err := uc.directory.GetActiveCareServices(ctx, client.AgencyID)
	if err != nil {
		uc.logger.Error("CreateCareOrder: failed to get care services for agency=%d: %v", client.AgencyID, err)
		return nil, fmt.Errorf("%w: failed to get care services: %v", ErrInternal, err)
	}

	primary, ok := findService(services, req.PrimaryServiceCode)
	if !ok {
		uc.logger.Warn("CreateCareOrder: service code=%s not found in agency=%d catalog",
			req.PrimaryServiceCode, client.AgencyID)
		return nil, ErrServiceNotFound
	}

	var additional *directoryClient.CareService
	if req.AdditionalServiceCode != nil {
		additional, ok = findService(services, *req.AdditionalServiceCode)
		if !ok {
			uc.logger.Warn("CreateCareOrder: additional service code=%s not found in agency=%d catalog",
				*req.AdditionalServiceCode, client.AgencyID)
			return nil, ErrServiceNotFound
		}
	}

	// 6. Вычисляем эффективные длительность и ставку визита
	primaryDomain := primary.ToDomain()
	var additionalDomain *domain.CareService
	if additional != nil {
		ad := additional.ToDomain()
		additionalDomain = &ad
	}
	composition := scheduling.Compose(primaryDomain, additionalDomain)
	draft.DurationHours = composition.DurationHours
	draft.HourlyRate = composition.HourlyRate

	// 7. Получаем сиделку и повторно проверяем подходимость:
	// zip-код клиента и доступное окно на выбранный день
	caregiver, err := uc.directory.GetCaregiver(ctx, req.CaregiverID)
	if err != nil {
		if errors.Is(err, directoryClient.ErrCaregiverNotFound) {
			uc.logger.Warn("CreateCareOrder: caregiver id=%d not found", req.CaregiverID)
			return nil, ErrCaregiverNotFound
		}
		uc.logger.Error("CreateCareOrder: failed to get caregiver id=%d: %v", req.CaregiverID, err)
		return nil, fmt.Errorf("%w: failed to get caregiver: %v", ErrInternal, err)
	}

	caregiverDomain := caregiver.ToDomain()
	if !scheduling.IsEligible(&caregiverDomain, client.ZipCode, req.DayOfWeek) {
		uc.logger.Warn("CreateCareOrder: caregiver id=%d not eligible for client=%d (zip=%s) on day=%d",
			req.CaregiverID, req.ClientID, client.ZipCode, req.DayOfWeek)
		return nil, ErrCaregiverNotEligible
	}

	// 8. Проверяем, что выбранный слот помещается в окно доступности
	window, _ := scheduling.ResolveWindow(caregiverDomain.Availability, req.DayOfWeek)
	fits, err := scheduling.FitsWindow(window, draft.StartTime, draft.DurationHours)
	if err != nil {
		uc.logger.Error("CreateCareOrder: failed to check slot fit: %v", err)
		return nil, fmt.Errorf("%w: failed to check slot fit: %v", ErrInternal, err)
	}
	if !fits {
		uc.logger.Warn("CreateCareOrder: slot %s (%dh) does not fit window %s-%s of caregiver id=%d",
			draft.StartTime, draft.DurationHours, window.StartTime, window.EndTime, req.CaregiverID)
		return nil, ErrSlotNotFeasible
	}

	// 9. Разворачиваем повторение в список дат
	dates := scheduling.ExpandDates(draft.StartDate, draft.DayOfWeek, draft.Cadence)
	if len(dates) == 0 {
		uc.logger.Warn("CreateCareOrder: recurrence produced no dates (cadence=%s, start=%s, day=%d)",
			draft.Cadence, draft.StartDate.Format(domain.DateFormat), draft.DayOfWeek)
		return nil, ErrNoShiftDates
	}

	// 10. Вычисляем время окончания смены: (начало + длительность) mod 24
	endTime, err := draft.StartTime.AddMinutes(draft.DurationHours * 60)
	if err != nil {
		uc.logger.Error("CreateCareOrder: failed to compute end time: %v", err)
		return nil, fmt.Errorf("%w: failed to compute end time: %v", ErrInternal, err)
	}

	// 11. Собираем заказ и смены
	order := &domain.CareOrder{
		OrderNumber: uc.orderNum.Generate(),
		ClientID:    client.ID,
		AgencyID:    client.AgencyID,
		CaregiverID: caregiverDomain.ID,
		StartDate:   dateOnly(draft.StartDate),
		EndDate:     scheduling.HorizonEnd(draft.StartDate, draft.Cadence),
		Cadence:     draft.Cadence,
		Status:      domain.OrderStatusSubmitted,
	}

	var note *string
	if additional != nil {
		n := fmt.Sprintf("Includes additional service: %s", additional.Name)
		note = &n
	}

	// 12. Создаем заказ и смены в одной транзакции
	var created *domain.CareOrder
	txErr := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err = uc.orderRepo.Create(txCtx, order)
		if err != nil {
			uc.logger.Error("CreateCareOrder: failed to create order: %v", err)
			return fmt.Errorf("%w: failed to create order: %v", ErrInternal, err)
		}

		shifts := make([]*domain.CareShift, 0, len(dates))
		for _, date := range dates {
			shifts = append(shifts, &domain.CareShift{
				OrderID:       &created.ID,
				ClientID:      client.ID,
				CaregiverID:   caregiverDomain.ID,
				Date:          date,
				StartTime:     draft.StartTime,
				EndTime:       endTime,
				DurationHours: draft.DurationHours,
				ServiceCode:   primary.Code,
				Status:        domain.ShiftStatusOpen,
				Note:          note,
			})
		}

		if err := uc.shiftRepo.BatchCreate(txCtx, shifts); err != nil {
			if errors.Is(err, shiftRepo.ErrShiftConflict) {
				uc.logger.Warn("CreateCareOrder: shift conflict for caregiver id=%d: %v", caregiverDomain.ID, err)
				return fmt.Errorf("%w: %v", ErrShiftConflict, err)
			}
			// Заказ уже создан, смены - нет: громкая ошибка с ID заказа,
			// вызывающая сторона компенсирует или повторяет
			uc.logger.Error("CreateCareOrder: order id=%d created but shift batch failed: %v", created.ID, err)
			return fmt.Errorf("%w: order_id=%d: %v", ErrPartialBooking, created.ID, err)
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Info("CreateCareOrder: created order id=%d number=%s with %d shifts for client=%d",
		created.ID, created.OrderNumber, len(dates), client.ID)

	// 13. Формируем ответ
	shiftInfos := make([]ShiftInfo, 0, len(dates))
	for _, date := range dates {
		shiftInfos = append(shiftInfos, ShiftInfo{
			Date:          date,
			StartTime:     draft.StartTime,
			EndTime:       endTime,
			DurationHours: draft.DurationHours,
			Status:        string(domain.ShiftStatusOpen),
		})
	}

	return &Response{
		OrderID:       created.ID,
		OrderNumber:   created.OrderNumber,
		ClientID:      created.ClientID,
		AgencyID:      created.AgencyID,
		CaregiverID:   created.CaregiverID,
		StartDate:     created.StartDate,
		EndDate:       created.EndDate,
		Cadence:       created.Cadence,
		Status:        string(created.Status),
		DurationHours: composition.DurationHours,
		HourlyRate:    composition.HourlyRate,
		VisitCost:     composition.VisitCost(),
		Shifts:        shiftInfos,
		CreatedAt:     created.CreatedAt,
	}, nil
}

// dateOnly обнуляет компонент времени даты
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
