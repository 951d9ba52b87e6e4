package create_care_order

import (
	"errors"
	"net/http"

	"github.com/Munkh976/caremuch-sub000/internal/api/handlers"
	createCareOrder "github.com/Munkh976/caremuch-sub000/internal/usecase/create_care_order"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты начала, ожидается YYYY-MM-DD"
	msgIncompleteBooking    = "бронирование не завершено: сделаны не все обязательные выборы"
	msgClientNotFound       = "клиент не найден"
	msgCaregiverNotFound    = "сиделка не найдена"
	msgServiceNotFound      = "услуга не найдена в каталоге агентства"
	msgCaregiverNotEligible = "сиделка не обслуживает адрес клиента или недоступна в выбранный день"
	msgInvalidSlot          = "некорректное время слота"
	msgSlotNotFeasible      = "выбранный слот не вмещает визит такой длительности"
	msgNoShiftDates         = "для выбранных даты и дня недели не получилось ни одной смены"
	msgShiftConflict        = "сиделка уже занята в один из генерируемых слотов"
	msgPartialBooking       = "заказ создан, но смены не сохранены; обратитесь в поддержку"
)

type Handler struct {
	useCase CreateCareOrderUseCase
	logger  Logger
}

func NewHandler(useCase CreateCareOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/orders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateCareOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /orders - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /orders - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createCareOrder.ErrIncompleteBooking):
			h.logger.Warn("POST /orders - Incomplete booking: client_id=%d: %v", req.ClientID, err)
			handlers.RespondBadRequest(w, msgIncompleteBooking)

		case errors.Is(err, createCareOrder.ErrClientNotFound):
			h.logger.Warn("POST /orders - Client not found: client_id=%d", req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createCareOrder.ErrCaregiverNotFound):
			h.logger.Warn("POST /orders - Caregiver not found: caregiver_id=%d", req.CaregiverID)
			handlers.RespondNotFound(w, msgCaregiverNotFound)

		case errors.Is(err, createCareOrder.ErrServiceNotFound):
			h.logger.Warn("POST /orders - Service not found: client_id=%d, service=%s", req.ClientID, req.ServiceCode)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createCareOrder.ErrCaregiverNotEligible):
			h.logger.Warn("POST /orders - Caregiver not eligible: client_id=%d, caregiver_id=%d", req.ClientID, req.CaregiverID)
			handlers.RespondConflict(w, msgCaregiverNotEligible)

		case errors.Is(err, createCareOrder.ErrInvalidSlot):
			h.logger.Warn("POST /orders - Invalid slot: client_id=%d, slot=%s %s", req.ClientID, req.SlotTime, req.SlotPeriod)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, createCareOrder.ErrSlotNotFeasible):
			h.logger.Warn("POST /orders - Slot not feasible: client_id=%d, caregiver_id=%d", req.ClientID, req.CaregiverID)
			handlers.RespondConflict(w, msgSlotNotFeasible)

		case errors.Is(err, createCareOrder.ErrNoShiftDates):
			h.logger.Warn("POST /orders - No shift dates: client_id=%d, cadence=%s", req.ClientID, req.Cadence)
			handlers.RespondBadRequest(w, msgNoShiftDates)

		case errors.Is(err, createCareOrder.ErrShiftConflict):
			h.logger.Warn("POST /orders - Shift conflict: caregiver_id=%d", req.CaregiverID)
			handlers.RespondConflict(w, msgShiftConflict)

		case errors.Is(err, createCareOrder.ErrPartialBooking):
			// Громкая ошибка: заказ без смен, требуется компенсация
			h.logger.Error("POST /orders - Partial booking: client_id=%d, error=%v", req.ClientID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgPartialBooking)

		case errors.Is(err, createCareOrder.ErrInvalidInput):
			h.logger.Warn("POST /orders - Invalid input: client_id=%d: %v", req.ClientID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /orders - Failed to create order: client_id=%d, error=%v", req.ClientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /orders - Order created: order_id=%d, number=%s, shifts=%d",
		result.OrderID, result.OrderNumber, len(result.Shifts))
	handlers.RespondJSON(w, http.StatusCreated, response)
}
