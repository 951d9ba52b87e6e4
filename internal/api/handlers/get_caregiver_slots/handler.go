package get_caregiver_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Munkh976/caremuch-sub000/internal/api/handlers"
	getCaregiverSlots "github.com/Munkh976/caremuch-sub000/internal/usecase/get_caregiver_slots"
)

const (
	msgInvalidCaregiverID = "некорректный ID сиделки"
	msgInvalidClientID    = "некорректный ID клиента"
	msgInvalidDay         = "некорректный день недели, ожидается 0..6"
	msgMissingService     = "не указан код услуги"
	msgClientNotFound     = "клиент не найден"
	msgCaregiverNotFound  = "сиделка не найдена"
	msgServiceNotFound    = "услуга не найдена в каталоге агентства"
	msgInvalidInput       = "некорректные входные данные"
	msgNoFeasibleAdvice   = "окно сиделки не вмещает визит такой длительности - выберите более короткую услугу или другую сиделку"
)

type Handler struct {
	useCase GetCaregiverSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetCaregiverSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/caregivers/{caregiverId}/slots?clientId=1&day=1&service=PC04&additionalService=HM04
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	query := r.URL.Query()

	caregiverID, err := strconv.ParseInt(vars["caregiverId"], 10, 64)
	if err != nil || caregiverID <= 0 {
		h.logger.Warn("GET /caregivers/slots - Invalid caregiver id: %s", vars["caregiverId"])
		handlers.RespondBadRequest(w, msgInvalidCaregiverID)
		return
	}

	clientID, err := strconv.ParseInt(query.Get("clientId"), 10, 64)
	if err != nil || clientID <= 0 {
		h.logger.Warn("GET /caregivers/slots - Invalid client id: %s", query.Get("clientId"))
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	day, err := strconv.Atoi(query.Get("day"))
	if err != nil {
		h.logger.Warn("GET /caregivers/slots - Invalid day: %s", query.Get("day"))
		handlers.RespondBadRequest(w, msgInvalidDay)
		return
	}

	serviceCode := query.Get("service")
	if serviceCode == "" {
		h.logger.Warn("GET /caregivers/slots - Missing service code: caregiver_id=%d", caregiverID)
		handlers.RespondBadRequest(w, msgMissingService)
		return
	}

	var additionalServiceCode *string
	if code := query.Get("additionalService"); code != "" {
		additionalServiceCode = &code
	}

	result, err := h.useCase.Execute(r.Context(), &getCaregiverSlots.Request{
		ClientID:              clientID,
		CaregiverID:           caregiverID,
		DayOfWeek:             day,
		PrimaryServiceCode:    serviceCode,
		AdditionalServiceCode: additionalServiceCode,
	})
	if err != nil {
		switch {
		case errors.Is(err, getCaregiverSlots.ErrClientNotFound):
			h.logger.Warn("GET /caregivers/slots - Client not found: client_id=%d", clientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, getCaregiverSlots.ErrCaregiverNotFound):
			h.logger.Warn("GET /caregivers/slots - Caregiver not found: caregiver_id=%d", caregiverID)
			handlers.RespondNotFound(w, msgCaregiverNotFound)

		case errors.Is(err, getCaregiverSlots.ErrServiceNotFound):
			h.logger.Warn("GET /caregivers/slots - Service not found: code=%s", serviceCode)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getCaregiverSlots.ErrInvalidInput):
			h.logger.Warn("GET /caregivers/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /caregivers/slots - Failed: caregiver_id=%d, error=%v", caregiverID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Пустой результат - совет, не ошибка
	var advisory *string
	if !result.HasSlots() {
		msg := msgNoFeasibleAdvice
		advisory = &msg
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, advisory))
}
