package get_caregiver_shifts

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/Munkh976/caremuch-sub000/internal/api/handlers"
	"github.com/Munkh976/caremuch-sub000/internal/domain"
	"github.com/Munkh976/caremuch-sub000/internal/service/orders"
)

const (
	msgInvalidCaregiverID = "некорректный ID сиделки"
	msgInvalidDate        = "некорректная дата, ожидается формат 2006-01-02"
	msgInvalidStatus      = "некорректный статус смены"
)

type Handler struct {
	service OrdersService
	logger  Logger
}

func NewHandler(service OrdersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/caregivers/{caregiverId}/shifts?from=2026-09-01&to=2026-09-30&status=open
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	query := r.URL.Query()

	caregiverID, err := strconv.ParseInt(vars["caregiverId"], 10, 64)
	if err != nil || caregiverID <= 0 {
		h.logger.Warn("GET /caregivers/shifts - Invalid caregiver id: %s", vars["caregiverId"])
		handlers.RespondBadRequest(w, msgInvalidCaregiverID)
		return
	}

	var filter domain.ShiftRangeFilter

	if from := query.Get("from"); from != "" {
		date, err := time.Parse(domain.DateFormat, from)
		if err != nil {
			h.logger.Warn("GET /caregivers/shifts - Invalid from date: %s", from)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		filter.StartDate = &date
	}

	if to := query.Get("to"); to != "" {
		date, err := time.Parse(domain.DateFormat, to)
		if err != nil {
			h.logger.Warn("GET /caregivers/shifts - Invalid to date: %s", to)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		filter.EndDate = &date
	}

	if status := query.Get("status"); status != "" {
		shiftStatus := domain.ShiftStatus(status)
		if !shiftStatus.IsValid() {
			h.logger.Warn("GET /caregivers/shifts - Invalid status: %s", status)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		filter.Status = &shiftStatus
	}

	result, err := h.service.GetCaregiverShifts(r.Context(), caregiverID, filter)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrInvalidInput):
			h.logger.Warn("GET /caregivers/shifts - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCaregiverID)

		default:
			h.logger.Error("GET /caregivers/shifts - Failed: caregiver_id=%d, error=%v", caregiverID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(caregiverID, result))
}
