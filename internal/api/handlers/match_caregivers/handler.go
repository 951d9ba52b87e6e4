package match_caregivers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Munkh976/caremuch-sub000/internal/api/handlers"
	matchCaregivers "github.com/Munkh976/caremuch-sub000/internal/usecase/match_caregivers"
)

const (
	msgInvalidClientID  = "некорректный ID клиента"
	msgInvalidDay       = "некорректный день недели, ожидается 0..6"
	msgClientNotFound   = "клиент не найден"
	msgNoEligibleAdvice = "на этот день нет подходящих сиделок - попробуйте другой день"
)

type Handler struct {
	useCase MatchCaregiversUseCase
	logger  Logger
}

func NewHandler(useCase MatchCaregiversUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients/{clientId}/caregiver-matches?day=1
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	clientID, err := strconv.ParseInt(vars["clientId"], 10, 64)
	if err != nil || clientID <= 0 {
		h.logger.Warn("GET /caregiver-matches - Invalid client id: %s", vars["clientId"])
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	day, err := strconv.Atoi(r.URL.Query().Get("day"))
	if err != nil {
		h.logger.Warn("GET /caregiver-matches - Invalid day: %s", r.URL.Query().Get("day"))
		handlers.RespondBadRequest(w, msgInvalidDay)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &matchCaregivers.Request{
		ClientID:  clientID,
		DayOfWeek: day,
	})
	if err != nil {
		switch {
		case errors.Is(err, matchCaregivers.ErrClientNotFound):
			h.logger.Warn("GET /caregiver-matches - Client not found: client_id=%d", clientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, matchCaregivers.ErrInvalidInput):
			h.logger.Warn("GET /caregiver-matches - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDay)

		default:
			h.logger.Error("GET /caregiver-matches - Failed: client_id=%d, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Отсутствие подходящих сиделок - совет, не ошибка
	var advisory *string
	if !result.HasMatches() {
		msg := msgNoEligibleAdvice
		advisory = &msg
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, advisory))
}
