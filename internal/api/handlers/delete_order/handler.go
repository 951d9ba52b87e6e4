package delete_order

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Munkh976/caremuch-sub000/internal/api/handlers"
	"github.com/Munkh976/caremuch-sub000/internal/service/orders"
)

const (
	msgInvalidOrderID    = "некорректный ID заказа"
	msgOrderNotFound     = "заказ не найден"
	msgOrderNotDeletable = "заказ уже в работе агентства и не может быть удалён"
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

// Handle DELETE /api/v1/orders/{orderId}
// Удаляет сам заказ и все его смены. Компенсация для частично
// созданных заказов использует этот же путь.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	orderID, err := strconv.ParseInt(vars["orderId"], 10, 64)
	if err != nil || orderID <= 0 {
		h.logger.Warn("DELETE /orders - Invalid order id: %s", vars["orderId"])
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	if err := h.service.Delete(r.Context(), orderID); err != nil {
		switch {
		case errors.Is(err, orders.ErrOrderNotFound):
			h.logger.Warn("DELETE /orders - Order not found: order_id=%d", orderID)
			handlers.RespondNotFound(w, msgOrderNotFound)

		case errors.Is(err, orders.ErrOrderNotDeletable):
			h.logger.Warn("DELETE /orders - Order not deletable: order_id=%d", orderID)
			handlers.RespondConflict(w, msgOrderNotDeletable)

		case errors.Is(err, orders.ErrInvalidInput):
			h.logger.Warn("DELETE /orders - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidOrderID)

		default:
			h.logger.Error("DELETE /orders - Failed: order_id=%d, error=%v", orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /orders - Order deleted: order_id=%d", orderID)
	w.WriteHeader(http.StatusNoContent)
}
