package get_order

import (
	"time"

	"github.com/Munkh976/caremuch-sub000/internal/domain"
	"github.com/Munkh976/caremuch-sub000/internal/service/orders/models"
)

// OrderResponse заказ в HTTP-ответе
type OrderResponse struct {
	ID          int64  `json:"id"`
	OrderNumber string `json:"orderNumber"`
	ClientID    int64  `json:"clientId"`
	AgencyID    int64  `json:"agencyId"`
	CaregiverID int64  `json:"caregiverId"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Cadence     string `json:"cadence"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.OrderResponse) *OrderResponse {
	return &OrderResponse{
		ID:          resp.ID,
		OrderNumber: resp.OrderNumber,
		ClientID:    resp.ClientID,
		AgencyID:    resp.AgencyID,
		CaregiverID: resp.CaregiverID,
		StartDate:   resp.StartDate.Format(domain.DateFormat),
		EndDate:     resp.EndDate.Format(domain.DateFormat),
		Cadence:     resp.Cadence,
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
