package get_client_orders

import (
	"time"

	"github.com/Munkh976/caremuch-sub000/internal/domain"
	"github.com/Munkh976/caremuch-sub000/internal/service/orders/models"
)

// OrderView заказ в списке
type OrderView struct {
	ID          int64  `json:"id"`
	OrderNumber string `json:"orderNumber"`
	CaregiverID int64  `json:"caregiverId"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Cadence     string `json:"cadence"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

// ClientOrdersResponse список заказов клиента
type ClientOrdersResponse struct {
	ClientID int64       `json:"clientId"`
	Orders   []OrderView `json:"orders"`
	Total    int         `json:"total"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(clientID int64, resp *models.OrderListResponse) *ClientOrdersResponse {
	views := make([]OrderView, 0, len(resp.Orders))
	for _, o := range resp.Orders {
		views = append(views, OrderView{
			ID:          o.ID,
			OrderNumber: o.OrderNumber,
			CaregiverID: o.CaregiverID,
			StartDate:   o.StartDate.Format(domain.DateFormat),
			EndDate:     o.EndDate.Format(domain.DateFormat),
			Cadence:     o.Cadence,
			Status:      o.Status,
			CreatedAt:   o.CreatedAt.Format(time.RFC3339),
		})
	}

	return &ClientOrdersResponse{
		ClientID: clientID,
		Orders:   views,
		Total:    resp.Total,
	}
}
