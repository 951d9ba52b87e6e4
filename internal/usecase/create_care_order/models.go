package create_care_order

import (
	"time"

	"github.com/Munkh976/caremuch-sub000/internal/domain"
	"github.com/Munkh976/caremuch-sub000/internal/scheduling"
	"github.com/Munkh976/caremuch-sub000/pkg/types"
)

// Request модель запроса на материализацию заказа из черновика бронирования
type Request struct {
	ClientID              int64
	CaregiverID           int64
	PrimaryServiceCode    string
	AdditionalServiceCode *string            // опционально: вторая услуга визита
	DayOfWeek             int                // 0 = воскресенье .. 6 = суббота
	Cadence               domain.Cadence     // once / weekly / biweekly / monthly
	SlotTime              string             // время слота каталога, например "9:00"
	SlotPeriod            scheduling.Period  // AM / PM
	StartDate             time.Time          // дата начала серии (без времени)
}

// ShiftInfo смена в составе созданного заказа
type ShiftInfo struct {
	ID            int64
	Date          time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	DurationHours int
	Status        string
}

// Response модель ответа с созданным заказом и его сменами
type Response struct {
	OrderID     int64
	OrderNumber string
	ClientID    int64
	AgencyID    int64
	CaregiverID int64
	StartDate   time.Time
	EndDate     time.Time
	Cadence     domain.Cadence
	Status      string

	DurationHours int
	HourlyRate    float64
	VisitCost     float64

	Shifts []ShiftInfo

	CreatedAt time.Time
}
