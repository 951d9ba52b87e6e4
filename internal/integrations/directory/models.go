package directory

import (
	"github.com/Munkh976/caremuch-sub000/internal/domain"
	"github.com/Munkh976/caremuch-sub000/pkg/types"
)

// ClientProfile модель клиента агентства из справочного сервиса
type ClientProfile struct {
	ID       int64  `json:"id"`
	AgencyID int64  `json:"agency_id"`
	FullName string `json:"full_name"`
	ZipCode  string `json:"zip_code"`
	IsActive bool   `json:"is_active"`
}

// ToDomain конвертирует в доменную модель
func (c *ClientProfile) ToDomain() domain.Client {
	return domain.Client{
		ID:       c.ID,
		AgencyID: c.AgencyID,
		FullName: c.FullName,
		ZipCode:  c.ZipCode,
	}
}

// AvailabilityWindow модель окна доступности сиделки
type AvailabilityWindow struct {
	CaregiverID int64  `json:"caregiver_id"`
	DayOfWeek   int    `json:"day_of_week"` // 0 = воскресенье .. 6 = суббота
	StartTime   string `json:"start_time"`  // "HH:MM"
	EndTime     string `json:"end_time"`    // "HH:MM"
	IsAvailable bool   `json:"is_available"`
}

// Caregiver модель сиделки из справочного сервиса агентства
type Caregiver struct {
	ID                int64                `json:"id"`
	AgencyID          int64                `json:"agency_id"`
	FullName          string               `json:"full_name"`
	ServiceZipcodes   []string             `json:"service_zipcodes"`
	Availability      []AvailabilityWindow `json:"availability"`
	PerformanceRating float64              `json:"performance_rating"`
	HourlyRate        float64              `json:"hourly_rate"`
	IsActive          bool                 `json:"is_active"`
}

// ToDomain конвертирует в доменную модель
func (c *Caregiver) ToDomain() domain.Caregiver {
	windows := make([]domain.AvailabilityWindow, 0, len(c.Availability))
	for _, w := range c.Availability {
		windows = append(windows, domain.AvailabilityWindow{
			CaregiverID: w.CaregiverID,
			DayOfWeek:   w.DayOfWeek,
			StartTime:   types.TimeString(w.StartTime),
			EndTime:     types.TimeString(w.EndTime),
			IsAvailable: w.IsAvailable,
		})
	}

	return domain.Caregiver{
		ID:                c.ID,
		FullName:          c.FullName,
		ServiceZipcodes:   c.ServiceZipcodes,
		Availability:      windows,
		PerformanceRating: c.PerformanceRating,
		HourlyRate:        c.HourlyRate,
	}
}

// CareService модель услуги из каталога агентства
type CareService struct {
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	DurationHours int     `json:"duration_hours"`
	Price         float64 `json:"price"`
	IsActive      bool    `json:"is_active"`
}

// ToDomain конвертирует в доменную модель
func (s *CareService) ToDomain() domain.CareService {
	return domain.CareService{
		Code:          s.Code,
		Name:          s.Name,
		Category:      s.Category,
		DurationHours: s.DurationHours,
		Price:         s.Price,
	}
}

// ErrorResponse модель ошибки от справочного сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
