package models

import (
	"time"

	"github.com/Munkh976/caremuch-sub000/internal/domain"
)

// OrderResponse заказ в ответе сервиса
type OrderResponse struct {
	ID          int64
	OrderNumber string
	ClientID    int64
	AgencyID    int64
	CaregiverID int64
	StartDate   time.Time
	EndDate     time.Time
	Cadence     string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderListResponse список заказов
type OrderListResponse struct {
	Orders []OrderResponse
	Total  int
}

// ShiftResponse смена в ответе сервиса
type ShiftResponse struct {
	ID            int64
	OrderID       *int64
	ClientID      int64
	CaregiverID   int64
	Date          time.Time
	StartTime     string
	EndTime       string
	DurationHours int
	ServiceCode   string
	Status        string
	Note          *string
	CreatedAt     time.Time
}

// ShiftListResponse список смен
type ShiftListResponse struct {
	Shifts []ShiftResponse
	Total  int
}

// FromDomainOrder конвертирует доменный заказ в ответ сервиса
func FromDomainOrder(o *domain.CareOrder) *OrderResponse {
	return &OrderResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		ClientID:    o.ClientID,
		AgencyID:    o.AgencyID,
		CaregiverID: o.CaregiverID,
		StartDate:   o.StartDate,
		EndDate:     o.EndDate,
		Cadence:     string(o.Cadence),
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// FromDomainOrderList конвертирует список доменных заказов
func FromDomainOrderList(orders []*domain.CareOrder) *OrderListResponse {
	result := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, *FromDomainOrder(o))
	}
	return &OrderListResponse{
		Orders: result,
		Total:  len(result),
	}
}

// FromDomainShift конвертирует доменную смену в ответ сервиса
func FromDomainShift(s *domain.CareShift) *ShiftResponse {
	return &ShiftResponse{
		ID:            s.ID,
		OrderID:       s.OrderID,
		ClientID:      s.ClientID,
		CaregiverID:   s.CaregiverID,
		Date:          s.Date,
		StartTime:     s.StartTime.String(),
		EndTime:       s.EndTime.String(),
		DurationHours: s.DurationHours,
		ServiceCode:   s.ServiceCode,
		Status:        string(s.Status),
		Note:          s.Note,
		CreatedAt:     s.CreatedAt,
	}
}

// FromDomainShiftList конвертирует список доменных смен
func FromDomainShiftList(shifts []*domain.CareShift) *ShiftListResponse {
	result := make([]ShiftResponse, 0, len(shifts))
	for _, s := range shifts {
		result = append(result, *FromDomainShift(s))
	}
	return &ShiftListResponse{
		Shifts: result,
		Total:  len(result),
	}
}
