package get_caregiver_slots

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("get_caregiver_slots: client not found")

	// ErrCaregiverNotFound возвращается, когда сиделка не найдена
	ErrCaregiverNotFound = errors.New("get_caregiver_slots: caregiver not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге агентства
	ErrServiceNotFound = errors.New("get_caregiver_slots: care service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_caregiver_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_caregiver_slots: internal error")
)
