package directory

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("client not found")

	// ErrCaregiverNotFound возвращается, когда сиделка не найдена
	ErrCaregiverNotFound = errors.New("caregiver not found")

	// ErrAgencyNotFound возвращается, когда агентство не найдено
	ErrAgencyNotFound = errors.New("agency not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("directory client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("directory client: invalid response")
)
