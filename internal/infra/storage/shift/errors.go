package shift

import "errors"

var (
	// ErrShiftNotFound возвращается, когда смена не найдена
	ErrShiftNotFound = errors.New("shift.repository: shift not found")

	// ErrShiftConflict возвращается при нарушении уникальности
	// (caregiver_id, shift_date, start_time) - сиделка уже занята в этот слот
	ErrShiftConflict = errors.New("shift.repository: caregiver already booked for this slot")

	// ErrEmptyBatch возвращается при попытке вставить пустой пакет смен
	ErrEmptyBatch = errors.New("shift.repository: empty shift batch")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("shift.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("shift.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("shift.repository: failed to scan row")
)
