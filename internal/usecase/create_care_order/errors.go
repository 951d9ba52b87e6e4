package create_care_order

import "errors"

var (
	// ErrIncompleteBooking возвращается при попытке материализации до того,
	// как сделаны все обязательные выборы черновика
	ErrIncompleteBooking = errors.New("create_care_order: booking is incomplete")

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("create_care_order: client not found")

	// ErrCaregiverNotFound возвращается, когда сиделка не найдена
	ErrCaregiverNotFound = errors.New("create_care_order: caregiver not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге агентства
	ErrServiceNotFound = errors.New("create_care_order: care service not found")

	// ErrCaregiverNotEligible возвращается, когда выбранная сиделка не обслуживает
	// zip-код клиента или недоступна в выбранный день недели
	ErrCaregiverNotEligible = errors.New("create_care_order: caregiver is not eligible for this client and day")

	// ErrInvalidSlot возвращается при некорректном времени слота
	ErrInvalidSlot = errors.New("create_care_order: invalid slot time")

	// ErrSlotNotFeasible возвращается, когда выбранный слот не помещается в окно
	// доступности сиделки с учётом длительности визита
	ErrSlotNotFeasible = errors.New("create_care_order: slot does not fit caregiver availability")

	// ErrNoShiftDates возвращается, когда разворачивание повторения не дало ни
	// одной даты (например, once при несовпадении дня недели и даты начала)
	ErrNoShiftDates = errors.New("create_care_order: recurrence produced no shift dates")

	// ErrShiftConflict возвращается, когда сиделка уже занята в один из
	// сгенерированных слотов (ограничение уникальности в хранилище)
	ErrShiftConflict = errors.New("create_care_order: caregiver already booked for one of the generated shifts")

	// ErrPartialBooking возвращается, когда заказ создан, а пакетная вставка смен
	// не удалась. Ошибка громкая и никогда не глотается: вызывающая сторона
	// обязана компенсировать (удалить заказ) или повторить.
	ErrPartialBooking = errors.New("create_care_order: order created but shifts were not persisted")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_care_order: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_care_order: internal error")
)
