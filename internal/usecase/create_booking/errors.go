package create_booking

import "errors"

var (
	// ErrOfferingNotFound возвращается, когда связка ресурс+услуга не найдена
	ErrOfferingNotFound = errors.New("create_booking: service offering not found")

	// ErrServiceUnavailable возвращается, когда услуга отключена на ресурсе
	ErrServiceUnavailable = errors.New("create_booking: service is not available")

	// ErrClosedOnDate возвращается, когда ресурс закрыт в запрошенный день
	ErrClosedOnDate = errors.New("create_booking: resource is closed on this date")

	// ErrNotAvailableOnDay возвращается, когда услуга не оказывается в этот день недели
	ErrNotAvailableOnDay = errors.New("create_booking: service is not available on this day")

	// ErrOutsideOperatingHours возвращается, когда начало вне окна работы
	ErrOutsideOperatingHours = errors.New("create_booking: start time is outside operating hours")

	// ErrInvalidSlotStart возвращается, когда начало не лежит на сетке слотов
	ErrInvalidSlotStart = errors.New("create_booking: start time is not aligned to the slot grid")

	// ErrSlotTaken возвращается, когда слот уже занят активным бронированием
	ErrSlotTaken = errors.New("create_booking: slot is already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
