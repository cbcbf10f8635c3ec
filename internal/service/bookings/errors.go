package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrCannotCancel возвращается при попытке отменить завершённое бронирование
	ErrCannotCancel = errors.New("bookings.service: booking cannot be cancelled")

	// ErrInvalidStatus возвращается при неизвестном статусе в ручной правке
	ErrInvalidStatus = errors.New("bookings.service: invalid status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)
