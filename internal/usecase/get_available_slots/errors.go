package get_available_slots

import "errors"

var (
	// ErrOfferingNotFound возвращается, когда связка ресурс+услуга не найдена
	ErrOfferingNotFound = errors.New("get_available_slots: service offering not found")

	// ErrServiceUnavailable возвращается, когда услуга отключена на ресурсе
	ErrServiceUnavailable = errors.New("get_available_slots: service is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
