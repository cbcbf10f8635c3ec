package transition_status

import "errors"

var (
	// ErrInvalidStatus возвращается при неизвестном целевом статусе
	ErrInvalidStatus = errors.New("transition_status: invalid target status")

	// ErrNotTransitionTarget возвращается, когда целевой статус недостижим
	// автоматическими переходами (pending — только начальное состояние)
	ErrNotTransitionTarget = errors.New("transition_status: status is not a valid transition target")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("transition_status: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("transition_status: internal error")
)
