package transition_status

import "github.com/PKOOOO/cosmix-booking-service/internal/domain"

// Request модель запроса на пакетный перевод статусов
type Request struct {
	BookingIDs []int64
	NewStatus  domain.BookingStatus
}

// Response модель ответа: сколько бронирований реально переведено.
// Бронирования, уже находящиеся в целевом или недопустимом исходном
// статусе, пропускаются без ошибки — повтор запроса безопасен.
type Response struct {
	Requested int
	Updated   int64
}
