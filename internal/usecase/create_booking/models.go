package create_booking

import (
	"time"

	"github.com/PKOOOO/cosmix-booking-service/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	ResourceID    int64
	ServiceID     int64
	StartDateTime time.Time // Полная метка времени начала слота

	CustomerName  string
	CustomerPhone string
	CustomerEmail *string
	Notes         *string

	// PayAtVenue — оплата на месте: бронирование сразу подтверждается,
	// минуя ожидание платёжного события
	PayAtVenue bool
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking
}
