package cancel_booking

import (
	"context"

	"github.com/PKOOOO/cosmix-booking-service/internal/domain"
)

type BookingsService interface {
	Cancel(ctx context.Context, id int64, reason string) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
