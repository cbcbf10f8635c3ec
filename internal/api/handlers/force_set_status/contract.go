package force_set_status

import (
	"context"

	"github.com/PKOOOO/cosmix-booking-service/internal/domain"
	"github.com/PKOOOO/cosmix-booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	ForceSetStatus(ctx context.Context, req models.ForceSetStatusRequest) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
