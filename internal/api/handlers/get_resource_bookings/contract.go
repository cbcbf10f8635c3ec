package get_resource_bookings

import (
	"context"

	"github.com/PKOOOO/cosmix-booking-service/internal/domain"
	"github.com/PKOOOO/cosmix-booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	GetByResource(ctx context.Context, query models.ResourceBookingsQuery) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
