package transition_status

import (
	"context"

	"github.com/PKOOOO/cosmix-booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Booking, error)
	// UpdateStatusBatch переводит только бронирования в допустимых исходных статусах
	UpdateStatusBatch(ctx context.Context, ids []int64, from []domain.BookingStatus, to domain.BookingStatus) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
