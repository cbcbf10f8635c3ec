package get_available_slots

import (
	"context"
	"time"

	"github.com/PKOOOO/cosmix-booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByResourceWithFilter получает бронирования ресурса на конкретную дату
	GetByResourceWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetHoursByResourceAndDay(ctx context.Context, resourceID int64, dayOfWeek int) (*domain.OperatingHours, error)
	GetOffering(ctx context.Context, resourceID, serviceID int64) (*domain.ServiceOffering, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
