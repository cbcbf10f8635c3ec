package schedule

import (
	"context"

	"github.com/PKOOOO/cosmix-booking-service/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetHoursByResource(ctx context.Context, resourceID int64) ([]*domain.OperatingHours, error)
	UpsertHours(ctx context.Context, hours *domain.OperatingHours) (*domain.OperatingHours, error)
	GetOfferingsByResource(ctx context.Context, resourceID int64) ([]*domain.ServiceOffering, error)
	UpsertOffering(ctx context.Context, offering *domain.ServiceOffering) (*domain.ServiceOffering, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
