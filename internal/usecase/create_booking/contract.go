package create_booking

import (
	"context"
	"time"

	"github.com/PKOOOO/cosmix-booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetByResourceWithFilter внутри транзакции блокирует дневной набор строк
	GetByResourceWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetHoursByResourceAndDay(ctx context.Context, resourceID int64, dayOfWeek int) (*domain.OperatingHours, error)
	GetOffering(ctx context.Context, resourceID, serviceID int64) (*domain.ServiceOffering, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	// DoSerializable выполняет fn в транзакции уровня SERIALIZABLE
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс клиента сервиса уведомлений.
// Вызов после коммита, ошибка не влияет на результат бронирования.
type Notifier interface {
	BookingCreated(ctx context.Context, booking *domain.Booking) error
}

// EventPublisher интерфейс публикации доменных событий в брокер
type EventPublisher interface {
	PublishJSON(ctx context.Context, routingKey string, payload interface{}) error
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
