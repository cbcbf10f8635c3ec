package domain

import (
	"time"

	"github.com/PKOOOO/cosmix-booking-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusFailed    BookingStatus = "failed"
)

// Booking represents a reserved slot for a service at a resource (salon)
type Booking struct {
	ID         int64
	ResourceID int64
	ServiceID  int64

	BookingDate time.Time // дата без времени
	StartTime   types.TimeString
	Status      BookingStatus

	// TotalAmount фиксируется из цены услуги в момент создания
	// и не пересчитывается при изменении прайса
	TotalAmount float64

	CustomerName  string
	CustomerPhone string
	CustomerEmail *string
	Notes         *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// StartDateTime combines the booking date with its wall-clock start time
func (b *Booking) StartDateTime() time.Time {
	return b.StartTime.OnDate(b.BookingDate)
}

// CanTransitionTo reports whether the automatic (payment-driven) state
// machine allows moving from the booking's current status to target.
// Manual force-set edits are handled separately and bypass this lattice.
func (b *Booking) CanTransitionTo(target BookingStatus) bool {
	switch target {
	case StatusConfirmed:
		return b.Status == StatusPending
	case StatusFailed:
		return b.Status == StatusPending
	case StatusCancelled:
		return b.Status == StatusPending || b.Status == StatusConfirmed
	default:
		return false
	}
}

// IsValidStatus reports whether s is one of the known booking statuses
func IsValidStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusFailed:
		return true
	default:
		return false
	}
}

// BookingsFilter фильтр для выборки бронирований ресурса
type BookingsFilter struct {
	ResourceID      int64          // Обязательный параметр
	ServiceID       *int64         // Фильтр по услуге (опционально)
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые и неуспешные бронирования
}
