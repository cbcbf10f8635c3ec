package models

import (
	"time"

	"github.com/PKOOOO/cosmix-booking-service/internal/domain"
)

// ResourceBookingsQuery параметры выборки бронирований ресурса
type ResourceBookingsQuery struct {
	ResourceID      int64
	ServiceID       *int64
	From            *time.Time
	To              *time.Time
	Status          *domain.BookingStatus
	IncludeInactive bool
}

// ForceSetStatusRequest привилегированная ручная правка статуса.
// Actor — идентификатор пользователя из заголовка авторизации,
// пишется в аудиторский лог.
type ForceSetStatusRequest struct {
	BookingID int64
	NewStatus domain.BookingStatus
	Actor     string
}
