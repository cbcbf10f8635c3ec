package handlers

import (
	"time"

	"github.com/PKOOOO/cosmix-booking-service/internal/domain"
)

// BookingResponse общая HTTP-модель бронирования
type BookingResponse struct {
	ID                 int64   `json:"id"`
	ResourceID         int64   `json:"resourceId"`
	ServiceID          int64   `json:"serviceId"`
	BookingDate        string  `json:"bookingDate"` // YYYY-MM-DD
	StartTime          string  `json:"startTime"`   // HH:MM
	StartDateTime      string  `json:"startDateTime"`
	Status             string  `json:"status"`
	TotalAmount        float64 `json:"totalAmount"`
	CustomerName       string  `json:"customerName"`
	CustomerPhone      string  `json:"customerPhone"`
	CustomerEmail      *string `json:"customerEmail,omitempty"`
	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// FromBooking конвертирует доменную модель в HTTP-ответ
func FromBooking(b *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:                 b.ID,
		ResourceID:         b.ResourceID,
		ServiceID:          b.ServiceID,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          string(b.StartTime),
		StartDateTime:      b.StartDateTime().Format(time.RFC3339),
		Status:             string(b.Status),
		TotalAmount:        b.TotalAmount,
		CustomerName:       b.CustomerName,
		CustomerPhone:      b.CustomerPhone,
		CustomerEmail:      b.CustomerEmail,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          b.UpdatedAt.Format(time.RFC3339),
	}

	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromBookings конвертирует список доменных моделей в HTTP-ответ
func FromBookings(bookings []*domain.Booking) []*BookingResponse {
	result := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = FromBooking(b)
	}
	return result
}
