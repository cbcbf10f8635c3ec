package create_booking

import (
	"time"

	createBooking "github.com/PKOOOO/cosmix-booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ResourceID    int64   `json:"resourceId"`
	ServiceID     int64   `json:"serviceId"`
	StartDateTime string  `json:"startDateTime"` // RFC3339
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	PayAtVenue    bool    `json:"payAtVenue,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (createBooking.Request, error) {
	startDateTime, err := time.Parse(time.RFC3339, r.StartDateTime)
	if err != nil {
		return createBooking.Request{}, err
	}

	return createBooking.Request{
		ResourceID:    r.ResourceID,
		ServiceID:     r.ServiceID,
		StartDateTime: startDateTime,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		CustomerEmail: r.CustomerEmail,
		Notes:         r.Notes,
		PayAtVenue:    r.PayAtVenue,
	}, nil
}
