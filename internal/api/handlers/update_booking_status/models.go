package update_booking_status

// UpdateBookingStatusRequest HTTP request model пакетного перевода статусов
type UpdateBookingStatusRequest struct {
	BookingIDs []int64 `json:"bookingIds"`
	Status     string  `json:"status"`
}

// UpdateBookingStatusResponse HTTP response model
type UpdateBookingStatusResponse struct {
	Requested int   `json:"requested"`
	Updated   int64 `json:"updated"`
}
