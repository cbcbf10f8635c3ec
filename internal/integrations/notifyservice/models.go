package notifyservice

// BookingNotification модель уведомления о созданном бронировании
type BookingNotification struct {
	BookingID     int64   `json:"booking_id"`
	ResourceID    int64   `json:"resource_id"`
	ServiceID     int64   `json:"service_id"`
	BookingDate   string  `json:"booking_date"` // YYYY-MM-DD
	StartTime     string  `json:"start_time"`   // HH:MM
	Status        string  `json:"status"`
	TotalAmount   float64 `json:"total_amount"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	CustomerEmail *string `json:"customer_email,omitempty"`
}
