package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinDayOfWeek = 0 // Sunday
	MaxDayOfWeek = 6 // Saturday

	MinDurationMinutes = 5
	MaxDurationMinutes = 480 // 8 часов

	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxCustomerNameLength       = 200
	MaxCustomerPhoneLength      = 32
)

// ActiveStatuses список статусов, при которых бронирование занимает слот.
// Используется при фильтрации для подсчёта доступных слотов и в проверке конфликтов.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses список статусов, не занимающих слот.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusFailed,
}
