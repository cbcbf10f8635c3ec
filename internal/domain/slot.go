package domain

import (
	"time"

	"github.com/PKOOOO/cosmix-booking-service/pkg/types"
)

// AvailableSlot represents a candidate start time open for booking
type AvailableSlot struct {
	StartTime     types.TimeString
	StartDateTime time.Time
}

// ClosedReason explains why a day yields no slots at all
type ClosedReason string

const (
	// ReasonClosed — the resource is marked closed on that weekday
	ReasonClosed ClosedReason = "closed"

	// ReasonNotAvailableOnDay — the service is not offered on that weekday
	ReasonNotAvailableOnDay ClosedReason = "not_available_on_this_day"
)
