package domain

import (
	"time"

	"github.com/PKOOOO/cosmix-booking-service/pkg/types"
)

// OperatingHours represents the open/close configuration of a resource
// for one weekday (0=Sunday .. 6=Saturday).
type OperatingHours struct {
	ID         int64
	ResourceID int64
	DayOfWeek  int
	IsOpen     bool
	OpenTime   types.TimeString
	CloseTime  types.TimeString

	// SlotDurationMinutes is configuration owned by the resource, it is
	// deliberately NOT used as the stepping interval for slot generation
	// (the service's own duration drives the step).
	SlotDurationMinutes *int
	BreakTimeMinutes    *int
	MaxBookingsPerSlot  *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProducesSlots returns true if this weekday configuration can yield any slots
func (h *OperatingHours) ProducesSlots() bool {
	return h.IsOpen && h.CloseTime.IsAfter(h.OpenTime)
}

// ServiceOffering represents the pricing/duration/availability configuration
// of one service at one resource.
type ServiceOffering struct {
	ID         int64
	ResourceID int64
	ServiceID  int64

	// DurationMinutes is the slot-consumption length of the service and
	// the stepping interval for candidate slot enumeration.
	DurationMinutes int
	Price           float64
	IsAvailable     bool

	// AvailableDays restricts the weekdays this service may be booked on.
	// Empty means no restriction.
	AvailableDays []int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RestrictsDays returns true if the offering limits bookable weekdays
func (o *ServiceOffering) RestrictsDays() bool {
	return len(o.AvailableDays) > 0
}

// AvailableOn reports whether the service may be booked on the given weekday
func (o *ServiceOffering) AvailableOn(dayOfWeek int) bool {
	if !o.RestrictsDays() {
		return true
	}
	for _, d := range o.AvailableDays {
		if d == dayOfWeek {
			return true
		}
	}
	return false
}

// StepMinutes returns the slot stepping interval: the service's own
// duration, or the policy default when no duration is configured.
func (o *ServiceOffering) StepMinutes(policy SchedulingPolicy) int {
	if o.DurationMinutes > 0 {
		return o.DurationMinutes
	}
	return policy.DefaultDurationMinutes
}
