package domain

import "github.com/PKOOOO/cosmix-booking-service/pkg/types"

// SchedulingPolicy describes the fallback behaviour of slot generation when
// no explicit operating-hours row exists for a resource/weekday.
//
// The two canonical values diverge on purpose: the generic resource path and
// the service-day path historically used different windows and default
// durations, and the divergence is kept as an explicit configuration
// surface instead of being silently unified.
type SchedulingPolicy struct {
	FallbackOpen           types.TimeString
	FallbackClose          types.TimeString
	DefaultDurationMinutes int
}

// ResourcePolicy applies when a resource has no operating-hours row for the
// requested weekday and the offering does not restrict weekdays.
var ResourcePolicy = SchedulingPolicy{
	FallbackOpen:           "09:00",
	FallbackClose:          "20:00",
	DefaultDurationMinutes: 60,
}

// ServiceDayPolicy applies in the available-days variant, when availability
// is keyed off the offering's weekday set rather than resource hours.
var ServiceDayPolicy = SchedulingPolicy{
	FallbackOpen:           "07:00",
	FallbackClose:          "21:00",
	DefaultDurationMinutes: 30,
}
