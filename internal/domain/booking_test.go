package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusFailed, true},
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusFailed, false},
		{StatusConfirmed, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusFailed, StatusConfirmed, false},
		{StatusCancelled, StatusPending, false},
	}

	for _, c := range cases {
		b := &Booking{Status: c.from}
		assert.Equal(t, c.allowed, b.CanTransitionTo(c.to), "%s -> %s", c.from, c.to)
	}
}

func TestIsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).IsActive())
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
	assert.False(t, (&Booking{Status: StatusFailed}).IsActive())
}

func TestStartDateTime(t *testing.T) {
	b := &Booking{
		BookingDate: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:30",
	}

	assert.Equal(t, time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC), b.StartDateTime())
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(StatusPending))
	assert.True(t, IsValidStatus(StatusConfirmed))
	assert.True(t, IsValidStatus(StatusCancelled))
	assert.True(t, IsValidStatus(StatusFailed))
	assert.False(t, IsValidStatus(BookingStatus("paid")))
	assert.False(t, IsValidStatus(BookingStatus("")))
}

func TestServiceOfferingAvailableOn(t *testing.T) {
	unrestricted := &ServiceOffering{}
	assert.True(t, unrestricted.AvailableOn(0))
	assert.True(t, unrestricted.AvailableOn(6))

	restricted := &ServiceOffering{AvailableDays: []int{1, 3, 5}}
	assert.True(t, restricted.AvailableOn(3))
	assert.False(t, restricted.AvailableOn(0))
}

func TestServiceOfferingStepMinutes(t *testing.T) {
	withDuration := &ServiceOffering{DurationMinutes: 45}
	assert.Equal(t, 45, withDuration.StepMinutes(ResourcePolicy))

	withoutDuration := &ServiceOffering{}
	assert.Equal(t, 60, withoutDuration.StepMinutes(ResourcePolicy))
	assert.Equal(t, 30, withoutDuration.StepMinutes(ServiceDayPolicy))
}
