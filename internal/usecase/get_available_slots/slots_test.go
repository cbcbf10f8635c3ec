package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/PKOOOO/cosmix-booking-service/internal/domain"
	"github.com/PKOOOO/cosmix-booking-service/pkg/ptr"
	"github.com/PKOOOO/cosmix-booking-service/pkg/types"
)

func TestResolveWindow_OperatingHours(t *testing.T) {
	offering := &domain.ServiceOffering{DurationMinutes: 30}
	hours := &domain.OperatingHours{
		IsOpen:    true,
		OpenTime:  "09:00",
		CloseTime: "12:00",
		// Конфигурация ресурса не влияет на шаг сетки
		SlotDurationMinutes: ptr.Ptr(15),
	}

	window := resolveWindow(hours, offering, 1)

	assert.False(t, window.closed)
	assert.Equal(t, types.TimeString("09:00"), window.open)
	assert.Equal(t, types.TimeString("12:00"), window.close)
	assert.Equal(t, 30, window.step)
}

func TestResolveWindow_ClosedDay(t *testing.T) {
	offering := &domain.ServiceOffering{DurationMinutes: 30}
	hours := &domain.OperatingHours{
		IsOpen:    false,
		OpenTime:  "09:00",
		CloseTime: "12:00",
	}

	window := resolveWindow(hours, offering, 1)

	assert.True(t, window.closed)
	assert.Equal(t, domain.ReasonClosed, window.reason)
}

func TestResolveWindow_FallbackResourcePolicy(t *testing.T) {
	offering := &domain.ServiceOffering{DurationMinutes: 0}

	window := resolveWindow(nil, offering, 1)

	assert.False(t, window.closed)
	assert.Equal(t, types.TimeString("09:00"), window.open)
	assert.Equal(t, types.TimeString("20:00"), window.close)
	assert.Equal(t, 60, window.step)
}

func TestResolveWindow_ServiceDayPolicy(t *testing.T) {
	offering := &domain.ServiceOffering{
		DurationMinutes: 0,
		AvailableDays:   []int{1, 3, 5},
	}

	window := resolveWindow(nil, offering, 3)

	assert.False(t, window.closed)
	assert.Equal(t, types.TimeString("07:00"), window.open)
	assert.Equal(t, types.TimeString("21:00"), window.close)
	assert.Equal(t, 30, window.step)
}

func TestResolveWindow_NotAvailableOnDay(t *testing.T) {
	offering := &domain.ServiceOffering{
		DurationMinutes: 30,
		AvailableDays:   []int{1, 3, 5},
	}

	window := resolveWindow(nil, offering, 0)

	assert.True(t, window.closed)
	assert.Equal(t, domain.ReasonNotAvailableOnDay, window.reason)
}

func TestGenerateCandidates_HalfHourStep(t *testing.T) {
	window := dayWindow{open: "09:00", close: "12:00", step: 30}

	candidates := generateCandidates(window)

	expected := []types.TimeString{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}
	assert.Equal(t, expected, candidates)
}

func TestGenerateCandidates_LastSlotMayOverrunClose(t *testing.T) {
	// Начало 10:30 лежит строго до закрытия, конец (11:15) не проверяется
	window := dayWindow{open: "09:00", close: "11:00", step: 45}

	candidates := generateCandidates(window)

	expected := []types.TimeString{"09:00", "09:45", "10:30"}
	assert.Equal(t, expected, candidates)
}

func TestGenerateCandidates_EmptyWindow(t *testing.T) {
	window := dayWindow{open: "12:00", close: "12:00", step: 30}

	candidates := generateCandidates(window)

	assert.Empty(t, candidates)
}

func TestOccupiedStarts_OnlyActiveBookings(t *testing.T) {
	bookings := []*domain.Booking{
		{StartTime: "10:00", Status: domain.StatusPending},
		{StartTime: "11:00", Status: domain.StatusConfirmed},
		{StartTime: "12:00", Status: domain.StatusCancelled},
		{StartTime: "13:00", Status: domain.StatusFailed},
	}

	occupied := occupiedStarts(bookings)

	assert.Len(t, occupied, 2)
	assert.Contains(t, occupied, 10*60)
	assert.Contains(t, occupied, 11*60)
	assert.NotContains(t, occupied, 12*60)
	assert.NotContains(t, occupied, 13*60)
}

func TestFilterCandidates_RemovesOccupied(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	candidates := []types.TimeString{"09:00", "09:30", "10:00", "10:30"}
	occupied := map[int]struct{}{10 * 60: {}}

	slots := filterCandidates(candidates, occupied, date, time.Time{}, false)

	assert.Len(t, slots, 3)
	assert.Equal(t, types.TimeString("09:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("09:30"), slots[1].StartTime)
	assert.Equal(t, types.TimeString("10:30"), slots[2].StartTime)
	assert.Equal(t, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), slots[0].StartDateTime)
}

func TestFilterCandidates_ExcludePast(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	candidates := []types.TimeString{"09:00", "10:00", "11:00"}

	slots := filterCandidates(candidates, map[int]struct{}{}, date, now, true)

	// 10:00 не строго в будущем и тоже отбрасывается
	assert.Len(t, slots, 1)
	assert.Equal(t, types.TimeString("11:00"), slots[0].StartTime)
}

func TestFilterCandidates_ExcludePastKeepsFutureDates(t *testing.T) {
	date := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 2, 23, 0, 0, 0, time.UTC)
	candidates := []types.TimeString{"09:00"}

	slots := filterCandidates(candidates, map[int]struct{}{}, date, now, true)

	assert.Len(t, slots, 1)
}
