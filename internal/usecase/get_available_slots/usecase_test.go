package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PKOOOO/cosmix-booking-service/internal/domain"
	schedulestorage "github.com/PKOOOO/cosmix-booking-service/internal/infra/storage/schedule"
	"github.com/PKOOOO/cosmix-booking-service/pkg/types"
)

type mockBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (m *mockBookingRepo) GetByResourceWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return m.bookings, m.err
}

type mockScheduleRepo struct {
	hours       *domain.OperatingHours
	hoursErr    error
	offering    *domain.ServiceOffering
	offeringErr error
}

func (m *mockScheduleRepo) GetHoursByResourceAndDay(_ context.Context, _ int64, _ int) (*domain.OperatingHours, error) {
	if m.hoursErr != nil {
		return nil, m.hoursErr
	}
	return m.hours, nil
}

func (m *mockScheduleRepo) GetOffering(_ context.Context, _, _ int64) (*domain.ServiceOffering, error) {
	if m.offeringErr != nil {
		return nil, m.offeringErr
	}
	return m.offering, nil
}

type mockTimeProvider struct {
	now time.Time
}

func (m *mockTimeProvider) Now() time.Time {
	return m.now
}

type mockLogger struct{}

func (m *mockLogger) Info(format string, v ...interface{})  {}
func (m *mockLogger) Warn(format string, v ...interface{})  {}
func (m *mockLogger) Error(format string, v ...interface{}) {}

// Понедельник 2 июня 2025
var testDate = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func newTestUseCase(bookingRepo *mockBookingRepo, scheduleRepo *mockScheduleRepo, now time.Time) *UseCase {
	return NewUseCase(bookingRepo, scheduleRepo, &mockTimeProvider{now: now}, &mockLogger{})
}

func TestExecute_MorningWindow(t *testing.T) {
	scheduleRepo := &mockScheduleRepo{
		hours: &domain.OperatingHours{
			IsOpen:    true,
			OpenTime:  "09:00",
			CloseTime: "12:00",
		},
		offering: &domain.ServiceOffering{
			DurationMinutes: 30,
			IsAvailable:     true,
		},
	}
	uc := newTestUseCase(&mockBookingRepo{}, scheduleRepo, time.Time{})

	resp, err := uc.Execute(context.Background(), Request{ResourceID: 1, ServiceID: 2, Date: testDate})

	require.NoError(t, err)
	assert.False(t, resp.IsClosed)
	require.Len(t, resp.Slots, 6)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("11:30"), resp.Slots[5].StartTime)
}

func TestExecute_OccupiedSlotExcluded(t *testing.T) {
	scheduleRepo := &mockScheduleRepo{
		hours: &domain.OperatingHours{
			IsOpen:    true,
			OpenTime:  "09:00",
			CloseTime: "12:00",
		},
		offering: &domain.ServiceOffering{
			DurationMinutes: 30,
			IsAvailable:     true,
		},
	}
	bookingRepo := &mockBookingRepo{
		bookings: []*domain.Booking{
			{StartTime: "10:00", Status: domain.StatusConfirmed, BookingDate: testDate},
		},
	}
	uc := newTestUseCase(bookingRepo, scheduleRepo, time.Time{})

	resp, err := uc.Execute(context.Background(), Request{ResourceID: 1, ServiceID: 2, Date: testDate})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 5)
	for _, slot := range resp.Slots {
		assert.NotEqual(t, types.TimeString("10:00"), slot.StartTime)
	}
}

func TestExecute_CancelledBookingDoesNotOccupy(t *testing.T) {
	scheduleRepo := &mockScheduleRepo{
		hours: &domain.OperatingHours{
			IsOpen:    true,
			OpenTime:  "09:00",
			CloseTime: "12:00",
		},
		offering: &domain.ServiceOffering{
			DurationMinutes: 30,
			IsAvailable:     true,
		},
	}
	bookingRepo := &mockBookingRepo{
		bookings: []*domain.Booking{
			{StartTime: "10:00", Status: domain.StatusCancelled, BookingDate: testDate},
		},
	}
	uc := newTestUseCase(bookingRepo, scheduleRepo, time.Time{})

	resp, err := uc.Execute(context.Background(), Request{ResourceID: 1, ServiceID: 2, Date: testDate})

	require.NoError(t, err)
	assert.Len(t, resp.Slots, 6)
}

func TestExecute_ClosedDay(t *testing.T) {
	scheduleRepo := &mockScheduleRepo{
		hours: &domain.OperatingHours{
			IsOpen:    false,
			OpenTime:  "09:00",
			CloseTime: "12:00",
		},
		offering: &domain.ServiceOffering{
			DurationMinutes: 30,
			IsAvailable:     true,
		},
	}
	uc := newTestUseCase(&mockBookingRepo{}, scheduleRepo, time.Time{})

	resp, err := uc.Execute(context.Background(), Request{ResourceID: 1, ServiceID: 2, Date: testDate})

	require.NoError(t, err)
	assert.True(t, resp.IsClosed)
	assert.Equal(t, domain.ReasonClosed, resp.Reason)
	assert.Empty(t, resp.Slots)
}

func TestExecute_NoHoursFallsBackToResourcePolicy(t *testing.T) {
	scheduleRepo := &mockScheduleRepo{
		hoursErr: schedulestorage.ErrHoursNotFound,
		offering: &domain.ServiceOffering{
			DurationMinutes: 60,
			IsAvailable:     true,
		},
	}
	uc := newTestUseCase(&mockBookingRepo{}, scheduleRepo, time.Time{})

	resp, err := uc.Execute(context.Background(), Request{ResourceID: 1, ServiceID: 2, Date: testDate})

	require.NoError(t, err)
	// 09:00..19:00 с шагом 60 минут
	require.Len(t, resp.Slots, 11)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("19:00"), resp.Slots[10].StartTime)
}

func TestExecute_ServiceDayVariant(t *testing.T) {
	scheduleRepo := &mockScheduleRepo{
		hoursErr: schedulestorage.ErrHoursNotFound,
		offering: &domain.ServiceOffering{
			DurationMinutes: 0,
			IsAvailable:     true,
			AvailableDays:   []int{1}, // только понедельник
		},
	}
	uc := newTestUseCase(&mockBookingRepo{}, scheduleRepo, time.Time{})

	resp, err := uc.Execute(context.Background(), Request{ResourceID: 1, ServiceID: 2, Date: testDate})

	require.NoError(t, err)
	// 07:00..20:30 с шагом 30 минут
	require.Len(t, resp.Slots, 28)
	assert.Equal(t, types.TimeString("07:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("20:30"), resp.Slots[27].StartTime)
}

func TestExecute_NotAvailableOnDay(t *testing.T) {
	scheduleRepo := &mockScheduleRepo{
		hoursErr: schedulestorage.ErrHoursNotFound,
		offering: &domain.ServiceOffering{
			DurationMinutes: 30,
			IsAvailable:     true,
			AvailableDays:   []int{3, 5},
		},
	}
	uc := newTestUseCase(&mockBookingRepo{}, scheduleRepo, time.Time{})

	resp, err := uc.Execute(context.Background(), Request{ResourceID: 1, ServiceID: 2, Date: testDate})

	require.NoError(t, err)
	assert.True(t, resp.IsClosed)
	assert.Equal(t, domain.ReasonNotAvailableOnDay, resp.Reason)
}

func TestExecute_ExcludePast(t *testing.T) {
	scheduleRepo := &mockScheduleRepo{
		hours: &domain.OperatingHours{
			IsOpen:    true,
			OpenTime:  "09:00",
			CloseTime: "12:00",
		},
		offering: &domain.ServiceOffering{
			DurationMinutes: 30,
			IsAvailable:     true,
		},
	}
	now := time.Date(2025, 6, 2, 10, 15, 0, 0, time.UTC)
	uc := newTestUseCase(&mockBookingRepo{}, scheduleRepo, now)

	resp, err := uc.Execute(context.Background(), Request{ResourceID: 1, ServiceID: 2, Date: testDate, ExcludePast: true})

	require.NoError(t, err)
	// Остаются 10:30, 11:00, 11:30
	require.Len(t, resp.Slots, 3)
	assert.Equal(t, types.TimeString("10:30"), resp.Slots[0].StartTime)
}

func TestExecute_OfferingNotFound(t *testing.T) {
	scheduleRepo := &mockScheduleRepo{
		offeringErr: schedulestorage.ErrOfferingNotFound,
	}
	uc := newTestUseCase(&mockBookingRepo{}, scheduleRepo, time.Time{})

	_, err := uc.Execute(context.Background(), Request{ResourceID: 1, ServiceID: 2, Date: testDate})

	assert.ErrorIs(t, err, ErrOfferingNotFound)
}

func TestExecute_ServiceUnavailable(t *testing.T) {
	scheduleRepo := &mockScheduleRepo{
		offering: &domain.ServiceOffering{
			DurationMinutes: 30,
			IsAvailable:     false,
		},
	}
	uc := newTestUseCase(&mockBookingRepo{}, scheduleRepo, time.Time{})

	_, err := uc.Execute(context.Background(), Request{ResourceID: 1, ServiceID: 2, Date: testDate})

	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{}, &mockScheduleRepo{}, time.Time{})

	_, err := uc.Execute(context.Background(), Request{ResourceID: 0, ServiceID: 2, Date: testDate})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
