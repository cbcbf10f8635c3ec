package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PKOOOO/cosmix-booking-service/internal/domain"
	bookingstorage "github.com/PKOOOO/cosmix-booking-service/internal/infra/storage/booking"
	schedulestorage "github.com/PKOOOO/cosmix-booking-service/internal/infra/storage/schedule"
	"github.com/PKOOOO/cosmix-booking-service/pkg/types"
)

type mockBookingRepo struct {
	bookings  []*domain.Booking
	createErr error
	created   *domain.Booking
}

func (m *mockBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	booking.ID = 42
	m.created = booking
	return booking, nil
}

func (m *mockBookingRepo) GetByResourceWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return m.bookings, nil
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

type mockTxManager struct{}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockNotifier struct {
	notified *domain.Booking
	err      error
}

func (m *mockNotifier) BookingCreated(_ context.Context, booking *domain.Booking) error {
	m.notified = booking
	return m.err
}

type mockEventPublisher struct {
	routingKey string
	payload    interface{}
	err        error
}

func (m *mockEventPublisher) PublishJSON(_ context.Context, routingKey string, payload interface{}) error {
	m.routingKey = routingKey
	m.payload = payload
	return m.err
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

// Понедельник 2 июня 2025, 10:00
var testStart = time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

func openHours() *domain.OperatingHours {
	return &domain.OperatingHours{
		IsOpen:    true,
		OpenTime:  "09:00",
		CloseTime: "18:00",
	}
}

func activeOffering() *domain.ServiceOffering {
	return &domain.ServiceOffering{
		DurationMinutes: 30,
		Price:           1500,
		IsAvailable:     true,
	}
}

func validRequest() Request {
	return Request{
		ResourceID:    1,
		ServiceID:     2,
		StartDateTime: testStart,
		CustomerName:  "Анна Иванова",
		CustomerPhone: "+79990001122",
	}
}

func newTestUseCase(bookingRepo *mockBookingRepo, scheduleRepo *mockScheduleRepo, notifier *mockNotifier, events *mockEventPublisher) *UseCase {
	return NewUseCase(
		bookingRepo,
		scheduleRepo,
		&mockTxManager{},
		notifier,
		events,
		&mockTimeProvider{now: testStart},
		&mockLogger{},
	)
}

func TestExecute_Success(t *testing.T) {
	bookingRepo := &mockBookingRepo{}
	scheduleRepo := &mockScheduleRepo{hours: openHours(), offering: activeOffering()}
	notifier := &mockNotifier{}
	events := &mockEventPublisher{}
	uc := newTestUseCase(bookingRepo, scheduleRepo, notifier, events)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, resp.Booking)
	assert.Equal(t, int64(42), resp.Booking.ID)
	assert.Equal(t, domain.StatusPending, resp.Booking.Status)
	assert.Equal(t, types.TimeString("10:00"), resp.Booking.StartTime)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), resp.Booking.BookingDate)
	// Цена фиксируется из конфигурации услуги
	assert.Equal(t, 1500.0, resp.Booking.TotalAmount)

	require.NotNil(t, notifier.notified)
	assert.Equal(t, int64(42), notifier.notified.ID)
	assert.Equal(t, "booking.created", events.routingKey)
}

func TestExecute_PayAtVenueConfirmsImmediately(t *testing.T) {
	bookingRepo := &mockBookingRepo{}
	scheduleRepo := &mockScheduleRepo{hours: openHours(), offering: activeOffering()}
	uc := newTestUseCase(bookingRepo, scheduleRepo, &mockNotifier{}, &mockEventPublisher{})

	req := validRequest()
	req.PayAtVenue = true

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, resp.Booking.Status)
}

func TestExecute_OfferingNotFound(t *testing.T) {
	scheduleRepo := &mockScheduleRepo{offeringErr: schedulestorage.ErrOfferingNotFound}
	uc := newTestUseCase(&mockBookingRepo{}, scheduleRepo, nil, nil)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrOfferingNotFound)
}

func TestExecute_ServiceUnavailable(t *testing.T) {
	offering := activeOffering()
	offering.IsAvailable = false
	scheduleRepo := &mockScheduleRepo{hours: openHours(), offering: offering}
	uc := newTestUseCase(&mockBookingRepo{}, scheduleRepo, nil, nil)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestExecute_ClosedOnDate(t *testing.T) {
	hours := openHours()
	hours.IsOpen = false
	scheduleRepo := &mockScheduleRepo{hours: hours, offering: activeOffering()}
	uc := newTestUseCase(&mockBookingRepo{}, scheduleRepo, nil, nil)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrClosedOnDate)
}

func TestExecute_OutsideOperatingHours(t *testing.T) {
	scheduleRepo := &mockScheduleRepo{hours: openHours(), offering: activeOffering()}
	uc := newTestUseCase(&mockBookingRepo{}, scheduleRepo, nil, nil)

	req := validRequest()
	req.StartDateTime = time.Date(2025, 6, 2, 20, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrOutsideOperatingHours)
}

func TestExecute_CloseTimeIsNotBookable(t *testing.T) {
	scheduleRepo := &mockScheduleRepo{hours: openHours(), offering: activeOffering()}
	uc := newTestUseCase(&mockBookingRepo{}, scheduleRepo, nil, nil)

	req := validRequest()
	req.StartDateTime = time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrOutsideOperatingHours)
}

func TestExecute_OffGridStart(t *testing.T) {
	scheduleRepo := &mockScheduleRepo{hours: openHours(), offering: activeOffering()}
	uc := newTestUseCase(&mockBookingRepo{}, scheduleRepo, nil, nil)

	// Сетка от 09:00 шагом 30 минут, 10:15 мимо сетки
	req := validRequest()
	req.StartDateTime = time.Date(2025, 6, 2, 10, 15, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidSlotStart)
}

func TestExecute_NotAvailableOnDay(t *testing.T) {
	offering := activeOffering()
	offering.AvailableDays = []int{3, 5} // среда и пятница
	scheduleRepo := &mockScheduleRepo{hours: openHours(), offering: offering}
	uc := newTestUseCase(&mockBookingRepo{}, scheduleRepo, nil, nil)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrNotAvailableOnDay)
}

func TestExecute_SlotConflict(t *testing.T) {
	bookingRepo := &mockBookingRepo{
		bookings: []*domain.Booking{
			{ID: 7, StartTime: "10:00", Status: domain.StatusPending},
		},
	}
	scheduleRepo := &mockScheduleRepo{hours: openHours(), offering: activeOffering()}
	uc := newTestUseCase(bookingRepo, scheduleRepo, nil, nil)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_InactiveBookingDoesNotConflict(t *testing.T) {
	bookingRepo := &mockBookingRepo{
		bookings: []*domain.Booking{
			{ID: 7, StartTime: "10:00", Status: domain.StatusCancelled},
		},
	}
	scheduleRepo := &mockScheduleRepo{hours: openHours(), offering: activeOffering()}
	uc := newTestUseCase(bookingRepo, scheduleRepo, &mockNotifier{}, &mockEventPublisher{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.Booking.ID)
}

func TestExecute_UniqueIndexRaceMapsToSlotTaken(t *testing.T) {
	bookingRepo := &mockBookingRepo{createErr: bookingstorage.ErrSlotTaken}
	scheduleRepo := &mockScheduleRepo{hours: openHours(), offering: activeOffering()}
	uc := newTestUseCase(bookingRepo, scheduleRepo, nil, nil)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_SideEffectFailuresDoNotFailBooking(t *testing.T) {
	bookingRepo := &mockBookingRepo{}
	scheduleRepo := &mockScheduleRepo{hours: openHours(), offering: activeOffering()}
	notifier := &mockNotifier{err: assert.AnError}
	events := &mockEventPublisher{err: assert.AnError}
	uc := newTestUseCase(bookingRepo, scheduleRepo, notifier, events)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotNil(t, resp.Booking)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{}, &mockScheduleRepo{}, nil, nil)

	req := validRequest()
	req.CustomerName = ""

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}
