package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PKOOOO/cosmix-booking-service/internal/domain"
	"github.com/PKOOOO/cosmix-booking-service/internal/service/schedule/models"
)

type mockScheduleRepo struct {
	hours     []*domain.OperatingHours
	offerings []*domain.ServiceOffering

	upsertedHours     []*domain.OperatingHours
	upsertedOfferings []*domain.ServiceOffering
}

func (m *mockScheduleRepo) GetHoursByResource(_ context.Context, _ int64) ([]*domain.OperatingHours, error) {
	return m.hours, nil
}

func (m *mockScheduleRepo) UpsertHours(_ context.Context, hours *domain.OperatingHours) (*domain.OperatingHours, error) {
	m.upsertedHours = append(m.upsertedHours, hours)
	return hours, nil
}

func (m *mockScheduleRepo) GetOfferingsByResource(_ context.Context, _ int64) ([]*domain.ServiceOffering, error) {
	return m.offerings, nil
}

func (m *mockScheduleRepo) UpsertOffering(_ context.Context, offering *domain.ServiceOffering) (*domain.ServiceOffering, error) {
	m.upsertedOfferings = append(m.upsertedOfferings, offering)
	return offering, nil
}

type mockLogger struct{}

func (m *mockLogger) Info(format string, v ...interface{})  {}
func (m *mockLogger) Warn(format string, v ...interface{})  {}
func (m *mockLogger) Error(format string, v ...interface{}) {}

func TestGetSchedule(t *testing.T) {
	repo := &mockScheduleRepo{
		hours:     []*domain.OperatingHours{{DayOfWeek: 1, IsOpen: true, OpenTime: "09:00", CloseTime: "18:00"}},
		offerings: []*domain.ServiceOffering{{ServiceID: 2, DurationMinutes: 30}},
	}
	svc := NewService(repo, &mockLogger{})

	schedule, err := svc.GetSchedule(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(1), schedule.ResourceID)
	assert.Len(t, schedule.Hours, 1)
	assert.Len(t, schedule.Offerings, 1)
}

func TestUpdateSchedule_StampsResourceID(t *testing.T) {
	repo := &mockScheduleRepo{}
	svc := NewService(repo, &mockLogger{})

	_, err := svc.UpdateSchedule(context.Background(), models.UpdateScheduleRequest{
		ResourceID: 7,
		Hours: []*domain.OperatingHours{
			{DayOfWeek: 1, IsOpen: true, OpenTime: "09:00", CloseTime: "18:00"},
		},
		Offerings: []*domain.ServiceOffering{
			{ServiceID: 2, DurationMinutes: 45, Price: 1200},
		},
	})

	require.NoError(t, err)
	require.Len(t, repo.upsertedHours, 1)
	assert.Equal(t, int64(7), repo.upsertedHours[0].ResourceID)
	require.Len(t, repo.upsertedOfferings, 1)
	assert.Equal(t, int64(7), repo.upsertedOfferings[0].ResourceID)
}

func TestUpdateSchedule_ClosedDayNeedsNoTimes(t *testing.T) {
	repo := &mockScheduleRepo{}
	svc := NewService(repo, &mockLogger{})

	_, err := svc.UpdateSchedule(context.Background(), models.UpdateScheduleRequest{
		ResourceID: 7,
		Hours: []*domain.OperatingHours{
			{DayOfWeek: 0, IsOpen: false},
		},
	})

	require.NoError(t, err)
}

func TestUpdateSchedule_InvalidDayOfWeek(t *testing.T) {
	svc := NewService(&mockScheduleRepo{}, &mockLogger{})

	_, err := svc.UpdateSchedule(context.Background(), models.UpdateScheduleRequest{
		ResourceID: 7,
		Hours: []*domain.OperatingHours{
			{DayOfWeek: 7, IsOpen: true, OpenTime: "09:00", CloseTime: "18:00"},
		},
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateSchedule_CloseBeforeOpen(t *testing.T) {
	svc := NewService(&mockScheduleRepo{}, &mockLogger{})

	_, err := svc.UpdateSchedule(context.Background(), models.UpdateScheduleRequest{
		ResourceID: 7,
		Hours: []*domain.OperatingHours{
			{DayOfWeek: 1, IsOpen: true, OpenTime: "18:00", CloseTime: "09:00"},
		},
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateSchedule_InvalidAvailableDay(t *testing.T) {
	svc := NewService(&mockScheduleRepo{}, &mockLogger{})

	_, err := svc.UpdateSchedule(context.Background(), models.UpdateScheduleRequest{
		ResourceID: 7,
		Offerings: []*domain.ServiceOffering{
			{ServiceID: 2, DurationMinutes: 30, AvailableDays: []int{1, 9}},
		},
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateSchedule_EmptyRequest(t *testing.T) {
	svc := NewService(&mockScheduleRepo{}, &mockLogger{})

	_, err := svc.UpdateSchedule(context.Background(), models.UpdateScheduleRequest{ResourceID: 7})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
