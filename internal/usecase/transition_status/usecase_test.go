package transition_status

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PKOOOO/cosmix-booking-service/internal/domain"
)

type mockBookingRepo struct {
	bookings []*domain.Booking
	getErr   error

	updatedIDs  []int64
	updatedFrom []domain.BookingStatus
	updatedTo   domain.BookingStatus
	updateErr   error
}

func (m *mockBookingRepo) GetByIDs(_ context.Context, _ []int64) ([]*domain.Booking, error) {
	return m.bookings, m.getErr
}

func (m *mockBookingRepo) UpdateStatusBatch(_ context.Context, ids []int64, from []domain.BookingStatus, to domain.BookingStatus) (int64, error) {
	if m.updateErr != nil {
		return 0, m.updateErr
	}
	m.updatedIDs = ids
	m.updatedFrom = from
	m.updatedTo = to

	var count int64
	for _, b := range m.bookings {
		for _, s := range from {
			if b.Status == s {
				count++
				break
			}
		}
	}
	return count, nil
}

type mockLogger struct{}

func (m *mockLogger) Info(format string, v ...interface{})  {}
func (m *mockLogger) Warn(format string, v ...interface{})  {}
func (m *mockLogger) Error(format string, v ...interface{}) {}

func TestExecute_ConfirmPending(t *testing.T) {
	repo := &mockBookingRepo{
		bookings: []*domain.Booking{
			{ID: 1, Status: domain.StatusPending},
			{ID: 2, Status: domain.StatusPending},
		},
	}
	uc := NewUseCase(repo, &mockLogger{})

	resp, err := uc.Execute(context.Background(), Request{
		BookingIDs: []int64{1, 2},
		NewStatus:  domain.StatusConfirmed,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Requested)
	assert.Equal(t, int64(2), resp.Updated)
	assert.Equal(t, []domain.BookingStatus{domain.StatusPending}, repo.updatedFrom)
	assert.Equal(t, domain.StatusConfirmed, repo.updatedTo)
}

func TestExecute_IdempotentRepeat(t *testing.T) {
	// Повторный confirm уже подтверждённых бронирований ничего не меняет
	repo := &mockBookingRepo{
		bookings: []*domain.Booking{
			{ID: 1, Status: domain.StatusConfirmed},
			{ID: 2, Status: domain.StatusConfirmed},
		},
	}
	uc := NewUseCase(repo, &mockLogger{})

	resp, err := uc.Execute(context.Background(), Request{
		BookingIDs: []int64{1, 2},
		NewStatus:  domain.StatusConfirmed,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.Updated)
}

func TestExecute_CancelAllowsBothActiveSources(t *testing.T) {
	repo := &mockBookingRepo{
		bookings: []*domain.Booking{
			{ID: 1, Status: domain.StatusPending},
			{ID: 2, Status: domain.StatusConfirmed},
			{ID: 3, Status: domain.StatusFailed},
		},
	}
	uc := NewUseCase(repo, &mockLogger{})

	resp, err := uc.Execute(context.Background(), Request{
		BookingIDs: []int64{1, 2, 3},
		NewStatus:  domain.StatusCancelled,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Updated)
	assert.ElementsMatch(t, []domain.BookingStatus{domain.StatusPending, domain.StatusConfirmed}, repo.updatedFrom)
}

func TestExecute_FailOnlyFromPending(t *testing.T) {
	repo := &mockBookingRepo{
		bookings: []*domain.Booking{
			{ID: 1, Status: domain.StatusPending},
			{ID: 2, Status: domain.StatusConfirmed},
		},
	}
	uc := NewUseCase(repo, &mockLogger{})

	resp, err := uc.Execute(context.Background(), Request{
		BookingIDs: []int64{1, 2},
		NewStatus:  domain.StatusFailed,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Updated)
}

func TestExecute_PendingIsNotATarget(t *testing.T) {
	uc := NewUseCase(&mockBookingRepo{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), Request{
		BookingIDs: []int64{1},
		NewStatus:  domain.StatusPending,
	})

	assert.ErrorIs(t, err, ErrNotTransitionTarget)
}

func TestExecute_InvalidStatus(t *testing.T) {
	uc := NewUseCase(&mockBookingRepo{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), Request{
		BookingIDs: []int64{1},
		NewStatus:  domain.BookingStatus("paid"),
	})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestExecute_EmptyIDs(t *testing.T) {
	uc := NewUseCase(&mockBookingRepo{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), Request{NewStatus: domain.StatusConfirmed})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
