package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/PKOOOO/cosmix-booking-service/internal/domain"
	bookingstorage "github.com/PKOOOO/cosmix-booking-service/internal/infra/storage/booking"
	"github.com/PKOOOO/cosmix-booking-service/internal/service/bookings/models"
)

// Service сервис управления жизненным циклом бронирований
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: bookingId must be positive, got %d", ErrInvalidInput, id)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingstorage.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrBookingNotFound, id)
		}
		s.logger.Error("GetByID: get booking %d failed: %v", id, err)
		return nil, fmt.Errorf("%w: get booking: %v", ErrInternal, err)
	}

	return booking, nil
}

// GetByResource получает бронирования ресурса с фильтрацией
func (s *Service) GetByResource(ctx context.Context, query models.ResourceBookingsQuery) ([]*domain.Booking, error) {
	if query.ResourceID <= 0 {
		return nil, fmt.Errorf("%w: resourceId must be positive, got %d", ErrInvalidInput, query.ResourceID)
	}

	if query.Status != nil && !domain.IsValidStatus(*query.Status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *query.Status)
	}

	bookings, err := s.bookingRepo.GetByResourceWithFilter(ctx, domain.BookingsFilter{
		ResourceID:      query.ResourceID,
		ServiceID:       query.ServiceID,
		StartDate:       query.From,
		EndDate:         query.To,
		Status:          query.Status,
		IncludeInactive: query.IncludeInactive,
	})
	if err != nil {
		s.logger.Error("GetByResource: get bookings for resource %d failed: %v", query.ResourceID, err)
		return nil, fmt.Errorf("%w: get bookings: %v", ErrInternal, err)
	}

	return bookings, nil
}

// Cancel отменяет бронирование с указанием причины.
// Отменять можно только активные бронирования.
func (s *Service) Cancel(ctx context.Context, id int64, reason string) (*domain.Booking, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: bookingId must be positive, got %d", ErrInvalidInput, id)
	}

	if len(reason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	booking, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !booking.CanBeCancelled() {
		return nil, fmt.Errorf("%w: booking %d has status %s", ErrCannotCancel, id, booking.Status)
	}

	if err := s.bookingRepo.Cancel(ctx, id, reason); err != nil {
		s.logger.Error("Cancel: cancel booking %d failed: %v", id, err)
		return nil, fmt.Errorf("%w: cancel booking: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking %d cancelled: %s -> %s, reason %q", id, booking.Status, domain.StatusCancelled, reason)

	return s.GetByID(ctx, id)
}

// ForceSetStatus принудительно выставляет статус в обход автомата переходов.
// Привилегированная операция владельца ресурса; каждая правка логируется
// с предыдущим и новым статусом и идентификатором исполнителя.
func (s *Service) ForceSetStatus(ctx context.Context, req models.ForceSetStatusRequest) (*domain.Booking, error) {
	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingId must be positive, got %d", ErrInvalidInput, req.BookingID)
	}

	if !domain.IsValidStatus(req.NewStatus) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.NewStatus)
	}

	booking, err := s.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	if err := s.bookingRepo.UpdateStatus(ctx, req.BookingID, req.NewStatus); err != nil {
		if errors.Is(err, bookingstorage.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrBookingNotFound, req.BookingID)
		}
		s.logger.Error("ForceSetStatus: update booking %d failed: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: update status: %v", ErrInternal, err)
	}

	s.logger.Info("ForceSetStatus: booking %d: %s -> %s by %q", req.BookingID, booking.Status, req.NewStatus, req.Actor)

	return s.GetByID(ctx, req.BookingID)
}

// Delete физически удаляет бронирование без сохранения истории
func (s *Service) Delete(ctx context.Context, id int64, actor string) error {
	if id <= 0 {
		return fmt.Errorf("%w: bookingId must be positive, got %d", ErrInvalidInput, id)
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingstorage.ErrBookingNotFound) {
			return fmt.Errorf("%w: id %d", ErrBookingNotFound, id)
		}
		s.logger.Error("Delete: delete booking %d failed: %v", id, err)
		return fmt.Errorf("%w: delete booking: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: booking %d deleted by %q", id, actor)

	return nil
}
