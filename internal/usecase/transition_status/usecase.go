package transition_status

import (
	"context"
	"fmt"

	"github.com/PKOOOO/cosmix-booking-service/internal/domain"
)

// allowedSources источники автоматических переходов для каждого целевого статуса
var allowedSources = map[domain.BookingStatus][]domain.BookingStatus{
	domain.StatusConfirmed: {domain.StatusPending},
	domain.StatusFailed:    {domain.StatusPending},
	domain.StatusCancelled: {domain.StatusPending, domain.StatusConfirmed},
}

// UseCase реализует пакетный перевод статусов бронирований.
// Используется платёжным consumer-ом и пакетным эндпоинтом.
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр UseCase
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет перевод статусов
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	if len(req.BookingIDs) == 0 {
		return nil, fmt.Errorf("%w: bookingIds is empty", ErrInvalidInput)
	}

	for _, id := range req.BookingIDs {
		if id <= 0 {
			return nil, fmt.Errorf("%w: bookingId must be positive, got %d", ErrInvalidInput, id)
		}
	}

	if !domain.IsValidStatus(req.NewStatus) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.NewStatus)
	}

	sources, ok := allowedSources[req.NewStatus]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotTransitionTarget, req.NewStatus)
	}

	// Читаем текущие статусы заранее ради аудита переходов;
	// сам перевод фильтрует по исходному статусу на стороне БД
	bookings, err := uc.bookingRepo.GetByIDs(ctx, req.BookingIDs)
	if err != nil {
		uc.logger.Error("TransitionStatus: get bookings failed: %v", err)
		return nil, fmt.Errorf("%w: get bookings: %v", ErrInternal, err)
	}

	for _, b := range bookings {
		if b.CanTransitionTo(req.NewStatus) {
			uc.logger.Info("TransitionStatus: booking %d: %s -> %s", b.ID, b.Status, req.NewStatus)
		} else {
			uc.logger.Info("TransitionStatus: booking %d skipped: %s -> %s not allowed", b.ID, b.Status, req.NewStatus)
		}
	}

	updated, err := uc.bookingRepo.UpdateStatusBatch(ctx, req.BookingIDs, sources, req.NewStatus)
	if err != nil {
		uc.logger.Error("TransitionStatus: batch update failed: %v", err)
		return nil, fmt.Errorf("%w: update statuses: %v", ErrInternal, err)
	}

	uc.logger.Info("TransitionStatus: %d of %d bookings moved to %s", updated, len(req.BookingIDs), req.NewStatus)

	return &Response{
		Requested: len(req.BookingIDs),
		Updated:   updated,
	}, nil
}
