package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/PKOOOO/cosmix-booking-service/internal/domain"
	schedulestorage "github.com/PKOOOO/cosmix-booking-service/internal/infra/storage/schedule"
)

// UseCase реализует получение доступных слотов ресурса на дату
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр UseCase
func NewUseCase(bookingRepo BookingRepository, scheduleRepo ScheduleRepository, timeProvider TimeProvider, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет расчёт доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: invalid request: %v", err)
		return nil, err
	}

	offering, err := uc.scheduleRepo.GetOffering(ctx, req.ResourceID, req.ServiceID)
	if err != nil {
		if errors.Is(err, schedulestorage.ErrOfferingNotFound) {
			return nil, fmt.Errorf("%w: resource %d, service %d", ErrOfferingNotFound, req.ResourceID, req.ServiceID)
		}
		uc.logger.Error("GetAvailableSlots: get offering failed: %v", err)
		return nil, fmt.Errorf("%w: get offering: %v", ErrInternal, err)
	}

	if !offering.IsAvailable {
		return nil, fmt.Errorf("%w: resource %d, service %d", ErrServiceUnavailable, req.ResourceID, req.ServiceID)
	}

	dayOfWeek := int(req.Date.Weekday())

	hours, err := uc.scheduleRepo.GetHoursByResourceAndDay(ctx, req.ResourceID, dayOfWeek)
	if err != nil {
		if !errors.Is(err, schedulestorage.ErrHoursNotFound) {
			uc.logger.Error("GetAvailableSlots: get operating hours failed: %v", err)
			return nil, fmt.Errorf("%w: get operating hours: %v", ErrInternal, err)
		}
		// Строки расписания нет — окно определят fallback-политики
		hours = nil
	}

	window := resolveWindow(hours, offering, dayOfWeek)

	response := &Response{
		Date:       req.Date,
		ResourceID: req.ResourceID,
		ServiceID:  req.ServiceID,
		Slots:      make([]Slot, 0),
	}

	if window.closed {
		response.IsClosed = true
		response.Reason = window.reason
		return response, nil
	}

	candidates := generateCandidates(window)

	bookings, err := uc.bookingRepo.GetByResourceWithFilter(ctx, domain.BookingsFilter{
		ResourceID: req.ResourceID,
		ServiceID:  &req.ServiceID,
		StartDate:  &req.Date,
		EndDate:    &req.Date,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: get bookings failed: %v", err)
		return nil, fmt.Errorf("%w: get bookings: %v", ErrInternal, err)
	}

	response.Slots = filterCandidates(candidates, occupiedStarts(bookings), req.Date, uc.timeProvider.Now(), req.ExcludePast)

	uc.logger.Info("GetAvailableSlots: resource %d, service %d, date %s: %d slots",
		req.ResourceID, req.ServiceID, req.Date.Format(domain.DateFormat), len(response.Slots))

	return response, nil
}
