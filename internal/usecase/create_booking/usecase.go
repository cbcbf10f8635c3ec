package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/PKOOOO/cosmix-booking-service/internal/domain"
	bookingstorage "github.com/PKOOOO/cosmix-booking-service/internal/infra/storage/booking"
	schedulestorage "github.com/PKOOOO/cosmix-booking-service/internal/infra/storage/schedule"
	"github.com/PKOOOO/cosmix-booking-service/pkg/types"
)

// routingKeyBookingCreated ключ маршрутизации события создания бронирования
const routingKeyBookingCreated = "booking.created"

// bookingCreatedEvent событие для брокера о создании бронирования
type bookingCreatedEvent struct {
	Event       string    `json:"event"`
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	BookingID   int64     `json:"booking_id"`
	ResourceID  int64     `json:"resource_id"`
	ServiceID   int64     `json:"service_id"`
	BookingDate string    `json:"booking_date"`
	StartTime   string    `json:"start_time"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
}

// UseCase реализует создание бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	notifier     Notifier
	events       EventPublisher
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр UseCase.
// notifier и events могут быть nil, если соответствующие интеграции выключены.
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	notifier Notifier,
	events EventPublisher,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		notifier:     notifier,
		events:       events,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет создание бронирования.
//
// Вся проверочная цепочка и вставка выполняются в одной SERIALIZABLE
// транзакции: выборка дневных бронирований блокирует строки (FOR UPDATE),
// а частичный уникальный индекс в БД закрывает гонку двух одновременных
// вставок на один слот.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: invalid request: %v", err)
		return nil, err
	}

	bookingDate := truncateToDate(req.StartDateTime)
	startTime := types.NewTimeString(req.StartDateTime)
	dayOfWeek := int(bookingDate.Weekday())

	var created *domain.Booking

	txErr := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		offering, err := uc.scheduleRepo.GetOffering(ctx, req.ResourceID, req.ServiceID)
		if err != nil {
			if errors.Is(err, schedulestorage.ErrOfferingNotFound) {
				return fmt.Errorf("%w: resource %d, service %d", ErrOfferingNotFound, req.ResourceID, req.ServiceID)
			}
			return fmt.Errorf("%w: get offering: %v", ErrInternal, err)
		}

		if !offering.IsAvailable {
			return fmt.Errorf("%w: resource %d, service %d", ErrServiceUnavailable, req.ResourceID, req.ServiceID)
		}

		hours, err := uc.scheduleRepo.GetHoursByResourceAndDay(ctx, req.ResourceID, dayOfWeek)
		if err != nil {
			if !errors.Is(err, schedulestorage.ErrHoursNotFound) {
				return fmt.Errorf("%w: get operating hours: %v", ErrInternal, err)
			}
			hours = nil
		}

		window, err := resolveBookingWindow(hours, offering)
		if err != nil {
			return err
		}

		if err := validateSlotStart(startTime, window); err != nil {
			return err
		}

		if !offering.AvailableOn(dayOfWeek) {
			return fmt.Errorf("%w: day %d", ErrNotAvailableOnDay, dayOfWeek)
		}

		dayBookings, err := uc.bookingRepo.GetByResourceWithFilter(ctx, domain.BookingsFilter{
			ResourceID: req.ResourceID,
			ServiceID:  &req.ServiceID,
			StartDate:  &bookingDate,
			EndDate:    &bookingDate,
		})
		if err != nil {
			return fmt.Errorf("%w: get day bookings: %v", ErrInternal, err)
		}

		if conflict := findConflict(dayBookings, startTime); conflict != nil {
			return fmt.Errorf("%w: booking %d already starts at %s", ErrSlotTaken, conflict.ID, startTime)
		}

		status := domain.StatusPending
		if req.PayAtVenue {
			status = domain.StatusConfirmed
		}

		booking := &domain.Booking{
			ResourceID:    req.ResourceID,
			ServiceID:     req.ServiceID,
			BookingDate:   bookingDate,
			StartTime:     startTime,
			Status:        status,
			TotalAmount:   offering.Price, // снимок цены на момент создания
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			CustomerEmail: req.CustomerEmail,
			Notes:         req.Notes,
		}

		created, err = uc.bookingRepo.Create(ctx, booking)
		if err != nil {
			if errors.Is(err, bookingstorage.ErrSlotTaken) {
				return fmt.Errorf("%w: slot %s", ErrSlotTaken, startTime)
			}
			return fmt.Errorf("%w: create booking: %v", ErrInternal, err)
		}

		return nil
	})

	if txErr != nil {
		if !isBusinessError(txErr) {
			uc.logger.Error("CreateBooking: transaction failed: %v", txErr)
			return nil, fmt.Errorf("%w: %v", ErrInternal, txErr)
		}
		return nil, txErr
	}

	uc.logger.Info("CreateBooking: booking %d created: resource %d, service %d, %s %s, status %s",
		created.ID, created.ResourceID, created.ServiceID,
		created.BookingDate.Format(domain.DateFormat), created.StartTime, created.Status)

	uc.fireSideEffects(ctx, created)

	return &Response{Booking: created}, nil
}

// fireSideEffects отправляет уведомление и событие после коммита.
// Ошибки побочных эффектов логируются и не влияют на результат.
func (uc *UseCase) fireSideEffects(ctx context.Context, booking *domain.Booking) {
	if uc.notifier != nil {
		if err := uc.notifier.BookingCreated(ctx, booking); err != nil {
			uc.logger.Warn("CreateBooking: notify failed for booking %d: %v", booking.ID, err)
		}
	}

	if uc.events != nil {
		event := bookingCreatedEvent{
			Event:       routingKeyBookingCreated,
			EventID:     uuid.NewString(),
			OccurredAt:  uc.timeProvider.Now(),
			BookingID:   booking.ID,
			ResourceID:  booking.ResourceID,
			ServiceID:   booking.ServiceID,
			BookingDate: booking.BookingDate.Format(domain.DateFormat),
			StartTime:   string(booking.StartTime),
			Status:      string(booking.Status),
			TotalAmount: booking.TotalAmount,
		}
		if err := uc.events.PublishJSON(ctx, routingKeyBookingCreated, event); err != nil {
			uc.logger.Warn("CreateBooking: publish event failed for booking %d: %v", booking.ID, err)
		}
	}
}

// isBusinessError отличает бизнес-ошибки от инфраструктурных
func isBusinessError(err error) bool {
	return errors.Is(err, ErrOfferingNotFound) ||
		errors.Is(err, ErrServiceUnavailable) ||
		errors.Is(err, ErrClosedOnDate) ||
		errors.Is(err, ErrNotAvailableOnDay) ||
		errors.Is(err, ErrOutsideOperatingHours) ||
		errors.Is(err, ErrInvalidSlotStart) ||
		errors.Is(err, ErrSlotTaken) ||
		errors.Is(err, ErrInvalidInput)
}

// truncateToDate отбрасывает время, сохраняя дату и локацию
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
