package create_booking

import (
	"fmt"

	"github.com/PKOOOO/cosmix-booking-service/internal/domain"
	"github.com/PKOOOO/cosmix-booking-service/pkg/types"
)

// dayWindow окно работы и шаг сетки слотов на день бронирования
type dayWindow struct {
	open  types.TimeString
	close types.TimeString
	step  int
}

// validateRequest проверяет корректность входных данных запроса
func validateRequest(req Request) error {
	if req.ResourceID <= 0 {
		return fmt.Errorf("%w: resourceId must be positive, got %d", ErrInvalidInput, req.ResourceID)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId must be positive, got %d", ErrInvalidInput, req.ServiceID)
	}

	if req.StartDateTime.IsZero() {
		return fmt.Errorf("%w: startDateTime is required", ErrInvalidInput)
	}

	if req.CustomerName == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName exceeds %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	if req.CustomerPhone == "" {
		return fmt.Errorf("%w: customerPhone is required", ErrInvalidInput)
	}
	if len(req.CustomerPhone) > domain.MaxCustomerPhoneLength {
		return fmt.Errorf("%w: customerPhone exceeds %d characters", ErrInvalidInput, domain.MaxCustomerPhoneLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// resolveBookingWindow определяет окно бронирования на день.
// Закрытый по расписанию день сразу отклоняется; отсутствие строки
// расписания закрывается fallback-политиками.
func resolveBookingWindow(hours *domain.OperatingHours, offering *domain.ServiceOffering) (dayWindow, error) {
	if hours != nil {
		if !hours.ProducesSlots() {
			return dayWindow{}, ErrClosedOnDate
		}
		return dayWindow{
			open:  hours.OpenTime,
			close: hours.CloseTime,
			step:  offering.StepMinutes(domain.ResourcePolicy),
		}, nil
	}

	if offering.RestrictsDays() {
		return dayWindow{
			open:  domain.ServiceDayPolicy.FallbackOpen,
			close: domain.ServiceDayPolicy.FallbackClose,
			step:  offering.StepMinutes(domain.ServiceDayPolicy),
		}, nil
	}

	return dayWindow{
		open:  domain.ResourcePolicy.FallbackOpen,
		close: domain.ResourcePolicy.FallbackClose,
		step:  offering.StepMinutes(domain.ResourcePolicy),
	}, nil
}

// validateSlotStart проверяет, что начало лежит внутри окна и на сетке слотов.
// Сетка отсчитывается от открытия шагом длительности услуги.
func validateSlotStart(start types.TimeString, window dayWindow) error {
	if start.IsBefore(window.open) || !start.IsBefore(window.close) {
		return fmt.Errorf("%w: %s is outside [%s, %s)", ErrOutsideOperatingHours, start, window.open, window.close)
	}

	if window.step > 0 && start.MinutesSince(window.open)%window.step != 0 {
		return fmt.Errorf("%w: %s is not on a %d-minute grid from %s", ErrInvalidSlotStart, start, window.step, window.open)
	}

	return nil
}

// findConflict ищет активное бронирование с точно совпадающим началом
func findConflict(bookings []*domain.Booking, start types.TimeString) *domain.Booking {
	for _, b := range bookings {
		if b.IsActive() && b.StartTime.Equal(start) {
			return b
		}
	}
	return nil
}
