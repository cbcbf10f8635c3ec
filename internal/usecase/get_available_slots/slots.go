package get_available_slots

import (
	"time"

	"github.com/PKOOOO/cosmix-booking-service/internal/domain"
	"github.com/PKOOOO/cosmix-booking-service/pkg/types"
)

// dayWindow разрешённое окно генерации слотов на конкретный день
type dayWindow struct {
	open  types.TimeString
	close types.TimeString
	step  int // шаг сетки в минутах

	closed bool
	reason domain.ClosedReason
}

// resolveWindow определяет окно и шаг сетки слотов на день.
//
// Приоритет источников:
//  1. Строка расписания ресурса на этот день недели (hours != nil).
//  2. Набор дней услуги (offering.AvailableDays) с fallback-окном ServiceDayPolicy.
//  3. Fallback-окно ResourcePolicy.
//
// Шаг сетки всегда берётся из длительности услуги, а не из
// SlotDurationMinutes расписания.
func resolveWindow(hours *domain.OperatingHours, offering *domain.ServiceOffering, dayOfWeek int) dayWindow {
	if hours != nil {
		if !hours.ProducesSlots() {
			return dayWindow{closed: true, reason: domain.ReasonClosed}
		}
		return dayWindow{
			open:  hours.OpenTime,
			close: hours.CloseTime,
			step:  offering.StepMinutes(domain.ResourcePolicy),
		}
	}

	if offering.RestrictsDays() {
		if !offering.AvailableOn(dayOfWeek) {
			return dayWindow{closed: true, reason: domain.ReasonNotAvailableOnDay}
		}
		return dayWindow{
			open:  domain.ServiceDayPolicy.FallbackOpen,
			close: domain.ServiceDayPolicy.FallbackClose,
			step:  offering.StepMinutes(domain.ServiceDayPolicy),
		}
	}

	return dayWindow{
		open:  domain.ResourcePolicy.FallbackOpen,
		close: domain.ResourcePolicy.FallbackClose,
		step:  offering.StepMinutes(domain.ResourcePolicy),
	}
}

// generateCandidates строит сетку кандидатов: начала слотов шагом step
// от открытия, пока начало строго раньше закрытия. Конец слота не
// проверяется на вместимость в окно, граничный слот остаётся в сетке.
func generateCandidates(window dayWindow) []types.TimeString {
	candidates := make([]types.TimeString, 0)

	current := window.open
	for current.IsBefore(window.close) {
		candidates = append(candidates, current)

		next, err := current.AddMinutes(window.step)
		if err != nil {
			break
		}
		current = next
	}

	return candidates
}

// occupiedStarts собирает занятые начала слотов: точные (час, минута)
// активных бронирований. Пересечения интервалов не учитываются.
func occupiedStarts(bookings []*domain.Booking) map[int]struct{} {
	occupied := make(map[int]struct{}, len(bookings))
	for _, b := range bookings {
		if b.IsActive() {
			occupied[b.StartTime.TotalMinutes()] = struct{}{}
		}
	}
	return occupied
}

// filterCandidates убирает занятые кандидаты и (опционально) прошедшие
func filterCandidates(candidates []types.TimeString, occupied map[int]struct{}, date time.Time, now time.Time, excludePast bool) []Slot {
	slots := make([]Slot, 0, len(candidates))

	for _, candidate := range candidates {
		if _, taken := occupied[candidate.TotalMinutes()]; taken {
			continue
		}

		startDateTime := candidate.OnDate(date)
		if excludePast && !startDateTime.After(now) {
			continue
		}

		slots = append(slots, Slot{
			StartTime:     candidate,
			StartDateTime: startDateTime,
		})
	}

	return slots
}
