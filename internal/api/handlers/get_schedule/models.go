package get_schedule

import (
	"github.com/PKOOOO/cosmix-booking-service/internal/domain"
	"github.com/PKOOOO/cosmix-booking-service/internal/service/schedule/models"
)

// OperatingHoursResponse HTTP-модель строки расписания
type OperatingHoursResponse struct {
	DayOfWeek           int    `json:"dayOfWeek"`
	IsOpen              bool   `json:"isOpen"`
	OpenTime            string `json:"openTime,omitempty"`
	CloseTime           string `json:"closeTime,omitempty"`
	SlotDurationMinutes *int   `json:"slotDurationMinutes,omitempty"`
	BreakTimeMinutes    *int   `json:"breakTimeMinutes,omitempty"`
	MaxBookingsPerSlot  *int   `json:"maxBookingsPerSlot,omitempty"`
}

// OfferingResponse HTTP-модель конфигурации услуги
type OfferingResponse struct {
	ServiceID       int64   `json:"serviceId"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	IsAvailable     bool    `json:"isAvailable"`
	AvailableDays   []int   `json:"availableDays,omitempty"`
}

// ScheduleResponse HTTP-модель расписания ресурса
type ScheduleResponse struct {
	ResourceID int64                    `json:"resourceId"`
	Hours      []OperatingHoursResponse `json:"hours"`
	Offerings  []OfferingResponse       `json:"offerings"`
}

// FromServiceModel конвертирует модель сервиса в HTTP response
func FromServiceModel(schedule *models.ResourceSchedule) *ScheduleResponse {
	resp := &ScheduleResponse{
		ResourceID: schedule.ResourceID,
		Hours:      make([]OperatingHoursResponse, len(schedule.Hours)),
		Offerings:  make([]OfferingResponse, len(schedule.Offerings)),
	}

	for i, h := range schedule.Hours {
		resp.Hours[i] = fromHours(h)
	}
	for i, o := range schedule.Offerings {
		resp.Offerings[i] = OfferingResponse{
			ServiceID:       o.ServiceID,
			DurationMinutes: o.DurationMinutes,
			Price:           o.Price,
			IsAvailable:     o.IsAvailable,
			AvailableDays:   o.AvailableDays,
		}
	}

	return resp
}

func fromHours(h *domain.OperatingHours) OperatingHoursResponse {
	resp := OperatingHoursResponse{
		DayOfWeek:           h.DayOfWeek,
		IsOpen:              h.IsOpen,
		SlotDurationMinutes: h.SlotDurationMinutes,
		BreakTimeMinutes:    h.BreakTimeMinutes,
		MaxBookingsPerSlot:  h.MaxBookingsPerSlot,
	}
	if h.IsOpen {
		resp.OpenTime = string(h.OpenTime)
		resp.CloseTime = string(h.CloseTime)
	}
	return resp
}
