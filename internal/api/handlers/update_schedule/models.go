package update_schedule

import (
	"github.com/PKOOOO/cosmix-booking-service/internal/domain"
	"github.com/PKOOOO/cosmix-booking-service/internal/service/schedule/models"
	"github.com/PKOOOO/cosmix-booking-service/pkg/types"
)

// HoursUpdate HTTP-модель обновляемой строки расписания
type HoursUpdate struct {
	DayOfWeek           int    `json:"dayOfWeek"`
	IsOpen              bool   `json:"isOpen"`
	OpenTime            string `json:"openTime,omitempty"`
	CloseTime           string `json:"closeTime,omitempty"`
	SlotDurationMinutes *int   `json:"slotDurationMinutes,omitempty"`
	BreakTimeMinutes    *int   `json:"breakTimeMinutes,omitempty"`
	MaxBookingsPerSlot  *int   `json:"maxBookingsPerSlot,omitempty"`
}

// OfferingUpdate HTTP-модель обновляемой конфигурации услуги
type OfferingUpdate struct {
	ServiceID       int64   `json:"serviceId"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	IsAvailable     bool    `json:"isAvailable"`
	AvailableDays   []int   `json:"availableDays,omitempty"`
}

// UpdateScheduleRequest HTTP request model
type UpdateScheduleRequest struct {
	Hours     []HoursUpdate    `json:"hours,omitempty"`
	Offerings []OfferingUpdate `json:"offerings,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateScheduleRequest) ToServiceRequest(resourceID int64) models.UpdateScheduleRequest {
	req := models.UpdateScheduleRequest{ResourceID: resourceID}

	for _, h := range r.Hours {
		req.Hours = append(req.Hours, &domain.OperatingHours{
			DayOfWeek:           h.DayOfWeek,
			IsOpen:              h.IsOpen,
			OpenTime:            types.TimeString(h.OpenTime),
			CloseTime:           types.TimeString(h.CloseTime),
			SlotDurationMinutes: h.SlotDurationMinutes,
			BreakTimeMinutes:    h.BreakTimeMinutes,
			MaxBookingsPerSlot:  h.MaxBookingsPerSlot,
		})
	}

	for _, o := range r.Offerings {
		req.Offerings = append(req.Offerings, &domain.ServiceOffering{
			ServiceID:       o.ServiceID,
			DurationMinutes: o.DurationMinutes,
			Price:           o.Price,
			IsAvailable:     o.IsAvailable,
			AvailableDays:   o.AvailableDays,
		})
	}

	return req
}
