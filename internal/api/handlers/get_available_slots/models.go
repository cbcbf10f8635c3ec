package get_available_slots

import (
	"time"

	"github.com/PKOOOO/cosmix-booking-service/internal/domain"
	getAvailableSlots "github.com/PKOOOO/cosmix-booking-service/internal/usecase/get_available_slots"
)

// SlotResponse HTTP-модель доступного слота
type SlotResponse struct {
	StartTime     string `json:"startTime"` // HH:MM
	StartDateTime string `json:"startDateTime"`
}

// AvailableSlotsResponse HTTP-модель ответа со слотами
type AvailableSlotsResponse struct {
	ResourceID int64          `json:"resourceId"`
	ServiceID  int64          `json:"serviceId"`
	Date       string         `json:"date"` // YYYY-MM-DD
	Slots      []SlotResponse `json:"slots"`
	IsClosed   bool           `json:"isClosed"`
	Reason     string         `json:"reason,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime:     string(slot.StartTime),
			StartDateTime: slot.StartDateTime.Format(time.RFC3339),
		}
	}

	return &AvailableSlotsResponse{
		ResourceID: resp.ResourceID,
		ServiceID:  resp.ServiceID,
		Date:       resp.Date.Format(domain.DateFormat),
		Slots:      slots,
		IsClosed:   resp.IsClosed,
		Reason:     string(resp.Reason),
	}
}
