package create_booking

import (
	"errors"
	"net/http"

	"github.com/PKOOOO/cosmix-booking-service/internal/api/handlers"
	createBooking "github.com/PKOOOO/cosmix-booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidStartDateTime  = "некорректный формат startDateTime, ожидается RFC3339"
	msgSlotTaken             = "выбранный временной слот уже занят"
	msgOfferingNotFound      = "услуга не найдена на ресурсе"
	msgServiceNotAvailable   = "услуга недоступна"
	msgClosedOnDate          = "ресурс закрыт в выбранную дату"
	msgNotAvailableOnDay     = "услуга не оказывается в этот день недели"
	msgOutsideOperatingHours = "время начала вне окна работы"
	msgInvalidSlotStart      = "время начала не попадает на сетку слотов"
	msgInvalidRequest        = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse startDateTime: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: resource_id=%d, service_id=%d, start=%s",
				req.ResourceID, req.ServiceID, req.StartDateTime)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createBooking.ErrOfferingNotFound):
			h.logger.Warn("POST /bookings - Offering not found: resource_id=%d, service_id=%d", req.ResourceID, req.ServiceID)
			handlers.RespondNotFound(w, msgOfferingNotFound)

		case errors.Is(err, createBooking.ErrServiceUnavailable):
			h.logger.Warn("POST /bookings - Service unavailable: resource_id=%d, service_id=%d", req.ResourceID, req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceNotAvailable)

		case errors.Is(err, createBooking.ErrClosedOnDate):
			h.logger.Warn("POST /bookings - Resource closed: resource_id=%d, start=%s", req.ResourceID, req.StartDateTime)
			handlers.RespondBadRequest(w, msgClosedOnDate)

		case errors.Is(err, createBooking.ErrNotAvailableOnDay):
			h.logger.Warn("POST /bookings - Not available on day: resource_id=%d, service_id=%d, start=%s",
				req.ResourceID, req.ServiceID, req.StartDateTime)
			handlers.RespondBadRequest(w, msgNotAvailableOnDay)

		case errors.Is(err, createBooking.ErrOutsideOperatingHours):
			h.logger.Warn("POST /bookings - Outside operating hours: resource_id=%d, start=%s", req.ResourceID, req.StartDateTime)
			handlers.RespondBadRequest(w, msgOutsideOperatingHours)

		case errors.Is(err, createBooking.ErrInvalidSlotStart):
			h.logger.Warn("POST /bookings - Off-grid start: resource_id=%d, start=%s", req.ResourceID, req.StartDateTime)
			handlers.RespondBadRequest(w, msgInvalidSlotStart)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: resource_id=%d, service_id=%d, error=%v",
				req.ResourceID, req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, resource_id=%d, service_id=%d",
		result.Booking.ID, req.ResourceID, req.ServiceID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromBooking(result.Booking))
}
