package update_booking_status

import (
	"errors"
	"net/http"

	"github.com/PKOOOO/cosmix-booking-service/internal/api/handlers"
	"github.com/PKOOOO/cosmix-booking-service/internal/domain"
	transitionStatus "github.com/PKOOOO/cosmix-booking-service/internal/usecase/transition_status"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "некорректный целевой статус"
	msgNotTransitionable  = "статус недостижим автоматическим переходом"
)

type Handler struct {
	useCase TransitionStatusUseCase
	logger  Logger
}

func NewHandler(useCase TransitionStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateBookingStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), transitionStatus.Request{
		BookingIDs: req.BookingIDs,
		NewStatus:  domain.BookingStatus(req.Status),
	})
	if err != nil {
		switch {
		case errors.Is(err, transitionStatus.ErrInvalidStatus):
			h.logger.Warn("POST /bookings/status - Invalid status: %q", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, transitionStatus.ErrNotTransitionTarget):
			h.logger.Warn("POST /bookings/status - Not a transition target: %q", req.Status)
			handlers.RespondBadRequest(w, msgNotTransitionable)

		case errors.Is(err, transitionStatus.ErrInvalidInput):
			h.logger.Warn("POST /bookings/status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings/status - Failed: status=%q, error=%v", req.Status, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/status - %d of %d bookings moved to %s", result.Updated, result.Requested, req.Status)
	handlers.RespondJSON(w, http.StatusOK, UpdateBookingStatusResponse{
		Requested: result.Requested,
		Updated:   result.Updated,
	})
}
