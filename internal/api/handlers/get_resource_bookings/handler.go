package get_resource_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/PKOOOO/cosmix-booking-service/internal/api/handlers"
	"github.com/PKOOOO/cosmix-booking-service/internal/domain"
	bookingsService "github.com/PKOOOO/cosmix-booking-service/internal/service/bookings"
	"github.com/PKOOOO/cosmix-booking-service/internal/service/bookings/models"
)

const (
	msgInvalidResourceID = "некорректный идентификатор ресурса"
	msgInvalidServiceID  = "некорректный идентификатор услуги"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStatus     = "некорректный статус"
	msgInvalidRequest    = "некорректные параметры запроса"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources/{resourceId}/bookings?from=&to=&serviceId=&status=&includeInactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceID, err := strconv.ParseInt(mux.Vars(r)["resourceId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	query := models.ResourceBookingsQuery{ResourceID: resourceID}
	params := r.URL.Query()

	if raw := params.Get("serviceId"); raw != "" {
		serviceID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidServiceID)
			return
		}
		query.ServiceID = &serviceID
	}

	if raw := params.Get("from"); raw != "" {
		from, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		query.From = &from
	}

	if raw := params.Get("to"); raw != "" {
		to, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		query.To = &to
	}

	if raw := params.Get("status"); raw != "" {
		status := domain.BookingStatus(raw)
		query.Status = &status
	}

	query.IncludeInactive = params.Get("includeInactive") == "true"

	result, err := h.service.GetByResource(r.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidStatus):
			h.logger.Warn("GET /resources/{id}/bookings - Invalid status: %q", params.Get("status"))
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookingsService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /resources/{id}/bookings - Failed: resource_id=%d, error=%v", resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromBookings(result))
}
