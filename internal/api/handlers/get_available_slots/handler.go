package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/PKOOOO/cosmix-booking-service/internal/api/handlers"
	"github.com/PKOOOO/cosmix-booking-service/internal/domain"
	getAvailableSlots "github.com/PKOOOO/cosmix-booking-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidResourceID   = "некорректный идентификатор ресурса"
	msgInvalidServiceID    = "некорректный идентификатор услуги"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgOfferingNotFound    = "услуга не найдена на ресурсе"
	msgServiceNotAvailable = "услуга недоступна"
	msgInvalidRequest      = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources/{resourceId}/services/{serviceId}/available-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	resourceID, err := strconv.ParseInt(vars["resourceId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	excludePast := r.URL.Query().Get("excludePast") == "true"

	result, err := h.useCase.Execute(r.Context(), getAvailableSlots.Request{
		ResourceID:  resourceID,
		ServiceID:   serviceID,
		Date:        date,
		ExcludePast: excludePast,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrOfferingNotFound):
			h.logger.Warn("GET /available-slots - Offering not found: resource_id=%d, service_id=%d", resourceID, serviceID)
			handlers.RespondNotFound(w, msgOfferingNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceUnavailable):
			h.logger.Warn("GET /available-slots - Service unavailable: resource_id=%d, service_id=%d", resourceID, serviceID)
			handlers.RespondBadRequest(w, msgServiceNotAvailable)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /available-slots - Failed: resource_id=%d, service_id=%d, error=%v", resourceID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
