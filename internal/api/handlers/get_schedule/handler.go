package get_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/PKOOOO/cosmix-booking-service/internal/api/handlers"
	scheduleService "github.com/PKOOOO/cosmix-booking-service/internal/service/schedule"
)

const msgInvalidResourceID = "некорректный идентификатор ресурса"

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources/{resourceId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceID, err := strconv.ParseInt(mux.Vars(r)["resourceId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	schedule, err := h.service.GetSchedule(r.Context(), resourceID)
	if err != nil {
		if errors.Is(err, scheduleService.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidResourceID)
			return
		}
		h.logger.Error("GET /resources/{id}/schedule - Failed: resource_id=%d, error=%v", resourceID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceModel(schedule))
}
