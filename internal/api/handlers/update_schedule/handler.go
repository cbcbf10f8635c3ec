package update_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/PKOOOO/cosmix-booking-service/internal/api/handlers"
	getSchedule "github.com/PKOOOO/cosmix-booking-service/internal/api/handlers/get_schedule"
	"github.com/PKOOOO/cosmix-booking-service/internal/api/middleware"
	scheduleService "github.com/PKOOOO/cosmix-booking-service/internal/service/schedule"
)

const (
	msgInvalidResourceID  = "некорректный идентификатор ресурса"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSchedule    = "некорректные данные расписания"
)

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

// Handle PUT /api/v1/resources/{resourceId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceID, err := strconv.ParseInt(mux.Vars(r)["resourceId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /resources/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	schedule, err := h.service.UpdateSchedule(r.Context(), req.ToServiceRequest(resourceID))
	if err != nil {
		if errors.Is(err, scheduleService.ErrInvalidInput) {
			h.logger.Warn("PUT /resources/{id}/schedule - Invalid schedule: resource_id=%d, error=%v", resourceID, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)
			return
		}
		h.logger.Error("PUT /resources/{id}/schedule - Failed: resource_id=%d, error=%v", resourceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /resources/{id}/schedule - Schedule updated: resource_id=%d, user=%s",
		resourceID, middleware.UserID(r))
	handlers.RespondJSON(w, http.StatusOK, getSchedule.FromServiceModel(schedule))
}
