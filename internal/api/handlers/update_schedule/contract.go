package update_schedule

import (
	"context"

	"github.com/PKOOOO/cosmix-booking-service/internal/service/schedule/models"
)

type ScheduleService interface {
	UpdateSchedule(ctx context.Context, req models.UpdateScheduleRequest) (*models.ResourceSchedule, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
