package schedule

import (
	"context"
	"fmt"

	"github.com/PKOOOO/cosmix-booking-service/internal/domain"
	"github.com/PKOOOO/cosmix-booking-service/internal/service/schedule/models"
)

// Service сервис управления расписанием и конфигурацией услуг ресурса
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// GetSchedule получает недельное расписание ресурса и конфигурацию услуг
func (s *Service) GetSchedule(ctx context.Context, resourceID int64) (*models.ResourceSchedule, error) {
	if resourceID <= 0 {
		return nil, fmt.Errorf("%w: resourceId must be positive, got %d", ErrInvalidInput, resourceID)
	}

	hours, err := s.scheduleRepo.GetHoursByResource(ctx, resourceID)
	if err != nil {
		s.logger.Error("GetSchedule: get hours for resource %d failed: %v", resourceID, err)
		return nil, fmt.Errorf("%w: get operating hours: %v", ErrInternal, err)
	}

	offerings, err := s.scheduleRepo.GetOfferingsByResource(ctx, resourceID)
	if err != nil {
		s.logger.Error("GetSchedule: get offerings for resource %d failed: %v", resourceID, err)
		return nil, fmt.Errorf("%w: get offerings: %v", ErrInternal, err)
	}

	return &models.ResourceSchedule{
		ResourceID: resourceID,
		Hours:      hours,
		Offerings:  offerings,
	}, nil
}

// UpdateSchedule обновляет переданные строки расписания и конфигурации услуг
func (s *Service) UpdateSchedule(ctx context.Context, req models.UpdateScheduleRequest) (*models.ResourceSchedule, error) {
	if req.ResourceID <= 0 {
		return nil, fmt.Errorf("%w: resourceId must be positive, got %d", ErrInvalidInput, req.ResourceID)
	}

	if len(req.Hours) == 0 && len(req.Offerings) == 0 {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	for _, hours := range req.Hours {
		if err := validateHours(hours); err != nil {
			return nil, err
		}
	}
	for _, offering := range req.Offerings {
		if err := validateOffering(offering); err != nil {
			return nil, err
		}
	}

	for _, hours := range req.Hours {
		hours.ResourceID = req.ResourceID
		if _, err := s.scheduleRepo.UpsertHours(ctx, hours); err != nil {
			s.logger.Error("UpdateSchedule: upsert hours for resource %d day %d failed: %v", req.ResourceID, hours.DayOfWeek, err)
			return nil, fmt.Errorf("%w: upsert hours: %v", ErrInternal, err)
		}
	}

	for _, offering := range req.Offerings {
		offering.ResourceID = req.ResourceID
		if _, err := s.scheduleRepo.UpsertOffering(ctx, offering); err != nil {
			s.logger.Error("UpdateSchedule: upsert offering for resource %d service %d failed: %v", req.ResourceID, offering.ServiceID, err)
			return nil, fmt.Errorf("%w: upsert offering: %v", ErrInternal, err)
		}
	}

	s.logger.Info("UpdateSchedule: resource %d: %d hours rows, %d offerings updated",
		req.ResourceID, len(req.Hours), len(req.Offerings))

	return s.GetSchedule(ctx, req.ResourceID)
}

func validateHours(hours *domain.OperatingHours) error {
	if hours.DayOfWeek < domain.MinDayOfWeek || hours.DayOfWeek > domain.MaxDayOfWeek {
		return fmt.Errorf("%w: dayOfWeek must be in [%d, %d], got %d",
			ErrInvalidInput, domain.MinDayOfWeek, domain.MaxDayOfWeek, hours.DayOfWeek)
	}

	if !hours.IsOpen {
		return nil
	}

	if err := hours.OpenTime.Validate(); err != nil {
		return fmt.Errorf("%w: openTime: %v", ErrInvalidInput, err)
	}
	if err := hours.CloseTime.Validate(); err != nil {
		return fmt.Errorf("%w: closeTime: %v", ErrInvalidInput, err)
	}

	if !hours.CloseTime.IsAfter(hours.OpenTime) {
		return fmt.Errorf("%w: closeTime %s must be after openTime %s", ErrInvalidInput, hours.CloseTime, hours.OpenTime)
	}

	return nil
}

func validateOffering(offering *domain.ServiceOffering) error {
	if offering.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId must be positive, got %d", ErrInvalidInput, offering.ServiceID)
	}

	if offering.DurationMinutes != 0 &&
		(offering.DurationMinutes < domain.MinDurationMinutes || offering.DurationMinutes > domain.MaxDurationMinutes) {
		return fmt.Errorf("%w: durationMinutes must be in [%d, %d], got %d",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes, offering.DurationMinutes)
	}

	if offering.Price < 0 {
		return fmt.Errorf("%w: price must be non-negative, got %f", ErrInvalidInput, offering.Price)
	}

	for _, day := range offering.AvailableDays {
		if day < domain.MinDayOfWeek || day > domain.MaxDayOfWeek {
			return fmt.Errorf("%w: availableDays entry must be in [%d, %d], got %d",
				ErrInvalidInput, domain.MinDayOfWeek, domain.MaxDayOfWeek, day)
		}
	}

	return nil
}
