package models

import "github.com/PKOOOO/cosmix-booking-service/internal/domain"

// ResourceSchedule недельное расписание ресурса вместе с конфигурацией услуг
type ResourceSchedule struct {
	ResourceID int64
	Hours      []*domain.OperatingHours
	Offerings  []*domain.ServiceOffering
}

// UpdateScheduleRequest запрос на обновление расписания ресурса.
// Передаются только изменяемые строки; отсутствующие дни не трогаются.
type UpdateScheduleRequest struct {
	ResourceID int64
	Hours      []*domain.OperatingHours
	Offerings  []*domain.ServiceOffering
}
