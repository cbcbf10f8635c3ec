package schedule

import "errors"

var (
	// ErrHoursNotFound возвращается, когда для ресурса/дня недели нет строки расписания
	ErrHoursNotFound = errors.New("schedule.repository: operating hours not found")

	// ErrOfferingNotFound возвращается, когда связка ресурс+услуга не найдена
	ErrOfferingNotFound = errors.New("schedule.repository: service offering not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
