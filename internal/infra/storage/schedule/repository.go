package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/PKOOOO/cosmix-booking-service/internal/domain"
	"github.com/PKOOOO/cosmix-booking-service/pkg/dbmetrics"
	"github.com/PKOOOO/cosmix-booking-service/pkg/psqlbuilder"
)

var hoursColumns = []string{
	"id",
	"resource_id",
	"day_of_week",
	"is_open",
	"open_time",
	"close_time",
	"slot_duration_minutes",
	"break_time_minutes",
	"max_bookings_per_slot",
	"created_at",
	"updated_at",
}

var offeringColumns = []string{
	"id",
	"resource_id",
	"service_id",
	"duration_minutes",
	"price",
	"is_available",
	"available_days",
	"created_at",
	"updated_at",
}

// Repository репозиторий расписания: операционные часы и конфигурация услуг ресурса
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetHoursByResourceAndDay получает строку расписания ресурса на день недели (0=воскресенье .. 6=суббота)
func (r *Repository) GetHoursByResourceAndDay(ctx context.Context, resourceID int64, dayOfWeek int) (*domain.OperatingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(hoursColumns...).
		From("operating_hours").
		Where(squirrel.Eq{"resource_id": resourceID, "day_of_week": dayOfWeek}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetHoursByResourceAndDay - build select query: %v", ErrBuildQuery, err)
	}

	hours, err := scanHours(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetHoursByResourceAndDay - scan hours: %v", ErrScanRow, err)
	}

	return hours, nil
}

// GetHoursByResource получает все строки расписания ресурса, отсортированные по дню недели
func (r *Repository) GetHoursByResource(ctx context.Context, resourceID int64) ([]*domain.OperatingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(hoursColumns...).
		From("operating_hours").
		Where(squirrel.Eq{"resource_id": resourceID}).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetHoursByResource - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetHoursByResource - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.OperatingHours, 0)
	for rows.Next() {
		hours, err := scanHours(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetHoursByResource - scan row: %v", ErrScanRow, err)
		}
		result = append(result, hours)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetHoursByResource - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// UpsertHours создает или обновляет строку расписания ресурса на день недели
func (r *Repository) UpsertHours(ctx context.Context, hours *domain.OperatingHours) (*domain.OperatingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("operating_hours").
		Columns(
			"resource_id",
			"day_of_week",
			"is_open",
			"open_time",
			"close_time",
			"slot_duration_minutes",
			"break_time_minutes",
			"max_bookings_per_slot",
		).
		Values(
			hours.ResourceID,
			hours.DayOfWeek,
			hours.IsOpen,
			hours.OpenTime,
			hours.CloseTime,
			hours.SlotDurationMinutes,
			hours.BreakTimeMinutes,
			hours.MaxBookingsPerSlot,
		).
		Suffix(`ON CONFLICT (resource_id, day_of_week) DO UPDATE SET
			is_open = EXCLUDED.is_open,
			open_time = EXCLUDED.open_time,
			close_time = EXCLUDED.close_time,
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			break_time_minutes = EXCLUDED.break_time_minutes,
			max_bookings_per_slot = EXCLUDED.max_bookings_per_slot,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertHours - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&hours.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertHours - execute upsert: %v", ErrExecQuery, err)
	}

	hours.CreatedAt = createdAt.Time
	hours.UpdatedAt = updatedAt.Time

	return hours, nil
}

// GetOffering получает конфигурацию услуги на ресурсе
func (r *Repository) GetOffering(ctx context.Context, resourceID, serviceID int64) (*domain.ServiceOffering, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(offeringColumns...).
		From("service_offerings").
		Where(squirrel.Eq{"resource_id": resourceID, "service_id": serviceID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOffering - build select query: %v", ErrBuildQuery, err)
	}

	offering, err := scanOffering(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrOfferingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetOffering - scan offering: %v", ErrScanRow, err)
	}

	return offering, nil
}

// GetOfferingsByResource получает все конфигурации услуг ресурса
func (r *Repository) GetOfferingsByResource(ctx context.Context, resourceID int64) ([]*domain.ServiceOffering, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(offeringColumns...).
		From("service_offerings").
		Where(squirrel.Eq{"resource_id": resourceID}).
		OrderBy("service_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOfferingsByResource - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOfferingsByResource - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.ServiceOffering, 0)
	for rows.Next() {
		offering, err := scanOffering(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetOfferingsByResource - scan row: %v", ErrScanRow, err)
		}
		result = append(result, offering)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetOfferingsByResource - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// UpsertOffering создает или обновляет конфигурацию услуги на ресурсе
func (r *Repository) UpsertOffering(ctx context.Context, offering *domain.ServiceOffering) (*domain.ServiceOffering, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	days := make(pq.Int64Array, len(offering.AvailableDays))
	for i, d := range offering.AvailableDays {
		days[i] = int64(d)
	}

	query, args, err := psqlbuilder.Insert("service_offerings").
		Columns(
			"resource_id",
			"service_id",
			"duration_minutes",
			"price",
			"is_available",
			"available_days",
		).
		Values(
			offering.ResourceID,
			offering.ServiceID,
			offering.DurationMinutes,
			offering.Price,
			offering.IsAvailable,
			days,
		).
		Suffix(`ON CONFLICT (resource_id, service_id) DO UPDATE SET
			duration_minutes = EXCLUDED.duration_minutes,
			price = EXCLUDED.price,
			is_available = EXCLUDED.is_available,
			available_days = EXCLUDED.available_days,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertOffering - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&offering.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertOffering - execute upsert: %v", ErrExecQuery, err)
	}

	offering.CreatedAt = createdAt.Time
	offering.UpdatedAt = updatedAt.Time

	return offering, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanHours(row rowScanner) (*domain.OperatingHours, error) {
	var hours domain.OperatingHours
	var openTime, closeTime sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&hours.ID,
		&hours.ResourceID,
		&hours.DayOfWeek,
		&hours.IsOpen,
		&openTime,
		&closeTime,
		&hours.SlotDurationMinutes,
		&hours.BreakTimeMinutes,
		&hours.MaxBookingsPerSlot,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if openTime.Valid {
		if err := hours.OpenTime.Scan(openTime.String); err != nil {
			return nil, err
		}
	}
	if closeTime.Valid {
		if err := hours.CloseTime.Scan(closeTime.String); err != nil {
			return nil, err
		}
	}

	hours.CreatedAt = createdAt.Time
	hours.UpdatedAt = updatedAt.Time

	return &hours, nil
}

func scanOffering(row rowScanner) (*domain.ServiceOffering, error) {
	var offering domain.ServiceOffering
	var days pq.Int64Array
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&offering.ID,
		&offering.ResourceID,
		&offering.ServiceID,
		&offering.DurationMinutes,
		&offering.Price,
		&offering.IsAvailable,
		&days,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	offering.AvailableDays = make([]int, len(days))
	for i, d := range days {
		offering.AvailableDays[i] = int(d)
	}

	offering.CreatedAt = createdAt.Time
	offering.UpdatedAt = updatedAt.Time

	return &offering, nil
}
