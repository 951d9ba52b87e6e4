package shift

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Munkh976/caremuch-sub000/internal/domain"
	"github.com/Munkh976/caremuch-sub000/pkg/dbtx"
	"github.com/Munkh976/caremuch-sub000/pkg/psqlbuilder"
)

const shiftsTable = "care_shifts"

// Код ошибки PostgreSQL unique_violation
const pgUniqueViolation = "23505"

var shiftColumns = []string{
	"id",
	"order_id",
	"client_id",
	"caregiver_id",
	"shift_date",
	"start_time",
	"end_time",
	"duration_hours",
	"service_code",
	"status",
	"note",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со сменами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория смен
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// BatchCreate вставляет пакет смен одним multi-row INSERT.
// Вызывается материализатором внутри транзакции вместе с созданием заказа.
// Нарушение уникальности (caregiver_id, shift_date, start_time) транслируется
// в ErrShiftConflict - защита от двойного бронирования на уровне хранилища.
func (r *Repository) BatchCreate(ctx context.Context, shifts []*domain.CareShift) error {
	if len(shifts) == 0 {
		return ErrEmptyBatch
	}

	executor := dbtx.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert(shiftsTable).
		Columns(
			"order_id",
			"client_id",
			"caregiver_id",
			"shift_date",
			"start_time",
			"end_time",
			"duration_hours",
			"service_code",
			"status",
			"note",
		)

	for _, s := range shifts {
		insertBuilder = insertBuilder.Values(
			s.OrderID,
			s.ClientID,
			s.CaregiverID,
			s.Date,
			s.StartTime,
			s.EndTime,
			s.DurationHours,
			s.ServiceCode,
			s.Status,
			s.Note,
		)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: BatchCreate - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return fmt.Errorf("%w: %v", ErrShiftConflict, err)
		}
		return fmt.Errorf("%w: BatchCreate - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByOrderID получает все смены заказа по возрастанию даты
func (r *Repository) GetByOrderID(ctx context.Context, orderID int64) ([]*domain.CareShift, error) {
	executor := dbtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(shiftColumns...).
		From(shiftsTable).
		Where(squirrel.Eq{"order_id": orderID}).
		OrderBy("shift_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByOrderID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOrderID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanShifts(rows)
}

// GetByCaregiverAndDateRange получает смены сиделки за период, по возрастанию
// даты и времени начала. Используется агентским расписанием.
func (r *Repository) GetByCaregiverAndDateRange(ctx context.Context, caregiverID int64, filter domain.ShiftRangeFilter) ([]*domain.CareShift, error) {
	executor := dbtx.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(shiftColumns...).
		From(shiftsTable).
		Where(squirrel.Eq{"caregiver_id": caregiverID})

	// Фильтрация по периоду
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"shift_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"shift_date": *filter.EndDate})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.
		OrderBy("shift_date ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCaregiverAndDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCaregiverAndDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanShifts(rows)
}

// DeleteByOrderID удаляет все смены заказа.
// Используется только как компенсация после частично неудавшейся материализации.
func (r *Repository) DeleteByOrderID(ctx context.Context, orderID int64) error {
	executor := dbtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(shiftsTable).
		Where(squirrel.Eq{"order_id": orderID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByOrderID - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByOrderID - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) scanShifts(rows *sql.Rows) ([]*domain.CareShift, error) {
	shifts := make([]*domain.CareShift, 0)

	for rows.Next() {
		var s domain.CareShift
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.OrderID,
			&s.ClientID,
			&s.CaregiverID,
			&s.Date,
			&s.StartTime,
			&s.EndTime,
			&s.DurationHours,
			&s.ServiceCode,
			&s.Status,
			&s.Note,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scan shift: %v", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time
		shifts = append(shifts, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows error: %v", ErrScanRow, err)
	}

	return shifts, nil
}
