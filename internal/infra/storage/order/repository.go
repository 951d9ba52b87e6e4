package order

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Munkh976/caremuch-sub000/internal/domain"
	"github.com/Munkh976/caremuch-sub000/pkg/dbtx"
	"github.com/Munkh976/caremuch-sub000/pkg/psqlbuilder"
)

const ordersTable = "care_orders"

var orderColumns = []string{
	"id",
	"order_number",
	"client_id",
	"agency_id",
	"caregiver_id",
	"start_date",
	"end_date",
	"cadence",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с заказами на уход
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заказов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый заказ.
// Если в контексте передана активная транзакция, использует её - так
// материализатор выполняет создание заказа и пакет смен атомарно.
func (r *Repository) Create(ctx context.Context, order *domain.CareOrder) (*domain.CareOrder, error) {
	executor := dbtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(ordersTable).
		Columns(
			"order_number",
			"client_id",
			"agency_id",
			"caregiver_id",
			"start_date",
			"end_date",
			"cadence",
			"status",
		).
		Values(
			order.OrderNumber,
			order.ClientID,
			order.AgencyID,
			order.CaregiverID,
			order.StartDate,
			order.EndDate,
			order.Cadence,
			order.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&order.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	order.CreatedAt = createdAt.Time
	order.UpdatedAt = updatedAt.Time

	return order, nil
}

// GetByID получает заказ по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.CareOrder, error) {
	executor := dbtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(orderColumns...).
		From(ordersTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	order, err := r.scanOrder(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan order: %v", ErrScanRow, err)
	}

	return order, nil
}

// GetByOrderNumber получает заказ по номеру
func (r *Repository) GetByOrderNumber(ctx context.Context, orderNumber string) (*domain.CareOrder, error) {
	executor := dbtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(orderColumns...).
		From(ordersTable).
		Where(squirrel.Eq{"order_number": orderNumber}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByOrderNumber - build select query: %v", ErrBuildQuery, err)
	}

	order, err := r.scanOrder(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOrderNumber - scan order: %v", ErrScanRow, err)
	}

	return order, nil
}

// GetByClientID получает список заказов клиента, сначала новые
func (r *Repository) GetByClientID(ctx context.Context, clientID int64) ([]*domain.CareOrder, error) {
	executor := dbtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(orderColumns...).
		From(ordersTable).
		Where(squirrel.Eq{"client_id": clientID}).
		OrderBy("start_date DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByClientID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClientID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	orders := make([]*domain.CareOrder, 0)
	for rows.Next() {
		var order domain.CareOrder
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&order.ID,
			&order.OrderNumber,
			&order.ClientID,
			&order.AgencyID,
			&order.CaregiverID,
			&order.StartDate,
			&order.EndDate,
			&order.Cadence,
			&order.Status,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByClientID - scan order: %v", ErrScanRow, err)
		}

		order.CreatedAt = createdAt.Time
		order.UpdatedAt = updatedAt.Time
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByClientID - rows error: %v", ErrScanRow, err)
	}

	return orders, nil
}

// Delete физически удаляет заказ.
// Используется только как компенсация после частично неудавшейся материализации.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(ordersTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanOrder(row rowScanner) (*domain.CareOrder, error) {
	var order domain.CareOrder
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&order.ID,
		&order.OrderNumber,
		&order.ClientID,
		&order.AgencyID,
		&order.CaregiverID,
		&order.StartDate,
		&order.EndDate,
		&order.Cadence,
		&order.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	order.CreatedAt = createdAt.Time
	order.UpdatedAt = updatedAt.Time

	return &order, nil
}
