package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-KartingService/internal/domain"
	"github.com/m04kA/SMC-KartingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-KartingService/pkg/psqlbuilder"
)

const table = "reservations"

var columns = []string{
	"id",
	"titular_id",
	"participant_ids",
	"headcount",
	"lap_count",
	"start_time",
	"end_time",
	"duration_minutes",
	"base_price_per_person",
	"discount_percent",
	"final_price",
	"kart_ids",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий бронирований
// Ошибки драйвера оборачиваются через %w, чтобы txmanager мог распознать конфликт сериализации
type Repository struct {
	db              DBExecutor
	timelineLockKey int64
}

// NewRepository создает репозиторий бронирований
// timelineLockKey - ключ advisory-блокировки, сериализующей проверку пересечений и выделение картов
func NewRepository(db DBExecutor, timelineLockKey int64) *Repository {
	return &Repository{db: db, timelineLockKey: timelineLockKey}
}

// LockTimeline берет транзакционную advisory-блокировку на всю шкалу бронирований
// Блокировка снимается при commit/rollback, поэтому вызов вне транзакции запрещён.
// Вызывается первым запросом в транзакции READ COMMITTED: последующие запросы
// получают свежий снимок и видят бронирования, зафиксированные предыдущим владельцем блокировки.
func (r *Repository) LockTimeline(ctx context.Context) error {
	if !dbmetrics.IsInTransaction(ctx) {
		return fmt.Errorf("%w: LockTimeline", ErrTransaction)
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if _, err := executor.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", r.timelineLockKey); err != nil {
		return fmt.Errorf("%w: LockTimeline - acquire advisory lock: %w", ErrExecQuery, err)
	}

	return nil
}

// Create сохраняет бронирование и заполняет ID и метки времени
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"titular_id",
			"participant_ids",
			"headcount",
			"lap_count",
			"start_time",
			"end_time",
			"duration_minutes",
			"base_price_per_person",
			"discount_percent",
			"final_price",
			"kart_ids",
			"status",
		).
		Values(
			res.TitularID,
			pq.Array(res.ParticipantIDs),
			res.Headcount,
			res.LapCount,
			res.StartTime,
			res.EndTime,
			res.DurationMinutes,
			res.BasePricePerPerson,
			res.DiscountPercent,
			res.FinalPrice,
			pq.Array(res.KartIDs),
			res.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time.UTC()
	res.UpdatedAt = updatedAt.Time.UTC()

	return res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %w", ErrScanRow, err)
	}

	return res, nil
}

// Delete физически удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// ListBetween возвращает бронирования, начинающиеся в [from, to), по возрастанию времени начала
func (r *Repository) ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.GtOrEq{"start_time": from}).
		Where(squirrel.Lt{"start_time": to}).
		OrderBy("start_time ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBetween - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// FindOverlapping возвращает подтверждённые бронирования, пересекающиеся с [start, end)
// Условие строгое: бронирования, граничащие с окном, не попадают в выборку.
// Строки не блокируются: от параллельных вставок защищает только LockTimeline
func (r *Repository) FindOverlapping(ctx context.Context, start, end time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// CountByTitularBetween считает подтверждённые бронирования клиента, начинающиеся в [from, to)
func (r *Repository) CountByTitularBetween(ctx context.Context, titularID int64, from, to time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"titular_id": titularID, "status": domain.StatusConfirmed}).
		Where(squirrel.GtOrEq{"start_time": from}).
		Where(squirrel.Lt{"start_time": to}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByTitularBetween - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByTitularBetween - scan count: %w", ErrScanRow, err)
	}

	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.TitularID,
		pq.Array(&res.ParticipantIDs),
		&res.Headcount,
		&res.LapCount,
		&res.StartTime,
		&res.EndTime,
		&res.DurationMinutes,
		&res.BasePricePerPerson,
		&res.DiscountPercent,
		&res.FinalPrice,
		pq.Array(&res.KartIDs),
		&res.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	// timestamp without time zone: приводим к UTC, как и при разборе запросов
	res.StartTime = res.StartTime.UTC()
	res.EndTime = res.EndTime.UTC()
	res.CreatedAt = createdAt.Time.UTC()
	res.UpdatedAt = updatedAt.Time.UTC()

	return &res, nil
}

func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %w", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %w", ErrScanRow, err)
	}

	return reservations, nil
}
