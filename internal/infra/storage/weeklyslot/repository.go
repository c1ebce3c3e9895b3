package weeklyslot

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-KartingService/internal/domain"
	"github.com/m04kA/SMC-KartingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-KartingService/pkg/psqlbuilder"
)

var columns = []string{"year", "week", "week_start", "week_end", "reservation_ids", "updated_at"}

// Repository снимки ISO-недель
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Save сохраняет снимок, полностью заменяя список бронирований недели
func (r *Repository) Save(ctx context.Context, slot *domain.WeeklySlot) (*domain.WeeklySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	ids := slot.ReservationIDs
	if ids == nil {
		ids = []int64{}
	}

	query, args, err := psqlbuilder.Insert("weekly_slots").
		Columns("year", "week", "week_start", "week_end", "reservation_ids").
		Values(slot.Year, slot.Week, slot.WeekStart, slot.WeekEnd, pq.Array(ids)).
		Suffix(`ON CONFLICT (year, week) DO UPDATE SET
			week_start = EXCLUDED.week_start,
			week_end = EXCLUDED.week_end,
			reservation_ids = EXCLUDED.reservation_ids,
			updated_at = NOW()
		RETURNING updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}
	slot.UpdatedAt = updatedAt.Time.UTC()

	return slot, nil
}

// ListContaining возвращает снимки, в которых есть бронирование
func (r *Repository) ListContaining(ctx context.Context, reservationID int64) ([]*domain.WeeklySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("weekly_slots").
		Where(squirrel.Expr("? = ANY(reservation_ids)", reservationID)).
		OrderBy("year ASC", "week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListContaining - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListContaining - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.WeeklySlot, 0)
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListContaining - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListContaining - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSlot(row rowScanner) (*domain.WeeklySlot, error) {
	var slot domain.WeeklySlot
	var updatedAt sql.NullTime

	err := row.Scan(
		&slot.Year,
		&slot.Week,
		&slot.WeekStart,
		&slot.WeekEnd,
		pq.Array(&slot.ReservationIDs),
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	slot.WeekStart = slot.WeekStart.UTC()
	slot.WeekEnd = slot.WeekEnd.UTC()
	slot.UpdatedAt = updatedAt.Time.UTC()
	if slot.ReservationIDs == nil {
		slot.ReservationIDs = []int64{}
	}

	return &slot, nil
}
