package tariff

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-KartingService/internal/domain"
	"github.com/m04kA/SMC-KartingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-KartingService/pkg/psqlbuilder"
)

// Repository тарифы, табличные скидки и праздники
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetRate возвращает тариф для количества кругов
func (r *Repository) GetRate(ctx context.Context, lapCount int) (*domain.Rate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("lap_count", "price_per_person", "duration_minutes").
		From("rates").
		Where(squirrel.Eq{"lap_count": lapCount}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRate - build select query: %v", ErrBuildQuery, err)
	}

	var rate domain.Rate
	err = executor.QueryRowContext(ctx, query, args...).Scan(&rate.LapCount, &rate.PricePerPerson, &rate.DurationMinutes)
	if err == sql.ErrNoRows {
		return nil, ErrRateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetRate - scan rate: %v", ErrScanRow, err)
	}

	return &rate, nil
}

// ListRates возвращает все тарифы по возрастанию количества кругов
func (r *Repository) ListRates(ctx context.Context) ([]domain.Rate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("lap_count", "price_per_person", "duration_minutes").
		From("rates").
		OrderBy("lap_count ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListRates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rates := make([]domain.Rate, 0)
	for rows.Next() {
		var rate domain.Rate
		if err := rows.Scan(&rate.LapCount, &rate.PricePerPerson, &rate.DurationMinutes); err != nil {
			return nil, fmt.Errorf("%w: ListRates - scan row: %v", ErrScanRow, err)
		}
		rates = append(rates, rate)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRates - rows error: %v", ErrScanRow, err)
	}

	return rates, nil
}

// ListDiscountRanges возвращает диапазоны скидки указанного вида по возрастанию нижней границы
func (r *Repository) ListDiscountRanges(ctx context.Context, kind domain.DiscountKind) ([]domain.DiscountRange, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "kind", "min_value", "max_value", "percentage").
		From("discount_ranges").
		Where(squirrel.Eq{"kind": string(kind)}).
		OrderBy("min_value ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListDiscountRanges - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDiscountRanges - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ranges := make([]domain.DiscountRange, 0)
	for rows.Next() {
		var dr domain.DiscountRange
		if err := rows.Scan(&dr.ID, &dr.Kind, &dr.Min, &dr.Max, &dr.Percentage); err != nil {
			return nil, fmt.Errorf("%w: ListDiscountRanges - scan row: %v", ErrScanRow, err)
		}
		ranges = append(ranges, dr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDiscountRanges - rows error: %v", ErrScanRow, err)
	}

	return ranges, nil
}

// ReplaceDiscountRanges заменяет таблицу скидки одного вида целиком
// Вызывается внутри транзакции, иначе читатели могут увидеть пустую таблицу
func (r *Repository) ReplaceDiscountRanges(ctx context.Context, kind domain.DiscountKind, ranges []domain.DiscountRange) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("discount_ranges").
		Where(squirrel.Eq{"kind": string(kind)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceDiscountRanges - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceDiscountRanges - execute delete: %v", ErrExecQuery, err)
	}

	if len(ranges) == 0 {
		return nil
	}

	insert := psqlbuilder.Insert("discount_ranges").
		Columns("kind", "min_value", "max_value", "percentage")
	for _, dr := range ranges {
		insert = insert.Values(string(kind), dr.Min, dr.Max, dr.Percentage)
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceDiscountRanges - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceDiscountRanges - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// IsHoliday проверяет, зарегистрирована ли дата как праздник
func (r *Repository) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	query, args, err := psqlbuilder.Select().
		Column(squirrel.Expr("EXISTS (SELECT 1 FROM holidays WHERE date = ?)", day)).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: IsHoliday - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: IsHoliday - scan: %v", ErrScanRow, err)
	}

	return exists, nil
}

// ListHolidays возвращает праздники по возрастанию даты
func (r *Repository) ListHolidays(ctx context.Context) ([]domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("date", "name").
		From("holidays").
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListHolidays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListHolidays - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	holidays := make([]domain.Holiday, 0)
	for rows.Next() {
		var h domain.Holiday
		if err := rows.Scan(&h.Date, &h.Name); err != nil {
			return nil, fmt.Errorf("%w: ListHolidays - scan row: %v", ErrScanRow, err)
		}
		h.Date = h.Date.UTC()
		holidays = append(holidays, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListHolidays - rows error: %v", ErrScanRow, err)
	}

	return holidays, nil
}
