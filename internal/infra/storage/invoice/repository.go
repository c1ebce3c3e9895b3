package invoice

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

// Repository квитанции по бронированиям
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет квитанцию
func (r *Repository) Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("invoices").
		Columns(
			"reservation_id",
			"titular_name",
			"participant_names",
			"total_base",
			"discount_percent",
			"subtotal",
			"tax",
			"total",
		).
		Values(
			inv.ReservationID,
			inv.TitularName,
			pq.Array(inv.ParticipantNames),
			inv.TotalBase,
			inv.DiscountPercent,
			inv.Subtotal,
			inv.Tax,
			inv.Total,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&inv.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	inv.CreatedAt = createdAt.Time.UTC()

	return inv, nil
}

// GetByReservationID получает квитанцию бронирования
func (r *Repository) GetByReservationID(ctx context.Context, reservationID int64) (*domain.Invoice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"reservation_id",
		"titular_name",
		"participant_names",
		"total_base",
		"discount_percent",
		"subtotal",
		"tax",
		"total",
		"created_at",
	).
		From("invoices").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservationID - build select query: %v", ErrBuildQuery, err)
	}

	var inv domain.Invoice
	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&inv.ID,
		&inv.ReservationID,
		&inv.TitularName,
		pq.Array(&inv.ParticipantNames),
		&inv.TotalBase,
		&inv.DiscountPercent,
		&inv.Subtotal,
		&inv.Tax,
		&inv.Total,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrInvoiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservationID - scan invoice: %v", ErrScanRow, err)
	}
	inv.CreatedAt = createdAt.Time.UTC()

	return &inv, nil
}

// DeleteByReservationID удаляет квитанцию бронирования
func (r *Repository) DeleteByReservationID(ctx context.Context, reservationID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("invoices").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByReservationID - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByReservationID - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByReservationID - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrInvoiceNotFound
	}

	return nil
}
