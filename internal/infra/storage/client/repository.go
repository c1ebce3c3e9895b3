package client

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-KartingService/internal/domain"
	"github.com/m04kA/SMC-KartingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-KartingService/pkg/psqlbuilder"
)

// Repository справочник клиентов
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByEmail ищет клиента по email без учёта регистра
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Client, error) {
	return r.getOne(ctx, "GetByEmail", squirrel.Expr("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))))
}

// GetByID получает клиента по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

func (r *Repository) getOne(ctx context.Context, op string, pred squirrel.Sqlizer) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "rut", "name", "email", "phone", "birth_date").
		From("clients").
		Where(pred).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var (
		c         domain.Client
		phone     sql.NullString
		birthDate sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.RUT,
		&c.Name,
		&c.Email,
		&phone,
		&birthDate,
	)

	if err == sql.ErrNoRows {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan client: %v", ErrScanRow, op, err)
	}

	c.Phone = phone.String
	if birthDate.Valid {
		bd := birthDate.Time.UTC()
		c.BirthDate = &bd
	}

	return &c, nil
}
