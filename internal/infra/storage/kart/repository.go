package kart

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-KartingService/internal/domain"
	"github.com/m04kA/SMC-KartingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-KartingService/pkg/psqlbuilder"
)

// Repository парк картов
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все карты по возрастанию ID
func (r *Repository) List(ctx context.Context) ([]*domain.Kart, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "code", "model").
		From("karts").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	karts := make([]*domain.Kart, 0)
	for rows.Next() {
		var k domain.Kart
		if err := rows.Scan(&k.ID, &k.Code, &k.Model); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		karts = append(karts, &k)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return karts, nil
}

// ListIDs возвращает ID всех картов по возрастанию
func (r *Repository) ListIDs(ctx context.Context) ([]int64, error) {
	karts, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(karts))
	for _, k := range karts {
		ids = append(ids, k.ID)
	}
	return ids, nil
}
