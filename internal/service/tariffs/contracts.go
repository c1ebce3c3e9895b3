package tariffs

import (
	"context"

	"github.com/m04kA/SMC-KartingService/internal/domain"
)

// TariffRepository интерфейс репозитория тарифов и скидок
type TariffRepository interface {
	ListRates(ctx context.Context) ([]domain.Rate, error)
	ListDiscountRanges(ctx context.Context, kind domain.DiscountKind) ([]domain.DiscountRange, error)
	ReplaceDiscountRanges(ctx context.Context, kind domain.DiscountKind, ranges []domain.DiscountRange) error
	ListHolidays(ctx context.Context) ([]domain.Holiday, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
