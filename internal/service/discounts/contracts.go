package discounts

import (
	"context"
	"time"

	"github.com/m04kA/SMC-KartingService/internal/domain"
)

// ClientDirectory источник даты рождения клиента
type ClientDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
}

// DiscountTable табличные скидки и календарь праздников
type DiscountTable interface {
	ListDiscountRanges(ctx context.Context, kind domain.DiscountKind) ([]domain.DiscountRange, error)
	IsHoliday(ctx context.Context, date time.Time) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
