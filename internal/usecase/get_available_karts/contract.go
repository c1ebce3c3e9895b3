package get_available_karts

import (
	"context"
	"time"

	"github.com/m04kA/SMC-KartingService/internal/domain"
)

// RateTable тарифная таблица: длительность заезда по количеству кругов
type RateTable interface {
	GetRate(ctx context.Context, lapCount int) (*domain.Rate, error)
}

// KartInventory парк картов
type KartInventory interface {
	ListIDs(ctx context.Context) ([]int64, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// FindOverlapping подтверждённые бронирования, пересекающиеся с [start, end)
	FindOverlapping(ctx context.Context, start, end time.Time) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
