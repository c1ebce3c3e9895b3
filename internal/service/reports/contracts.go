package reports

import (
	"context"
	"time"

	"github.com/m04kA/SMC-KartingService/internal/domain"
)

// ReservationRepository источник бронирований за период
type ReservationRepository interface {
	ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
