package weeklyslots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-KartingService/internal/domain"
)

// ReservationRepository источник бронирований для снимка
type ReservationRepository interface {
	ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Reservation, error)
}

// SlotRepository хранилище снимков недель
type SlotRepository interface {
	Save(ctx context.Context, slot *domain.WeeklySlot) (*domain.WeeklySlot, error)
	ListContaining(ctx context.Context, reservationID int64) ([]*domain.WeeklySlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
