package reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-KartingService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	Delete(ctx context.Context, id int64) error
	ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Reservation, error)
	CountByTitularBetween(ctx context.Context, titularID int64, from, to time.Time) (int, error)
}

// InvoiceRepository интерфейс репозитория квитанций
type InvoiceRepository interface {
	GetByReservationID(ctx context.Context, reservationID int64) (*domain.Invoice, error)
	DeleteByReservationID(ctx context.Context, reservationID int64) error
}

// ClientDirectory справочник клиентов
type ClientDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
}

// WeeklySlotTracker трекер недельных снимков
type WeeklySlotTracker interface {
	RemoveReservation(ctx context.Context, reservationID int64) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
