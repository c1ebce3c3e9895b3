package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-KartingService/internal/domain"
	"github.com/m04kA/SMC-KartingService/internal/integrations/notifier"
)

// ClientDirectory справочник клиентов
type ClientDirectory interface {
	GetByEmail(ctx context.Context, email string) (*domain.Client, error)
}

// RateTable тарифная таблица
type RateTable interface {
	GetRate(ctx context.Context, lapCount int) (*domain.Rate, error)
}

// DiscountResolver три стратегии скидок
type DiscountResolver interface {
	DateSpecial(ctx context.Context, clientID int64, date time.Time) int
	GroupSize(ctx context.Context, headcount int) (int, error)
	Frequency(ctx context.Context, monthlyCount int) (int, error)
}

// KartInventory парк картов
type KartInventory interface {
	ListIDs(ctx context.Context) ([]int64, error)
}

// ReservationRepository хранилище бронирований
type ReservationRepository interface {
	LockTimeline(ctx context.Context) error
	FindOverlapping(ctx context.Context, start, end time.Time) ([]*domain.Reservation, error)
	CountByTitularBetween(ctx context.Context, titularID int64, from, to time.Time) (int, error)
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
}

// InvoiceRepository хранилище квитанций
type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error)
}

// Notifier публикует событие о подтверждённом бронировании
type Notifier interface {
	PublishReservationConfirmed(ctx context.Context, event *notifier.ReservationConfirmedEvent) error
}

// WeeklySlotTracker пересобирает снимок недели после бронирования
type WeeklySlotTracker interface {
	SnapshotFor(ctx context.Context, t time.Time) (*domain.WeeklySlot, error)
}

// TransactionManager интерфейс для управления транзакциями
// Do открывает транзакцию READ COMMITTED: снимок берётся на каждый запрос
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчики бронирований
type Metrics interface {
	IncReservationCreated()
	IncReservationRejected(reason string)
	IncSideEffectFailure(kind string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
