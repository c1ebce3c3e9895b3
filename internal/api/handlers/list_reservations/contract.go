package list_reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-KartingService/internal/service/reservations/models"
)

type ReservationService interface {
	ListBetween(ctx context.Context, from, to time.Time) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
