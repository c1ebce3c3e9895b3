package get_monthly_frequency

import (
	"context"
	"time"

	"github.com/m04kA/SMC-KartingService/internal/service/reservations/models"
)

type ReservationService interface {
	MonthlyCount(ctx context.Context, clientID int64, date time.Time) (*models.MonthlyCountResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
