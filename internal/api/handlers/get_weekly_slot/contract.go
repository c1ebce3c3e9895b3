package get_weekly_slot

import (
	"context"

	"github.com/m04kA/SMC-KartingService/internal/domain"
)

type WeeklySlotService interface {
	Snapshot(ctx context.Context, year, week int) (*domain.WeeklySlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
