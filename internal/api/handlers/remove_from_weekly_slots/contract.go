package remove_from_weekly_slots

import "context"

type WeeklySlotService interface {
	RemoveReservation(ctx context.Context, reservationID int64) (int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
