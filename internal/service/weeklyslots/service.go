package weeklyslots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-KartingService/internal/domain"
)

// Service трекер недельных снимков бронирований
// Снимок производный: пересобирается из бронирований целиком при каждом обращении
type Service struct {
	reservationRepo ReservationRepository
	slotRepo        SlotRepository
	logger          Logger
}

func NewService(reservationRepo ReservationRepository, slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		slotRepo:        slotRepo,
		logger:          logger,
	}
}

// Snapshot пересобирает и сохраняет снимок ISO-недели
func (s *Service) Snapshot(ctx context.Context, year, week int) (*domain.WeeklySlot, error) {
	slot, err := domain.NewWeeklySlot(year, week)
	if err != nil {
		s.logger.Warn("Snapshot: invalid week year=%d week=%d", year, week)
		return nil, fmt.Errorf("%w: year=%d week=%d", ErrInvalidWeek, year, week)
	}

	from, to := slot.Window()
	reservations, err := s.reservationRepo.ListBetween(ctx, from, to)
	if err != nil {
		s.logger.Error("Snapshot: failed to list reservations for %d-W%02d: %v", year, week, err)
		return nil, fmt.Errorf("%w: Snapshot - list reservations: %v", ErrInternal, err)
	}

	ids := make([]int64, 0, len(reservations))
	for _, r := range reservations {
		ids = append(ids, r.ID)
	}
	slot.ReservationIDs = ids

	saved, err := s.slotRepo.Save(ctx, slot)
	if err != nil {
		s.logger.Error("Snapshot: failed to save %d-W%02d: %v", year, week, err)
		return nil, fmt.Errorf("%w: Snapshot - save slot: %v", ErrInternal, err)
	}

	s.logger.Info("Snapshot: %d-W%02d rebuilt with %d reservations", year, week, len(ids))
	return saved, nil
}

// SnapshotFor пересобирает снимок недели, в которую попадает t
func (s *Service) SnapshotFor(ctx context.Context, t time.Time) (*domain.WeeklySlot, error) {
	year, week := t.ISOWeek()
	return s.Snapshot(ctx, year, week)
}

// RemoveReservation убирает бронирование из всех снимков, возвращает число изменённых снимков
// Повторный вызов ничего не меняет
func (s *Service) RemoveReservation(ctx context.Context, reservationID int64) (int, error) {
	slots, err := s.slotRepo.ListContaining(ctx, reservationID)
	if err != nil {
		s.logger.Error("RemoveReservation: failed to list slots for reservation id=%d: %v", reservationID, err)
		return 0, fmt.Errorf("%w: RemoveReservation - list slots: %v", ErrInternal, err)
	}

	changed := 0
	for _, slot := range slots {
		if !slot.Remove(reservationID) {
			continue
		}
		if _, err := s.slotRepo.Save(ctx, slot); err != nil {
			s.logger.Error("RemoveReservation: failed to save %d-W%02d: %v", slot.Year, slot.Week, err)
			return changed, fmt.Errorf("%w: RemoveReservation - save slot: %v", ErrInternal, err)
		}
		changed++
	}

	s.logger.Info("RemoveReservation: reservation id=%d removed from %d weekly slots", reservationID, changed)
	return changed, nil
}
