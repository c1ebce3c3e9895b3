package weeklyslots

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-KartingService/internal/domain"
	"github.com/m04kA/SMC-KartingService/pkg/logger"
)

type fakeReservations struct {
	items []*domain.Reservation
	err   error
}

func (f *fakeReservations) ListBetween(_ context.Context, from, to time.Time) ([]*domain.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := make([]*domain.Reservation, 0)
	for _, r := range f.items {
		if !r.StartTime.Before(from) && r.StartTime.Before(to) {
			result = append(result, r)
		}
	}
	return result, nil
}

type fakeSlots struct {
	saved map[string]*domain.WeeklySlot
	saves int
}

func newFakeSlots() *fakeSlots {
	return &fakeSlots{saved: make(map[string]*domain.WeeklySlot)}
}

func key(year, week int) string {
	return fmt.Sprintf("%d-%d", year, week)
}

func (f *fakeSlots) Save(_ context.Context, slot *domain.WeeklySlot) (*domain.WeeklySlot, error) {
	f.saves++
	cp := *slot
	cp.ReservationIDs = append([]int64{}, slot.ReservationIDs...)
	f.saved[key(slot.Year, slot.Week)] = &cp
	return slot, nil
}

func (f *fakeSlots) ListContaining(_ context.Context, reservationID int64) ([]*domain.WeeklySlot, error) {
	result := make([]*domain.WeeklySlot, 0)
	for _, s := range f.saved {
		if s.Contains(reservationID) {
			cp := *s
			cp.ReservationIDs = append([]int64{}, s.ReservationIDs...)
			result = append(result, &cp)
		}
	}
	return result, nil
}

func reservationAt(id int64, start time.Time) *domain.Reservation {
	return &domain.Reservation{ID: id, StartTime: start, EndTime: start.Add(20 * time.Minute), Status: domain.StatusConfirmed}
}

func TestSnapshot_CollectsWeekWindow(t *testing.T) {
	reservations := &fakeReservations{items: []*domain.Reservation{
		reservationAt(1, time.Date(2024, time.June, 9, 23, 50, 0, 0, time.UTC)),  // воскресенье предыдущей недели
		reservationAt(2, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)),   // понедельник 00:00
		reservationAt(3, time.Date(2024, time.June, 16, 23, 59, 0, 0, time.UTC)), // воскресенье
		reservationAt(4, time.Date(2024, time.June, 17, 0, 0, 0, 0, time.UTC)),   // следующий понедельник
	}}
	slots := newFakeSlots()

	svc := NewService(reservations, slots, logger.NewNop())

	slot, err := svc.Snapshot(context.Background(), 2024, 24)
	require.NoError(t, err)

	assert.Equal(t, []int64{2, 3}, slot.ReservationIDs)
	assert.Equal(t, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), slot.WeekStart)
	assert.Equal(t, time.Date(2024, time.June, 16, 0, 0, 0, 0, time.UTC), slot.WeekEnd)
}

func TestSnapshot_RebuildIsStable(t *testing.T) {
	reservations := &fakeReservations{items: []*domain.Reservation{
		reservationAt(5, time.Date(2024, time.June, 11, 10, 0, 0, 0, time.UTC)),
		reservationAt(6, time.Date(2024, time.June, 12, 10, 0, 0, 0, time.UTC)),
	}}
	slots := newFakeSlots()
	svc := NewService(reservations, slots, logger.NewNop())
	ctx := context.Background()

	first, err := svc.Snapshot(ctx, 2024, 24)
	require.NoError(t, err)
	second, err := svc.Snapshot(ctx, 2024, 24)
	require.NoError(t, err)

	assert.Equal(t, first.ReservationIDs, second.ReservationIDs)
	assert.Len(t, slots.saved, 1)

	// бронирование удалено из источника: новый снимок его не содержит
	reservations.items = reservations.items[1:]
	third, err := svc.Snapshot(ctx, 2024, 24)
	require.NoError(t, err)
	assert.Equal(t, []int64{6}, third.ReservationIDs)
}

func TestSnapshotFor(t *testing.T) {
	svc := NewService(&fakeReservations{}, newFakeSlots(), logger.NewNop())

	slot, err := svc.SnapshotFor(context.Background(), time.Date(2021, time.January, 2, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	// 2 января 2021 относится к 53-й неделе 2020 года
	assert.Equal(t, 2020, slot.Year)
	assert.Equal(t, 53, slot.Week)
}

func TestSnapshot_Errors(t *testing.T) {
	t.Run("invalid week", func(t *testing.T) {
		svc := NewService(&fakeReservations{}, newFakeSlots(), logger.NewNop())

		_, err := svc.Snapshot(context.Background(), 2021, 53)
		assert.ErrorIs(t, err, ErrInvalidWeek)
	})

	t.Run("storage failure", func(t *testing.T) {
		svc := NewService(&fakeReservations{err: errors.New("db down")}, newFakeSlots(), logger.NewNop())

		_, err := svc.Snapshot(context.Background(), 2024, 24)
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestRemoveReservation_Idempotent(t *testing.T) {
	reservations := &fakeReservations{items: []*domain.Reservation{
		reservationAt(7, time.Date(2024, time.June, 11, 10, 0, 0, 0, time.UTC)),
		reservationAt(8, time.Date(2024, time.June, 12, 10, 0, 0, 0, time.UTC)),
	}}
	slots := newFakeSlots()
	svc := NewService(reservations, slots, logger.NewNop())
	ctx := context.Background()

	_, err := svc.Snapshot(ctx, 2024, 24)
	require.NoError(t, err)

	changed, err := svc.RemoveReservation(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, changed)
	assert.Equal(t, []int64{8}, slots.saved[key(2024, 24)].ReservationIDs)

	changed, err = svc.RemoveReservation(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 0, changed)
	assert.Equal(t, []int64{8}, slots.saved[key(2024, 24)].ReservationIDs)
}
