package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-KartingService/internal/domain"
	clientRepo "github.com/m04kA/SMC-KartingService/internal/infra/storage/client"
	invoiceRepo "github.com/m04kA/SMC-KartingService/internal/infra/storage/invoice"
	reservationRepo "github.com/m04kA/SMC-KartingService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-KartingService/pkg/logger"
)

// memReservations хранилище бронирований в памяти
type memReservations struct {
	items map[int64]*domain.Reservation
}

func newMemReservations(items ...*domain.Reservation) *memReservations {
	m := &memReservations{items: make(map[int64]*domain.Reservation)}
	for _, r := range items {
		m.items[r.ID] = r
	}
	return m
}

func (m *memReservations) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r, ok := m.items[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return r, nil
}

func (m *memReservations) Delete(_ context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memReservations) ListBetween(_ context.Context, from, to time.Time) ([]*domain.Reservation, error) {
	result := make([]*domain.Reservation, 0)
	for _, r := range m.items {
		if !r.StartTime.Before(from) && r.StartTime.Before(to) {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *memReservations) CountByTitularBetween(_ context.Context, titularID int64, from, to time.Time) (int, error) {
	count := 0
	for _, r := range m.items {
		if r.TitularID == titularID && !r.StartTime.Before(from) && r.StartTime.Before(to) {
			count++
		}
	}
	return count, nil
}

type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) GetByReservationID(ctx context.Context, reservationID int64) (*domain.Invoice, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) DeleteByReservationID(ctx context.Context, reservationID int64) error {
	args := m.Called(ctx, reservationID)
	return args.Error(0)
}

type MockWeeklySlotTracker struct {
	mock.Mock
}

func (m *MockWeeklySlotTracker) RemoveReservation(ctx context.Context, reservationID int64) (int, error) {
	args := m.Called(ctx, reservationID)
	return args.Int(0), args.Error(1)
}

type stubClients struct{}

func (stubClients) GetByID(_ context.Context, id int64) (*domain.Client, error) {
	if id == 1 {
		return &domain.Client{ID: 1, Name: "Ana"}, nil
	}
	return nil, clientRepo.ErrClientNotFound
}

func sampleReservation(id, titularID int64, start time.Time) *domain.Reservation {
	return &domain.Reservation{
		ID:              id,
		TitularID:       titularID,
		ParticipantIDs:  []int64{titularID},
		Headcount:       1,
		LapCount:        10,
		StartTime:       start,
		EndTime:         start.Add(20 * time.Minute),
		DurationMinutes: 20,
		KartIDs:         []int64{1},
		Status:          domain.StatusConfirmed,
		FinalPrice:      9520,
	}
}

func TestCancel_DeletesAndCleansUp(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, time.June, 12, 15, 0, 0, 0, time.UTC)

	repo := newMemReservations(sampleReservation(1, 1, start))
	invoices := new(MockInvoiceRepository)
	slots := new(MockWeeklySlotTracker)
	invoices.On("DeleteByReservationID", ctx, int64(1)).Return(nil)
	slots.On("RemoveReservation", ctx, int64(1)).Return(1, nil)

	svc := NewService(repo, invoices, stubClients{}, slots, logger.NewNop())

	resp, err := svc.Cancel(ctx, 1)
	require.NoError(t, err)
	assert.True(t, resp.Cancelled)
	assert.Empty(t, resp.Warnings)
	assert.Empty(t, repo.items)

	invoices.AssertExpectations(t)
	slots.AssertExpectations(t)
}

func TestCancel_Idempotent(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, time.June, 12, 15, 0, 0, 0, time.UTC)

	repo := newMemReservations(sampleReservation(1, 1, start), sampleReservation(2, 1, start.Add(time.Hour)))
	invoices := new(MockInvoiceRepository)
	slots := new(MockWeeklySlotTracker)
	invoices.On("DeleteByReservationID", ctx, int64(1)).Return(nil).Once()
	slots.On("RemoveReservation", ctx, int64(1)).Return(1, nil).Once()

	svc := NewService(repo, invoices, stubClients{}, slots, logger.NewNop())

	_, err := svc.Cancel(ctx, 1)
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, 1)
	assert.ErrorIs(t, err, ErrReservationNotFound)

	// остальные бронирования не затронуты
	assert.Len(t, repo.items, 1)
	assert.Contains(t, repo.items, int64(2))
	invoices.AssertExpectations(t)
	slots.AssertExpectations(t)
}

func TestCancel_CleanupFailuresBecomeWarnings(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, time.June, 12, 15, 0, 0, 0, time.UTC)

	repo := newMemReservations(sampleReservation(1, 1, start))
	invoices := new(MockInvoiceRepository)
	slots := new(MockWeeklySlotTracker)
	invoices.On("DeleteByReservationID", ctx, int64(1)).Return(errors.New("db down"))
	slots.On("RemoveReservation", ctx, int64(1)).Return(0, errors.New("db down"))

	svc := NewService(repo, invoices, stubClients{}, slots, logger.NewNop())

	resp, err := svc.Cancel(ctx, 1)
	require.NoError(t, err)
	assert.True(t, resp.Cancelled)
	assert.Len(t, resp.Warnings, 2)
	assert.Empty(t, repo.items)
}

func TestCancel_MissingInvoiceIsNotAWarning(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, time.June, 12, 15, 0, 0, 0, time.UTC)

	repo := newMemReservations(sampleReservation(1, 1, start))
	invoices := new(MockInvoiceRepository)
	slots := new(MockWeeklySlotTracker)
	invoices.On("DeleteByReservationID", ctx, int64(1)).Return(invoiceRepo.ErrInvoiceNotFound)
	slots.On("RemoveReservation", ctx, int64(1)).Return(0, nil)

	svc := NewService(repo, invoices, stubClients{}, slots, logger.NewNop())

	resp, err := svc.Cancel(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, resp.Warnings)
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, time.June, 12, 15, 0, 0, 0, time.UTC)

	t.Run("with invoice", func(t *testing.T) {
		invoices := new(MockInvoiceRepository)
		invoices.On("GetByReservationID", ctx, int64(1)).Return(&domain.Invoice{
			ReservationID:    1,
			TitularName:      "Ana",
			ParticipantNames: []string{"Ana"},
			TotalBase:        8000,
			Total:            9520,
		}, nil)

		svc := NewService(newMemReservations(sampleReservation(1, 1, start)), invoices, stubClients{}, new(MockWeeklySlotTracker), logger.NewNop())

		resp, err := svc.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "2024-06-12T15:00", resp.StartTime)
		assert.Equal(t, "2024-06-12T15:20", resp.EndTime)
		require.NotNil(t, resp.Invoice)
		assert.Equal(t, 9520, resp.Invoice.Total)
	})

	t.Run("without invoice", func(t *testing.T) {
		invoices := new(MockInvoiceRepository)
		invoices.On("GetByReservationID", ctx, int64(1)).Return(nil, invoiceRepo.ErrInvoiceNotFound)

		svc := NewService(newMemReservations(sampleReservation(1, 1, start)), invoices, stubClients{}, new(MockWeeklySlotTracker), logger.NewNop())

		resp, err := svc.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, resp.Invoice)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewService(newMemReservations(), new(MockInvoiceRepository), stubClients{}, new(MockWeeklySlotTracker), logger.NewNop())

		_, err := svc.GetByID(ctx, 42)
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})
}

func TestListBetween(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC)

	repo := newMemReservations(
		sampleReservation(1, 1, day.Add(10*time.Hour)),
		sampleReservation(2, 1, day.Add(23*time.Hour+50*time.Minute)),
		sampleReservation(3, 1, day.Add(24*time.Hour)),
	)
	svc := NewService(repo, new(MockInvoiceRepository), stubClients{}, new(MockWeeklySlotTracker), logger.NewNop())

	resp, err := svc.ListBetween(ctx, day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 2)

	_, err = svc.ListBetween(ctx, day, day)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMonthlyCount(t *testing.T) {
	ctx := context.Background()

	repo := newMemReservations(
		sampleReservation(1, 1, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)),
		sampleReservation(2, 1, time.Date(2024, time.June, 30, 23, 0, 0, 0, time.UTC)),
		sampleReservation(3, 1, time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)),
		sampleReservation(4, 5, time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)),
	)
	svc := NewService(repo, new(MockInvoiceRepository), stubClients{}, new(MockWeeklySlotTracker), logger.NewNop())

	resp, err := svc.MonthlyCount(ctx, 1, time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "2024-06", resp.Month)

	_, err = svc.MonthlyCount(ctx, 99, time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrClientNotFound)
}
