package discounts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-KartingService/internal/domain"
	"github.com/m04kA/SMC-KartingService/pkg/logger"
)

type MockClientDirectory struct {
	mock.Mock
}

func (m *MockClientDirectory) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

type MockDiscountTable struct {
	mock.Mock
}

func (m *MockDiscountTable) ListDiscountRanges(ctx context.Context, kind domain.DiscountKind) ([]domain.DiscountRange, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DiscountRange), args.Error(1)
}

func (m *MockDiscountTable) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	args := m.Called(ctx, date)
	return args.Bool(0), args.Error(1)
}

func TestService_DateSpecial(t *testing.T) {
	ctx := context.Background()
	saturday := day(2024, time.June, 15)
	born := time.Date(2000, time.June, 15, 0, 0, 0, 0, time.UTC)

	t.Run("birthday wins", func(t *testing.T) {
		clients := new(MockClientDirectory)
		tables := new(MockDiscountTable)
		clients.On("GetByID", ctx, int64(1)).Return(&domain.Client{ID: 1, BirthDate: &born}, nil)
		tables.On("IsHoliday", ctx, saturday).Return(true, nil)

		svc := NewService(clients, tables, logger.NewNop())

		assert.Equal(t, 50, svc.DateSpecial(ctx, 1, saturday))
		clients.AssertExpectations(t)
		tables.AssertExpectations(t)
	})

	t.Run("birthday lookup failure degrades only that rule", func(t *testing.T) {
		clients := new(MockClientDirectory)
		tables := new(MockDiscountTable)
		clients.On("GetByID", ctx, int64(1)).Return(nil, errors.New("connection refused"))
		tables.On("IsHoliday", ctx, saturday).Return(false, nil)

		svc := NewService(clients, tables, logger.NewNop())

		assert.Equal(t, 10, svc.DateSpecial(ctx, 1, saturday))
	})

	t.Run("holiday lookup failure degrades to weekend", func(t *testing.T) {
		clients := new(MockClientDirectory)
		tables := new(MockDiscountTable)
		clients.On("GetByID", ctx, int64(1)).Return(&domain.Client{ID: 1}, nil)
		tables.On("IsHoliday", ctx, saturday).Return(false, errors.New("timeout"))

		svc := NewService(clients, tables, logger.NewNop())

		assert.Equal(t, 10, svc.DateSpecial(ctx, 1, saturday))
	})
}

func TestService_GroupSizeAndFrequency(t *testing.T) {
	ctx := context.Background()
	tables := new(MockDiscountTable)
	tables.On("ListDiscountRanges", ctx, domain.DiscountKindGroupSize).Return(groupSizeTable(), nil)
	tables.On("ListDiscountRanges", ctx, domain.DiscountKindFrequency).Return([]domain.DiscountRange{
		{Min: 0, Max: 1, Percentage: 0},
		{Min: 2, Max: 4, Percentage: 10},
		{Min: 5, Max: 6, Percentage: 20},
		{Min: 7, Max: 1000, Percentage: 30},
	}, nil)

	svc := NewService(new(MockClientDirectory), tables, logger.NewNop())

	group, err := svc.GroupSize(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, 10, group)

	freq, err := svc.Frequency(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 30, freq)
}

func TestService_RangeErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("table unavailable", func(t *testing.T) {
		tables := new(MockDiscountTable)
		tables.On("ListDiscountRanges", ctx, domain.DiscountKindGroupSize).Return(nil, errors.New("db down"))

		_, err := NewService(new(MockClientDirectory), tables, logger.NewNop()).GroupSize(ctx, 3)
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("overlapping table", func(t *testing.T) {
		tables := new(MockDiscountTable)
		tables.On("ListDiscountRanges", ctx, domain.DiscountKindFrequency).Return([]domain.DiscountRange{
			{Min: 0, Max: 3, Percentage: 0},
			{Min: 2, Max: 4, Percentage: 10},
		}, nil)

		_, err := NewService(new(MockClientDirectory), tables, logger.NewNop()).Frequency(ctx, 2)
		assert.ErrorIs(t, err, ErrInternal)
		assert.ErrorIs(t, err, domain.ErrOverlappingRanges)
	})
}
