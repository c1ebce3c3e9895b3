package tariffs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-KartingService/internal/domain"
	"github.com/m04kA/SMC-KartingService/internal/service/tariffs/models"
	"github.com/m04kA/SMC-KartingService/pkg/logger"
)

type MockTariffRepository struct {
	mock.Mock
}

func (m *MockTariffRepository) ListRates(ctx context.Context) ([]domain.Rate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rate), args.Error(1)
}

func (m *MockTariffRepository) ListDiscountRanges(ctx context.Context, kind domain.DiscountKind) ([]domain.DiscountRange, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DiscountRange), args.Error(1)
}

func (m *MockTariffRepository) ReplaceDiscountRanges(ctx context.Context, kind domain.DiscountKind, ranges []domain.DiscountRange) error {
	args := m.Called(ctx, kind, ranges)
	return args.Error(0)
}

func (m *MockTariffRepository) ListHolidays(ctx context.Context) ([]domain.Holiday, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Holiday), args.Error(1)
}

// recordingTx выполняет функцию без транзакции и запоминает уровень изоляции
type recordingTx struct {
	calls []string
}

func (r *recordingTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	r.calls = append(r.calls, "serializable")
	return fn(ctx)
}

func (r *recordingTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	r.calls = append(r.calls, "read-only")
	return fn(ctx)
}

func TestGetTariffs(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTariffRepository)

	repo.On("ListRates", ctx).Return([]domain.Rate{
		{LapCount: 10, PricePerPerson: 15000, DurationMinutes: 30},
		{LapCount: 15, PricePerPerson: 20000, DurationMinutes: 35},
	}, nil)
	repo.On("ListDiscountRanges", ctx, domain.DiscountKindGroupSize).Return([]domain.DiscountRange{
		{Min: 1, Max: 2, Percentage: 0},
		{Min: 3, Max: 5, Percentage: 10},
	}, nil)
	repo.On("ListDiscountRanges", ctx, domain.DiscountKindFrequency).Return([]domain.DiscountRange{}, nil)
	repo.On("ListHolidays", ctx).Return([]domain.Holiday{
		{Date: time.Date(2024, time.September, 18, 0, 0, 0, 0, time.UTC), Name: "Fiestas Patrias"},
	}, nil)

	svc := NewService(repo, &recordingTx{}, logger.NewNop())

	resp, err := svc.GetTariffs(ctx)
	require.NoError(t, err)

	assert.Len(t, resp.Rates, 2)
	assert.Len(t, resp.GroupSize, 2)
	assert.Empty(t, resp.Frequency)
	assert.Equal(t, "2024-09-18", resp.Holidays[0].Date)
	assert.Equal(t, 50, resp.SpecialDates.Birthday)
	assert.Equal(t, 19, resp.TaxPercent)
}

func TestGetTariffs_StorageFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTariffRepository)
	repo.On("ListRates", ctx).Return(nil, errors.New("db down"))

	svc := NewService(repo, &recordingTx{}, logger.NewNop())

	_, err := svc.GetTariffs(ctx)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestReplaceDiscountRanges_StoresSortedTable(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTariffRepository)

	expected := []domain.DiscountRange{
		{Kind: domain.DiscountKindFrequency, Min: 0, Max: 1, Percentage: 0},
		{Kind: domain.DiscountKindFrequency, Min: 2, Max: 4, Percentage: 10},
		{Kind: domain.DiscountKindFrequency, Min: 7, Max: 1000, Percentage: 30},
	}
	repo.On("ReplaceDiscountRanges", ctx, domain.DiscountKindFrequency, expected).Return(nil)

	tx := &recordingTx{}
	svc := NewService(repo, tx, logger.NewNop())

	resp, err := svc.ReplaceDiscountRanges(ctx, "frequency", &models.ReplaceDiscountRangesRequest{
		Ranges: []models.DiscountRangeInput{
			{Min: 7, Max: 1000, Percentage: 30},
			{Min: 0, Max: 1, Percentage: 0},
			{Min: 2, Max: 4, Percentage: 10},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "frequency", resp.Kind)
	assert.Equal(t, 0, resp.Ranges[0].Min)
	// DELETE + INSERT параллельных замен не должны смешаться
	assert.Equal(t, []string{"serializable"}, tx.calls)
	repo.AssertExpectations(t)
}

func TestReplaceDiscountRanges_Rejects(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		kind    string
		ranges  []models.DiscountRangeInput
		wantErr error
	}{
		{
			name:    "unknown kind",
			kind:    "weekday",
			ranges:  []models.DiscountRangeInput{{Min: 1, Max: 2, Percentage: 5}},
			wantErr: ErrUnknownDiscountKind,
		},
		{
			name: "overlapping",
			kind: "group_size",
			ranges: []models.DiscountRangeInput{
				{Min: 1, Max: 3, Percentage: 0},
				{Min: 3, Max: 5, Percentage: 10},
			},
			wantErr: ErrInvalidRanges,
		},
		{
			name:    "min above max",
			kind:    "group_size",
			ranges:  []models.DiscountRangeInput{{Min: 5, Max: 3, Percentage: 10}},
			wantErr: ErrInvalidRanges,
		},
		{
			name:    "percentage above 100",
			kind:    "group_size",
			ranges:  []models.DiscountRangeInput{{Min: 1, Max: 3, Percentage: 120}},
			wantErr: ErrInvalidRanges,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockTariffRepository)
			svc := NewService(repo, &recordingTx{}, logger.NewNop())

			_, err := svc.ReplaceDiscountRanges(ctx, tt.kind, &models.ReplaceDiscountRangesRequest{Ranges: tt.ranges})
			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "ReplaceDiscountRanges", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
