package get_available_karts

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-KartingService/internal/domain"
	tariffRepo "github.com/m04kA/SMC-KartingService/internal/infra/storage/tariff"
)

// UseCase use case для получения свободных картов на окно заезда
type UseCase struct {
	rates           RateTable
	karts           KartInventory
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	rates RateTable,
	karts KartInventory,
	reservationRepo ReservationRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		rates:           rates,
		karts:           karts,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute возвращает карты, которые движок бронирования выделил бы для такого окна прямо сейчас
// Результат не резервирует карты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableKarts: start=%s, laps=%d", req.StartTime.Format(domain.DateTimeFormat), req.LapCount)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableKarts: validation failed: %v", err)
		return nil, err
	}

	// 2. Длительность заезда по тарифу
	rate, err := uc.rates.GetRate(ctx, req.LapCount)
	if err != nil {
		if errors.Is(err, tariffRepo.ErrRateNotFound) {
			uc.logger.Warn("GetAvailableKarts: no rate for laps=%d", req.LapCount)
			return nil, ErrUnknownRateTier
		}
		uc.logger.Error("GetAvailableKarts: failed to get rate for laps=%d: %v", req.LapCount, err)
		return nil, fmt.Errorf("%w: failed to get rate: %v", ErrInternal, err)
	}

	start := req.StartTime
	end := start.Add(rate.Duration())

	// 3. Парк и пересекающиеся бронирования
	allKarts, err := uc.karts.ListIDs(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableKarts: failed to list karts: %v", err)
		return nil, fmt.Errorf("%w: failed to list karts: %v", ErrInternal, err)
	}

	overlapping, err := uc.reservationRepo.FindOverlapping(ctx, start, end)
	if err != nil {
		uc.logger.Error("GetAvailableKarts: failed to find overlapping reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to find overlapping reservations: %v", ErrInternal, err)
	}

	available := domain.AvailableKarts(allKarts, overlapping, start, end)

	uc.logger.Info("GetAvailableKarts: %d/%d karts free for %s-%s",
		len(available), len(allKarts), start.Format(domain.DateTimeFormat), end.Format(domain.TimeFormat))

	return &Response{
		StartTime:        start,
		EndTime:          end,
		LapCount:         rate.LapCount,
		DurationMinutes:  rate.DurationMinutes,
		PricePerPerson:   rate.PricePerPerson,
		AvailableKartIDs: available,
		TotalKarts:       len(allKarts),
	}, nil
}
