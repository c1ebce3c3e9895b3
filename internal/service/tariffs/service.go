package tariffs

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-KartingService/internal/domain"
	"github.com/m04kA/SMC-KartingService/internal/service/tariffs/models"
)

// Service сервис тарифной сетки и таблиц скидок
type Service struct {
	tariffRepo TariffRepository
	txManager  TransactionManager
	logger     Logger
}

// NewService создает новый экземпляр сервиса тарифов
func NewService(tariffRepo TariffRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		tariffRepo: tariffRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// GetTariffs возвращает тарифы, таблицы скидок и праздники одним согласованным снимком
func (s *Service) GetTariffs(ctx context.Context) (*models.TariffsResponse, error) {
	var (
		rates     []domain.Rate
		groupSize []domain.DiscountRange
		frequency []domain.DiscountRange
		holidays  []domain.Holiday
	)

	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error
		if rates, err = s.tariffRepo.ListRates(ctx); err != nil {
			return fmt.Errorf("list rates: %w", err)
		}
		if groupSize, err = s.tariffRepo.ListDiscountRanges(ctx, domain.DiscountKindGroupSize); err != nil {
			return fmt.Errorf("list group size ranges: %w", err)
		}
		if frequency, err = s.tariffRepo.ListDiscountRanges(ctx, domain.DiscountKindFrequency); err != nil {
			return fmt.Errorf("list frequency ranges: %w", err)
		}
		if holidays, err = s.tariffRepo.ListHolidays(ctx); err != nil {
			return fmt.Errorf("list holidays: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("GetTariffs: %v", err)
		return nil, fmt.Errorf("%w: GetTariffs - %v", ErrInternal, err)
	}

	return &models.TariffsResponse{
		Rates:     models.FromDomainRates(rates),
		GroupSize: models.FromDomainRanges(groupSize),
		Frequency: models.FromDomainRanges(frequency),
		Holidays:  models.FromDomainHolidays(holidays),
		SpecialDates: models.SpecialDatesResponse{
			Birthday: domain.BirthdayDiscountPercent,
			Weekend:  domain.WeekendDiscountPercent,
			Holiday:  domain.HolidayDiscountPercent,
		},
		TaxPercent: domain.TaxPercent,
	}, nil
}

// ReplaceDiscountRanges валидирует и целиком заменяет таблицу скидки одного вида
// Пересекающиеся диапазоны отклоняются до записи. Замена (DELETE + INSERT) идёт в SERIALIZABLE:
// в READ COMMITTED две параллельные замены оставили бы в таблице строки обеих
func (s *Service) ReplaceDiscountRanges(ctx context.Context, kindName string, req *models.ReplaceDiscountRangesRequest) (*models.DiscountRangesResponse, error) {
	kind, err := domain.ParseDiscountKind(kindName)
	if err != nil {
		s.logger.Warn("ReplaceDiscountRanges: %v", err)
		return nil, fmt.Errorf("%w: %q", ErrUnknownDiscountKind, kindName)
	}

	ranges := req.ToDomain(kind)
	if err := domain.ValidateRanges(ranges); err != nil {
		s.logger.Warn("ReplaceDiscountRanges: rejected %s table: %v", kind, err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidRanges, err)
	}

	sort.Slice(ranges, func(i, j int) bool { return ranges[i].Min < ranges[j].Min })

	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		return s.tariffRepo.ReplaceDiscountRanges(ctx, kind, ranges)
	})
	if err != nil {
		s.logger.Error("ReplaceDiscountRanges: failed to store %s table: %v", kind, err)
		return nil, fmt.Errorf("%w: ReplaceDiscountRanges - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ReplaceDiscountRanges: %s table replaced with %d ranges", kind, len(ranges))
	return &models.DiscountRangesResponse{
		Kind:   string(kind),
		Ranges: models.FromDomainRanges(ranges),
	}, nil
}
