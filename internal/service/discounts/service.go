package discounts

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-KartingService/internal/domain"
)

// Service связывает резолверы скидок с таблицами и справочником клиентов
type Service struct {
	clients ClientDirectory
	tables  DiscountTable
	logger  Logger
}

func NewService(clients ClientDirectory, tables DiscountTable, logger Logger) *Service {
	return &Service{
		clients: clients,
		tables:  tables,
		logger:  logger,
	}
}

// DateSpecial скидка по дате заезда для клиента
// Ошибка любого справочника не прерывает бронирование: соответствующее правило даёт 0
func (s *Service) DateSpecial(ctx context.Context, clientID int64, date time.Time) int {
	client, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		s.logger.Warn("DateSpecial: birthday lookup degraded for client=%d: %v", clientID, err)
		client = nil
	}

	isHoliday, err := s.tables.IsHoliday(ctx, date)
	if err != nil {
		s.logger.Warn("DateSpecial: holiday lookup degraded for date=%s: %v", date.Format(domain.DateFormat), err)
		isHoliday = false
	}

	return ResolveDateSpecial(date, client, isHoliday)
}

// GroupSize скидка по количеству участников
func (s *Service) GroupSize(ctx context.Context, headcount int) (int, error) {
	return s.resolve(ctx, domain.DiscountKindGroupSize, headcount)
}

// Frequency скидка по числу бронирований клиента за месяц
func (s *Service) Frequency(ctx context.Context, monthlyCount int) (int, error) {
	return s.resolve(ctx, domain.DiscountKindFrequency, monthlyCount)
}

func (s *Service) resolve(ctx context.Context, kind domain.DiscountKind, value int) (int, error) {
	ranges, err := s.tables.ListDiscountRanges(ctx, kind)
	if err != nil {
		s.logger.Error("resolve: failed to load %s ranges: %v", kind, err)
		return 0, fmt.Errorf("%w: load %s ranges: %v", ErrInternal, kind, err)
	}

	percent, err := ResolveRange(ranges, value)
	if err != nil {
		s.logger.Error("resolve: %s table is inconsistent: %v", kind, err)
		return 0, fmt.Errorf("%w: %s table: %w", ErrInternal, kind, err)
	}

	return percent, nil
}
