package reports

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/m04kA/SMC-KartingService/internal/domain"
)

// Service отчёты по выручке за период
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
	now             func() time.Time
}

func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// ParseDimension валидирует разрез отчёта
func ParseDimension(s string) (domain.RevenueDimension, error) {
	switch d := domain.RevenueDimension(s); d {
	case domain.RevenueByLaps, domain.RevenueByHeadcount, domain.RevenueByDuration:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDimension, s)
	}
}

// Revenue строит отчёт по выбранному разрезу
func (s *Service) Revenue(ctx context.Context, dimension domain.RevenueDimension, from, to time.Time) (*domain.RevenueReport, error) {
	switch dimension {
	case domain.RevenueByLaps:
		return s.RevenueByLaps(ctx, from, to)
	case domain.RevenueByHeadcount:
		return s.RevenueByHeadcount(ctx, from, to)
	case domain.RevenueByDuration:
		return s.RevenueByDuration(ctx, from, to)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDimension, dimension)
	}
}

// RevenueByLaps выручка по количеству кругов, критерий "10 laps"
func (s *Service) RevenueByLaps(ctx context.Context, from, to time.Time) (*domain.RevenueReport, error) {
	reservations, err := s.load(ctx, "RevenueByLaps", from, to)
	if err != nil {
		return nil, err
	}

	rows := groupByInt(reservations, func(r *domain.Reservation) int { return r.LapCount }, " laps")
	return s.report(domain.RevenueByLaps, from, to, rows), nil
}

// RevenueByDuration выручка по длительности заезда, критерий "20 min"
func (s *Service) RevenueByDuration(ctx context.Context, from, to time.Time) (*domain.RevenueReport, error) {
	reservations, err := s.load(ctx, "RevenueByDuration", from, to)
	if err != nil {
		return nil, err
	}

	rows := groupByInt(reservations, func(r *domain.Reservation) int { return r.DurationMinutes }, " min")
	return s.report(domain.RevenueByDuration, from, to, rows), nil
}

// RevenueByHeadcount выручка по диапазонам количества участников
// Все диапазоны присутствуют в отчёте, даже с нулевой выручкой
func (s *Service) RevenueByHeadcount(ctx context.Context, from, to time.Time) (*domain.RevenueReport, error) {
	reservations, err := s.load(ctx, "RevenueByHeadcount", from, to)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.RevenueRow, len(domain.HeadcountBrackets))
	for i, b := range domain.HeadcountBrackets {
		rows[i].Criterion = b.Label
	}
	for _, r := range reservations {
		i := headcountBracket(r.Headcount)
		rows[i].Reservations++
		rows[i].TotalRevenue += int64(r.FinalPrice)
	}

	return s.report(domain.RevenueByHeadcount, from, to, rows), nil
}

func (s *Service) load(ctx context.Context, op string, from, to time.Time) ([]*domain.Reservation, error) {
	if !from.Before(to) {
		s.logger.Warn("%s: empty period from=%s to=%s", op, from.Format(domain.DateTimeFormat), to.Format(domain.DateTimeFormat))
		return nil, fmt.Errorf("%w: from must be before to", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.ListBetween(ctx, from, to)
	if err != nil {
		s.logger.Error("%s: failed to list reservations: %v", op, err)
		return nil, fmt.Errorf("%w: %s - list reservations: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: aggregating %d reservations", op, len(reservations))
	return reservations, nil
}

func (s *Service) report(dimension domain.RevenueDimension, from, to time.Time, rows []domain.RevenueRow) *domain.RevenueReport {
	return &domain.RevenueReport{
		Dimension:   dimension,
		From:        from,
		To:          to,
		Rows:        rows,
		GeneratedAt: s.now(),
	}
}

// groupByInt группирует выручку по целочисленному ключу, строки упорядочены по возрастанию ключа
func groupByInt(reservations []*domain.Reservation, keyOf func(*domain.Reservation) int, suffix string) []domain.RevenueRow {
	byKey := make(map[int]*domain.RevenueRow)
	keys := make([]int, 0)

	for _, r := range reservations {
		k := keyOf(r)
		row, ok := byKey[k]
		if !ok {
			row = &domain.RevenueRow{Criterion: strconv.Itoa(k) + suffix}
			byKey[k] = row
			keys = append(keys, k)
		}
		row.Reservations++
		row.TotalRevenue += int64(r.FinalPrice)
	}

	sort.Ints(keys)
	rows := make([]domain.RevenueRow, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, *byKey[k])
	}
	return rows
}

// headcountBracket индекс диапазона; всё, что больше последней границы, попадает в последний диапазон
func headcountBracket(n int) int {
	for i, b := range domain.HeadcountBrackets {
		if n <= b.Max {
			return i
		}
	}
	return len(domain.HeadcountBrackets) - 1
}
