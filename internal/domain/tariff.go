package domain

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

var (
	// ErrInvalidRange диапазон скидки некорректен (min > max, отрицательные границы, процент вне 0..100)
	ErrInvalidRange = errors.New("domain: invalid discount range")

	// ErrOverlappingRanges диапазоны одного вида скидки пересекаются
	ErrOverlappingRanges = errors.New("domain: overlapping discount ranges")

	// ErrUnknownDiscountKind неизвестный вид скидки
	ErrUnknownDiscountKind = errors.New("domain: unknown discount kind")
)

// Rate строка тарифной таблицы: количество кругов -> цена за человека и длительность заезда
type Rate struct {
	LapCount        int
	PricePerPerson  int
	DurationMinutes int
}

// Duration длительность заезда
func (r *Rate) Duration() time.Duration {
	return time.Duration(r.DurationMinutes) * time.Minute
}

// DiscountKind вид табличной скидки
type DiscountKind string

const (
	DiscountKindGroupSize DiscountKind = "group_size" // по количеству участников
	DiscountKindFrequency DiscountKind = "frequency"  // по числу бронирований клиента за месяц
)

// ParseDiscountKind валидирует вид скидки
func ParseDiscountKind(s string) (DiscountKind, error) {
	switch k := DiscountKind(s); k {
	case DiscountKindGroupSize, DiscountKindFrequency:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDiscountKind, s)
	}
}

// DiscountRange диапазон [Min, Max] (включительно) с процентом скидки
type DiscountRange struct {
	ID         int64
	Kind       DiscountKind
	Min        int
	Max        int
	Percentage int
}

// Contains проверяет попадание значения в диапазон
func (d DiscountRange) Contains(value int) bool {
	return value >= d.Min && value <= d.Max
}

// ValidateRanges проверяет таблицу одного вида скидки:
// каждый диапазон корректен, диапазоны не пересекаются. Пропуски между диапазонами допустимы.
func ValidateRanges(ranges []DiscountRange) error {
	sorted := make([]DiscountRange, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Min < sorted[j].Min })

	for i, r := range sorted {
		if r.Min < 0 || r.Min > r.Max {
			return fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, r.Min, r.Max)
		}
		if r.Percentage < MinDiscountPercent || r.Percentage > MaxDiscountPercent {
			return fmt.Errorf("%w: percentage %d", ErrInvalidRange, r.Percentage)
		}
		if i > 0 && sorted[i-1].Max >= r.Min {
			return fmt.Errorf("%w: [%d, %d] and [%d, %d]",
				ErrOverlappingRanges, sorted[i-1].Min, sorted[i-1].Max, r.Min, r.Max)
		}
	}

	return nil
}

// Holiday праздничный день со скидкой
type Holiday struct {
	Date time.Time
	Name string
}
