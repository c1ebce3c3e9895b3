package discounts

import (
	"time"

	"github.com/m04kA/SMC-KartingService/internal/domain"
)

// ResolveDateSpecial лучшая из скидок по дате: день рождения, выходной, праздник
// client == nil означает, что клиента найти не удалось и правило дня рождения даёт 0
func ResolveDateSpecial(date time.Time, client *domain.Client, isHoliday bool) int {
	best := 0

	if client != nil && client.HasBirthdayOn(date) {
		best = max(best, domain.BirthdayDiscountPercent)
	}

	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		best = max(best, domain.WeekendDiscountPercent)
	}

	if isHoliday {
		best = max(best, domain.HolidayDiscountPercent)
	}

	return best
}

// ResolveRange процент диапазона, содержащего value; 0, если такого нет
// Пересекающиеся диапазоны считаются ошибкой данных
func ResolveRange(ranges []domain.DiscountRange, value int) (int, error) {
	if err := domain.ValidateRanges(ranges); err != nil {
		return 0, err
	}

	for _, r := range ranges {
		if r.Contains(value) {
			return r.Percentage, nil
		}
	}

	return 0, nil
}

// Best выбирает максимальную скидку из кандидатов
func Best(candidates ...int) int {
	best := 0
	for _, c := range candidates {
		best = max(best, c)
	}
	return min(best, domain.MaxDiscountPercent)
}
