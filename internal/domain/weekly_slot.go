package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidWeek неверный номер ISO-недели для года
var ErrInvalidWeek = errors.New("domain: invalid ISO week")

// WeeklySlot снимок бронирований ISO-недели (понедельник..воскресенье)
// Производный индекс: всегда может быть пересобран из бронирований
type WeeklySlot struct {
	Year           int
	Week           int
	WeekStart      time.Time // понедельник 00:00
	WeekEnd        time.Time // воскресенье (дата)
	ReservationIDs []int64
	UpdatedAt      time.Time
}

// Window полуинтервал недели [понедельник 00:00, следующий понедельник 00:00)
func (s *WeeklySlot) Window() (time.Time, time.Time) {
	return s.WeekStart, s.WeekStart.AddDate(0, 0, 7)
}

// Contains проверяет наличие бронирования в снимке
func (s *WeeklySlot) Contains(reservationID int64) bool {
	for _, id := range s.ReservationIDs {
		if id == reservationID {
			return true
		}
	}
	return false
}

// Remove удаляет бронирование из снимка, возвращает true, если оно там было
func (s *WeeklySlot) Remove(reservationID int64) bool {
	kept := s.ReservationIDs[:0]
	removed := false
	for _, id := range s.ReservationIDs {
		if id == reservationID {
			removed = true
			continue
		}
		kept = append(kept, id)
	}
	s.ReservationIDs = kept
	return removed
}

// ISOWeeksInYear количество ISO-недель в году (52 или 53)
func ISOWeeksInYear(year int) int {
	// 28 декабря всегда попадает в последнюю ISO-неделю года
	_, week := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return week
}

// NewWeeklySlot строит пустой снимок для ISO-недели с вычисленными границами
func NewWeeklySlot(year, week int) (*WeeklySlot, error) {
	if week < 1 || week > ISOWeeksInYear(year) {
		return nil, fmt.Errorf("%w: year=%d week=%d", ErrInvalidWeek, year, week)
	}

	// 4 января всегда в первой ISO-неделе
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	offset := (int(jan4.Weekday()) + 6) % 7
	monday := jan4.AddDate(0, 0, -offset+(week-1)*7)

	return &WeeklySlot{
		Year:           year,
		Week:           week,
		WeekStart:      monday,
		WeekEnd:        monday.AddDate(0, 0, 6),
		ReservationIDs: []int64{},
	}, nil
}
