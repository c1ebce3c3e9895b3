package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, time.June, 15, hour, minute, 0, 0, time.UTC)
}

func confirmed(start, end time.Time, karts ...int64) *Reservation {
	return &Reservation{StartTime: start, EndTime: end, KartIDs: karts, Status: StatusConfirmed}
}

func TestReservation_Overlaps(t *testing.T) {
	r := confirmed(at(10, 0), at(10, 30))

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"ends exactly at start", at(9, 30), at(10, 0), false},
		{"starts exactly at end", at(10, 30), at(11, 0), false},
		{"inner", at(10, 10), at(10, 20), true},
		{"covers", at(9, 0), at(11, 0), true},
		{"left partial", at(9, 50), at(10, 5), true},
		{"right partial", at(10, 25), at(10, 50), true},
		{"same window", at(10, 0), at(10, 30), true},
		{"far before", at(8, 0), at(9, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Overlaps(tt.start, tt.end))
		})
	}
}

func TestAvailableKarts(t *testing.T) {
	all := []int64{5, 1, 4, 2, 3}

	reservations := []*Reservation{
		confirmed(at(10, 0), at(10, 30), 1, 2),
		confirmed(at(10, 20), at(10, 40), 2, 3),
		// граничит с окном справа, карт 4 свободен
		confirmed(at(10, 30), at(11, 0), 4),
		// неактивное бронирование не занимает карты
		{StartTime: at(10, 0), EndTime: at(10, 30), KartIDs: []int64{5}, Status: "cancelled"},
	}

	got := AvailableKarts(all, reservations, at(10, 0), at(10, 30))

	assert.Equal(t, []int64{4, 5}, got)
}

func TestAvailableKarts_NoReservations(t *testing.T) {
	got := AvailableKarts([]int64{3, 1, 2}, nil, at(10, 0), at(10, 30))
	assert.Equal(t, []int64{1, 2, 3}, got)
}

func TestOccupiedKarts_Deduplicates(t *testing.T) {
	reservations := []*Reservation{
		confirmed(at(10, 0), at(10, 30), 1, 2),
		confirmed(at(10, 0), at(10, 30), 2),
	}

	occupied := OccupiedKarts(reservations, at(10, 0), at(10, 30))

	assert.Len(t, occupied, 2)
	assert.Contains(t, occupied, int64(1))
	assert.Contains(t, occupied, int64(2))
}

func TestMonthBounds(t *testing.T) {
	from, to := MonthBounds(time.Date(2024, time.December, 31, 23, 59, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), to)
}

func TestClient_HasBirthdayOn(t *testing.T) {
	born := time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC)
	c := &Client{BirthDate: &born}

	assert.True(t, c.HasBirthdayOn(at(10, 0)))
	assert.False(t, c.HasBirthdayOn(at(10, 0).AddDate(0, 0, 1)))
	assert.False(t, (&Client{}).HasBirthdayOn(at(10, 0)))
}
