package domain

import (
	"sort"
	"time"
)

// Kart карт из парка
type Kart struct {
	ID    int64
	Code  string // K001, K002, ...
	Model string
}

// OccupiedKarts собирает карты, занятые активными бронированиями, пересекающимися с [start, end)
func OccupiedKarts(reservations []*Reservation, start, end time.Time) map[int64]struct{} {
	occupied := make(map[int64]struct{})
	for _, r := range reservations {
		if !r.IsActive() || !r.Overlaps(start, end) {
			continue
		}
		for _, id := range r.KartIDs {
			occupied[id] = struct{}{}
		}
	}
	return occupied
}

// AvailableKarts возвращает свободные на [start, end) карты в порядке возрастания ID
func AvailableKarts(allKartIDs []int64, reservations []*Reservation, start, end time.Time) []int64 {
	occupied := OccupiedKarts(reservations, start, end)

	available := make([]int64, 0, len(allKartIDs))
	for _, id := range allKartIDs {
		if _, taken := occupied[id]; !taken {
			available = append(available, id)
		}
	}

	sort.Slice(available, func(i, j int) bool { return available[i] < available[j] })
	return available
}
