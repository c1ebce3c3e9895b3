package domain

import "time"

// ReservationStatus статус бронирования
type ReservationStatus string

const (
	// StatusConfirmed единственный статус: бронирование создаётся сразу подтверждённым,
	// отмена удаляет запись физически
	StatusConfirmed ReservationStatus = "confirmed"
)

// Reservation бронирование заезда на картах
type Reservation struct {
	ID             int64
	TitularID      int64   // Клиент-владелец бронирования
	ParticipantIDs []int64 // Участники заезда (титуляр входит, только если указан явно)
	Headcount      int     // len(ParticipantIDs), равно количеству выделенных картов

	LapCount        int
	StartTime       time.Time
	EndTime         time.Time // StartTime + DurationMinutes, вычисляется по тарифу
	DurationMinutes int

	BasePricePerPerson int
	DiscountPercent    int
	FinalPrice         int

	KartIDs []int64
	Status  ReservationStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation occupies karts
func (r *Reservation) IsActive() bool {
	return r.Status == StatusConfirmed
}

// Overlaps проверяет пересечение полуинтервалов [StartTime, EndTime) и [start, end)
// Бронирования, граничащие друг с другом (одно заканчивается ровно там, где начинается другое), не пересекаются
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.StartTime.Before(end) && r.EndTime.After(start)
}

// MonthBounds возвращает полуинтервал календарного месяца, в который попадает t
func MonthBounds(t time.Time) (time.Time, time.Time) {
	from := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return from, from.AddDate(0, 1, 0)
}
