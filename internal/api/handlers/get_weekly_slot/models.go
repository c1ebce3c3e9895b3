package get_weekly_slot

import "github.com/m04kA/SMC-KartingService/internal/domain"

// WeeklySlotResponse HTTP response model
type WeeklySlotResponse struct {
	Year           int     `json:"year"`
	Week           int     `json:"week"`
	WeekStart      string  `json:"weekStart"` // понедельник, "2024-06-10"
	WeekEnd        string  `json:"weekEnd"`   // воскресенье, "2024-06-16"
	ReservationIDs []int64 `json:"reservationIds"`
}

func FromDomain(slot *domain.WeeklySlot) *WeeklySlotResponse {
	ids := slot.ReservationIDs
	if ids == nil {
		ids = []int64{}
	}

	return &WeeklySlotResponse{
		Year:           slot.Year,
		Week:           slot.Week,
		WeekStart:      slot.WeekStart.Format(domain.DateFormat),
		WeekEnd:        slot.WeekEnd.Format(domain.DateFormat),
		ReservationIDs: ids,
	}
}
