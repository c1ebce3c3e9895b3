package get_available_karts

import (
	"github.com/m04kA/SMC-KartingService/internal/domain"
	getAvailableKarts "github.com/m04kA/SMC-KartingService/internal/usecase/get_available_karts"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	StartTime        string  `json:"startTime"`
	EndTime          string  `json:"endTime"`
	LapCount         int     `json:"lapCount"`
	DurationMinutes  int     `json:"durationMinutes"`
	PricePerPerson   int     `json:"pricePerPerson"`
	AvailableKartIDs []int64 `json:"availableKartIds"`
	AvailableCount   int     `json:"availableCount"`
	TotalKarts       int     `json:"totalKarts"`
}

func FromUseCaseResponse(resp *getAvailableKarts.Response) *AvailabilityResponse {
	ids := resp.AvailableKartIDs
	if ids == nil {
		ids = []int64{}
	}

	return &AvailabilityResponse{
		StartTime:        resp.StartTime.Format(domain.DateTimeFormat),
		EndTime:          resp.EndTime.Format(domain.DateTimeFormat),
		LapCount:         resp.LapCount,
		DurationMinutes:  resp.DurationMinutes,
		PricePerPerson:   resp.PricePerPerson,
		AvailableKartIDs: ids,
		AvailableCount:   len(ids),
		TotalKarts:       resp.TotalKarts,
	}
}
