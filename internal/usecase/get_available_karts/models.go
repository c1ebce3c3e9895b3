package get_available_karts

import "time"

// Request окно предполагаемого заезда
type Request struct {
	StartTime time.Time
	LapCount  int
}

// Response свободные карты в окне [StartTime, EndTime)
type Response struct {
	StartTime        time.Time
	EndTime          time.Time
	LapCount         int
	DurationMinutes  int
	PricePerPerson   int
	AvailableKartIDs []int64 // по возрастанию, в порядке выделения
	TotalKarts       int
}
