package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-KartingService/internal/domain"
	createReservation "github.com/m04kA/SMC-KartingService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	TitularEmail      string   `json:"titularEmail"`
	ParticipantEmails []string `json:"participantEmails"`
	LapCount          int      `json:"lapCount"`
	StartTime         string   `json:"startTime"` // "2024-06-12T15:00"
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID                 int64   `json:"id"`
	TitularID          int64   `json:"titularId"`
	ParticipantIDs     []int64 `json:"participantIds"`
	Headcount          int     `json:"headcount"`
	LapCount           int     `json:"lapCount"`
	StartTime          string  `json:"startTime"`
	EndTime            string  `json:"endTime"`
	DurationMinutes    int     `json:"durationMinutes"`
	KartIDs            []int64 `json:"kartIds"`
	Status             string  `json:"status"`
	BasePricePerPerson int     `json:"basePricePerPerson"`
	TotalBase          int     `json:"totalBase"`
	DiscountPercent    int     `json:"discountPercent"`
	Subtotal           int     `json:"subtotal"`
	Tax                int     `json:"tax"`
	FinalPrice         int     `json:"finalPrice"`
	CreatedAt          string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	startTime, err := time.Parse(domain.DateTimeFormat, r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		TitularEmail:      r.TitularEmail,
		ParticipantEmails: r.ParticipantEmails,
		LapCount:          r.LapCount,
		StartTime:         startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:                 resp.ID,
		TitularID:          resp.TitularID,
		ParticipantIDs:     resp.ParticipantIDs,
		Headcount:          resp.Headcount,
		LapCount:           resp.LapCount,
		StartTime:          resp.StartTime.Format(domain.DateTimeFormat),
		EndTime:            resp.EndTime.Format(domain.DateTimeFormat),
		DurationMinutes:    resp.DurationMinutes,
		KartIDs:            resp.KartIDs,
		Status:             resp.Status,
		BasePricePerPerson: resp.BasePricePerPerson,
		TotalBase:          resp.TotalBase,
		DiscountPercent:    resp.DiscountPercent,
		Subtotal:           resp.Subtotal,
		Tax:                resp.Tax,
		FinalPrice:         resp.FinalPrice,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
	}
}
