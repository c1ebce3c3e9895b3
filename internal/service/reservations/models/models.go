package models

import (
	"time"

	"github.com/m04kA/SMC-KartingService/internal/domain"
)

// Response модели

// InvoiceResponse квитанция по бронированию
type InvoiceResponse struct {
	TitularName      string   `json:"titularName"`
	ParticipantNames []string `json:"participantNames"`
	TotalBase        int      `json:"totalBase"`
	DiscountPercent  int      `json:"discountPercent"`
	Subtotal         int      `json:"subtotal"`
	Tax              int      `json:"tax"`
	Total            int      `json:"total"`
}

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID                 int64            `json:"id"`
	TitularID          int64            `json:"titularId"`
	ParticipantIDs     []int64          `json:"participantIds"`
	Headcount          int              `json:"headcount"`
	LapCount           int              `json:"lapCount"`
	StartTime          string           `json:"startTime"` // "2024-06-12T15:00"
	EndTime            string           `json:"endTime"`
	DurationMinutes    int              `json:"durationMinutes"`
	KartIDs            []int64          `json:"kartIds"`
	Status             string           `json:"status"`
	BasePricePerPerson int              `json:"basePricePerPerson"`
	DiscountPercent    int              `json:"discountPercent"`
	FinalPrice         int              `json:"finalPrice"`
	Invoice            *InvoiceResponse `json:"invoice,omitempty"`
	CreatedAt          time.Time        `json:"createdAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	From         string                `json:"from"`
	To           string                `json:"to"`
	Reservations []ReservationResponse `json:"reservations"`
}

// CancelResponse результат отмены
// Warnings содержит ошибки очистки производных данных, бронирование при этом уже удалено
type CancelResponse struct {
	ReservationID int64    `json:"reservationId"`
	Cancelled     bool     `json:"cancelled"`
	Warnings      []string `json:"warnings"`
}

// MonthlyCountResponse число бронирований клиента за календарный месяц
type MonthlyCountResponse struct {
	ClientID int64  `json:"clientId"`
	Month    string `json:"month"` // "2024-06"
	Count    int    `json:"count"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:                 r.ID,
		TitularID:          r.TitularID,
		ParticipantIDs:     nonNil(r.ParticipantIDs),
		Headcount:          r.Headcount,
		LapCount:           r.LapCount,
		StartTime:          r.StartTime.Format(domain.DateTimeFormat),
		EndTime:            r.EndTime.Format(domain.DateTimeFormat),
		DurationMinutes:    r.DurationMinutes,
		KartIDs:            nonNil(r.KartIDs),
		Status:             string(r.Status),
		BasePricePerPerson: r.BasePricePerPerson,
		DiscountPercent:    r.DiscountPercent,
		FinalPrice:         r.FinalPrice,
		CreatedAt:          r.CreatedAt,
	}
}

// FromDomainInvoice конвертирует квитанцию в DTO
func FromDomainInvoice(inv *domain.Invoice) *InvoiceResponse {
	if inv == nil {
		return nil
	}

	names := inv.ParticipantNames
	if names == nil {
		names = []string{}
	}

	return &InvoiceResponse{
		TitularName:      inv.TitularName,
		ParticipantNames: names,
		TotalBase:        inv.TotalBase,
		DiscountPercent:  inv.DiscountPercent,
		Subtotal:         inv.Subtotal,
		Tax:              inv.Tax,
		Total:            inv.Total,
	}
}

// FromDomainReservationList конвертирует список бронирований за период
func FromDomainReservationList(from, to time.Time, reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		From:         from.Format(domain.DateTimeFormat),
		To:           to.Format(domain.DateTimeFormat),
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, r := range reservations {
		if item := FromDomainReservation(r); item != nil {
			resp.Reservations = append(resp.Reservations, *item)
		}
	}

	return resp
}

func nonNil(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
