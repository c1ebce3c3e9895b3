package notifier

import "time"

// EventReservationConfirmed тип события в заголовке сообщения
const EventReservationConfirmed = "reservation.confirmed"

// ReservationConfirmedEvent событие о подтверждённом бронировании
// Потребитель рассылает по нему квитанцию участникам
type ReservationConfirmedEvent struct {
	ReservationID     int64     `json:"reservationId"`
	TitularName       string    `json:"titularName"`
	TitularEmail      string    `json:"titularEmail"`
	ParticipantNames  []string  `json:"participantNames"`
	ParticipantEmails []string  `json:"participantEmails"`
	LapCount          int       `json:"lapCount"`
	StartTime         time.Time `json:"startTime"`
	EndTime           time.Time `json:"endTime"`
	KartIDs           []int64   `json:"kartIds"`
	TotalBase         int       `json:"totalBase"`
	DiscountPercent   int       `json:"discountPercent"`
	Subtotal          int       `json:"subtotal"`
	Tax               int       `json:"tax"`
	Total             int       `json:"total"`
	OccurredAt        time.Time `json:"occurredAt"`
}
