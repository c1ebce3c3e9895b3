package domain

import "time"

// Invoice квитанция по бронированию (производный документ, удаляется вместе с бронированием)
type Invoice struct {
	ID               int64
	ReservationID    int64
	TitularName      string
	ParticipantNames []string
	TotalBase        int
	DiscountPercent  int
	Subtotal         int
	Tax              int
	Total            int
	CreatedAt        time.Time
}

// NewInvoice собирает квитанцию из бронирования и расчёта цены
func NewInvoice(reservationID int64, titularName string, participantNames []string, quote PriceQuote) *Invoice {
	return &Invoice{
		ReservationID:    reservationID,
		TitularName:      titularName,
		ParticipantNames: participantNames,
		TotalBase:        quote.TotalBase,
		DiscountPercent:  quote.DiscountPercent,
		Subtotal:         quote.Subtotal,
		Tax:              quote.Tax,
		Total:            quote.Total,
	}
}
