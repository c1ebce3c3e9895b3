package create_reservation

import "time"

// Request модель запроса на бронирование
type Request struct {
	TitularEmail      string    // Клиент, оформляющий бронирование
	ParticipantEmails []string  // Участники заезда; титуляр учитывается, только если указан здесь
	LapCount          int       // Количество кругов, определяет тариф и длительность
	StartTime         time.Time // Начало заезда
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64
	TitularID       int64
	ParticipantIDs  []int64
	Headcount       int
	LapCount        int
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
	KartIDs         []int64
	Status          string

	// Расчёт стоимости
	BasePricePerPerson int
	TotalBase          int
	DiscountPercent    int
	Subtotal           int
	Tax                int
	FinalPrice         int

	CreatedAt time.Time
}
