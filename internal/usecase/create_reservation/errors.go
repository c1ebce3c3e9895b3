package create_reservation

import "errors"

var (
	// ErrUnknownClient возвращается, когда титуляр или участник не найден по email
	ErrUnknownClient = errors.New("create_reservation: unknown client")

	// ErrUnknownRateTier возвращается, когда для количества кругов нет тарифа
	ErrUnknownRateTier = errors.New("create_reservation: unknown rate tier")

	// ErrInsufficientKarts возвращается, когда свободных картов в окне меньше, чем участников
	ErrInsufficientKarts = errors.New("create_reservation: insufficient karts")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

// Причины отказа для метрик
const (
	rejectUnknownClient     = "unknown_client"
	rejectUnknownRate       = "unknown_rate"
	rejectInsufficientKarts = "insufficient_karts"
	rejectInvalidInput      = "invalid_input"
)

// Побочные действия после бронирования
const (
	sideEffectInvoice      = "invoice"
	sideEffectNotification = "notification"
	sideEffectWeeklySlot   = "weekly_slot"
)
