package get_available_karts

import "errors"

var (
	// ErrUnknownRateTier возвращается, когда для количества кругов нет тарифа
	ErrUnknownRateTier = errors.New("get_available_karts: unknown rate tier")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_karts: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_karts: internal error")
)
