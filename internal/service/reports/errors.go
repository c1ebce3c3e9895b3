package reports

import "errors"

var (
	// ErrUnknownDimension возвращается для неизвестного разреза отчёта
	ErrUnknownDimension = errors.New("unknown report dimension")

	// ErrInvalidInput возвращается при некорректном периоде
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
