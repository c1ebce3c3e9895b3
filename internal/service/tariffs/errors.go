package tariffs

import "errors"

var (
	// ErrUnknownDiscountKind возвращается для неизвестного вида скидки
	ErrUnknownDiscountKind = errors.New("unknown discount kind")

	// ErrInvalidRanges возвращается, когда таблица диапазонов некорректна или диапазоны пересекаются
	ErrInvalidRanges = errors.New("invalid discount ranges")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
