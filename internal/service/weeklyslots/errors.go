package weeklyslots

import "errors"

var (
	// ErrInvalidWeek возвращается, когда номер недели не существует в году
	ErrInvalidWeek = errors.New("weeklyslots: invalid ISO week")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("weeklyslots: internal error")
)
