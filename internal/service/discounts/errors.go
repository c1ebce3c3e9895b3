package discounts

import "errors"

var (
	// ErrInternal возвращается, когда таблица скидок недоступна или противоречива
	ErrInternal = errors.New("discounts: internal error")
)
