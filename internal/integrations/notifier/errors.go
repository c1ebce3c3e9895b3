package notifier

import "errors"

var (
	// ErrConnect возвращается, когда не удалось подключиться к брокеру
	ErrConnect = errors.New("notifier: failed to connect to broker")

	// ErrPublish возвращается при ошибке публикации события
	ErrPublish = errors.New("notifier: failed to publish event")

	// ErrDecode возвращается, когда тело сообщения не является событием
	ErrDecode = errors.New("notifier: failed to decode event")
)
