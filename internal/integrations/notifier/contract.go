package notifier

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// channel часть *amqp.Channel, которую использует публикатор
type channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// dialFunc открывает соединение и канал; closeFn закрывает оба
// timeout ограничивает TCP-подключение и AMQP-handshake
type dialFunc func(url string, timeout time.Duration) (ch channel, closeFn func() error, err error)

func dialAMQP(url string, timeout time.Duration) (channel, func() error, error) {
	cfg := amqp.Config{Locale: "en_US", Heartbeat: 10 * time.Second}
	if timeout > 0 {
		cfg.Dial = amqp.DefaultDial(timeout)
	}

	conn, err := amqp.DialConfig(url, cfg)
	if err != nil {
		return nil, nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}

	closeFn := func() error {
		_ = ch.Close()
		return conn.Close()
	}
	return ch, closeFn, nil
}
