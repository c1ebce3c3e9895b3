package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Handler обработчик события о подтверждённом бронировании
type Handler func(ctx context.Context, event *ReservationConfirmedEvent) error

// Consumer читает события из очереди и передаёт их обработчику
// При обрыве соединения переподключается с паузой reconnectDelay
type Consumer struct {
	url            string
	queue          string
	prefetch       int
	reconnectDelay time.Duration
	handler        Handler
	logger         Logger
}

func NewConsumer(url, queue string, reconnectDelay time.Duration, handler Handler, logger Logger) *Consumer {
	return &Consumer{
		url:            url,
		queue:          queue,
		prefetch:       50,
		reconnectDelay: reconnectDelay,
		handler:        handler,
		logger:         logger,
	}
}

// Run обрабатывает сообщения до отмены контекста
func (c *Consumer) Run(ctx context.Context) error {
	for {
		err := c.consume(ctx)
		if ctx.Err() != nil {
			return nil
		}
		c.logger.Warn("Consumer: consume loop ended: %v, reconnecting in %s", err, c.reconnectDelay)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(c.reconnectDelay):
		}
	}
}

func (c *Consumer) consume(ctx context.Context) error {
	conn, err := amqp.Dial(c.url)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnect, err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("%w: open channel: %v", ErrConnect, err)
	}
	defer ch.Close()

	if err := ch.Qos(c.prefetch, 0, false); err != nil {
		c.logger.Warn("Consumer: failed to set QoS: %v", err)
	}

	if _, err := ch.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("%w: declare queue %s: %v", ErrConnect, c.queue, err)
	}

	deliveries, err := ch.ConsumeWithContext(ctx, c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("%w: consume %s: %v", ErrConnect, c.queue, err)
	}

	c.logger.Info("Consumer: listening on queue %s", c.queue)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			c.dispatch(ctx, d)
		}
	}
}

func (c *Consumer) dispatch(ctx context.Context, d amqp.Delivery) {
	if err := c.Handle(ctx, d.Body); err != nil {
		c.logger.Error("Consumer: message id=%s rejected: %v", d.MessageId, err)
		// без повторной постановки, чтобы битое сообщение не зациклилось
		_ = d.Nack(false, false)
		return
	}
	_ = d.Ack(false)
}

// Handle декодирует тело сообщения и вызывает обработчик
func (c *Consumer) Handle(ctx context.Context, body []byte) error {
	event, err := DecodeEvent(body)
	if err != nil {
		return err
	}
	return c.handler(ctx, event)
}

// DecodeEvent разбирает JSON тела сообщения
func DecodeEvent(body []byte) (*ReservationConfirmedEvent, error) {
	var event ReservationConfirmedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if event.ReservationID <= 0 {
		return nil, fmt.Errorf("%w: missing reservation id", ErrDecode)
	}
	return &event, nil
}
