package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// defaultRedialDelay пауза между попытками подключения после неудачного dial
const defaultRedialDelay = 5 * time.Second

// Publisher публикует события о подтверждённых бронированиях в очередь RabbitMQ
// Соединение открывается лениво и пересоздаётся после ошибки публикации.
// Подключение и публикация вместе ограничены timeout; после неудачного подключения
// вызовы до nextDial сразу возвращают ErrConnect, не дожидаясь брокера
type Publisher struct {
	url         string
	queue       string
	timeout     time.Duration
	redialDelay time.Duration
	logger      Logger
	dial        dialFunc
	now         func() time.Time

	mu       sync.Mutex
	ch       channel
	closeFn  func() error
	nextDial time.Time
}

// NewPublisher создает публикатор для очереди queue
func NewPublisher(url, queue string, timeout time.Duration, logger Logger) *Publisher {
	return &Publisher{
		url:         url,
		queue:       queue,
		timeout:     timeout,
		redialDelay: defaultRedialDelay,
		logger:      logger,
		dial:        dialAMQP,
		now:         time.Now,
	}
}

// PublishReservationConfirmed публикует событие как persistent JSON-сообщение
func (p *Publisher) PublishReservationConfirmed(ctx context.Context, event *ReservationConfirmedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal event: %v", ErrPublish, err)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.connect(ctx)
	if err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Type:         EventReservationConfirmed,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		p.reset()
		return fmt.Errorf("%w: reservation id=%d: %v", ErrPublish, event.ReservationID, err)
	}

	p.logger.Info("PublishReservationConfirmed: reservation id=%d published, message id=%s", event.ReservationID, msg.MessageId)
	return nil
}

// Close закрывает соединение с брокером
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closeFn == nil {
		return nil
	}
	err := p.closeFn()
	p.ch, p.closeFn = nil, nil
	return err
}

type dialResult struct {
	ch      channel
	closeFn func() error
	err     error
}

// connect возвращает открытый канал, при необходимости подключаясь и объявляя очередь
// Ожидание подключения прерывается по ctx; опоздавшее соединение закрывается в фоне
func (p *Publisher) connect(ctx context.Context) (channel, error) {
	if p.ch != nil {
		return p.ch, nil
	}

	if now := p.now(); now.Before(p.nextDial) {
		return nil, fmt.Errorf("%w: broker unavailable, next attempt in %s", ErrConnect, p.nextDial.Sub(now).Round(time.Millisecond))
	}

	results := make(chan dialResult, 1)
	go func() {
		ch, closeFn, err := p.dial(p.url, p.timeout)
		results <- dialResult{ch: ch, closeFn: closeFn, err: err}
	}()

	var res dialResult
	select {
	case res = <-results:
	case <-ctx.Done():
		go func() {
			if late := <-results; late.err == nil {
				_ = late.closeFn()
			}
		}()
		p.nextDial = p.now().Add(p.redialDelay)
		return nil, fmt.Errorf("%w: dial: %v", ErrConnect, ctx.Err())
	}

	if res.err != nil {
		p.nextDial = p.now().Add(p.redialDelay)
		return nil, fmt.Errorf("%w: %v", ErrConnect, res.err)
	}

	if _, err := res.ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		_ = res.closeFn()
		p.nextDial = p.now().Add(p.redialDelay)
		return nil, fmt.Errorf("%w: declare queue %s: %v", ErrConnect, p.queue, err)
	}

	p.ch, p.closeFn = res.ch, res.closeFn
	p.nextDial = time.Time{}
	return res.ch, nil
}

func (p *Publisher) reset() {
	if p.closeFn != nil {
		if err := p.closeFn(); err != nil {
			p.logger.Warn("Publisher: failed to close broken connection: %v", err)
		}
	}
	p.ch, p.closeFn = nil, nil
}

// NopPublisher используется, когда брокер отключён в конфигурации
type NopPublisher struct {
	logger Logger
}

func NewNopPublisher(logger Logger) *NopPublisher {
	return &NopPublisher{logger: logger}
}

func (p *NopPublisher) PublishReservationConfirmed(_ context.Context, event *ReservationConfirmedEvent) error {
	p.logger.Info("PublishReservationConfirmed: broker disabled, skipping reservation id=%d", event.ReservationID)
	return nil
}
