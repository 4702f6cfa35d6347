package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// ChannelName название канала для логов и метрик
	ChannelName = "rabbitmq"

	// DefaultQueue очередь, из которой уведомления забирает бот владельца
	DefaultQueue = "booking.submitted"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Channel часть *amqp.Channel, которая нужна издателю
type Channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Dialer открывает соединение и канал; closeConn закрывает соединение
type Dialer func(url string) (ch Channel, closeConn func() error, err error)

// OwnerNotificationEvent сообщение в очереди
type OwnerNotificationEvent struct {
	Title   string    `json:"title"`
	Content string    `json:"content"`
	SentAt  time.Time `json:"sentAt"`
}

// Publisher публикует уведомления владельцу в очередь RabbitMQ
// Соединение открывается на каждую публикацию: заявки приходят редко
type Publisher struct {
	url   string
	queue string
	dial  Dialer
	log   Logger
	now   func() time.Time
}

// NewPublisher создает издателя поверх amqp091-go
func NewPublisher(url, queue string, log Logger) *Publisher {
	return NewPublisherWithDialer(url, queue, dialAMQP, log)
}

// NewPublisherWithDialer создает издателя с заданным способом подключения
func NewPublisherWithDialer(url, queue string, dial Dialer, log Logger) *Publisher {
	if queue == "" {
		queue = DefaultQueue
	}
	return &Publisher{url: url, queue: queue, dial: dial, log: log, now: time.Now}
}

func dialAMQP(url string) (Channel, func() error, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}

	return ch, conn.Close, nil
}

// Name возвращает название канала
func (p *Publisher) Name() string {
	return ChannelName
}

// NotifyOwner публикует уведомление в durable очередь как persistent сообщение
func (p *Publisher) NotifyOwner(ctx context.Context, title, content string) error {
	ch, closeConn, err := p.dial(p.url)
	if err != nil {
		return fmt.Errorf("%w: dial: %v", ErrConnect, err)
	}
	defer func() { _ = closeConn() }()
	defer func() { _ = ch.Close() }()

	// Объявление очереди идемпотентно
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("%w: queue declare %s: %v", ErrPublish, p.queue, err)
	}

	now := p.now().UTC()
	body, err := json.Marshal(OwnerNotificationEvent{Title: title, Content: content, SentAt: now})
	if err != nil {
		return fmt.Errorf("%w: marshal event: %v", ErrPublish, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    now,
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return fmt.Errorf("%w: queue %s: %v", ErrPublish, p.queue, err)
	}

	p.log.Info("Owner notification published to queue=%s", p.queue)
	return nil
}
