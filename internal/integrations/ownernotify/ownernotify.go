package ownernotify

import (
	"context"
	"fmt"
	"time"

	"github.com/most-gh/mddroner-booking/internal/config"
	"github.com/most-gh/mddroner-booking/internal/integrations/rabbitmq"
	"github.com/most-gh/mddroner-booking/internal/integrations/telegram"
	"github.com/most-gh/mddroner-booking/internal/integrations/webhook"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Notifier канал доставки уведомлений владельцу
type Notifier interface {
	Name() string
	NotifyOwner(ctx context.Context, title, content string) error
}

// LogNotifier пишет уведомление в лог вместо отправки
// Используется при notifier.kind = "none" (локальная разработка)
type LogNotifier struct {
	log Logger
}

// NewLogNotifier создает LogNotifier
func NewLogNotifier(log Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Name возвращает название канала
func (n *LogNotifier) Name() string {
	return config.NotifierNone
}

// NotifyOwner логирует уведомление
func (n *LogNotifier) NotifyOwner(_ context.Context, title, content string) error {
	n.log.Info("Owner notification (not delivered): %s\n%s", title, content)
	return nil
}

// New создает Notifier по notifier.kind
func New(cfg config.NotifierConfig, log Logger) (Notifier, error) {
	timeout := time.Duration(cfg.Timeout) * time.Second

	switch cfg.Kind {
	case config.NotifierNone, "":
		log.Warn("Owner notifications are disabled, submissions will only be logged")
		return NewLogNotifier(log), nil
	case config.NotifierTelegram:
		client, err := telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID, timeout, log)
		if err != nil {
			return nil, err
		}
		return client, nil
	case config.NotifierWebhook:
		return webhook.NewClient(cfg.Webhook.URL, cfg.Webhook.APIKey, timeout, log), nil
	case config.NotifierRabbitMQ:
		return rabbitmq.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue, log), nil
	default:
		return nil, fmt.Errorf("%w: unknown notifier kind %q", config.ErrInvalidConfig, cfg.Kind)
	}
}
