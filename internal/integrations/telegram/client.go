package telegram

import (
	"context"
	"fmt"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ChannelName название канала для логов и метрик
const ChannelName = "telegram"

// Sender часть tgbotapi.BotAPI, которая нужна клиенту
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client отправляет уведомления владельцу в Telegram чат
type Client struct {
	api    Sender
	chatID int64
	log    Logger
}

// NewClient создает клиента Telegram Bot API
// Конструктор делает запрос getMe, поэтому невалидный токен обнаружится сразу
// timeout ограничивает каждый HTTP запрос к Bot API
func NewClient(token string, chatID int64, timeout time.Duration, log Logger) (*Client, error) {
	if token == "" || chatID == 0 {
		return nil, ErrInvalidConfig
	}

	api, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, &http.Client{Timeout: timeout})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to authorize bot: %v", ErrInvalidConfig, err)
	}

	log.Info("Telegram bot authorized as @%s, owner chat=%d", api.Self.UserName, chatID)
	return NewClientWithSender(api, chatID, log), nil
}

// NewClientWithSender создает клиента поверх готового Sender
func NewClientWithSender(api Sender, chatID int64, log Logger) *Client {
	return &Client{api: api, chatID: chatID, log: log}
}

// Name возвращает название канала
func (c *Client) Name() string {
	return ChannelName
}

// NotifyOwner отправляет заголовок и текст одним сообщением
// Сообщение отправляется без parse mode: имена и номера клиентов не экранируются
// Send не принимает контекст, поэтому ожидание ответа прерывается по ctx.Done
func (c *Client) NotifyOwner(ctx context.Context, title, content string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}

	msg := tgbotapi.NewMessage(c.chatID, title+"\n\n"+content)
	msg.DisableWebPagePreview = true

	done := make(chan error, 1)
	go func() {
		_, err := c.api.Send(msg)
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("%w: chat=%d: %v", ErrSend, c.chatID, err)
		}
	case <-ctx.Done():
		return fmt.Errorf("%w: chat=%d: %v", ErrSend, c.chatID, ctx.Err())
	}

	c.log.Info("Owner notification sent to telegram chat=%d", c.chatID)
	return nil
}
