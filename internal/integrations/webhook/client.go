package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ChannelName название канала для логов и метрик
const ChannelName = "webhook"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client отправляет уведомления владельцу POST запросом на внешний URL
type Client struct {
	url        string
	apiKey     string
	httpClient *http.Client
	log        Logger
	now        func() time.Time
}

// NewClient создает новый экземпляр webhook клиента
func NewClient(url, apiKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		url:    url,
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
		now: time.Now,
	}
}

// Name возвращает название канала
func (c *Client) Name() string {
	return ChannelName
}

// NotifyOwner отправляет уведомление владельцу
func (c *Client) NotifyOwner(ctx context.Context, title, content string) error {
	body, err := json.Marshal(OwnerNotification{
		Title:   title,
		Content: content,
		SentAt:  c.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		c.log.Info("Owner notification delivered to webhook, status=%d", resp.StatusCode)
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: status code %d", ErrUnauthorized, resp.StatusCode)
	default:
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}
