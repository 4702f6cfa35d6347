package telegram

import (
	"context"
	"errors"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/most-gh/mddroner-booking/pkg/logger"
)

type fakeSender struct {
	sent []tgbotapi.Chattable
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if f.err != nil {
		return tgbotapi.Message{}, f.err
	}
	f.sent = append(f.sent, c)
	return tgbotapi.Message{MessageID: len(f.sent)}, nil
}

// blockingSender отвечает только после закрытия release
type blockingSender struct {
	release chan struct{}
}

func (b *blockingSender) Send(tgbotapi.Chattable) (tgbotapi.Message, error) {
	<-b.release
	return tgbotapi.Message{}, nil
}

func TestClient_NotifyOwner(t *testing.T) {
	sender := &fakeSender{}
	client := NewClientWithSender(sender, 4242, logger.Nop())

	err := client.NotifyOwner(context.Background(), "新的 MDDroner 預約申請", "• 姓名: 李明")
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	msg, ok := sender.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(4242), msg.ChatID)
	assert.Equal(t, "新的 MDDroner 預約申請\n\n• 姓名: 李明", msg.Text)
	assert.Empty(t, msg.ParseMode)
}

func TestClient_NotifyOwner_SendError(t *testing.T) {
	client := NewClientWithSender(&fakeSender{err: errors.New("Forbidden: bot was blocked")}, 1, logger.Nop())

	err := client.NotifyOwner(context.Background(), "t", "c")
	assert.ErrorIs(t, err, ErrSend)
}

func TestClient_NotifyOwner_CancelledContext(t *testing.T) {
	sender := &fakeSender{}
	client := NewClientWithSender(sender, 1, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.NotifyOwner(ctx, "t", "c")
	assert.ErrorIs(t, err, ErrSend)
	assert.Empty(t, sender.sent)
}

func TestClient_NotifyOwner_DeadlineStopsWaiting(t *testing.T) {
	sender := &blockingSender{release: make(chan struct{})}
	t.Cleanup(func() { close(sender.release) })
	client := NewClientWithSender(sender, 1, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := client.NotifyOwner(ctx, "t", "c")

	assert.ErrorIs(t, err, ErrSend)
	assert.Contains(t, err.Error(), context.DeadlineExceeded.Error())
	assert.Less(t, time.Since(start), time.Second)
}

func TestNewClient_InvalidConfig(t *testing.T) {
	_, err := NewClient("", 1, time.Second, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewClient("token", 0, time.Second, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
