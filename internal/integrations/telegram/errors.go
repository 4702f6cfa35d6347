package telegram

import "errors"

var (
	// ErrInvalidConfig возвращается при пустом токене или chat id
	ErrInvalidConfig = errors.New("telegram client: invalid config")

	// ErrSend возвращается, когда Telegram API не принял сообщение
	ErrSend = errors.New("telegram client: failed to send message")
)
