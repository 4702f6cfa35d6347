package rabbitmq

import "errors"

var (
	// ErrConnect возвращается, если не удалось подключиться к брокеру или открыть канал
	ErrConnect = errors.New("rabbitmq publisher: connection failed")

	// ErrPublish возвращается, если брокер не принял сообщение
	ErrPublish = errors.New("rabbitmq publisher: publish failed")
)
