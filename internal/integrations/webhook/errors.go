package webhook

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("webhook client: internal error")

	// ErrInvalidResponse возвращается, если получатель ответил не 2xx
	ErrInvalidResponse = errors.New("webhook client: invalid response")

	// ErrUnauthorized возвращается, если получатель отклонил API ключ
	ErrUnauthorized = errors.New("webhook client: unauthorized")
)
