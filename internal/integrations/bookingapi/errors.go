package bookingapi

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("booking api client: internal error")

	// ErrValidation возвращается, если сервер отклонил заявку (400)
	ErrValidation = errors.New("booking api client: validation failed")

	// ErrRateLimited возвращается при 429
	ErrRateLimited = errors.New("booking api client: rate limited")

	// ErrInvalidResponse возвращается при прочих не 2xx ответах
	ErrInvalidResponse = errors.New("booking api client: invalid response")
)
