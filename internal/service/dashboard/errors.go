package dashboard

import (
	"errors"

	"github.com/most-gh/mddroner-booking/internal/service/authz"
)

var (
	// ErrAccessDenied возвращается, когда у вызывающего нет роли admin
	ErrAccessDenied = authz.ErrForbidden

	// ErrInvalidFilter возвращается при некорректном месяце, статусе или формате выгрузки
	ErrInvalidFilter = errors.New("dashboard: invalid filter")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("dashboard: internal error")
)
