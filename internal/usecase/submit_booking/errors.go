package submit_booking

import (
	"errors"
	"strings"
)

var (
	// ErrValidation возвращается, если не заполнены обязательные поля заявки
	ErrValidation = errors.New("submit_booking: validation failed")

	// ErrInternal возвращается при ошибке сохранения заявки
	ErrInternal = errors.New("submit_booking: internal error")
)

// ValidationError перечисляет все незаполненные или некорректные поля
// errors.Is(err, ErrValidation) для нее возвращает true
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": invalid fields " + strings.Join(e.Fields, ", ")
}

// Is сопоставляет ValidationError с ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
