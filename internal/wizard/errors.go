package wizard

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrIncomplete возвращается, если текущий шаг не заполнен
	ErrIncomplete = errors.New("wizard: step is incomplete")

	// ErrNoNextStep возвращается при Next на шаге подтверждения
	ErrNoNextStep = errors.New("wizard: already at review step")

	// ErrNoPreviousStep возвращается при Back на первом шаге
	ErrNoPreviousStep = errors.New("wizard: already at first step")

	// ErrNotAtReview возвращается при Submit не с шага подтверждения
	ErrNotAtReview = errors.New("wizard: submit is only possible from review step")

	// ErrUnknownLocation возвращается для ключа не из каталога
	ErrUnknownLocation = errors.New("wizard: unknown location")
)

// IncompleteError перечисляет незаполненные поля шага
type IncompleteError struct {
	Step   Step
	Fields []string
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("%s: step %d missing %s", ErrIncomplete, e.Step, strings.Join(e.Fields, ", "))
}

// Is сопоставляет IncompleteError с ErrIncomplete
func (e *IncompleteError) Is(target error) bool {
	return target == ErrIncomplete
}
