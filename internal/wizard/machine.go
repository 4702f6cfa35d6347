package wizard

import (
	"context"
	"fmt"

	"github.com/most-gh/mddroner-booking/internal/domain"
	"github.com/most-gh/mddroner-booking/internal/service/pricing"
)

// Step шаг формы бронирования
type Step int

const (
	StepLocations Step = iota + 1
	StepContact
	StepAddOns
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepLocations:
		return "選擇地點"
	case StepContact:
		return "聯絡及車輛資料"
	case StepAddOns:
		return "附加服務"
	case StepReview:
		return "確認預約"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Submission данные, отправляемые в POST /api/v1/bookings
type Submission struct {
	Route            string  `json:"route"`
	Name             string  `json:"name"`
	Phone            string  `json:"phone"`
	CarModel         string  `json:"carModel"`
	CarPlate         *string `json:"carPlate,omitempty"`
	BookingDate      string  `json:"bookingDate"`
	SpecialRequests  *string `json:"specialRequests,omitempty"`
	MultipleVehicles bool    `json:"multipleVehicles"`
	VideoUpgrade     bool    `json:"videoUpgrade"`
}

// Submitter отправляет заявку
type Submitter interface {
	Submit(ctx context.Context, s Submission) error
}

// Machine неизменяемое состояние формы
// Каждый переход возвращает новое значение с копией черновика
type Machine struct {
	step   Step
	draft  Draft
	prices pricing.Prices
}

// New пустая форма на первом шаге
func New(prices pricing.Prices) Machine {
	return Machine{step: StepLocations, prices: prices}
}

// Step текущий шаг
func (m Machine) Step() Step {
	return m.step
}

// Draft копия черновика
func (m Machine) Draft() Draft {
	return m.draft.clone()
}

// Estimate оценка стоимости по текущему черновику
// Число локаций с видео равно числу выбранных локаций
func (m Machine) Estimate() pricing.Quote {
	extra := m.draft.ExtraVehicles
	videoLocations := len(m.draft.Locations)

	return pricing.Breakdown(m.prices, pricing.Selection{
		MultipleVehicles: m.draft.MultipleVehicles,
		ExtraVehicles:    &extra,
		VideoUpgrade:     m.draft.VideoUpgrade,
		VideoLocations:   &videoLocations,
	})
}

// ToggleLocation добавляет или убирает локацию
func (m Machine) ToggleLocation(key string) (Machine, error) {
	if _, ok := domain.LocationByKey(key); !ok {
		return m, fmt.Errorf("%w: %q", ErrUnknownLocation, key)
	}

	next := m.with(m.step)
	if next.draft.HasLocation(key) {
		kept := next.draft.Locations[:0]
		for _, k := range next.draft.Locations {
			if k != key {
				kept = append(kept, k)
			}
		}
		next.draft.Locations = kept
		return next, nil
	}

	next.draft.Locations = append(next.draft.Locations, key)
	return next, nil
}

// Edit меняет поля черновика на копии
func (m Machine) Edit(fn func(d *Draft)) Machine {
	next := m.with(m.step)
	fn(&next.draft)
	return next
}

// Next переход на следующий шаг, если текущий заполнен
func (m Machine) Next() (Machine, error) {
	switch m.step {
	case StepLocations:
		if len(m.draft.Locations) == 0 {
			return m, &IncompleteError{Step: m.step, Fields: []string{"locations"}}
		}
	case StepContact:
		if missing := m.draft.missingContact(); len(missing) > 0 {
			return m, &IncompleteError{Step: m.step, Fields: missing}
		}
	case StepAddOns:
	case StepReview:
		return m, ErrNoNextStep
	}

	return m.with(m.step + 1), nil
}

// Back возврат на предыдущий шаг без потери данных
func (m Machine) Back() (Machine, error) {
	if m.step == StepLocations {
		return m, ErrNoPreviousStep
	}
	return m.with(m.step - 1), nil
}

// Submission заявка из текущего черновика
func (m Machine) Submission() Submission {
	s := Submission{
		Route:            m.draft.Route(),
		Name:             m.draft.Name,
		Phone:            m.draft.Phone,
		CarModel:         m.draft.CarModel,
		BookingDate:      m.draft.BookingDate,
		MultipleVehicles: m.draft.MultipleVehicles,
		VideoUpgrade:     m.draft.VideoUpgrade,
	}
	if m.draft.CarPlate != "" {
		plate := m.draft.CarPlate
		s.CarPlate = &plate
	}
	if m.draft.SpecialRequests != "" {
		requests := m.draft.SpecialRequests
		s.SpecialRequests = &requests
	}
	return s
}

// Submit отправляет заявку с шага подтверждения
// Успех: новая пустая форма на первом шаге. Ошибка: форма остается на шаге подтверждения
func (m Machine) Submit(ctx context.Context, submitter Submitter) (Machine, error) {
	if m.step != StepReview {
		return m, ErrNotAtReview
	}

	if err := submitter.Submit(ctx, m.Submission()); err != nil {
		return m, err
	}

	return New(m.prices), nil
}

func (m Machine) with(step Step) Machine {
	return Machine{step: step, draft: m.draft.clone(), prices: m.prices}
}
