package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/most-gh/mddroner-booking/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrNotesTooLong возвращается, если заметка длиннее domain.MaxNotesLength
	ErrNotesTooLong = errors.New("notes too long")
)

// Request модели

// UpdateBookingRequest частичное обновление бронирования администратором
type UpdateBookingRequest struct {
	Status *string `json:"status,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

// ToDomainUpdate конвертирует request в domain.BookingUpdate
func (r *UpdateBookingRequest) ToDomainUpdate() (domain.BookingUpdate, error) {
	var update domain.BookingUpdate

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return update, err
		}
		update.Status = &status
	}

	if r.Notes != nil {
		if len([]rune(*r.Notes)) > domain.MaxNotesLength {
			return update, fmt.Errorf("%w: max %d characters", ErrNotesTooLong, domain.MaxNotesLength)
		}
		notes := *r.Notes
		update.Notes = &notes
	}

	return update, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID               int64     `json:"id"`
	Route            string    `json:"route"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	CarModel         string    `json:"carModel"`
	CarPlate         *string   `json:"carPlate"`
	BookingDate      string    `json:"bookingDate"` // "2025-02-15"
	SpecialRequests  *string   `json:"specialRequests"`
	MultipleVehicles bool      `json:"multipleVehicles"`
	VideoUpgrade     bool      `json:"videoUpgrade"`
	Status           string    `json:"status"`
	Notes            *string   `json:"notes"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// SuccessResponse подтверждение мутации
type SuccessResponse struct {
	Success bool `json:"success"`
}

// Конвертеры

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:               b.ID,
		Route:            b.Route,
		Name:             b.Name,
		Phone:            b.Phone,
		CarModel:         b.CarModel,
		CarPlate:         b.CarPlate,
		BookingDate:      b.BookingDate,
		SpecialRequests:  b.SpecialRequests,
		MultipleVehicles: b.MultipleVehicles,
		VideoUpgrade:     b.VideoUpgrade,
		Status:           string(b.Status),
		Notes:            b.Notes,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

// FromDomainBookings конвертирует список, пустой список остается пустым массивом в JSON
func FromDomainBookings(bookings []*domain.Booking) []*BookingResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return result
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(strings.TrimSpace(s))
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return status, nil
}
