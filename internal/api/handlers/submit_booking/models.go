package submit_booking

import (
	submitBooking "github.com/most-gh/mddroner-booking/internal/usecase/submit_booking"
)

// SubmitBookingRequest тело запроса публичной формы
type SubmitBookingRequest struct {
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SubmitBookingRequest) ToUseCaseRequest() *submitBooking.Request {
	return &submitBooking.Request{
		Route:            r.Route,
		Name:             r.Name,
		Phone:            r.Phone,
		CarModel:         r.CarModel,
		CarPlate:         r.CarPlate,
		BookingDate:      r.BookingDate,
		SpecialRequests:  r.SpecialRequests,
		MultipleVehicles: r.MultipleVehicles,
		VideoUpgrade:     r.VideoUpgrade,
	}
}
