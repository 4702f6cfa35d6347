package submit_booking

// Request данные публичной формы бронирования
type Request struct {
	Route            string
	Name             string
	Phone            string
	CarModel         string
	CarPlate         *string
	BookingDate      string
	SpecialRequests  *string
	MultipleVehicles bool
	VideoUpgrade     bool
}

// Response подтверждение приема заявки
type Response struct {
	Success bool
}
