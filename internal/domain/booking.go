package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// AllStatuses lists every status a booking may hold, in dashboard order
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// IsValid reports whether the status is one of the four known values
func (s BookingStatus) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Label returns the dashboard label of the status
func (s BookingStatus) Label() string {
	switch s {
	case StatusPending:
		return "待確認"
	case StatusConfirmed:
		return "已確認"
	case StatusCompleted:
		return "已完成"
	case StatusCancelled:
		return "已取消"
	default:
		return string(s)
	}
}

// Booking represents a drone-photography booking request
type Booking struct {
	ID               int64
	Route            string
	Name             string
	Phone            string
	CarModel         string
	CarPlate         *string
	BookingDate      string // YYYY-MM-DD, kept as submitted
	SpecialRequests  *string
	MultipleVehicles bool
	VideoUpgrade     bool
	Status           BookingStatus
	Notes            *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Month returns the YYYY-MM prefix of the booking date
func (b *Booking) Month() string {
	if len(b.BookingDate) < len(MonthFormat) {
		return b.BookingDate
	}
	return b.BookingDate[:len(MonthFormat)]
}

// BookingUpdate holds the admin-editable fields; nil means "leave untouched"
type BookingUpdate struct {
	Status *BookingStatus
	Notes  *string
}

// IsEmpty reports whether no field is set
func (u BookingUpdate) IsEmpty() bool {
	return u.Status == nil && u.Notes == nil
}
