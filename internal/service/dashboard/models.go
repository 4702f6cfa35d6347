package dashboard

import (
	"github.com/most-gh/mddroner-booking/internal/domain"
	"github.com/most-gh/mddroner-booking/internal/service/bookings/models"
)

// Форматы выгрузки
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Content types выгрузки
const (
	ContentTypeCSV  = "text/csv; charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Filter фильтр панели администратора
type Filter struct {
	Month  string // YYYY-MM, пустая строка означает текущий месяц в Гонконге
	Status string // "all" или один из статусов
}

// Stats счетчики по всему списку без учета фильтра
type Stats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

// Response данные панели администратора
type Response struct {
	Month    string                    `json:"month"`
	Status   string                    `json:"status"`
	Stats    Stats                     `json:"stats"`
	Bookings []*models.BookingResponse `json:"bookings"`
}

// Export готовый файл выгрузки
type Export struct {
	Filename    string
	ContentType string
	Body        []byte
}

// add учитывает одно бронирование в счетчиках
func (s *Stats) add(status domain.BookingStatus) {
	s.Total++
	switch status {
	case domain.StatusPending:
		s.Pending++
	case domain.StatusConfirmed:
		s.Confirmed++
	case domain.StatusCompleted:
		s.Completed++
	case domain.StatusCancelled:
		s.Cancelled++
	}
}
