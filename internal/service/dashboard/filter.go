package dashboard

import (
	"fmt"
	"time"

	"github.com/most-gh/mddroner-booking/internal/domain"
)

// FilterBookings оставляет бронирования нужного месяца и статуса, сохраняя порядок
func FilterBookings(bookings []*domain.Booking, month, status string) []*domain.Booking {
	result := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Month() != month {
			continue
		}
		if status != domain.StatusFilterAll && string(b.Status) != status {
			continue
		}
		result = append(result, b)
	}
	return result
}

// CountStats считает бронирования по статусам
func CountStats(bookings []*domain.Booking) Stats {
	var stats Stats
	for _, b := range bookings {
		stats.add(b.Status)
	}
	return stats
}

// normalizeFilter подставляет значения по умолчанию и проверяет фильтр
func normalizeFilter(f Filter, now time.Time) (Filter, error) {
	if f.Month == "" {
		f.Month = domain.CurrentMonth(now)
	}
	if _, err := time.Parse(domain.MonthFormat, f.Month); err != nil || len(f.Month) != len(domain.MonthFormat) {
		return f, fmt.Errorf("%w: month must be YYYY-MM, got %q", ErrInvalidFilter, f.Month)
	}

	if f.Status == "" {
		f.Status = domain.StatusFilterAll
	}
	if f.Status != domain.StatusFilterAll && !domain.BookingStatus(f.Status).IsValid() {
		return f, fmt.Errorf("%w: unknown status %q", ErrInvalidFilter, f.Status)
	}

	return f, nil
}
