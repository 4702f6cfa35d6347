package wizard

import (
	"strings"

	"github.com/most-gh/mddroner-booking/internal/domain"
)

// RouteSeparator разделитель названий локаций в маршруте
const RouteSeparator = " / "

// Draft данные, накопленные формой
type Draft struct {
	Locations []string // ключи каталога в порядке выбора

	Name        string
	Phone       string
	CarModel    string
	CarPlate    string
	BookingDate string

	MultipleVehicles bool
	ExtraVehicles    int
	VideoUpgrade     bool
	SpecialRequests  string
}

func (d Draft) clone() Draft {
	c := d
	c.Locations = append([]string(nil), d.Locations...)
	return c
}

// Route названия выбранных локаций через " / " в порядке выбора
func (d Draft) Route() string {
	names := make([]string, 0, len(d.Locations))
	for _, key := range d.Locations {
		if loc, ok := domain.LocationByKey(key); ok {
			names = append(names, loc.Name)
		}
	}
	return strings.Join(names, RouteSeparator)
}

// HasLocation выбрана ли локация
func (d Draft) HasLocation(key string) bool {
	for _, k := range d.Locations {
		if k == key {
			return true
		}
	}
	return false
}

// missingContact обязательные поля шага 2, которые пусты
func (d Draft) missingContact() []string {
	var missing []string
	required := []struct {
		field string
		value string
	}{
		{"name", d.Name},
		{"phone", d.Phone},
		{"carModel", d.CarModel},
		{"bookingDate", d.BookingDate},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.field)
		}
	}
	return missing
}
