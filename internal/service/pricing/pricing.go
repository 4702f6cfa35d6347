package pricing

import (
	"strconv"
	"strings"

	"github.com/most-gh/mddroner-booking/internal/domain"
)

// Prices прайс на базовый пакет и доп. опции
type Prices struct {
	Base       int `json:"basePrice"`
	PerVehicle int `json:"perVehiclePrice"`
	PerVideo   int `json:"perVideoPrice"`
}

// DefaultPrices цены с сайта: 2800 + 800 за машину + 500 за локацию с видео
func DefaultPrices() Prices {
	return Prices{
		Base:       domain.DefaultBasePrice,
		PerVehicle: domain.DefaultPerVehiclePrice,
		PerVideo:   domain.DefaultPerVideoPrice,
	}
}

// Selection выбранные клиентом опции
// Счетчики nil, 0 или отрицательные считаются не указанными
type Selection struct {
	MultipleVehicles bool
	ExtraVehicles    *int
	VideoUpgrade     bool
	VideoLocations   *int
}

// Quote разбивка итоговой суммы
type Quote struct {
	Base     int `json:"base"`
	Vehicles int `json:"vehicles"`
	Video    int `json:"video"`
	Total    int `json:"total"`
}

// Breakdown считает стоимость по позициям
func Breakdown(p Prices, s Selection) Quote {
	q := Quote{Base: p.Base}

	if s.MultipleVehicles {
		if n := positive(s.ExtraVehicles); n > 0 {
			q.Vehicles = p.PerVehicle * n
		}
	}
	if s.VideoUpgrade {
		if n := positive(s.VideoLocations); n > 0 {
			q.Video = p.PerVideo * n
		}
	}

	q.Total = q.Base + q.Vehicles + q.Video
	return q
}

// Estimate возвращает итоговую сумму
func Estimate(p Prices, s Selection) int {
	return Breakdown(p, s).Total
}

// ParseCount разбирает счетчик из строки; всё, что не целое число, считается не указанным
func ParseCount(raw string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &n
}

func positive(n *int) int {
	if n == nil || *n <= 0 {
		return 0
	}
	return *n
}
