package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/most-gh/mddroner-booking/pkg/ptr"
)

func TestEstimate_AllAddOns(t *testing.T) {
	total := Estimate(DefaultPrices(), Selection{
		MultipleVehicles: true,
		ExtraVehicles:    ptr.Ptr(2),
		VideoUpgrade:     true,
		VideoLocations:   ptr.Ptr(3),
	})
	assert.Equal(t, 2800+800*2+500*3, total)
	assert.Equal(t, 5900, total)
}

func TestEstimate_BaseOnly(t *testing.T) {
	assert.Equal(t, 2800, Estimate(DefaultPrices(), Selection{}))
}

func TestEstimate_IgnoresMissingOrNonPositiveCounts(t *testing.T) {
	cases := []struct {
		name string
		sel  Selection
	}{
		{"multiple vehicles without count", Selection{MultipleVehicles: true}},
		{"multiple vehicles zero", Selection{MultipleVehicles: true, ExtraVehicles: ptr.Ptr(0)}},
		{"multiple vehicles negative", Selection{MultipleVehicles: true, ExtraVehicles: ptr.Ptr(-3)}},
		{"video without count", Selection{VideoUpgrade: true}},
		{"video zero", Selection{VideoUpgrade: true, VideoLocations: ptr.Ptr(0)}},
		{"count without flag", Selection{ExtraVehicles: ptr.Ptr(2), VideoLocations: ptr.Ptr(2)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, 2800, Estimate(DefaultPrices(), tc.sel))
		})
	}
}

func TestEstimate_CustomPrices(t *testing.T) {
	prices := Prices{Base: 1000, PerVehicle: 100, PerVideo: 10}
	q := Breakdown(prices, Selection{
		MultipleVehicles: true,
		ExtraVehicles:    ptr.Ptr(1),
		VideoUpgrade:     true,
		VideoLocations:   ptr.Ptr(2),
	})
	assert.Equal(t, Quote{Base: 1000, Vehicles: 100, Video: 20, Total: 1120}, q)
}

func TestParseCount(t *testing.T) {
	assert.Equal(t, 3, *ParseCount("3"))
	assert.Equal(t, -1, *ParseCount(" -1 "))
	assert.Nil(t, ParseCount(""))
	assert.Nil(t, ParseCount("two"))
	assert.Nil(t, ParseCount("1.5"))
}
