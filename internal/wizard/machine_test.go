package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/most-gh/mddroner-booking/internal/service/pricing"
)

type fakeSubmitter struct {
	got []Submission
	err error
}

func (f *fakeSubmitter) Submit(_ context.Context, s Submission) error {
	f.got = append(f.got, s)
	return f.err
}

func fillContact(d *Draft) {
	d.Name = "李明"
	d.Phone = "+852 9876 5432"
	d.CarModel = "Porsche 911"
	d.BookingDate = "2025-02-20"
}

// reviewMachine форма, дошедшая до шага подтверждения
func reviewMachine(t *testing.T) Machine {
	t.Helper()

	m := New(pricing.DefaultPrices())
	m, err := m.ToggleLocation("classic")
	require.NoError(t, err)
	m, err = m.ToggleLocation("coastal")
	require.NoError(t, err)
	m, err = m.Next()
	require.NoError(t, err)

	m = m.Edit(fillContact)
	m, err = m.Next()
	require.NoError(t, err)

	m = m.Edit(func(d *Draft) {
		d.MultipleVehicles = true
		d.ExtraVehicles = 2
		d.VideoUpgrade = true
	})
	m, err = m.Next()
	require.NoError(t, err)
	require.Equal(t, StepReview, m.Step())
	return m
}

func TestMachine_LeavingStepOneNeedsLocation(t *testing.T) {
	m := New(pricing.DefaultPrices())

	same, err := m.Next()
	assert.ErrorIs(t, err, ErrIncomplete)
	assert.Equal(t, StepLocations, same.Step())
}

func TestMachine_LeavingStepTwoNeedsContact(t *testing.T) {
	m, _ := New(pricing.DefaultPrices()).ToggleLocation("industrial")
	m, _ = m.Next()

	m = m.Edit(func(d *Draft) { d.Name = "李明"; d.Phone = "  " })
	_, err := m.Next()

	var incomplete *IncompleteError
	require.True(t, errors.As(err, &incomplete))
	assert.Equal(t, StepContact, incomplete.Step)
	assert.Equal(t, []string{"phone", "carModel", "bookingDate"}, incomplete.Fields)
}

func TestMachine_TransitionsDoNotShareDraft(t *testing.T) {
	m1, _ := New(pricing.DefaultPrices()).ToggleLocation("classic")
	m2, _ := m1.ToggleLocation("coastal")

	assert.Equal(t, []string{"classic"}, m1.Draft().Locations)
	assert.Equal(t, []string{"classic", "coastal"}, m2.Draft().Locations)

	m3, _ := m2.ToggleLocation("classic")
	assert.Equal(t, []string{"coastal"}, m3.Draft().Locations)
	assert.Equal(t, []string{"classic", "coastal"}, m2.Draft().Locations)

	d := m2.Draft()
	d.Locations[0] = "industrial"
	assert.Equal(t, []string{"classic", "coastal"}, m2.Draft().Locations)
}

func TestMachine_BackKeepsData(t *testing.T) {
	m := reviewMachine(t)

	back, err := m.Back()
	require.NoError(t, err)
	assert.Equal(t, StepAddOns, back.Step())
	assert.Equal(t, m.Draft(), back.Draft())

	back, _ = back.Back()
	back, _ = back.Back()
	assert.Equal(t, StepLocations, back.Step())

	_, err = back.Back()
	assert.ErrorIs(t, err, ErrNoPreviousStep)

	_, err = m.Next()
	assert.ErrorIs(t, err, ErrNoNextStep)
}

func TestMachine_RouteAndEstimate(t *testing.T) {
	m := reviewMachine(t)

	assert.Equal(t, "經典山道 / 海岸秘境", m.Draft().Route())
	// 2800 + 2*800 + 2 локации * 500
	assert.Equal(t, 5400, m.Estimate().Total)
}

func TestMachine_SubmitOnlyFromReview(t *testing.T) {
	s := &fakeSubmitter{}
	m, _ := New(pricing.DefaultPrices()).ToggleLocation("classic")

	_, err := m.Submit(context.Background(), s)
	assert.ErrorIs(t, err, ErrNotAtReview)
	assert.Empty(t, s.got)
}

func TestMachine_SubmitSuccessResets(t *testing.T) {
	s := &fakeSubmitter{}
	m := reviewMachine(t)

	next, err := m.Submit(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, StepLocations, next.Step())
	assert.Equal(t, Draft{}, next.Draft())

	require.Len(t, s.got, 1)
	got := s.got[0]
	assert.Equal(t, "經典山道 / 海岸秘境", got.Route)
	assert.Equal(t, "李明", got.Name)
	assert.Nil(t, got.CarPlate)
	assert.True(t, got.MultipleVehicles)
	assert.True(t, got.VideoUpgrade)
}

func TestMachine_SubmitFailureStaysAtReview(t *testing.T) {
	s := &fakeSubmitter{err: errors.New("503")}
	m := reviewMachine(t)

	same, err := m.Submit(context.Background(), s)
	assert.Error(t, err)
	assert.Equal(t, StepReview, same.Step())
	assert.Equal(t, m.Draft(), same.Draft())

	// повторная попытка без повторного ввода
	s.err = nil
	_, err = same.Submit(context.Background(), s)
	assert.NoError(t, err)
	assert.Len(t, s.got, 2)
}

func TestMachine_UnknownLocation(t *testing.T) {
	_, err := New(pricing.DefaultPrices()).ToggleLocation("desert")
	assert.ErrorIs(t, err, ErrUnknownLocation)
}
