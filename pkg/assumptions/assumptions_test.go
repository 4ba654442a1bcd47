package assumptions

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupDefault(t *testing.T) {
	s, err := Lookup("")
	require.NoError(t, err)
	assert.Equal(t, DefaultVersion, s.Version)
	assert.Equal(t, Default(), s)
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("v0")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownVersion))
}

func TestVersionsSorted(t *testing.T) {
	assert.Equal(t, []string{"v1", "v2"}, Versions())
}

// The first published calculator's constants must stay reproducible.
func TestV1Pinned(t *testing.T) {
	s, err := Lookup("v1")
	require.NoError(t, err)

	assert.Equal(t, 490.0, s.Emissions.FossilElectricityGPerKWh)
	assert.Equal(t, 185.0, s.Emissions.FossilHeatGPerKWh)
	assert.Equal(t, 2680.0, s.Emissions.DieselGPerLiter)
	assert.Equal(t, 11.0, s.Emissions.CarbonFreeGPerKWh)
	assert.Equal(t, 4.0, s.Heat.HeatPumpCOP)
	assert.Equal(t, 11.9, s.Rail.DieselKWhPerLiter)
	assert.Equal(t, 0.73, s.Rail.ElectricLocomotiveEfficiency)
	assert.Equal(t, 52.5, s.Shipping.ElectrolysisAndCompressionKWhPerKg())
	assert.Equal(t, 0.70, s.Storage.RoundTripEfficiency)
	assert.Equal(t, HeadLegacyAdditive, s.Storage.HeadFormula)
}

func TestV2Overrides(t *testing.T) {
	s, err := Lookup("v2")
	require.NoError(t, err)

	assert.Equal(t, 820.0, s.Emissions.CoalElectricityGPerKWh)
	assert.Equal(t, 0.77, s.Storage.RoundTripEfficiency)
	assert.Equal(t, HeadPotentialEnergy, s.Storage.HeadFormula)

	// Everything else is inherited from v1.
	assert.Equal(t, V1.Rail, s.Rail)
	assert.Equal(t, V1.Shipping, s.Shipping)
	assert.Equal(t, V1.Storage.WindChargingHours, s.Storage.WindChargingHours)

	// Deriving v2 must not have mutated v1.
	assert.Equal(t, HeadLegacyAdditive, V1.Storage.HeadFormula)
}
