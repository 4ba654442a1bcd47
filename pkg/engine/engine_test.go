package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zander1983/WindAndSolar/pkg/assumptions"
	"github.com/Zander1983/WindAndSolar/pkg/spec"
	"github.com/Zander1983/WindAndSolar/pkg/validation"
)

func loadIreland(t *testing.T) *spec.Scenario {
	t.Helper()
	s, err := spec.LoadProject("../../examples/ireland")
	require.NoError(t, err)
	return s
}

func TestSizeZeroInputs(t *testing.T) {
	res, report := Size(&spec.SectorInputs{}, spec.DefaultParameters(), assumptions.Default())
	require.NotNil(t, res, "errors: %v", report.Errors)

	assert.Zero(t, res.Grid.TotalNewTWh)
	assert.Zero(t, res.Grid.NumTurbines)
	assert.Zero(t, res.Grid.NumSolarPanels)
	assert.Zero(t, res.Grid.ExtraWindGW)
	assert.Zero(t, res.Emissions.ExistingTotalMt)
	assert.Zero(t, res.Emissions.NewGridMt)
	assert.False(t, res.Storage.Enabled)
	assert.Empty(t, res.Charts.Energy.Datasets)
}

func TestSizeIrelandWithoutStorage(t *testing.T) {
	s := loadIreland(t)
	s.Parameters.StorageEnabled = false

	res, report, err := Run(s)
	require.NoError(t, err)
	assert.True(t, report.Valid)

	g := res.Grid
	assert.Equal(t, "v2", res.Assumptions)
	assert.InDelta(t, 25.3327828035, g.RoadTWh, 1e-9)
	assert.InDelta(t, 0.357, g.RailTWh, 1e-9)
	assert.InDelta(t, 1.52949998794, g.ShippingTWh, 1e-9)
	assert.InDelta(t, 28.9, g.HeatTWh, 1e-9)
	assert.InDelta(t, 77.3692827914, g.TotalNewTWh, 1e-9)
	assert.InDelta(t, 89.9992827914, g.TotalEnergyOfNewGridTWh, 1e-9)
	assert.Equal(t, int64(3543), g.NumTurbines)
	assert.Equal(t, int64(20072978), g.NumSolarPanels)
	assert.InDelta(t, 23.3838, g.ExtraWindGW, 1e-9)
	assert.InDelta(t, 8.0291912, g.ExtraSolarGW, 1e-9)

	assert.Equal(t, res.Storage.Enabled, false)
	assert.Zero(t, res.Storage.ReservoirVolumeM3)
	assert.InDelta(t, 0.98999211, res.Emissions.NewGridMt, 1e-6)
}

func TestSizeIrelandWithStorage(t *testing.T) {
	s := loadIreland(t)

	res, _, err := Run(s)
	require.NoError(t, err)

	g := res.Grid
	assert.Equal(t, int64(3543), g.NumTurbines, "unit counts cover the energy share only")
	assert.InDelta(t, 23.3838+37.7014556623, g.ExtraWindGW, 1e-6)
	assert.InDelta(t, 37.7014556623, g.StorageWindGW, 1e-6)
	assert.InDelta(t, 8.0291912, g.ExtraSolarGW, 1e-9)
	assert.InDelta(t, 1568449791, float64(res.Storage.ReservoirVolumeM3), 2)
	assert.Equal(t, g.ExtraWindGW, res.Charts.Capacity.Datasets[1].Data[0])
}

func TestStorageToggleOnlyTouchesStorage(t *testing.T) {
	s := loadIreland(t)
	s.Parameters.StorageEnabled = false
	off, _, err := Run(s)
	require.NoError(t, err)

	s.Parameters.StorageEnabled = true
	on, _, err := Run(s)
	require.NoError(t, err)

	assert.Equal(t, off.Grid.Demand, on.Grid.Demand)
	assert.Equal(t, off.Grid.NumTurbines, on.Grid.NumTurbines)
	assert.Equal(t, off.Grid.NumSolarPanels, on.Grid.NumSolarPanels)
	assert.Equal(t, off.Emissions, on.Emissions)
	assert.GreaterOrEqual(t, on.Grid.ExtraWindGW, off.Grid.ExtraWindGW)
	assert.GreaterOrEqual(t, on.Grid.ExtraSolarGW, off.Grid.ExtraSolarGW)
}

func TestMonotoneInFossilElectricity(t *testing.T) {
	s := loadIreland(t)
	s.Parameters.StorageEnabled = false
	base, _, err := Run(s)
	require.NoError(t, err)

	s.Inputs.Electricity.ExistingFossilFuel += 5
	more, _, err := Run(s)
	require.NoError(t, err)

	assert.InDelta(t, base.Grid.TotalNewTWh+5, more.Grid.TotalNewTWh, 1e-9)
	assert.GreaterOrEqual(t, more.Grid.NumTurbines, base.Grid.NumTurbines)
	assert.GreaterOrEqual(t, more.Grid.NumSolarPanels, base.Grid.NumSolarPanels)
	assert.Greater(t, more.Emissions.ExistingTotalMt, base.Emissions.ExistingTotalMt)
}

func TestSizeRejectsInvalidParameters(t *testing.T) {
	p := spec.DefaultParameters()
	p.WindCapacityFactorPct = 0

	res, report := Size(&spec.SectorInputs{}, p, assumptions.Default())
	assert.Nil(t, res)
	assert.False(t, report.Valid)
	assert.True(t, report.HasPath(validation.SeverityError, "parameters.wind_capacity_factor_pct"))
}

func TestRunInvalidReturnsSentinel(t *testing.T) {
	s := loadIreland(t)
	s.Inputs.Heat.ResidentialTWh = -3

	res, report, err := Run(s)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, validation.ErrInvalid)
	assert.True(t, report.HasPath(validation.SeverityError, "inputs.heat.residential_twh"))
}

func TestRunUnknownAssumptions(t *testing.T) {
	s := loadIreland(t)
	s.Assumptions = "v0"

	_, report, err := Run(s)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.True(t, report.HasPath(validation.SeverityError, "assumptions"))
}

func TestAnalyticalFindings(t *testing.T) {
	s := loadIreland(t)
	s.Parameters.TurbineCapacityMW = 30

	_, report, err := Run(s)
	require.NoError(t, err)
	assert.True(t, report.HasPath(validation.SeverityWarning, "parameters.turbine_capacity_mw"))
	assert.True(t, report.HasPath(validation.SeverityInfo, "inputs.electricity.low_demand_day_gw"),
		"Irish daytime low demand keeps solar from charging storage")
}

func TestAnalyticalFallbackInfo(t *testing.T) {
	in := &spec.SectorInputs{
		Electricity: spec.Electricity{ExistingFossilFuel: 10, LowDemandNightGW: 50, LowDemandDayGW: 50},
	}
	p := spec.DefaultParameters()
	p.StorageEnabled = true

	res, report := Size(in, p, assumptions.V2)
	require.NotNil(t, res)
	assert.True(t, res.Storage.SplitFallback)
	assert.True(t, report.HasPath(validation.SeverityInfo, "inputs.electricity"))
}

func TestCoalPricedAsGasUnderV1(t *testing.T) {
	in := &spec.SectorInputs{Electricity: spec.Electricity{ExistingCoal: 3}}

	_, report := Size(in, spec.DefaultParameters(), assumptions.V1)
	assert.True(t, report.HasPath(validation.SeverityInfo, "assumptions"))

	_, report = Size(in, spec.DefaultParameters(), assumptions.V2)
	assert.False(t, report.HasPath(validation.SeverityInfo, "assumptions"))
}

func TestFingerprint(t *testing.T) {
	s := loadIreland(t)

	a, err := Fingerprint(&s.Inputs, s.Parameters, "v2")
	require.NoError(t, err)
	b, err := Fingerprint(&s.Inputs, s.Parameters, "v2")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := Fingerprint(&s.Inputs, s.Parameters, "v1")
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	s.Parameters.WindSharePct = 80
	d, err := Fingerprint(&s.Inputs, s.Parameters, "v2")
	require.NoError(t, err)
	assert.NotEqual(t, a, d)
}

func TestFingerprintRejectsNaN(t *testing.T) {
	p := spec.DefaultParameters()
	p.WindSharePct = math.NaN()

	_, err := Fingerprint(&spec.SectorInputs{}, p, "v2")
	assert.Error(t, err)
}
