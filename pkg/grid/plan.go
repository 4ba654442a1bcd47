package grid

import (
	"errors"
	"fmt"
	"math"

	"github.com/Zander1983/WindAndSolar/pkg/assumptions"
	"github.com/Zander1983/WindAndSolar/pkg/spec"
	"github.com/Zander1983/WindAndSolar/pkg/units"
)

// ErrUndefinedUnitCount is returned when a non-zero share has to be met by
// units that produce nothing, such as a 0 % capacity factor.
var ErrUndefinedUnitCount = errors.New("unit count undefined")

// Plan is the new wind and solar fleet. Unit counts cover the annual energy
// share only; ExtraWindGW and ExtraSolarGW include any storage capacity added
// through Augment.
type Plan struct {
	WindTWh        float64 `json:"wind_twh"`
	SolarTWh       float64 `json:"solar_twh"`
	PerTurbineTWh  float64 `json:"per_turbine_twh"`
	NumTurbines    int64   `json:"num_turbines"`
	ExtraWindGW    float64 `json:"extra_wind_capacity_gw"`
	PerPanelKWh    float64 `json:"per_panel_kwh"`
	NumSolarPanels int64   `json:"num_solar_panels"`
	ExtraSolarGW   float64 `json:"extra_solar_capacity_gw"`

	StorageWindGW  float64 `json:"storage_wind_capacity_gw"`
	StorageSolarGW float64 `json:"storage_solar_capacity_gw"`
}

// Augment returns the plan with storage capacity added on top of the energy
// fleet.
func (p Plan) Augment(windGW, solarGW float64) Plan {
	p.StorageWindGW += windGW
	p.StorageSolarGW += solarGW
	p.ExtraWindGW += windGW
	p.ExtraSolarGW += solarGW
	return p
}

// PlanGeneration splits totalTWh between wind and solar and rounds each share
// up to whole turbines and panels.
func PlanGeneration(totalTWh float64, p spec.ModelParameters, g assumptions.Generation) (Plan, error) {
	share := p.WindShare()
	plan := Plan{
		WindTWh:       totalTWh * share,
		SolarTWh:      totalTWh * (1 - share),
		PerTurbineTWh: p.TurbineCapacityMW * p.WindCapacityFactorPct / 100 * units.HoursPerYear / units.MWhPerTWh,
		PerPanelKWh:   g.PanelCapacityKW * p.SolarCapacityFactorPct / 100 * units.HoursPerYear,
	}

	turbines, err := unitCount(plan.WindTWh, plan.PerTurbineTWh)
	if err != nil {
		return Plan{}, fmt.Errorf("wind: %w", err)
	}
	panels, err := unitCount(plan.SolarTWh*units.KWhPerTWh, plan.PerPanelKWh)
	if err != nil {
		return Plan{}, fmt.Errorf("solar: %w", err)
	}

	plan.NumTurbines = turbines
	plan.ExtraWindGW = float64(turbines) * p.TurbineCapacityMW / units.MWPerGW
	plan.NumSolarPanels = panels
	plan.ExtraSolarGW = float64(panels) * g.PanelCapacityKW / units.KWPerGW
	return plan, nil
}

// unitCount returns ceil(target / perUnit). A zero target needs no units
// whatever the per-unit output.
func unitCount(target, perUnit float64) (int64, error) {
	if target <= 0 {
		return 0, nil
	}
	q := units.Div(target, perUnit)
	if !q.Defined || perUnit < 0 || q.Value > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %g needed at %g per unit", ErrUndefinedUnitCount, target, perUnit)
	}
	return int64(math.Ceil(q.Value)), nil
}
