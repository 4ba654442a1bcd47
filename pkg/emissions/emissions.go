// Package emissions accounts for today's emissions and those of the
// replacement grid.
package emissions

import (
	"github.com/Zander1983/WindAndSolar/pkg/assumptions"
	"github.com/Zander1983/WindAndSolar/pkg/grid"
	"github.com/Zander1983/WindAndSolar/pkg/sector"
	"github.com/Zander1983/WindAndSolar/pkg/units"
)

// Result holds per-sector emissions in Mt CO₂e.
type Result struct {
	RoadMt     float64 `json:"road_mt"`
	RailMt     float64 `json:"rail_mt"`
	ShippingMt float64 `json:"shipping_mt"`
	HeatMt     float64 `json:"heat_mt"`

	ElectricityGasMt        float64 `json:"electricity_gas_mt"`
	ElectricityCoalMt       float64 `json:"electricity_coal_mt"`
	ElectricityFossilMt     float64 `json:"electricity_fossil_mt"`
	ElectricityCarbonFreeMt float64 `json:"electricity_carbon_free_mt"`
	ElectricityMt           float64 `json:"electricity_mt"`

	ExistingTotalMt float64 `json:"existing_total_mt"`
	NewGridMt       float64 `json:"new_grid_mt"`
	// ReductionMt is existing minus new-grid emissions.
	ReductionMt float64 `json:"reduction_mt"`
}

// Accountant prices the new grid at the carbon-free lifecycle factor.
type Accountant struct {
	factors assumptions.Emissions
}

// NewAccountant returns an accountant for the given emission factors.
func NewAccountant(f assumptions.Emissions) *Accountant {
	return &Accountant{factors: f}
}

// Account collects the sector emissions and projects the new grid's.
func (a *Accountant) Account(b sector.Breakdown, d grid.Demand) Result {
	e := b.Electricity
	r := Result{
		RoadMt:                  b.Road.EmissionsMt,
		RailMt:                  b.Rail.EmissionsMt,
		ShippingMt:              b.Shipping.EmissionsMt,
		HeatMt:                  b.Heat.EmissionsMt,
		ElectricityGasMt:        e.GasMt,
		ElectricityCoalMt:       e.CoalMt,
		ElectricityFossilMt:     e.UnattributedFossilMt,
		ElectricityCarbonFreeMt: e.CarbonFreeMt,
		ElectricityMt:           e.EmissionsMt,
	}
	r.ExistingTotalMt = r.RoadMt + r.RailMt + r.ShippingMt + r.HeatMt + r.ElectricityMt
	r.NewGridMt = units.TWhEmissionsMt(d.TotalEnergyOfNewGridTWh, a.factors.CarbonFreeGPerKWh)
	r.ReductionMt = r.ExistingTotalMt - r.NewGridMt
	return r
}
