package sector

import (
	"github.com/Zander1983/WindAndSolar/pkg/assumptions"
	"github.com/Zander1983/WindAndSolar/pkg/spec"
	"github.com/Zander1983/WindAndSolar/pkg/units"
)

// ElectricityResult describes the existing grid. FossilTWh is the generation
// the new grid must take over.
type ElectricityResult struct {
	FossilTWh      float64 `json:"fossil_twh"`
	CarbonFreeTWh  float64 `json:"carbon_free_twh"`
	CurrentGridTWh float64 `json:"current_grid_twh"`

	GasMt                float64 `json:"gas_mt"`
	CoalMt               float64 `json:"coal_mt"`
	UnattributedFossilMt float64 `json:"unattributed_fossil_mt"`
	CarbonFreeMt         float64 `json:"carbon_free_mt"`
	EmissionsMt          float64 `json:"emissions_mt"`
}

// Electricity prices each fuel at its own emission factor. Carbon-free output
// keeps its small lifecycle factor and is counted in the existing total.
func Electricity(e spec.Electricity, f assumptions.Emissions) ElectricityResult {
	r := ElectricityResult{
		FossilTWh:     e.FossilTWh(),
		CarbonFreeTWh: e.ExistingCarbonFree.Float(),
	}
	r.CurrentGridTWh = r.FossilTWh + r.CarbonFreeTWh

	r.GasMt = units.TWhEmissionsMt(e.ExistingGas.Float(), f.GasElectricityGPerKWh)
	r.CoalMt = units.TWhEmissionsMt(e.ExistingCoal.Float(), f.CoalElectricityGPerKWh)
	r.UnattributedFossilMt = units.TWhEmissionsMt(e.ExistingFossilFuel.Float(), f.FossilElectricityGPerKWh)
	r.CarbonFreeMt = units.TWhEmissionsMt(r.CarbonFreeTWh, f.CarbonFreeGPerKWh)
	r.EmissionsMt = r.GasMt + r.CoalMt + r.UnattributedFossilMt + r.CarbonFreeMt
	return r
}

// FossilMt is the fossil-fired share of existing electricity emissions.
func (r ElectricityResult) FossilMt() float64 {
	return r.GasMt + r.CoalMt + r.UnattributedFossilMt
}

// Output reports the fossil generation to be replaced.
func (r ElectricityResult) Output() Output {
	return Output{Sector: KindElectricity, ElectricityTWh: r.FossilTWh, EmissionsMt: r.EmissionsMt}
}
