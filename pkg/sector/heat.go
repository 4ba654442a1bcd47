package sector

import (
	"github.com/Zander1983/WindAndSolar/pkg/assumptions"
	"github.com/Zander1983/WindAndSolar/pkg/spec"
	"github.com/Zander1983/WindAndSolar/pkg/units"
)

// HeatResult is the electricity needed to electrify heat demand.
type HeatResult struct {
	ResidentialTWh float64 `json:"residential_twh"`
	IndustryTWh    float64 `json:"industry_twh"`
	ElectricityTWh float64 `json:"electricity_twh"`
	ResidentialMt  float64 `json:"residential_mt"`
	IndustryMt     float64 `json:"industry_mt"`
	EmissionsMt    float64 `json:"emissions_mt"`
}

// Heat moves residential heat onto heat pumps and industrial heat onto direct
// electric heating.
func Heat(h spec.Heat, set assumptions.Set) HeatResult {
	residential := h.ResidentialTWh.Float()
	industry := h.IndustryTWh.Float()

	r := HeatResult{
		ResidentialTWh: units.Div(residential, set.Heat.HeatPumpCOP).Or(residential),
		IndustryTWh:    industry,
		ResidentialMt:  units.TWhEmissionsMt(residential, set.Emissions.FossilHeatGPerKWh),
		IndustryMt:     units.TWhEmissionsMt(industry, set.Emissions.FossilHeatGPerKWh),
	}
	r.ElectricityTWh = r.ResidentialTWh + r.IndustryTWh
	r.EmissionsMt = r.ResidentialMt + r.IndustryMt
	return r
}

// Output reports the heat sector contribution.
func (r HeatResult) Output() Output {
	return Output{Sector: KindHeat, ElectricityTWh: r.ElectricityTWh, EmissionsMt: r.EmissionsMt}
}
