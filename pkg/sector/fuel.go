package sector

import (
	"github.com/Zander1983/WindAndSolar/pkg/assumptions"
	"github.com/Zander1983/WindAndSolar/pkg/units"
)

// RailResult is diesel traction moved onto electric locomotives.
type RailResult struct {
	DieselLiters   float64 `json:"diesel_liters"`
	DieselTWh      float64 `json:"diesel_twh"`
	ElectricityTWh float64 `json:"electricity_twh"`
	EmissionsMt    float64 `json:"emissions_mt"`
}

// Rail carries the useful work of the diesel burned through electric
// traction and transmission losses.
func Rail(liters float64, set assumptions.Set) RailResult {
	a := set.Rail
	r := RailResult{
		DieselLiters: liters,
		DieselTWh:    liters * a.DieselKWhPerLiter / units.KWhPerTWh,
		EmissionsMt:  dieselMt(liters, set),
	}
	useful := r.DieselTWh * a.DieselEngineEfficiency
	atLoco := units.Div(useful, a.ElectricLocomotiveEfficiency).Or(0)
	r.ElectricityTWh = units.Div(atLoco, 1-a.TransmissionLossFraction).Or(0)
	return r
}

// Output reports the rail sector contribution.
func (r RailResult) Output() Output {
	return Output{Sector: KindRail, ElectricityTWh: r.ElectricityTWh, EmissionsMt: r.EmissionsMt}
}

// ShippingResult is marine diesel replaced by electrolytic hydrogen.
type ShippingResult struct {
	DieselLiters   float64 `json:"diesel_liters"`
	DieselTWh      float64 `json:"diesel_twh"`
	HydrogenKg     float64 `json:"hydrogen_kg"`
	ElectricityTWh float64 `json:"electricity_twh"`
	EmissionsMt    float64 `json:"emissions_mt"`
}

// Shipping sizes the hydrogen that delivers the same useful work as the
// diesel, then the electricity to make and compress it.
func Shipping(liters float64, set assumptions.Set) ShippingResult {
	a := set.Shipping
	dieselKWh := liters * a.DieselDensityKgPerLiter * a.DieselKWhPerKg
	usefulKWh := dieselKWh * a.EngineEfficiency
	h2 := units.Div(usefulKWh, a.UsefulKWhPerKgH2).Or(0)

	return ShippingResult{
		DieselLiters:   liters,
		DieselTWh:      dieselKWh / units.KWhPerTWh,
		HydrogenKg:     h2,
		ElectricityTWh: h2 * a.ElectrolysisAndCompressionKWhPerKg() / units.KWhPerTWh,
		EmissionsMt:    dieselMt(liters, set),
	}
}

// Output reports the shipping sector contribution.
func (r ShippingResult) Output() Output {
	return Output{Sector: KindShipping, ElectricityTWh: r.ElectricityTWh, EmissionsMt: r.EmissionsMt}
}

func dieselMt(liters float64, set assumptions.Set) float64 {
	return units.GramsToMt(liters * set.Emissions.DieselGPerLiter)
}
