// Package sector converts each sector's annual fossil consumption into the
// carbon-free electricity that would replace it and the emissions it causes
// today.
package sector

import (
	"github.com/Zander1983/WindAndSolar/pkg/assumptions"
	"github.com/Zander1983/WindAndSolar/pkg/spec"
)

// Kind names a demand sector.
type Kind string

const (
	KindElectricity Kind = "electricity"
	KindHeat        Kind = "heat"
	KindRoad        Kind = "road"
	KindRail        Kind = "rail"
	KindShipping    Kind = "shipping"
)

// Output is one sector's contribution to the new grid.
type Output struct {
	Sector         Kind    `json:"sector"`
	ElectricityTWh float64 `json:"electricity_twh"`
	EmissionsMt    float64 `json:"emissions_mt"`
}

// Breakdown holds every converter's detailed result for one input snapshot.
type Breakdown struct {
	Electricity ElectricityResult `json:"electricity"`
	Heat        HeatResult        `json:"heat"`
	Road        RoadResult        `json:"road"`
	Rail        RailResult        `json:"rail"`
	Shipping    ShippingResult    `json:"shipping"`
}

// Convert runs all five converters.
func Convert(in *spec.SectorInputs, set assumptions.Set) Breakdown {
	return Breakdown{
		Electricity: Electricity(in.Electricity, set.Emissions),
		Heat:        Heat(in.Heat, set),
		Road:        Road(in.RoadTransport, set),
		Rail:        Rail(in.RailDiesel.Float(), set),
		Shipping:    Shipping(in.ShippingDiesel.Float(), set),
	}
}

// Outputs returns the sector contributions in aggregation order.
func (b Breakdown) Outputs() []Output {
	return []Output{
		b.Electricity.Output(),
		b.Heat.Output(),
		b.Road.Output(),
		b.Rail.Output(),
		b.Shipping.Output(),
	}
}
