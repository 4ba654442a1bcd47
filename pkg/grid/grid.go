// Package grid aggregates sector demand into the size of the new grid and
// plans the wind and solar fleet that supplies it.
package grid

import (
	"github.com/Zander1983/WindAndSolar/pkg/sector"
)

// Demand is the aggregated electricity requirement of one snapshot.
type Demand struct {
	FossilElectricityTWh float64 `json:"fossil_electricity_twh"`
	HeatTWh              float64 `json:"heat_twh"`
	RoadTWh              float64 `json:"road_twh"`
	RailTWh              float64 `json:"rail_twh"`
	ShippingTWh          float64 `json:"shipping_twh"`

	// TotalNewTWh is the carbon-free generation that has to be built.
	TotalNewTWh           float64 `json:"total_new_electricity_twh"`
	ExistingCarbonFreeTWh float64 `json:"existing_carbon_free_twh"`
	CurrentGridTWh        float64 `json:"current_grid_twh"`
	// TotalEnergyOfNewGridTWh is new plus retained carbon-free generation.
	TotalEnergyOfNewGridTWh float64 `json:"total_energy_of_new_grid_twh"`

	ExistingEmissionsMt float64 `json:"existing_emissions_mt"`
}

// Aggregate sums the sector outputs.
func Aggregate(b sector.Breakdown) Demand {
	d := Demand{
		ExistingCarbonFreeTWh: b.Electricity.CarbonFreeTWh,
		CurrentGridTWh:        b.Electricity.CurrentGridTWh,
	}
	for _, out := range b.Outputs() {
		switch out.Sector {
		case sector.KindElectricity:
			d.FossilElectricityTWh = out.ElectricityTWh
		case sector.KindHeat:
			d.HeatTWh = out.ElectricityTWh
		case sector.KindRoad:
			d.RoadTWh = out.ElectricityTWh
		case sector.KindRail:
			d.RailTWh = out.ElectricityTWh
		case sector.KindShipping:
			d.ShippingTWh = out.ElectricityTWh
		}
		d.TotalNewTWh += out.ElectricityTWh
		d.ExistingEmissionsMt += out.EmissionsMt
	}
	d.TotalEnergyOfNewGridTWh = d.TotalNewTWh + d.ExistingCarbonFreeTWh
	return d
}

// GrowthFactor is how many times larger the new grid is than today's.
// It is 1 when there is no current grid to compare against.
func (d Demand) GrowthFactor() float64 {
	if d.CurrentGridTWh <= 0 {
		return 1
	}
	return d.TotalEnergyOfNewGridTWh / d.CurrentGridTWh
}

// Sizing is the grid sizing result of one pass: demand and the fleet
// planned to meet it.
type Sizing struct {
	Demand
	Plan
}
