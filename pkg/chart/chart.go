// Package chart builds the labelled series a front end plots for one sizing
// result.
package chart

import (
	"math"

	"github.com/Zander1983/WindAndSolar/pkg/emissions"
	"github.com/Zander1983/WindAndSolar/pkg/grid"
	"github.com/Zander1983/WindAndSolar/pkg/spec"
)

// Dataset is one stacked series, one value per chart label.
type Dataset struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
}

// Chart is a bar chart with a shared set of x-axis labels.
type Chart struct {
	Title    string    `json:"title"`
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Set is every chart for one result.
type Set struct {
	Energy    Chart `json:"energy"`
	Emissions Chart `json:"emissions"`
	Capacity  Chart `json:"capacity"`
}

// Build assembles the energy, emissions and capacity charts.
func Build(d grid.Demand, e emissions.Result, el spec.Electricity, windGW, solarGW float64) Set {
	return Set{
		Energy:    Energy(d),
		Emissions: Emissions(e),
		Capacity:  Capacity(el, windGW, solarGW),
	}
}

// Energy compares the existing grid with the fossil-free grid in TWh.
// Datasets that are zero in every column are dropped.
func Energy(d grid.Demand) Chart {
	return nonEmpty(Chart{
		Title:  "Grid size (TWh)",
		Labels: []string{"Existing Grid", "Required Grid (Fossil-Free)"},
		Datasets: []Dataset{
			{"Existing Renewable Electricity", []float64{d.ExistingCarbonFreeTWh, d.ExistingCarbonFreeTWh}},
			{"Existing Carbon-Powered Electricity", []float64{d.FossilElectricityTWh, 0}},
			{"Existing Carbon-Powered Electricity Now Converted To Renewable", []float64{0, d.FossilElectricityTWh}},
			{"Electricity for Road Transport", []float64{0, round2(d.RoadTWh)}},
			{"Electricity for Rail", []float64{0, round2(d.RailTWh)}},
			{"Electricity for Shipping", []float64{0, round2(d.ShippingTWh)}},
			{"Electricity for Heat", []float64{0, round2(d.HeatTWh)}},
		},
	})
}

// Emissions compares current emissions with the new grid's in Mt CO₂e.
func Emissions(e emissions.Result) Chart {
	return nonEmpty(Chart{
		Title:  "Emissions (MtCO₂e)",
		Labels: []string{"Current Emissions", "Required Grid Emissions"},
		Datasets: []Dataset{
			{"Road Transport Emissions", []float64{e.RoadMt, 0}},
			{"Rail Emissions", []float64{e.RailMt, 0}},
			{"Shipping Emissions", []float64{e.ShippingMt, 0}},
			{"Existing Fossil-Fuel Electricity Emissions", []float64{e.ElectricityMt, 0}},
			{"Existing Heat Emissions", []float64{e.HeatMt, 0}},
			{"New Grid Emissions", []float64{0, e.NewGridMt}},
		},
	})
}

// Capacity compares installed with additional wind and solar nameplate.
// Both series are always present.
func Capacity(el spec.Electricity, extraWindGW, extraSolarGW float64) Chart {
	return Chart{
		Title:  "Current vs Needed Capacity",
		Labels: []string{"Wind Capacity (GW)", "Solar Capacity (GW)"},
		Datasets: []Dataset{
			{"Current Capacity", []float64{el.CurrentWindGW.Float(), el.CurrentSolarGW.Float()}},
			{"Extra Capacity Needed", []float64{extraWindGW, extraSolarGW}},
		},
	}
}

func nonEmpty(c Chart) Chart {
	kept := c.Datasets[:0]
	for _, ds := range c.Datasets {
		for _, v := range ds.Data {
			if v > 0 {
				kept = append(kept, ds)
				break
			}
		}
	}
	c.Datasets = kept
	return c
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
