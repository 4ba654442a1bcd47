package sector

import (
	"github.com/Zander1983/WindAndSolar/pkg/assumptions"
	"github.com/Zander1983/WindAndSolar/pkg/spec"
	"github.com/Zander1983/WindAndSolar/pkg/units"
)

// RoadCategory is the converted figure for one fleet category.
type RoadCategory struct {
	Category       string  `json:"category"`
	Label          string  `json:"label"`
	NumVehicles    float64 `json:"num_vehicles"`
	DistanceKm     float64 `json:"distance_km"`
	KWhPerKm       float64 `json:"kwh_per_km"`
	GCO2PerKm      float64 `json:"g_co2_per_km"`
	ElectricityTWh float64 `json:"electricity_twh"`
	BaselineTWh    float64 `json:"baseline_twh"`
	EmissionsMt    float64 `json:"emissions_mt"`
}

// RoadResult is the electrified road fleet. BaselineTWh adds the loss margin
// and is reported alongside, not fed into the grid total.
type RoadResult struct {
	Categories     []RoadCategory `json:"categories"`
	ElectricityTWh float64        `json:"electricity_twh"`
	BaselineTWh    float64        `json:"baseline_twh"`
	EmissionsMt    float64        `json:"emissions_mt"`
}

// Road converts each fleet category. Categories with no vehicles or no
// distance contribute nothing but are still listed.
func Road(rt spec.RoadTransport, set assumptions.Set) RoadResult {
	margin := 1 + set.Road.BaselineLossMargin
	r := RoadResult{Categories: make([]RoadCategory, 0, len(rt))}

	for _, entry := range rt.Ordered() {
		v := entry.Vehicle
		c := RoadCategory{
			Category:    entry.Category,
			Label:       spec.CategoryLabel(entry.Category),
			NumVehicles: v.NumVehicles.Float(),
			DistanceKm:  v.DistanceKm.Float(),
			KWhPerKm:    v.KWhPerKm.Float(),
			GCO2PerKm:   v.EmissionsPerKm.Float(),
		}
		if c.NumVehicles > 0 && c.DistanceKm > 0 {
			vehicleKm := c.NumVehicles * c.DistanceKm
			c.ElectricityTWh = vehicleKm * c.KWhPerKm / units.KWhPerTWh
			c.BaselineTWh = c.ElectricityTWh * margin
			c.EmissionsMt = units.GramsToMt(vehicleKm * c.GCO2PerKm)
		}

		r.ElectricityTWh += c.ElectricityTWh
		r.BaselineTWh += c.BaselineTWh
		r.EmissionsMt += c.EmissionsMt
		r.Categories = append(r.Categories, c)
	}
	return r
}

// Output reports the road sector contribution.
func (r RoadResult) Output() Output {
	return Output{Sector: KindRoad, ElectricityTWh: r.ElectricityTWh, EmissionsMt: r.EmissionsMt}
}
