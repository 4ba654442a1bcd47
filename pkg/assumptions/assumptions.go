package assumptions

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownVersion is returned when a requested assumption set does not exist.
var ErrUnknownVersion = errors.New("unknown assumptions version")

// HeadFormula selects how pumped-hydro water mass is derived from stored energy.
type HeadFormula string

const (
	// HeadPotentialEnergy uses m = E / (g × h).
	HeadPotentialEnergy HeadFormula = "potential_energy"
	// HeadLegacyAdditive reproduces the m = E / (g + h) variant of the first
	// published calculator. Kept only so historical figures can be regenerated.
	HeadLegacyAdditive HeadFormula = "legacy_additive"
)

// Emission factors in g CO₂e per kWh or per liter.
type Emissions struct {
	GasElectricityGPerKWh    float64 `yaml:"gas_electricity_g_per_kwh" json:"gas_electricity_g_per_kwh"`
	CoalElectricityGPerKWh   float64 `yaml:"coal_electricity_g_per_kwh" json:"coal_electricity_g_per_kwh"`
	FossilElectricityGPerKWh float64 `yaml:"fossil_electricity_g_per_kwh" json:"fossil_electricity_g_per_kwh"`
	CarbonFreeGPerKWh        float64 `yaml:"carbon_free_g_per_kwh" json:"carbon_free_g_per_kwh"`
	FossilHeatGPerKWh        float64 `yaml:"fossil_heat_g_per_kwh" json:"fossil_heat_g_per_kwh"`
	DieselGPerLiter          float64 `yaml:"diesel_g_per_liter" json:"diesel_g_per_liter"`
}

// Heat holds heat-electrification assumptions.
type Heat struct {
	HeatPumpCOP float64 `yaml:"heat_pump_cop" json:"heat_pump_cop"`
}

// Road holds road-transport assumptions.
type Road struct {
	BaselineLossMargin float64 `yaml:"baseline_loss_margin" json:"baseline_loss_margin"`
}

// Rail holds diesel-to-electric traction assumptions.
type Rail struct {
	DieselKWhPerLiter            float64 `yaml:"diesel_kwh_per_liter" json:"diesel_kwh_per_liter"`
	DieselEngineEfficiency       float64 `yaml:"diesel_engine_efficiency" json:"diesel_engine_efficiency"`
	ElectricLocomotiveEfficiency float64 `yaml:"electric_locomotive_efficiency" json:"electric_locomotive_efficiency"`
	TransmissionLossFraction     float64 `yaml:"transmission_loss_fraction" json:"transmission_loss_fraction"`
}

// Shipping holds diesel-to-hydrogen assumptions.
type Shipping struct {
	DieselDensityKgPerLiter float64 `yaml:"diesel_density_kg_per_liter" json:"diesel_density_kg_per_liter"`
	DieselKWhPerKg          float64 `yaml:"diesel_kwh_per_kg" json:"diesel_kwh_per_kg"`
	EngineEfficiency        float64 `yaml:"engine_efficiency" json:"engine_efficiency"`
	UsefulKWhPerKgH2        float64 `yaml:"useful_kwh_per_kg_h2" json:"useful_kwh_per_kg_h2"`
	ElectrolysisKWhPerKgH2  float64 `yaml:"electrolysis_kwh_per_kg_h2" json:"electrolysis_kwh_per_kg_h2"`
	CompressionKWhPerKgH2   float64 `yaml:"compression_kwh_per_kg_h2" json:"compression_kwh_per_kg_h2"`
}

// ElectrolysisAndCompressionKWhPerKg is the grid electricity consumed per kg of
// hydrogen delivered to the tank.
func (s Shipping) ElectrolysisAndCompressionKWhPerKg() float64 {
	return s.ElectrolysisKWhPerKgH2 + s.CompressionKWhPerKgH2
}

// Generation holds unit-sizing assumptions.
type Generation struct {
	PanelCapacityKW float64 `yaml:"panel_capacity_kw" json:"panel_capacity_kw"`
}

// Storage holds pumped-hydro assumptions.
type Storage struct {
	RoundTripEfficiency    float64     `yaml:"round_trip_efficiency" json:"round_trip_efficiency"`
	WindExcessPerformance  float64     `yaml:"wind_excess_performance" json:"wind_excess_performance"`
	SolarExcessPerformance float64     `yaml:"solar_excess_performance" json:"solar_excess_performance"`
	WindChargingHours      float64     `yaml:"wind_charging_hours" json:"wind_charging_hours"`
	SolarChargingHours     float64     `yaml:"solar_charging_hours" json:"solar_charging_hours"`
	GravityMPerS2          float64     `yaml:"gravity_m_per_s2" json:"gravity_m_per_s2"`
	WaterDensityKgPerM3    float64     `yaml:"water_density_kg_per_m3" json:"water_density_kg_per_m3"`
	HeadFormula            HeadFormula `yaml:"head_formula" json:"head_formula"`
	MaxIterations          int         `yaml:"max_iterations" json:"max_iterations"`
}

// Set is one named, versioned collection of every constant the engine uses.
type Set struct {
	Version     string     `yaml:"version" json:"version"`
	Description string     `yaml:"description" json:"description"`
	Emissions   Emissions  `yaml:"emissions" json:"emissions"`
	Heat        Heat       `yaml:"heat" json:"heat"`
	Road        Road       `yaml:"road" json:"road"`
	Rail        Rail       `yaml:"rail" json:"rail"`
	Shipping    Shipping   `yaml:"shipping" json:"shipping"`
	Generation  Generation `yaml:"generation" json:"generation"`
	Storage     Storage    `yaml:"storage" json:"storage"`
}

// DefaultVersion is used when a scenario does not name an assumption set.
const DefaultVersion = "v2"

// V1 reproduces the constants of the first published calculator, including
// its additive head formula and 70 % round-trip efficiency. Combined fossil
// electricity was treated as gas-fired.
var V1 = Set{
	Version:     "v1",
	Description: "First published calculator: all fossil electricity as gas, 70% pumped-hydro round trip",
	Emissions: Emissions{
		GasElectricityGPerKWh:    490,
		CoalElectricityGPerKWh:   490,
		FossilElectricityGPerKWh: 490,
		CarbonFreeGPerKWh:        11,
		FossilHeatGPerKWh:        185,
		DieselGPerLiter:          2680,
	},
	Heat: Heat{HeatPumpCOP: 4},
	Road: Road{BaselineLossMargin: 0.10},
	Rail: Rail{
		DieselKWhPerLiter:            11.9,
		DieselEngineEfficiency:       0.45,
		ElectricLocomotiveEfficiency: 0.73,
		TransmissionLossFraction:     0.10,
	},
	Shipping: Shipping{
		DieselDensityKgPerLiter: 0.84,
		DieselKWhPerKg:          12.75,
		EngineEfficiency:        0.38,
		UsefulKWhPerKgH2:        15,
		ElectrolysisKWhPerKgH2:  50,
		CompressionKWhPerKgH2:   2.5,
	},
	Generation: Generation{PanelCapacityKW: 0.4},
	Storage: Storage{
		RoundTripEfficiency:    0.70,
		WindExcessPerformance:  0.7,
		SolarExcessPerformance: 0.5,
		WindChargingHours:      8,
		SolarChargingHours:     6,
		GravityMPerS2:          9.8,
		WaterDensityKgPerM3:    1000,
		HeadFormula:            HeadLegacyAdditive,
		MaxIterations:          8,
	},
}

// V2 is the current set: separate coal factor, 77 % pumped-hydro round trip
// and reservoir mass from gravitational potential energy.
var V2 = withV2Overrides(V1)

func withV2Overrides(s Set) Set {
	s.Version = "v2"
	s.Description = "Current: gas/coal split factors, 77% pumped-hydro round trip, m = E/(g*h)"
	s.Emissions.CoalElectricityGPerKWh = 820
	s.Storage.RoundTripEfficiency = 0.77
	s.Storage.HeadFormula = HeadPotentialEnergy
	return s
}

var registry = map[string]Set{
	V1.Version: V1,
	V2.Version: V2,
}

// Lookup returns the assumption set for version. An empty version selects
// DefaultVersion.
func Lookup(version string) (Set, error) {
	if version == "" {
		version = DefaultVersion
	}
	s, ok := registry[version]
	if !ok {
		return Set{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownVersion, version, Versions())
	}
	return s, nil
}

// Default returns the DefaultVersion set.
func Default() Set {
	return registry[DefaultVersion]
}

// Versions lists the registered versions in sorted order.
func Versions() []string {
	out := make([]string, 0, len(registry))
	for v := range registry {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
