package spec

import "sort"

// Scenario is the top-level project file: one country's sectoral inputs, the
// model parameters to size them with, and the assumption set to apply.
type Scenario struct {
	Name        string          `yaml:"name" json:"name"`
	Country     string          `yaml:"country" json:"country"`
	Assumptions string          `yaml:"assumptions" json:"assumptions"`
	Inputs      SectorInputs    `yaml:"inputs" json:"inputs"`
	Parameters  ModelParameters `yaml:"parameters" json:"parameters"`
}

// SectorInputs is the annual energy picture of a country. JSON field names
// follow the contribution format; blank leaves decode to 0.
type SectorInputs struct {
	Electricity    Electricity   `yaml:"electricity" json:"electricity"`
	Heat           Heat          `yaml:"heat" json:"heat"`
	RoadTransport  RoadTransport `yaml:"road_transport" json:"roadTransport"`
	RailDiesel     Number        `yaml:"rail_diesel_liters" json:"railDiesel"`
	ShippingDiesel Number        `yaml:"shipping_diesel_liters" json:"shippingDiesel"`
}

// Electricity describes the existing grid.
//
// ExistingFossilFuel is unattributed fossil output. When a dataset splits
// fossil generation by fuel, Gas and Coal carry the split; the three figures
// are additive.
type Electricity struct {
	ExistingCarbonFree Number `yaml:"existing_carbon_free_twh" json:"existingCarbonFreeElectricity"`
	ExistingFossilFuel Number `yaml:"existing_fossil_fuel_twh" json:"existingFossilFuelElectricity"`
	ExistingGas        Number `yaml:"existing_gas_twh" json:"existingGasElectricity,omitempty"`
	ExistingCoal       Number `yaml:"existing_coal_twh" json:"existingCoalElectricity,omitempty"`
	CurrentWindGW      Number `yaml:"current_wind_capacity_gw" json:"currentWindCapacityGW"`
	CurrentSolarGW     Number `yaml:"current_solar_capacity_gw" json:"currentSolarCapacityGW"`
	LowDemandNightGW   Number `yaml:"low_demand_night_gw" json:"lowDemandGW"`
	LowDemandDayGW     Number `yaml:"low_demand_day_gw" json:"lowDemandDuringDayGW"`
}

// FossilTWh is all fossil-fired output that has to be replaced.
func (e Electricity) FossilTWh() float64 {
	return e.ExistingFossilFuel.Float() + e.ExistingGas.Float() + e.ExistingCoal.Float()
}

// CurrentGridTWh is today's total annual generation.
func (e Electricity) CurrentGridTWh() float64 {
	return e.FossilTWh() + e.ExistingCarbonFree.Float()
}

// Heat is fossil-fuelled heat demand.
type Heat struct {
	ResidentialTWh Number `yaml:"residential_twh" json:"residentialHeat"`
	IndustryTWh    Number `yaml:"industry_twh" json:"industryHeat"`
}

// Vehicle is one road-fleet category. Zero intensities fall back to the
// category defaults.
type Vehicle struct {
	NumVehicles    Number `yaml:"num_vehicles" json:"numVehicles"`
	DistanceKm     Number `yaml:"distance_km" json:"distance"`
	KWhPerKm       Number `yaml:"kwh_per_km" json:"kWhPerKm,omitempty"`
	EmissionsPerKm Number `yaml:"g_co2_per_km" json:"emissionsPerKm,omitempty"`
}

// RoadTransport maps category keys (see Categories) to fleet figures.
type RoadTransport map[string]Vehicle

// FleetEntry is a category with defaults applied.
type FleetEntry struct {
	Category string
	Vehicle  Vehicle
}

// Ordered returns the fleet in canonical category order, followed by any
// unrecognised categories sorted by key. Missing intensities are filled from
// CategoryDefaults.
func (rt RoadTransport) Ordered() []FleetEntry {
	out := make([]FleetEntry, 0, len(rt))
	for _, c := range Categories {
		if v, ok := rt[c]; ok {
			out = append(out, FleetEntry{Category: c, Vehicle: withDefaults(c, v)})
		}
	}

	var extra []string
	for c := range rt {
		if _, known := CategoryDefaults[c]; !known {
			extra = append(extra, c)
		}
	}
	sort.Strings(extra)
	for _, c := range extra {
		out = append(out, FleetEntry{Category: c, Vehicle: withDefaults(c, rt[c])})
	}
	return out
}

func withDefaults(category string, v Vehicle) Vehicle {
	d, ok := CategoryDefaults[category]
	if !ok {
		d = CategoryDefaults[CategoryOther]
	}
	if v.KWhPerKm == 0 {
		v.KWhPerKm = Number(d.KWhPerKm)
	}
	if v.EmissionsPerKm == 0 {
		v.EmissionsPerKm = Number(d.GCO2PerKm)
	}
	return v
}

// ModelParameters are the user-adjustable knobs of one sizing pass.
type ModelParameters struct {
	TurbineCapacityMW      float64 `yaml:"turbine_capacity_mw" json:"turbineCapacityMW"`
	WindCapacityFactorPct  float64 `yaml:"wind_capacity_factor_pct" json:"windCapacityFactorPct"`
	SolarCapacityFactorPct float64 `yaml:"solar_capacity_factor_pct" json:"solarCapacityFactorPct"`
	WindSharePct           float64 `yaml:"wind_share_pct" json:"windShareOfNewRenewablesPct"`
	StorageEnabled         bool    `yaml:"storage_enabled" json:"storageEnabled"`
	StorageDurationDays    float64 `yaml:"storage_duration_days" json:"storageDurationDays"`
	LakeHeightDifferenceM  float64 `yaml:"lake_height_difference_m" json:"lakeHeightDifferenceM"`
}

// WindShare returns the wind fraction of new capacity in [0,1].
func (p ModelParameters) WindShare() float64 {
	return p.WindSharePct / 100
}

// DefaultParameters returns the calculator's out-of-the-box settings.
func DefaultParameters() ModelParameters {
	return ModelParameters{
		TurbineCapacityMW:      6.6,
		WindCapacityFactorPct:  34,
		SolarCapacityFactorPct: 11,
		WindSharePct:           90,
		StorageEnabled:         false,
		StorageDurationDays:    1,
		LakeHeightDifferenceM:  150,
	}
}
