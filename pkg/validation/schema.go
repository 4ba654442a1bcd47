package validation

import (
	"fmt"
	"math"

	"github.com/Zander1983/WindAndSolar/pkg/assumptions"
	"github.com/Zander1983/WindAndSolar/pkg/spec"
)

// ValidateScenario performs schema validation on a parsed scenario: inputs,
// parameters and the assumption set reference.
func ValidateScenario(s *spec.Scenario) *Report {
	r := NewReport()
	r.Merge(ValidateInputs(&s.Inputs))
	r.Merge(ValidateParameters(s.Parameters))
	validateAssumptionsVersion(s.Assumptions, r)
	return r
}

// ValidateParameters checks the parameter boundary. The engine assumes every
// parameter passing here is safe to divide by.
func ValidateParameters(p spec.ModelParameters) *Report {
	r := NewReport()

	validatePositive(r, "parameters.turbine_capacity_mw", p.TurbineCapacityMW, "MW")
	validateCapacityFactor(r, "parameters.wind_capacity_factor_pct", p.WindCapacityFactorPct)
	validateCapacityFactor(r, "parameters.solar_capacity_factor_pct", p.SolarCapacityFactorPct)
	validateWindShare(p, r)
	validateStorage(p, r)

	return r
}

// ValidateInputs checks that every sectoral input is a finite, non-negative
// quantity. Blank inputs have already decoded to 0 and pass.
func ValidateInputs(in *spec.SectorInputs) *Report {
	r := NewReport()

	e := in.Electricity
	for _, f := range []struct {
		path  string
		value spec.Number
	}{
		{"inputs.electricity.existing_carbon_free_twh", e.ExistingCarbonFree},
		{"inputs.electricity.existing_fossil_fuel_twh", e.ExistingFossilFuel},
		{"inputs.electricity.existing_gas_twh", e.ExistingGas},
		{"inputs.electricity.existing_coal_twh", e.ExistingCoal},
		{"inputs.electricity.current_wind_capacity_gw", e.CurrentWindGW},
		{"inputs.electricity.current_solar_capacity_gw", e.CurrentSolarGW},
		{"inputs.electricity.low_demand_night_gw", e.LowDemandNightGW},
		{"inputs.electricity.low_demand_day_gw", e.LowDemandDayGW},
		{"inputs.heat.residential_twh", in.Heat.ResidentialTWh},
		{"inputs.heat.industry_twh", in.Heat.IndustryTWh},
		{"inputs.rail_diesel_liters", in.RailDiesel},
		{"inputs.shipping_diesel_liters", in.ShippingDiesel},
	} {
		validateQuantity(r, f.path, f.value.Float())
	}

	for category, v := range in.RoadTransport {
		base := fmt.Sprintf("inputs.road_transport.%s", category)
		validateQuantity(r, base+".num_vehicles", v.NumVehicles.Float())
		validateQuantity(r, base+".distance_km", v.DistanceKm.Float())
		validateQuantity(r, base+".kwh_per_km", v.KWhPerKm.Float())
		validateQuantity(r, base+".g_co2_per_km", v.EmissionsPerKm.Float())

		if _, known := spec.CategoryDefaults[category]; !known {
			r.AddInfo(Result{
				Level:   LevelSchema,
				Message: fmt.Sprintf("road category %q is not a standard category; missing intensities default to %q", category, spec.CategoryOther),
				Path:    base,
			})
		}
	}

	if e.ExistingFossilFuel > 0 && (e.ExistingGas > 0 || e.ExistingCoal > 0) {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     "combined fossil electricity given alongside a gas/coal split; the figures are added together",
			Path:        "inputs.electricity.existing_fossil_fuel_twh",
			ActualValue: e.ExistingFossilFuel.Float(),
			ConflictWith: fmt.Sprintf("existing_gas_twh=%.2f, existing_coal_twh=%.2f",
				e.ExistingGas.Float(), e.ExistingCoal.Float()),
			Suggestions: []string{"Set existing_fossil_fuel_twh to 0 if the split already covers all fossil output"},
		})
	}

	return r
}

func validateQuantity(r *Report, path string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s must be a finite number", path),
			Path:        path,
			ActualValue: fmt.Sprint(v),
			Expected:    "finite",
		})
		return
	}
	if v < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s must be non-negative", path),
			Path:        path,
			ActualValue: v,
			Expected:    ">= 0",
		})
	}
}

func validatePositive(r *Report, path string, v float64, unit string) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s must be greater than 0 %s", path, unit),
			Path:        path,
			ActualValue: fmt.Sprint(v),
			Expected:    "> 0",
		})
	}
}

func validateCapacityFactor(r *Report, path string, pct float64) {
	if math.IsNaN(pct) || pct <= 0 || pct > 100 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("capacity factor %.2f%% is outside (0, 100]", pct),
			Path:        path,
			ActualValue: fmt.Sprint(pct),
			Expected:    "0 < pct <= 100",
			Suggestions: []string{"A zero capacity factor would require an unbounded number of units"},
		})
	}
}

func validateWindShare(p spec.ModelParameters, r *Report) {
	if math.IsNaN(p.WindSharePct) || p.WindSharePct < 0 || p.WindSharePct > 100 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("wind share %.2f%% is outside [0, 100]", p.WindSharePct),
			Path:        "parameters.wind_share_pct",
			ActualValue: fmt.Sprint(p.WindSharePct),
			Expected:    "0-100",
		})
	}
}

func validateStorage(p spec.ModelParameters, r *Report) {
	if math.IsNaN(p.StorageDurationDays) || math.IsInf(p.StorageDurationDays, 0) || p.StorageDurationDays < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "storage_duration_days must be a non-negative number",
			Path:        "parameters.storage_duration_days",
			ActualValue: fmt.Sprint(p.StorageDurationDays),
			Expected:    ">= 0",
		})
	}
	if !p.StorageEnabled {
		return
	}
	validatePositive(r, "parameters.lake_height_difference_m", p.LakeHeightDifferenceM, "m")
	if p.StorageDurationDays == 0 {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     "storage is enabled with a duration of 0 days; no reservoir will be sized",
			Path:        "parameters.storage_duration_days",
			ActualValue: p.StorageDurationDays,
			Expected:    "> 0",
		})
	}
}

func validateAssumptionsVersion(version string, r *Report) {
	if _, err := assumptions.Lookup(version); err != nil {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     err.Error(),
			Path:        "assumptions",
			ActualValue: version,
			Expected:    fmt.Sprintf("one of %v", assumptions.Versions()),
		})
	}
}
