package engine

import (
	"fmt"

	"github.com/Zander1983/WindAndSolar/pkg/assumptions"
	"github.com/Zander1983/WindAndSolar/pkg/spec"
	"github.com/Zander1983/WindAndSolar/pkg/validation"
)

// Plausibility ceilings for parameters that pass the schema bounds.
const (
	maxTurbineMW        = 25.0
	maxWindCapacityPct  = 60.0
	maxSolarCapacityPct = 35.0
)

// validateAnalytical runs checks that need the computed result.
func validateAnalytical(in *spec.SectorInputs, p spec.ModelParameters, set assumptions.Set, res *Result, report *validation.Report) {
	validatePlausibleParameters(p, report)
	validateCoalPricing(in, set, report)
	if !res.Storage.Enabled {
		return
	}
	validateStorageSplit(in, res, report)
	validateSolarCharging(in, res, report)
	validateGrowthBaseline(res, report)
	validateLowDemand(in, report)
}

func validatePlausibleParameters(p spec.ModelParameters, report *validation.Report) {
	if p.TurbineCapacityMW > maxTurbineMW {
		report.AddWarning(validation.Result{
			Level:       validation.LevelAnalytical,
			Message:     fmt.Sprintf("turbine rating %.1f MW is larger than any turbine in service", p.TurbineCapacityMW),
			Path:        "parameters.turbine_capacity_mw",
			ActualValue: p.TurbineCapacityMW,
			Expected:    fmt.Sprintf("<= %.0f MW", maxTurbineMW),
		})
	}
	if p.WindCapacityFactorPct > maxWindCapacityPct {
		report.AddWarning(validation.Result{
			Level:       validation.LevelAnalytical,
			Message:     fmt.Sprintf("wind capacity factor %.0f%% is above what the best offshore sites achieve", p.WindCapacityFactorPct),
			Path:        "parameters.wind_capacity_factor_pct",
			ActualValue: p.WindCapacityFactorPct,
			Expected:    fmt.Sprintf("<= %.0f%%", maxWindCapacityPct),
			Suggestions: []string{"Onshore fleets typically run at 25-35%, offshore at 40-50%"},
		})
	}
	if p.SolarCapacityFactorPct > maxSolarCapacityPct {
		report.AddWarning(validation.Result{
			Level:       validation.LevelAnalytical,
			Message:     fmt.Sprintf("solar capacity factor %.0f%% is above what fixed panels achieve", p.SolarCapacityFactorPct),
			Path:        "parameters.solar_capacity_factor_pct",
			ActualValue: p.SolarCapacityFactorPct,
			Expected:    fmt.Sprintf("<= %.0f%%", maxSolarCapacityPct),
		})
	}
}

func validateCoalPricing(in *spec.SectorInputs, set assumptions.Set, report *validation.Report) {
	f := set.Emissions
	if in.Electricity.ExistingCoal > 0 && f.CoalElectricityGPerKWh == f.GasElectricityGPerKWh {
		report.AddInfo(validation.Result{
			Level:       validation.LevelAnalytical,
			Message:     fmt.Sprintf("assumptions %s price coal electricity at the gas factor (%.0f g/kWh)", set.Version, f.GasElectricityGPerKWh),
			Path:        "assumptions",
			ActualValue: set.Version,
			Suggestions: []string{fmt.Sprintf("Use assumptions %s for a separate coal factor", assumptions.DefaultVersion)},
		})
	}
}

func validateStorageSplit(in *spec.SectorInputs, res *Result, report *validation.Report) {
	s := res.Storage
	if s.SplitFallback {
		report.AddInfo(validation.Result{
			Level:   validation.LevelAnalytical,
			Message: "neither wind nor solar can charge storage at current low demand; the daily target was split 50/50",
			Path:    "inputs.electricity",
			ConflictWith: fmt.Sprintf("projected low demand %.2f GW night, %.2f GW day",
				in.Electricity.LowDemandNightGW.Float()*s.GrowthFactor, in.Electricity.LowDemandDayGW.Float()*s.GrowthFactor),
		})
	}
	if !s.Converged {
		report.AddWarning(validation.Result{
			Level:       validation.LevelAnalytical,
			Message:     fmt.Sprintf("storage split still moving after %d iterations", s.Iterations),
			Path:        "parameters.storage_enabled",
			ActualValue: s.Iterations,
		})
	}
}

func validateSolarCharging(in *spec.SectorInputs, res *Result, report *validation.Report) {
	s := res.Storage
	if s.SplitFallback || s.Solar.StorableGWh > 0 {
		return
	}
	if in.Electricity.CurrentSolarGW.Float()+res.Grid.ExtraSolarGW-s.Solar.IncrementalGW <= 0 {
		return
	}
	report.AddInfo(validation.Result{
		Level:       validation.LevelAnalytical,
		Message:     "daytime low demand exceeds derated solar output; solar does not charge storage",
		Path:        "inputs.electricity.low_demand_day_gw",
		ActualValue: in.Electricity.LowDemandDayGW.Float(),
		Suggestions: []string{"Raise the wind share or lower daytime low demand to let solar contribute"},
	})
}

func validateGrowthBaseline(res *Result, report *validation.Report) {
	if res.Grid.CurrentGridTWh > 0 {
		return
	}
	report.AddInfo(validation.Result{
		Level:   validation.LevelAnalytical,
		Message: "no existing generation given; low demand is not scaled by grid growth",
		Path:    "inputs.electricity",
	})
}

func validateLowDemand(in *spec.SectorInputs, report *validation.Report) {
	e := in.Electricity
	if e.LowDemandNightGW > 0 || e.LowDemandDayGW > 0 {
		return
	}
	report.AddWarning(validation.Result{
		Level:       validation.LevelAnalytical,
		Message:     "storage is enabled but no low-demand figures were given; all derated output is treated as storable",
		Path:        "inputs.electricity.low_demand_night_gw",
		Suggestions: []string{"Provide low_demand_night_gw and low_demand_day_gw"},
	})
}
