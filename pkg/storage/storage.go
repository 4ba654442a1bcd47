// Package storage sizes pumped-hydro storage for a planned grid: the extra
// wind and solar needed to charge it, and the reservoir that holds it.
package storage

import (
	"math"

	"github.com/Zander1983/WindAndSolar/pkg/assumptions"
	"github.com/Zander1983/WindAndSolar/pkg/grid"
	"github.com/Zander1983/WindAndSolar/pkg/spec"
	"github.com/Zander1983/WindAndSolar/pkg/units"
)

// shortfallEpsilonGW absorbs rounding left over after an augmentation pass.
const shortfallEpsilonGW = 1e-9

// Input is everything one sizing pass reads.
type Input struct {
	Demand      grid.Demand
	Plan        grid.Plan
	Electricity spec.Electricity
	Params      spec.ModelParameters
}

// Source is the storage contribution of one generation technology.
type Source struct {
	// StorableGWh is what the source can push into storage per day with the
	// planned fleet, before any augmentation.
	StorableGWh     float64 `json:"storable_gwh_per_day"`
	Share           float64 `json:"share"`
	TargetGWh       float64 `json:"target_gwh_per_day"`
	IncrementalGW   float64 `json:"incremental_capacity_gw"`
	AdditionalUnits int64   `json:"additional_units"`
}

// Result is the storage sizing outcome. Every figure is zero when storage is
// disabled.
type Result struct {
	Enabled        bool    `json:"enabled"`
	DailyTargetGWh float64 `json:"daily_target_gwh"`
	GrowthFactor   float64 `json:"growth_factor"`

	Wind  Source `json:"wind"`
	Solar Source `json:"solar"`

	// SplitFallback is set when neither source could store anything and the
	// target was split evenly.
	SplitFallback bool `json:"split_fallback"`
	Iterations    int  `json:"iterations"`
	Converged     bool `json:"converged"`

	EnergyJ           float64                 `json:"energy_j"`
	WaterMassKg       float64                 `json:"water_mass_kg"`
	ReservoirVolumeM3 int64                   `json:"reservoir_volume_m3"`
	HeadFormula       assumptions.HeadFormula `json:"head_formula"`
}

// Sizer runs the storage pass under one assumption set.
type Sizer struct {
	storage    assumptions.Storage
	generation assumptions.Generation
}

// NewSizer returns a sizer bound to set.
func NewSizer(set assumptions.Set) *Sizer {
	return &Sizer{storage: set.Storage, generation: set.Generation}
}

// source is the per-technology state carried between iterations.
type source struct {
	currentGW float64
	plannedGW float64
	derate    float64
	hours     float64
	loadGW    float64
}

func (s source) storable() float64 {
	rate := units.NonNegative((s.currentGW+s.plannedGW)*s.derate - s.loadGW)
	return rate * s.hours
}

// shortfall is the nameplate to add so the source can store target per day.
// A source already able to store its target needs nothing.
func (s source) shortfall(target float64) float64 {
	if target <= s.storable() {
		return 0
	}
	required := units.Div(target/s.hours+s.loadGW, s.derate).Or(0)
	return units.NonNegative(required - (s.currentGW + s.plannedGW))
}

// Size runs the storage pass. With storage disabled it returns a zero
// Result.
func (z *Sizer) Size(in Input) Result {
	if !in.Params.StorageEnabled {
		return Result{}
	}
	a := z.storage

	r := Result{
		Enabled:        true,
		DailyTargetGWh: units.Div(in.Demand.TotalEnergyOfNewGridTWh/units.DaysPerYear*units.GWhPerTWh, a.RoundTripEfficiency).Or(0),
		GrowthFactor:   in.Demand.GrowthFactor(),
		HeadFormula:    a.HeadFormula,
	}

	wind := source{
		currentGW: in.Electricity.CurrentWindGW.Float(),
		plannedGW: in.Plan.ExtraWindGW,
		derate:    a.WindExcessPerformance,
		hours:     a.WindChargingHours,
		loadGW:    in.Electricity.LowDemandNightGW.Float() * r.GrowthFactor,
	}
	solar := source{
		currentGW: in.Electricity.CurrentSolarGW.Float(),
		plannedGW: in.Plan.ExtraSolarGW,
		derate:    a.SolarExcessPerformance,
		hours:     a.SolarChargingHours,
		loadGW:    in.Electricity.LowDemandDayGW.Float() * r.GrowthFactor,
	}

	maxIter := a.MaxIterations
	if maxIter < 1 {
		maxIter = 1
	}
	for i := 1; i <= maxIter; i++ {
		windGWh, solarGWh := wind.storable(), solar.storable()
		windShare, ok := split(windGWh, solarGWh)
		if i == 1 {
			r.Wind.StorableGWh, r.Solar.StorableGWh = windGWh, solarGWh
			r.SplitFallback = !ok
		}

		r.Wind.Share, r.Solar.Share = windShare, 1-windShare
		r.Wind.TargetGWh = r.DailyTargetGWh * r.Wind.Share
		r.Solar.TargetGWh = r.DailyTargetGWh * r.Solar.Share

		dw, ds := wind.shortfall(r.Wind.TargetGWh), solar.shortfall(r.Solar.TargetGWh)
		wind.plannedGW += dw
		solar.plannedGW += ds
		r.Iterations = i
		if dw <= shortfallEpsilonGW && ds <= shortfallEpsilonGW {
			r.Converged = true
			break
		}
	}

	r.Wind.IncrementalGW = wind.plannedGW - in.Plan.ExtraWindGW
	r.Solar.IncrementalGW = solar.plannedGW - in.Plan.ExtraSolarGW
	r.Wind.AdditionalUnits = roundUpUnits(r.Wind.IncrementalGW*units.MWPerGW, in.Params.TurbineCapacityMW)
	r.Solar.AdditionalUnits = roundUpUnits(r.Solar.IncrementalGW*units.KWPerGW, z.generation.PanelCapacityKW)

	r.EnergyJ = r.DailyTargetGWh * in.Params.StorageDurationDays * units.JoulesPerGWh
	r.WaterMassKg = waterMass(r.EnergyJ, a.GravityMPerS2, in.Params.LakeHeightDifferenceM, a.HeadFormula)
	r.ReservoirVolumeM3 = int64(math.Ceil(units.Div(r.WaterMassKg, a.WaterDensityKgPerM3).Or(0)))
	return r
}

// split returns the wind fraction of the daily target, proportional to what
// each source can store. ok is false when neither can store anything.
func split(windGWh, solarGWh float64) (windShare float64, ok bool) {
	q := units.Div(windGWh, windGWh+solarGWh)
	if !q.Defined {
		return 0.5, false
	}
	return q.Value, true
}

// waterMass is the mass lifted through headM to hold energyJ.
func waterMass(energyJ, g, headM float64, formula assumptions.HeadFormula) float64 {
	if formula == assumptions.HeadLegacyAdditive {
		return units.Div(energyJ, g+headM).Or(0)
	}
	return units.Div(energyJ, g*headM).Or(0)
}

func roundUpUnits(total, perUnit float64) int64 {
	q := units.Div(total, perUnit)
	if !q.Defined || q.Value <= 0 {
		return 0
	}
	return int64(math.Ceil(q.Value - 1e-9))
}

// TotalWindGW is the planned plus storage wind capacity.
func (r Result) TotalWindGW(p grid.Plan) float64 {
	return p.ExtraWindGW + r.Wind.IncrementalGW
}

// TotalSolarGW is the planned plus storage solar capacity.
func (r Result) TotalSolarGW(p grid.Plan) float64 {
	return p.ExtraSolarGW + r.Solar.IncrementalGW
}
