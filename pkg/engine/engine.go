// Package engine runs one full sizing pass: sector conversion, aggregation,
// generation planning, optional storage sizing and emissions accounting.
package engine

import (
	"errors"
	"fmt"

	"github.com/Zander1983/WindAndSolar/pkg/assumptions"
	"github.com/Zander1983/WindAndSolar/pkg/chart"
	"github.com/Zander1983/WindAndSolar/pkg/emissions"
	"github.com/Zander1983/WindAndSolar/pkg/grid"
	"github.com/Zander1983/WindAndSolar/pkg/sector"
	"github.com/Zander1983/WindAndSolar/pkg/spec"
	"github.com/Zander1983/WindAndSolar/pkg/storage"
	"github.com/Zander1983/WindAndSolar/pkg/validation"
)

// ErrInvalidInput is returned by Run when the inputs or parameters fail
// validation. It wraps the report's error list.
var ErrInvalidInput = errors.New("invalid input")

// Result is the complete output of one pass.
type Result struct {
	Assumptions string           `json:"assumptions"`
	Sectors     sector.Breakdown `json:"sectors"`
	Grid        grid.Sizing      `json:"grid"`
	Storage     storage.Result   `json:"storage"`
	Emissions   emissions.Result `json:"emissions"`
	Charts      chart.Set        `json:"charts"`
}

// Engine sizes snapshots under one assumption set. It holds no state between
// calls and is safe for concurrent use.
type Engine struct {
	set        assumptions.Set
	storage    *storage.Sizer
	accountant *emissions.Accountant
}

// New returns an engine for set.
func New(set assumptions.Set) *Engine {
	return &Engine{
		set:        set,
		storage:    storage.NewSizer(set),
		accountant: emissions.NewAccountant(set.Emissions),
	}
}

// Assumptions returns the set the engine was built with.
func (e *Engine) Assumptions() assumptions.Set {
	return e.set
}

// Size runs the pipeline. The result is nil when the report carries errors;
// the report is never nil.
func (e *Engine) Size(in *spec.SectorInputs, p spec.ModelParameters) (*Result, *validation.Report) {
	report := validation.NewReport()
	report.Merge(validation.ValidateInputs(in))
	report.Merge(validation.ValidateParameters(p))
	if !report.Valid {
		return nil, report
	}
	return e.compute(in, p, report), report
}

func (e *Engine) compute(in *spec.SectorInputs, p spec.ModelParameters, report *validation.Report) *Result {
	// 1. Sectors
	sectors := sector.Convert(in, e.set)

	// 2. Demand
	demand := grid.Aggregate(sectors)

	// 3. Generation mix
	plan, err := grid.PlanGeneration(demand.TotalNewTWh, p, e.set.Generation)
	if err != nil {
		report.AddError(validation.Result{
			Level:   validation.LevelAnalytical,
			Message: err.Error(),
			Path:    "parameters",
		})
		return nil
	}

	// 4. Storage
	store := e.storage.Size(storage.Input{
		Demand:      demand,
		Plan:        plan,
		Electricity: in.Electricity,
		Params:      p,
	})
	plan = plan.Augment(store.Wind.IncrementalGW, store.Solar.IncrementalGW)

	// 5. Emissions
	em := e.accountant.Account(sectors, demand)

	res := &Result{
		Assumptions: e.set.Version,
		Sectors:     sectors,
		Grid:        grid.Sizing{Demand: demand, Plan: plan},
		Storage:     store,
		Emissions:   em,
		Charts:      chart.Build(demand, em, in.Electricity, plan.ExtraWindGW, plan.ExtraSolarGW),
	}

	validateAnalytical(in, p, e.set, res, report)
	return res
}

// Size runs a single pass under set.
func Size(in *spec.SectorInputs, p spec.ModelParameters, set assumptions.Set) (*Result, *validation.Report) {
	return New(set).Size(in, p)
}

// Run sizes a scenario under the assumption set it names. It returns
// ErrInvalidInput when validation fails; the report is returned either way.
func Run(s *spec.Scenario) (*Result, *validation.Report, error) {
	report := validation.ValidateScenario(s)
	if !report.Valid {
		return nil, report, fmt.Errorf("%w: %w", ErrInvalidInput, report.Err())
	}
	set, err := assumptions.Lookup(s.Assumptions)
	if err != nil {
		return nil, report, err
	}

	res := New(set).compute(&s.Inputs, s.Parameters, report)
	if res == nil {
		return nil, report, fmt.Errorf("%w: %w", ErrInvalidInput, report.Err())
	}
	return res, report, nil
}
