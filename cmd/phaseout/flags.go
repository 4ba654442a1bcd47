package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Zander1983/WindAndSolar/pkg/presets"
	"github.com/Zander1983/WindAndSolar/pkg/spec"
)

// scenarioOptions selects the scenario a command sizes and the overrides
// applied on top of it.
type scenarioOptions struct {
	preset      string
	inputs      string
	assumptions string
	params      parameterFlags
}

func (o *scenarioOptions) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&o.preset, "preset", "", "size a bundled country preset instead of a project")
	fs.StringVar(&o.inputs, "inputs", "", "contribution-format JSON file replacing the scenario inputs")
	fs.StringVar(&o.assumptions, "assumptions", "", "assumption set version (default: the scenario's)")
	o.params.register(fs)
}

// load resolves the scenario from a project path, a preset or a bare inputs
// file, in that order, then applies the flag overrides.
func (o *scenarioOptions) load(fs *pflag.FlagSet, args []string) (*spec.Scenario, error) {
	var (
		sc  *spec.Scenario
		err error
	)
	switch {
	case len(args) == 1:
		sc, err = loadScenario(args[0])
	case o.preset != "":
		sc, err = presets.Embedded().Get(o.preset)
	case o.inputs != "":
		sc = &spec.Scenario{Name: filepath.Base(o.inputs), Parameters: spec.DefaultParameters()}
	default:
		return nil, fmt.Errorf("a project path, --preset or --inputs is required")
	}
	if err != nil {
		return nil, err
	}

	if o.inputs != "" {
		in, err := spec.LoadInputsFile(o.inputs)
		if err != nil {
			return nil, err
		}
		sc.Inputs = *in
	}
	if o.assumptions != "" {
		sc.Assumptions = o.assumptions
	}
	o.params.apply(fs, &sc.Parameters)
	return sc, nil
}

// loadScenario accepts a project directory or a scenario YAML file.
func loadScenario(path string) (*spec.Scenario, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("loading scenario: %w", err)
	}
	if info.IsDir() {
		return spec.LoadProject(path)
	}
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("loading scenario: %s is not a YAML file", path)
	}
	return spec.Load(path)
}

// parameterFlags overrides model parameters. Only flags set on the command
// line replace the scenario's values.
type parameterFlags struct {
	turbineMW   float64
	windCF      float64
	solarCF     float64
	windShare   float64
	storage     bool
	storageDays float64
	head        float64
}

func (f *parameterFlags) register(fs *pflag.FlagSet) {
	d := spec.DefaultParameters()
	fs.Float64Var(&f.turbineMW, "turbine-mw", d.TurbineCapacityMW, "nameplate capacity of one wind turbine (MW)")
	fs.Float64Var(&f.windCF, "wind-cf", d.WindCapacityFactorPct, "wind capacity factor (%)")
	fs.Float64Var(&f.solarCF, "solar-cf", d.SolarCapacityFactorPct, "solar capacity factor (%)")
	fs.Float64Var(&f.windShare, "wind-share", d.WindSharePct, "wind share of new generation (%)")
	fs.BoolVar(&f.storage, "storage", d.StorageEnabled, "size pumped-hydro storage")
	fs.Float64Var(&f.storageDays, "storage-days", d.StorageDurationDays, "days of storage to size")
	fs.Float64Var(&f.head, "head", d.LakeHeightDifferenceM, "height difference between reservoirs (m)")
}

func (f *parameterFlags) apply(fs *pflag.FlagSet, p *spec.ModelParameters) {
	if fs.Changed("turbine-mw") {
		p.TurbineCapacityMW = f.turbineMW
	}
	if fs.Changed("wind-cf") {
		p.WindCapacityFactorPct = f.windCF
	}
	if fs.Changed("solar-cf") {
		p.SolarCapacityFactorPct = f.solarCF
	}
	if fs.Changed("wind-share") {
		p.WindSharePct = f.windShare
	}
	if fs.Changed("storage") {
		p.StorageEnabled = f.storage
	}
	if fs.Changed("storage-days") {
		p.StorageDurationDays = f.storageDays
		// Asking for a duration implies wanting storage.
		if !fs.Changed("storage") {
			p.StorageEnabled = true
		}
	}
	if fs.Changed("head") {
		p.LakeHeightDifferenceM = f.head
	}
}
