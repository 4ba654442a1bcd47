package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zander1983/WindAndSolar/pkg/spec"
)

func newOptions(t *testing.T, args ...string) (*scenarioOptions, *pflag.FlagSet) {
	t.Helper()
	var o scenarioOptions
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringVar(&o.preset, "preset", "", "")
	fs.StringVar(&o.inputs, "inputs", "", "")
	fs.StringVar(&o.assumptions, "assumptions", "", "")
	o.params.register(fs)
	require.NoError(t, fs.Parse(args))
	return &o, fs
}

func TestParameterFlagsOnlyOverrideChanged(t *testing.T) {
	o, fs := newOptions(t, "--wind-share", "60", "--head", "300")

	p := spec.ModelParameters{
		TurbineCapacityMW:      4,
		WindCapacityFactorPct:  40,
		SolarCapacityFactorPct: 12,
		WindSharePct:           90,
		LakeHeightDifferenceM:  150,
	}
	o.params.apply(fs, &p)

	assert.Equal(t, 4.0, p.TurbineCapacityMW, "unset flag must not replace the scenario value")
	assert.Equal(t, 40.0, p.WindCapacityFactorPct)
	assert.Equal(t, 60.0, p.WindSharePct)
	assert.Equal(t, 300.0, p.LakeHeightDifferenceM)
	assert.False(t, p.StorageEnabled)
}

func TestStorageDaysEnablesStorage(t *testing.T) {
	o, fs := newOptions(t, "--storage-days", "2")
	p := spec.DefaultParameters()
	o.params.apply(fs, &p)
	assert.True(t, p.StorageEnabled)
	assert.Equal(t, 2.0, p.StorageDurationDays)

	o, fs = newOptions(t, "--storage-days", "2", "--storage=false")
	p = spec.DefaultParameters()
	o.params.apply(fs, &p)
	assert.False(t, p.StorageEnabled, "an explicit --storage=false wins")
}

func TestLoadProjectDirectory(t *testing.T) {
	o, fs := newOptions(t, "--assumptions", "v1")
	sc, err := o.load(fs, []string{"../../examples/ireland"})
	require.NoError(t, err)
	assert.Equal(t, "Ireland", sc.Country)
	assert.Equal(t, "v1", sc.Assumptions)
}

func TestLoadPreset(t *testing.T) {
	o, fs := newOptions(t, "--preset", "ireland", "--wind-cf", "40")
	sc, err := o.load(fs, nil)
	require.NoError(t, err)
	assert.Equal(t, "Ireland", sc.Country)
	assert.Equal(t, 40.0, sc.Parameters.WindCapacityFactorPct)
}

func TestLoadInputsOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contrib.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"electricity":{"existingFossilFuelElectricity":"5"}}`), 0o644))

	o, fs := newOptions(t, "--inputs", path)
	sc, err := o.load(fs, nil)
	require.NoError(t, err)
	assert.Equal(t, spec.Number(5), sc.Inputs.Electricity.ExistingFossilFuel)
	assert.Equal(t, spec.DefaultParameters(), sc.Parameters)
}

func TestLoadRequiresSource(t *testing.T) {
	o, fs := newOptions(t)
	_, err := o.load(fs, nil)
	assert.Error(t, err)
}

func TestLoadRejectsNonYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.txt")
	require.NoError(t, os.WriteFile(path, []byte("name: x"), 0o644))
	_, err := loadScenario(path)
	assert.Error(t, err)
}
