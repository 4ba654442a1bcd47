package spec

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectFile is the scenario file name inside a project directory.
const ProjectFile = "scenario.yaml"

// Load reads a scenario from a YAML file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes scenario YAML. Parameters absent from the document
// keep their DefaultParameters values.
func ParseScenario(data []byte) (*Scenario, error) {
	scenario := Scenario{Parameters: DefaultParameters()}
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parsing scenario YAML: %w", err)
	}
	return &scenario, nil
}

// LoadProject loads a scenario from a project directory.
// It looks for scenario.yaml in the given directory.
func LoadProject(projectDir string) (*Scenario, error) {
	return Load(filepath.Join(projectDir, ProjectFile))
}

// LoadInputsJSON decodes a sectoral-input record in the contribution JSON
// format.
func LoadInputsJSON(r io.Reader) (*SectorInputs, error) {
	var in SectorInputs
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("parsing inputs JSON: %w", err)
	}
	return &in, nil
}

// LoadInputsFile reads a contribution JSON file from disk.
func LoadInputsFile(path string) (*SectorInputs, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening inputs file: %w", err)
	}
	defer f.Close()
	return LoadInputsJSON(f)
}
