// Package presets supplies ready-made country scenarios. Presets are YAML
// scenario documents; the built-in set is embedded in the binary and more can
// be loaded from a directory.
package presets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/Zander1983/WindAndSolar/pkg/spec"
)

// ErrNotFound is returned when no source has a preset of the requested name.
var ErrNotFound = errors.New("preset not found")

//go:embed data/*.yaml
var embedded embed.FS

// Summary describes a preset without its data.
type Summary struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

// Source is a provider of presets.
type Source interface {
	List() ([]Summary, error)
	Get(name string) (*spec.Scenario, error)
}

// FS reads presets from *.yaml files in one directory of a file system. The
// preset name is the file name without extension.
type FS struct {
	fsys fs.FS
	dir  string
}

// NewFS returns a source over dir inside fsys.
func NewFS(fsys fs.FS, dir string) *FS {
	return &FS{fsys: fsys, dir: dir}
}

// Embedded returns the built-in presets.
func Embedded() *FS {
	return NewFS(embedded, "data")
}

// Dir returns a source reading presets from a directory on disk.
func Dir(dir string) *FS {
	return NewFS(os.DirFS(dir), ".")
}

// List returns every preset sorted by name.
func (s *FS) List() ([]Summary, error) {
	names, err := s.names()
	if err != nil {
		return nil, err
	}
	out := make([]Summary, 0, len(names))
	for _, name := range names {
		sc, err := s.Get(name)
		if err != nil {
			return nil, err
		}
		out = append(out, Summary{Name: name, Country: sc.Country})
	}
	return out, nil
}

// Get loads the named preset. Names are matched case-insensitively.
func (s *FS) Get(name string) (*spec.Scenario, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" || strings.ContainsAny(key, `/\`) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	data, err := fs.ReadFile(s.fsys, path.Join(s.dir, key+".yaml"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("reading preset %q: %w", name, err)
	}
	sc, err := spec.ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", name, err)
	}
	sc.Name = key
	return sc, nil
}

func (s *FS) names() ([]string, error) {
	matches, err := fs.Glob(s.fsys, path.Join(s.dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("listing presets: %w", err)
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.ToLower(strings.TrimSuffix(path.Base(m), ".yaml")))
	}
	sort.Strings(names)
	return names, nil
}

// Chain looks presets up in order; earlier sources shadow later ones.
type Chain []Source

// List merges every source's presets, sorted by name.
func (c Chain) List() ([]Summary, error) {
	seen := make(map[string]bool)
	var out []Summary
	for _, src := range c {
		list, err := src.List()
		if err != nil {
			return nil, err
		}
		for _, p := range list {
			if !seen[p.Name] {
				seen[p.Name] = true
				out = append(out, p)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Get returns the first source's preset of that name.
func (c Chain) Get(name string) (*spec.Scenario, error) {
	for _, src := range c {
		sc, err := src.Get(name)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		return sc, err
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}
