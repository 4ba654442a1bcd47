package server

import (
	"fmt"

	"github.com/Zander1983/WindAndSolar/pkg/assumptions"
	"github.com/Zander1983/WindAndSolar/pkg/engine"
	"github.com/Zander1983/WindAndSolar/pkg/spec"
)

// snapshot is the complete input to one sizing pass. Hosts replace it
// wholesale; it is never mutated after creation.
type snapshot struct {
	Assumptions string               `json:"assumptions"`
	Inputs      spec.SectorInputs    `json:"inputs"`
	Parameters  spec.ModelParameters `json:"parameters"`
}

func emptySnapshot(version string) snapshot {
	return snapshot{
		Assumptions: version,
		Inputs:      spec.SectorInputs{},
		Parameters:  spec.DefaultParameters(),
	}
}

// outcome is a sized snapshot plus how it was obtained.
type outcome struct {
	sized
	Fingerprint string `json:"fingerprint"`
	Cached      bool   `json:"cached"`
}

// sizer runs snapshots through the engine registered for their assumption
// version, memoizing by fingerprint.
type sizer struct {
	engines map[string]*engine.Engine
	cache   *resultCache
}

func newSizer(cache *resultCache) *sizer {
	engines := make(map[string]*engine.Engine)
	for _, v := range assumptions.Versions() {
		set, _ := assumptions.Lookup(v)
		engines[v] = engine.New(set)
	}
	return &sizer{engines: engines, cache: cache}
}

func (z *sizer) size(snap snapshot) (outcome, error) {
	set, err := assumptions.Lookup(snap.Assumptions)
	if err != nil {
		return outcome{}, err
	}
	eng := z.engines[set.Version]

	key, err := engine.Fingerprint(&snap.Inputs, snap.Parameters, set.Version)
	if err != nil {
		return outcome{}, err
	}
	fp := fmt.Sprintf("%016x", key)

	if v, ok := z.cache.get(key); ok {
		return outcome{sized: v, Fingerprint: fp, Cached: true}, nil
	}

	res, report := eng.Size(&snap.Inputs, snap.Parameters)
	v := sized{Result: res, Report: report}
	z.cache.set(key, v)
	return outcome{sized: v, Fingerprint: fp}, nil
}
