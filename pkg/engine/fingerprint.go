package engine

import (
	"encoding/json"
	"fmt"

	"github.com/zeebo/xxh3"

	"github.com/Zander1983/WindAndSolar/pkg/spec"
)

// Fingerprint identifies a snapshot. Two snapshots with the same inputs,
// parameters and assumption version share a fingerprint and therefore a
// result.
func Fingerprint(in *spec.SectorInputs, p spec.ModelParameters, version string) (uint64, error) {
	data, err := json.Marshal(struct {
		Version    string               `json:"v"`
		Inputs     *spec.SectorInputs   `json:"i"`
		Parameters spec.ModelParameters `json:"p"`
	}{version, in, p})
	if err != nil {
		return 0, fmt.Errorf("encoding snapshot: %w", err)
	}
	return xxh3.Hash(data), nil
}
