package server

import (
	"github.com/maypok86/otter"

	"github.com/Zander1983/WindAndSolar/pkg/engine"
	"github.com/Zander1983/WindAndSolar/pkg/validation"
)

// sized is one memoized engine outcome. Result is nil when the report has
// errors.
type sized struct {
	Result *engine.Result      `json:"result"`
	Report *validation.Report `json:"validation"`
}

// resultCache memoizes sizing passes by snapshot fingerprint. Cached values
// are shared between callers and must not be modified.
type resultCache struct {
	c otter.Cache[uint64, sized]
}

func newResultCache(capacity int) (*resultCache, error) {
	c, err := otter.MustBuilder[uint64, sized](capacity).
		CollectStats().
		Build()
	if err != nil {
		return nil, err
	}
	return &resultCache{c: c}, nil
}

func (rc *resultCache) get(key uint64) (sized, bool) {
	return rc.c.Get(key)
}

func (rc *resultCache) set(key uint64, v sized) {
	rc.c.Set(key, v)
}

func (rc *resultCache) stats() cacheStats {
	s := rc.c.Stats()
	return cacheStats{
		Size:   rc.c.Size(),
		Hits:   s.Hits(),
		Misses: s.Misses(),
	}
}

func (rc *resultCache) close() {
	rc.c.Close()
}

type cacheStats struct {
	Size   int   `json:"size"`
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
}
