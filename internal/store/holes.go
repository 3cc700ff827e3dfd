package store

import (
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
)

// HoleRange names the slice [First, First+Count) of hole ids belonging to
// one outer polygon. Count is 0 for the ~93% of outer polygons with no
// holes (spec.md §3).
type HoleRange struct {
	First uint32
	Count uint32
}

// ParseHoleRegistry decodes hole_registry.json — {"<outer_id>": [first_hole_id, count], …}
// — into a dense slice indexed by outer polygon id, 0..numOuters-1. Outer
// ids absent from the JSON get the zero HoleRange (no holes).
//
// go-json is a drop-in encoding/json replacement; this dataset decodes once
// at construction, so the win is mostly consistency with the rest of the
// wire-format stack rather than raw throughput.
func ParseHoleRegistry(data []byte, numOuters int) ([]HoleRange, error) {
	var raw map[string][2]uint32
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("store: parse hole_registry.json: %w", err)
	}

	registry := make([]HoleRange, numOuters)
	for key, pair := range raw {
		outerID, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("store: hole_registry.json key %q is not an integer: %w", key, err)
		}
		if outerID < 0 || outerID >= numOuters {
			return nil, fmt.Errorf("store: hole_registry.json outer id %d out of range [0,%d)", outerID, numOuters)
		}
		registry[outerID] = HoleRange{First: pair[0], Count: pair[1]}
	}
	return registry, nil
}
