// Package tzfinder is the public offline IANA timezone lookup API: given a
// WGS84 (longitude, latitude) pair, find the timezone name containing that
// point against a precomputed, immutable dataset (spec.md §4.5).
package tzfinder

import (
	"strings"

	"github.com/geoniles/tzfinder/internal/fixedpoint"
	"github.com/geoniles/tzfinder/internal/loader"
	"github.com/geoniles/tzfinder/internal/pip"
	"github.com/geoniles/tzfinder/internal/shortcut"
	h3 "github.com/uber/h3-go/v4"
)

// Engine is a read-only, loaded dataset ready for concurrent queries. It is
// safe to share a single Engine across goroutines: construction is the only
// phase that touches the filesystem, and every query is a pure function of
// (input, loaded data) (spec.md §5).
type Engine struct {
	ds *loader.Dataset
}

// Open loads the dataset directory dir and returns a ready Engine. dir must
// name a complete dataset (spec.md §6); there is no implicit default
// directory.
func Open(dir string, opts Options) (*Engine, error) {
	ds, err := loader.Load(dir, opts)
	if err != nil {
		return nil, err
	}
	return &Engine{ds: ds}, nil
}

// Close releases the dataset's mapped file regions. The Engine must not be
// used afterward.
func (e *Engine) Close() error {
	return e.ds.Close()
}

// ZoneNames returns the full ordered zone-name table, in zone-id order.
func (e *Engine) ZoneNames() []string {
	return e.ds.Store.Zones().Names()
}

// HasOceans reports whether the loaded dataset includes the Etc/GMT ocean
// zones (the full dataset) or excludes them (the reduced, land-only one).
func (e *Engine) HasOceans() bool {
	return e.ds.HasOceans
}

// TimezoneAt returns the IANA name of the timezone containing (lon, lat),
// or nil if the cell's candidate list yields no match. The last remaining
// candidate always resolves to its own zone without a polygon test (see
// resolveCandidates), so only an empty candidate list yields nil.
func (e *Engine) TimezoneAt(lon, lat float64) (*string, error) {
	return e.query(lon, lat)
}

// TimezoneAtLand is identical to TimezoneAt but reports nil for any match
// whose name starts with "Etc/GMT" (spec.md §4.5.2) — the public wrapper
// does this filtering; Unique shortcut cells over ocean still resolve to
// their ocean zone internally before being filtered here.
func (e *Engine) TimezoneAtLand(lon, lat float64) (*string, error) {
	name, err := e.query(lon, lat)
	if err != nil || name == nil {
		return name, err
	}
	if strings.HasPrefix(*name, "Etc/GMT") {
		return nil, nil
	}
	return name, nil
}

// UniqueTimezoneAt returns a name only when the point's shortcut cell is
// Unique — no polygon test is performed. Returns nil for any Candidate
// cell regardless of how it would ultimately resolve (spec.md §4.5.3).
func (e *Engine) UniqueTimezoneAt(lon, lat float64) (*string, error) {
	_, _, cell, err := e.resolve(lon, lat)
	if err != nil {
		return nil, err
	}
	res, err := e.lookup(cell)
	if err != nil {
		return nil, err
	}
	if !res.Unique {
		return nil, nil
	}
	name := e.ds.Store.ZoneName(res.ZoneID)
	return &name, nil
}

// CertainTimezoneAt is a deprecated alias for TimezoneAt, retained for API
// compatibility with callers migrating off the dataset's previous
// generation (spec.md §4.5.4).
//
// Deprecated: use TimezoneAt.
func (e *Engine) CertainTimezoneAt(lon, lat float64) (*string, error) {
	return e.TimezoneAt(lon, lat)
}

// InZone reports whether (lon, lat) resolves to zoneName.
func (e *Engine) InZone(lon, lat float64, zoneName string) (bool, error) {
	name, err := e.TimezoneAt(lon, lat)
	if err != nil {
		return false, err
	}
	return name != nil && *name == zoneName, nil
}

// query implements the shared timezone_at procedure of spec.md §4.5.1.
func (e *Engine) query(lon, lat float64) (*string, error) {
	x, y, cell, err := e.resolve(lon, lat)
	if err != nil {
		return nil, err
	}
	res, err := e.lookup(cell)
	if err != nil {
		return nil, err
	}
	if res.Unique {
		name := e.ds.Store.ZoneName(res.ZoneID)
		return &name, nil
	}
	return e.resolveCandidates(res.Candidates, x, y)
}

// resolve folds the antimeridian, validates and scales (lon, lat), and
// resolves the resolution-3 H3 cell it falls in (spec.md §4.5.1 step 1).
func (e *Engine) resolve(lon, lat float64) (x, y int32, cell h3.Cell, err error) {
	lon = foldAntimeridian(lon)
	x, err = fixedpoint.Lon(lon)
	if err != nil {
		return
	}
	y, err = fixedpoint.Lat(lat)
	if err != nil {
		return
	}
	cell = shortcut.CellFor(lon, lat)
	return
}

func foldAntimeridian(lon float64) float64 {
	if lon == 180 {
		return -180
	}
	return lon
}

func (e *Engine) lookup(cell h3.Cell) (shortcut.Result, error) {
	res, err := e.ds.Shortcuts.Lookup(cell)
	if err != nil {
		return shortcut.Result{}, &CorruptDataError{Component: "shortcuts", Detail: err.Error()}
	}
	return res, nil
}

// resolveCandidates walks the ordered candidate list applying the
// remaining-zone-set collapse, bbox rejection, point-in-polygon kernel, and
// hole test, in that order (spec.md §4.5.1 step 4).
func (e *Engine) resolveCandidates(candidates []uint32, x, y int32) (*string, error) {
	n := len(candidates)
	if n == 0 {
		return nil, nil
	}

	zones := make([]int, n)
	for i, p := range candidates {
		zones[i] = e.ds.Store.ZoneOf(int(p))
	}

	// sameFrom[i] is true iff zones[i:] are all identical — the
	// "remaining zone set has collapsed to one" short-circuit.
	sameFrom := make([]bool, n+1)
	sameFrom[n] = true
	sameFrom[n-1] = true
	for i := n - 2; i >= 0; i-- {
		sameFrom[i] = sameFrom[i+1] && zones[i] == zones[i+1]
	}

	for i, p := range candidates {
		if sameFrom[i] {
			name := e.ds.Store.ZoneName(zones[i])
			return &name, nil
		}

		bbox := e.ds.Store.BBox(int(p))
		if !bbox.Contains(x, y) {
			continue
		}

		poly := e.ds.Store.Polygon(int(p))
		if !pip.Contains(x, y, &poly) {
			continue
		}

		insideHole := false
		for _, h := range e.ds.Store.HolesOf(int(p)) {
			hole := h
			if pip.Contains(x, y, &hole) {
				insideHole = true
				break
			}
		}
		if insideHole {
			continue
		}

		name := e.ds.Store.ZoneName(zones[i])
		return &name, nil
	}
	return nil, nil
}
