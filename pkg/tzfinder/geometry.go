package tzfinder

import (
	"github.com/geoniles/tzfinder/internal/fbfmt"
	"github.com/geoniles/tzfinder/internal/fixedpoint"
)

// GeometryFormat selects how GetGeometry encodes each ring's coordinates
// (spec.md §4.5.5).
type GeometryFormat int

const (
	// ParallelArrays encodes a ring as separate Lons/Lats slices.
	ParallelArrays GeometryFormat = iota
	// CoordPairs encodes a ring as a slice of (lon, lat) pairs.
	CoordPairs
)

// Point is one (lon, lat) pair in degrees.
type Point struct {
	Lon, Lat float64
}

// Ring is one polygon boundary in degrees. Exactly one of Pairs or
// (Lons, Lats) is populated, selected by the GeometryFormat passed to
// GetGeometry.
type Ring struct {
	Pairs []Point
	Lons  []float64
	Lats  []float64
}

// ZonePolygon is one outer ring plus its holes, all in degrees.
type ZonePolygon struct {
	Outer Ring
	Holes []Ring
}

// MultiPolygon is the full geometry of one timezone: every outer polygon
// belonging to it, in storage order (spec.md §3 — largest-first).
type MultiPolygon struct {
	Polygons []ZonePolygon
}

// GetGeometry returns the full set of outer rings and holes for a zone, in
// degrees. nameOrID must be a string zone name or an int zone id; any other
// type is a programming error and panics, matching the teacher's treatment
// of caller-side type contracts it cannot express in Go's type system.
func (e *Engine) GetGeometry(nameOrID interface{}, format GeometryFormat) (MultiPolygon, error) {
	zoneID, err := e.resolveZoneQuery(nameOrID)
	if err != nil {
		return MultiPolygon{}, err
	}

	ids := e.ds.Store.PolygonsOfZone(zoneID)
	polys := make([]ZonePolygon, len(ids))
	for i, id := range ids {
		outer := e.ds.Store.Polygon(id)
		holeViews := e.ds.Store.HolesOf(id)
		holes := make([]Ring, len(holeViews))
		for j := range holeViews {
			holes[j] = ringFromPolygon(&holeViews[j], format)
		}
		polys[i] = ZonePolygon{
			Outer: ringFromPolygon(&outer, format),
			Holes: holes,
		}
	}
	return MultiPolygon{Polygons: polys}, nil
}

func (e *Engine) resolveZoneQuery(nameOrID interface{}) (int, error) {
	switch v := nameOrID.(type) {
	case string:
		id, ok := e.ds.Store.Zones().ID(v)
		if !ok {
			return 0, &UnknownZoneError{Query: v}
		}
		return id, nil
	case int:
		if v < 0 || v >= e.ds.Store.Zones().Len() {
			return 0, &UnknownZoneError{Query: v}
		}
		return v, nil
	default:
		panic("tzfinder: GetGeometry expects a string name or int zone id")
	}
}

func ringFromPolygon(p *fbfmt.Polygon, format GeometryFormat) Ring {
	n := p.XLength()
	if format == CoordPairs {
		pairs := make([]Point, n)
		for i := 0; i < n; i++ {
			pairs[i] = Point{
				Lon: fixedpoint.ToDegrees(p.X(i)),
				Lat: fixedpoint.ToDegrees(p.Y(i)),
			}
		}
		return Ring{Pairs: pairs}
	}

	lons := make([]float64, n)
	lats := make([]float64, n)
	for i := 0; i < n; i++ {
		lons[i] = fixedpoint.ToDegrees(p.X(i))
		lats[i] = fixedpoint.ToDegrees(p.Y(i))
	}
	return Ring{Lons: lons, Lats: lats}
}
