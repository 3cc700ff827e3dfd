// Package store is the polygon store (spec.md §3–§4.2): memory-mapped (or
// owned-buffer) columnar arrays of outer-polygon and hole vertices,
// per-polygon bounding boxes, a zone-id-per-polygon column, a
// zone-name-to-polygon-range index, and the hole registry.
package store

import (
	"fmt"

	"github.com/geoniles/tzfinder/internal/fbfmt"
	"github.com/geoniles/tzfinder/internal/npyio"
)

// CorruptDataError indicates an on-disk index referenced data outside the
// bounds the rest of the dataset establishes — spec.md §7 treats this as
// fatal, not recoverable, because it means the invariants in spec.md §3 no
// longer hold.
type CorruptDataError struct {
	Component string
	Detail    string
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("store: corrupt data in %s: %s", e.Component, e.Detail)
}

// ZoneIDWidth is the on-disk integer width used for the zone_id column,
// chosen at dataset-build time from N (spec.md §3: uint8 for the
// now-reduced dataset, uint16 for the full one).
type ZoneIDWidth int

const (
	Width8 ZoneIDWidth = iota
	Width16
)

// PolygonStore is the read-only, zero-copy view over one dataset's
// polygons. All accessors are O(1) except HolesOf and PolygonsOfZone,
// which build and return a slice in O(count) per call; neither returns a
// lazy iterator.
type PolygonStore struct {
	outers *fbfmt.PolyColl
	holes  *fbfmt.PolyColl

	xmin, xmax, ymin, ymax *npyio.Array
	zoneIDs                *npyio.Array
	zoneIDWidth            ZoneIDWidth
	zonePositions          *npyio.Array
	holeRegistry           []HoleRange
	zones                  *ZoneTable
}

// New builds a PolygonStore over already-decoded columns. The loader
// (internal/loader) is responsible for resolving dataset files into these
// in-memory/mapped representations; New only validates cross-references
// (invariant 2 of spec.md §3: zone ids reference only names in Z, polygon
// ids only reference polygons in B).
func New(
	outers, holes *fbfmt.PolyColl,
	xmin, xmax, ymin, ymax *npyio.Array,
	zoneIDs *npyio.Array,
	zoneIDWidth ZoneIDWidth,
	zonePositions *npyio.Array,
	holeRegistry []HoleRange,
	zones *ZoneTable,
) (*PolygonStore, error) {
	numOuters := outers.PolygonsLength()

	if xmin.Len != numOuters || xmax.Len != numOuters || ymin.Len != numOuters || ymax.Len != numOuters {
		return nil, &CorruptDataError{Component: "bbox arrays", Detail: "length mismatch with outer polygon count"}
	}
	if zoneIDs.Len != numOuters {
		return nil, &CorruptDataError{Component: "zone_ids.npy", Detail: "length mismatch with outer polygon count"}
	}
	if len(holeRegistry) != numOuters {
		return nil, &CorruptDataError{Component: "hole_registry.json", Detail: "length mismatch with outer polygon count"}
	}
	if zonePositions.Len != zones.Len()+1 {
		return nil, &CorruptDataError{Component: "zone_positions.npy", Detail: "length must be N+1"}
	}
	for z := 0; z < zones.Len(); z++ {
		if zonePositions.Uint32At(z) > zonePositions.Uint32At(z+1) {
			return nil, &CorruptDataError{Component: "zone_positions.npy", Detail: "prefix sums must be non-decreasing"}
		}
	}
	if int(zonePositions.Uint32At(zones.Len())) != numOuters {
		return nil, &CorruptDataError{Component: "zone_positions.npy", Detail: "final prefix sum must equal outer polygon count"}
	}

	for i := 0; i < numOuters; i++ {
		z := zoneIDOf(zoneIDs, zoneIDWidth, i)
		if z < 0 || z >= zones.Len() {
			return nil, &CorruptDataError{Component: "zone_ids.npy", Detail: fmt.Sprintf("polygon %d references unknown zone %d", i, z)}
		}
	}

	numHoles := holes.PolygonsLength()
	for i, hr := range holeRegistry {
		if hr.Count == 0 {
			continue
		}
		if int(hr.First+hr.Count) > numHoles {
			return nil, &CorruptDataError{Component: "hole_registry.json", Detail: fmt.Sprintf("outer %d hole range exceeds hole collection", i)}
		}
	}

	return &PolygonStore{
		outers: outers, holes: holes,
		xmin: xmin, xmax: xmax, ymin: ymin, ymax: ymax,
		zoneIDs: zoneIDs, zoneIDWidth: zoneIDWidth,
		zonePositions: zonePositions, holeRegistry: holeRegistry, zones: zones,
	}, nil
}

func zoneIDOf(arr *npyio.Array, width ZoneIDWidth, i int) int {
	if width == Width8 {
		return int(arr.Uint8At(i))
	}
	return int(arr.Uint16At(i))
}

// NumOuters returns P, the number of outer polygons.
func (s *PolygonStore) NumOuters() int { return s.outers.PolygonsLength() }

// NumHoles returns K, the number of hole polygons.
func (s *PolygonStore) NumHoles() int { return s.holes.PolygonsLength() }

// Zones returns the zone-name table.
func (s *PolygonStore) Zones() *ZoneTable { return s.zones }

// Polygon returns a zero-copy columnar view of outer polygon i.
func (s *PolygonStore) Polygon(i int) fbfmt.Polygon {
	var p fbfmt.Polygon
	s.outers.Polygons(&p, i)
	return p
}

// Hole returns a zero-copy columnar view of hole polygon i (an index into
// H, not into a particular outer polygon's hole range — see HolesOf).
func (s *PolygonStore) Hole(i int) fbfmt.Polygon {
	var p fbfmt.Polygon
	s.holes.Polygons(&p, i)
	return p
}

// BBox returns outer polygon i's precomputed bounding box in scaled
// integers.
func (s *PolygonStore) BBox(i int) BBox {
	return BBox{
		XMin: s.xmin.Int32At(i),
		XMax: s.xmax.Int32At(i),
		YMin: s.ymin.Int32At(i),
		YMax: s.ymax.Int32At(i),
	}
}

// ZoneOf returns the zone id of outer polygon i.
func (s *PolygonStore) ZoneOf(i int) int {
	return zoneIDOf(s.zoneIDs, s.zoneIDWidth, i)
}

// ZoneName returns the name of zone z.
func (s *PolygonStore) ZoneName(z int) string {
	return s.zones.Name(z)
}

// HoleIDs returns the [first, first+count) range of hole ids belonging to
// outer polygon i. Count may be 0.
func (s *PolygonStore) HoleIDs(i int) (first, count uint32) {
	hr := s.holeRegistry[i]
	return hr.First, hr.Count
}

// HolesOf returns the hole views belonging to outer polygon i, in stored
// order. Every view is built before returning, so each call is O(count).
func (s *PolygonStore) HolesOf(i int) []fbfmt.Polygon {
	first, count := s.HoleIDs(i)
	out := make([]fbfmt.Polygon, count)
	for j := uint32(0); j < count; j++ {
		out[j] = s.Hole(int(first + j))
	}
	return out
}

// PolygonsOfZone returns the outer-polygon ids belonging to zone z, in
// stored order (largest first — see spec.md §3 and invariant 3 of §8).
func (s *PolygonStore) PolygonsOfZone(z int) []int {
	start := int(s.zonePositions.Uint32At(z))
	end := int(s.zonePositions.Uint32At(z + 1))
	ids := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		ids = append(ids, i)
	}
	return ids
}
