// Package shortcut is the H3-resolution-3 global shortcut index
// (spec.md §3, §4.3): a total map from H3 cell id to either a single zone
// id (the Unique variant) or an ordered list of candidate outer-polygon
// ids (the Candidate variant).
package shortcut

import (
	"fmt"

	"github.com/geoniles/tzfinder/internal/fbfmt"
	h3 "github.com/uber/h3-go/v4"
)

// Resolution is the fixed H3 resolution the shortcut index is built at
// (~120km edge length — spec.md §4.3).
const Resolution = 3

// MissingCellError indicates an H3 cell has no shortcut entry. Under
// spec.md §3 invariant 1 every resolution-3 cell is covered, so this can
// only arise from a corrupted or truncated shortcuts file.
type MissingCellError struct {
	Cell h3.Cell
}

func (e *MissingCellError) Error() string {
	return fmt.Sprintf("shortcut: no entry for h3 cell %s", e.Cell)
}

// Result is the tagged Unique/Candidate variant a shortcut lookup returns.
// Exactly one of the two branches is meaningful, selected by Unique.
type Result struct {
	Unique     bool
	ZoneID     int      // meaningful iff Unique
	Candidates []uint32 // outer-polygon ids, precomputed order; meaningful iff !Unique
}

// Index wraps the FlatBuffers-encoded entry table with H3 cell resolution
// and binary-search lookup.
type Index struct {
	sc *fbfmt.Shortcuts
}

// New wraps an already-decoded Shortcuts table. Entries must be sorted by
// H3Id ascending (spec.md §6) — New does not re-sort, only the build
// pipeline is trusted to have done so; a violation surfaces as lookup
// misses rather than silent wrong answers, since binary search on
// unsorted data either finds the exact id or nothing.
func New(sc *fbfmt.Shortcuts) *Index {
	return &Index{sc: sc}
}

// CellFor resolves a WGS84 coordinate (already validated and fixed-point
// folded by the caller — see internal/fixedpoint) to its resolution-3 H3
// cell. The engine must not renormalize lon away from ±180° before this
// call except for the +180→-180 fold already applied upstream — H3 itself
// is responsible for correct cell membership at the antimeridian
// (spec.md §4.3).
func CellFor(lon, lat float64) h3.Cell {
	return h3.LatLngToCell(h3.LatLng{Lat: lat, Lng: lon}, Resolution)
}

// Lookup returns the shortcut entry for cell, or a *MissingCellError if the
// dataset has no coverage for it.
func (idx *Index) Lookup(cell h3.Cell) (Result, error) {
	target := uint64(cell)
	n := idx.sc.EntriesLength()

	var e fbfmt.Entry
	lo, hi := 0, n
	for lo < hi {
		mid := (lo + hi) / 2
		idx.sc.Entries(&e, mid)
		if e.H3Id() < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo >= n {
		return Result{}, &MissingCellError{Cell: cell}
	}
	idx.sc.Entries(&e, lo)
	if e.H3Id() != target {
		return Result{}, &MissingCellError{Cell: cell}
	}

	if e.PolyIdsLength() == 0 {
		return Result{Unique: true, ZoneID: int(e.ZoneId())}, nil
	}
	candidates := make([]uint32, e.PolyIdsLength())
	for i := range candidates {
		candidates[i] = e.PolyIds(i)
	}
	return Result{Candidates: candidates}, nil
}

// Len returns the number of entries in the index (~41,162 for a
// full-earth cover at resolution 3).
func (idx *Index) Len() int { return idx.sc.EntriesLength() }
