package tzfinder

import (
	"encoding/binary"
	"sort"
	"testing"

	"github.com/geoniles/tzfinder/internal/fbfmt"
	"github.com/geoniles/tzfinder/internal/loader"
	"github.com/geoniles/tzfinder/internal/npyio"
	"github.com/geoniles/tzfinder/internal/shortcut"
	"github.com/geoniles/tzfinder/internal/store"
	flatbuffers "github.com/google/flatbuffers/go"
)

func buildPolyColl(t *testing.T, polys [][2][]int32) *fbfmt.PolyColl {
	t.Helper()
	b := flatbuffers.NewBuilder(1024)

	offsets := make([]flatbuffers.UOffsetT, len(polys))
	for i, poly := range polys {
		xs, ys := poly[0], poly[1]

		fbfmt.PolygonStartCoordVector(b, len(ys))
		for j := len(ys) - 1; j >= 0; j-- {
			b.PrependInt32(ys[j])
		}
		yOff := b.EndVector(len(ys))

		fbfmt.PolygonStartCoordVector(b, len(xs))
		for j := len(xs) - 1; j >= 0; j-- {
			b.PrependInt32(xs[j])
		}
		xOff := b.EndVector(len(xs))

		fbfmt.PolygonStart(b)
		fbfmt.PolygonAddX(b, xOff)
		fbfmt.PolygonAddY(b, yOff)
		offsets[i] = fbfmt.PolygonEnd(b)
	}

	fbfmt.PolyCollStartPolygonsVector(b, len(offsets))
	for i := len(offsets) - 1; i >= 0; i-- {
		b.PrependUOffsetT(offsets[i])
	}
	vec := b.EndVector(len(offsets))

	fbfmt.PolyCollStart(b)
	fbfmt.PolyCollAddPolygons(b, vec)
	root := fbfmt.PolyCollEnd(b)
	b.Finish(root)

	return fbfmt.GetRootAsPolyColl(b.FinishedBytes(), 0)
}

type shortcutFixture struct {
	cell    uint64
	zoneID  uint16
	polyIDs []uint32
}

func buildShortcuts(t *testing.T, entries []shortcutFixture) *fbfmt.Shortcuts {
	t.Helper()
	sort.Slice(entries, func(i, j int) bool { return entries[i].cell < entries[j].cell })

	b := flatbuffers.NewBuilder(512)
	offsets := make([]flatbuffers.UOffsetT, len(entries))
	for i, e := range entries {
		var polyOff flatbuffers.UOffsetT
		if len(e.polyIDs) > 0 {
			fbfmt.EntryStartPolyIdsVector(b, len(e.polyIDs))
			for j := len(e.polyIDs) - 1; j >= 0; j-- {
				b.PrependUint32(e.polyIDs[j])
			}
			polyOff = b.EndVector(len(e.polyIDs))
		}
		fbfmt.EntryStart(b)
		fbfmt.EntryAddH3Id(b, e.cell)
		if len(e.polyIDs) > 0 {
			fbfmt.EntryAddPolyIds(b, polyOff)
		} else {
			fbfmt.EntryAddZoneId(b, e.zoneID)
		}
		offsets[i] = fbfmt.EntryEnd(b)
	}

	fbfmt.ShortcutsStartEntriesVector(b, len(offsets))
	for i := len(offsets) - 1; i >= 0; i-- {
		b.PrependUOffsetT(offsets[i])
	}
	vec := b.EndVector(len(offsets))

	fbfmt.ShortcutsStart(b)
	fbfmt.ShortcutsAddEntries(b, vec)
	root := fbfmt.ShortcutsEnd(b)
	b.Finish(root)

	return fbfmt.GetRootAsShortcuts(b.FinishedBytes(), 0)
}

func int32Array(vals []int32) *npyio.Array {
	raw := make([]byte, len(vals)*4)
	for i, v := range vals {
		binary.LittleEndian.PutUint32(raw[i*4:], uint32(v))
	}
	return &npyio.Array{DType: npyio.Int32, Len: len(vals), Raw: raw}
}

func uint8Array(vals []uint8) *npyio.Array {
	return &npyio.Array{DType: npyio.Uint8, Len: len(vals), Raw: vals}
}

func uint32Array(vals []uint32) *npyio.Array {
	raw := make([]byte, len(vals)*4)
	for i, v := range vals {
		binary.LittleEndian.PutUint32(raw[i*4:], v)
	}
	return &npyio.Array{DType: npyio.Uint32, Len: len(vals), Raw: raw}
}

// Query points used by the fixture below, named for the scenario they
// exercise. Real, widely separated coordinates are used so each lands in a
// distinct H3 resolution-3 cell.
const (
	lonUnique, latUnique     = 10.0, 20.0   // Unique cell -> Zone/A
	lonCollapse, latCollapse = -50.0, -30.0 // Candidate cell, same-zone collapse
	lonHole, latHole         = 80.0, -60.0  // Candidate cell, hole skip then collapse
	lonOcean, latOcean       = -170.0, 5.0  // Unique cell -> Etc/GMT+1
)

// buildFixtureEngine builds a 3-zone, 6-outer-polygon, 1-hole synthetic
// dataset entirely in memory and wraps it in an Engine, without touching
// the filesystem (internal/loader is exercised separately by its own
// package tests).
func buildFixtureEngine(t *testing.T) *Engine {
	t.Helper()

	zones, err := store.ParseZoneTable([]byte("Zone/A\nZone/B\nEtc/GMT+1\n"))
	if err != nil {
		t.Fatalf("ParseZoneTable: %v", err)
	}

	// id0: zone0 placeholder, also the GetGeometry fixture (a clean 0..1
	// degree square).
	// id1: zone0, outer ring around the "hole" query point, with a hole.
	// id2: zone1, fills that same hole — zone1's 3 ids must be contiguous.
	// id3, id4: zone1, arbitrary placement (id3's bbox deliberately
	// excludes the collapse query point, to prove collapse bypasses it).
	// id5: zone2 (Etc/GMT+1) placeholder.
	outers := buildPolyColl(t, [][2][]int32{
		{{0, 10_000_000, 10_000_000, 0}, {0, 0, 10_000_000, 10_000_000}},
		{{799998000, 800002000, 800002000, 799998000}, {-600002000, -600002000, -599998000, -599998000}},
		{{799998000, 800002000, 800002000, 799998000}, {-600002000, -600002000, -599998000, -599998000}},
		{{0, 1000, 1000, 0}, {0, 0, 1000, 1000}},
		{{2000, 3000, 3000, 2000}, {2000, 2000, 3000, 3000}},
		{{0, 1000, 1000, 0}, {0, 0, 1000, 1000}},
	})
	holes := buildPolyColl(t, [][2][]int32{
		{{799999500, 800000500, 800000500, 799999500}, {-600000500, -600000500, -599999500, -599999500}},
	})

	xmin := int32Array([]int32{0, 799998000, 799998000, 0, 2000, 0})
	xmax := int32Array([]int32{10_000_000, 800002000, 800002000, 1000, 3000, 1000})
	ymin := int32Array([]int32{0, -600002000, -600002000, 0, 2000, 0})
	ymax := int32Array([]int32{10_000_000, -599998000, -599998000, 1000, 3000, 1000})
	zoneIDs := uint8Array([]uint8{0, 0, 1, 1, 1, 2})
	zonePositions := uint32Array([]uint32{0, 2, 5, 6})
	holeRegistry := []store.HoleRange{{}, {First: 0, Count: 1}, {}, {}, {}, {}}

	polyStore, err := store.New(outers, holes, xmin, xmax, ymin, ymax, zoneIDs, store.Width8, zonePositions, holeRegistry, zones)
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}

	entries := []shortcutFixture{
		{cell: uint64(shortcut.CellFor(lonUnique, latUnique)), zoneID: 0},
		{cell: uint64(shortcut.CellFor(lonCollapse, latCollapse)), polyIDs: []uint32{3, 4}},
		{cell: uint64(shortcut.CellFor(lonHole, latHole)), polyIDs: []uint32{1, 2}},
		{cell: uint64(shortcut.CellFor(lonOcean, latOcean)), zoneID: 2},
	}
	sc := buildShortcuts(t, entries)

	ds := &loader.Dataset{
		Store:     polyStore,
		Shortcuts: shortcut.New(sc),
		HasOceans: true,
	}
	return &Engine{ds: ds}
}

func mustName(t *testing.T, name *string, err error) string {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name == nil {
		t.Fatal("expected a zone name, got nil")
	}
	return *name
}

func TestTimezoneAtUniqueCell(t *testing.T) {
	e := buildFixtureEngine(t)
	name := mustName(t, e.TimezoneAt(lonUnique, latUnique))
	if name != "Zone/A" {
		t.Errorf("TimezoneAt(unique) = %q, want Zone/A", name)
	}
}

func TestTimezoneAtCollapseBypassesBBox(t *testing.T) {
	e := buildFixtureEngine(t)
	name := mustName(t, e.TimezoneAt(lonCollapse, latCollapse))
	if name != "Zone/B" {
		t.Errorf("TimezoneAt(collapse) = %q, want Zone/B", name)
	}
}

func TestTimezoneAtHoleSkipsToNextCandidate(t *testing.T) {
	e := buildFixtureEngine(t)
	name := mustName(t, e.TimezoneAt(lonHole, latHole))
	if name != "Zone/B" {
		t.Errorf("TimezoneAt(hole) = %q, want Zone/B (the point is inside Zone/A's hole)", name)
	}
}

func TestTimezoneAtLandFiltersOceans(t *testing.T) {
	e := buildFixtureEngine(t)

	name := mustName(t, e.TimezoneAt(lonOcean, latOcean))
	if name != "Etc/GMT+1" {
		t.Fatalf("TimezoneAt(ocean) = %q, want Etc/GMT+1", name)
	}

	land, err := e.TimezoneAtLand(lonOcean, latOcean)
	if err != nil {
		t.Fatalf("TimezoneAtLand: %v", err)
	}
	if land != nil {
		t.Errorf("TimezoneAtLand(ocean) = %v, want nil", *land)
	}
}

func TestUniqueTimezoneAt(t *testing.T) {
	e := buildFixtureEngine(t)

	name := mustName(t, e.UniqueTimezoneAt(lonUnique, latUnique))
	if name != "Zone/A" {
		t.Errorf("UniqueTimezoneAt(unique) = %q, want Zone/A", name)
	}

	name2, err := e.UniqueTimezoneAt(lonCollapse, latCollapse)
	if err != nil {
		t.Fatalf("UniqueTimezoneAt(candidate): %v", err)
	}
	if name2 != nil {
		t.Errorf("UniqueTimezoneAt(candidate) = %v, want nil", *name2)
	}
}

func TestInZone(t *testing.T) {
	e := buildFixtureEngine(t)

	ok, err := e.InZone(lonUnique, latUnique, "Zone/A")
	if err != nil {
		t.Fatalf("InZone: %v", err)
	}
	if !ok {
		t.Error("InZone(unique, Zone/A) = false, want true")
	}

	ok, err = e.InZone(lonUnique, latUnique, "Zone/B")
	if err != nil {
		t.Fatalf("InZone: %v", err)
	}
	if ok {
		t.Error("InZone(unique, Zone/B) = true, want false")
	}
}

func TestTimezoneAtOutOfBounds(t *testing.T) {
	e := buildFixtureEngine(t)
	_, err := e.TimezoneAt(0, 100)
	if err == nil {
		t.Fatal("expected OutOfBoundsError for latitude 100")
	}
	if _, ok := err.(*OutOfBoundsError); !ok {
		t.Errorf("error type = %T, want *OutOfBoundsError", err)
	}
}

func TestZoneNamesAndHasOceans(t *testing.T) {
	e := buildFixtureEngine(t)
	names := e.ZoneNames()
	want := []string{"Zone/A", "Zone/B", "Etc/GMT+1"}
	if len(names) != len(want) {
		t.Fatalf("ZoneNames() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("ZoneNames()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
	if !e.HasOceans() {
		t.Error("HasOceans() = false, want true")
	}
}

func TestGetGeometryByNameAndID(t *testing.T) {
	e := buildFixtureEngine(t)

	mp, err := e.GetGeometry("Zone/A", ParallelArrays)
	if err != nil {
		t.Fatalf("GetGeometry: %v", err)
	}
	if len(mp.Polygons) != 2 {
		t.Fatalf("Zone/A has %d polygons, want 2", len(mp.Polygons))
	}
	outer := mp.Polygons[0].Outer
	if len(outer.Lons) != 4 || outer.Lons[1] != 1.0 {
		t.Errorf("unexpected outer ring: %+v", outer)
	}
	if len(mp.Polygons[1].Holes) != 1 {
		t.Errorf("second Zone/A polygon should have 1 hole, got %d", len(mp.Polygons[1].Holes))
	}

	mp2, err := e.GetGeometry(0, CoordPairs)
	if err != nil {
		t.Fatalf("GetGeometry by id: %v", err)
	}
	if len(mp2.Polygons[0].Outer.Pairs) != 4 {
		t.Errorf("CoordPairs format: got %d pairs, want 4", len(mp2.Polygons[0].Outer.Pairs))
	}
}

func TestGetGeometryUnknownZone(t *testing.T) {
	e := buildFixtureEngine(t)
	if _, err := e.GetGeometry("Nowhere/Here", ParallelArrays); err == nil {
		t.Fatal("expected UnknownZoneError")
	}
}
