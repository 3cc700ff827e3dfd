// Package fbfmt is the FlatBuffers wire-format layer for the polygon
// collections (boundaries/coordinates.fbs, holes/coordinates.fbs) and the
// shortcut index (hybrid_shortcuts_{u8,u16}.fbs) fixed by spec.md §6.
//
// flatc is not available in this environment, so the accessor and builder
// code below is hand-written in the same shape the FlatBuffers compiler
// itself emits — vtable-relative field accessors over a flatbuffers.Table,
// field ids assigned in schema declaration order. The schemas:
//
//	table Polygon  { x: [int32]; y: [int32]; }
//	table PolyColl { polygons: [Polygon]; }
package fbfmt

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// Polygon is one outer boundary or hole: parallel x/y scaled-integer vertex
// columns, vertex i at (X(i), Y(i)).
type Polygon struct {
	_tab flatbuffers.Table
}

// GetRootAsPolygon returns a Polygon view rooted at the given buffer offset.
func GetRootAsPolygon(buf []byte, offset flatbuffers.UOffsetT) *Polygon {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	p := &Polygon{}
	p.Init(buf, n+offset)
	return p
}

// Init points the view at table data within buf at position i.
func (rcv *Polygon) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

// Table returns the underlying flatbuffers table.
func (rcv *Polygon) Table() flatbuffers.Table { return rcv._tab }

// X returns scaled-integer vertex x-coordinate j.
func (rcv *Polygon) X(j int) int32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		a := rcv._tab.Vector(o)
		return rcv._tab.GetInt32(a + flatbuffers.UOffsetT(j)*4)
	}
	return 0
}

// XLength returns the number of vertices (equal to YLength for a
// well-formed polygon record).
func (rcv *Polygon) XLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

// Y returns scaled-integer vertex y-coordinate j.
func (rcv *Polygon) Y(j int) int32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		a := rcv._tab.Vector(o)
		return rcv._tab.GetInt32(a + flatbuffers.UOffsetT(j)*4)
	}
	return 0
}

// YLength returns the number of y vertices.
func (rcv *Polygon) YLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

// PolygonStart begins building a Polygon table (2 fields).
func PolygonStart(b *flatbuffers.Builder) { b.StartObject(2) }

// PolygonAddX sets the x vector field.
func PolygonAddX(b *flatbuffers.Builder, x flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(0, x, 0)
}

// PolygonAddY sets the y vector field.
func PolygonAddY(b *flatbuffers.Builder, y flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(1, y, 0)
}

// PolygonEnd finishes the Polygon table and returns its offset.
func PolygonEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT { return b.EndObject() }

// PolygonStartCoordVector starts a [int32] vector of the given length for
// either the x or y field.
func PolygonStartCoordVector(b *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return b.StartVector(4, numElems, 4)
}

// PolyColl is a collection of Polygon tables: all outer boundaries, or all
// holes, depending on which file it was read from.
type PolyColl struct {
	_tab flatbuffers.Table
}

// GetRootAsPolyColl returns a PolyColl view rooted at the given buffer offset.
func GetRootAsPolyColl(buf []byte, offset flatbuffers.UOffsetT) *PolyColl {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	p := &PolyColl{}
	p.Init(buf, n+offset)
	return p
}

// Init points the view at table data within buf at position i.
func (rcv *PolyColl) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

// Polygons reads polygon j of the collection into obj, reusing obj's
// storage (matches the zero-allocation access pattern generated FlatBuffers
// code favors for hot paths). Returns false if the collection has no
// polygons vector.
func (rcv *PolyColl) Polygons(obj *Polygon, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		x := rcv._tab.Vector(o)
		x += flatbuffers.UOffsetT(j) * 4
		x = rcv._tab.Indirect(x)
		obj.Init(rcv._tab.Bytes, x)
		return true
	}
	return false
}

// PolygonsLength returns the number of polygons in the collection.
func (rcv *PolyColl) PolygonsLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

// PolyCollStart begins building a PolyColl table (1 field).
func PolyCollStart(b *flatbuffers.Builder) { b.StartObject(1) }

// PolyCollAddPolygons sets the polygons vector field.
func PolyCollAddPolygons(b *flatbuffers.Builder, polygons flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(0, polygons, 0)
}

// PolyCollEnd finishes the PolyColl table and returns its offset.
func PolyCollEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT { return b.EndObject() }

// PolyCollStartPolygonsVector starts a vector of Polygon table offsets.
func PolyCollStartPolygonsVector(b *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return b.StartVector(4, numElems, 4)
}
