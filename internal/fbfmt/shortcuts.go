package fbfmt

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// Entry is one H3 resolution-3 shortcut cell. It is the Unique variant iff
// PolyIdsLength() == 0, in which case ZoneId() names the single zone
// covering the cell; otherwise it is the Candidate variant and PolyIds
// lists candidate outer-polygon ids in the build pipeline's precomputed
// order (decreasing zone frequency, ties broken by polygon id ascending).
//
//	table Entry    { h3_id: uint64; zone_id: uint16; poly_ids: [uint32]; }
//	table Shortcuts { entries: [Entry]; }
type Entry struct {
	_tab flatbuffers.Table
}

// Init points the view at table data within buf at position i.
func (rcv *Entry) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

// H3Id returns the H3 cell id this entry covers.
func (rcv *Entry) H3Id() uint64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.GetUint64(o + rcv._tab.Pos)
	}
	return 0
}

// ZoneId returns the zone id for a Unique entry; meaningless for a
// Candidate entry (PolyIdsLength() > 0).
func (rcv *Entry) ZoneId() uint16 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.GetUint16(o + rcv._tab.Pos)
	}
	return 0
}

// PolyIds returns candidate outer-polygon id j.
func (rcv *Entry) PolyIds(j int) uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		a := rcv._tab.Vector(o)
		return rcv._tab.GetUint32(a + flatbuffers.UOffsetT(j)*4)
	}
	return 0
}

// PolyIdsLength returns the number of candidate polygon ids; zero means
// this entry is the Unique variant.
func (rcv *Entry) PolyIdsLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

// EntryStart begins building an Entry table (3 fields).
func EntryStart(b *flatbuffers.Builder) { b.StartObject(3) }

// EntryAddH3Id sets the h3_id scalar field.
func EntryAddH3Id(b *flatbuffers.Builder, v uint64) { b.PrependUint64Slot(0, v, 0) }

// EntryAddZoneId sets the zone_id scalar field.
func EntryAddZoneId(b *flatbuffers.Builder, v uint16) { b.PrependUint16Slot(1, v, 0) }

// EntryAddPolyIds sets the poly_ids vector field.
func EntryAddPolyIds(b *flatbuffers.Builder, polyIds flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(2, polyIds, 0)
}

// EntryEnd finishes the Entry table and returns its offset.
func EntryEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT { return b.EndObject() }

// EntryStartPolyIdsVector starts a [uint32] vector of the given length.
func EntryStartPolyIdsVector(b *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return b.StartVector(4, numElems, 4)
}

// Shortcuts is the full H3 resolution-3 cell cover: entries sorted by
// H3Id ascending so lookup is a binary search.
type Shortcuts struct {
	_tab flatbuffers.Table
}

// GetRootAsShortcuts returns a Shortcuts view rooted at the given buffer offset.
func GetRootAsShortcuts(buf []byte, offset flatbuffers.UOffsetT) *Shortcuts {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	s := &Shortcuts{}
	s.Init(buf, n+offset)
	return s
}

// Init points the view at table data within buf at position i.
func (rcv *Shortcuts) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

// Entries reads entry j into obj.
func (rcv *Shortcuts) Entries(obj *Entry, j int) bool {
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

// EntriesLength returns the number of entries (~41,162 at resolution 3 for
// a full-earth cover).
func (rcv *Shortcuts) EntriesLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

// ShortcutsStart begins building a Shortcuts table (1 field).
func ShortcutsStart(b *flatbuffers.Builder) { b.StartObject(1) }

// ShortcutsAddEntries sets the entries vector field.
func ShortcutsAddEntries(b *flatbuffers.Builder, entries flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(0, entries, 0)
}

// ShortcutsEnd finishes the Shortcuts table and returns its offset.
func ShortcutsEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT { return b.EndObject() }

// ShortcutsStartEntriesVector starts a vector of Entry table offsets.
func ShortcutsStartEntriesVector(b *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return b.StartVector(4, numElems, 4)
}
