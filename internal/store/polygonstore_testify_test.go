package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolygonStoreBasicsWithTestify(t *testing.T) {
	s := twoZoneFixture(t)

	require.Equal(t, 3, s.NumOuters())
	require.Equal(t, 1, s.NumHoles())

	assert.Equal(t, 0, s.ZoneOf(0))
	assert.Equal(t, 0, s.ZoneOf(1))
	assert.Equal(t, 1, s.ZoneOf(2))
	assert.Equal(t, "Zone/A", s.ZoneName(0))
	assert.Equal(t, "Zone/B", s.ZoneName(1))

	first, count := s.HoleIDs(2)
	assert.Equal(t, uint32(0), first)
	assert.Equal(t, uint32(1), count)
}

func TestNewRejectsZonePositionsLengthMismatchWithTestify(t *testing.T) {
	outers := buildPolyColl(t, [][2][]int32{{{0, 1, 1}, {0, 0, 1}}})
	holes := buildPolyColl(t, nil)
	zones, err := ParseZoneTable([]byte("Zone/A\n"))
	require.NoError(t, err)

	_, err = New(
		outers, holes,
		int32Array([]int32{0}), int32Array([]int32{1}), int32Array([]int32{0}), int32Array([]int32{1}),
		uint8Array([]uint8{0}), Width8,
		uint32Array([]uint32{0}), // wrong length: must be zones.Len()+1 = 2
		[]HoleRange{{}},
		zones,
	)
	require.Error(t, err)
	var corrupt *CorruptDataError
	require.ErrorAs(t, err, &corrupt)
	assert.Equal(t, "zone_positions.npy", corrupt.Component)
}
