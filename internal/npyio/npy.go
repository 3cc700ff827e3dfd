// Package npyio reads the small family of NumPy ".npy" array files the
// dataset-compilation pipeline emits: one-dimensional arrays of uint8,
// uint16, uint32, or int32, little-endian. This is not a general NumPy
// reader; it parses exactly the dtype/shape combinations spec.md §6 fixes.
package npyio

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var magic = []byte{0x93, 'N', 'U', 'M', 'P', 'Y'}

// DType identifies the element type of a parsed array.
type DType int

const (
	Uint8 DType = iota
	Uint16
	Uint32
	Int32
)

func (d DType) size() int {
	switch d {
	case Uint8:
		return 1
	case Uint16:
		return 2
	case Uint32, Int32:
		return 4
	default:
		return 0
	}
}

// Array is a decoded one-dimensional NumPy array. Raw holds the element
// bytes in native file order (little-endian); callers index it with the
// accessor matching DType.
type Array struct {
	DType DType
	Len   int
	Raw   []byte
}

// Uint8At returns element i of a Uint8 array.
func (a *Array) Uint8At(i int) uint8 {
	return a.Raw[i]
}

// Uint16At returns element i of a Uint16 array.
func (a *Array) Uint16At(i int) uint16 {
	return binary.LittleEndian.Uint16(a.Raw[i*2:])
}

// Uint32At returns element i of a Uint32 array.
func (a *Array) Uint32At(i int) uint32 {
	return binary.LittleEndian.Uint32(a.Raw[i*4:])
}

// Int32At returns element i of an Int32 array.
func (a *Array) Int32At(i int) int32 {
	return int32(binary.LittleEndian.Uint32(a.Raw[i*4:]))
}

// Parse decodes a ".npy" file from data held entirely in memory (used for
// both mmap'd byte slices and fully-read buffers — the loader supplies the
// bytes either way; see internal/loader).
func Parse(data []byte) (*Array, error) {
	r := bufio.NewReader(bytes.NewReader(data))

	var hdr [8]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("npyio: read magic: %w", err)
	}
	if !bytes.Equal(hdr[:6], magic) {
		return nil, fmt.Errorf("npyio: bad magic %x", hdr[:6])
	}
	major := hdr[6]

	var headerLen int
	switch major {
	case 1:
		var lenBuf [2]byte
		if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
			return nil, fmt.Errorf("npyio: read header length: %w", err)
		}
		headerLen = int(binary.LittleEndian.Uint16(lenBuf[:]))
	case 2, 3:
		var lenBuf [4]byte
		if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
			return nil, fmt.Errorf("npyio: read header length: %w", err)
		}
		headerLen = int(binary.LittleEndian.Uint32(lenBuf[:]))
	default:
		return nil, fmt.Errorf("npyio: unsupported format version %d", major)
	}

	headerBuf := make([]byte, headerLen)
	if _, err := io.ReadFull(r, headerBuf); err != nil {
		return nil, fmt.Errorf("npyio: read header dict: %w", err)
	}
	header := string(headerBuf)

	dtype, err := parseDescr(header)
	if err != nil {
		return nil, err
	}
	shapeLen, err := parseShapeLen(header)
	if err != nil {
		return nil, err
	}
	if strings.Contains(header, "'fortran_order': True") {
		return nil, fmt.Errorf("npyio: fortran-ordered arrays not supported")
	}

	// The body is sliced out of data rather than read through r, so Raw
	// aliases the caller's (possibly mapped) buffer without a copy.
	lenFieldSize := 2
	if major != 1 {
		lenFieldSize = 4
	}
	body := data[len(hdr)+lenFieldSize+headerLen:]
	want := shapeLen * dtype.size()
	if len(body) < want {
		return nil, fmt.Errorf("npyio: truncated array body: have %d bytes, want %d", len(body), want)
	}

	return &Array{DType: dtype, Len: shapeLen, Raw: body[:want]}, nil
}

// parseDescr extracts the dtype token from a NumPy header dict, e.g.
// "{'descr': '<u2', 'fortran_order': False, 'shape': (123,), }".
func parseDescr(header string) (DType, error) {
	const key = "'descr':"
	i := strings.Index(header, key)
	if i < 0 {
		return 0, fmt.Errorf("npyio: header missing 'descr'")
	}
	rest := header[i+len(key):]
	start := strings.IndexByte(rest, '\'')
	if start < 0 {
		return 0, fmt.Errorf("npyio: malformed descr field")
	}
	rest = rest[start+1:]
	end := strings.IndexByte(rest, '\'')
	if end < 0 {
		return 0, fmt.Errorf("npyio: malformed descr field")
	}
	descr := rest[:end]

	switch descr {
	case "|u1":
		return Uint8, nil
	case "<u2":
		return Uint16, nil
	case "<u4":
		return Uint32, nil
	case "<i4":
		return Int32, nil
	default:
		return 0, fmt.Errorf("npyio: unsupported dtype %q", descr)
	}
}

// parseShapeLen extracts the single dimension of a 1-D shape tuple, e.g.
// "'shape': (1234,)".
func parseShapeLen(header string) (int, error) {
	const key = "'shape':"
	i := strings.Index(header, key)
	if i < 0 {
		return 0, fmt.Errorf("npyio: header missing 'shape'")
	}
	rest := header[i+len(key):]
	open := strings.IndexByte(rest, '(')
	close := strings.IndexByte(rest, ')')
	if open < 0 || close < 0 || close < open {
		return 0, fmt.Errorf("npyio: malformed shape field")
	}
	inner := strings.TrimSpace(rest[open+1 : close])
	inner = strings.TrimSuffix(inner, ",")
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return 0, fmt.Errorf("npyio: expected 1-D shape, got scalar")
	}
	if strings.Contains(inner, ",") {
		return 0, fmt.Errorf("npyio: expected 1-D shape, got %q", inner)
	}
	n, err := strconv.Atoi(inner)
	if err != nil {
		return 0, fmt.Errorf("npyio: parse shape dimension: %w", err)
	}
	return n, nil
}
