package npyio

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// buildNpy constructs a minimal version-1 .npy file for the given dtype
// descriptor and raw element bytes, padding the header to a 16-byte
// boundary the way numpy.save does.
func buildNpy(t *testing.T, descr string, n int, body []byte) []byte {
	t.Helper()
	header := "{'descr': '" + descr + "', 'fortran_order': False, 'shape': ("
	if n == 1 {
		header += "1,"
	} else {
		header += itoa(n) + ","
	}
	header += "), }"
	// pad so that magic(6)+ver(2)+lenfield(2)+header is a multiple of 16,
	// and ends with a newline.
	total := 10 + len(header) + 1
	pad := (16 - total%16) % 16
	for i := 0; i < pad; i++ {
		header += " "
	}
	header += "\n"

	var buf bytes.Buffer
	buf.Write(magic)
	buf.WriteByte(1) // major
	buf.WriteByte(0) // minor
	var lenBuf [2]byte
	binary.LittleEndian.PutUint16(lenBuf[:], uint16(len(header)))
	buf.Write(lenBuf[:])
	buf.WriteString(header)
	buf.Write(body)
	return buf.Bytes()
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	if neg {
		digits = append([]byte{'-'}, digits...)
	}
	return string(digits)
}

func TestParseUint16(t *testing.T) {
	body := make([]byte, 6)
	binary.LittleEndian.PutUint16(body[0:], 10)
	binary.LittleEndian.PutUint16(body[2:], 20)
	binary.LittleEndian.PutUint16(body[4:], 65535)

	data := buildNpy(t, "<u2", 3, body)
	arr, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if arr.DType != Uint16 || arr.Len != 3 {
		t.Fatalf("unexpected array header: %+v", arr)
	}
	if arr.Uint16At(0) != 10 || arr.Uint16At(1) != 20 || arr.Uint16At(2) != 65535 {
		t.Errorf("unexpected values: %d %d %d", arr.Uint16At(0), arr.Uint16At(1), arr.Uint16At(2))
	}
}

func TestParseInt32(t *testing.T) {
	body := make([]byte, 8)
	neg, pos := int32(-1800000000), int32(1800000000)
	binary.LittleEndian.PutUint32(body[0:], uint32(neg))
	binary.LittleEndian.PutUint32(body[4:], uint32(pos))

	data := buildNpy(t, "<i4", 2, body)
	arr, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if arr.Int32At(0) != -1800000000 || arr.Int32At(1) != 1800000000 {
		t.Errorf("unexpected values: %d %d", arr.Int32At(0), arr.Int32At(1))
	}
}

func TestParseBadMagic(t *testing.T) {
	if _, err := Parse([]byte("not an npy file at all")); err == nil {
		t.Fatal("expected error for bad magic")
	}
}

func TestParseUint8(t *testing.T) {
	body := []byte{1, 2, 3, 255}
	data := buildNpy(t, "|u1", 4, body)
	arr, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if arr.Uint8At(3) != 255 {
		t.Errorf("Uint8At(3) = %d, want 255", arr.Uint8At(3))
	}
}
