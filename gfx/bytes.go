package gfx

import (
	"encoding/binary"
	"math"
)

// F32Bytes packs float32 values into a little-endian byte slice, ready for BufferData.
func F32Bytes(values ...float32) []byte {
	b := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(b[4*i:], math.Float32bits(v))
	}
	return b
}

// U16Bytes packs uint16 values (typically element indices) into a little-endian byte slice.
func U16Bytes(values ...uint16) []byte {
	b := make([]byte, 2*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint16(b[2*i:], v)
	}
	return b
}

// BytesF32 is the inverse of F32Bytes; trailing bytes that don't form a full float are ignored.
func BytesF32(b []byte) []float32 {
	out := make([]float32, len(b)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[4*i:]))
	}
	return out
}
