// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package pixel provides byte-width dispatched load, store and fill routines
// for packed pixels of 1, 2 or 4 bytes.
//
// Packed pixels are stored little-endian. One routine body serves every
// width: the width is a run-time parameter and the per-pixel switch is
// trivially predictable inside a row loop.
package pixel

import (
	"encoding/binary"
	"unsafe"
)

// Load reads a packed pixel of bpp bytes from the start of b.
func Load(b []byte, bpp int) uint32 {
	switch bpp {
	case 1:
		return uint32(b[0])
	case 2:
		return uint32(binary.LittleEndian.Uint16(b))
	default:
		return binary.LittleEndian.Uint32(b)
	}
}

// Store writes a packed pixel of bpp bytes to the start of b.
func Store(b []byte, bpp int, v uint32) {
	switch bpp {
	case 1:
		b[0] = uint8(v)
	case 2:
		binary.LittleEndian.PutUint16(b, uint16(v))
	default:
		binary.LittleEndian.PutUint32(b, v)
	}
}

// Replicate spreads a packed pixel across a 32-bit word so that one 4-byte
// store writes 4, 2 or 1 whole pixels.
func Replicate(v uint32, bpp int) uint32 {
	switch bpp {
	case 1:
		v &= 0xFF
		v |= v << 8
		v |= v << 16
	case 2:
		v &= 0xFFFF
		v |= v << 16
	}
	return v
}

// FillRow writes the packed pixel v into every pixel of row.
// len(row) must be a multiple of bpp.
func FillRow(row []byte, bpp int, v uint32) {
	n := len(row)
	if n < 4 {
		for i := 0; i+bpp <= n; i += bpp {
			Store(row[i:], bpp, v)
		}
		return
	}

	word := Replicate(v, bpp)
	quads := n &^ 3
	for i := 0; i < quads; i += 4 {
		binary.LittleEndian.PutUint32(row[i:], word)
	}
	// Tail: at most 3 bytes, always whole pixels since 4 is a multiple of bpp.
	for i := quads; i < n; i++ {
		row[i] = uint8(word >> (8 * uint(i-quads)))
	}
}

// SwapPixels exchanges the bpp-byte pixels at the start of a and b.
func SwapPixels(a, b []byte, bpp int) {
	switch bpp {
	case 1:
		a[0], b[0] = b[0], a[0]
	case 2:
		a[0], a[1], b[0], b[1] = b[0], b[1], a[0], a[1]
	default:
		va := binary.LittleEndian.Uint32(a)
		binary.LittleEndian.PutUint32(a, binary.LittleEndian.Uint32(b))
		binary.LittleEndian.PutUint32(b, va)
	}
}

// Overlap reports whether a and b share any byte of memory.
func Overlap(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	a0 := uintptr(unsafe.Pointer(&a[0]))
	b0 := uintptr(unsafe.Pointer(&b[0]))
	return a0 <= b0+uintptr(len(b)-1) && b0 <= a0+uintptr(len(a)-1)
}
