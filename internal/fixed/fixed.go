// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package fixed implements Q16.16 fixed-point arithmetic and a whole-degree
// sine table for targets without floating-point hardware.
//
// Rotation, scaling and triangle edge stepping use this package so that the
// results are bit-for-bit identical on every platform.
package fixed

// Q16 is a 16.16 fixed-point number (16 fractional bits).
//
// Range: approximately -32768 to +32768 with 1/65536 precision.
type Q16 = int32

const (
	// Shift is the number of fractional bits in Q16.
	Shift = 16

	// One is 1.0 in Q16 representation.
	One Q16 = 1 << Shift

	// Half is 0.5 in Q16 representation.
	Half Q16 = 1 << (Shift - 1)

	// Mask is the mask for the fractional part of a Q16.
	Mask = One - 1
)

// Wide is a Q16.16 value held in 64 bits, for scale factors and extents
// that overflow the Q16 range.
type Wide = int64

type q16 interface {
	~int32 | ~int64
}

// FromInt converts an integer to Q16.
// The integer must fit in 16 bits.
func FromInt(n int) Q16 {
	return Q16(n) << Shift
}

// Floor returns the integer part (floor) of v.
func Floor[T q16](v T) int {
	return int(int64(v) >> Shift)
}

// Ceil returns the ceiling of v.
func Ceil[T q16](v T) int {
	return int((int64(v) + int64(Mask)) >> Shift)
}

// Round returns the nearest integer to v, rounding halves up.
func Round[T q16](v T) int {
	return int((int64(v) + int64(Half)) >> Shift)
}

// Div divides two integers or two Q16 values and returns a Q16 quotient.
// Division by zero saturates toward the sign of the numerator.
func Div(numer, denom int32) Q16 {
	if denom == 0 {
		if numer >= 0 {
			return 0x7FFFFFFF
		}
		return -0x7FFFFFFF
	}
	return saturate(int64(numer) << Shift / int64(denom))
}

// Ratio returns numer/denom in Q16 for plain integers.
func Ratio(numer, denom int) Q16 {
	return Div(int32(numer), int32(denom))
}

// WideRatio returns numer/denom as a Wide value without saturating.
// denom must not be zero.
func WideRatio(numer, denom int) Wide {
	return Wide(numer) << Shift / Wide(denom)
}

// NormalizeDegrees maps any angle into [0, 360).
func NormalizeDegrees(deg int) int {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return deg
}

// SinDeg returns sin(deg) in Q16 using the lookup table.
func SinDeg(deg int) Q16 {
	return sinTable[NormalizeDegrees(deg)]
}

// CosDeg returns cos(deg) in Q16, looked up as sin(deg + 90).
func CosDeg(deg int) Q16 {
	return sinTable[NormalizeDegrees(deg+90)]
}

// saturate clamps an int64 to the Q16 range.
func saturate(v int64) Q16 {
	const maxQ16 = 0x7FFFFFFF
	const minQ16 = -0x80000000

	if v > maxQ16 {
		return maxQ16
	}
	if v < minQ16 {
		return minQ16
	}
	return Q16(v)
}
