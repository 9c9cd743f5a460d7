// Copyright 2025 The core-math Authors. SPDX-License-Identifier: Apache-2.0

package cr

import "math"

// Binary64 layout constants.
//
// Format: Sign (1 bit) | Exponent (11 bits) | Mantissa (52 bits)
//
//	S | EEEEEEEEEEE | MMMM...M
const (
	Bin64MantBits = 52
	Bin64ExpBits  = 11
	Bin64ExpBias  = 1023

	Bin64SignMask = uint64(1) << 63
	Bin64ExpMask  = uint64(0x7FF) << Bin64MantBits
	Bin64MantMask = uint64(1)<<Bin64MantBits - 1
	// Bin64QuietBit distinguishes quiet from signaling NaNs.
	Bin64QuietBit = uint64(1) << (Bin64MantBits - 1)

	// Bin64MinExp and Bin64MaxExp bound the unbiased exponent of normal values.
	Bin64MinExp = -1022
	Bin64MaxExp = 1023

	Bin64Inf          = uint64(0x7FF0000000000000)
	Bin64QNaN         = uint64(0x7FF8000000000000) // canonical quiet NaN
	Bin64MaxFinite    = uint64(0x7FEFFFFFFFFFFFFF) // 0x1.fffffffffffffp+1023
	Bin64MinNormal    = uint64(0x0010000000000000) // 0x1p-1022
	Bin64MinSubnormal = uint64(0x0000000000000001) // 0x1p-1074
)

// Class is the total classification of a floating-point bit pattern.
// Every pattern of every supported format falls in exactly one class.
type Class uint8

const (
	ClassZero Class = iota // +0 or -0
	ClassSubnormal
	ClassNormal
	ClassInf
	ClassQNaN
	ClassSNaN
	// ClassInvalid80 covers binary80 encodings with no IEEE meaning
	// (unnormals and pseudo-denormals); unused for binary32/64.
	ClassInvalid80
)

// String names the class.
func (c Class) String() string {
	switch c {
	case ClassZero:
		return "zero"
	case ClassSubnormal:
		return "subnormal"
	case ClassNormal:
		return "normal"
	case ClassInf:
		return "inf"
	case ClassQNaN:
		return "qnan"
	case ClassSNaN:
		return "snan"
	case ClassInvalid80:
		return "invalid80"
	}
	return "class?"
}

// Classify64 classifies a binary64 bit pattern. Classification is by exact
// bit tests only; it never relies on floating-point comparisons.
func Classify64(bits uint64) Class {
	exp := bits & Bin64ExpMask
	mant := bits & Bin64MantMask
	switch {
	case exp == Bin64ExpMask:
		if mant == 0 {
			return ClassInf
		}
		if mant&Bin64QuietBit != 0 {
			return ClassQNaN
		}
		return ClassSNaN
	case exp == 0:
		if mant == 0 {
			return ClassZero
		}
		return ClassSubnormal
	default:
		return ClassNormal
	}
}

// IsSNaN64 reports whether x is a signaling NaN.
func IsSNaN64(x float64) bool { return Classify64(math.Float64bits(x)) == ClassSNaN }

// QuietNaN64 returns x with its quiet bit set; x must be a NaN. Quieting
// preserves the sign and payload, matching hardware sNaN propagation.
func QuietNaN64(x float64) float64 {
	return math.Float64frombits(math.Float64bits(x) | Bin64QuietBit)
}

// NextUp64 returns the least binary64 value greater than x, walking the
// bit patterns directly (subnormals and binade changes need no cases).
// x must be finite; NextUp64(MaxFinite) is +Inf.
func NextUp64(x float64) float64 {
	u := math.Float64bits(x)
	if u == Bin64SignMask || u == 0 { // ±0
		return math.Float64frombits(1)
	}
	if u&Bin64SignMask != 0 {
		u--
	} else {
		u++
	}
	return math.Float64frombits(u)
}

// NextDown64 returns the greatest binary64 value less than x.
func NextDown64(x float64) float64 { return -NextUp64(-x) }
