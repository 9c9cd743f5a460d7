// Copyright 2025 The core-math Authors. SPDX-License-Identifier: Apache-2.0

package cr

import "math"

// Binary32 layout constants.
//
// Format: Sign (1 bit) | Exponent (8 bits) | Mantissa (23 bits)
const (
	Bin32MantBits = 23
	Bin32ExpBits  = 8
	Bin32ExpBias  = 127

	Bin32SignMask = uint32(1) << 31
	Bin32ExpMask  = uint32(0xFF) << Bin32MantBits
	Bin32MantMask = uint32(1)<<Bin32MantBits - 1
	Bin32QuietBit = uint32(1) << (Bin32MantBits - 1)

	Bin32MinExp = -126
	Bin32MaxExp = 127

	Bin32Inf          = uint32(0x7F800000)
	Bin32QNaN         = uint32(0x7FC00000)
	Bin32MaxFinite    = uint32(0x7F7FFFFF) // 0x1.fffffep+127
	Bin32MinNormal    = uint32(0x00800000) // 0x1p-126
	Bin32MinSubnormal = uint32(0x00000001) // 0x1p-149
)

// Classify32 classifies a binary32 bit pattern by exact bit tests.
func Classify32(bits uint32) Class {
	exp := bits & Bin32ExpMask
	mant := bits & Bin32MantMask
	switch {
	case exp == Bin32ExpMask:
		if mant == 0 {
			return ClassInf
		}
		if mant&Bin32QuietBit != 0 {
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

// IsSNaN32 reports whether x is a signaling NaN.
func IsSNaN32(x float32) bool { return Classify32(math.Float32bits(x)) == ClassSNaN }

// QuietNaN32 returns x with its quiet bit set; x must be a NaN.
func QuietNaN32(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) | Bin32QuietBit)
}

// NextUp32 returns the least binary32 value greater than x (finite x).
func NextUp32(x float32) float32 {
	u := math.Float32bits(x)
	if u == Bin32SignMask || u == 0 {
		return math.Float32frombits(1)
	}
	if u&Bin32SignMask != 0 {
		u--
	} else {
		u++
	}
	return math.Float32frombits(u)
}

// NextDown32 returns the greatest binary32 value less than x.
func NextDown32(x float32) float32 { return -NextUp32(-x) }
