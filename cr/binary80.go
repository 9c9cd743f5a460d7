// Copyright 2025 The core-math Authors. SPDX-License-Identifier: Apache-2.0

package cr

// Float80 is an x87 double-extended (binary80) value held as raw fields:
// a 64-bit significand with an explicit integer bit, and a 16-bit
// sign+exponent word. Go has no native type for this format, so it exists
// here purely at the bit level: the classification contract of the data
// model must be total for all three supported formats, and randomized
// harnesses need to construct and inspect extended-precision patterns.
//
// Layout: SE = S (1 bit) | EEEEEEEEEEEEEEE (15 bits); M carries the
// explicit integer bit in bit 63.
type Float80 struct {
	M  uint64 // significand, explicit integer bit at bit 63
	SE uint16 // sign and biased exponent
}

// Binary80 layout constants.
const (
	Bin80ExpBias  = 16383
	Bin80ExpMask  = uint16(0x7FFF)
	Bin80SignMask = uint16(0x8000)
	// Bin80IntBit is the explicit integer bit of the significand.
	Bin80IntBit = uint64(1) << 63
	// Bin80QuietBit distinguishes quiet from signaling NaNs.
	Bin80QuietBit = uint64(1) << 62
)

// Sign reports whether the sign bit is set.
func (f Float80) Sign() bool { return f.SE&Bin80SignMask != 0 }

// Exp returns the biased exponent field.
func (f Float80) Exp() uint16 { return f.SE & Bin80ExpMask }

// Classify returns the total classification of the pattern. Unlike
// binary32/64, the explicit integer bit admits encodings outside IEEE
// interchange semantics: unnormals (nonzero exponent, integer bit clear)
// and pseudo-denormals (zero exponent, integer bit set). Modern x87
// hardware treats them as invalid operands; they classify as
// ClassInvalid80 so that no pattern is left unclassified.
func (f Float80) Classify() Class {
	exp := f.Exp()
	switch {
	case exp == Bin80ExpMask:
		if f.M&Bin80IntBit == 0 {
			return ClassInvalid80 // pseudo-NaN/pseudo-infinity
		}
		if f.M == Bin80IntBit {
			return ClassInf
		}
		if f.M&Bin80QuietBit != 0 {
			return ClassQNaN
		}
		return ClassSNaN
	case exp == 0:
		if f.M&Bin80IntBit != 0 {
			return ClassInvalid80 // pseudo-denormal
		}
		if f.M == 0 {
			return ClassZero
		}
		return ClassSubnormal
	default:
		if f.M&Bin80IntBit == 0 {
			return ClassInvalid80 // unnormal
		}
		return ClassNormal
	}
}

// IsNaN reports whether the pattern is any NaN (quiet or signaling).
func (f Float80) IsNaN() bool {
	c := f.Classify()
	return c == ClassQNaN || c == ClassSNaN
}

// Quiet returns the pattern with its quiet bit set; f must be a NaN.
func (f Float80) Quiet() Float80 {
	f.M |= Bin80QuietBit
	return f
}

// Abs returns the pattern with the sign bit cleared.
func (f Float80) Abs() Float80 {
	f.SE &^= Bin80SignMask
	return f
}
