// Copyright 2025 The core-math Authors. SPDX-License-Identifier: Apache-2.0

package cr

import "math/bits"

// Uint128 is an unsigned 128-bit integer, used both as a plain integer
// (exact squares of 53-bit significands) and as a fixed-point fraction
// (table constants in Q2.126, series accumulation in Q1.127).
type Uint128 struct {
	Hi, Lo uint64
}

// U128 constructs a Uint128 from 64-bit halves.
func U128(hi, lo uint64) Uint128 { return Uint128{hi, lo} }

// U128From64 widens a uint64.
func U128From64(x uint64) Uint128 { return Uint128{0, x} }

// IsZero reports whether x == 0.
func (x Uint128) IsZero() bool { return x.Hi == 0 && x.Lo == 0 }

// Cmp returns -1, 0, or 1 comparing x with y.
func (x Uint128) Cmp(y Uint128) int {
	switch {
	case x.Hi != y.Hi:
		if x.Hi < y.Hi {
			return -1
		}
		return 1
	case x.Lo != y.Lo:
		if x.Lo < y.Lo {
			return -1
		}
		return 1
	}
	return 0
}

// Add returns x+y (mod 2^128).
func (x Uint128) Add(y Uint128) Uint128 {
	lo, c := bits.Add64(x.Lo, y.Lo, 0)
	hi, _ := bits.Add64(x.Hi, y.Hi, c)
	return Uint128{hi, lo}
}

// Add64 returns x+y (mod 2^128).
func (x Uint128) Add64(y uint64) Uint128 {
	lo, c := bits.Add64(x.Lo, y, 0)
	hi, _ := bits.Add64(x.Hi, 0, c)
	return Uint128{hi, lo}
}

// Sub returns x-y (mod 2^128).
func (x Uint128) Sub(y Uint128) Uint128 {
	lo, b := bits.Sub64(x.Lo, y.Lo, 0)
	hi, _ := bits.Sub64(x.Hi, y.Hi, b)
	return Uint128{hi, lo}
}

// Shl returns x << s for 0 <= s < 128.
func (x Uint128) Shl(s uint) Uint128 {
	switch {
	case s == 0:
		return x
	case s < 64:
		return Uint128{x.Hi<<s | x.Lo>>(64-s), x.Lo << s}
	case s < 128:
		return Uint128{x.Lo << (s - 64), 0}
	}
	return Uint128{}
}

// Shr returns x >> s for 0 <= s < 128.
func (x Uint128) Shr(s uint) Uint128 {
	switch {
	case s == 0:
		return x
	case s < 64:
		return Uint128{x.Hi >> s, x.Hi<<(64-s) | x.Lo>>s}
	case s < 128:
		return Uint128{0, x.Hi >> (s - 64)}
	}
	return Uint128{}
}

// LeadingZeros returns the number of leading zero bits in x.
func (x Uint128) LeadingZeros() int {
	if x.Hi != 0 {
		return bits.LeadingZeros64(x.Hi)
	}
	return 64 + bits.LeadingZeros64(x.Lo)
}

// TrailingMask returns x & (2^s - 1) for 0 <= s <= 128.
func (x Uint128) TrailingMask(s uint) Uint128 {
	switch {
	case s == 0:
		return Uint128{}
	case s < 64:
		return Uint128{0, x.Lo & (1<<s - 1)}
	case s < 128:
		return Uint128{x.Hi & (1<<(s-64) - 1), x.Lo}
	}
	return x
}

// Mul64 returns the full 128-bit product x*y of two uint64.
func Mul64(x, y uint64) Uint128 {
	hi, lo := bits.Mul64(x, y)
	return Uint128{hi, lo}
}

// Mul returns the full 256-bit product x*y as (hi, lo) 128-bit halves.
func (x Uint128) Mul(y Uint128) (hi, lo Uint128) {
	// Four 64x64 partial products.
	ll := Mul64(x.Lo, y.Lo)
	lh := Mul64(x.Lo, y.Hi)
	hl := Mul64(x.Hi, y.Lo)
	hh := Mul64(x.Hi, y.Hi)

	mid, c1 := bits.Add64(lh.Lo, hl.Lo, 0)
	mid, c2 := bits.Add64(mid, ll.Hi, 0)
	carry := c1 + c2

	lo = Uint128{mid, ll.Lo}
	hiLo, c3 := bits.Add64(hh.Lo, lh.Hi, 0)
	hiHi := hh.Hi + c3
	hiLo, c3 = bits.Add64(hiLo, hl.Hi, 0)
	hiHi += c3
	hiLo, c3 = bits.Add64(hiLo, carry, 0)
	hiHi += c3
	hi = Uint128{hiHi, hiLo}
	return hi, lo
}

// MulFix returns (x*y) >> shift, truncated, for 64 <= shift < 192.
// It is the working multiply of the fixed-point accurate path: with both
// operands at scale 2^shift the result stays at scale 2^shift, and the
// truncation costs less than one ulp of the result scale.
func (x Uint128) MulFix(y Uint128, shift uint) Uint128 {
	hi, lo := x.Mul(y)
	if shift < 128 {
		return lo.Shr(shift).Add(hi.Shl(128 - shift))
	}
	return hi.Shr(shift - 128)
}

// Div64 returns x / d for a nonzero 64-bit divisor (x.Hi < d not
// required; the quotient must fit 128 bits, which holds for d >= 1).
func (x Uint128) Div64(d uint64) Uint128 {
	qhi := x.Hi / d
	rem := x.Hi % d
	qlo, _ := bits.Div64(rem, x.Lo, d)
	return Uint128{qhi, qlo}
}
