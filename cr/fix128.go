// Copyright 2025 The core-math Authors. SPDX-License-Identifier: Apache-2.0

package cr

import "math"

// Fixed-point image of a positive real value: Fix{Z, E} stands for
// (Z / 2^126) * 2^E, with Z normalized to [2^126, 2^128). Double-word
// candidates are converted exactly into this form so that the final
// rounding to binary64, under any rounding mode and across the subnormal
// and overflow boundaries, happens in integer arithmetic only. Everything
// before this step runs in round-to-nearest; the requested mode is
// applied exactly once, here.
type Fix struct {
	Z Uint128
	E int
}

const fixFracBits = 126 // Q2.126

// FixFromDW converts a positive double-word h+l (h normal,
// |l| <= ulp(h)) into fixed point. The conversion of h is exact; l is
// truncated below the 2^-126 scale, costing at most one ulp, which the
// caller's error allowance must cover.
func FixFromDW(h, l float64, e int) Fix {
	hb := math.Float64bits(h)
	eh := int(hb>>Bin64MantBits) - Bin64ExpBias
	mh := hb&Bin64MantMask | 1<<Bin64MantBits
	f := Fix{Z: U128From64(mh).Shl(74), E: e + eh}

	if l != 0 {
		lb := math.Float64bits(l)
		el := int(lb>>Bin64MantBits&0x7FF) - Bin64ExpBias
		ml := lb&Bin64MantMask | 1<<Bin64MantBits
		shift := el - eh + 74
		var img Uint128
		switch {
		case shift >= 0:
			img = U128From64(ml).Shl(uint(shift))
		case shift > -53:
			img = U128From64(ml >> uint(-shift))
		}
		if lb&Bin64SignMask != 0 {
			f.Z = f.Z.Sub(img)
		} else {
			f.Z = f.Z.Add(img)
		}
	}
	return f
}

// RoundFix rounds the positive value f (with sign neg applied at the end)
// to binary64 under env.Mode, with errUlps bounding the error of f.Z in
// units of its own last place. It returns ok=false, raising no flags,
// when the error margin straddles a rounding boundary, i.e. when the
// candidate cannot prove its own rounding (the caller then falls back to
// a higher-precision path). An errUlps > 0 interval containing a
// representable point is always refused, so a value that might be exact
// never rounds here with a spurious inexact flag. With ok=true the result
// is the correct rounding of every value within f's error interval, and
// the inexact, underflow and overflow flags (plus errno when enabled) are
// raised on env.
func RoundFix(env *Env, f Fix, errUlps uint64, neg bool) (float64, bool) {
	z, e := f.Z, f.E
	err := U128From64(errUlps)

	// Normalize z into [2^126, 2^127), rescaling the error with it. The
	// right shift keeps a sticky bit so an inexact value never reads as
	// an exact one.
	for z.Hi >= 1<<63 {
		sticky := z.Lo & 1
		z = z.Shr(1)
		z.Lo |= sticky
		e++
		err = err.Shr(1).Add64(1)
	}
	for z.Hi < 1<<62 {
		z = z.Shl(1)
		e--
		err = err.Shl(1)
	}

	mode := env.Mode.ForSign(neg)

	if e > Bin64MaxExp {
		// Beyond the largest binade: overflow whatever the mode does.
		return roundOverflow(env, mode, neg), true
	}

	// cut is how many low bits of z are below the target ulp: 74 for
	// normal results, more as the result sinks into the subnormal range.
	cut := uint(74)
	subnormal := false
	if e < Bin64MinExp {
		d := Bin64MinExp - e
		if d > 54 {
			d = 54 // deeper than half the smallest subnormal: all fraction
		}
		cut += uint(d)
		subnormal = true
	}

	var m uint64
	if cut < 128 {
		m = z.Shr(cut).Lo
	}
	rem := z.TrailingMask(cut)
	exact := rem.IsZero() && errUlps == 0

	if !exact {
		// Refuse to round when the error interval crosses a decision
		// boundary. Representable points are boundaries in every mode:
		// keeping the whole interval strictly between two of them is
		// what makes raising inexact sound. To-nearest adds the
		// midpoint as a third boundary.
		if rem.Cmp(err) < 0 {
			return 0, false
		}
		if errUlps > 0 {
			// rem < 2^cut always holds, so with a zero error bound the
			// upper boundary is unreachable and the wrap below (exact
			// at cut == 128) would misread top as zero.
			var top Uint128
			if cut == 128 {
				top = Uint128{}.Sub(err) // wraps to 2^128 - err
			} else {
				top = U128(0, 1).Shl(cut).Sub(err)
			}
			if rem.Cmp(top) >= 0 {
				return 0, false
			}
		}
		if mode == ToNearestEven {
			half := U128(0, 1).Shl(cut - 1)
			if rem.Cmp(half.Sub(err)) > 0 && rem.Cmp(half.Add(err)) < 0 {
				return 0, false
			}
		}
	}

	// Integer rounding of m per mode.
	if !exact {
		switch mode {
		case ToNearestEven:
			half := U128(0, 1).Shl(cut - 1)
			switch rem.Cmp(half) {
			case 1:
				m++
			case 0:
				m += m & 1 // ties to even
			}
		case Upward:
			m++ // rem > 0 guaranteed by the boundary check
		}
		// TowardZero and Downward truncate.
	}

	if !subnormal && m == 1<<53 {
		m = 1 << 52
		e++
		if e > Bin64MaxExp {
			return roundOverflow(env, mode, neg), true
		}
	}

	var b uint64
	if subnormal {
		// m <= 2^52; the pattern m is the subnormal encoding, and
		// m == 2^52 lands exactly on the smallest normal.
		b = m
	} else {
		b = uint64(e+Bin64ExpBias)<<Bin64MantBits | (m &^ (1 << Bin64MantBits))
	}
	if neg {
		b |= Bin64SignMask
	}

	if !exact {
		env.Raise(Inexact)
		if b&^Bin64SignMask < Bin64MinNormal {
			env.Raise(Underflow)
			env.SetErrnoRange()
		}
	}
	return math.Float64frombits(b), true
}

// roundOverflow delivers the overflow result for the (mirrored) mode:
// to-nearest and away-from-zero overflow to infinity, truncating modes
// saturate at the largest finite value.
func roundOverflow(env *Env, mode RoundingMode, neg bool) float64 {
	env.Raise(Overflow | Inexact)
	env.SetErrnoRange()
	var b uint64
	switch mode {
	case TowardZero, Downward:
		b = Bin64MaxFinite
	default:
		b = Bin64Inf
	}
	if neg {
		b |= Bin64SignMask
	}
	return math.Float64frombits(b)
}
