// Copyright 2025 The core-math Authors. SPDX-License-Identifier: Apache-2.0

package math

import (
	stdmath "math"

	"github.com/lntue/core-math/cr"
)

// Sin32 returns sin(x) correctly rounded under env.Mode. The working
// arithmetic is binary64 round-to-nearest throughout; only the final
// narrowing to binary32 applies the mode, and the handful of arguments
// whose binary64 value sits too close to a binary32 boundary come from
// sinHard.
func Sin32(env *cr.Env, x float32) float32 {
	u := stdmath.Float32bits(x)
	ax := u << 1

	if ax > 0x99000000 || ax < 0x73000000 {
		if ax < 0x73000000 { // |x| < 2^-12
			if ax < 0x66000000 { // |x| < 2^-25
				if ax == 0 {
					return x
				}
				return sin32Tiny(env, x)
			}
			return sin32Small(env, x)
		}
		return sin32Big(env, x)
	}

	var z float64
	var ia int32
	if ax < 0x822d97c8 {
		if ax == 0x7e75b8a2 || ax == 0x7f4f0654 {
			return sin32Hard(env, x)
		}
		z, ia = sinReduce0(float64(x))
	} else {
		if ax == 0x8c333330 {
			return sin32Hard(env, x)
		}
		z, ia = sinReduce(float64(x))
	}
	z2 := z * z
	z4 := z2 * z2
	aa := (sinA[0] + z2*sinA[1]) + z4*(sinA[2] + z2*sinA[3])
	bb := (sinB[0] + z2*sinB[1]) + z4*(sinB[2] + z2*sinB[3])
	s0 := sinTb[ia&31]
	c0 := sinTb[(ia+8)&31]
	r := s0 + aa*(z*c0) - bb*(z2*s0)
	return sin32Result(env, r)
}

// sin32Big handles |x| > 2^26, where the quadrant needs the full 256-bit
// reduction, plus the Inf and NaN encodings above it.
func sin32Big(env *cr.Env, x float32) float32 {
	u := stdmath.Float32bits(x)
	ax := u << 1
	if ax >= 0xff000000 {
		if ax<<8 != 0 { // NaN
			if u&cr.Bin32QuietBit == 0 {
				env.Raise(cr.Invalid)
			}
			return stdmath.Float32frombits(u | cr.Bin32QuietBit)
		}
		env.Raise(cr.Invalid) // sin(±Inf)
		env.SetErrnoDomain()
		return stdmath.Float32frombits(cr.Bin32QNaN)
	}
	z, ia := sinReduceBig(u)
	z2 := z * z
	z4 := z2 * z2
	aa := (sinA[0] + z2*sinA[1]) + z4*(sinA[2] + z2*sinA[3])
	bb := (sinB[0] + z2*sinB[1]) + z4*(sinB[2] + z2*sinB[3])
	s0 := sinTb[ia&31]
	c0 := sinTb[(ia+8)&31]
	r := s0 + z*(aa*c0-bb*(z*s0))
	return sin32Result(env, r)
}

// sin32Tiny covers 0 < |x| < 2^-25: sin(x) lies strictly between x and
// its neighbor toward zero, far closer to x than half an ulp, so the
// result reads off the mode and the sign.
func sin32Tiny(env *cr.Env, x float32) float32 {
	r := x
	switch env.Mode {
	case cr.TowardZero:
		if x > 0 {
			r = cr.NextDown32(x)
		} else {
			r = cr.NextUp32(x)
		}
	case cr.Downward:
		if x > 0 {
			r = cr.NextDown32(x)
		}
	case cr.Upward:
		if x < 0 {
			r = cr.NextUp32(x)
		}
	}
	env.Raise(cr.Inexact)
	if stdmath.Float32bits(r)&^cr.Bin32SignMask < cr.Bin32MinNormal {
		env.Raise(cr.Underflow)
		env.SetErrnoRange()
	}
	return r
}

// sin32Small covers 2^-25 <= |x| < 2^-12 with a cubic correction. Each
// step is one binary32 operation carried exactly in binary64 and
// narrowed under the mode, so directed rounding propagates the same way
// hardware single-precision arithmetic would.
func sin32Small(env *cr.Env, x float32) float32 {
	const c = float32(-0x1.555556p-3)
	t1, _, _ := roundTo32(env.Mode, float64(c)*float64(x))
	t2, _, _ := roundTo32(env.Mode, float64(x)*float64(x))
	t3, _, _ := roundTo32(env.Mode, float64(t1)*float64(t2))
	f, _, _ := roundTo32(env.Mode, float64(t3)+float64(x))
	env.Raise(cr.Inexact)
	return f
}

// sin32Hard returns the stored result for a hard-to-round argument. The
// rh and rl parts land on opposite sides of the boundary, so a single
// narrowing of their exact sum rounds correctly in every mode.
func sin32Hard(env *cr.Env, x float32) float32 {
	ax := stdmath.Float32bits(x) &^ cr.Bin32SignMask
	sgn := float32(1)
	if x < 0 {
		sgn = -1
	}
	for _, h := range sinHard {
		if h.uarg == ax {
			f, _, _ := roundTo32(env.Mode, float64(sgn*h.rh)+float64(sgn*h.rl))
			env.Raise(cr.Inexact)
			return f
		}
	}
	return 0 // callers only pass listed arguments
}

func sin32Result(env *cr.Env, r float64) float32 {
	f, _, tiny := roundTo32(env.Mode, r)
	env.Raise(cr.Inexact)
	if tiny {
		env.Raise(cr.Underflow)
		env.SetErrnoRange()
	}
	return f
}

// sinReduce0 reduces |x| < 9.42 with a single product by 4/pi.
func sinReduce0(x float64) (float64, int32) {
	idh := 0x1.45f306dc9c883p+2 * x
	id := stdmath.RoundToEven(idh)
	return idh - id, int32(int64(id))
}

// sinReduce reduces 9.42 <= |x| <= 2^26 with 4/pi split in two.
func sinReduce(x float64) (float64, int32) {
	idl := -0x1.b1bbead603d8bp-29 * x
	idh := 0x1.45f306ep+2 * x
	id := stdmath.RoundToEven(idh)
	return (idh - id) + idl, int32(int64(id))
}

// sinReduceBig computes the octant and reduced argument of a huge
// binary32 value from a 24x256-bit product with 4/pi: the bits above
// the octant drop out, the next 32 select it, and the following 64 give
// the fraction in [-1/2, 1/2).
func sinReduceBig(u uint32) (float64, int32) {
	e := int(u>>23) & 0xff
	m := uint64(u&cr.Bin32MantMask) | 1<<cr.Bin32MantBits
	p0 := cr.Mul64(m, sinIPi[0])
	p1 := cr.Mul64(m, sinIPi[1]).Add64(p0.Hi)
	p2 := cr.Mul64(m, sinIPi[2]).Add64(p1.Hi)
	p3 := cr.Mul64(m, sinIPi[3]).Add64(p2.Hi)

	var i int32
	var a int64
	s := uint(e - 147) // 6 <= s <= 107 for the callers' range
	switch {
	case s < 64:
		i = int32(p3.Hi<<s | p3.Lo>>(64-s))
		a = int64(p3.Lo<<s | p2.Lo>>(64-s))
	case s == 64:
		i = int32(p3.Lo)
		a = int64(p2.Lo)
	default:
		i = int32(p3.Lo<<(s-64) | p2.Lo>>(128-s))
		a = int64(p2.Lo<<(s-64) | p1.Lo>>(128-s))
	}
	sgn := int32(u) >> 31 // 0 for positive x, -1 for negative
	i -= int32(a >> 63)   // round the octant to nearest
	z := float64(a^int64(sgn)) * 0x1p-64
	i = (i ^ sgn) - sgn
	return z, i
}

// roundTo32 rounds a finite binary64 value to binary32 under mode,
// reporting whether the narrowing was inexact and whether the result is
// tiny (subnormal or zero after an inexact rounding).
func roundTo32(mode cr.RoundingMode, d float64) (f float32, inexact, tiny bool) {
	b := stdmath.Float64bits(d)
	neg := b&cr.Bin64SignMask != 0
	ab := b &^ cr.Bin64SignMask
	var sb uint32
	if neg {
		sb = cr.Bin32SignMask
	}
	if ab == 0 {
		return stdmath.Float32frombits(sb), false, false
	}
	dir := mode.ForSign(neg)

	e := int(ab>>cr.Bin64MantBits) - cr.Bin64ExpBias
	m := ab&cr.Bin64MantMask | 1<<cr.Bin64MantBits
	if ab < cr.Bin64MinNormal {
		m = ab
		e = cr.Bin64MinExp
	}

	if e > cr.Bin32MaxExp {
		if dir == cr.TowardZero || dir == cr.Downward {
			return stdmath.Float32frombits(sb | cr.Bin32MaxFinite), true, false
		}
		return stdmath.Float32frombits(sb | cr.Bin32Inf), true, false
	}

	drop := uint(cr.Bin64MantBits - cr.Bin32MantBits) // 29 for normal results
	if e < cr.Bin32MinExp {
		d := uint(cr.Bin32MinExp - e)
		if d > 25 {
			d = 25 // below half the smallest subnormal either way
		}
		drop += d
	}
	keep := uint32(m >> drop)
	rem := m & (1<<drop - 1)

	if rem != 0 {
		inexact = true
		switch dir {
		case cr.ToNearestEven:
			if half := uint64(1) << (drop - 1); rem > half || (rem == half && keep&1 == 1) {
				keep++
			}
		case cr.Upward:
			keep++
		}
	}

	var rb uint32
	if e < cr.Bin32MinExp {
		rb = keep // subnormal pattern; keep == 2^23 is the smallest normal
	} else {
		if keep == 1<<(cr.Bin32MantBits+1) {
			keep >>= 1
			e++
			if e > cr.Bin32MaxExp {
				return stdmath.Float32frombits(sb | cr.Bin32Inf), true, false
			}
		}
		rb = uint32(e+cr.Bin32ExpBias)<<cr.Bin32MantBits | keep&cr.Bin32MantMask
	}
	tiny = inexact && rb < cr.Bin32MinNormal
	return stdmath.Float32frombits(sb | rb), inexact, tiny
}
