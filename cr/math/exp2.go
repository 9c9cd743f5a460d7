// Copyright 2025 The core-math Authors. SPDX-License-Identifier: Apache-2.0

package math

import (
	stdmath "math"

	"github.com/lntue/core-math/cr"
)

// Degree-4 polynomial for 2^r over |r| <= 2^-16, with the degree-1
// coefficient ln(2) as a double-word. Absolute error below 2^-90.6;
// evaluated in double-word arithmetic by exp2Poly the relative error of
// the result stays under 2^-86.8.
const (
	exp2P1H = 0x1.62e42fefa39efp-1
	exp2P1L = 0x1.abc9c864cbd56p-56
	exp2P2  = 0x1.ebfbdff82c58fp-3
	exp2P3  = 0x1.c6b08d7057b35p-5
	exp2P4  = 0x1.3b2a52e855b32p-7
)

// exp2FastErr bounds the error of the fast path product in units of the
// last place of its fixed-point image: the relative error is below
// 2^-85.8 and the image is below 2^127, so 2^42 covers it with room for
// the conversion.
const exp2FastErr = 1 << 42

// exp2Poly approximates 2^r as a double-word for |r| <= 2^-16.
func exp2Poly(r float64) (h, l float64) {
	y := exp2P4*r + exp2P3
	y = y*r + exp2P2
	h, l = cr.ExactMul(y, r)
	var t float64
	h, t = cr.FastTwoSum(exp2P1H, h)
	l += t + exp2P1L
	h, l = cr.MulDW(h, l, r, 0)
	h, t = cr.FastTwoSum(1, h)
	l += t
	return
}

// Exp2 returns 2**x correctly rounded under env.Mode, raising the
// exceptions of the operation on env.
func Exp2(env *cr.Env, x float64) float64 {
	bits := stdmath.Float64bits(x)
	ax := bits &^ cr.Bin64SignMask

	switch {
	case ax > cr.Bin64Inf: // NaN
		if bits&cr.Bin64QuietBit == 0 {
			env.Raise(cr.Invalid)
		}
		return stdmath.Float64frombits(bits | cr.Bin64QuietBit)
	case ax == cr.Bin64Inf:
		if bits&cr.Bin64SignMask != 0 {
			return 0
		}
		return x
	case x >= 1024: // 2^x >= 2^1024: overflow in every mode
		env.Raise(cr.Overflow | cr.Inexact)
		env.SetErrnoRange()
		if env.Mode == cr.TowardZero || env.Mode == cr.Downward {
			return stdmath.Float64frombits(cr.Bin64MaxFinite)
		}
		return stdmath.Inf(1)
	case x <= -1075: // 2^x <= half the smallest subnormal, a tie at most
		env.Raise(cr.Underflow | cr.Inexact)
		env.SetErrnoRange()
		if env.Mode == cr.Upward {
			return stdmath.Float64frombits(cr.Bin64MinSubnormal)
		}
		return 0
	}

	// Integral x: 2^x is exact, no flags.
	if n := int(x); float64(n) == x {
		if n >= cr.Bin64MinExp {
			return stdmath.Float64frombits(uint64(n+cr.Bin64ExpBias) << cr.Bin64MantBits)
		}
		return stdmath.Float64frombits(uint64(1) << uint(n+1074))
	}

	// |x| < 2^-70: 2^x is within 2^-69 of 1, far inside the half-ulp of
	// 1 in every direction, so the rounding reads off the sign of x.
	if ax < uint64(-70+cr.Bin64ExpBias)<<cr.Bin64MantBits {
		env.Raise(cr.Inexact)
		switch env.Mode {
		case cr.Upward:
			if bits&cr.Bin64SignMask == 0 {
				return 1 + 0x1p-52
			}
		case cr.Downward, cr.TowardZero:
			if bits&cr.Bin64SignMask != 0 {
				return 1 - 0x1p-53
			}
		}
		return 1
	}

	// Split x = k/2^15 + r with |r| <= 2^-16; both k*2^-15 and the
	// difference are exact. Then 2^x = 2^e * 2^(i2/2^5) * 2^(i1/2^10)
	// * 2^(i0/2^15) * 2^r with the three middle factors from tables.
	k := int64(stdmath.Round(x * 0x1p15))
	r := x - float64(k)*0x1p-15
	j := k + 1075<<15
	e := int(j>>15) - 1075
	i := int(j & 32767)
	i0, i1, i2 := i&31, (i>>5)&31, i>>10

	ph, pl := exp2Poly(r)
	hh, ll := cr.MulDW(exp2T2Fast[i2].H, exp2T2Fast[i2].L, exp2T1Fast[i1].H, exp2T1Fast[i1].L)
	hh, ll = cr.MulDW(hh, ll, exp2T0Fast[i0].H, exp2T0Fast[i0].L)
	ph, pl = cr.MulDW(ph, pl, hh, ll)

	if y, ok := cr.RoundFix(env, cr.FixFromDW(ph, pl, e), exp2FastErr, false); ok {
		return y
	}
	return exp2Accurate(env, r, e, i0, i1, i2)
}
