// Copyright 2025 The core-math Authors. SPDX-License-Identifier: Apache-2.0

package math

import (
	stdmath "math"

	"github.com/lntue/core-math/cr"
)

// Hypot returns sqrt(x*x + y*y) correctly rounded under env.Mode,
// without intermediate overflow or underflow. The computation is exact
// integer arithmetic throughout: the sum of the squared mantissas is
// formed in 128 bits plus a 128-bit tail, its integer square root is
// taken at the target precision, and the remainder decides the rounding
// direction and exactness.
func Hypot(env *cr.Env, x, y float64) float64 {
	xb := stdmath.Float64bits(x) &^ cr.Bin64SignMask
	yb := stdmath.Float64bits(y) &^ cr.Bin64SignMask
	if xb < yb { // order by magnitude; NaN above Inf above finite
		xb, yb = yb, xb
	}

	if xb >= cr.Bin64Inf {
		// hypot(±Inf, qNaN) and hypot(qNaN, ±Inf) are +Inf.
		if xb > cr.Bin64Inf { // x is NaN
			if isSNaNBits(xb) || (yb > cr.Bin64Inf && isSNaNBits(yb)) {
				env.Raise(cr.Invalid)
				return stdmath.Float64frombits(xb | cr.Bin64QuietBit)
			}
			if yb == cr.Bin64Inf {
				return stdmath.Inf(1)
			}
			return stdmath.Float64frombits(xb)
		}
		return stdmath.Inf(1) // at least one Inf, other finite or Inf
	}

	if yb == 0 { // hypot(x, ±0) = |x|, exact; hypot(±0, ±0) = +0
		return stdmath.Float64frombits(xb)
	}

	mx, ex := splitMantExp(xb)
	my, ey := splitMantExp(yb)
	d := ex - ey

	if d >= 27 {
		// y*y < |x|*ulp(|x|), so the sum stays below the first midpoint
		// above |x|; the result is |x| or its successor and never exact.
		return hypotNear(env, xb)
	}

	// hh + ll/2^128 = mx^2 + my^2/2^(2d), renormalized so that the
	// square root lands in [2^52, 2^53).
	xx := cr.Mul64(mx, mx)
	yy := cr.Mul64(my, my)
	hh := xx.Add(yy.Shr(uint(2 * d)))
	var ll cr.Uint128
	if d > 0 {
		ll = yy.Shl(uint(128 - 2*d))
	}
	if hh.Hi >= 1<<(106-64) {
		ll = hh.TrailingMask(2).Shl(126).Add(ll.Shr(2))
		hh = hh.Shr(2)
		ex++
	}
	// value = sqrt(hh + ll/2^128) * 2^(ex-52), hh in [2^104, 2^106)

	if ex > cr.Bin64MaxExp { // the root is at least 2^ex
		return roundOverflowPos(env)
	}

	sub := false
	if ex < cr.Bin64MinExp {
		// Fold the bits below the subnormal ulp into the tail.
		k := uint(cr.Bin64MinExp - ex) // k <= 52
		ll = hh.TrailingMask(2 * k).Shl(128 - 2*k).Add(ll.Shr(2 * k))
		hh = hh.Shr(2 * k)
		ex += int(k)
		sub = true
	}

	th := isqrtFix(hh)
	r := hh.Sub(cr.Mul64(th, th))

	if r.IsZero() && ll.IsZero() { // exact, no flags
		return hypotCompose(env, th, ex, sub, true)
	}

	env.Raise(cr.Inexact)
	up := false
	switch env.Mode {
	case cr.ToNearestEven:
		// Round up past the midpoint th+1/2: r > th, with the tail and
		// the parity of th breaking the r == th boundary. The quarter
		// in (th+1/2)^2 is 2^126 at the tail scale.
		quarter := cr.U128(1<<62, 0)
		switch r.Cmp(cr.U128From64(th)) {
		case 1:
			up = true
		case 0:
			if c := ll.Cmp(quarter); c > 0 || (c == 0 && th&1 == 1) {
				up = true
			}
		}
	case cr.Upward:
		up = true
	}
	if up {
		th++
	}
	return hypotCompose(env, th, ex, sub, false)
}

// hypotNear rounds hypot when the smaller operand cannot reach the
// first midpoint above the larger: only upward rounding moves off |x|.
func hypotNear(env *cr.Env, xb uint64) float64 {
	env.Raise(cr.Inexact)
	r := stdmath.Float64frombits(xb)
	if env.Mode == cr.Upward {
		r = cr.NextUp64(r)
		if stdmath.IsInf(r, 1) {
			env.Raise(cr.Overflow)
			env.SetErrnoRange()
			return r
		}
	}
	// Underflow follows the rounded result, not the input.
	if stdmath.Float64bits(r) < cr.Bin64MinNormal {
		env.Raise(cr.Underflow)
		env.SetErrnoRange()
	}
	return r
}

// hypotCompose assembles th * 2^(ex-52), tracking the binade carry out
// of the mantissa and the overflow and underflow exceptions.
func hypotCompose(env *cr.Env, th uint64, ex int, sub, exact bool) float64 {
	if th == 1<<(cr.Bin64MantBits+1) {
		th >>= 1
		ex++
	}
	if ex > cr.Bin64MaxExp {
		return roundOverflowPos(env)
	}
	var b uint64
	if sub {
		// th < 2^52 is the subnormal pattern; th == 2^52 lands on the
		// smallest normal, past the underflow threshold.
		b = th
		if th < 1<<cr.Bin64MantBits && !exact {
			env.Raise(cr.Underflow)
			env.SetErrnoRange()
		}
	} else {
		b = uint64(ex+cr.Bin64ExpBias)<<cr.Bin64MantBits | th&cr.Bin64MantMask
	}
	return stdmath.Float64frombits(b)
}

// isSNaNBits reports a signaling NaN from sign-cleared bits.
func isSNaNBits(b uint64) bool {
	return b > cr.Bin64Inf && b&cr.Bin64QuietBit == 0
}

// roundOverflowPos delivers the overflowed positive result for the mode.
func roundOverflowPos(env *cr.Env) float64 {
	env.Raise(cr.Overflow | cr.Inexact)
	env.SetErrnoRange()
	if env.Mode == cr.TowardZero || env.Mode == cr.Downward {
		return stdmath.Float64frombits(cr.Bin64MaxFinite)
	}
	return stdmath.Inf(1)
}

// isqrtFix returns floor(sqrt(hh)) for hh < 2^107. A float64 estimate
// is off by at most a few integers and the loops repair it exactly.
func isqrtFix(hh cr.Uint128) uint64 {
	f := float64(hh.Hi)*0x1p64 + float64(hh.Lo)
	th := uint64(stdmath.Sqrt(f))
	for th > 0 && cr.Mul64(th, th).Cmp(hh) > 0 {
		th--
	}
	for cr.Mul64(th+1, th+1).Cmp(hh) <= 0 {
		th++
	}
	return th
}
