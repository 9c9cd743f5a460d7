// Copyright 2025 The core-math Authors. SPDX-License-Identifier: Apache-2.0

package math

import (
	stdmath "math"

	"github.com/lntue/core-math/cr"
)

// Degree-5 polynomial for x^(1/3) on [1,2], absolute error below 2^-19.4.
// Two Newton steps in cbrtFast refine it to 2^-74.7.
var cbrtC = [6]float64{
	0x1.e53b7c444f1cep-2, 0x1.ac2d3134803e2p-1,
	-0x1.ddcd3b46e2071p-2, 0x1.9b95b5c19bd0bp-3,
	-0x1.97bd99b63f65ep-5, 0x1.592445ed9c63ap-8,
}

const cbrtMinusThird = -0x1.5555555555555p-2

// cbrt2i holds 2^(i/3) for i = 0,1,2 as double-words.
var cbrt2iH = [3]float64{1.0, 0x1.428a2f98d728bp+0, 0x1.965fea53d6e3dp+0}
var cbrt2iL = [3]float64{0.0, -0x1.ddc22548ea41ep-56, -0x1.f53e999952f09p-54}

// cbrtErrUlps[i] is 2^-73.749 * 2^(i/3) in units of 2^-126: twice the
// fast path error bound of cbrtFast. The doubling keeps the bound valid
// when h rounds just below a binade boundary (near-exact cubes), where
// the fixed-point exponent sits one below the result and each unit of
// the delivered value weighs half as much.
var cbrtErrUlps = [3]uint64{0x131 << 44, 0x180 << 44, 0x1e4 << 44}

// cbrtFast approximates cbrt(f*2^i) as a double-word for f in [1,2) and
// i in {0,1,2}, with absolute error below cbrtErrUlps[i] at the 2^-126
// scale. The shape is a rough polynomial followed by two Newton steps
// h -> h - h*(h^3/f - 1)/3, the second carried in double-word arithmetic.
func cbrtFast(f float64, i int) (h, l float64) {
	xx := f * f
	r := 1.0 / f
	x4 := stdmath.FMA(cbrtC[5], f, cbrtC[4])
	x2 := stdmath.FMA(cbrtC[3], f, cbrtC[2])
	x0 := stdmath.FMA(cbrtC[1], f, cbrtC[0])
	x2 = stdmath.FMA(x4, xx, x2)
	x0 = stdmath.FMA(x2, xx, x0)

	h0 := stdmath.FMA(x0*x0, x0, -f) * r
	x1 := stdmath.FMA(x0*h0, cbrtMinusThird, x0)

	th, tl := cr.ExactMul(x1, x1)
	h1 := stdmath.FMA(th, x1, -f)
	h1 = (h1 + tl*x1) * r
	corr := (x1 * h1) * cbrtMinusThird

	return cr.MulDW(x1, corr, cbrt2iH[i], cbrt2iL[i])
}

// splitMantExp splits a finite nonzero |x| into M*2^(E-52) with
// 2^52 <= M < 2^53, normalizing subnormals.
func splitMantExp(ax uint64) (m uint64, e int) {
	e = int(ax >> cr.Bin64MantBits)
	m = ax & cr.Bin64MantMask
	if e == 0 {
		for m < 1<<cr.Bin64MantBits {
			m <<= 1
			e--
		}
		return m, e + 1 - cr.Bin64ExpBias
	}
	return m | 1<<cr.Bin64MantBits, e - cr.Bin64ExpBias
}

// Cbrt returns the cube root of x correctly rounded under env.Mode. The
// exponent of a cube root always lands in the normal range, so the only
// exception a finite nonzero non-cube input raises is inexact.
func Cbrt(env *cr.Env, x float64) float64 {
	bits := stdmath.Float64bits(x)
	ax := bits &^ cr.Bin64SignMask
	neg := bits&cr.Bin64SignMask != 0

	if ax >= cr.Bin64Inf || ax == 0 { // cbrt(x) = x for NaN, Inf, 0
		if ax > cr.Bin64Inf && bits&cr.Bin64QuietBit == 0 {
			env.Raise(cr.Invalid)
			return stdmath.Float64frombits(bits | cr.Bin64QuietBit)
		}
		return x
	}

	mant, e := splitMantExp(ax)
	// E = 3*Q + i with i in {0,1,2}: cbrt(x) = cbrt(f*2^i) * 2^Q.
	// 1074 is a multiple of 3, so the bias keeps the operands positive.
	i := (e + 1074) % 3
	q := (e+1074)/3 - 358

	f := stdmath.Float64frombits(uint64(cr.Bin64ExpBias)<<cr.Bin64MantBits | mant&cr.Bin64MantMask)
	h, l := cbrtFast(f, i)

	if y, ok := cr.RoundFix(env, cr.FixFromDW(h, l, q), cbrtErrUlps[i], neg); ok {
		return y
	}
	return cbrtAccurate(env, mant, i, q, h, neg)
}

// cbrtAccurate settles the cases the fast path refuses with exact
// integer arithmetic: the cube root of N = M*2^(i+104) has integer part
// m in [2^52, 2^53), and comparing cubes against N decides both
// exactness and, via the parity of (2m+1)^3, the to-nearest direction
// without ties.
func cbrtAccurate(env *cr.Env, mant uint64, i, q int, h float64, neg bool) float64 {
	nHi, nLo := shl256(mant, uint(i+104))

	// The fast path value is within a few integers of floor(cbrt(N)).
	m := uint64(h * 0x1p52)
	for cubeCmp(m, nHi, nLo) > 0 {
		m--
	}
	for cubeCmp(m+1, nHi, nLo) <= 0 {
		m++
	}

	if cubeCmp(m, nHi, nLo) == 0 { // exact cube, no flags
		return cbrtCompose(m, q, neg)
	}

	env.Raise(cr.Inexact)
	switch env.Mode.ForSign(neg) {
	case cr.ToNearestEven:
		// Compare 8N against (2m+1)^3; the cube is odd, so no tie.
		mid := 2*m + 1
		sq := cr.Mul64(mid, mid)
		cHi, cLo := sq.Mul(cr.U128From64(mid))
		mHi, mLo := shl256(mant, uint(i+107))
		if cmp256(mHi, mLo, cHi, cLo) > 0 {
			m++
		}
	case cr.Upward:
		m++
	}
	return cbrtCompose(m, q, neg)
}

// cbrtCompose builds the binary64 with mantissa m and exponent q; a
// carry out of the mantissa bumps the binade.
func cbrtCompose(m uint64, q int, neg bool) float64 {
	if m == 1<<(cr.Bin64MantBits+1) {
		m >>= 1
		q++
	}
	b := uint64(q+cr.Bin64ExpBias)<<cr.Bin64MantBits | m&cr.Bin64MantMask
	if neg {
		b |= cr.Bin64SignMask
	}
	return stdmath.Float64frombits(b)
}

// shl256 returns m << s as a pair of 128-bit halves, for s < 192.
func shl256(m uint64, s uint) (hi, lo cr.Uint128) {
	v := cr.U128From64(m)
	if s < 128 {
		return v.Shr(128 - s), v.Shl(s)
	}
	return v.Shl(s - 128), cr.Uint128{}
}

// cmp256 compares two 256-bit values given as 128-bit halves.
func cmp256(aHi, aLo, bHi, bLo cr.Uint128) int {
	if c := aHi.Cmp(bHi); c != 0 {
		return c
	}
	return aLo.Cmp(bLo)
}

// cubeCmp compares m^3 against the 256-bit value nHi:nLo.
func cubeCmp(m uint64, nHi, nLo cr.Uint128) int {
	sq := cr.Mul64(m, m)
	cHi, cLo := sq.Mul(cr.U128From64(m))
	return cmp256(cHi, cLo, nHi, nLo)
}
