// Copyright 2025 The core-math Authors. SPDX-License-Identifier: Apache-2.0

package math

import (
	stdmath "math"
	"math/bits"

	"github.com/lntue/core-math/cr"
)

// exp2AccErr bounds the error of the accurate product in units of
// 2^-126: table floors, the series tail and a dozen truncating fixed
// point operations, each worth at most one unit. The relative error is
// below 2^-120 while the hardest binary64 cases of 2^x sit more than
// 2^-113 of the result away from a rounding boundary, so the accurate
// path always decides.
const exp2AccErr = 64

// mulLn2 returns |r| * ln(2) as a Q1.127 fixed-point value, truncated.
// Requires 0 < |r| <= 2^-16.
func mulLn2(r float64) cr.Uint128 {
	b := stdmath.Float64bits(r)
	m := b&cr.Bin64MantMask | 1<<cr.Bin64MantBits
	er := int(b>>cr.Bin64MantBits&0x7FF) - cr.Bin64ExpBias

	// |r|*ln2*2^127 = (m * ln2*2^192) >> (117 - er). With er <= -16 the
	// shift is at least 133, so only the top two product limbs survive;
	// the lower limbs matter through their carry alone.
	p0 := cr.Mul64(m, ln2Limbs[2])
	p1 := cr.Mul64(m, ln2Limbs[1])
	p2 := cr.Mul64(m, ln2Limbs[0])
	_, c := bits.Add64(p0.Hi, p1.Lo, 0)
	l2, c := bits.Add64(p1.Hi, p2.Lo, c)
	l3 := p2.Hi + c

	s := uint(117 - er)
	if s >= 256 {
		return cr.Uint128{}
	}
	return cr.U128(l3, l2).Shr(s - 128)
}

// exp2Series returns 2^r as a Q2.126 fixed-point value for |r| <= 2^-16,
// correct to a few units of 2^-127. It sums exp(|r| ln 2) as separate
// even and odd term accumulators so the sign of r applies once at the end.
func exp2Series(r float64) cr.Uint128 {
	if r == 0 {
		return cr.U128(1<<62, 0) // exactly 1
	}
	u := mulLn2(r) // u < 2^-16.5, so u^8/8! is far below one ulp

	u2 := u.MulFix(u, 127)
	u3 := u2.MulFix(u, 127)
	u4 := u2.MulFix(u2, 127)
	u5 := u4.MulFix(u, 127)
	u6 := u4.MulFix(u2, 127)
	u7 := u6.MulFix(u, 127)

	even := cr.U128(1<<63, 0) // 1 in Q1.127
	even = even.Add(u2.Shr(1))
	even = even.Add(u4.Div64(24))
	even = even.Add(u6.Div64(720))

	odd := u.Add(u3.Div64(6))
	odd = odd.Add(u5.Div64(120))
	odd = odd.Add(u7.Div64(5040))

	if r < 0 {
		return even.Sub(odd).Shr(1)
	}
	return even.Add(odd).Shr(1)
}

// exp2Accurate resolves the inputs the fast path cannot decide. The
// table product and the series run in 128-bit fixed point with every
// operand either exact or truncated, giving an error small enough that
// the rounding of 2^x always resolves; the zero fallback is unreachable
// but keeps the ladder total.
func exp2Accurate(env *cr.Env, r float64, e, i0, i1, i2 int) float64 {
	z := exp2T2Acc[i2].MulFix(exp2T1Acc[i1], 126)
	z = z.MulFix(exp2T0Acc[i0], 126)
	z = z.MulFix(exp2Series(r), 126)

	y, ok := cr.RoundFix(env, cr.Fix{Z: z, E: e}, exp2AccErr, false)
	if !ok {
		return 0
	}
	return y
}
