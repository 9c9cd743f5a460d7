// Copyright 2025 The core-math Authors. SPDX-License-Identifier: Apache-2.0

package cr

import "math"

// Double-word (double-double) primitives: a value is carried as an
// unevaluated sum hi+lo of two float64, roughly doubling the usable
// mantissa width. Two invariant strengths appear in practice and callers
// must track which one holds: "fast" pairs keep |lo| <= ulp(hi)/2
// (non-overlapping); intermediate sums may relax this to |lo| <= ulp(hi).
//
// Every primitive below runs under Go's round-to-nearest arithmetic; the
// error-free transforms (FastTwoSum residual, TwoSum, ExactMul, Split) are
// exact identities there, and the ambient rounding mode of an evaluation
// only ever applies at the final software rounding step (see fix128.go).
//
// References: Dekker's product and Veltkamp splitting, Handbook of
// Floating-Point Arithmetic, algorithms 4.9 and 4.10.

// DW is a double-word value hi+lo.
type DW struct {
	H, L float64
}

// FastTwoSum returns s, t with s+t = a+b and s = RN(a+b).
//
// Precondition: |a| >= |b| (or a == 0). The precondition is documented,
// not checked; violating it silently yields a wrong residual.
func FastTwoSum(a, b float64) (s, t float64) {
	s = a + b
	e := s - a
	t = b - e
	return
}

// TwoSum returns s, t with s+t = a+b and s = RN(a+b), for any magnitude
// ordering of a and b (Knuth's branch-free version).
func TwoSum(a, b float64) (s, t float64) {
	s = a + b
	ap := s - b
	bp := s - ap
	da := a - ap
	db := b - bp
	t = da + db
	return
}

// splitC is Veltkamp's splitting constant for binary64: 2^27 + 1.
const splitC = 0x1.0000002p+27

// Split returns xh, xl with x = xh+xl exactly, xh carrying at most 27
// significant bits and xl at most 26. Valid for |x| < 2^996 (no overflow
// in the scaled product).
func Split(x float64) (xh, xl float64) {
	gamma := splitC * x
	delta := x - gamma
	xh = gamma + delta
	xl = x - xh
	return
}

// Mul12 returns h, l with h+l = a*b exactly, using Veltkamp splitting and
// Dekker's product. ExactMul is the FMA form of the same identity; Mul12
// is kept for reasoning about platforms without a fused multiply-add and
// for cross-checking ExactMul in tests.
func Mul12(a, b float64) (h, l float64) {
	a1, a2 := Split(a)
	b1, b2 := Split(b)
	h = a * b
	l = ((a1*b1 - h) + a1*b2 + a2*b1) + a2*b2
	return
}

// ExactMul returns h, l with h+l = a*b exactly: the FMA recovers the
// rounding error of the product.
func ExactMul(a, b float64) (h, l float64) {
	h = a * b
	l = math.FMA(a, b, -h)
	return
}

// MulDW returns an approximation of (ah+al)*(bh+bl) as a double-word,
// dropping the al*bl term. Valid when
// |al| <= ulp(ah) and |bl| <= ulp(bh); the dropped term and the two FMA
// roundings are covered by the caller's documented error bound.
func MulDW(ah, al, bh, bl float64) (h, l float64) {
	h, s := ExactMul(ah, bh)
	t := math.FMA(al, bh, s)
	l = math.FMA(ah, bl, t)
	return
}

// AddDW22 returns a double-word approximation of (ah+al)+(bh+bl),
// assuming |ah| >= |bh|. The low-order sum is absorbed with one
// FastTwoSum renormalization.
func AddDW22(ah, al, bh, bl float64) (h, l float64) {
	h, t := FastTwoSum(ah, bh)
	l = t + (al + bl)
	h, l = FastTwoSum(h, l)
	return
}
