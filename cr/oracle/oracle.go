// Copyright 2025 The core-math Authors. SPDX-License-Identifier: Apache-2.0

// Package oracle computes reference values for the checker with
// arbitrary-precision arithmetic. Every function evaluates far past the
// hardest-to-round cases of its target format (a few hundred bits for
// results that need at most ~130), so rounding the reference under the
// requested mode always yields the correctly rounded answer along with
// the exceptions the operation must raise.
package oracle

import (
	"math"
	"math/big"
	"sync"

	"github.com/lntue/core-math/cr"
)

// workPrec is the precision of the series evaluations; constPrec that of
// the shared constants, with headroom for the sin argument reduction of
// inputs up to 2^127.
const (
	workPrec  = 384
	constPrec = 640
)

var (
	constOnce sync.Once
	pi2Const  *big.Float // pi/2
	twoPiInv  *big.Float // 2/pi
	ln2Const  *big.Float
)

func initConsts() {
	// Machin: pi = 16*atan(1/5) - 4*atan(1/239).
	a5 := atanInv(5)
	a239 := atanInv(239)
	a5.Mul(a5, big.NewFloat(16))
	a239.Mul(a239, big.NewFloat(4))
	pi := new(big.Float).SetPrec(constPrec).Sub(a5, a239)
	pi2Const = new(big.Float).SetPrec(constPrec).Quo(pi, big.NewFloat(2))
	twoPiInv = new(big.Float).SetPrec(constPrec).Quo(big.NewFloat(2), pi)

	// ln2 = 2*atanh(1/3).
	ln2Const = new(big.Float).SetPrec(constPrec)
	term := new(big.Float).SetPrec(constPrec).Quo(big.NewFloat(2), big.NewFloat(3))
	nine := big.NewFloat(9)
	for k := 0; ; k++ {
		t := new(big.Float).SetPrec(constPrec).Quo(term, big.NewFloat(float64(2*k+1)))
		ln2Const.Add(ln2Const, t)
		term.Quo(term, nine)
		if term.MantExp(nil) < -int(constPrec)-8 {
			break
		}
	}
}

// atanInv returns atan(1/m) by its alternating series.
func atanInv(m int64) *big.Float {
	sum := new(big.Float).SetPrec(constPrec)
	p := new(big.Float).SetPrec(constPrec).Quo(big.NewFloat(1), big.NewFloat(float64(m)))
	m2 := new(big.Float).SetInt64(m * m)
	for k := 0; ; k++ {
		t := new(big.Float).SetPrec(constPrec).Quo(p, big.NewFloat(float64(2*k+1)))
		if k&1 == 0 {
			sum.Add(sum, t)
		} else {
			sum.Sub(sum, t)
		}
		p.Quo(p, m2)
		if p.MantExp(nil) < -int(constPrec)-8 {
			return sum
		}
	}
}

// fixFromBig extracts the top 127 bits of a positive value for RoundFix,
// folding any dropped bits into a sticky bit so an inexact reference
// never reads as exact.
func fixFromBig(v *big.Float) cr.Fix {
	exp := v.MantExp(nil)
	t := new(big.Float).SetMantExp(v, 127-exp)
	zi, acc := t.Int(nil)
	var z cr.Uint128
	for i, w := range zi.Bits() {
		switch i {
		case 0:
			z.Lo = uint64(w)
		case 1:
			z.Hi = uint64(w)
		}
	}
	if acc != big.Exact {
		z.Lo |= 1
	}
	return cr.Fix{Z: z, E: exp - 1}
}

// round64 rounds a positive reference value to binary64 under mode,
// applying sign neg, and returns the result with its exception flags.
func round64(mode cr.RoundingMode, v *big.Float, neg bool) (float64, cr.Flags) {
	env := cr.NewEnv(mode)
	r, ok := cr.RoundFix(env, fixFromBig(v), 0, neg)
	if !ok {
		// A zero error bound never straddles a boundary.
		panic("oracle: rounding refused at zero error")
	}
	return r, env.Flags()
}

// Exp2 is the reference for 2**x.
func Exp2(mode cr.RoundingMode, x float64) (float64, cr.Flags) {
	switch {
	case math.IsNaN(x):
		if cr.IsSNaN64(x) {
			return cr.QuietNaN64(x), cr.Invalid
		}
		return x, 0
	case math.IsInf(x, 1):
		return x, 0
	case math.IsInf(x, -1):
		return 0, 0
	}
	constOnce.Do(initConsts)

	// Past the cutoffs every mode rounds any representative value the
	// same way, so a nearby power of two stands in for 2**x.
	if x >= 1024 {
		v := new(big.Float).SetMantExp(big.NewFloat(1), 1100)
		return round64(mode, v, false)
	}
	if x < -1075 {
		v := new(big.Float).SetMantExp(big.NewFloat(1), -1200)
		return round64(mode, v, false)
	}

	// For tiny |x| the value 2**x sits strictly between 1 and its
	// neighbor, closer than the series precision resolves; a
	// representative at distance 2^-300 rounds the same way in every
	// mode.
	if ax := math.Abs(x); ax > 0 && ax < 0x1p-64 {
		v := new(big.Float).SetPrec(workPrec).SetInt64(1)
		t := new(big.Float).SetMantExp(big.NewFloat(1), -300)
		if x > 0 {
			v.Add(v, t)
		} else {
			v.Sub(v, t)
		}
		return round64(mode, v, false)
	}

	n := math.Floor(x)
	if n == x { // exact power of two, or clean over/underflow
		v := new(big.Float).SetPrec(workPrec).SetMantExp(big.NewFloat(1), int(n))
		return round64(mode, v, false)
	}
	f := x - n // in (0, 1), exact
	t := new(big.Float).SetPrec(workPrec).SetFloat64(f)
	t.Mul(t, ln2Const)
	v := expSeries(t)
	v.SetMantExp(v, int(n))
	return round64(mode, v, false)
}

// expSeries returns e**t for 0 <= t < 1.
func expSeries(t *big.Float) *big.Float {
	sum := new(big.Float).SetPrec(workPrec).SetInt64(1)
	term := new(big.Float).SetPrec(workPrec).SetInt64(1)
	for k := 1; ; k++ {
		term.Mul(term, t)
		term.Quo(term, big.NewFloat(float64(k)))
		sum.Add(sum, term)
		if e := term.MantExp(nil); e < -int(workPrec)-8 {
			return sum
		}
	}
}

// Cbrt is the reference for the cube root.
func Cbrt(mode cr.RoundingMode, x float64) (float64, cr.Flags) {
	switch {
	case math.IsNaN(x):
		if cr.IsSNaN64(x) {
			return cr.QuietNaN64(x), cr.Invalid
		}
		return x, 0
	case math.IsInf(x, 0) || x == 0:
		return x, 0
	}
	neg := math.Signbit(x)
	ax := math.Abs(x)

	bx := new(big.Float).SetPrec(workPrec).SetFloat64(ax)
	v := cbrtNewton(bx, math.Cbrt(ax))

	// An exact cube rounds to itself with no flags; cubing the nearest
	// binary64 back is an exact comparison.
	env := cr.NewEnv(cr.ToNearestEven)
	y, _ := cr.RoundFix(env, fixFromBig(v), 0, false)
	yc := new(big.Float).SetPrec(3 * 64).SetFloat64(y)
	y2 := new(big.Float).SetPrec(3 * 64).Mul(yc, yc)
	yc.Mul(y2, yc) // y^3, exact at this precision
	if yc.Cmp(bx) == 0 {
		if neg {
			y = -y
		}
		return y, 0
	}
	return round64(mode, v, neg)
}

// cbrtNewton refines a float64 seed to workPrec by y <- y - (y^3-a)/(3y^2).
func cbrtNewton(a *big.Float, seed float64) *big.Float {
	y := new(big.Float).SetPrec(workPrec).SetFloat64(seed)
	three := big.NewFloat(3)
	for range 4 {
		y2 := new(big.Float).SetPrec(workPrec).Mul(y, y)
		y3 := new(big.Float).SetPrec(workPrec).Mul(y2, y)
		num := new(big.Float).SetPrec(workPrec).Sub(y3, a)
		den := new(big.Float).SetPrec(workPrec).Mul(three, y2)
		y.Sub(y, num.Quo(num, den))
	}
	return y
}

// Hypot is the reference for sqrt(x*x + y*y).
func Hypot(mode cr.RoundingMode, x, y float64) (float64, cr.Flags) {
	xb := math.Float64bits(x) &^ cr.Bin64SignMask
	yb := math.Float64bits(y) &^ cr.Bin64SignMask
	if xb < yb {
		xb, yb = yb, xb
	}
	if xb >= cr.Bin64Inf {
		if xb > cr.Bin64Inf { // NaN
			if isSNaN(xb) || (yb > cr.Bin64Inf && isSNaN(yb)) {
				return cr.QuietNaN64(math.Float64frombits(xb)), cr.Invalid
			}
			if yb == cr.Bin64Inf {
				return math.Inf(1), 0
			}
			return math.Float64frombits(xb), 0
		}
		return math.Inf(1), 0
	}
	if yb == 0 {
		return math.Float64frombits(xb), 0
	}

	// x^2 + y^2 must be exact, and the square root must keep the small
	// arm's contribution x*(y/x)^2/2, which sits 2*gap binades below the
	// leading term. Both need the precision to grow with the gap.
	bx := new(big.Float).SetFloat64(math.Float64frombits(xb))
	by := new(big.Float).SetFloat64(math.Float64frombits(yb))
	prec := uint(2*(bx.MantExp(nil)-by.MantExp(nil))) + 256
	bx.SetPrec(prec)
	by.SetPrec(prec)
	s := new(big.Float).SetPrec(prec)
	s.Add(bx.Mul(bx, bx), by.Mul(by, by))
	v := new(big.Float).SetPrec(prec).Sqrt(s)

	env := cr.NewEnv(cr.ToNearestEven)
	r, _ := cr.RoundFix(env, fixFromBig(v), 0, false)
	rc := new(big.Float).SetPrec(prec).SetFloat64(r)
	if rc.Mul(rc, rc).Cmp(s) == 0 { // exact root
		return r, 0
	}
	return round64(mode, v, false)
}

func isSNaN(b uint64) bool {
	return b > cr.Bin64Inf && b&cr.Bin64QuietBit == 0
}

// Sin32 is the reference for binary32 sin.
func Sin32(mode cr.RoundingMode, x float32) (float32, cr.Flags) {
	u := math.Float32bits(x)
	ax := u &^ cr.Bin32SignMask
	switch {
	case ax > cr.Bin32Inf: // NaN
		if ax&cr.Bin32QuietBit == 0 {
			return math.Float32frombits(u | cr.Bin32QuietBit), cr.Invalid
		}
		return x, 0
	case ax == cr.Bin32Inf:
		return math.Float32frombits(cr.Bin32QNaN), cr.Invalid
	case ax == 0:
		return x, 0
	}
	constOnce.Do(initConsts)

	neg := u&cr.Bin32SignMask != 0
	bx := new(big.Float).SetPrec(constPrec).SetFloat64(float64(math.Float32frombits(ax)))

	// q = round(x * 2/pi); r = x - q*pi/2 keeps |r| <= pi/4 and the
	// quadrant selects the series. r is never zero: no nonzero binary
	// value is a multiple of pi/2.
	t := new(big.Float).SetPrec(constPrec).Mul(bx, twoPiInv)
	t.Add(t, big.NewFloat(0.5))
	q, _ := t.Int(nil)
	r := new(big.Float).SetPrec(constPrec).Mul(new(big.Float).SetPrec(constPrec).SetInt(q), pi2Const)
	r.Sub(bx, r)

	var v *big.Float
	quad := new(big.Int).And(q, big.NewInt(3)).Int64()
	switch quad {
	case 0:
		v = sinSeries(r)
	case 1:
		v = cosSeries(r)
	case 2:
		v = new(big.Float).Neg(sinSeries(r))
	default:
		v = new(big.Float).Neg(cosSeries(r))
	}
	if v.Signbit() {
		neg = !neg
		v.Neg(v)
	}
	return roundBig32(mode, v, neg)
}

// sinSeries returns sin(r) for |r| <= pi/4.
func sinSeries(r *big.Float) *big.Float {
	r2 := new(big.Float).SetPrec(workPrec).Mul(r, r)
	sum := new(big.Float).SetPrec(workPrec).Set(r)
	term := new(big.Float).SetPrec(workPrec).Set(r)
	for k := 1; ; k++ {
		term.Mul(term, r2)
		term.Quo(term, big.NewFloat(float64(2*k*(2*k+1))))
		if k&1 == 1 {
			sum.Sub(sum, term)
		} else {
			sum.Add(sum, term)
		}
		if term.MantExp(nil) < sum.MantExp(nil)-int(workPrec)-8 {
			return sum
		}
	}
}

// cosSeries returns cos(r) for |r| <= pi/4.
func cosSeries(r *big.Float) *big.Float {
	r2 := new(big.Float).SetPrec(workPrec).Mul(r, r)
	sum := new(big.Float).SetPrec(workPrec).SetInt64(1)
	term := new(big.Float).SetPrec(workPrec).SetInt64(1)
	for k := 1; ; k++ {
		term.Mul(term, r2)
		term.Quo(term, big.NewFloat(float64((2*k-1)*2*k)))
		if k&1 == 1 {
			sum.Sub(sum, term)
		} else {
			sum.Add(sum, term)
		}
		if term.MantExp(nil) < sum.MantExp(nil)-int(workPrec)-8 {
			return sum
		}
	}
}

// roundBig32 rounds a positive reference to binary32 under mode with
// sign neg, reporting the flags of the narrowing.
func roundBig32(mode cr.RoundingMode, v *big.Float, neg bool) (float32, cr.Flags) {
	exp := v.MantExp(nil)
	// 64 significand bits plus a sticky bit decide every case: binary32
	// hard cases need far fewer.
	t := new(big.Float).SetMantExp(v, 64-exp)
	zi, acc := t.Int(nil)
	m := zi.Uint64() // top bit set
	sticky := acc != big.Exact

	dir := mode.ForSign(neg)
	var flags cr.Flags
	var sb uint32
	if neg {
		sb = cr.Bin32SignMask
	}

	e := exp - 1 // v in [2^e, 2^(e+1))
	if e > cr.Bin32MaxExp {
		if dir == cr.TowardZero || dir == cr.Downward {
			return math.Float32frombits(sb | cr.Bin32MaxFinite), cr.Overflow | cr.Inexact
		}
		return math.Float32frombits(sb | cr.Bin32Inf), cr.Overflow | cr.Inexact
	}

	drop := uint(64 - 24)
	if e < cr.Bin32MinExp {
		d := uint(cr.Bin32MinExp - e)
		if d > 24 {
			d = 24 // at most all result bits, rest is sticky anyway
		}
		drop += d
	}
	keep := uint32(m >> drop)
	rem := m & (1<<drop - 1)
	inexact := rem != 0 || sticky
	if inexact {
		flags |= cr.Inexact
		half := uint64(1) << (drop - 1)
		switch dir {
		case cr.ToNearestEven:
			if rem > half || (rem == half && (sticky || keep&1 == 1)) {
				keep++
			}
		case cr.Upward:
			keep++
		}
	}

	var rb uint32
	if e < cr.Bin32MinExp {
		rb = keep
	} else {
		if keep == 1<<24 {
			keep >>= 1
			e++
			if e > cr.Bin32MaxExp {
				return math.Float32frombits(sb | cr.Bin32Inf), cr.Overflow | cr.Inexact
			}
		}
		rb = uint32(e+cr.Bin32ExpBias)<<cr.Bin32MantBits | keep&cr.Bin32MantMask
	}
	if inexact && rb < cr.Bin32MinNormal {
		flags |= cr.Underflow
	}
	return math.Float32frombits(sb | rb), flags
}
