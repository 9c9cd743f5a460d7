// Copyright 2025 The core-math Authors. SPDX-License-Identifier: Apache-2.0

package check

import (
	"math"
	"math/rand/v2"

	"github.com/lntue/core-math/cr"
	crmath "github.com/lntue/core-math/cr/math"
	"github.com/lntue/core-math/cr/oracle"
)

// Fn64 is a unary binary64 function under test with its reference, a
// sampler for random batches, and targeted boundary cases.
type Fn64 struct {
	Name  string
	Eval  func(*cr.Env, float64) float64
	Ref   func(cr.RoundingMode, float64) (float64, cr.Flags)
	Gen   func(*rand.Rand) float64
	Cases []float64
}

// Fn64x2 is a binary binary64 function under test.
type Fn64x2 struct {
	Name  string
	Eval  func(*cr.Env, float64, float64) float64
	Ref   func(cr.RoundingMode, float64, float64) (float64, cr.Flags)
	Gen   func(*rand.Rand) (float64, float64)
	Cases [][2]float64
}

// Fn32 is a unary binary32 function under test; the driver checks it
// exhaustively, so it carries no sampler.
type Fn32 struct {
	Name string
	Eval func(*cr.Env, float32) float32
	Ref  func(cr.RoundingMode, float32) (float32, cr.Flags)
}

// special64Bits are the patterns every binary64 run starts with: signed
// zeros, the subnormal range ends, one, the finite range ends,
// infinities, and both NaN encodings.
var special64Bits = []uint64{
	0x0000000000000000, 0x8000000000000000,
	0x0000000000000001, 0x8000000000000001,
	0x000fffffffffffff, 0x800fffffffffffff,
	0x0010000000000000, 0x8010000000000000,
	0x3ff0000000000000, 0xbff0000000000000,
	0x7fefffffffffffff, 0xffefffffffffffff,
	0x7ff0000000000000, 0xfff0000000000000,
	0x7ff8000000000000, 0xfff8000000000000, // quiet NaN
	0x7ff0000000000001, 0xfff0000000000001, // signaling NaN
}

// Specials64 returns the special-value preamble as floats.
func Specials64() []float64 {
	out := make([]float64, len(special64Bits))
	for i, b := range special64Bits {
		out[i] = math.Float64frombits(b)
	}
	return out
}

func genBits64(r *rand.Rand) float64 {
	return math.Float64frombits(r.Uint64())
}

// genExp2 mixes raw bit patterns, which mostly land past the overflow
// and underflow cutoffs, with uniform samples from the finite-result
// band where the table paths do the work.
func genExp2(r *rand.Rand) float64 {
	if r.IntN(2) == 0 {
		return genBits64(r)
	}
	return r.Float64()*2200 - 1100
}

// genHypot correlates the exponents of half the pairs so the shared
// exponent difference stays under the near-path cutoff; independent
// bit patterns almost never do.
func genHypot(r *rand.Rand) (float64, float64) {
	x := genBits64(r)
	if r.IntN(2) != 0 {
		return x, genBits64(r)
	}
	xb := math.Float64bits(x)
	ex := int64(xb>>52) & 0x7ff
	ey := ex + r.Int64N(61) - 30
	if ey < 0 {
		ey = 0
	} else if ey > 2046 {
		ey = 2046
	}
	yb := uint64(ey)<<52 | r.Uint64()&(cr.Bin64MantMask|cr.Bin64SignMask)
	return x, math.Float64frombits(yb)
}

// Exp2 returns the checker configuration for the binary64 2**x.
func Exp2() Fn64 {
	return Fn64{
		Name: "exp2",
		Eval: crmath.Exp2,
		Ref:  oracle.Exp2,
		Gen:  genExp2,
		Cases: []float64{
			1024, 0x1.fffffffffffffp+9, -1024,
			-1075, -0x1.0cc0000000001p+10, -1074, -1022, -1021.5,
			0x1p-70, -0x1p-70, 0x1.fffffffffffffp-71, 0x1p-69,
			0.5, -0.5, 1.5, -1074.5, -1073.5,
			0x1.fffffffffffffp-1, 0x1.0000000000001p+0,
		},
	}
}

// Cbrt returns the checker configuration for the binary64 cube root.
func Cbrt() Fn64 {
	return Fn64{
		Name: "cbrt",
		Eval: crmath.Cbrt,
		Ref:  oracle.Cbrt,
		Gen:  genBits64,
		Cases: []float64{
			8, -8, 27, -27, 0x1p+51, 0x1p+52, 0x1.8p+52,
			7, -7, 2, 0.5, 0x1p-1074, -0x1p-1074, 0x1p-1072,
			0x1.fffffffffffffp+1023, 0x1p-1022, 0x1.0000000000001p-1022,
			0x1.f4p+0, // (5/4)^3, an exact cube inside the binade
		},
	}
}

// Hypot returns the checker configuration for the binary64 hypotenuse.
func Hypot() Fn64x2 {
	return Fn64x2{
		Name: "hypot",
		Eval: crmath.Hypot,
		Ref:  oracle.Hypot,
		Gen:  genHypot,
		Cases: [][2]float64{
			{3, 4}, {5, 12}, {8, 15}, {-3, 4}, {3, -4},
			{0x1p-1074, 0x1p-1074}, {0x1p-1074, 0},
			{0x1p-1074, 0x1p-1047}, {0x1p-1074, 0x1p-1048},
			{0x1.fffffffffffffp+1023, 0x1p+970},
			{0x1.fffffffffffffp+1023, 0x1.fffffffffffffp+1023},
			{0x1p+1023, 0x1p+1023},
			{1, 0x1p-27}, {1, 0x1.fffffffffffffp-28},
			{0x1.6a09e667f3bcdp+0, 0x1.6a09e667f3bccp+0},
		},
	}
}

// Sin32 returns the checker configuration for the binary32 sine.
func Sin32() Fn32 {
	return Fn32{
		Name: "sin32",
		Eval: crmath.Sin32,
		Ref:  oracle.Sin32,
	}
}
