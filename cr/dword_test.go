// Copyright 2025 The core-math Authors. SPDX-License-Identifier: Apache-2.0

package cr

import (
	"math"
	"testing"
)

func TestFastTwoSum(t *testing.T) {
	tests := []struct {
		name       string
		a, b       float64
		s, residue float64
	}{
		{"no_cancellation", 1, 0x1p-60, 1, 0x1p-60},
		{"absorbed_half_ulp", 1, 0x1p-53, 1, 0x1p-53},
		{"exact_sum", 1.5, 0.25, 1.75, 0},
		{"negative_low", 1, -0x1p-54, 1, -0x1p-54},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, r := FastTwoSum(tt.a, tt.b)
			if s != tt.s || r != tt.residue {
				t.Errorf("FastTwoSum(%g, %g) = %g, %g; want %g, %g",
					tt.a, tt.b, s, r, tt.s, tt.residue)
			}
		})
	}
}

func TestTwoSumAnyOrder(t *testing.T) {
	pairs := [][2]float64{
		{1, 0x1p-60},
		{0x1p-60, 1},
		{0x1p300, -0x1p247},
		{3.5, -3.5},
		{0x1.123456789abcdp+10, 0x1.fedcba987654p-45},
	}
	for _, p := range pairs {
		s1, t1 := TwoSum(p[0], p[1])
		s2, t2 := TwoSum(p[1], p[0])
		if s1 != s2 || t1 != t2 {
			t.Errorf("TwoSum not symmetric for %v", p)
		}
		if s1 != p[0]+p[1] {
			t.Errorf("TwoSum high word %g != RN sum %g", s1, p[0]+p[1])
		}
	}
}

func TestSplit(t *testing.T) {
	for _, x := range []float64{1, math.Pi, 0x1.fffffffffffffp+0, -0x1.23456789abcdfp-7} {
		xh, xl := Split(x)
		if xh+xl != x {
			t.Errorf("Split(%x): xh+xl = %x", x, xh+xl)
		}
		// xh carries at most 27 significant bits: xh * 2^27 stays exact
		// when squared, which is what Dekker's product relies on.
		if xh != 0 {
			mh := math.Float64bits(xh) & Bin64MantMask
			if mh&(1<<26-1) != 0 {
				t.Errorf("Split(%x): high word %x has low mantissa bits", x, xh)
			}
		}
	}
}

func TestExactMulMatchesMul12(t *testing.T) {
	pairs := [][2]float64{
		{0x1p27 + 1, 0x1p27 + 1},
		{math.Pi, math.E},
		{0x1.0000001p+0, 0x1.0000001p+0},
		{-3.75, 0x1.33333333333333p-2},
	}
	for _, p := range pairs {
		h1, l1 := ExactMul(p[0], p[1])
		h2, l2 := Mul12(p[0], p[1])
		if h1 != h2 || l1 != l2 {
			t.Errorf("ExactMul(%x, %x) = %x, %x; Mul12 = %x, %x",
				p[0], p[1], h1, l1, h2, l2)
		}
	}
}

func TestExactMulResidual(t *testing.T) {
	// (2^27+1)^2 = 2^54 + 2^28 + 1: the +1 cannot fit the 53-bit high
	// word and must land in the residual.
	h, l := ExactMul(0x1p27+1, 0x1p27+1)
	if h != 0x1p54+0x1p28 || l != 1 {
		t.Errorf("ExactMul((2^27+1)^2) = %x, %x", h, l)
	}
	// Exact products leave no residual.
	h, l = ExactMul(1.5, 2.5)
	if h != 3.75 || l != 0 {
		t.Errorf("ExactMul(1.5, 2.5) = %x, %x", h, l)
	}
}

func TestMulDWIdentity(t *testing.T) {
	// With zero low words MulDW degenerates to ExactMul.
	h1, l1 := MulDW(math.Pi, 0, math.E, 0)
	h2, l2 := ExactMul(math.Pi, math.E)
	if h1 != h2 || l1 != l2 {
		t.Errorf("MulDW(h,0,h',0) = %x, %x; ExactMul = %x, %x", h1, l1, h2, l2)
	}
}

func TestAddDW22(t *testing.T) {
	h, l := AddDW22(1, 0x1p-55, 0x1p-30, 0x1p-85)
	// The result must renormalize: |l| <= ulp(h).
	if math.Abs(l) > 0x1p-52*math.Abs(h) {
		t.Errorf("AddDW22 low word %x too large for high %x", l, h)
	}
	sum := 1 + 0x1p-30 + (0x1p-55 + 0x1p-85)
	if h != sum {
		t.Errorf("AddDW22 high word %x, want %x", h, sum)
	}
}
