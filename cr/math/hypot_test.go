// Copyright 2025 The core-math Authors. SPDX-License-Identifier: Apache-2.0

package math

import (
	stdmath "math"
	"testing"

	"github.com/lntue/core-math/cr"
)

func TestHypotExact(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want float64
	}{
		{"three_four", 3, 4, 5},
		{"five_twelve", 5, 12, 13},
		{"signs", -3, 4, 5},
		{"both_negative", -8, -15, 17},
		{"zero_arm", 0x1.23p+4, 0, 0x1.23p+4},
		{"neg_zero_arm", -0x1.23p+4, 0, 0x1.23p+4},
		{"zero_zero", 0, 0, 0},
		{"subnormal_triple", 3 * 0x1p-1074, 4 * 0x1p-1074, 5 * 0x1p-1074},
		{"scaled_triple", 3 * 0x1p+500, 4 * 0x1p+500, 5 * 0x1p+500},
		{"equal_exact", 0, 0x1p-1074, 0x1p-1074},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, mode := range []cr.RoundingMode{cr.ToNearestEven, cr.TowardZero, cr.Upward, cr.Downward} {
				env := cr.NewEnv(mode)
				got := Hypot(env, tt.x, tt.y)
				if got != tt.want || stdmath.Signbit(got) != stdmath.Signbit(tt.want) || env.Flags() != 0 {
					t.Errorf("[%v] Hypot(%g, %g) = %x flags=%v, want %x exact",
						mode, tt.x, tt.y, got, env.Flags(), tt.want)
				}
			}
		})
	}
}

func TestHypotSpecial(t *testing.T) {
	inf := stdmath.Inf(1)
	qnan := stdmath.Float64frombits(cr.Bin64QNaN)

	// Infinity wins over NaN: hypot(Inf, NaN) is +Inf, quietly.
	env := cr.NewEnv(cr.ToNearestEven)
	if got := Hypot(env, -inf, qnan); !stdmath.IsInf(got, 1) || env.Flags() != 0 {
		t.Errorf("Hypot(-Inf, qNaN) = %x flags=%v", got, env.Flags())
	}
	env = cr.NewEnv(cr.ToNearestEven)
	if got := Hypot(env, qnan, inf); !stdmath.IsInf(got, 1) || env.Flags() != 0 {
		t.Errorf("Hypot(qNaN, +Inf) = %x flags=%v", got, env.Flags())
	}
	env = cr.NewEnv(cr.ToNearestEven)
	if got := Hypot(env, qnan, 1); !stdmath.IsNaN(got) || env.Flags() != 0 {
		t.Errorf("Hypot(qNaN, 1) = %x flags=%v", got, env.Flags())
	}

	// A signaling NaN raises invalid even next to an infinity.
	snan := stdmath.Float64frombits(cr.Bin64Inf | 0x99)
	env = cr.NewEnv(cr.ToNearestEven)
	got := Hypot(env, snan, inf)
	if !stdmath.IsNaN(got) || cr.IsSNaN64(got) || env.Flags() != cr.Invalid {
		t.Errorf("Hypot(sNaN, +Inf) = %x flags=%v", got, env.Flags())
	}
}

func TestHypotSymmetry(t *testing.T) {
	pairs := [][2]float64{
		{1, 0x1.921fb54442d18p+1},
		{0x1.23456789abcdep-3, 0x1.fedcba9876543p+2},
		{0x1p-1070, 0x1p-1060},
	}
	for _, p := range pairs {
		for _, mode := range []cr.RoundingMode{cr.ToNearestEven, cr.Upward} {
			e1 := cr.NewEnv(mode)
			e2 := cr.NewEnv(mode)
			a := Hypot(e1, p[0], p[1])
			b := Hypot(e2, p[1], p[0])
			if a != b || e1.Flags() != e2.Flags() {
				t.Errorf("[%v] Hypot not symmetric at %v: %x/%v vs %x/%v",
					mode, p, a, e1.Flags(), b, e2.Flags())
			}
			e3 := cr.NewEnv(mode)
			if c := Hypot(e3, -p[0], p[1]); c != a {
				t.Errorf("[%v] Hypot sign dependence at %v", mode, p)
			}
		}
	}
}

func TestHypotNearPath(t *testing.T) {
	// With the exponent gap past 26 bits the result is |x| or its
	// successor; sqrt(1 + 2^-60) rounds to 1 to nearest.
	env := cr.NewEnv(cr.ToNearestEven)
	if got := Hypot(env, 1, 0x1p-30); got != 1 || env.Flags() != cr.Inexact {
		t.Errorf("Hypot(1, 2^-30) = %x flags=%v", got, env.Flags())
	}
	env = cr.NewEnv(cr.Upward)
	if got := Hypot(env, 1, 0x1p-30); got != 1+0x1p-52 || env.Flags() != cr.Inexact {
		t.Errorf("[rndu] Hypot(1, 2^-30) = %x flags=%v", got, env.Flags())
	}
	env = cr.NewEnv(cr.TowardZero)
	if got := Hypot(env, 1, 0x1p-30); got != 1 {
		t.Errorf("[rndz] Hypot(1, 2^-30) = %x", got)
	}
	// The result keeps the magnitude's sign folded away: hypot is even.
	env = cr.NewEnv(cr.Upward)
	if got := Hypot(env, -1, 0x1p-30); got != 1+0x1p-52 {
		t.Errorf("[rndu] Hypot(-1, 2^-30) = %x", got)
	}
}

func TestHypotOverflow(t *testing.T) {
	max := stdmath.MaxFloat64
	tests := []struct {
		mode cr.RoundingMode
		want float64
	}{
		{cr.ToNearestEven, stdmath.Inf(1)},
		{cr.Upward, stdmath.Inf(1)},
		{cr.TowardZero, max},
		{cr.Downward, max},
	}
	for _, tt := range tests {
		env := cr.NewEnv(tt.mode)
		env.CheckErrno = true
		got := Hypot(env, max, max)
		if got != tt.want {
			t.Errorf("[%v] Hypot(max, max) = %x, want %x", tt.mode, got, tt.want)
		}
		if !env.Flags().Has(cr.Overflow|cr.Inexact) || env.Errno() != cr.ErrRange {
			t.Errorf("[%v] flags=%v errno=%v", tt.mode, env.Flags(), env.Errno())
		}
	}
}

func TestHypotSqrtTwo(t *testing.T) {
	// hypot(1, 1) = sqrt(2) = 0x1.6a09e667f3bcc908...p+0.
	tests := []struct {
		mode cr.RoundingMode
		want float64
	}{
		{cr.ToNearestEven, 0x1.6a09e667f3bcdp+0},
		{cr.Upward, 0x1.6a09e667f3bcdp+0},
		{cr.TowardZero, 0x1.6a09e667f3bccp+0},
		{cr.Downward, 0x1.6a09e667f3bccp+0},
	}
	for _, tt := range tests {
		env := cr.NewEnv(tt.mode)
		got := Hypot(env, 1, 1)
		if got != tt.want || env.Flags() != cr.Inexact {
			t.Errorf("[%v] Hypot(1, 1) = %x flags=%v, want %x inexact", tt.mode, got, env.Flags(), tt.want)
		}
	}
}

func TestHypotAgreesWithStdlib(t *testing.T) {
	pairs := [][2]float64{
		{0.3, 0.4}, {1e10, 7}, {123.456, 654.321},
		{0x1.8p-540, 0x1p-530}, {2.5e300, 3.5e299},
	}
	for _, p := range pairs {
		env := cr.NewEnv(cr.ToNearestEven)
		got := Hypot(env, p[0], p[1])
		want := stdmath.Hypot(p[0], p[1])
		if got != want && got != cr.NextUp64(want) && got != cr.NextDown64(want) {
			t.Errorf("Hypot(%g, %g) = %x, stdlib says %x", p[0], p[1], got, want)
		}
	}
}
