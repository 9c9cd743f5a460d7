// Copyright 2025 The core-math Authors. SPDX-License-Identifier: Apache-2.0

package math

import (
	stdmath "math"
	"testing"

	"github.com/lntue/core-math/cr"
)

func TestCbrtExactCubes(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"eight", 8, 2},
		{"neg_twenty_seven", -27, -3},
		{"one", 1, 1},
		{"neg_one", -1, -1},
		{"in_binade", 0x1.f4p+0, 1.25}, // (5/4)^3
		{"large", 0x1p+60, 0x1p+20},
		{"odd_cube", 343, 7},
		{"scaled_cube", 0x1p-60, 0x1p-20},
		{"subnormal_cube", 0x1p-1074, 0x1p-358},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, mode := range []cr.RoundingMode{cr.ToNearestEven, cr.TowardZero, cr.Upward, cr.Downward} {
				env := cr.NewEnv(mode)
				got := Cbrt(env, tt.x)
				if got != tt.want || env.Flags() != 0 {
					t.Errorf("[%v] Cbrt(%g) = %x flags=%v, want %x exact", mode, tt.x, got, env.Flags(), tt.want)
				}
			}
		})
	}
}

func TestCbrtSpecial(t *testing.T) {
	for _, mode := range []cr.RoundingMode{cr.ToNearestEven, cr.Upward} {
		env := cr.NewEnv(mode)
		if got := Cbrt(env, 0); got != 0 || stdmath.Signbit(got) || env.Flags() != 0 {
			t.Errorf("[%v] Cbrt(0) = %x flags=%v", mode, got, env.Flags())
		}
		env = cr.NewEnv(mode)
		if got := Cbrt(env, stdmath.Copysign(0, -1)); !stdmath.Signbit(got) || got != 0 {
			t.Errorf("[%v] Cbrt(-0) = %x", mode, got)
		}
		env = cr.NewEnv(mode)
		if got := Cbrt(env, stdmath.Inf(1)); !stdmath.IsInf(got, 1) || env.Flags() != 0 {
			t.Errorf("[%v] Cbrt(+Inf) = %x flags=%v", mode, got, env.Flags())
		}
		env = cr.NewEnv(mode)
		if got := Cbrt(env, stdmath.Inf(-1)); !stdmath.IsInf(got, -1) || env.Flags() != 0 {
			t.Errorf("[%v] Cbrt(-Inf) = %x flags=%v", mode, got, env.Flags())
		}
	}

	snan := stdmath.Float64frombits(cr.Bin64Inf | 0x7)
	env := cr.NewEnv(cr.ToNearestEven)
	got := Cbrt(env, snan)
	if !stdmath.IsNaN(got) || cr.IsSNaN64(got) || env.Flags() != cr.Invalid {
		t.Errorf("Cbrt(sNaN) = %x flags=%v", got, env.Flags())
	}
}

func TestCbrtTwo(t *testing.T) {
	// 2^(1/3) = 0x1.428a2f98d728ae22...p+0: the dropped bits start with
	// e, so to-nearest rounds up.
	tests := []struct {
		mode cr.RoundingMode
		want float64
	}{
		{cr.ToNearestEven, 0x1.428a2f98d728bp+0},
		{cr.Upward, 0x1.428a2f98d728bp+0},
		{cr.TowardZero, 0x1.428a2f98d728ap+0},
		{cr.Downward, 0x1.428a2f98d728ap+0},
	}
	for _, tt := range tests {
		env := cr.NewEnv(tt.mode)
		got := Cbrt(env, 2)
		if got != tt.want || env.Flags() != cr.Inexact {
			t.Errorf("[%v] Cbrt(2) = %x flags=%v, want %x inexact", tt.mode, got, env.Flags(), tt.want)
		}
		// Odd symmetry mirrors the directed modes.
		env = cr.NewEnv(tt.mode.ForSign(true))
		if got := Cbrt(env, -2); got != -tt.want {
			t.Errorf("[%v] Cbrt(-2) = %x, want %x", tt.mode.ForSign(true), got, -tt.want)
		}
	}
}

func TestCbrtNearExactCube(t *testing.T) {
	// One ulp off an exact cube the root sits about a third of an ulp
	// past a power of two, where the fast value hugs the binade edge and
	// only the accurate path can separate the neighbors.
	up := cr.NextUp64(8)     // cbrt = 2 + 2^-49/12
	down := cr.NextDown64(8) // cbrt = 2 - 2^-50/12
	tests := []struct {
		name string
		x    float64
		mode cr.RoundingMode
		want float64
	}{
		{"up_rndn", up, cr.ToNearestEven, 2},
		{"up_rndz", up, cr.TowardZero, 2},
		{"up_rndu", up, cr.Upward, 0x1.0000000000001p+1},
		{"down_rndn", down, cr.ToNearestEven, 2},
		{"down_rndz", down, cr.TowardZero, 0x1.fffffffffffffp+0},
		{"down_rndu", down, cr.Upward, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := cr.NewEnv(tt.mode)
			got := Cbrt(env, tt.x)
			if got != tt.want || env.Flags() != cr.Inexact {
				t.Errorf("[%v] Cbrt(%x) = %x flags=%v, want %x inexact", tt.mode, tt.x, got, env.Flags(), tt.want)
			}
		})
	}
}

func TestCbrtRange(t *testing.T) {
	// The cube root of any binary64, subnormals included, is a normal
	// value: no underflow or overflow can ever be raised.
	inputs := []float64{
		0x1p-1074, 0x1.8p-1070, stdmath.MaxFloat64, 0x1p+1023,
		5, 11, 0x1.23456789abcdep+300, 0x1.fffffffffffffp-1,
	}
	for _, x := range inputs {
		env := cr.NewEnv(cr.Downward)
		got := Cbrt(env, x)
		if env.Flags()&(cr.Underflow|cr.Overflow) != 0 {
			t.Errorf("Cbrt(%x) raised %v", x, env.Flags())
		}
		if cr.Classify64(stdmath.Float64bits(got)) != cr.ClassNormal {
			t.Errorf("Cbrt(%x) = %x is not normal", x, got)
		}
	}
}

func TestCbrtAgreesWithStdlib(t *testing.T) {
	for _, x := range []float64{2, 3, 10, 12345.678, 0x1p-300, -0.875, 1e300, -3e-200} {
		env := cr.NewEnv(cr.ToNearestEven)
		got := Cbrt(env, x)
		want := stdmath.Cbrt(x)
		if got != want && got != cr.NextUp64(want) && got != cr.NextDown64(want) {
			t.Errorf("Cbrt(%g) = %x, stdlib says %x", x, got, want)
		}
	}
}
