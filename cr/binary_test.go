// Copyright 2025 The core-math Authors. SPDX-License-Identifier: Apache-2.0

package cr

import (
	"math"
	"testing"
)

func TestClassify64(t *testing.T) {
	tests := []struct {
		name string
		bits uint64
		want Class
	}{
		{"pos_zero", 0x0000000000000000, ClassZero},
		{"neg_zero", 0x8000000000000000, ClassZero},
		{"min_subnormal", 0x0000000000000001, ClassSubnormal},
		{"max_subnormal", 0x000FFFFFFFFFFFFF, ClassSubnormal},
		{"min_normal", Bin64MinNormal, ClassNormal},
		{"one", 0x3FF0000000000000, ClassNormal},
		{"max_finite", Bin64MaxFinite, ClassNormal},
		{"pos_inf", Bin64Inf, ClassInf},
		{"neg_inf", Bin64Inf | Bin64SignMask, ClassInf},
		{"qnan", Bin64QNaN, ClassQNaN},
		{"snan", Bin64Inf + 1, ClassSNaN},
		{"neg_snan_payload", Bin64SignMask | Bin64Inf | 0x0007DEADBEEF0000, ClassSNaN},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify64(tt.bits); got != tt.want {
				t.Errorf("Classify64(%#016x) = %v, want %v", tt.bits, got, tt.want)
			}
		})
	}
}

func TestClassify32(t *testing.T) {
	tests := []struct {
		bits uint32
		want Class
	}{
		{0x00000000, ClassZero},
		{0x80000000, ClassZero},
		{0x00000001, ClassSubnormal},
		{0x007FFFFF, ClassSubnormal},
		{Bin32MinNormal, ClassNormal},
		{0x3F800000, ClassNormal},
		{Bin32MaxFinite, ClassNormal},
		{Bin32Inf, ClassInf},
		{Bin32QNaN, ClassQNaN},
		{Bin32Inf + 1, ClassSNaN},
	}
	for _, tt := range tests {
		if got := Classify32(tt.bits); got != tt.want {
			t.Errorf("Classify32(%#08x) = %v, want %v", tt.bits, got, tt.want)
		}
	}
}

func TestQuietNaN(t *testing.T) {
	s := math.Float64frombits(Bin64Inf | 0x1234)
	q := QuietNaN64(s)
	if !math.IsNaN(q) || IsSNaN64(q) {
		t.Errorf("QuietNaN64 left a signaling pattern: %#016x", math.Float64bits(q))
	}
	if math.Float64bits(q)&0x1234 != 0x1234 {
		t.Error("QuietNaN64 dropped the payload")
	}
	s32 := math.Float32frombits(Bin32Inf | 0x42)
	if q32 := QuietNaN32(s32); IsSNaN32(q32) || math.Float32bits(q32)&0x42 != 0x42 {
		t.Errorf("QuietNaN32: %#08x", math.Float32bits(q32))
	}
}

func TestNextUpDown64(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"one", 1, 1 + 0x1p-52},
		{"pos_zero", 0, 0x1p-1074},
		{"neg_zero", math.Copysign(0, -1), 0x1p-1074},
		{"neg_min_subnormal", -0x1p-1074, math.Copysign(0, -1)},
		{"max_subnormal", 0x0.fffffffffffffp-1022, 0x1p-1022},
		{"max_finite", math.MaxFloat64, math.Inf(1)},
		{"neg_inf", math.Inf(-1), -math.MaxFloat64},
		{"binade_edge", 0x1.fffffffffffffp+0, 0x1p+1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextUp64(tt.x)
			if math.Float64bits(got) != math.Float64bits(tt.want) {
				t.Fatalf("NextUp64(%x) = %x, want %x", tt.x, got, tt.want)
			}
			// NextDown inverts NextUp away from format edges.
			if !math.IsInf(tt.x, -1) {
				back := NextDown64(got)
				if math.Float64bits(back) != math.Float64bits(tt.x) && tt.x != 0 {
					t.Errorf("NextDown64(NextUp64(%x)) = %x", tt.x, back)
				}
			}
		})
	}
	if got := NextUp64(math.Inf(1)); !math.IsInf(got, 1) {
		t.Errorf("NextUp64(+Inf) = %x", got)
	}
}

func TestNextUpDown32(t *testing.T) {
	if got := NextUp32(1); got != 1+0x1p-23 {
		t.Errorf("NextUp32(1) = %x", got)
	}
	if got := NextUp32(0); math.Float32bits(got) != 1 {
		t.Errorf("NextUp32(0) = %#08x", math.Float32bits(got))
	}
	if got := NextDown32(math.Float32frombits(Bin32MinNormal)); math.Float32bits(got) != Bin32MinNormal-1 {
		t.Errorf("NextDown32(min normal) = %#08x", math.Float32bits(got))
	}
	if got := NextUp32(math.Float32frombits(Bin32MaxFinite)); math.Float32bits(got) != Bin32Inf {
		t.Errorf("NextUp32(max finite) = %#08x", math.Float32bits(got))
	}
}

func TestFloat80Classify(t *testing.T) {
	tests := []struct {
		name string
		f    Float80
		want Class
	}{
		{"zero", Float80{SE: 0, M: 0}, ClassZero},
		{"neg_zero", Float80{SE: Bin80SignMask, M: 0}, ClassZero},
		{"one", Float80{SE: 0x3FFF, M: 1 << 63}, ClassNormal},
		{"subnormal", Float80{SE: 0, M: 1}, ClassSubnormal},
		{"inf", Float80{SE: 0x7FFF, M: 1 << 63}, ClassInf},
		{"qnan", Float80{SE: 0x7FFF, M: 3 << 62}, ClassQNaN},
		{"snan", Float80{SE: 0x7FFF, M: 1<<63 | 1}, ClassSNaN},
		// The explicit integer bit makes unnormal encodings possible;
		// hardware treats them as invalid operands.
		{"unnormal", Float80{SE: 0x4000, M: 1}, ClassInvalid80},
		{"pseudo_inf", Float80{SE: 0x7FFF, M: 0}, ClassInvalid80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.Classify(); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFloat80Quiet(t *testing.T) {
	s := Float80{SE: 0x7FFF, M: 1<<63 | 0xBEEF}
	q := s.Quiet()
	if q.Classify() != ClassQNaN || q.M&0xBEEF != 0xBEEF {
		t.Errorf("Quiet() = %+v", q)
	}
}
