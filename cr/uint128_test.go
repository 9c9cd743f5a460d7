// Copyright 2025 The core-math Authors. SPDX-License-Identifier: Apache-2.0

package cr

import "testing"

func TestUint128AddSub(t *testing.T) {
	x := U128(0, ^uint64(0))
	y := U128From64(1)
	if got := x.Add(y); got != U128(1, 0) {
		t.Errorf("carry across the halves: got %+v", got)
	}
	if got := U128(1, 0).Sub(y); got != U128(0, ^uint64(0)) {
		t.Errorf("borrow across the halves: got %+v", got)
	}
	if got := U128(7, 3).Add64(5); got != U128(7, 8) {
		t.Errorf("Add64: got %+v", got)
	}
	// mod 2^128 wraparound, used for the top-of-ulp boundary
	if got := U128(0, 0).Sub(U128From64(2)); got != U128(^uint64(0), ^uint64(0)-1) {
		t.Errorf("0 - 2 = %+v", got)
	}
}

func TestUint128Shifts(t *testing.T) {
	x := U128(0x8000000000000001, 0x8000000000000000)
	tests := []struct {
		name string
		got  Uint128
		want Uint128
	}{
		{"shl_0", x.Shl(0), x},
		{"shl_1", x.Shl(1), U128(3, 0)},
		{"shl_64", U128(0, 5).Shl(64), U128(5, 0)},
		{"shl_127", U128(0, 1).Shl(127), U128(1<<63, 0)},
		{"shr_0", x.Shr(0), x},
		{"shr_1", x.Shr(1), U128(0x4000000000000000, 0xC000000000000000)},
		{"shr_64", x.Shr(64), U128(0, 0x8000000000000001)},
		{"shr_127", x.Shr(127), U128(0, 1)},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %+v, want %+v", tt.name, tt.got, tt.want)
		}
	}
}

func TestUint128TrailingMask(t *testing.T) {
	x := U128(0xDEADBEEF, 0x0123456789ABCDEF)
	if got := x.TrailingMask(0); !got.IsZero() {
		t.Errorf("TrailingMask(0) = %+v", got)
	}
	if got := x.TrailingMask(16); got != U128(0, 0xCDEF) {
		t.Errorf("TrailingMask(16) = %+v", got)
	}
	if got := x.TrailingMask(64); got != U128(0, x.Lo) {
		t.Errorf("TrailingMask(64) = %+v", got)
	}
	if got := x.TrailingMask(96); got != U128(0xDEADBEEF&0xFFFFFFFF, x.Lo) {
		t.Errorf("TrailingMask(96) = %+v", got)
	}
	if got := x.TrailingMask(128); got != x {
		t.Errorf("TrailingMask(128) = %+v", got)
	}
}

func TestMul64(t *testing.T) {
	// (2^32+1)^2 = 2^64 + 2^33 + 1
	if got := Mul64(1<<32+1, 1<<32+1); got != U128(1, 1<<33+1) {
		t.Errorf("Mul64 = %+v", got)
	}
	if got := Mul64(^uint64(0), ^uint64(0)); got != U128(^uint64(0)-1, 1) {
		t.Errorf("Mul64 max = %+v", got)
	}
}

func TestMulFix(t *testing.T) {
	// Q2.126: 1.5 * 1.5 = 2.25.
	x := U128(3<<61, 0)
	got := x.MulFix(x, 126)
	want := U128(9<<60, 0)
	if got != want {
		t.Errorf("1.5*1.5 in Q2.126: got %+v, want %+v", got, want)
	}
	// Truncation drops low bits only: (2^126 + 1)^2 >> 126 keeps 2^126 + 2.
	y := U128(1<<62, 1)
	if got := y.MulFix(y, 126); got != U128(1<<62, 2) {
		t.Errorf("truncating MulFix: got %+v", got)
	}
}

func TestDiv64(t *testing.T) {
	x := Mul64(0x0123456789ABCDEF, 720)
	if got := x.Div64(720); got != U128From64(0x0123456789ABCDEF) {
		t.Errorf("Div64 inverse of Mul64: got %+v", got)
	}
	if got := U128(1, 0).Div64(2); got != U128(0, 1<<63) {
		t.Errorf("2^64/2: got %+v", got)
	}
}

func TestLeadingZeros(t *testing.T) {
	if got := U128(0, 1).LeadingZeros(); got != 127 {
		t.Errorf("LeadingZeros(1) = %d", got)
	}
	if got := U128(1<<62, 0).LeadingZeros(); got != 1 {
		t.Errorf("LeadingZeros(2^126) = %d", got)
	}
}
