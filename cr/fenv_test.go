// Copyright 2025 The core-math Authors. SPDX-License-Identifier: Apache-2.0

package cr

import "testing"

func TestRoundingModeString(t *testing.T) {
	tests := []struct {
		mode RoundingMode
		want string
	}{
		{ToNearestEven, "rndn"},
		{TowardZero, "rndz"},
		{Upward, "rndu"},
		{Downward, "rndd"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", tt.mode, got, tt.want)
		}
		back, err := ParseRoundingMode(tt.want)
		if err != nil || back != tt.mode {
			t.Errorf("ParseRoundingMode(%q) = %v, %v, want %v", tt.want, back, err, tt.mode)
		}
	}
	if _, err := ParseRoundingMode("nearest"); err == nil {
		t.Error("ParseRoundingMode(\"nearest\") succeeded, want error")
	}
}

func TestForSign(t *testing.T) {
	tests := []struct {
		mode RoundingMode
		neg  bool
		want RoundingMode
	}{
		{ToNearestEven, true, ToNearestEven},
		{TowardZero, true, TowardZero},
		{Upward, false, Upward},
		{Upward, true, Downward},
		{Downward, false, Downward},
		{Downward, true, Upward},
	}
	for _, tt := range tests {
		if got := tt.mode.ForSign(tt.neg); got != tt.want {
			t.Errorf("%v.ForSign(%v) = %v, want %v", tt.mode, tt.neg, got, tt.want)
		}
	}
}

func TestFlags(t *testing.T) {
	var f Flags
	if f.String() != "none" {
		t.Errorf("zero Flags String() = %q", f.String())
	}
	f = Inexact | Underflow
	if !f.Has(Inexact) || !f.Has(Underflow) || f.Has(Overflow) {
		t.Errorf("Has misreports on %v", f)
	}
	if !f.Has(Inexact | Underflow) {
		t.Error("Has(mask) must require every bit of the mask")
	}
	if got := f.String(); got != "inexact|underflow" {
		t.Errorf("String() = %q, want inexact|underflow", got)
	}
}

func TestEnvFlagsAccumulate(t *testing.T) {
	env := NewEnv(Upward)
	env.Raise(Inexact)
	env.Raise(Overflow)
	if env.Flags() != Inexact|Overflow {
		t.Errorf("Flags() = %v after two raises", env.Flags())
	}
	env.ClearFlags()
	if env.Flags() != 0 || env.Errno() != nil {
		t.Error("ClearFlags left residue")
	}
}

func TestEnvErrnoGated(t *testing.T) {
	env := NewEnv(ToNearestEven)
	env.SetErrnoRange()
	if env.Errno() != nil {
		t.Error("errno set while CheckErrno is off")
	}
	env.CheckErrno = true
	env.SetErrnoDomain()
	if env.Errno() != ErrDomain {
		t.Errorf("Errno() = %v, want ErrDomain", env.Errno())
	}
	env.SetErrnoRange() // later settings win, like C errno
	if env.Errno() != ErrRange {
		t.Errorf("Errno() = %v, want ErrRange", env.Errno())
	}
}
