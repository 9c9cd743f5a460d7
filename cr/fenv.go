// Copyright 2025 The core-math Authors. SPDX-License-Identifier: Apache-2.0

// Package cr provides the shared substrate for correctly-rounded
// elementary-function evaluation: bit-level floating-point format
// descriptors, an explicit floating-point environment, double-word
// (double-double) arithmetic primitives, and 128-bit fixed-point helpers.
//
// Go exposes no control over the hardware FPU, so the ambient IEEE 754
// environment is modeled as an explicit value: the rounding mode travels
// into each evaluation through an Env, and the exception flags raised by
// the evaluation accumulate on the same Env. Evaluations never mutate any
// shared state; an Env belongs to one goroutine (or is externally
// synchronized by the caller).
package cr

import "errors"

// RoundingMode selects one of the four IEEE 754 rounding-direction
// attributes. The zero value is round-to-nearest, ties-to-even.
type RoundingMode uint8

const (
	// ToNearestEven rounds to the nearest representable value, breaking
	// ties toward the value with an even least-significant mantissa bit.
	ToNearestEven RoundingMode = iota
	// TowardZero truncates toward zero.
	TowardZero
	// Upward rounds toward +Inf.
	Upward
	// Downward rounds toward -Inf.
	Downward
)

// String returns the harness spelling of the mode (rndn, rndz, rndu, rndd).
func (m RoundingMode) String() string {
	switch m {
	case ToNearestEven:
		return "rndn"
	case TowardZero:
		return "rndz"
	case Upward:
		return "rndu"
	case Downward:
		return "rndd"
	}
	return "rnd?"
}

// ForSign returns the direction that applies to the magnitude of a
// value carrying sign neg: rounding a negative value upward rounds its
// magnitude toward zero, and downward rounds it away.
func (m RoundingMode) ForSign(neg bool) RoundingMode {
	if neg {
		switch m {
		case Upward:
			return Downward
		case Downward:
			return Upward
		}
	}
	return m
}

// ParseRoundingMode converts a harness spelling back into a mode.
func ParseRoundingMode(s string) (RoundingMode, error) {
	switch s {
	case "rndn":
		return ToNearestEven, nil
	case "rndz":
		return TowardZero, nil
	case "rndu":
		return Upward, nil
	case "rndd":
		return Downward, nil
	}
	return 0, errors.New("unknown rounding mode " + s)
}

// Flags is a bitset of IEEE 754 exception flags raised by an evaluation.
type Flags uint8

const (
	// Inexact: the delivered result differs from the infinitely-precise one.
	Inexact Flags = 1 << iota
	// Underflow: the result is tiny (subnormal after rounding) and inexact.
	Underflow
	// Overflow: the correctly-rounded result exceeded the largest finite value.
	Overflow
	// Invalid: an operand was invalid for the operation (e.g. signaling NaN).
	Invalid
)

// Has reports whether every flag in mask is raised.
func (f Flags) Has(mask Flags) bool { return f&mask == mask }

// String lists the raised flags in a fixed order.
func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	s := ""
	add := func(m Flags, name string) {
		if f&m != 0 {
			if s != "" {
				s += "|"
			}
			s += name
		}
	}
	add(Inexact, "inexact")
	add(Underflow, "underflow")
	add(Overflow, "overflow")
	add(Invalid, "invalid")
	return s
}

// Errno sentinels, reported only when an Env has errno checking enabled.
// They mirror the C library's EDOM and ERANGE.
var (
	// ErrDomain reports a domain error: a non-NaN input produced a NaN.
	ErrDomain = errors.New("domain error")
	// ErrRange reports a range error: overflow, or underflow with precision loss.
	ErrRange = errors.New("range error")
)

// Env is the explicit floating-point environment of an evaluation:
// rounding mode in, exception-flag delta out. The zero value evaluates
// under round-to-nearest with errno reporting disabled.
//
// An Env performs no synchronization. Share one across goroutines only
// with external locking; the evaluation engine itself is stateless.
type Env struct {
	// Mode is the rounding-direction attribute read by every evaluation.
	Mode RoundingMode
	// CheckErrno enables errno-style reporting through Errno. It has no
	// effect on results or flags.
	CheckErrno bool

	flags Flags
	errno error
}

// NewEnv returns an Env evaluating under the given mode.
func NewEnv(mode RoundingMode) *Env { return &Env{Mode: mode} }

// Raise accumulates exception flags.
func (e *Env) Raise(f Flags) { e.flags |= f }

// Flags returns the accumulated exception flags.
func (e *Env) Flags() Flags { return e.flags }

// ClearFlags resets the accumulated flags and errno.
func (e *Env) ClearFlags() {
	e.flags = 0
	e.errno = nil
}

// Errno returns the pending errno value (ErrDomain or ErrRange), or nil.
// Always nil unless CheckErrno is set.
func (e *Env) Errno() error { return e.errno }

// setErrno records an errno value if errno checking is enabled.
// Later settings overwrite earlier ones, as with C's errno.
func (e *Env) setErrno(err error) {
	if e.CheckErrno {
		e.errno = err
	}
}

// SetErrnoDomain records ErrDomain (function packages raise it when a
// non-NaN input produces a NaN result).
func (e *Env) SetErrnoDomain() { e.setErrno(ErrDomain) }

// SetErrnoRange records ErrRange (overflow, or inexact underflow).
func (e *Env) SetErrnoRange() { e.setErrno(ErrRange) }
