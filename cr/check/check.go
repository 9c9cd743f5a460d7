// Copyright 2025 The core-math Authors. SPDX-License-Identifier: Apache-2.0

// Package check drives the correctly rounded functions against the
// arbitrary-precision references in cr/oracle, comparing result bit
// patterns and exception flags. Binary32 functions are checked
// exhaustively over all 2^32 inputs; binary64 functions over targeted
// boundary cases plus large random batches.
package check

import (
	"fmt"
	"math"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/lntue/core-math/cr"
)

// AllModes lists the rounding modes a full verification run covers.
var AllModes = []cr.RoundingMode{
	cr.ToNearestEven, cr.TowardZero, cr.Upward, cr.Downward,
}

// Failure is one input where the function under test and the reference
// disagree on bits, flags, or errno.
type Failure struct {
	Func string
	Mode cr.RoundingMode
	Args string
	Got  string
	Want string
}

func (f Failure) String() string {
	return fmt.Sprintf("%s [%s] %s: got %s, want %s", f.Func, f.Mode, f.Args, f.Got, f.Want)
}

// Report accumulates results across concurrent drivers. Only the first
// keep failures are retained verbatim; the counters keep counting.
type Report struct {
	checked atomic.Int64
	failed  atomic.Int64

	mu       sync.Mutex
	keep     int
	failures []Failure
}

func NewReport(keep int) *Report {
	return &Report{keep: keep}
}

func (r *Report) add(f Failure) {
	r.failed.Add(1)
	r.mu.Lock()
	if len(r.failures) < r.keep {
		r.failures = append(r.failures, f)
	}
	r.mu.Unlock()
}

func (r *Report) Checked() int64 { return r.checked.Load() }
func (r *Report) Failed() int64  { return r.failed.Load() }
func (r *Report) Ok() bool       { return r.failed.Load() == 0 }

// Failures returns the retained failures.
func (r *Report) Failures() []Failure {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Failure(nil), r.failures...)
}

func hex64(x float64) string {
	if math.IsNaN(x) {
		return fmt.Sprintf("NaN(%#016x)", math.Float64bits(x))
	}
	return strconv.FormatFloat(x, 'x', -1, 64)
}

func hex32(x float32) string {
	if x != x {
		return fmt.Sprintf("NaN(%#08x)", math.Float32bits(x))
	}
	return strconv.FormatFloat(float64(x), 'x', -1, 32)
}

func describe64(x float64, flags cr.Flags) string {
	return fmt.Sprintf("%s (%#016x) flags=%s", hex64(x), math.Float64bits(x), flags)
}

func describe32(x float32, flags cr.Flags) string {
	return fmt.Sprintf("%s (%#08x) flags=%s", hex32(x), math.Float32bits(x), flags)
}

// errnoConsistent reports whether the errno the evaluation produced is
// implied by the reference flags: ERANGE only accompanies an overflow
// or underflow, EDOM only an invalid operation.
func errnoConsistent(errno error, want cr.Flags) bool {
	switch errno {
	case nil:
		return true
	case cr.ErrRange:
		return want&(cr.Overflow|cr.Underflow) != 0
	case cr.ErrDomain:
		return want&cr.Invalid != 0
	}
	return false
}

// One64 checks a unary binary64 function at a single input.
func One64(rep *Report, fn Fn64, mode cr.RoundingMode, x float64) {
	rep.checked.Add(1)
	env := cr.NewEnv(mode)
	env.CheckErrno = true
	got := fn.Eval(env, x)
	want, wantFlags := fn.Ref(mode, x)
	if math.Float64bits(got) == math.Float64bits(want) &&
		env.Flags() == wantFlags && errnoConsistent(env.Errno(), wantFlags) {
		return
	}
	rep.add(Failure{
		Func: fn.Name,
		Mode: mode,
		Args: "x=" + hex64(x),
		Got:  describe64(got, env.Flags()),
		Want: describe64(want, wantFlags),
	})
}

// One64x2 checks a binary binary64 function at a single input pair.
func One64x2(rep *Report, fn Fn64x2, mode cr.RoundingMode, x, y float64) {
	rep.checked.Add(1)
	env := cr.NewEnv(mode)
	env.CheckErrno = true
	got := fn.Eval(env, x, y)
	want, wantFlags := fn.Ref(mode, x, y)
	if math.Float64bits(got) == math.Float64bits(want) &&
		env.Flags() == wantFlags && errnoConsistent(env.Errno(), wantFlags) {
		return
	}
	rep.add(Failure{
		Func: fn.Name,
		Mode: mode,
		Args: fmt.Sprintf("x=%s, y=%s", hex64(x), hex64(y)),
		Got:  describe64(got, env.Flags()),
		Want: describe64(want, wantFlags),
	})
}

// One32 checks a unary binary32 function at a single input.
func One32(rep *Report, fn Fn32, mode cr.RoundingMode, x float32) {
	rep.checked.Add(1)
	env := cr.NewEnv(mode)
	env.CheckErrno = true
	got := fn.Eval(env, x)
	want, wantFlags := fn.Ref(mode, x)
	if math.Float32bits(got) == math.Float32bits(want) &&
		env.Flags() == wantFlags && errnoConsistent(env.Errno(), wantFlags) {
		return
	}
	rep.add(Failure{
		Func: fn.Name,
		Mode: mode,
		Args: "x=" + hex32(x),
		Got:  describe32(got, env.Flags()),
		Want: describe32(want, wantFlags),
	})
}
