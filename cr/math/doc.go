// Copyright 2025 The core-math Authors. SPDX-License-Identifier: Apache-2.0

// Package math implements correctly rounded elementary functions for
// binary64 and binary32. Every function takes a *cr.Env carrying the
// rounding mode and accumulating the exception flags of the call, and
// returns the exact rounding of the mathematical result under that mode.
//
// Each function runs a fast double-word path whose result is accepted
// only when its static error bound cannot change the rounding; otherwise
// a slower path with a much smaller error bound decides. The slow paths
// are precise beyond the hardest-to-round cases of their functions, so
// the two-step ladder is terminal.
package math
