// Copyright 2025 The core-math Authors. SPDX-License-Identifier: Apache-2.0

package math

// sinIPi is 4/pi as a 256-bit fixed-point value, least significant limb
// first, used by the big-argument reduction.
var sinIPi = [4]uint64{
	0xfe5163abdebbc562, 0xdb6295993c439041,
	0xfc2757d1f534ddc0, 0xa2f9836e4e441529,
}

// sinA and sinB are minimax coefficients of sin(pi/4*z)/z and
// (1-cos(pi/4*z))/z^2 over the reduced interval |z| <= 1/2.
var sinA = [4]float64{
	0x1.921fb54442d17p-3, -0x1.4abbce6256a39p-10,
	0x1.466bc5a518c16p-19, -0x1.32bdc61074ff6p-29,
}

var sinB = [4]float64{
	0x1.3bd3cc9be45dcp-6, -0x1.03c1f081b0833p-14,
	0x1.55d3c6fc9ac1fp-24, -0x1.e1d3ff281b40dp-35,
}

// sinTb[i] is sin(i*pi/8) over a full period; cos comes from the same
// table with an index offset of 8.
var sinTb = [32]float64{
	0x0p+0, 0x1.8f8b83c69a60bp-3, 0x1.87de2a6aea963p-2, 0x1.1c73b39ae68c8p-1,
	0x1.6a09e667f3bcdp-1, 0x1.a9b66290ea1a3p-1, 0x1.d906bcf328d46p-1, 0x1.f6297cff75cbp-1,
	0x1p+0, 0x1.f6297cff75cbp-1, 0x1.d906bcf328d46p-1, 0x1.a9b66290ea1a3p-1,
	0x1.6a09e667f3bcdp-1, 0x1.1c73b39ae68c8p-1, 0x1.87de2a6aea963p-2, 0x1.8f8b83c69a60bp-3,
	0x0p+0, -0x1.8f8b83c69a60bp-3, -0x1.87de2a6aea963p-2, -0x1.1c73b39ae68c8p-1,
	-0x1.6a09e667f3bcdp-1, -0x1.a9b66290ea1a3p-1, -0x1.d906bcf328d46p-1, -0x1.f6297cff75cbp-1,
	-0x1p+0, -0x1.f6297cff75cbp-1, -0x1.d906bcf328d46p-1, -0x1.a9b66290ea1a3p-1,
	-0x1.6a09e667f3bcdp-1, -0x1.1c73b39ae68c8p-1, -0x1.87de2a6aea963p-2, -0x1.8f8b83c69a60bp-3,
}

// sinHard lists the arguments whose double-precision value sits too
// close to a binary32 rounding boundary; the rl term steers the final
// narrowing in every mode.
var sinHard = [3]struct {
	uarg   uint32
	rh, rl float32
}{
	{0x46199998, -0x1.63f4bap-2, -0x1p-27}, // 0x1.33333p+13
	{0x3f3adc51, 0x1.55688ap-1, -0x1p-26},  // 0x1.75b8a2p-1
	{0x3fa7832a, 0x1.ee836cp-1, -0x1p-26},  // 0x1.4f0654p+0
}
