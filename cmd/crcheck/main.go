// Copyright 2025 The core-math Authors. SPDX-License-Identifier: Apache-2.0

// Command crcheck verifies the correctly rounded functions against the
// arbitrary-precision references.
//
// Usage:
//
//	crcheck -func sin32                      # exhaustive, all modes
//	crcheck -func exp2 -rnd rndu -random 1e8 # one mode, random batch
//	crcheck -func all -keep 20
//
// Binary32 functions are checked over every bit pattern in the range
// given by -begin and -end; binary64 functions over their targeted
// cases plus -random samples. The exit status is nonzero if any input disagrees with the
// reference on result bits, exception flags, or errno.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sys/cpu"

	"github.com/lntue/core-math/cr"
	"github.com/lntue/core-math/cr/check"
	"github.com/lntue/core-math/cr/workerpool"
)

var (
	funcName = flag.String("func", "all", "Function to check (exp2, cbrt, hypot, sin32, all)")
	rndName  = flag.String("rnd", "all", "Rounding mode (rndn, rndz, rndu, rndd, all)")
	workers  = flag.Int("workers", runtime.GOMAXPROCS(0), "Number of parallel workers")
	random   = flag.Float64("random", 1e7, "Random samples per binary64 function per mode")
	seed     = flag.Uint64("seed", 42, "Seed for the random batches")
	keep     = flag.Int("keep", 10, "Failures to report in full")
	begin    = flag.String("begin", "0x00000000", "First binary32 bit pattern (hex)")
	end      = flag.String("end", "0x100000000", "One past the last binary32 bit pattern (hex)")
)

func cpuInfo() string {
	switch runtime.GOARCH {
	case "amd64":
		return fmt.Sprintf("amd64 avx2=%v avx512=%v fma=%v",
			cpu.X86.HasAVX2, cpu.X86.HasAVX512F, cpu.X86.HasFMA)
	case "arm64":
		return fmt.Sprintf("arm64 asimd=%v fp=%v", cpu.ARM64.HasASIMD, cpu.ARM64.HasFP)
	}
	return runtime.GOARCH
}

func parseHex(s string) (uint64, error) {
	return strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 64)
}

func main() {
	flag.Parse()

	var modes []cr.RoundingMode
	if *rndName == "all" {
		modes = check.AllModes
	} else {
		m, err := cr.ParseRoundingMode(*rndName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "crcheck: %v\n", err)
			os.Exit(2)
		}
		modes = []cr.RoundingMode{m}
	}

	lo, errLo := parseHex(*begin)
	hi, errHi := parseHex(*end)
	if errLo != nil || errHi != nil || hi > 1<<32 {
		fmt.Fprintln(os.Stderr, "crcheck: -begin/-end must be hex patterns within [0, 0x100000000]")
		os.Exit(2)
	}

	funcs := strings.Split(*funcName, ",")
	if *funcName == "all" {
		funcs = []string{"exp2", "cbrt", "hypot", "sin32"}
	}

	fmt.Printf("crcheck: %d workers on %s\n", *workers, cpuInfo())
	pool := workerpool.New(*workers)
	defer pool.Close()
	ctx := context.Background()
	rep := check.NewReport(*keep)
	count := int64(*random)

	for _, name := range funcs {
		for _, mode := range modes {
			before := rep.Checked()
			switch name {
			case "exp2":
				fn := check.Exp2()
				check.RunCases64(rep, fn, mode)
				if err := check.RunRandom64(ctx, rep, fn, mode, count, *seed, *workers); err != nil {
					fmt.Fprintf(os.Stderr, "crcheck: %v\n", err)
					os.Exit(2)
				}
			case "cbrt":
				fn := check.Cbrt()
				check.RunCases64(rep, fn, mode)
				if err := check.RunRandom64(ctx, rep, fn, mode, count, *seed, *workers); err != nil {
					fmt.Fprintf(os.Stderr, "crcheck: %v\n", err)
					os.Exit(2)
				}
			case "hypot":
				fn := check.Hypot()
				check.RunCases64x2(rep, fn, mode)
				if err := check.RunRandom64x2(ctx, rep, fn, mode, count, *seed, *workers); err != nil {
					fmt.Fprintf(os.Stderr, "crcheck: %v\n", err)
					os.Exit(2)
				}
			case "sin32":
				check.RunExhaustive32(pool, rep, check.Sin32(), mode, lo, hi)
			default:
				fmt.Fprintf(os.Stderr, "crcheck: unknown function %q\n", name)
				os.Exit(2)
			}
			fmt.Printf("%-6s [%s] %d checked\n", name, mode, rep.Checked()-before)
		}
	}

	for _, f := range rep.Failures() {
		fmt.Println("FAIL " + f.String())
	}
	if !rep.Ok() {
		fmt.Printf("crcheck: %d of %d inputs FAILED\n", rep.Failed(), rep.Checked())
		os.Exit(1)
	}
	fmt.Printf("crcheck: all %d inputs ok\n", rep.Checked())
}
