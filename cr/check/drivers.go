// Copyright 2025 The core-math Authors. SPDX-License-Identifier: Apache-2.0

package check

import (
	"context"
	"math"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/lntue/core-math/cr"
	"github.com/lntue/core-math/cr/workerpool"
)

// exhaustiveBatch keeps the per-batch bookkeeping of the pool well under
// the cost of the checks themselves.
const exhaustiveBatch = 4096

// RunCases64 checks the special-value preamble and the function's
// targeted cases under one mode.
func RunCases64(rep *Report, fn Fn64, mode cr.RoundingMode) {
	for _, x := range Specials64() {
		One64(rep, fn, mode, x)
	}
	for _, x := range fn.Cases {
		One64(rep, fn, mode, x)
		One64(rep, fn, mode, math.Nextafter(x, math.Inf(1)))
		One64(rep, fn, mode, math.Nextafter(x, math.Inf(-1)))
	}
}

// RunCases64x2 is RunCases64 for two-argument functions; the preamble
// pairs every special with zero, one, and the special itself.
func RunCases64x2(rep *Report, fn Fn64x2, mode cr.RoundingMode) {
	specials := Specials64()
	for _, x := range specials {
		One64x2(rep, fn, mode, x, 0)
		One64x2(rep, fn, mode, 0, x)
		One64x2(rep, fn, mode, x, 1)
		One64x2(rep, fn, mode, x, x)
	}
	for _, c := range fn.Cases {
		One64x2(rep, fn, mode, c[0], c[1])
		One64x2(rep, fn, mode, c[1], c[0])
	}
}

// RunRandom64 samples count inputs from the function's generator across
// workers goroutines. Each worker draws from its own deterministically
// seeded stream, so a run is reproducible regardless of scheduling.
func RunRandom64(ctx context.Context, rep *Report, fn Fn64, mode cr.RoundingMode, count int64, seed uint64, workers int) error {
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		share := count / int64(workers)
		if w == workers-1 {
			share += count % int64(workers)
		}
		stream := uint64(w)
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(seed, stream))
			for i := int64(0); i < share; i++ {
				if i&(exhaustiveBatch-1) == 0 && ctx.Err() != nil {
					return ctx.Err()
				}
				One64(rep, fn, mode, fn.Gen(rng))
			}
			return nil
		})
	}
	return g.Wait()
}

// RunRandom64x2 is RunRandom64 for two-argument functions.
func RunRandom64x2(ctx context.Context, rep *Report, fn Fn64x2, mode cr.RoundingMode, count int64, seed uint64, workers int) error {
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		share := count / int64(workers)
		if w == workers-1 {
			share += count % int64(workers)
		}
		stream := uint64(w)
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(seed, stream))
			for i := int64(0); i < share; i++ {
				if i&(exhaustiveBatch-1) == 0 && ctx.Err() != nil {
					return ctx.Err()
				}
				x, y := fn.Gen(rng)
				One64x2(rep, fn, mode, x, y)
			}
			return nil
		})
	}
	return g.Wait()
}

// RunExhaustive32 checks every bit pattern in [begin, end) under one
// mode, work-stealing batches from the pool. The full domain is
// [0, 1<<32).
func RunExhaustive32(pool *workerpool.Pool, rep *Report, fn Fn32, mode cr.RoundingMode, begin, end uint64) {
	if end <= begin {
		return
	}
	pool.ParallelForBatched(int64(end-begin), exhaustiveBatch, func(start, stop int64) {
		for i := start; i < stop; i++ {
			u := uint32(begin + uint64(i))
			One32(rep, fn, mode, math.Float32frombits(u))
		}
	})
}
