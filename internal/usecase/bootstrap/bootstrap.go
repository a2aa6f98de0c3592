// Package bootstrap quantifies the sampling uncertainty of an aperture
// measurement by resampling the core and rim pixel sets with replacement.
package bootstrap

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/domain"
)

// streamOffset separates bootstrap PCG streams from the null generator's so
// the two never draw from the same sequence under a shared seed.
const streamOffset uint64 = 1 << 32

// Options controls one estimate. Workers <= 0 runs on all cores.
type Options struct {
	Iterations int
	Seed       uint64
	Workers    int
}

// Estimate resamples core and rim independently to their original
// cardinalities, recomputes ΔT per iteration, and summarizes the resampled
// distribution. Iteration i always draws from the PCG stream (seed,
// streamOffset+i), so results are bit-identical for a given seed no matter
// how the iterations are scheduled.
func Estimate(ctx context.Context, core, rim []float64, opt Options) (domain.BootstrapEstimate, error) {
	if opt.Iterations <= 0 {
		return domain.BootstrapEstimate{}, &domain.OpError{
			Op:   "bootstrap.estimate",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("iterations must be positive, got %d", opt.Iterations),
		}
	}
	if len(core) == 0 || len(rim) == 0 {
		return domain.BootstrapEstimate{}, &domain.OpError{
			Op:   "bootstrap.estimate",
			Kind: domain.KindInsufficientPixels,
			Err:  fmt.Errorf("empty pixel set (core=%d, rim=%d)", len(core), len(rim)),
		}
	}

	workers := opt.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	deltas := make([]float64, opt.Iterations)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < opt.Iterations; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewPCG(opt.Seed, streamOffset+uint64(i)))
			deltas[i] = resampleMean(rng, core) - resampleMean(rng, rim)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.BootstrapEstimate{}, err
	}

	mean, std := meanStd(deltas)
	return domain.BootstrapEstimate{
		Mean:       mean,
		Std:        std,
		Iterations: opt.Iterations,
	}, nil
}

// resampleMean draws len(values) samples with replacement and returns their
// arithmetic mean.
func resampleMean(rng *rand.Rand, values []float64) float64 {
	var sum float64
	n := len(values)
	for i := 0; i < n; i++ {
		sum += values[rng.IntN(n)]
	}
	return sum / float64(n)
}

func meanStd(xs []float64) (mean, std float64) {
	n := float64(len(xs))
	for _, x := range xs {
		mean += x
	}
	mean /= n

	if len(xs) < 2 {
		return mean, 0
	}
	var ss float64
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	return mean, math.Sqrt(ss / (n - 1))
}
