// Package nulldist builds the reference distribution for an aperture
// measurement: the same aperture geometry dropped at random longitudes in
// the target's latitude band, far enough from the target to carry no signal.
package nulldist

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/domain"
	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/ports"
	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/usecase/photometry"
)

// streamOffset keeps null-trial PCG streams disjoint from the bootstrap's
// under a shared seed.
const streamOffset uint64 = 2 << 32

// Options controls the null generation. Zero MinTrials means half of
// Trials; zero MinSepDeg means the aperture's rim outer radius.
type Options struct {
	Trials      int
	Seed        uint64
	JitterDeg   float64
	MinSepDeg   float64
	RetryBudget int
	MinTrials   int
	MinPix      int
	Workers     int
}

// Distribution is the generated null set. Samples holds one ΔT per
// surviving trial, in trial order with skipped trials removed.
type Distribution struct {
	Samples []float64
	Summary domain.NullSummary
}

// Generate runs Trials control measurements. Each trial redraws its center
// up to RetryBudget times when the control aperture lands on masked or
// undersampled sky; a trial that runs out of redraws is skipped. The run
// fails with masked_region_exhausted only when fewer than MinTrials survive.
func Generate(ctx context.Context, m ports.SkyMap, target domain.Direction, ap domain.Aperture, opt Options) (Distribution, error) {
	if opt.Trials <= 0 {
		return Distribution{}, &domain.OpError{
			Op:   "nulldist.generate",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("trials must be positive, got %d", opt.Trials),
		}
	}

	minSep := opt.MinSepDeg
	if minSep <= 0 {
		minSep = ap.RimOuterDeg
	}
	minTrials := minTrialsFor(opt)
	retries := opt.RetryBudget
	if retries <= 0 {
		retries = 25
	}
	workers := opt.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	type outcome struct {
		deltaT float64
		ok     bool
	}
	results := make([]outcome, opt.Trials)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for t := 0; t < opt.Trials; t++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			rng := rand.New(rand.NewPCG(opt.Seed, streamOffset+uint64(t)))
			for attempt := 0; attempt <= retries; attempt++ {
				dir, err := drawCenter(rng, target, opt.JitterDeg)
				if err != nil {
					return err
				}
				if dir.SeparationDeg(target) < minSep {
					continue
				}

				meas, err := photometry.Measure(m, dir, ap, opt.MinPix)
				if err == nil {
					results[t] = outcome{deltaT: meas.DeltaT, ok: true}
					return nil
				}
				if !domain.IsKind(err, domain.KindInsufficientPixels) {
					// Anything other than masked/undersampled sky is a real
					// failure, not a redraw case.
					return err
				}
			}
			// Budget exhausted: the trial is skipped, not fatal.
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Distribution{}, err
	}

	samples := make([]float64, 0, opt.Trials)
	for _, r := range results {
		if r.ok {
			samples = append(samples, r.deltaT)
		}
	}

	if len(samples) < minTrials {
		return Distribution{}, &domain.OpError{
			Op:   "nulldist.generate",
			Kind: domain.KindMaskedRegionExhaust,
			Err: fmt.Errorf("only %d of %d control trials found usable sky (need %d)",
				len(samples), opt.Trials, minTrials),
		}
	}

	mean, std := meanStd(samples)
	return Distribution{
		Samples: samples,
		Summary: domain.NullSummary{
			Mean:    mean,
			Std:     std,
			Used:    len(samples),
			Skipped: opt.Trials - len(samples),
		},
	}, nil
}

// drawCenter picks a uniform random longitude and the target latitude,
// jittered within ±JitterDeg when configured.
func drawCenter(rng *rand.Rand, target domain.Direction, jitterDeg float64) (domain.Direction, error) {
	lon := rng.Float64() * 360
	lat := target.LatDeg
	if jitterDeg > 0 {
		lat += (2*rng.Float64() - 1) * jitterDeg
		if lat > 90 {
			lat = 90
		} else if lat < -90 {
			lat = -90
		}
	}
	return domain.NewDirection(lon, lat)
}

func minTrialsFor(opt Options) int {
	if opt.MinTrials > 0 {
		return opt.MinTrials
	}
	if opt.Trials/2 > 1 {
		return opt.Trials / 2
	}
	return 1
}

func meanStd(xs []float64) (mean, std float64) {
	n := float64(len(xs))
	if n == 0 {
		return 0, 0
	}
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
