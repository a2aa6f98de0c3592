package usecase

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/domain"
	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/ports"
	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/usecase/bootstrap"
	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/usecase/nulldist"
	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/usecase/photometry"
)

// MeasureTarget runs the full aperture-photometry pipeline for one target:
// per input map, the core-minus-rim statistic, the bootstrap uncertainty,
// and the matched-latitude null distribution; then the cross-map summary.
type MeasureTarget struct {
	maps  ports.MapLoader
	store ports.ArtifactStore // optional; nil disables persistence
	now   func() time.Time
	newID func() string
}

type MeasureOption func(*MeasureTarget)

// WithNow is useful for tests.
func WithNow(now func() time.Time) MeasureOption {
	return func(uc *MeasureTarget) { uc.now = now }
}

// WithIDGenerator overrides the record ID source.
func WithIDGenerator(gen func() string) MeasureOption {
	return func(uc *MeasureTarget) { uc.newID = gen }
}

func NewMeasureTarget(ml ports.MapLoader, store ports.ArtifactStore, opts ...MeasureOption) *MeasureTarget {
	uc := &MeasureTarget{
		maps:  ml,
		store: store,
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute validates the configuration (fatal on malformed input, before any
// map is touched), then processes every map independently: one map's
// failure is recorded in its entry and never aborts the others.
func (uc *MeasureTarget) Execute(ctx context.Context, cfg domain.MeasureConfig) (domain.MeasurementRecord, string, error) {
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return domain.MeasurementRecord{}, "", err
	}

	rec := domain.MeasurementRecord{
		ID:         uc.newID(),
		CreatedAt:  uc.now().UTC(),
		TargetName: cfg.TargetName,
		Target:     cfg.Target,
		Aperture:   cfg.Aperture,
		Seed:       cfg.Seed,
		Maps:       make([]domain.MapMeasurement, len(cfg.Maps)),
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, spec := range cfg.Maps {
		g.Go(func() error {
			rec.Maps[i] = uc.measureOne(gctx, spec, cfg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.MeasurementRecord{}, "", err
	}

	rec.Combined = combine(rec.Maps)

	if uc.store == nil {
		return rec, "", nil
	}
	id, err := uc.store.Save(rec)
	if err != nil {
		return rec, "", err
	}
	return rec, id, nil
}

// measureOne never returns an error: per-map failures become explicit
// entries in the record.
func (uc *MeasureTarget) measureOne(ctx context.Context, spec domain.MapSpec, cfg domain.MeasureConfig) domain.MapMeasurement {
	out := domain.MapMeasurement{Label: spec.Label}

	m, err := uc.maps.Load(spec, cfg.Mask)
	if err != nil {
		out.Failure = toFailure(err)
		return out
	}
	out.Nside = m.Nside()

	meas, err := photometry.Measure(m, cfg.Target, cfg.Aperture, cfg.MinPix)
	if err != nil {
		out.Failure = toFailure(err)
		return out
	}
	phot := meas.Summary()
	out.Photometry = &phot

	boot, err := bootstrap.Estimate(ctx, meas.Core.Values, meas.Rim.Values, bootstrap.Options{
		Iterations: cfg.Bootstrap.Iterations,
		Seed:       mapSeed(cfg.Seed, spec.Label),
		Workers:    cfg.Workers,
	})
	if err != nil {
		out.Failure = toFailure(err)
		return out
	}
	out.Bootstrap = &boot

	null, err := nulldist.Generate(ctx, m, cfg.Target, cfg.Aperture, nulldist.Options{
		Trials:      cfg.Null.Trials,
		Seed:        mapSeed(cfg.Seed, spec.Label),
		JitterDeg:   cfg.Null.JitterDeg,
		MinSepDeg:   cfg.Null.MinSepDeg,
		RetryBudget: cfg.Null.RetryBudget,
		MinTrials:   cfg.Null.MinTrials,
		MinPix:      cfg.MinPix,
		Workers:     cfg.Workers,
	})
	if err != nil {
		out.Failure = toFailure(err)
		return out
	}
	out.Null = &null.Summary

	return out
}

// mapSeed derives a per-map seed so that map results do not share random
// streams, while staying reproducible for a fixed run seed.
func mapSeed(seed uint64, label string) uint64 {
	const fnvOffset, fnvPrime = 14695981039346656037, 1099511628211
	h := uint64(fnvOffset)
	for i := 0; i < len(label); i++ {
		h ^= uint64(label[i])
		h *= fnvPrime
	}
	return seed ^ h
}

func toFailure(err error) *domain.MeasurementFailure {
	kind := domain.KindExecution
	var oe *domain.OpError
	if errors.As(err, &oe) {
		kind = oe.Kind
	}
	return &domain.MeasurementFailure{Kind: kind, Message: err.Error()}
}

// combine summarizes agreement across the maps that succeeded.
func combine(maps []domain.MapMeasurement) domain.Consistency {
	c := domain.Consistency{MapsTotal: len(maps)}

	var deltas []float64
	for _, m := range maps {
		if m.Failure != nil || m.Photometry == nil {
			c.MapsFailed++
			continue
		}
		c.MapsOK++
		deltas = append(deltas, m.Photometry.DeltaT)
	}

	if len(deltas) == 0 {
		return c
	}

	var mean float64
	for _, d := range deltas {
		mean += d
	}
	mean /= float64(len(deltas))
	c.MeanDeltaT = mean

	if len(deltas) > 1 {
		var ss float64
		for _, d := range deltas {
			ss += (d - mean) * (d - mean)
		}
		c.DeltaTSpread = math.Sqrt(ss / float64(len(deltas)-1))
	}
	return c
}
