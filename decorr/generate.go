// Package decorr - restart controller and public entry point.
package decorr

import "slices"

// Generate produces a decorrelated ordering according to opts.
//
// It builds the value pool and a low-correlation seed permutation, then runs
// growth attempts from fresh copies of the seed until one reaches
// opts.TargetLength or opts.MaxRestarts attempts have been consumed, in
// which case the longest sequence achieved is returned. A short Sequence is
// therefore a degraded-but-valid result, not an error; callers that need the
// full length should compare len(Result.Sequence) against their target and
// retry with different parameters (a shorter target usually suffices).
//
// Errors are limited to invalid configuration and seed-search exhaustion;
// see the sentinels in types.go.
//
// Contracts on a returned Result:
//   - no value recurs within ⌊Window/2⌋ consecutive positions;
//   - every trailing window of Window elements has |r| below the acceptance
//     threshold against the reference index 1..Window;
//   - len(Trace) == 1 + (len(Sequence) - Window).
func Generate(opts Options) (Result, error) {
	o := opts.withDefaults()
	if err := o.validate(); err != nil {
		return Result{}, err
	}

	base := rngFromSeed(o.Seed)
	ref := referenceIndex(o.Window)
	pool := valuePool(o.Window, o.LowBound, o.HighBound)

	var (
		seed []float64
		err  error
	)
	if o.Variant == Alternating {
		half := o.Window / 2
		seed, err = alternatingSeed(ref, pool[:half], pool[half:], o.SeedThreshold, o.MaxSeedShuffles, base)
	} else {
		seed, err = pooledSeed(ref, pool, o.SeedThreshold, o.MaxSeedShuffles, base)
	}
	if err != nil {
		return Result{}, err
	}
	seedCorr := windowCorrelation(ref, seed)

	// The seed is already Window elements long; with TargetLength == Window
	// there is nothing to grow.
	if len(seed) >= o.TargetLength {
		return Result{Sequence: seed, Trace: []float64{seedCorr}}, nil
	}

	var best Result
	for attempt := 1; ; attempt++ {
		if o.Logger != nil {
			o.Logger.Info("growth attempt", "attempt", attempt, "variant", o.Variant)
		}

		g := newGrower(o, ref, pool, deriveRNG(base, uint64(attempt)))
		seq, trace := g.grow(slices.Clone(seed), []float64{seedCorr})

		// Non-strict improvement: a tie replaces the previous best, so the
		// most recent attempt of maximal length is the one returned.
		if len(seq) >= len(best.Sequence) {
			best = Result{Sequence: seq, Trace: trace, Attempts: attempt}
		}

		if len(seq) >= o.TargetLength {
			if o.Logger != nil {
				o.Logger.Info("target reached", "length", len(seq), "attempts", attempt)
			}
			return Result{Sequence: seq, Trace: trace, Attempts: attempt}, nil
		}
		if attempt >= o.MaxRestarts {
			best.Attempts = attempt
			if o.Logger != nil {
				o.Logger.Warn("restart cap reached, returning longest attempt",
					"length", len(best.Sequence), "target", o.TargetLength, "attempts", attempt)
			}
			return best, nil
		}
	}
}
