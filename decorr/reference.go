// Package decorr - reference index, value pool, and seed construction.
package decorr

import (
	"math"
	"math/rand"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// referenceIndex returns the strictly increasing index 1..n. It is the
// independent variable of every correlation computed by the package.
func referenceIndex(n int) []float64 {
	return floats.Span(make([]float64, n), 1, float64(n))
}

// valuePool returns n evenly spaced values over [low, high], endpoints
// included.
func valuePool(n int, low, high float64) []float64 {
	return floats.Span(make([]float64, n), low, high)
}

// windowCorrelation returns the Pearson coefficient between the trailing
// min(len(ref), len(seq)) elements of seq and the matching prefix of ref.
// Once seq has grown to len(ref) the window is exactly len(ref) wide.
func windowCorrelation(ref, seq []float64) float64 {
	k := len(ref)
	if len(seq) < k {
		k = len(seq)
	}
	return stat.Correlation(ref[:k], seq[len(seq)-k:], nil)
}

// pooledSeed searches for a permutation of pool whose correlation with ref
// has magnitude at most bound, reshuffling up to maxShuffles times before
// giving up with ErrSeedSearch. The pool itself is never modified.
func pooledSeed(ref, pool []float64, bound float64, maxShuffles int, rng *rand.Rand) ([]float64, error) {
	seed := slices.Clone(pool)
	for i := 0; i < maxShuffles; i++ {
		shuffleInPlace(seed, rng)
		if math.Abs(windowCorrelation(ref, seed)) <= bound {
			return seed, nil
		}
	}
	return nil, ErrSeedSearch
}

// alternatingSeed searches for a low-correlation seed that interleaves the
// pool's low half at even indices with its high half at odd indices, each
// half independently reshuffled per try. Same bound, cap, and failure mode
// as pooledSeed.
func alternatingSeed(ref, low, high []float64, bound float64, maxShuffles int, rng *rand.Rand) ([]float64, error) {
	lo := slices.Clone(low)
	hi := slices.Clone(high)
	seed := make([]float64, len(lo)+len(hi))
	for i := 0; i < maxShuffles; i++ {
		shuffleInPlace(lo, rng)
		shuffleInPlace(hi, rng)
		for j, v := range lo {
			seed[2*j] = v
		}
		for j, v := range hi {
			seed[2*j+1] = v
		}
		if math.Abs(windowCorrelation(ref, seed)) <= bound {
			return seed, nil
		}
	}
	return nil, ErrSeedSearch
}
