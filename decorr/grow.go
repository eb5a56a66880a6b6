// Package decorr - the constrained growth loop shared by both variants.
package decorr

import (
	"math"
	"math/rand"
	"slices"
)

// grower runs one growth attempt. It owns its pools and RNG stream
// exclusively; nothing in it is shared across attempts.
type grower struct {
	ref          []float64   // reference index 1..n
	pools        [][]float64 // candidate pools, reshuffled every round
	repeatWindow int         // ⌊n/2⌋ trailing positions a value may not recur in
	threshold    float64     // acceptance bound on |r| for trailing windows
	target       int         // desired sequence length
	onePerPool   bool        // stop scanning a pool after its first accept
	rng          *rand.Rand
}

// newGrower builds the attempt state for o. ref and pool are treated as
// read-only; candidate pools are cloned so that round reshuffles stay local
// to this attempt.
func newGrower(o Options, ref, pool []float64, rng *rand.Rand) *grower {
	g := &grower{
		ref:          ref,
		repeatWindow: o.Window / 2,
		threshold:    o.Threshold,
		target:       o.TargetLength,
		rng:          rng,
	}
	if o.Variant == Alternating {
		half := o.Window / 2
		g.pools = [][]float64{slices.Clone(pool[:half]), slices.Clone(pool[half:])}
		g.onePerPool = true
	} else {
		g.pools = [][]float64{slices.Clone(pool)}
	}
	return g
}

// recentlyUsed reports whether v occurs in the last k elements of seq.
// Pool values are copied exactly, so float equality is the intended match.
func recentlyUsed(seq []float64, k int, v float64) bool {
	start := len(seq) - k
	if start < 0 {
		start = 0
	}
	return slices.Contains(seq[start:], v)
}

// grow extends seq toward g.target, appending the trailing-window
// correlation of every accepted element to trace. It returns the extended
// slices when the target is reached or the attempt stalls, whichever comes
// first.
//
// Each round reshuffles all pools and scans them in order. A candidate is
// skipped if it appeared within the last repeatWindow positions; otherwise
// it is tentatively appended and kept only if the trailing window's
// correlation magnitude stays below threshold. The rounds/accepted counters
// persist across rounds: a round that accepts nothing pushes rounds past
// accepted and ends the attempt.
func (g *grower) grow(seq, trace []float64) ([]float64, []float64) {
	var rounds, accepted int
	for len(seq) < g.target {
		rounds++
		for i := range g.pools {
			shuffleInPlace(g.pools[i], g.rng)
		}
		for _, pool := range g.pools {
			for _, v := range pool {
				if len(seq) >= g.target {
					return seq, trace
				}
				if recentlyUsed(seq, g.repeatWindow, v) {
					continue
				}
				seq = append(seq, v)
				r := windowCorrelation(g.ref, seq)
				if math.Abs(r) >= g.threshold {
					seq = seq[:len(seq)-1]
					continue
				}
				trace = append(trace, r)
				accepted++
				if g.onePerPool {
					break
				}
			}
		}
		if rounds > accepted {
			break
		}
	}
	return seq, trace
}
