// Package decorr produces decorrelated orderings of an evenly spaced value
// pool for use as acquisition schedules in parameter sweeps.
//
// Given a window size n, the package builds a pool of n evenly spaced values
// (5–95 by default) and the reference index 1..n, then grows a sequence that
// repeats the pool's values in a pseudo-random order subject to two local
// constraints:
//
//  1. Decorrelation — for every trailing window of n elements, the Pearson
//     correlation coefficient against the reference index stays below a
//     variant-specific threshold (0.1 pooled, 0.05 alternating).
//  2. Anti-repetition — no value recurs within the last ⌊n/2⌋ positions.
//
// Algorithm outline:
//
//  1. Screen random permutations of the pool until one with near-zero
//     correlation (|r| ≤ 0.01) is found; this permutation seeds every growth
//     attempt. The search is capped and fails with ErrSeedSearch rather than
//     spinning forever.
//  2. Grow the sequence in rounds. Each round reshuffles the candidate
//     pool(s) and scans them in order, tentatively appending each candidate:
//     the append is kept only if it passes both constraints, otherwise it is
//     rolled back. A round that accepts nothing stalls the attempt.
//  3. On a stall, restart from a fresh copy of the seed, up to MaxRestarts
//     times, keeping the longest sequence seen. Reaching the target length
//     ends the run immediately.
//
// The two variants share this skeleton and differ only in their candidate
// pools and accept policy:
//
//   - Pooled      — one pool holding all n values; a round accepts as many
//     candidates as fit.
//   - Alternating — the pool's low half and high half are scanned as two
//     separate pools, each contributing at most one value per round, which
//     biases the output toward low/high alternation.
//
// Complexity: each round is O(n²) (up to n candidates, each evaluating a
// Pearson coefficient over a window of n). Rounds and restarts are bounded
// by the stall rule and MaxRestarts.
//
// Errors:
//
//	All validation failures are sentinel errors (ErrBadWindow, ErrOddWindow,
//	ErrShortTarget, ErrBadBounds, ErrBadThreshold, ErrBadRestarts,
//	ErrUnknownVariant). ErrSeedSearch is the only runtime failure. Falling
//	short of TargetLength is NOT an error: Generate returns the longest
//	sequence achieved and callers compare len(Result.Sequence) against their
//	target.
//
// Determinism: all randomness flows from Options.Seed (0 selects a fixed
// default), and each restart attempt draws from an independently derived
// stream, so equal Options yield byte-identical Results.
package decorr
