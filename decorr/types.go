// Package decorr - option, result and error types shared by the generator.
package decorr

import (
	"errors"

	"github.com/charmbracelet/log"
)

// Sentinel errors returned by Generate.
var (
	// ErrBadWindow indicates a window size below 2; a Pearson coefficient
	// needs at least two points.
	ErrBadWindow = errors.New("decorr: window must be at least 2")

	// ErrOddWindow indicates an odd window with the Alternating variant,
	// which requires an even low/high split of the pool.
	ErrOddWindow = errors.New("decorr: alternating variant requires an even window")

	// ErrShortTarget indicates TargetLength < Window; the seed alone is
	// already Window elements long.
	ErrShortTarget = errors.New("decorr: target length must be at least the window size")

	// ErrBadBounds indicates a pool range whose lower bound is not strictly
	// below its upper bound, or a non-finite bound.
	ErrBadBounds = errors.New("decorr: pool bounds must be finite with low < high")

	// ErrBadThreshold indicates a negative correlation threshold.
	ErrBadThreshold = errors.New("decorr: correlation threshold must be positive")

	// ErrBadRestarts indicates a negative restart or seed-shuffle cap.
	ErrBadRestarts = errors.New("decorr: restart and seed-shuffle caps must be positive")

	// ErrUnknownVariant indicates a Variant value outside Pooled/Alternating.
	ErrUnknownVariant = errors.New("decorr: unknown variant")

	// ErrSeedSearch indicates that no seed permutation with a sufficiently
	// low correlation was found within MaxSeedShuffles attempts.
	ErrSeedSearch = errors.New("decorr: could not find a low-correlation seed permutation")
)

// Variant selects the candidate-pool policy of the growth loop.
type Variant int

const (
	// Pooled scans one reshuffled copy of the full value pool per round and
	// accepts every candidate that fits the constraints.
	Pooled Variant = iota

	// Alternating scans the pool's low half and high half separately,
	// accepting at most one value from each per round under a stricter
	// correlation bound.
	Alternating
)

// String returns the variant name used in logs.
func (v Variant) String() string {
	switch v {
	case Pooled:
		return "pooled"
	case Alternating:
		return "alternating"
	default:
		return "unknown"
	}
}

// Default pool bounds: values are percentages of a maximum gradient
// strength, and the extremes are avoided.
const (
	DefaultLowBound  = 5.0
	DefaultHighBound = 95.0
)

// Zero-value fallbacks applied by Generate when the corresponding Options
// field is left at 0.
const (
	defaultSeedThreshold = 0.01

	defaultPooledThreshold      = 0.1
	defaultAlternatingThreshold = 0.05

	defaultPooledRestarts      = 1000
	defaultAlternatingRestarts = 10

	defaultMaxSeedShuffles = 100000
)

// Options configures Generate.
//
//	– Window:          n: pool size, correlation window, and seed length.
//	                   Must be ≥ 2, and even when Variant is Alternating.
//	– TargetLength:    desired sequence length, ≥ Window.
//	– Variant:         Pooled or Alternating.
//	– LowBound,
//	  HighBound:       range of the evenly spaced value pool. Leaving both
//	                   at 0 selects the 5–95 defaults.
//	– Threshold:       acceptance bound on |r| for each trailing window.
//	                   0 selects the variant default (0.1 pooled,
//	                   0.05 alternating).
//	– SeedThreshold:   screening bound on |r| for the seed permutation;
//	                   0 ⇒ 0.01.
//	– MaxRestarts:     cap on growth attempts. 0 selects the variant
//	                   default (1000 pooled, 10 alternating).
//	– MaxSeedShuffles: cap on the seed permutation search; 0 ⇒ 100000.
//	– Seed:            RNG seed; 0 selects a fixed default so that the
//	                   zero value is still deterministic.
//	– Logger:          optional progress logger; nil disables all output.
type Options struct {
	Window          int
	TargetLength    int
	Variant         Variant
	LowBound        float64
	HighBound       float64
	Threshold       float64
	SeedThreshold   float64
	MaxRestarts     int
	MaxSeedShuffles int
	Seed            int64
	Logger          *log.Logger
}

// DefaultOptions returns Options for the given window, target length and
// variant with every other field at its documented default.
func DefaultOptions(window, target int, v Variant) Options {
	return Options{
		Window:       window,
		TargetLength: target,
		Variant:      v,
		LowBound:     DefaultLowBound,
		HighBound:    DefaultHighBound,
	}
}

// Result holds the outcome of Generate.
//
// Sequence may be shorter than Options.TargetLength when every attempt
// stalled; callers decide whether that is acceptable by comparing lengths.
type Result struct {
	// Sequence is the generated acquisition order.
	Sequence []float64

	// Trace holds the seed permutation's correlation coefficient followed by
	// the trailing-window coefficient recorded at each accepted element, so
	// len(Trace) == 1 + (len(Sequence) - Window).
	Trace []float64

	// Attempts is the number of restart attempts consumed. It is 0 when the
	// seed alone already met the target length.
	Attempts int
}
