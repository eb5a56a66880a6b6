// Package decorr - options normalization and fail-fast validation.
//
// Deterministic, side-effect free; only sentinel errors from types.go.
package decorr

import "math"

// withDefaults returns a copy of o with every zero-valued field replaced by
// its documented default. Bounds are only defaulted when both are zero, so a
// deliberate (0, x) range still reaches validation.
func (o Options) withDefaults() Options {
	if o.LowBound == 0 && o.HighBound == 0 {
		o.LowBound = DefaultLowBound
		o.HighBound = DefaultHighBound
	}
	if o.Threshold == 0 {
		if o.Variant == Alternating {
			o.Threshold = defaultAlternatingThreshold
		} else {
			o.Threshold = defaultPooledThreshold
		}
	}
	if o.SeedThreshold == 0 {
		o.SeedThreshold = defaultSeedThreshold
	}
	if o.MaxRestarts == 0 {
		if o.Variant == Alternating {
			o.MaxRestarts = defaultAlternatingRestarts
		} else {
			o.MaxRestarts = defaultPooledRestarts
		}
	}
	if o.MaxSeedShuffles == 0 {
		o.MaxSeedShuffles = defaultMaxSeedShuffles
	}
	return o
}

// validate checks a defaults-applied Options value. Call after withDefaults.
func (o Options) validate() error {
	switch o.Variant {
	case Pooled, Alternating:
	default:
		return ErrUnknownVariant
	}
	if o.Window < 2 {
		return ErrBadWindow
	}
	if o.Variant == Alternating && o.Window%2 != 0 {
		return ErrOddWindow
	}
	if o.TargetLength < o.Window {
		return ErrShortTarget
	}
	if math.IsNaN(o.LowBound) || math.IsInf(o.LowBound, 0) ||
		math.IsNaN(o.HighBound) || math.IsInf(o.HighBound, 0) ||
		o.LowBound >= o.HighBound {
		return ErrBadBounds
	}
	if o.Threshold < 0 || math.IsNaN(o.Threshold) ||
		o.SeedThreshold < 0 || math.IsNaN(o.SeedThreshold) {
		return ErrBadThreshold
	}
	if o.MaxRestarts < 0 || o.MaxSeedShuffles < 0 {
		return ErrBadRestarts
	}
	return nil
}
