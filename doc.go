// Package shufflist generates pseudo-random acquisition orders for
// experimental parameter sweeps — orders in which the measured value is
// decorrelated from the moment it is measured.
//
// 🚀 What is shufflist?
//
//	A small, deterministic library that answers one question: in what order
//	should a fixed set of parameter values (for example, gradient strengths
//	in an NMR diffusion experiment) be acquired so that drift over time does
//	not masquerade as a trend over the parameter?
//
// It does this by growing a sequence one value at a time under two
// constraints:
//
//   - every trailing window of n values must have a Pearson correlation with
//     the monotonic reference order below a small threshold, and
//   - no value may recur within the last n/2 positions.
//
// Two growth policies are provided:
//
//   - Pooled      — every round scans one reshuffled copy of the full value
//     pool and accepts as many candidates as fit the constraints.
//   - Alternating — the pool is split into a low half and a high half; each
//     round accepts at most one value from each, producing an ordering that
//     tends to alternate between low-range and high-range values under a
//     stricter correlation bound.
//
// Everything lives in one subpackage:
//
//	decorr/ — options, the constrained growth loop, and the restart
//	          controller exposed through decorr.Generate.
//
// Results are deterministic for a given seed, attempts never share mutable
// state, and falling short of the requested length is reported as a valid
// (shorter) result rather than an error — see decorr's package documentation
// for the full contract.
package shufflist
