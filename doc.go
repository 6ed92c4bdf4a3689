// Package motion generates discretized motion curves for animation drivers.
//
// Every generator takes a target distance (or height, or length) and optional
// tuning parameters and returns a [Sequence]: the successive positions of an
// animated value at fixed time steps, from the first step after the start to
// the final target. A driver plays a sequence back by applying one element per
// tick; timers, scheduling and the targets being animated are left to the
// caller.
//
// # Generators
//
// This package provides the following motion models:
//   - [Bell]: velocity follows a normal distribution, with a movable peak
//   - [DampedOscillation]: an exponentially decaying oscillation around zero
//   - [Bounce]: a dropped object bouncing off the ground, losing energy
//   - [Fall]: uniform acceleration
//   - [CurtainClose]: a pull back followed by accelerated closing
//   - [ConstantMotion]: constant speed
//   - [Pie]: the rising quarter of a sine wave
//   - [HalfMoon]: a sine wave from trough to crest
//   - [Spring]: a damped harmonic spring settling on the target
//   - [CubicBezier]: a CSS-style cubic-bezier timing function
//
// # Direction and landing
//
// Motion is simulated on the magnitude of the target and replayed in its
// direction, so a negative target produces the mirrored sequence. Elements
// are rounded half up to integers, and the final element of every generator
// except [DampedOscillation] is replaced with the exact target, so that an
// animation always lands on its target regardless of rounding drift. A zero
// target produces an empty sequence.
//
// # Options
//
// Tuning parameters are passed as option structs, such as [BounceOptions]. The
// zero value of a field selects the default found in the corresponding
// variable, such as [DefaultBounce], and parameters for which direction is
// meaningless are used as magnitudes.
//
// # Errors
//
// Generators are pure functions and safe for concurrent use. They fail with
// [ErrNonFinite] for NaN or infinite inputs and intermediate results, and with
// [ErrIterationLimit] instead of producing more than [MaxSteps] elements, which
// bounds loops that would take excessively long for pathological parameters,
// such as a near-zero attenuation or speed.
package motion
