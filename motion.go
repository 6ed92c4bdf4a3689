package motion

import (
	"errors"
	"fmt"
	"math"
)

// MaxSteps is the maximum number of samples a generator will produce. A
// generator that would need more returns [ErrIterationLimit].
//
// The decay, settle and peak-detection loops are not guaranteed to terminate
// quickly for pathological parameters (near-zero attenuation, damping or
// speed), and even the target-terminated loops grow linearly with the target.
const MaxSteps = 1 << 20

var (
	// ErrNonFinite is returned when an input or an intermediate result is NaN
	// or infinite.
	ErrNonFinite = errors.New("motion: non-finite value")
	// ErrIterationLimit is returned when a generator exceeds [MaxSteps].
	ErrIterationLimit = errors.New("motion: iteration limit exceeded")
	// ErrInvalidOption is returned for option values outside their domain.
	ErrInvalidOption = errors.New("motion: invalid option")
)

// Sequence is a discretized motion profile: successive positions of an
// animated value, one per fixed time step, in playback order.
//
// All elements are integral, except for the final element of generators that
// land on their target, which is exactly the requested target.
type Sequence []float64

// Ints returns the sequence rounded to integers.
func (s Sequence) Ints() []int {
	if s == nil {
		return nil
	}
	out := make([]int, len(s))
	for i, v := range s {
		out[i] = int(round(v))
	}
	return out
}

// Deltas returns the displacement of every step, that is, the velocity
// profile of the sequence. The first delta is measured from zero.
func (s Sequence) Deltas() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	var prev float64
	for i, v := range s {
		out[i] = v - prev
		prev = v
	}
	return out
}

// round rounds half up, so that -2.5 becomes -2 and 2.5 becomes 3.
func round(v float64) float64 {
	r := math.Floor(v + 0.5)
	if r == 0 {
		// Avoid negative zero.
		return 0
	}
	return r
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// checkFinite returns an error wrapping ErrNonFinite for the first value of vs
// that isn't finite. names[i] names vs[i].
func checkFinite(names []string, vs ...float64) error {
	for i, v := range vs {
		if !isFinite(v) {
			return fmt.Errorf("%w: %s is %v", ErrNonFinite, names[i], v)
		}
	}
	return nil
}

// orDefault returns the magnitude of v, or def if v is zero.
func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return math.Abs(v)
}

// builder accumulates a sequence that is simulated on the magnitude of the
// target and replayed with the target's sign.
type builder struct {
	target float64
	sign   float64
	seq    Sequence
}

func newBuilder(target float64) builder {
	b := builder{target: target, sign: 1}
	if target < 0 {
		b.sign = -1
	}
	return b
}

// magnitude returns the absolute value of the target.
func (b *builder) magnitude() float64 {
	return math.Abs(b.target)
}

// push rounds v, restores the sign and appends it.
func (b *builder) push(v float64) error {
	if !isFinite(v) {
		return fmt.Errorf("%w: sample %d is %v", ErrNonFinite, len(b.seq), v)
	}
	if len(b.seq) >= MaxSteps {
		return fmt.Errorf("%w: more than %d samples", ErrIterationLimit, MaxSteps)
	}
	r := b.sign * round(v)
	if r == 0 {
		// Negating zero yields negative zero.
		r = 0
	}
	b.seq = append(b.seq, r)
	return nil
}

// land replaces the final element with the exact target and returns the
// sequence. A sequence that produced no samples jumps straight to the target.
func (b *builder) land() Sequence {
	if len(b.seq) == 0 {
		return Sequence{b.target}
	}
	b.seq[len(b.seq)-1] = b.target
	return b.seq
}
