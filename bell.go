package motion

import (
	"fmt"
	"math"
)

// Empirically tuned constants relating the length of a bell curve to its step
// size. The number of samples grows as bellK1*length + bellK2.
const (
	bellK1 = 180.0 / 3395.0
	bellK2 = 84.09425626
)

// BellOptions specifies optional settings for [Bell].
type BellOptions struct {
	// Position is the fraction of the length at which the velocity peaks.
	// 0.5 places the peak in the middle. Values outside [0, 1] are allowed
	// and move the peak off the curve. Zero selects the default, so a peak
	// at the very start is requested with a tiny position such as 1e-9.
	Position float64
}

var DefaultBell = BellOptions{Position: 0.5}

func (o BellOptions) WithPosition(p float64) BellOptions { o.Position = p; return o }

// Bell returns a movement whose velocity follows a normal distribution: slow
// start, fast middle, slow end.
//
// The length is sampled at a step size that depends on the length itself,
// the Gaussian density is evaluated at every sample and its cumulative sum is
// rescaled to span [0, length].
func Bell(length float64, opts BellOptions) (Sequence, error) {
	position := opts.Position
	if position == 0 {
		position = DefaultBell.Position
	}
	if err := checkFinite([]string{"length", "position"}, length, position); err != nil {
		return nil, err
	}
	b := newBuilder(length)
	l := b.magnitude()
	if l == 0 {
		return nil, nil
	}

	h := l / (bellK1*l + bellK2)
	s := l / 10
	j := l * position
	if n := l / h; n >= MaxSteps {
		return nil, fmt.Errorf("%w: bell of length %v needs %.0f samples", ErrIterationLimit, length, n)
	}

	// Sample at multiples of h and finish on the exact length.
	limit := l - math.Mod(l, h)
	norm := h / (s * math.Sqrt(2*math.Pi))
	density := func(x float64) float64 {
		d := x - j
		return norm * math.Exp(-(d*d)/((2*s)*(2*s)))
	}
	z := make([]float64, 0, int(l/h)+2)
	var sum float64
	for x := 0.0; x < limit; x += h {
		sum += density(x)
		z = append(z, sum)
	}
	sum += density(l)
	z = append(z, sum)

	v := l / sum
	if !isFinite(v) {
		return nil, fmt.Errorf("%w: bell density vanishes for position %v", ErrNonFinite, position)
	}
	for _, c := range z {
		if err := b.push(v * c); err != nil {
			return nil, err
		}
	}
	return b.land(), nil
}
