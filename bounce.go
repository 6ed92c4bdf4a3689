package motion

import (
	"fmt"
	"math"
)

// BounceOptions specifies optional settings for [Bounce].
type BounceOptions struct {
	// Gravity is the constant downward acceleration. The sign is ignored.
	// Zero selects the default.
	Gravity float64
	// RemainingForce is the fraction of the impact velocity that is retained
	// as rebound velocity. The sign is ignored. Zero selects the default.
	RemainingForce float64
	// MaxBounces caps the number of bounce cycles. The sign is ignored. Zero
	// selects the default.
	MaxBounces int
}

var DefaultBounce = BounceOptions{
	Gravity:        125,
	RemainingForce: 0.6,
	MaxBounces:     15,
}

func (o BounceOptions) WithGravity(g float64) BounceOptions        { o.Gravity = g; return o }
func (o BounceOptions) WithRemainingForce(f float64) BounceOptions { o.RemainingForce = f; return o }
func (o BounceOptions) WithMaxBounces(n int) BounceOptions         { o.MaxBounces = n; return o }

// Bounce returns the movement of an object dropped from height that bounces
// off the ground, losing energy on every impact.
//
// Values are the displacement from the drop point, so the sequence starts near
// zero and every impact reaches height, rounded down to whole units. Each bounce is simulated in steps of
// 0.1 time units until the object penetrates the ground, at which point its
// velocity is inverted and scaled by the remaining force. Simulation stops
// after MaxBounces bounces, or as soon as a rebound is faster than the one
// before it, which only happens when the parameters don't dissipate energy.
func Bounce(height float64, opts BounceOptions) (Sequence, error) {
	g := orDefault(opts.Gravity, DefaultBounce.Gravity)
	rf := orDefault(opts.RemainingForce, DefaultBounce.RemainingForce)
	maxBounces := opts.MaxBounces
	if maxBounces == 0 {
		maxBounces = DefaultBounce.MaxBounces
	} else if maxBounces < 0 {
		maxBounces = -maxBounces
	}
	if err := checkFinite([]string{"height", "gravity", "remaining force"}, height, g, rf); err != nil {
		return nil, err
	}
	b := newBuilder(height)
	top := b.magnitude()
	if top == 0 {
		return nil, nil
	}

	var y, v, v0 float64
	y0 := top
	for i := range maxBounces {
		prevV0 := v0
		for t := 0.0; y >= 0; t += 0.1 {
			y = round(y0 + v0*t - 0.5*g*t*t)
			v = v0 - g*t
			// The coarse time step lets the object sink into the ground and
			// rebound past the drop point; displacement stays within [0, top].
			d := min(max(round(top-max(0, y)), 0), math.Floor(top))
			if err := b.push(d); err != nil {
				return nil, fmt.Errorf("bounce %d: %w", i, err)
			}
		}

		y, y0 = 0, 0
		v0 = -v * rf
		if math.IsInf(v0, 0) {
			return nil, fmt.Errorf("%w: rebound velocity after bounce %d", ErrNonFinite, i)
		}
		if i > 0 && prevV0 < v0 {
			break
		}
	}
	return b.land(), nil
}
