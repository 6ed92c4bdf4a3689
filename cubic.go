package motion

import (
	"fmt"
	"math"
)

// CubicBezierOptions specifies optional settings for [CubicBezier].
type CubicBezierOptions struct {
	// P1 and P2 are the inner control points of the timing curve, which runs
	// from (0, 0) to (1, 1). X coordinates must lie in [0, 1], Y coordinates
	// may leave that range to overshoot or anticipate. If both are the zero
	// point, the default control points are used.
	P1, P2 Point
	// Steps is the number of samples. The sign is ignored. Zero selects the
	// default.
	Steps int
}

// DefaultCubicBezier is the CSS "ease" timing function sampled at 60 steps.
var DefaultCubicBezier = CubicBezierOptions{
	P1:    Pt(0.25, 0.1),
	P2:    Pt(0.25, 1),
	Steps: 60,
}

func (o CubicBezierOptions) WithControlPoints(p1, p2 Point) CubicBezierOptions {
	o.P1, o.P2 = p1, p2
	return o
}

func (o CubicBezierOptions) WithSteps(n int) CubicBezierOptions { o.Steps = n; return o }

// CubicBezier returns a movement over distance that follows a CSS-style
// cubic-bezier timing function, sampled at evenly spaced points in time.
//
// For every sample the curve parameter is solved for the sample's time, and
// the distance is scaled by the curve's Y coordinate at that parameter.
func CubicBezier(distance float64, opts CubicBezierOptions) (Sequence, error) {
	p1, p2 := opts.P1, opts.P2
	if p1 == (Point{}) && p2 == (Point{}) {
		p1, p2 = DefaultCubicBezier.P1, DefaultCubicBezier.P2
	}
	steps := opts.Steps
	if steps == 0 {
		steps = DefaultCubicBezier.Steps
	} else if steps < 0 {
		steps = -steps
	}
	if err := checkFinite([]string{"distance"}, distance); err != nil {
		return nil, err
	}
	for _, p := range [2]Point{p1, p2} {
		if p.IsNaN() || p.IsInf() {
			return nil, fmt.Errorf("%w: control point %v", ErrNonFinite, p)
		}
		if p.X < 0 || p.X > 1 {
			return nil, fmt.Errorf("%w: control point %v has X outside [0, 1]", ErrInvalidOption, p)
		}
	}
	if steps > MaxSteps {
		return nil, fmt.Errorf("%w: %d steps", ErrIterationLimit, steps)
	}
	b := newBuilder(distance)
	d := b.magnitude()
	if d == 0 {
		return nil, nil
	}

	c := timingCurve{p1, p2}
	for k := 1; k <= steps; k++ {
		x := float64(k) / float64(steps)
		if err := b.push(d * c.y(c.solveX(x))); err != nil {
			return nil, err
		}
	}
	return b.land(), nil
}

// timingCurve is a cubic Bézier from (0, 0) to (1, 1) with inner control
// points p1 and p2.
type timingCurve struct {
	p1, p2 Point
}

func bernstein(t, c1, c2 float64) float64 {
	mt := 1 - t
	return 3*mt*mt*t*c1 + 3*mt*t*t*c2 + t*t*t
}

func (c timingCurve) x(t float64) float64 { return bernstein(t, c.p1.X, c.p2.X) }
func (c timingCurve) y(t float64) float64 { return bernstein(t, c.p1.Y, c.p2.Y) }

// solveX returns the parameter t ∈ [0, 1] at which the curve's X coordinate
// is x. With X control coordinates in [0, 1], X is monotonic in t and the
// solution is unique.
func (c timingCurve) solveX(x float64) float64 {
	const epsilon = 1e-9
	x1, x2 := c.p1.X, c.p2.X
	roots, n := solveCubic(-x, 3*x1, 3*x2-6*x1, 1+3*x1-3*x2)
	for _, t := range roots[:n] {
		if t < -epsilon || t > 1+epsilon {
			continue
		}
		t = min(max(t, 0), 1)
		if math.Abs(c.x(t)-x) <= epsilon {
			return t
		}
	}
	// The closed form loses precision for (nearly) repeated roots and nearly
	// vanishing cubic terms; bracket the root instead.
	f := func(t float64) float64 { return c.x(t) - x }
	return solveITP(f, 0, 1, epsilon, 1, 0.2, -x, 1-x)
}
