package motion

import "math"

// solveQuadratic finds real roots of c0 + c1 x + c2 x² = 0.
//
// If the equation is nearly linear, the root of the linear part is returned.
// If all coefficients are zero, a single 0 is returned.
func solveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	if c0 == 0 && c1 == 0 && c2 == 0 {
		return [2]float64{0}, 1
	}
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) {
		// c2 is zero or very small, treat as linear eqn
		root := -c0 / c1
		if !math.IsInf(root, 0) {
			return [2]float64{root}, 1
		}
		return [2]float64{}, 0
	}
	arg := sc1*sc1 - 4*sc0
	var root1 float64
	if math.IsInf(arg, 0) {
		// sc1² overflowed. Find one root using sc1 x + x² = 0 and the other
		// as sc0 / root1.
		root1 = -sc1
	} else {
		if arg < 0 {
			return [2]float64{}, 0
		} else if arg == 0 {
			return [2]float64{-0.5 * sc1}, 1
		}
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if math.IsInf(root2, 0) {
		return [2]float64{root1}, 1
	}
	if root2 > root1 {
		return [2]float64{root1, root2}, 2
	}
	return [2]float64{root2, root1}, 2
}

// solveCubic finds real roots of c0 + c1 x + c2 x² + c3 x³ = 0, falling back
// to [solveQuadratic] when c3 is (nearly) zero.
//
// See https://momentsingraphics.de/CubicRoots.html, which is based on Jim
// Blinn's "How to Solve a Cubic Equation".
func solveCubic(c0, c1, c2, c3 float64) ([3]float64, int) {
	c3Recip := 1 / c3
	scaledC2 := c2 * (1.0 / 3.0 * c3Recip)
	scaledC1 := c1 * (1.0 / 3.0 * c3Recip)
	scaledC0 := c0 * c3Recip
	if math.IsInf(scaledC0, 0) || math.IsInf(scaledC1, 0) || math.IsInf(scaledC2, 0) {
		roots, n := solveQuadratic(c0, c1, c2)
		return [3]float64{roots[0], roots[1]}, n
	}
	c0, c1, c2 = scaledC0, scaledC1, scaledC2
	// Delta
	d0 := math.FMA(-c2, c2, c1)
	d1 := math.FMA(-c1, c2, c0)
	d2 := c2*c0 - c1*c1
	// Discriminant
	d := 4*d0*d2 - d1*d1
	// Depressed.x; Depressed.y is d0
	de := math.FMA(-2*c2, d0, d1)
	switch {
	case d < 0:
		sq := math.Sqrt(-0.25 * d)
		r := -0.5 * de
		t1 := math.Cbrt(r+sq) + math.Cbrt(r-sq)
		return [3]float64{t1 - c2}, 1
	case d == 0:
		t1 := math.Copysign(math.Sqrt(-d0), de)
		return [3]float64{t1 - c2, -2*t1 - c2}, 2
	default:
		th := math.Atan2(math.Sqrt(d), -de) * (1.0 / 3.0)
		thSin, thCos := math.Sincos(th)
		ss3 := thSin * math.Sqrt(3)
		r0 := thCos
		r1 := 0.5 * (-thCos + ss3)
		r2 := 0.5 * (-thCos - ss3)
		t := 2 * math.Sqrt(-d0)
		return [3]float64{
			math.FMA(t, r0, -c2),
			math.FMA(t, r1, -c2),
			math.FMA(t, r2, -c2),
		}, 3
	}
}

// solveITP finds a zero of the monotonically increasing f in [a, b] to within
// epsilon, using the ITP method with k2 = 2. ya and yb are f(a) and f(b).
//
// See https://en.wikipedia.org/wiki/ITP_Method and "An Enhancement of the
// Bisection Method Average Performance Preserving Minmax Optimality" by
// Oliveira and Takahashi.
func solveITP(f func(float64) float64, a, b, epsilon float64, n0 int, k1, ya, yb float64) float64 {
	n1_2 := int(max(math.Ceil(math.Log2((b-a)/epsilon))-1, 0))
	nmax := n0 + n1_2
	scaledEpsilon := epsilon * float64(uint64(1)<<nmax)
	for b-a > 2*epsilon {
		x1_2 := 0.5 * (a + b)
		r := scaledEpsilon - 0.5*(b-a)
		xf := (yb*a - ya*b) / (yb - ya)
		sigma := x1_2 - xf
		delta := k1 * ((b - a) * (b - a))
		var xt float64
		if delta <= math.Abs(x1_2-xf) {
			xt = xf + math.Copysign(delta, sigma)
		} else {
			xt = x1_2
		}
		var xitp float64
		if math.Abs(xt-x1_2) <= r {
			xitp = xt
		} else {
			xitp = x1_2 - math.Copysign(r, sigma)
		}
		yitp := f(xitp)
		if yitp > 0 {
			b, yb = xitp, yitp
		} else if yitp < 0 {
			a, ya = xitp, yitp
		} else {
			return xitp
		}
		scaledEpsilon *= 0.5
	}
	return 0.5 * (a + b)
}
