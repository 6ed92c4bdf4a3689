package motion

// SpeedOptions specifies optional settings for [ConstantMotion], [Pie] and
// [HalfMoon].
type SpeedOptions struct {
	// Speed scales how far the movement advances per step. The sign is
	// ignored. Zero selects the default.
	Speed float64
}

var DefaultSpeed = SpeedOptions{Speed: 1}

func (o SpeedOptions) WithSpeed(s float64) SpeedOptions { o.Speed = s; return o }

func (o SpeedOptions) speed() float64 {
	return orDefault(o.Speed, DefaultSpeed.Speed)
}

// approach runs next until its value reaches the magnitude of distance, then
// lands on distance.
func approach(distance float64, next func() float64) (Sequence, error) {
	if err := checkFinite([]string{"distance"}, distance); err != nil {
		return nil, err
	}
	b := newBuilder(distance)
	d := b.magnitude()
	if d == 0 {
		return nil, nil
	}
	for value := 0.0; value < d; {
		value = next()
		if err := b.push(value); err != nil {
			return nil, err
		}
	}
	return b.land(), nil
}

// Fall returns a uniformly accelerated movement over distance, as of an
// object in free fall. The position after n steps is (0.8·n)².
func Fall(distance float64) (Sequence, error) {
	var t float64
	return approach(distance, func() float64 {
		t += 0.8
		return t * t
	})
}

// CurtainClose returns an accelerated movement that first pulls back against
// the direction of travel before closing over distance, like a curtain being
// yanked shut. The position after n steps is (0.8·n)² − 10·n.
func CurtainClose(distance float64) (Sequence, error) {
	var t, pull float64
	return approach(distance, func() float64 {
		t += 0.8
		pull += 10
		return t*t - pull
	})
}

// ConstantMotion returns a movement over distance at constant speed.
func ConstantMotion(distance float64, opts SpeedOptions) (Sequence, error) {
	speed := opts.speed()
	if err := checkFinite([]string{"speed"}, speed); err != nil {
		return nil, err
	}
	var value float64
	return approach(distance, func() float64 {
		value += speed
		return value
	})
}
