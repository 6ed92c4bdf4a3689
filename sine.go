package motion

import "math"

// ascend advances an angular ticker by speed/10 per step, starting at start,
// and emits f(ticker)·|distance| for as long as f keeps rising strictly.
func ascend(distance float64, opts SpeedOptions, start float64, f func(float64) float64) (Sequence, error) {
	step := opts.speed() / 10
	if err := checkFinite([]string{"distance", "speed"}, distance, step); err != nil {
		return nil, err
	}
	b := newBuilder(distance)
	d := b.magnitude()
	if d == 0 {
		return nil, nil
	}

	var prev float64
	for ticker := start + step; ; ticker += step {
		value := f(ticker)
		if prev >= value {
			break
		}
		prev = value
		if err := b.push(value * d); err != nil {
			return nil, err
		}
	}
	return b.land(), nil
}

// Pie returns a movement over distance that follows the rising quarter of a
// sine wave: fast at first, slowing down towards the end.
func Pie(distance float64, opts SpeedOptions) (Sequence, error) {
	return ascend(distance, opts, 0, math.Sin)
}

// HalfMoon returns a movement over distance that follows a sine wave from
// trough to crest, normalized to [0, 1]: slow at both ends, fast in the
// middle.
func HalfMoon(distance float64, opts SpeedOptions) (Sequence, error) {
	return ascend(distance, opts, -math.Pi/2, func(ticker float64) float64 {
		return (math.Sin(ticker) + 1) / 2
	})
}
