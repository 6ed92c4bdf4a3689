package motion

import "math"

// settleThreshold is the amplitude below which a damped oscillation is
// considered to have come to rest.
const settleThreshold = 0.005

// OscillationOptions specifies optional settings for [DampedOscillation].
type OscillationOptions struct {
	// Attenuation controls how quickly the oscillation decays. The sign is
	// ignored. Zero selects the default.
	Attenuation float64
	// Frequency is the natural angular frequency of the oscillation. The sign
	// is ignored. Zero selects the default.
	Frequency float64
}

var DefaultOscillation = OscillationOptions{
	Attenuation: 0.7,
	Frequency:   1.8,
}

func (o OscillationOptions) WithAttenuation(a float64) OscillationOptions { o.Attenuation = a; return o }
func (o OscillationOptions) WithFrequency(f float64) OscillationOptions   { o.Frequency = f; return o }

// DampedOscillation returns an exponentially decaying oscillation around zero,
// such as an object dropped from height settling on a spring.
//
// The oscillation is sampled every 0.1 time units, starting at 0.1, as
//
//	height · e^(−attenuation·t) · cos(frequency·t + π)
//
// until the magnitude of a sample falls below 0.005. Unlike the other
// generators, the final element is not replaced: the sequence settles at zero,
// not at the height.
func DampedOscillation(height float64, opts OscillationOptions) (Sequence, error) {
	a := orDefault(opts.Attenuation, DefaultOscillation.Attenuation)
	f := orDefault(opts.Frequency, DefaultOscillation.Frequency)
	if err := checkFinite([]string{"height", "attenuation", "frequency"}, height, a, f); err != nil {
		return nil, err
	}
	b := newBuilder(height)
	amp := b.magnitude()
	if amp == 0 {
		return nil, nil
	}

	var t float64
	for {
		t += 0.1
		r := amp * math.Exp(-a*t) * math.Cos(f*t+math.Pi)
		if err := b.push(r); err != nil {
			return nil, err
		}
		if math.Abs(r) < settleThreshold {
			break
		}
	}
	return b.seq, nil
}
