package motion

import (
	"errors"
	"math"
	"testing"
)

func maxAbs(s Sequence) float64 {
	var m float64
	for _, v := range s {
		m = max(m, math.Abs(v))
	}
	return m
}

func TestDampedOscillation(t *testing.T) {
	seq, err := DampedOscillation(100, OscillationOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(seq) != 96 {
		t.Errorf("got %d elements, expected 96", len(seq))
	}
	diff(t, Sequence{-92, -81, -70, -57, -44, -31, -19, -7, 3, 11}, seq[:10])

	// Settles at zero rather than at the height.
	if last := seq[len(seq)-1]; last != 0 {
		t.Errorf("got last element %v, expected 0", last)
	}

	front, back := seq[:len(seq)/2], seq[len(seq)/2:]
	if maxAbs(back) >= maxAbs(front) {
		t.Errorf("envelope doesn't decay: front %v, back %v", maxAbs(front), maxAbs(back))
	}

	var flips int
	var prev float64
	for _, v := range seq {
		if v == 0 {
			continue
		}
		if v*prev < 0 {
			flips++
		}
		prev = v
	}
	if flips != 4 {
		t.Errorf("got %d sign changes, expected 4", flips)
	}
}

func TestDampedOscillationCoercesSigns(t *testing.T) {
	a, err := DampedOscillation(80, OscillationOptions{Attenuation: 0.4, Frequency: 3})
	if err != nil {
		t.Fatal(err)
	}
	b, err := DampedOscillation(80, OscillationOptions{Attenuation: -0.4, Frequency: -3})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, a, b)
}

func TestDampedOscillationIterationLimit(t *testing.T) {
	// Neither decays nor crosses zero.
	opts := DefaultOscillation.WithAttenuation(1e-12).WithFrequency(1e-12)
	_, err := DampedOscillation(100, opts)
	if !errors.Is(err, ErrIterationLimit) {
		t.Errorf("got error %v, expected ErrIterationLimit", err)
	}
}

func TestDampedOscillationNonFiniteOption(t *testing.T) {
	_, err := DampedOscillation(100, OscillationOptions{Frequency: math.NaN()})
	if !errors.Is(err, ErrNonFinite) {
		t.Errorf("got error %v, expected ErrNonFinite", err)
	}
}
