package motion

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func peak(s Sequence) int {
	d := s.Deltas()
	// The final delta is distorted by landing on the exact target.
	d = d[:len(d)-1]
	var idx int
	for i, v := range d {
		if v > d[idx] {
			idx = i
		}
	}
	return idx
}

func TestBellShape(t *testing.T) {
	seq, err := Bell(100, BellOptions{})
	if err != nil {
		t.Fatal(err)
	}
	h := 100 / (bellK1*100 + bellK2)
	if n := float64(len(seq)); n < 100/h || n > 100/h+2 {
		t.Errorf("got %d elements, expected about %v", len(seq), 100/h)
	}
	if last := seq[len(seq)-1]; last != 100 {
		t.Errorf("got last element %v, expected 100", last)
	}

	deltas := seq.Deltas()
	n := len(deltas)
	if p := peak(seq); math.Abs(float64(p)-float64(n)/2) > float64(n)/10 {
		t.Errorf("got velocity peak at step %d of %d, expected it near the middle", p, n)
	}
	maxDelta := deltas[peak(seq)]
	for _, i := range []int{0, 1, n - 2} {
		if deltas[i] > 1 || deltas[i] >= maxDelta {
			t.Errorf("got delta %v at step %d, expected a slow edge", deltas[i], i)
		}
	}
	// Accelerates up to the peak and decelerates after it, allowing for
	// rounding jitter of a single unit.
	for i := 1; i < n-1; i++ {
		if i <= peak(seq) && deltas[i] < deltas[i-1]-1 {
			t.Errorf("step %d decelerates before the peak: %v", i, deltas)
		}
		if i > peak(seq) && deltas[i] > deltas[i-1]+1 {
			t.Errorf("step %d accelerates after the peak: %v", i, deltas)
		}
	}
	// Symmetric around the midpoint.
	if mid := seq[n/2]; math.Abs(mid-50) > 4 {
		t.Errorf("got %v at the midpoint, expected about 50", mid)
	}
	for i := 0; i < n/2; i++ {
		a, b := deltas[i], deltas[n-2-i]
		if math.Abs(a-b) > 2 {
			t.Errorf("deltas %d and %d differ by more than 2: %v and %v", i, n-2-i, a, b)
		}
	}
}

func TestBellPosition(t *testing.T) {
	for _, pos := range []float64{0.25, 0.5, 0.75} {
		t.Run(fmt.Sprint(pos), func(t *testing.T) {
			seq, err := Bell(400, DefaultBell.WithPosition(pos))
			if err != nil {
				t.Fatal(err)
			}
			n := float64(len(seq))
			if p := float64(peak(seq)); math.Abs(p-pos*n) > n/10 {
				t.Errorf("got velocity peak at step %v of %v, expected it near %v", p, n, pos*n)
			}
			for i := 1; i < len(seq); i++ {
				if seq[i] < seq[i-1] {
					t.Errorf("sequence decreases at step %d", i)
				}
			}
		})
	}
}

func TestBellPeakAtStart(t *testing.T) {
	seq, err := Bell(400, DefaultBell.WithPosition(1e-9))
	if err != nil {
		t.Fatal(err)
	}
	if p := peak(seq); p > len(seq)/10 {
		t.Errorf("got velocity peak at step %d of %d, expected it at the start", p, len(seq))
	}
}

func TestBellDensityVanishes(t *testing.T) {
	_, err := Bell(100, BellOptions{Position: 1000})
	if !errors.Is(err, ErrNonFinite) {
		t.Errorf("got error %v, expected ErrNonFinite", err)
	}
}

func TestBellIterationLimit(t *testing.T) {
	_, err := Bell(1e8, BellOptions{})
	if !errors.Is(err, ErrIterationLimit) {
		t.Errorf("got error %v, expected ErrIterationLimit", err)
	}
}

func BenchmarkBell(b *testing.B) {
	for _, l := range []float64{100, 1000, 10000} {
		b.Run(fmt.Sprint(l), func(b *testing.B) {
			for range b.N {
				Bell(l, BellOptions{})
			}
		})
	}
}
