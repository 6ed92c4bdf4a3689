package motion

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// SpringOptions specifies optional settings for [Spring].
type SpringOptions struct {
	// FPS is the number of frames per simulated second. The sign is ignored.
	// Zero selects the default.
	FPS int
	// Frequency is the angular frequency of the spring. Higher values move
	// faster. The sign is ignored. Zero selects the default.
	Frequency float64
	// Damping is the damping ratio. Values below 1 overshoot the target
	// before settling, 1 is critically damped and values above 1 approach
	// the target slowly without overshooting. The sign is ignored. Zero
	// selects the default.
	Damping float64
}

var DefaultSpring = SpringOptions{
	FPS:       60,
	Frequency: 6,
	Damping:   0.5,
}

func (o SpringOptions) WithFPS(fps int) SpringOptions           { o.FPS = fps; return o }
func (o SpringOptions) WithFrequency(f float64) SpringOptions   { o.Frequency = f; return o }
func (o SpringOptions) WithDamping(ratio float64) SpringOptions { o.Damping = ratio; return o }

// Spring returns the movement of a damped spring released at zero with its
// equilibrium at distance.
//
// One element is produced per frame until the spring has settled: its
// position rounds to the target and it moves less than half a unit per frame.
func Spring(distance float64, opts SpringOptions) (Sequence, error) {
	fps := opts.FPS
	if fps == 0 {
		fps = DefaultSpring.FPS
	} else if fps < 0 {
		fps = -fps
	}
	freq := orDefault(opts.Frequency, DefaultSpring.Frequency)
	damping := orDefault(opts.Damping, DefaultSpring.Damping)
	if err := checkFinite([]string{"distance", "frequency", "damping"}, distance, freq, damping); err != nil {
		return nil, err
	}
	b := newBuilder(distance)
	d := b.magnitude()
	if d == 0 {
		return nil, nil
	}

	dt := harmonica.FPS(fps)
	spring := harmonica.NewSpring(dt, freq, damping)
	var pos, vel float64
	for {
		pos, vel = spring.Update(pos, vel, d)
		if err := b.push(pos); err != nil {
			return nil, err
		}
		if math.Abs(d-pos) < 0.5 && math.Abs(vel*dt) < 0.5 {
			break
		}
	}
	return b.land(), nil
}
