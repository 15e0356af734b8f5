package audio

import (
	"math"
	"math/rand"

	"github.com/gopxl/beep"
)

// partial generates one sine component sampled on a TimeGrid
type partial struct {
	grid     TimeGrid
	freq     float64
	level    float64
	position int
}

// NewPartial creates a sine streamer of the given frequency and peak level
func NewPartial(grid TimeGrid, freq, level float64) beep.Streamer {
	return &partial{
		grid:  grid,
		freq:  freq,
		level: level,
	}
}

func (p *partial) Stream(samples [][2]float64) (n int, ok bool) {
	if p.position >= p.grid.Len() {
		return 0, false
	}
	for i := range samples {
		if p.position >= p.grid.Len() {
			break
		}
		t := p.grid.At(p.position)
		val := p.level * math.Sin(2*math.Pi*p.freq*t)

		samples[i][0] = val
		samples[i][1] = val
		p.position++
		n++
	}
	return n, true
}

func (p *partial) Err() error { return nil }

// noise generates uniform white noise in [-1, 1)
type noise struct {
	grid     TimeGrid
	rng      *rand.Rand
	position int
}

// NewNoise creates a noise streamer drawing from rng
// A nil rng draws from the process-global math/rand source
func NewNoise(grid TimeGrid, rng *rand.Rand) beep.Streamer {
	return &noise{
		grid: grid,
		rng:  rng,
	}
}

func (s *noise) Stream(samples [][2]float64) (n int, ok bool) {
	if s.position >= s.grid.Len() {
		return 0, false
	}
	for i := range samples {
		if s.position >= s.grid.Len() {
			break
		}
		var u float64
		if s.rng != nil {
			u = s.rng.Float64()
		} else {
			u = rand.Float64()
		}
		val := -1 + float64(2*u)

		samples[i][0] = val
		samples[i][1] = val
		s.position++
		n++
	}
	return n, true
}

func (s *noise) Err() error { return nil }

// decay multiplies a stream by exp(-rate * t) over a TimeGrid
type decay struct {
	streamer beep.Streamer
	grid     TimeGrid
	rate     float64
	position int
}

// NewDecay wraps s with an exponential fade of the given rate in 1/s
func NewDecay(s beep.Streamer, grid TimeGrid, rate float64) beep.Streamer {
	return &decay{
		streamer: s,
		grid:     grid,
		rate:     rate,
	}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := math.Exp(-d.rate * d.grid.At(d.position))
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}

	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }
