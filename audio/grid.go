package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
)

// TimeGrid is an evenly spaced set of sample timestamps over [0, duration)
// The end point is excluded so a partial at frequency f completes exactly
// f*duration cycles across the grid
type TimeGrid struct {
	samples  int
	duration float64
	step     float64
}

// NewTimeGrid builds the grid for duration at rate
// Sample count is round(rate * duration); t[i] = i * duration / count
func NewTimeGrid(rate beep.SampleRate, duration time.Duration) (TimeGrid, error) {
	if rate <= 0 {
		return TimeGrid{}, fmt.Errorf("%w: sample rate %d must be positive", ErrInvalidArgument, int(rate))
	}
	if duration <= 0 {
		return TimeGrid{}, fmt.Errorf("%w: duration %v must be positive", ErrInvalidArgument, duration)
	}

	secs := duration.Seconds()
	n := int(math.Round(float64(rate) * secs))
	if n < 1 {
		return TimeGrid{}, fmt.Errorf("%w: duration %v yields no samples at %d Hz", ErrInvalidArgument, duration, int(rate))
	}

	return TimeGrid{
		samples:  n,
		duration: secs,
		step:     secs / float64(n),
	}, nil
}

// Len returns the number of timestamps
func (g TimeGrid) Len() int {
	return g.samples
}

// At returns the timestamp of sample i in seconds
func (g TimeGrid) At(i int) float64 {
	return float64(i) * g.step
}

// seconds returns the grid span
func (g TimeGrid) seconds() float64 {
	return g.duration
}

// times materializes every timestamp
func (g TimeGrid) times() []float64 {
	t := make([]float64, g.samples)
	for i := range t {
		t[i] = g.At(i)
	}
	return t
}
