package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTimeGridLength verifies sample counts for catalog and short durations
func TestTimeGridLength(t *testing.T) {
	rate := beep.SampleRate(44100)

	tests := []struct {
		name     string
		duration time.Duration
		want     int
	}{
		{"roar default", 2 * time.Second, 88200},
		{"destroy default", 1500 * time.Millisecond, 66150},
		{"one millisecond", time.Millisecond, 44},
		{"one second", time.Second, 44100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := NewTimeGrid(rate, tt.duration)
			require.NoError(t, err)
			assert.Equal(t, tt.want, grid.Len())
			assert.Len(t, grid.times(), tt.want)
		})
	}
}

// TestTimeGridExcludesEndpoint verifies the grid is half-open over [0, duration)
func TestTimeGridExcludesEndpoint(t *testing.T) {
	grid, err := NewTimeGrid(44100, 2*time.Second)
	require.NoError(t, err)

	assert.Equal(t, 0.0, grid.At(0))
	assert.Equal(t, 2.0, grid.seconds())

	last := grid.At(grid.Len() - 1)
	assert.Less(t, last, grid.seconds())
	assert.InDelta(t, 2.0-1.0/44100, last, 1e-12)

	// One step past the last sample lands on the excluded end point
	assert.InDelta(t, 2.0, grid.At(grid.Len()), 1e-12)
}

// TestTimeGridSpacing verifies the step is duration/count, not 1/rate
func TestTimeGridSpacing(t *testing.T) {
	grid, err := NewTimeGrid(44100, time.Millisecond)
	require.NoError(t, err)

	step := 0.001 / 44
	times := grid.times()
	for i, ts := range times {
		assert.InDelta(t, float64(i)*step, ts, 1e-15, "index %d", i)
	}
}

// TestTimeGridInvalid verifies rejected rates and durations
func TestTimeGridInvalid(t *testing.T) {
	tests := []struct {
		name     string
		rate     beep.SampleRate
		duration time.Duration
	}{
		{"zero duration", 44100, 0},
		{"negative duration", 44100, -time.Second},
		{"zero rate", 0, time.Second},
		{"negative rate", -44100, time.Second},
		{"below one sample", 44100, 10 * time.Microsecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTimeGrid(tt.rate, tt.duration)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}
