package audio

import (
	"fmt"
	"time"

	"github.com/lixenwraith/monster-sfx/constant"
)

// Config holds export settings
// Values come from DefaultConfig; there is no external override
type Config struct {
	SampleRate int
	OutputDir  string
	Durations  map[SoundType]time.Duration
}

// DefaultConfig returns the catalog settings
func DefaultConfig() *Config {
	durations := make(map[SoundType]time.Duration, soundTypeCount)
	for _, st := range Sounds() {
		durations[st] = st.DefaultDuration()
	}

	return &Config{
		SampleRate: constant.AudioSampleRate,
		OutputDir:  constant.AudioOutputDir,
		Durations:  durations,
	}
}

// Duration returns the configured length of st, falling back to the catalog default
func (c *Config) Duration(st SoundType) time.Duration {
	if d, ok := c.Durations[st]; ok {
		return d
	}
	return st.DefaultDuration()
}

// Validate checks rate, output directory and every sound duration
func (c *Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d must be positive", ErrInvalidArgument, c.SampleRate)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: empty output directory", ErrInvalidArgument)
	}
	for _, st := range Sounds() {
		if d := c.Duration(st); d <= 0 {
			return fmt.Errorf("%w: %s duration %v must be positive", ErrInvalidArgument, st, d)
		}
	}
	return nil
}
