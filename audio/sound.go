package audio

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/monster-sfx/constant"
)

// DefaultDuration returns the catalog length of the sound
func (st SoundType) DefaultDuration() time.Duration {
	switch st {
	case SoundRoar:
		return constant.RoarSoundDuration
	case SoundDestroy:
		return constant.DestroySoundDuration
	default:
		return 0
	}
}

// --- Sound Generators ---

// GenerateRoar renders the monster growl: 60 Hz and 90 Hz partials mixed
// 0.6/0.4 under an exp(-2t) fade
// Output is fully determined by rate and duration
func GenerateRoar(rate beep.SampleRate, duration time.Duration) (PCM, error) {
	grid, err := NewTimeGrid(rate, duration)
	if err != nil {
		return nil, fmt.Errorf("roar: %w", err)
	}

	mixed := beep.Mix(
		NewPartial(grid, constant.RoarFundamentalFreq, constant.RoarFundamentalLevel),
		NewPartial(grid, constant.RoarOvertoneFreq, constant.RoarOvertoneLevel),
	)
	shaped := NewDecay(mixed, grid, constant.RoarDecayRate)

	buf, err := render(shaped, grid.Len())
	if err != nil {
		return nil, fmt.Errorf("roar: %w", err)
	}
	return quantize(buf), nil
}

// GenerateDestroy renders the collapse impact: uniform noise under an
// exp(-3t) fade
// A nil rng uses the process-global source, so successive runs differ
func GenerateDestroy(rate beep.SampleRate, duration time.Duration, rng *rand.Rand) (PCM, error) {
	grid, err := NewTimeGrid(rate, duration)
	if err != nil {
		return nil, fmt.Errorf("destroy: %w", err)
	}

	shaped := NewDecay(NewNoise(grid, rng), grid, constant.DestroyDecayRate)

	buf, err := render(shaped, grid.Len())
	if err != nil {
		return nil, fmt.Errorf("destroy: %w", err)
	}
	return quantize(buf), nil
}

// Generate dispatches to the generator for st using the rate and duration in cfg
func Generate(st SoundType, cfg *Config, rng *rand.Rand) (PCM, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	rate := beep.SampleRate(cfg.SampleRate)

	switch st {
	case SoundRoar:
		return GenerateRoar(rate, cfg.Duration(st))
	case SoundDestroy:
		return GenerateDestroy(rate, cfg.Duration(st), rng)
	default:
		return nil, fmt.Errorf("%w: unknown sound type %d", ErrInvalidArgument, int(st))
	}
}
