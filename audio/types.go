package audio

import (
	"errors"

	"github.com/lixenwraith/monster-sfx/constant"
)

// SoundType represents the generated sound effects
type SoundType int

const (
	SoundRoar    SoundType = iota // Monster spawn growl
	SoundDestroy                  // Building collapse impact
	soundTypeCount
)

// PCM is mono signed 16-bit audio, one int16 per frame
type PCM []int16

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// Sentinel errors
var (
	ErrInvalidArgument = errors.New("invalid argument")
)

// String returns the sound name used in logs
func (st SoundType) String() string {
	switch st {
	case SoundRoar:
		return constant.RoarSoundName
	case SoundDestroy:
		return constant.DestroySoundName
	default:
		return "unknown"
	}
}

// FileName returns the output file name for the sound
func (st SoundType) FileName() string {
	switch st {
	case SoundRoar:
		return constant.RoarSoundFileName
	case SoundDestroy:
		return constant.DestroySoundFileName
	default:
		return ""
	}
}

// Valid reports whether st names a known sound
func (st SoundType) Valid() bool {
	return st >= 0 && st < soundTypeCount
}

// Sounds returns every sound type in export order
func Sounds() []SoundType {
	sounds := make([]SoundType, 0, soundTypeCount)
	for st := SoundType(0); st < soundTypeCount; st++ {
		sounds = append(sounds, st)
	}
	return sounds
}
