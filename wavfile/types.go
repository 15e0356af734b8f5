package wavfile

import (
	"errors"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/monster-sfx/constant"
)

// Sentinel errors
var (
	ErrIO            = errors.New("wav file i/o failed")
	ErrInvalidFormat = errors.New("invalid wav format")
)

// pcmFormat is the container layout for a mono 16-bit file at rate
func pcmFormat(rate int) beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(rate),
		NumChannels: constant.AudioChannels,
		Precision:   constant.AudioBitDepth / 8,
	}
}
