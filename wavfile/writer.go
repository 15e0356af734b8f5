package wavfile

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/gopxl/beep/wav"

	"github.com/lixenwraith/monster-sfx/constant"
)

// pcmStreamer feeds stored int16 samples to the beep encoder
type pcmStreamer struct {
	samples  []int16
	position int
}

func (s *pcmStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.position >= len(s.samples) {
		return 0, false
	}
	for i := range samples {
		if s.position >= len(s.samples) {
			break
		}
		val := encodeLevel(s.samples[s.position])
		samples[i][0] = val
		samples[i][1] = val
		s.position++
		n++
	}
	return n, true
}

func (s *pcmStreamer) Err() error { return nil }

// encodeLevel maps x to a float the encoder truncates back to x
// The encoder scales by 32767 and truncates toward zero, so the level sits
// half a step past x in the direction of its sign
func encodeLevel(x int16) float64 {
	switch {
	case x > 0:
		return (float64(x) + 0.5) / constant.AudioFullScale
	case x < 0:
		return (float64(x) - 0.5) / constant.AudioFullScale
	default:
		return 0
	}
}

// FileMode is the permission set on every written file, independent of umask
const FileMode os.FileMode = 0644

// WritePCM writes samples as a mono 16-bit PCM WAV file at path
// Samples must lie in [-32767, 32767]; -32768 has no symmetric encoding and
// is rejected with ErrInvalidFormat before anything touches disk
// Any existing file is replaced atomically: data goes to a temp file in the
// same directory, is synced and closed, set to FileMode, then renamed over
// path. Nothing is left at path or in the directory when a step fails
func WritePCM(path string, sampleRate int, samples []int16) (err error) {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d must be positive", ErrInvalidFormat, sampleRate)
	}
	for i, v := range samples {
		if v == math.MinInt16 {
			return fmt.Errorf("%w: sample %d is %d, outside [-%d, %d]",
				ErrInvalidFormat, i, v, constant.AudioFullScale, constant.AudioFullScale)
		}
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrIO, path, err)
	}
	tmpName := tmp.Name()

	closed := false
	defer func() {
		if !closed {
			tmp.Close()
		}
		if err != nil {
			os.Remove(tmpName)
		}
	}()

	if err = wav.Encode(tmp, &pcmStreamer{samples: samples}, pcmFormat(sampleRate)); err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrIO, path, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%w: sync %s: %v", ErrIO, path, err)
	}
	closed = true
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", ErrIO, path, err)
	}
	if err = os.Chmod(tmpName, FileMode); err != nil {
		return fmt.Errorf("%w: chmod %s: %v", ErrIO, path, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: rename %s: %v", ErrIO, path, err)
	}
	return nil
}
