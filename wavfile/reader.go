package wavfile

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/gopxl/beep/wav"

	"github.com/lixenwraith/monster-sfx/constant"
)

// RIFF layout
const (
	riffHeaderSize  = 12 // "RIFF" <size> "WAVE"
	chunkHeaderSize = 8  // <id> <size>
)

// ReadPCM loads a mono 16-bit PCM WAV file written by WritePCM
// The header is validated by the beep decoder; samples are read from the
// data chunk as raw little-endian int16 so values come back exactly
func ReadPCM(path string) (sampleRate int, samples []int16, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: read %s: %v", ErrIO, path, err)
	}

	stream, format, err := wav.Decode(bytes.NewReader(raw))
	if err != nil {
		return 0, nil, fmt.Errorf("%w: decode %s: %v", ErrInvalidFormat, path, err)
	}
	frames := stream.Len()
	stream.Close()

	if format.NumChannels != constant.AudioChannels || format.Precision != constant.AudioBitDepth/8 {
		return 0, nil, fmt.Errorf("%w: %s has %d channels at %d bits, want mono 16-bit",
			ErrInvalidFormat, path, format.NumChannels, format.Precision*8)
	}

	data, err := dataChunk(raw)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}

	count := len(data) / constant.AudioBytesPerFrame
	if count != frames {
		return 0, nil, fmt.Errorf("%w: %s data holds %d frames, header reports %d",
			ErrInvalidFormat, path, count, frames)
	}

	samples = make([]int16, count)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(data[i*2:]))
	}
	return int(format.SampleRate), samples, nil
}

// dataChunk walks the RIFF chunk list and returns the payload of "data"
func dataChunk(raw []byte) ([]byte, error) {
	if len(raw) < riffHeaderSize || string(raw[0:4]) != "RIFF" || string(raw[8:12]) != "WAVE" {
		return nil, errors.New("missing RIFF/WAVE header")
	}

	pos := riffHeaderSize
	for pos+chunkHeaderSize <= len(raw) {
		id := string(raw[pos : pos+4])
		size := int(binary.LittleEndian.Uint32(raw[pos+4 : pos+8]))
		body := pos + chunkHeaderSize

		// Bound size before any offset arithmetic; int is 32 bits on some targets
		if size < 0 || size > len(raw)-body {
			if id == "data" {
				return nil, fmt.Errorf("data chunk truncated: %d of %d bytes", len(raw)-body, uint32(size))
			}
			return nil, fmt.Errorf("chunk %q overruns file", id)
		}

		if id == "data" {
			return raw[body : body+size], nil
		}

		// Chunks are word aligned; a missing final pad byte ends the walk
		pos = body + size + size&1
	}
	return nil, errors.New("no data chunk")
}
