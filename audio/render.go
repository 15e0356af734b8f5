package audio

import (
	"github.com/gopxl/beep"

	"github.com/lixenwraith/monster-sfx/constant"
)

// render drains up to n frames of s into a mono buffer
// Only the left channel is kept; every streamer here writes both channels equally
func render(s beep.Streamer, n int) (floatBuffer, error) {
	buf := make(floatBuffer, 0, n)
	chunk := make([][2]float64, constant.RenderChunkFrames)
	limited := beep.Take(n, s)

	for {
		got, ok := limited.Stream(chunk)
		for i := 0; i < got; i++ {
			buf = append(buf, chunk[i][0])
		}
		if !ok {
			break
		}
	}

	if err := limited.Err(); err != nil {
		return nil, err
	}
	return buf, nil
}

// quantize converts unity-gain floats to int16 PCM
// Levels are hard clipped to [-1, 1] and scaled by 32767; the conversion
// truncates toward zero
func quantize(in floatBuffer) PCM {
	out := make(PCM, len(in))
	for i, v := range in {
		if v > 1.0 {
			v = 1.0
		} else if v < -1.0 {
			v = -1.0
		}
		out[i] = int16(v * constant.AudioFullScale)
	}
	return out
}
