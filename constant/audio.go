package constant

import "time"

// Audio Output Format
const (
	AudioSampleRate    = 44100
	AudioChannels      = 1
	AudioBitDepth      = 16
	AudioBytesPerFrame = AudioChannels * (AudioBitDepth / 8) // 2 bytes

	// AudioFullScale maps unity gain to the largest symmetric int16 level
	AudioFullScale = 32767
)

// Output Location
const (
	// AudioOutputDir is relative to the working directory
	AudioOutputDir = "."
)

// Roar Sound
// Deep two-partial growl with a slow exponential fade
const (
	RoarSoundDuration    = 2 * time.Second
	RoarFundamentalFreq  = 60.0
	RoarFundamentalLevel = 0.6
	RoarOvertoneFreq     = 90.0
	RoarOvertoneLevel    = 0.4
	RoarDecayRate        = 2.0 // 1/s
	RoarSoundFileName    = "roar.wav"
	RoarSoundName        = "roar"
)

// Destroy Sound
// Uniform noise impact with a faster fade
const (
	DestroySoundDuration = 1500 * time.Millisecond
	DestroyDecayRate     = 3.0 // 1/s
	DestroySoundFileName = "destroy.wav"
	DestroySoundName     = "destroy"
)

// Render
const (
	// RenderChunkFrames is the streamer pull size when rendering to a buffer
	RenderChunkFrames = 512
)
