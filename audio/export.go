package audio

import (
	"fmt"
	"math/rand"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/monster-sfx/wavfile"
)

// Exporter generates catalog sounds and writes them as WAV files
type Exporter struct {
	config *Config
	log    zerolog.Logger
	rng    *rand.Rand
}

// NewExporter creates an exporter; nil cfg uses DefaultConfig, nil rng uses
// the process-global noise source
func NewExporter(cfg *Config, logger zerolog.Logger, rng *rand.Rand) (*Exporter, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Exporter{
		config: cfg,
		log:    logger,
		rng:    rng,
	}, nil
}

// Path returns the output file for st
func (e *Exporter) Path(st SoundType) string {
	return filepath.Join(e.config.OutputDir, st.FileName())
}

// Export generates st and writes it, returning the written path
// Errors name the target path
func (e *Exporter) Export(st SoundType) (string, error) {
	if !st.Valid() {
		return "", fmt.Errorf("%w: unknown sound type %d", ErrInvalidArgument, int(st))
	}
	path := e.Path(st)

	pcm, err := Generate(st, e.config, e.rng)
	if err != nil {
		e.log.Error().Err(err).Str("sound", st.String()).Str("path", path).Msg("generate failed")
		return "", fmt.Errorf("generate %s: %w", path, err)
	}

	if err := wavfile.WritePCM(path, e.config.SampleRate, pcm); err != nil {
		e.log.Error().Err(err).Str("sound", st.String()).Str("path", path).Msg("write failed")
		return "", err
	}

	e.log.Info().
		Str("sound", st.String()).
		Str("path", path).
		Int("samples", len(pcm)).
		Dur("duration", e.config.Duration(st)).
		Msg("sound written")
	return path, nil
}

// Run exports every catalog sound in order and stops at the first failure
// Paths written before the failure are returned alongside the error
func (e *Exporter) Run() ([]string, error) {
	written := make([]string, 0, soundTypeCount)
	for _, st := range Sounds() {
		path, err := e.Export(st)
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}
