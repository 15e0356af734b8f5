package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/monster-sfx/audio"
	"github.com/lixenwraith/monster-sfx/log"
)

func main() {
	os.Exit(run())
}

// run writes roar.wav then destroy.wav into the working directory
// Returns the process exit status
func run() int {
	logger := log.New(os.Stderr)

	exporter, err := audio.NewExporter(audio.DefaultConfig(), logger, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "monster-sfx: %v\n", err)
		return 1
	}

	written, err := exporter.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "monster-sfx: %v\n", err)
		return 1
	}

	logger.Info().Strs("files", written).Msg("done")
	return 0
}
