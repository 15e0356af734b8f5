package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// TimeFormat is the console timestamp layout
const TimeFormat = "2006-01-02 15:04:05"

// New returns a console logger writing to w
// Every event carries a timestamp and the process id
func New(w io.Writer) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: TimeFormat,
		NoColor:    true,
	}
	return zerolog.New(consoleWriter).With().Timestamp().Int("pid", os.Getpid()).Logger()
}
