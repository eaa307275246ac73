package cli

import (
	"io"

	"github.com/rs/zerolog"
)

// newLogger returns a console logger on w, used for decoder policy events
// such as skipped chunks and data after IEND.
func newLogger(w io.Writer, level zerolog.Level) *zerolog.Logger {
	l := zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Logger()
	return &l
}
