package initialize

import (
	"os"

	"github.com/rs/zerolog"
)

// NewLogger builds the process logger. It is passed explicitly to every
// component that needs it; there is no ambient global.
func NewLogger() zerolog.Logger {
	cw := zerolog.ConsoleWriter{Out: os.Stdout}
	return zerolog.New(cw).With().Timestamp().Logger()
}
