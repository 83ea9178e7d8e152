package logging

import (
	"io"
	"os"
	"time"

	pkgerr "github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

// Init configures the global zerolog logger. Diagnostics go to out (stderr
// when nil); standard output is reserved for the stock notifications.
func Init(level string, out io.Writer) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return pkgerr.Wrapf(err, "log level %q", level)
	}
	if out == nil {
		out = os.Stderr
	}

	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	return nil
}
