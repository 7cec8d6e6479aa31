package main

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

const (
	LogLevelFlag = "loglevel"

	consoleTimeFormat = time.RFC3339
)

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFunc = utcNow
}

func utcNow() time.Time {
	return time.Now().UTC()
}

// newLogger builds the console logger for a command. Logs go to the app's
// error writer so that results on the standard writer stay machine readable.
func newLogger(c *cli.Context) (*zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(c.String(LogLevelFlag))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid --%s", LogLevelFlag)
	}

	var out io.Writer = os.Stderr
	if c.App != nil && c.App.ErrWriter != nil {
		out = c.App.ErrWriter
	}

	log := zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    true,
		TimeFormat: consoleTimeFormat,
	}).Level(level).With().Timestamp().Logger()
	return &log, nil
}
