package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

var (
	Version   = "DEV"
	BuildTime = "unknown"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "x448: %v\n", err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := &cli.App{}
	app.Name = "x448"
	app.Usage = "X448 (RFC 7748) scalar multiplication"
	app.UsageText = "x448 [global options] command [command options]"
	app.Version = fmt.Sprintf("%s (built %s)", Version, BuildTime)
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    LogLevelFlag,
			Value:   "info",
			Usage:   "Application logging level {debug, info, warn, error}",
			EnvVars: []string{"X448_LOGLEVEL"},
		},
	}
	app.Commands = commands()
	return app
}

func commands() []*cli.Command {
	return []*cli.Command{
		scalarMultCommand(),
		selfTestCommand(),
		benchCommand(),
	}
}
