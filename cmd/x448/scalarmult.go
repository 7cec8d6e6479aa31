package main

import (
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"x448.mleku.dev"
	"x448.mleku.dev/internal/kat"
)

const (
	scalarFlag    = "scalar"
	pointFlag     = "point"
	allowZeroFlag = "allow-zero"
	verboseFlag   = "verbose"
)

func scalarMultCommand() *cli.Command {
	return &cli.Command{
		Name:      "scalarmult",
		Usage:     "Multiply a curve448 point by a scalar and print the result",
		ArgsUsage: " ",
		Description: `Computes X448(scalar, point) as defined by RFC 7748 and prints the 56-byte
result as hex. Both inputs are 56-byte little-endian values in hex. The point
defaults to the base point u = 5.

An all-zero result means the point has small order; it is reported as an error
unless --allow-zero is given.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    scalarFlag,
				Usage:   "56-byte scalar in hex (required)",
				EnvVars: []string{"X448_SCALAR"},
			},
			&cli.StringFlag{
				Name:    pointFlag,
				Usage:   "56-byte u-coordinate in hex",
				Value:   hex.EncodeToString(x448.Basepoint[:]),
				EnvVars: []string{"X448_POINT"},
			},
			&cli.BoolFlag{
				Name:  allowZeroFlag,
				Usage: "Print an all-zero result instead of failing",
			},
			&cli.BoolFlag{
				Name:  verboseFlag,
				Usage: "Log the inputs' public values and the result",
			},
		},
		Action: scalarMult,
	}
}

func scalarMult(c *cli.Context) error {
	log, err := newLogger(c)
	if err != nil {
		return err
	}

	if c.String(scalarFlag) == "" {
		return errors.Errorf("--%s is required", scalarFlag)
	}
	k, err := kat.Decode(c.String(scalarFlag))
	if err != nil {
		return errors.Wrapf(err, "invalid --%s", scalarFlag)
	}
	u, err := kat.Decode(c.String(pointFlag))
	if err != nil {
		return errors.Wrapf(err, "invalid --%s", pointFlag)
	}

	var out []byte
	if c.Bool(allowZeroFlag) {
		var r [x448.Size]byte
		x448.ScalarMult(&r, &k, &u)
		out = r[:]
	} else {
		out, err = x448.X448(k[:], u[:])
		if err != nil {
			return errors.Wrap(err, "scalar multiplication failed")
		}
	}

	if c.Bool(verboseFlag) {
		log.Info().
			Str("point", hex.EncodeToString(u[:])).
			Str("result", hex.EncodeToString(out)).
			Msg("scalar multiplication done")
	}

	_, err = fmt.Fprintln(c.App.Writer, hex.EncodeToString(out))
	return err
}
