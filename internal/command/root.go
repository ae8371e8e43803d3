// Package command defines the obfuscation command-line interface: serving
// the HTTP API and encoding or decoding identifiers from the shell.
package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/obfuscation/core/config"
)

// Build information, set via ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
)

// App creates the CLI application. Exit codes are left to the caller:
// errors implementing cli.ExitCoder carry the code main should exit with.
func App() *cli.App {
	return &cli.App{
		Name:    "obfuscation",
		Usage:   "Reversible encrypted identifiers for int64 ids",
		Version: fmt.Sprintf("%s (commit: %s)", Version, Commit),
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "env-file",
				Aliases: []string{"e"},
				Usage:   "Load environment variables from `FILE` before reading configuration",
			},
		},
		Commands: []*cli.Command{
			ServeCommand(),
			EncodeCommand(),
			DecodeCommand(),
		},
		Before: func(c *cli.Context) error {
			return config.LoadEnvFiles(c.StringSlice("env-file")...)
		},
		ExitErrHandler: func(*cli.Context, error) {},
	}
}
