package command

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/obfuscation/core/config"
	"github.com/dmitrymomot/obfuscation/internal/obfuscation"
	"github.com/dmitrymomot/obfuscation/pkg/encid"
)

// codecFlags override the ENCRYPTED_ID_* environment for one invocation.
func codecFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "secret",
			Usage: "Codec secret (default: $ENCRYPTED_ID_SECRET)",
		},
		&cli.StringFlag{
			Name:  "prefix",
			Usage: "Token prefix (default: $ENCRYPTED_ID_PREFIX or obf_)",
		},
		&cli.BoolFlag{
			Name:  "no-prefix",
			Usage: "Emit tokens without a prefix",
		},
	}
}

func codecFromContext(c *cli.Context) (*encid.Codec, error) {
	var cfg obfuscation.CodecConfig
	if err := config.Parse(&cfg); err != nil {
		return nil, err
	}

	if c.IsSet("secret") {
		cfg.Secret = c.String("secret")
	}
	if c.IsSet("prefix") {
		cfg.Prefix = c.String("prefix")
	}
	if c.Bool("no-prefix") {
		cfg.DisablePrefix = true
	}

	codec, err := cfg.NewCodec()
	if err != nil {
		return nil, cli.Exit(err.Error(), 2)
	}
	return codec, nil
}

// EncodeCommand prints one token per id argument.
func EncodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "encode",
		Aliases:   []string{"enc"},
		Usage:     "Encode ids into tokens",
		ArgsUsage: "ID...",
		Flags:     codecFlags(),
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return cli.Exit("at least one id is required", 2)
			}

			ids := make([]int64, 0, c.NArg())
			for _, arg := range c.Args().Slice() {
				id, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return cli.Exit(fmt.Sprintf("invalid id %q: must be a 64-bit signed integer", arg), 2)
				}
				ids = append(ids, id)
			}

			codec, err := codecFromContext(c)
			if err != nil {
				return err
			}

			for _, id := range ids {
				fmt.Fprintln(c.App.Writer, codec.Encode(id))
			}
			return nil
		},
	}
}

// DecodeCommand prints one id per token argument. Invalid tokens are
// reported on stderr and make the command exit with status 1.
func DecodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Aliases:   []string{"dec"},
		Usage:     "Decode tokens into ids",
		ArgsUsage: "TOKEN...",
		Flags:     codecFlags(),
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return cli.Exit("at least one token is required", 2)
			}

			codec, err := codecFromContext(c)
			if err != nil {
				return err
			}

			invalid := 0
			for _, arg := range c.Args().Slice() {
				id, err := codec.DecodeString(arg)
				if err != nil {
					invalid++
					fmt.Fprintf(c.App.ErrWriter, "%s: %v\n", arg, err)
					continue
				}
				fmt.Fprintln(c.App.Writer, id)
			}

			if invalid > 0 {
				return cli.Exit(fmt.Sprintf("%d of %d tokens invalid", invalid, c.NArg()), 1)
			}
			return nil
		},
	}
}
