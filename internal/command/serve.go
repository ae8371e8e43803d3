package command

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/obfuscation/core/config"
	"github.com/dmitrymomot/obfuscation/internal/obfuscation"
)

// ServeCommand runs the HTTP API until SIGINT or SIGTERM.
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Aliases: []string{"a"},
				Usage:   "Listen address (default: $SERVER_ADDR or :8080)",
			},
		},
		Action: func(c *cli.Context) error {
			var cfg obfuscation.Config
			if err := config.Load(&cfg); err != nil {
				return cli.Exit(err.Error(), 2)
			}
			cfg.Version = Version
			if c.IsSet("addr") {
				cfg.Server.Addr = c.String("addr")
			}

			app, err := obfuscation.NewApp(cfg)
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}

			ctx, stop := signal.NotifyContext(contextOf(c), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return app.Run(ctx)
		},
	}
}

func contextOf(c *cli.Context) context.Context {
	if c.Context != nil {
		return c.Context
	}
	return context.Background()
}
