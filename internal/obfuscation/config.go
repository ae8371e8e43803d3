package obfuscation

import (
	"log/slog"

	"github.com/dmitrymomot/obfuscation/core/server"
	"github.com/dmitrymomot/obfuscation/pkg/encid"
)

// Config is loaded from the environment by core/config.
type Config struct {
	Server server.Config
	Codec  CodecConfig

	AppName  string `env:"APP_NAME" envDefault:"obfuscation"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Version is set by the binary, not the environment.
	Version string
}

// CodecConfig holds the codec settings shared by the server and the CLI.
// An empty secret is rejected when the codec is built.
type CodecConfig struct {
	Secret        string `env:"ENCRYPTED_ID_SECRET"`
	Prefix        string `env:"ENCRYPTED_ID_PREFIX" envDefault:"obf_"`
	DisablePrefix bool   `env:"ENCRYPTED_ID_DISABLE_PREFIX" envDefault:"false"`
}

// TokenPrefix returns the prefix the codec should use.
func (c CodecConfig) TokenPrefix() string {
	if c.DisablePrefix {
		return ""
	}
	return c.Prefix
}

// NewCodec builds the codec described by c.
func (c CodecConfig) NewCodec() (*encid.Codec, error) {
	return encid.New(c.Secret, encid.WithPrefix(c.TokenPrefix()))
}

// LogValue implements slog.LogValuer. The secret is never included.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("app_name", c.AppName),
		slog.String("env", c.Env),
		slog.String("log_level", c.LogLevel),
		slog.String("addr", c.Server.Addr),
		slog.String("token_prefix", c.Codec.TokenPrefix()),
		slog.Bool("secret_set", c.Codec.Secret != ""),
	)
}
