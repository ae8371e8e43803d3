// Package config fills configuration structs from environment variables
// using caarlos0/env struct tags. A .env file in the working directory is
// loaded into the process environment on first use; variables already set
// take precedence.
//
// Load parses once per type and caches the result:
//
//	type CodecConfig struct {
//		Secret string `env:"ENCRYPTED_ID_SECRET,required"`
//		Prefix string `env:"ENCRYPTED_ID_PREFIX" envDefault:"obf_"`
//	}
//
//	var cfg CodecConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// A second Load of CodecConfig returns the cached copy even if the
// environment changed in between. Parse skips the cache, which suits
// commands that override values per invocation:
//
//	var cfg CodecConfig
//	if err := config.Parse(&cfg); err != nil {
//		return err
//	}
//
// Additional env files, for example from a --env-file flag, are loaded with
// LoadEnvFiles before the first Load or Parse. MustLoad panics instead of
// returning the error and is meant for process startup. Reset drops every
// cached value.
//
// Parse failures wrap ErrParse and env file failures wrap ErrEnvFile.
package config
