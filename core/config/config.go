package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	ErrNilConfig = errors.New("config: nil destination")
	ErrParse     = errors.New("config: failed to parse environment")
	ErrEnvFile   = errors.New("config: failed to load env file")
)

var (
	dotenvOnce sync.Once
	mu         sync.Mutex
	cache      sync.Map // reflect.Type -> loaded value
)

// Load fills cfg from the environment, loading .env on first use.
// The result is cached per type; later calls for the same type copy the
// cached value without reading the environment again.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	key := reflect.TypeFor[T]()
	if v, ok := cache.Load(key); ok {
		*cfg = v.(T)
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	if v, ok := cache.Load(key); ok {
		*cfg = v.(T)
		return nil
	}

	var loaded T
	if err := Parse(&loaded); err != nil {
		return err
	}

	cache.Store(key, loaded)
	*cfg = loaded
	return nil
}

// MustLoad is like Load but panics on error. Intended for startup code.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// Parse fills cfg from the environment without caching.
func Parse[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	dotenvOnce.Do(func() {
		// A missing .env is normal outside local development.
		_ = godotenv.Load()
	})

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	return nil
}

// LoadEnvFiles loads the given files into the process environment.
// Variables that are already set are not overridden.
func LoadEnvFiles(files ...string) error {
	if len(files) == 0 {
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("%w: %w", ErrEnvFile, err)
	}
	return nil
}

// Reset clears the cache. Tests use it between environments.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	cache.Clear()
}
