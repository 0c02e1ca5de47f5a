package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// configCache stores parsed configuration values keyed by type name and prefix.
type configCache struct {
	mu     sync.Mutex
	values map[string]any
}

var (
	globalCache = &configCache{values: make(map[string]any)}

	defaultEnvLoaded sync.Once
)

// Option tunes how environment variables are parsed.
type Option func(*env.Options)

// WithPrefix only considers variables starting with prefix, e.g. "REDUCER_".
func WithPrefix(prefix string) Option {
	return func(o *env.Options) { o.Prefix = prefix }
}

// WithEnvironment parses from the given map instead of the process environment.
func WithEnvironment(vars map[string]string) Option {
	return func(o *env.Options) { o.Environment = vars }
}

// Parse populates v from the environment without touching the cache.
func Parse[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}
	return parse(v, buildOptions(opts))
}

func parse[T any](v *T, o env.Options) error {
	if err := env.ParseWithOptions(v, o); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

func buildOptions(opts []Option) env.Options {
	var o env.Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Load loads environment variables into the provided configuration struct.
// The default .env file is read once per process if present. Each
// configuration type is parsed once per prefix; later calls with the same
// type and prefix return the cached copy. Loads given WithEnvironment are
// parsed every time and never cached.
//
// Example:
//
//	type DemoConfig struct {
//		Env    string `env:"REDUCER_ENV" envDefault:"development"`
//		Strict bool   `env:"REDUCER_STRICT"`
//	}
//
//	var cfg DemoConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	o := buildOptions(opts)
	if o.Environment != nil {
		return parse(v, o)
	}
	key := getTypeName[T]() + "#" + o.Prefix

	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	if cached, ok := globalCache.values[key]; ok {
		val, ok := cached.(T)
		if !ok {
			return ErrInvalidConfigType
		}
		*v = val
		return nil
	}

	if err := parse(v, o); err != nil {
		return err
	}
	globalCache.values[key] = *v
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// LoadEnv reads the given .env files into the process environment.
// Variables already set are not overridden; earlier files win over later ones.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// ResetCache drops every cached configuration. Intended for tests.
func ResetCache() {
	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()
	globalCache.values = make(map[string]any)
}

// getTypeName returns a string identifier for the generic type T
func getTypeName[T any]() string {
	t := reflect.TypeFor[T]()
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
