// Package config loads application configuration from environment variables
// into tagged Go structs.
//
// It wraps `github.com/joho/godotenv` for .env files and
// `github.com/caarlos0/env/v11` for parsing:
//
//   - Load reads the default .env once per process, parses the struct and
//     caches the result per type.
//   - Parse parses without caching and accepts options such as WithPrefix or
//     WithEnvironment (an explicit variable map, handy in tests).
//   - LoadEnv reads additional .env files into the process environment.
//   - MustLoad panics on failure for configuration a binary cannot start without.
//
// # Usage
//
//	type DemoConfig struct {
//	    Env      string `env:"ENV" envDefault:"development"`
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	    Strict   bool   `env:"STRICT"`
//	}
//
//	var cfg DemoConfig
//	config.MustLoad(&cfg, config.WithPrefix("REDUCER_"))
//
// Errors can be compared with errors.Is against ErrParsingConfig,
// ErrLoadingEnvFile, ErrInvalidConfigType and ErrNilPointer. Use ResetCache
// between tests that load the same type with different environments.
package config
