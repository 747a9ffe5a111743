package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvAPIBaseURL     = "CLINIC_API_URL"
	EnvSessionDB      = "CLINIC_SESSION_DB"
	EnvRequestTimeout = "CLINIC_REQUEST_TIMEOUT"
	EnvLogLevel       = "CLINIC_LOG_LEVEL"
)

// dotenvFile is loaded into the process environment when it exists.
// Variables already set in the environment win over the file.
var dotenvFile = ".env"

// parseEnv overlays cfg with CLINIC_* variables. A malformed timeout panics,
// like the other config sources.
func parseEnv(cfg *Config) {
	if err := godotenv.Load(dotenvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if v, ok := os.LookupEnv(EnvAPIBaseURL); ok && v != "" {
		cfg.APIBaseURL = v
	}
	if v, ok := os.LookupEnv(EnvSessionDB); ok && v != "" {
		cfg.SessionDBPath = v
	}
	if v, ok := os.LookupEnv(EnvRequestTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
}
