package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Load reads the .env file specified by FUSION_ENV (or .env by default),
// then loads the corresponding .secret file if it exists.
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("FUSION_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Missing files are fine; the environment alone is a valid config.
	_ = godotenv.Load(envFile)
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return strings.ToLower(level)
}

// DevLogging selects zap's human-readable development encoder.
func DevLogging() bool {
	dev, err := strconv.ParseBool(os.Getenv("LOG_DEV"))
	if err != nil {
		return false
	}
	return dev
}

// DefaultRule returns the fusion rule used when a scenario names none.
// Defaults to "pcr5" if not set.
// Valid values: dempster, pcr5
func DefaultRule() string {
	r := os.Getenv("FUSION_RULE")
	if r == "" {
		return "pcr5"
	}
	return r
}

// OutputFormat returns how results are printed.
// Defaults to "text" if not set.
// Valid values: text, json, yaml
func OutputFormat() string {
	f := os.Getenv("FUSION_OUTPUT")
	if f == "" {
		return "text"
	}
	return strings.ToLower(f)
}

// Precision returns the number of decimals in text output.
// Defaults to 4 if not set.
func Precision() int {
	p, err := strconv.Atoi(os.Getenv("FUSION_PRECISION"))
	if err != nil || p <= 0 {
		return 4
	}
	return p
}
